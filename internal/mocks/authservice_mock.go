package mocks

import (
	"context"
	"net/http"

	"dashboard.xdoubleu.com/internal/auth"
	"dashboard.xdoubleu.com/internal/constants"
	"dashboard.xdoubleu.com/internal/models"
)

func NewMockedAuthService(userID string) auth.Service {
	return &MockedAuthService{
		userID: userID,
	}
}

type MockedAuthService struct {
	userID string
}

func (m *MockedAuthService) user() models.User {
	return models.User{
		ID:    m.userID,
		Email: MockedOwnerEmail,
	}
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constants.UserContextKey, m.user())
		next(w, r.WithContext(ctx))
	}
}

func (m *MockedAuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return m.Access(next)
}

func (m *MockedAuthService) GetAllUsers() ([]models.User, error) {
	return []models.User{m.user()}, nil
}

func (m *MockedAuthService) SignOut(
	_ string,
	_ bool,
) (*http.Cookie, *http.Cookie, error) {
	return nil, nil, nil
}
