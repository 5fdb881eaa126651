package services

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"dashboard.xdoubleu.com/cmd/dashboard/internal/dtos"
	"dashboard.xdoubleu.com/internal/constants"
	"dashboard.xdoubleu.com/internal/models"
	"github.com/getsentry/sentry-go"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"github.com/xhit/go-str2duration/v2"
)

var errNotOwner = errors.New("account is not the dashboard owner")

// AuthService signs the dashboard owner in against Supabase and keeps the
// session in two cookies.
type AuthService struct {
	ownerID          string
	client           gotrue.Client
	tpl              *template.Template
	useSecureCookies bool
	accessExpiry     string
	refreshExpiry    string
}

// GetAllUsers returns the owner, the only account background jobs sync for.
func (service *AuthService) GetAllUsers() ([]models.User, error) {
	if service.ownerID == "" {
		return []models.User{}, nil
	}

	//nolint:exhaustruct //email is only known after sign-in
	return []models.User{{ID: service.ownerID}}, nil
}

func (service *AuthService) SignInWithEmail(
	signInDto *dtos.SignInDto,
) (*string, *string, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType: "password",
		Email:     signInDto.Email,
		Password:  signInDto.Password,
	})
	if err != nil {
		return nil, nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	return &response.AccessToken, &response.RefreshToken, nil
}

func (service *AuthService) GetUser(accessToken string) (*models.User, error) {
	response, err := service.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, err
	}

	if response == nil {
		return nil, errortools.NewUnauthorizedError(errors.New("invalid token"))
	}

	user := models.NewUser(response.User)

	if service.ownerID != "" && user.ID != service.ownerID {
		return nil, errortools.NewUnauthorizedError(errNotOwner)
	}

	return &user, nil
}

func (service *AuthService) SignInWithRefreshToken(
	refreshToken string,
) (*string, *string, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, nil, err
	}

	return &response.AccessToken, &response.RefreshToken, nil
}

func (service *AuthService) SignOut(
	accessToken string,
	secure bool,
) (*http.Cookie, *http.Cookie, error) {
	err := service.client.WithToken(accessToken).Logout()
	if err != nil {
		return nil, nil, err
	}

	return deleteCookie(models.AccessTokenScope, secure),
		deleteCookie(models.RefreshTokenScope, secure),
		nil
}

func deleteCookie(scope models.TokenScope, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     scope.CookieName(),
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   secure,
		Path:     "/",
	}
}

func (service *AuthService) CreateCookie(
	scope models.TokenScope,
	token string,
	expiry string,
	secure bool,
) (*http.Cookie, error) {
	ttl, err := str2duration.ParseDuration(expiry)
	if err != nil {
		return nil, err
	}

	cookie := http.Cookie{
		Name:     scope.CookieName(),
		Value:    token,
		Expires:  time.Now().Add(ttl),
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
		Secure:   secure,
		Path:     "/",
	}

	return &cookie, nil
}

func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCookie, err := r.Cookie(models.AccessTokenCookie)

		if err != nil {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("no token in cookies")))
			return
		}

		user, err := service.GetUser(
			tokenCookie.Value,
		)
		if err != nil {
			httptools.HandleError(w, r, err)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := service.getCurrentUser(r)

		if user == nil {
			user = service.refreshTokens(w, r)
		}

		if user == nil {
			tpltools.RenderWithPanic(service.tpl, w, "sign-in.html", nil)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next(w, r)
	})
}

func (service *AuthService) getCurrentUser(r *http.Request) *models.User {
	accessToken, err := r.Cookie(models.AccessTokenCookie)
	if err != nil {
		return nil
	}

	user, err := service.GetUser(accessToken.Value)
	if err != nil {
		return nil
	}

	return user
}

func (service *AuthService) refreshTokens(
	w http.ResponseWriter,
	r *http.Request,
) *models.User {
	tokenCookie, err := r.Cookie(models.RefreshTokenCookie)

	if err != nil {
		return nil
	}

	accessToken, refreshToken, err := service.SignInWithRefreshToken(
		tokenCookie.Value,
	)
	if err != nil {
		return nil
	}

	accessTokenCookie, err := service.CreateCookie(
		models.AccessTokenScope,
		*accessToken,
		service.accessExpiry,
		service.useSecureCookies,
	)
	if err != nil {
		return nil
	}

	http.SetCookie(w, accessTokenCookie)

	var refreshTokenCookie *http.Cookie
	refreshTokenCookie, err = service.CreateCookie(
		models.RefreshTokenScope,
		*refreshToken,
		service.refreshExpiry,
		service.useSecureCookies,
	)
	if err != nil {
		return nil
	}

	http.SetCookie(w, refreshTokenCookie)

	user, _ := service.GetUser(accessTokenCookie.Value)
	return user
}

func (service *AuthService) contextSetUser(
	ctx context.Context,
	user models.User,
) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			ID:    user.ID,
			Email: user.Email,
		})
	}

	return context.WithValue(ctx, constants.UserContextKey, user)
}
