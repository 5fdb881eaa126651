package main

import (
	"net/http"
	"testing"

	"dashboard.xdoubleu.com/cmd/dashboard/internal/dtos"
	"dashboard.xdoubleu.com/internal/mocks"
	"dashboard.xdoubleu.com/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestSignInHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	signInDto := dtos.SignInDto{
		Email:      "valid@example.com",
		Password:   mocks.MockedPassword,
		RememberMe: true,
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	cookies := rs.Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, models.AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, mocks.MockedAccessToken, cookies[0].Value)
	assert.Equal(t, models.RefreshTokenCookie, cookies[1].Name)
}

func TestSignInHandlerWithoutRememberMe(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.SignInDto{
		Email:      "owner@example.com",
		Password:   mocks.MockedPassword,
		RememberMe: false,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	cookies := rs.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, models.AccessTokenCookie, cookies[0].Name)
}

func TestSignInHandlerWrongPassword(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.SignInDto{
		Email:      "owner@example.com",
		Password:   "wrong",
		RememberMe: true,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
	assert.Contains(t, rs.Header.Get("Location"), "/?error=")
	assert.Empty(t, rs.Cookies())
}

func TestSignOutHandlerRejectsOtherAccounts(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/auth/signout",
	)

	tReq.SetFollowRedirect(false)

	tReq.AddCookie(&http.Cookie{
		Name:  models.AccessTokenCookie,
		Value: mocks.MockedStrangerToken,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestGetAllUsersReturnsOwner(t *testing.T) {
	users, err := testApp.services.Auth.GetAllUsers()
	require.Nil(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, ownerID, users[0].ID)
}

func TestSignOutHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/auth/signout",
	)

	tReq.SetFollowRedirect(false)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
}

func TestSignIn(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestRefreshTokens(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/",
	)

	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}
