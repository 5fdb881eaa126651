package models

import "github.com/supabase-community/gotrue-go/types"

// TokenScope selects which of the two session cookies a token lives in.
type TokenScope int

const (
	AccessTokenScope  TokenScope = 0
	RefreshTokenScope TokenScope = 1
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

func (scope TokenScope) CookieName() string {
	switch scope {
	case AccessTokenScope:
		return AccessTokenCookie
	case RefreshTokenScope:
		return RefreshTokenCookie
	default:
		panic("invalid token scope")
	}
}

// User is the signed-in dashboard owner. Background jobs such as the sleep
// sync run on behalf of this account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func NewUser(user types.User) User {
	return User{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}
