package services

import (
	"html/template"

	cfg "dashboard.xdoubleu.com/internal/config"
	"github.com/supabase-community/gotrue-go"
	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Services struct {
	Auth *AuthService
}

func New(
	cfg cfg.Config,
	supabaseClient gotrue.Client,
	tpl *template.Template,
) *Services {
	return &Services{
		Auth: &AuthService{
			ownerID:          cfg.SupabaseUserID,
			client:           supabaseClient,
			tpl:              tpl,
			useSecureCookies: cfg.Env == config.ProdEnv,
			accessExpiry:     cfg.AccessExpiry,
			refreshExpiry:    cfg.RefreshExpiry,
		},
	}
}
