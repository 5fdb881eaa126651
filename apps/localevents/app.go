package localevents

import (
	"context"
	"embed"
	"html/template"
	"log/slog"

	"dashboard.xdoubleu.com/apps/localevents/internal/repositories"
	"dashboard.xdoubleu.com/apps/localevents/internal/services"
	"dashboard.xdoubleu.com/apps/localevents/pkg/websearch"
	"dashboard.xdoubleu.com/internal/auth"
	"dashboard.xdoubleu.com/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type LocalEvents struct {
	logger       *slog.Logger
	ctx          context.Context
	ctxCancel    context.CancelFunc
	Config       config.Config
	tpl          *template.Template
	Services     *services.Services
	Repositories *repositories.Repositories
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *LocalEvents {
	return NewInner(authService, logger, cfg, db, websearch.New(logger, cfg.WebSearchURL))
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	searchClient websearch.Client,
) *LocalEvents {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	repos := repositories.New(postgres.NewSpanDB(db))

	//nolint:exhaustruct //other fields are optional
	app := &LocalEvents{
		logger:       logger,
		Config:       cfg,
		tpl:          tpl,
		Repositories: repos,
		Services:     services.New(logger, cfg, repos, searchClient, authService),
	}

	app.setContext()

	return app
}

// ApplyMigrations also seeds an empty catalogue.
func (app *LocalEvents) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("localevents_goose_db_version")

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	if _, err := app.Services.Events.Seed(app.ctx); err != nil {
		return err
	}

	return nil
}

func (app *LocalEvents) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *LocalEvents) GetName() string {
	return "localevents"
}
