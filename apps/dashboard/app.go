package dashboard

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"time"
	_ "time/tzdata"

	"dashboard.xdoubleu.com/apps/dashboard/internal/jobs"
	"dashboard.xdoubleu.com/apps/dashboard/internal/repositories"
	"dashboard.xdoubleu.com/apps/dashboard/internal/services"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
	"dashboard.xdoubleu.com/internal/auth"
	"dashboard.xdoubleu.com/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"github.com/xhit/go-str2duration/v2"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

const defaultAIRequestTimeout = 120 * time.Second

type Dashboard struct {
	logger       *slog.Logger
	db           postgres.DB
	Config       config.Config
	clients      Clients
	Services     *services.Services
	Repositories *repositories.Repositories
	tpl          *template.Template
	jobQueue     *threading.JobQueue
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Dashboard {
	return NewInner(authService, logger, cfg, db, NewClients(logger, cfg))
}

// NewClients creates a client for every configured data source.
func NewClients(logger *slog.Logger, cfg config.Config) Clients {
	//nolint:exhaustruct //unconfigured sources stay nil
	clients := Clients{}

	calendarClient, err := gcal.New(
		context.Background(),
		logger,
		cfg.CredentialsFile,
		cfg.TokenFile,
	)
	if err != nil {
		logger.Warn("Google Calendar disabled", logging.ErrAttr(err))
	} else {
		clients.Calendar = calendarClient
	}

	if cfg.WeatherAPIKey != "" {
		clients.Weather = openweather.New(logger, cfg.WeatherAPIKey, cfg.WeatherAPIURL)
	}

	if cfg.GarminEmail != "" && cfg.GarminPassword != "" {
		clients.Garmin = garmin.New(logger, cfg.GarminEmail, cfg.GarminPassword)
	}

	if cfg.OpenWebUIAPIKey != "" {
		timeout, errIn := str2duration.ParseDuration(cfg.AIRequestTimeout)
		if errIn != nil {
			timeout = defaultAIRequestTimeout
		}

		clients.AI = openwebui.New(logger, cfg.OpenWebUIBaseURL, cfg.OpenWebUIAPIKey, timeout)
	}

	return clients
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	clients Clients,
) *Dashboard {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)

	//nolint:exhaustruct //other fields are optional
	app := &Dashboard{
		logger:   logger,
		clients:  clients,
		Config:   cfg,
		tpl:      tpl,
		jobQueue: jobQueue,
	}

	app.setDB(db, authService)
	app.setJobs()

	return app
}

func (app *Dashboard) setDB(
	db postgres.DB,
	authService auth.Service,
) {
	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(
		app.logger,
		app.Config,
		app.jobQueue,
		app.Repositories,
		app.clients.Calendar,
		app.clients.Weather,
		app.clients.Garmin,
		app.clients.AI,
		authService,
	)
}

func (app *Dashboard) setJobs() {
	err := app.jobQueue.AddJob(
		jobs.NewSleepSyncJob(
			app.Services.Auth,
			app.Services.Sleep,
			app.Config.SleepSyncInterval,
		),
		app.Services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.Services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}

func (app *Dashboard) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("dashboard_goose_db_version")

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Dashboard) GetName() string {
	return "dashboard"
}
