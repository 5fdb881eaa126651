package services

import (
	"log/slog"

	"dashboard.xdoubleu.com/apps/dashboard/internal/repositories"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
	"dashboard.xdoubleu.com/internal/auth"
	"dashboard.xdoubleu.com/internal/config"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
)

type Services struct {
	Auth      auth.Service
	Calendar  *CalendarService
	Todos     *TodoService
	Weather   *WeatherService
	Fitness   *FitnessService
	Sleep     *SleepService
	AI        *AIService
	Dashboard *DashboardService
	WebSocket *WebSocketService
}

// New wires the services. A nil client disables its data source.
func New(
	logger *slog.Logger,
	config config.Config,
	jobQueue *threading.JobQueue,
	repositories *repositories.Repositories,
	calendarClient gcal.Client,
	weatherClient openweather.Client,
	garminClient garmin.Client,
	aiClient openwebui.Client,
	authService auth.Service,
) *Services {
	location := config.Location()

	calendar := &CalendarService{
		logger:      logger,
		client:      calendarClient,
		filter:      config.CalendarFilter,
		monthsAhead: config.CalendarMonthsAhead,
		location:    location,
	}
	todos := &TodoService{
		logger:   logger,
		client:   calendarClient,
		location: location,
	}
	weather := &WeatherService{
		logger: logger,
		client: weatherClient,
		city:   config.WeatherCity,
	}
	fitness := &FitnessService{
		logger:   logger,
		client:   garminClient,
		location: location,
	}
	sleep := &SleepService{
		logger:   logger,
		client:   garminClient,
		sleep:    repositories.Sleep,
		location: location,
	}
	ai := &AIService{
		logger:      logger,
		client:      aiClient,
		model:       config.OpenWebUIModel,
		maxTokens:   config.AIMaxTokens,
		monthsAhead: config.CalendarMonthsAhead,
	}
	dashboard := &DashboardService{
		logger:   logger,
		calendar: calendar,
		weather:  weather,
		fitness:  fitness,
		ai:       ai,
	}

	return &Services{
		Auth:      authService,
		Calendar:  calendar,
		Todos:     todos,
		Weather:   weather,
		Fitness:   fitness,
		Sleep:     sleep,
		AI:        ai,
		Dashboard: dashboard,
		WebSocket: NewWebSocketService(logger, []string{config.WebURL}, jobQueue),
	}
}
