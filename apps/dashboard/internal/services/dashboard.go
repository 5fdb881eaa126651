package services

import (
	"context"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

//nolint:gochecknoglobals //order of the dashboard suggestions
var dashboardSuggestions = []Suggestion{
	DayPlanSuggestion,
	FreetimeSuggestion,
	NutritionSuggestion,
}

type DashboardService struct {
	logger   *slog.Logger
	calendar *CalendarService
	weather  *WeatherService
	fitness  *FitnessService
	ai       *AIService
}

func (service *DashboardService) Get(ctx context.Context, withAI bool) models.Dashboard {
	events := service.calendar.GetEvents(ctx)
	weather := service.weather.GetWeather(ctx)
	fitness := service.fitness.GetData(ctx, service.fitness.Today())
	today := service.calendar.GetTodayEvents(events)

	dashboard := models.Dashboard{
		Timestamp: time.Now(),
		Weather:   weather,
		Garmin:    fitness,
		Calendar: models.CalendarOverview{
			Today:    today,
			Upcoming: events,
		},
		AISuggestions: nil,
	}

	if !withAI {
		return dashboard
	}

	aiContext := service.ai.BuildContext(dashboard.Timestamp, weather, fitness, today, events)

	service.logger.Info("generating AI suggestions")
	dashboard.AISuggestions = service.suggestions(ctx, aiContext)
	service.logger.Info("AI suggestions complete")

	return dashboard
}

// Suggest fetches a fresh context and asks for a single suggestion.
func (service *DashboardService) Suggest(ctx context.Context, suggestion Suggestion) string {
	data := service.Get(ctx, false)

	aiContext := service.ai.BuildContext(
		data.Timestamp,
		data.Weather,
		data.Garmin,
		data.Calendar.Today,
		data.Calendar.Upcoming,
	)

	return service.ai.Suggest(ctx, suggestion, aiContext)
}

func (service *DashboardService) suggestions(
	ctx context.Context,
	aiContext string,
) *models.AISuggestions {
	results := make([]string, len(dashboardSuggestions))

	var group errgroup.Group
	for i, suggestion := range dashboardSuggestions {
		group.Go(func() error {
			results[i] = service.ai.Suggest(ctx, suggestion, aiContext)
			return nil
		})
	}

	// Suggest never fails, it falls back to a static text
	_ = group.Wait()

	return &models.AISuggestions{
		DayPlan:   results[0],
		Freetime:  results[1],
		Nutrition: results[2],
	}
}
