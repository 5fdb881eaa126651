package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dashboard.xdoubleu.com/apps/dashboard"
	"dashboard.xdoubleu.com/apps/dashboard/internal/mocks"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConfigured(t *testing.T) {
	//nolint:exhaustruct //nothing is configured
	app := newApp(dashboard.Clients{})
	ctx := context.Background()

	weather := app.Services.Weather.GetWeather(ctx)
	require.NotNil(t, weather.SetupRequired)
	assert.Equal(t, "Not configured", *weather.SetupRequired)
	assert.Equal(t, "not configured", weather.Description)
	assert.Equal(t, 15.0, weather.Temperature)
	assert.Equal(t, "01d", weather.Icon)
	require.NotNil(t, weather.SetupMessage)
	assert.Contains(t, *weather.SetupMessage, "WEATHER_API_KEY")

	fitness := app.Services.Fitness.GetData(ctx, app.Services.Fitness.Today())
	assert.Nil(t, fitness.SleepScore)
	assert.Equal(t, "Not configured", fitness.TrainingStatus)
	require.NotNil(t, fitness.SetupMessage)
	assert.Contains(t, *fitness.SetupMessage, "This feature is optional.")

	analysis := app.Services.Sleep.GetSleepAnalysis(ctx, userID, 7)
	assert.Equal(t, models.TrendUnavailable, analysis.Trend)
	assert.Equal(
		t,
		[]string{"Sleep analysis unavailable: Not configured"},
		analysis.Recommendations,
	)

	assert.Equal(
		t,
		"AI suggestions unavailable. Please configure OPEN_WEB_UI_API_KEY.",
		app.Services.AI.GetSuggestion(ctx, "hello"),
	)

	assert.Empty(t, app.Services.Calendar.GetEvents(ctx))
	assert.Empty(t, app.Services.Todos.GetTodos(ctx))

	err := app.Services.Todos.DeleteTodo(ctx, "holiday")
	assert.NotNil(t, err)

	data := app.Services.Dashboard.Get(ctx, true)
	require.NotNil(t, data.AISuggestions)
	assert.Equal(
		t,
		"AI suggestions unavailable. Please configure OPEN_WEB_UI_API_KEY.",
		data.AISuggestions.DayPlan,
	)
}

func TestVendorFailures(t *testing.T) {
	app := newApp(dashboard.Clients{
		Calendar: nil,
		Weather:  mocks.NewFailingWeatherClient(openweather.ErrUnauthorized),
		Garmin:   mocks.NewFailingGarminClient(garmin.ErrAuthentication),
		AI: mocks.NewFailingAIClient(
			openwebui.APIError{StatusCode: 403, Message: "forbidden"},
		),
	})
	ctx := context.Background()

	weather := app.Services.Weather.GetWeather(ctx)
	require.NotNil(t, weather.SetupRequired)
	assert.Equal(t, "API key not activated", *weather.SetupRequired)
	require.NotNil(t, weather.SetupMessage)
	assert.Contains(t, *weather.SetupMessage, "New keys can take 1-2 hours to activate.")

	fitness := app.Services.Fitness.GetData(ctx, app.Services.Fitness.Today())
	assert.Equal(t, "Connection failed", fitness.TrainingStatus)
	require.NotNil(t, fitness.SetupMessage)
	assert.Contains(t, *fitness.SetupMessage, "Could not connect to Garmin.")

	analysis := app.Services.Sleep.GetSleepAnalysis(ctx, userID, 7)
	assert.Equal(
		t,
		[]string{"Sleep analysis unavailable: Connection failed"},
		analysis.Recommendations,
	)

	assert.Equal(
		t,
		"AI suggestions unavailable (Error 403)",
		app.Services.AI.GetSuggestion(ctx, "hello"),
	)
}

func TestWeatherFailureReasons(t *testing.T) {
	tests := map[error]string{
		openweather.StatusError{StatusCode: 500}: "API error",
		context.DeadlineExceeded:                "Request timeout",
		errors.New("connection refused"):        "Service unavailable",
	}

	for err, reason := range tests {
		//nolint:exhaustruct //only weather is configured
		app := newApp(dashboard.Clients{Weather: mocks.NewFailingWeatherClient(err)})

		weather := app.Services.Weather.GetWeather(context.Background())
		require.NotNil(t, weather.SetupRequired)
		assert.Equal(t, reason, *weather.SetupRequired)
		assert.Nil(t, weather.SetupMessage)
	}
}

func TestAIFailures(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{
			err:      fmt.Errorf("post: %w", context.DeadlineExceeded),
			expected: "AI suggestions timed out. Please try again.",
		},
		{
			err:      errors.New("boom"),
			expected: "AI suggestions error: boom",
		},
	}

	for _, tt := range tests {
		//nolint:exhaustruct //only AI is configured
		app := newApp(dashboard.Clients{AI: mocks.NewFailingAIClient(tt.err)})

		assert.Equal(t, tt.expected, app.Services.AI.GetSuggestion(context.Background(), "hi"))
	}
}
