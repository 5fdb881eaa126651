package dashboard_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"testing"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/mocks"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func getDashboard(t *testing.T, path string) (*http.Response, models.Dashboard) {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/%s", testApp.GetName(), path),
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	rs := tReq.Do(t)

	var rsData models.Dashboard
	err := json.NewDecoder(rs.Body).Decode(&rsData)
	require.Nil(t, err)

	return rs, rsData
}

func TestGetDashboard(t *testing.T) {
	rs, rsData := getDashboard(t, "dashboard")

	assert.Equal(t, http.StatusOK, rs.StatusCode)

	assert.Equal(t, "Freiburg", rsData.Weather.City)
	assert.Equal(t, 18.5, rsData.Weather.Temperature)
	assert.Nil(t, rsData.Weather.SetupRequired)

	require.NotNil(t, rsData.Garmin.SleepScore)
	assert.Equal(t, 80, *rsData.Garmin.SleepScore)
	assert.Equal(t, 7.5, rsData.Garmin.SleepHours)
	assert.Equal(t, "PRODUCTIVE", rsData.Garmin.TrainingStatus)

	require.Len(t, rsData.Calendar.Today, 1)
	assert.Equal(t, "Day off", rsData.Calendar.Today[0].Summary)
	assert.True(t, rsData.Calendar.Today[0].IsAllDay)
	assert.Len(t, rsData.Calendar.Upcoming, 2)

	require.NotNil(t, rsData.AISuggestions)
	assert.Equal(t, mocks.MockedSuggestion, rsData.AISuggestions.DayPlan)
	assert.Equal(t, mocks.MockedSuggestion, rsData.AISuggestions.Freetime)
	assert.Equal(t, mocks.MockedSuggestion, rsData.AISuggestions.Nutrition)
}

func TestGetDashboardReleasesSuggestionWorkers(t *testing.T) {
	getDashboard(t, "dashboard")

	before := runtime.NumGoroutine()

	for range 20 {
		rs, _ := getDashboard(t, "dashboard")
		assert.Equal(t, http.StatusOK, rs.StatusCode)
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+5
	}, time.Second, 10*time.Millisecond)
}

func TestGetQuickDashboard(t *testing.T) {
	rs, rsData := getDashboard(t, "dashboard/quick")

	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Nil(t, rsData.AISuggestions)
	assert.Len(t, rsData.Calendar.Upcoming, 2)
}

func TestRefresh(t *testing.T) {
	rs, rsData := getDashboard(t, "refresh")

	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.NotNil(t, rsData.AISuggestions)
}

func TestDashboardPromptContext(t *testing.T) {
	getDashboard(t, "dashboard")

	requests := testAIClient.Requests()
	require.NotEmpty(t, requests)

	prompt := requests[len(requests)-1].Messages[0].Content
	assert.Contains(t, prompt, "Weather: 18.5°C, scattered clouds")
	assert.Contains(t, prompt, "Sleep Score: 80")
	assert.Contains(t, prompt, "Training Status: PRODUCTIVE")
	assert.Contains(t, prompt, `"summary": "Day off"`)
	assert.Contains(t, prompt, "Upcoming Events (next 2 months):")
	assert.Equal(t, 1000, requests[len(requests)-1].MaxTokens)
}
