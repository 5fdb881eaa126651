package localevents_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/dtos"
	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

type eventsBody struct {
	Events     []models.Event `json:"events"`
	Total      int            `json:"total"`
	Categories []string       `json:"categories"`
	Types      []string       `json:"types"`
	Filters    struct {
		Days     int      `json:"days"`
		Keywords []string `json:"keywords"`
	} `json:"filters"`
}

func getEvents(t *testing.T, query string) (*http.Response, eventsBody) {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		"/localevents/api/events"+query,
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)

	var body eventsBody
	if rs.StatusCode == http.StatusOK {
		err := json.NewDecoder(rs.Body).Decode(&body)
		require.Nil(t, err)
	}

	return rs, body
}

func TestGetEvents(t *testing.T) {
	rs, body := getEvents(t, "")

	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, 9, body.Total)
	assert.Len(t, body.Events, 9)
	assert.Equal(t, 60, body.Filters.Days)
	assert.Empty(t, body.Filters.Keywords)
	assert.Equal(t, []string{"cycling", "fitness", "running", "triathlon", "yoga"}, body.Categories)
	assert.Equal(
		t,
		[]string{"race", "group_training", "meetup", "workshop", "competition"},
		body.Types,
	)

	assert.Equal(t, "Triathlon Training Freiburg", body.Events[0].Title)
	assert.Equal(t, "parkrun Freiburg Seepark", body.Events[1].Title)
	assert.Equal(t, "Baden-Marathon Karlsruhe", body.Events[8].Title)

	for i := 1; i < len(body.Events); i++ {
		assert.LessOrEqual(t, body.Events[i-1].Date, body.Events[i].Date)
	}
}

func TestGetEventsDays(t *testing.T) {
	rs, body := getEvents(t, "?days=90")
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, 10, body.Total)

	rs, body = getEvents(t, "?days=4")
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, "CrossFit Freiburg Open Gym", body.Events[2].Title)
}

func TestGetEventsKeywords(t *testing.T) {
	rs, body := getEvents(t, "?keywords=yoga,%20PARKRUN,")

	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, []string{"yoga", "PARKRUN"}, body.Filters.Keywords)
	assert.Equal(t, "parkrun Freiburg Seepark", body.Events[0].Title)
	assert.Equal(t, "Yoga for Athletes - Freiburg", body.Events[1].Title)

	_, body = getEvents(t, "?keywords=marathon&days=90")
	assert.Equal(t, 2, body.Total)
}

func TestGetEventsInvalidDays(t *testing.T) {
	rs, _ := getEvents(t, "?days=soon")
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)

	rs, _ = getEvents(t, "?days=-1")
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestCreateEvent(t *testing.T) {
	date := time.Now().In(testConfig().Location()).AddDate(0, 0, 200).Format("2006-01-02")
	title := fmt.Sprintf("Dreisam river run %d", time.Now().UnixNano())

	//nolint:exhaustruct //other fields are optional
	data := dtos.CreateEventDto{
		Title:       title,
		Category:    "running",
		Date:        date,
		Time:        "07:30",
		Location:    "Dreisam",
		Description: "Easy morning run",
		Tags:        []string{"running", "river"},
	}

	tReq := test.CreateRequestTester(getRoutes(), http.MethodPost, "/localevents/api/events")
	tReq.AddCookie(&accessToken)
	tReq.SetData(data)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusCreated, rs.StatusCode)

	var event models.Event
	err := json.NewDecoder(rs.Body).Decode(&event)
	require.Nil(t, err)

	assert.NotZero(t, event.ID)
	assert.Equal(t, title, event.Title)
	assert.Equal(t, "meetup", event.Type)
	assert.Equal(t, date, event.Date)

	_, body := getEvents(t, "?days=365&keywords=river")
	require.GreaterOrEqual(t, body.Total, 1)

	found := false
	for _, e := range body.Events {
		if e.ID == event.ID {
			found = true
			assert.Equal(t, []string{"running", "river"}, e.Tags)
			assert.Equal(t, "07:30", e.Time)
		}
	}
	assert.True(t, found)
}

func TestCreateEventInvalid(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	data := dtos.CreateEventDto{
		Title: "",
		Date:  "tomorrow",
	}

	tReq := test.CreateRequestTester(getRoutes(), http.MethodPost, "/localevents/api/events")
	tReq.AddCookie(&accessToken)
	tReq.SetData(data)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)

	var body struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	err := json.NewDecoder(rs.Body).Decode(&body)
	require.Nil(t, err)

	assert.Equal(t, "Invalid event", body.Error)
	assert.Contains(t, body.Errors, "title")
	assert.Contains(t, body.Errors, "date")
}
