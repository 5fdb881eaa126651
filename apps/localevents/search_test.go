package localevents_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/mocks"
	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"dashboard.xdoubleu.com/apps/localevents/pkg/websearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

type searchBody struct {
	Keywords string            `json:"keywords"`
	Location string            `json:"location"`
	Events   []models.WebEvent `json:"events"`
	Total    int               `json:"total"`
	Source   string            `json:"source"`
}

func searchEvents(t *testing.T, handler http.Handler, query string) (*http.Response, searchBody) {
	t.Helper()

	tReq := test.CreateRequestTester(
		handler,
		http.MethodGet,
		"/localevents/api/events/search"+query,
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)

	var body searchBody
	if rs.StatusCode == http.StatusOK {
		err := json.NewDecoder(rs.Body).Decode(&body)
		require.Nil(t, err)
	}

	return rs, body
}

func TestSearchEvents(t *testing.T) {
	rs, body := searchEvents(t, getRoutes(), "?keywords=marathon")
	require.Equal(t, http.StatusOK, rs.StatusCode)

	assert.Equal(t, "marathon", body.Keywords)
	assert.Equal(t, "Freiburg", body.Location)
	assert.Equal(t, "web_search", body.Source)

	// two scraped results plus the three direct links
	require.Equal(t, 5, body.Total)

	assert.Equal(t, "web_0", body.Events[0].ID)
	assert.Equal(t, "running", body.Events[0].Category)
	assert.Equal(t, "race", body.Events[0].Type)
	assert.Equal(t, "Check website", body.Events[0].Date)
	assert.Equal(t, "google_search", body.Events[0].Source)
	assert.Equal(t, []string{"marathon", "Freiburg", "online"}, body.Events[0].Tags)

	assert.Equal(t, "web_2", body.Events[1].ID)
	assert.Equal(t, "Visit link for details", body.Events[1].Description)
	assert.Equal(t, "meetup", body.Events[1].Type)

	assert.Equal(t, "fallback_1", body.Events[2].ID)
	assert.Equal(t, "direct_link", body.Events[4].Source)

	queries := testSearchClient.Queries()
	assert.Equal(
		t,
		fmt.Sprintf("marathon events Freiburg %d", time.Now().Year()),
		queries[len(queries)-1],
	)
}

func TestSearchEventsLocation(t *testing.T) {
	rs, body := searchEvents(t, getRoutes(), "?keywords=yoga&location=Basel")
	require.Equal(t, http.StatusOK, rs.StatusCode)

	assert.Equal(t, "Basel", body.Location)
	assert.Equal(t, "Basel", body.Events[0].Location)
}

func TestSearchEventsNoKeywords(t *testing.T) {
	rs, _ := searchEvents(t, getRoutes(), "?keywords=%20")
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestSearchEventsFailure(t *testing.T) {
	app := newApp(mocks.NewFailingSearchClient(errors.New("blocked")))

	rs, body := searchEvents(t, getRoutesFor(app), "?keywords=cycling")
	require.Equal(t, http.StatusOK, rs.StatusCode)

	require.Equal(t, 3, body.Total)
	for _, event := range body.Events {
		assert.Equal(t, "direct_link", event.Source)
		assert.Equal(t, "cycling", event.Category)
	}
}

func TestSearchEventsLimit(t *testing.T) {
	results := []websearch.Result{}
	for i := range 12 {
		results = append(results, websearch.Result{
			Title:       fmt.Sprintf("Bike tour %d", i),
			URL:         fmt.Sprintf("https://example.com/%d", i),
			Description: strings.Repeat("a", 250),
		})
	}

	app := newApp(mocks.NewMockSearchClientWithResults(results))

	rs, body := searchEvents(t, getRoutesFor(app), "?keywords=bike")
	require.Equal(t, http.StatusOK, rs.StatusCode)

	require.Equal(t, 10, body.Total)
	assert.Equal(t, "web_9", body.Events[9].ID)
	assert.Equal(t, strings.Repeat("a", 200)+"...", body.Events[0].Description)
	assert.Equal(t, "cycling", body.Events[0].Category)
}
