package garmin_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

//nolint:lll //fixture
const sleepFixture = `{"dailySleepDTO":{"calendarDate":"2026-10-14","sleepTimeSeconds":27000,"sleepScores":{"overall":{"value":82}},"sleepLevels":[{"activityLevel":"deep","seconds":5400},{"activityLevel":"REM","seconds":6000}]}}`

func newGarminServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("GET /sso/signin", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<form><input type="hidden" name="_csrf" value="csrf-token"></form>`)
	})
	mux.HandleFunc("POST /sso/signin", func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, r.ParseForm())
		assert.Equal(t, "csrf-token", r.PostForm.Get("_csrf"))

		if r.PostForm.Get("password") != "password" {
			fmt.Fprint(w, `<div id="status">invalid credentials</div>`)
			return
		}

		fmt.Fprintf(w, `<script>var response_url = "%s/modern?ticket=ST-1";</script>`, srv.URL)
	})
	mux.HandleFunc("GET /modern", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ticket") != "ST-1" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		//nolint:exhaustruct //other fields are optional
		http.SetCookie(w, &http.Cookie{Name: "SESSIONID", Value: "session", Path: "/"})
	})
	mux.HandleFunc("GET /modern/proxy/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("SESSIONID"); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.URL.Path {
		case "/modern/proxy/userprofile-service/socialProfile":
			fmt.Fprint(w, `{"displayName":"runner"}`)
		case "/modern/proxy/wellness-service/wellness/dailySleepData/runner":
			assert.Equal(t, "2026-10-14", r.URL.Query().Get("date"))
			fmt.Fprint(w, sleepFixture)
		case "/modern/proxy/usersummary-service/usersummary/daily/runner":
			fmt.Fprint(w, `{"totalSteps":10432,"restingHeartRate":52,"bodyBatteryMostRecentValue":64}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestGetSleepData(t *testing.T) {
	srv := newGarminServer(t)

	client := garmin.NewWithBaseURLs(
		logging.NewNopLogger(),
		"user@example.com",
		"password",
		srv.URL+"/sso",
		srv.URL,
	)

	response, err := client.GetSleepData(context.Background(), "2026-10-14")
	require.Nil(t, err)
	require.NotNil(t, response.DailySleepDTO)

	assert.Equal(t, 7.5, response.DailySleepDTO.Hours())
	assert.Equal(t, 82, *response.DailySleepDTO.Score())
	assert.Len(t, response.DailySleepDTO.SleepLevels, 2)

	stats, err := client.GetDailyStats(context.Background(), "2026-10-14")
	require.Nil(t, err)
	assert.Equal(t, 10432, *stats.TotalSteps)
	assert.Nil(t, stats.BodyBatteryHighestValue)
}

func TestGetSleepDataInvalidCredentials(t *testing.T) {
	srv := newGarminServer(t)

	client := garmin.NewWithBaseURLs(
		logging.NewNopLogger(),
		"user@example.com",
		"wrong",
		srv.URL+"/sso",
		srv.URL,
	)

	_, err := client.GetSleepData(context.Background(), "2026-10-14")
	assert.ErrorIs(t, err, garmin.ErrAuthentication)
}

func newSSOStatusClient(t *testing.T, status int) garmin.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return garmin.NewWithBaseURLs(
		logging.NewNopLogger(),
		"user@example.com",
		"password",
		srv.URL+"/sso",
		srv.URL,
	)
}

func TestGetSleepDataSSOUnavailable(t *testing.T) {
	client := newSSOStatusClient(t, http.StatusServiceUnavailable)

	_, err := client.GetSleepData(context.Background(), "2026-10-14")
	require.NotNil(t, err)
	assert.NotErrorIs(t, err, garmin.ErrAuthentication)
	assert.Contains(t, err.Error(), "503")
}

func TestGetSleepDataSSOForbidden(t *testing.T) {
	client := newSSOStatusClient(t, http.StatusForbidden)

	_, err := client.GetSleepData(context.Background(), "2026-10-14")
	assert.ErrorIs(t, err, garmin.ErrAuthentication)
}

func TestDailySleepDTOWithoutScore(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	dto := garmin.DailySleepDTO{}

	assert.Nil(t, dto.Score())
	assert.Equal(t, 0.0, dto.Hours())
}
