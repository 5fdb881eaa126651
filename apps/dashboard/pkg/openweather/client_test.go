package openweather_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

//nolint:lll //fixture
const weatherFixture = `{"coord":{"lon":7.85,"lat":47.99},"weather":[{"main":"Clouds","description":"broken clouds","icon":"04d"}],"main":{"temp":12.3,"feels_like":11.1,"temp_min":10.9,"temp_max":13.8,"pressure":1018,"humidity":71},"visibility":9000,"wind":{"speed":2.1,"deg":240},"clouds":{"all":75},"sys":{"country":"DE","sunrise":1760421600,"sunset":1760460000},"name":"Freiburg"}`

func TestGetCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Freiburg", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "key", r.URL.Query().Get("appid"))

		fmt.Fprint(w, weatherFixture)
	}))
	defer srv.Close()

	client := openweather.New(logging.NewNopLogger(), "key", srv.URL)

	response, err := client.GetCurrentWeather(context.Background(), "Freiburg")
	require.Nil(t, err)

	assert.Equal(t, 12.3, response.Main.Temp)
	assert.Equal(t, "broken clouds", response.Weather[0].Description)
	assert.Equal(t, 240.0, *response.Wind.Deg)
	assert.Equal(t, 9000, *response.Visibility)
	assert.Equal(t, "DE", response.Sys.Country)
}

func TestGetCurrentWeatherUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := openweather.New(logging.NewNopLogger(), "key", srv.URL)

	_, err := client.GetCurrentWeather(context.Background(), "Freiburg")
	assert.ErrorIs(t, err, openweather.ErrUnauthorized)
}

func TestGetCurrentWeatherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := openweather.New(logging.NewNopLogger(), "key", srv.URL)

	_, err := client.GetCurrentWeather(context.Background(), "Freiburg")

	var statusErr openweather.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}
