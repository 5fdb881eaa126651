package services

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const (
	weatherNotConfigured      = "Not configured"
	weatherKeyNotActivated    = "API key not activated"
	weatherAPIError           = "API error"
	weatherRequestTimeout     = "Request timeout"
	weatherServiceUnavailable = "Service unavailable"
	defaultVisibility         = 10000
)

type WeatherService struct {
	logger *slog.Logger
	client openweather.Client
	city   string
}

func (service *WeatherService) GetWeather(ctx context.Context) models.Weather {
	if service.client == nil {
		service.logger.Warn("weather API key not configured")
		return service.fallback(weatherNotConfigured)
	}

	response, err := service.client.GetCurrentWeather(ctx, service.city)
	if err != nil {
		reason := weatherFailureReason(err)
		service.logger.Warn(
			"failed to fetch weather",
			slog.String("reason", reason),
			logging.ErrAttr(err),
		)
		return service.fallback(reason)
	}

	return toWeather(response, service.city)
}

func (service *WeatherService) GetWeatherDetails(ctx context.Context) models.WeatherDetails {
	return service.GetWeather(ctx).Details()
}

func weatherFailureReason(err error) string {
	var statusErr openweather.StatusError
	var netErr net.Error

	switch {
	case errors.Is(err, openweather.ErrUnauthorized):
		return weatherKeyNotActivated
	case errors.As(err, &statusErr):
		return weatherAPIError
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return weatherRequestTimeout
	default:
		return weatherServiceUnavailable
	}
}

// toWeather reports city as configured, OpenWeather may resolve it to a
// district name.
func toWeather(
	response *openweather.CurrentWeatherResponse,
	city string,
) models.Weather {
	description, icon := "", ""
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
		icon = response.Weather[0].Icon
	}

	windDirection := 0.0
	if response.Wind.Deg != nil {
		windDirection = *response.Wind.Deg
	}

	visibility := defaultVisibility
	if response.Visibility != nil {
		visibility = *response.Visibility
	}

	clouds := 0
	if response.Clouds.All != nil {
		clouds = *response.Clouds.All
	}

	return models.Weather{
		Temperature:   response.Main.Temp,
		FeelsLike:     response.Main.FeelsLike,
		Description:   description,
		Humidity:      response.Main.Humidity,
		WindSpeed:     response.Wind.Speed,
		WindDirection: &windDirection,
		Pressure:      &response.Main.Pressure,
		Visibility:    &visibility,
		Clouds:        &clouds,
		TempMin:       &response.Main.TempMin,
		TempMax:       &response.Main.TempMax,
		Sunrise:       &response.Sys.Sunrise,
		Sunset:        &response.Sys.Sunset,
		City:          city,
		Country:       &response.Sys.Country,
		Lat:           &response.Coord.Lat,
		Lon:           &response.Coord.Lon,
		Icon:          icon,
		SetupRequired: nil,
		SetupMessage:  nil,
	}
}

//nolint:mnd //fallback values
func (service *WeatherService) fallback(reason string) models.Weather {
	weather := models.Weather{
		Temperature:   15,
		FeelsLike:     13,
		Description:   strings.ToLower(reason),
		Humidity:      60,
		WindSpeed:     3.5,
		WindDirection: nil,
		Pressure:      nil,
		Visibility:    nil,
		Clouds:        nil,
		TempMin:       nil,
		TempMax:       nil,
		Sunrise:       nil,
		Sunset:        nil,
		City:          service.city,
		Country:       nil,
		Lat:           nil,
		Lon:           nil,
		Icon:          "01d",
		SetupRequired: &reason,
		SetupMessage:  nil,
	}

	switch {
	case reason == weatherNotConfigured:
		message := "⚠️ Weather API not configured. Get a free API key from " +
			"https://openweathermap.org/api and add it to your .env file as WEATHER_API_KEY"
		weather.SetupMessage = &message
	case strings.Contains(reason, "API key"):
		message := "⚠️ Weather API key invalid. Check your WEATHER_API_KEY in .env file. " +
			"Note: New keys can take 1-2 hours to activate."
		weather.SetupMessage = &message
	}

	return weather
}
