package openweather

import "context"

type Client interface {
	GetCurrentWeather(ctx context.Context, city string) (*CurrentWeatherResponse, error)
}
