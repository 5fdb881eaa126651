package mocks

import (
	"context"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
)

type MockWeatherClient struct {
	err error
}

func NewMockWeatherClient() MockWeatherClient {
	return MockWeatherClient{err: nil}
}

// NewFailingWeatherClient returns err on every call.
func NewFailingWeatherClient(err error) MockWeatherClient {
	return MockWeatherClient{err: err}
}

//nolint:mnd //mocked values
func (client MockWeatherClient) GetCurrentWeather(
	_ context.Context,
	_ string,
) (*openweather.CurrentWeatherResponse, error) {
	if client.err != nil {
		return nil, client.err
	}

	deg := 240.0
	clouds := 40

	return &openweather.CurrentWeatherResponse{
		Coord: openweather.Coord{Lat: 47.99, Lon: 7.85},
		Weather: []openweather.Condition{
			{Main: "Clouds", Description: "scattered clouds", Icon: "03d"},
		},
		Main: openweather.Main{
			Temp:      18.5,
			FeelsLike: 17.9,
			TempMin:   16.2,
			TempMax:   20.1,
			Pressure:  1018,
			Humidity:  55,
		},
		Visibility: nil,
		Wind:       openweather.Wind{Speed: 2.6, Deg: &deg},
		Clouds:     openweather.Clouds{All: &clouds},
		Sys: openweather.Sys{
			Country: "DE",
			Sunrise: 1760421600,
			Sunset:  1760460600,
		},
		Name: "Altstadt",
	}, nil
}
