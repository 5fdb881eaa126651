package openweather

import (
	"context"
	"net/url"
)

type CurrentWeatherResponse struct {
	Coord      Coord       `json:"coord"`
	Weather    []Condition `json:"weather"`
	Main       Main        `json:"main"`
	Visibility *int        `json:"visibility"`
	Wind       Wind        `json:"wind"`
	Clouds     Clouds      `json:"clouds"`
	Sys        Sys         `json:"sys"`
	Name       string      `json:"name"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type Clouds struct {
	All *int `json:"all"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

func (client client) GetCurrentWeather(
	ctx context.Context,
	city string,
) (*CurrentWeatherResponse, error) {
	var response CurrentWeatherResponse

	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")

	err := client.sendRequest(ctx, query, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
