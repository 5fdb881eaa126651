package models

type Weather struct {
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feels_like"`
	Description   string   `json:"description"`
	Humidity      int      `json:"humidity"`
	WindSpeed     float64  `json:"wind_speed"`
	WindDirection *float64 `json:"wind_direction,omitempty"`
	Pressure      *int     `json:"pressure,omitempty"`
	Visibility    *int     `json:"visibility,omitempty"`
	Clouds        *int     `json:"clouds,omitempty"`
	TempMin       *float64 `json:"temp_min,omitempty"`
	TempMax       *float64 `json:"temp_max,omitempty"`
	Sunrise       *int64   `json:"sunrise,omitempty"`
	Sunset        *int64   `json:"sunset,omitempty"`
	City          string   `json:"city"`
	Country       *string  `json:"country,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lon           *float64 `json:"lon,omitempty"`
	Icon          string   `json:"icon"`
	SetupRequired *string  `json:"setup_required,omitempty"`
	SetupMessage  *string  `json:"setup_message,omitempty"`
}

type WeatherDetails struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Pressure      int     `json:"pressure"`
	Visibility    int     `json:"visibility"`
	Clouds        int     `json:"clouds"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	Sunrise       int64   `json:"sunrise"`
	Sunset        int64   `json:"sunset"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}

//nolint:mnd //no magic number
func (weather Weather) Details() WeatherDetails {
	details := WeatherDetails{
		Temperature:   weather.Temperature,
		FeelsLike:     weather.FeelsLike,
		Description:   weather.Description,
		Humidity:      weather.Humidity,
		WindSpeed:     weather.WindSpeed,
		WindDirection: valueOr(weather.WindDirection, 0),
		Pressure:      valueOr(weather.Pressure, 1013),
		Visibility:    valueOr(weather.Visibility, 10000),
		Clouds:        valueOr(weather.Clouds, 0),
		TempMin:       valueOr(weather.TempMin, weather.Temperature-2),
		TempMax:       valueOr(weather.TempMax, weather.Temperature+2),
		Sunrise:       valueOr(weather.Sunrise, 0),
		Sunset:        valueOr(weather.Sunset, 0),
		City:          weather.City,
		Country:       valueOr(weather.Country, "N/A"),
		Lat:           valueOr(weather.Lat, 0),
		Lon:           valueOr(weather.Lon, 0),
	}

	if details.City == "" {
		details.City = "Unknown"
	}

	return details
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
