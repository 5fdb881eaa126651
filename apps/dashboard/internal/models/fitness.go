package models

// FitnessSummary holds the Garmin data of one day. Nil values are
// unavailable.
type FitnessSummary struct {
	SleepScore         *int     `json:"sleep_score"`
	SleepHours         float64  `json:"sleep_hours"`
	TrainingLoad       *float64 `json:"training_load"`
	TrainingStatus     string   `json:"training_status"`
	Steps              *int     `json:"steps"`
	Calories           *int     `json:"calories"`
	HeartRate          *int     `json:"heart_rate"`
	BodyBatteryCurrent *int     `json:"body_battery_current"`
	BodyBatteryHighest *int     `json:"body_battery_highest"`
	BodyBatteryLowest  *int     `json:"body_battery_lowest"`
	SetupRequired      *string  `json:"setup_required,omitempty"`
	SetupMessage       *string  `json:"setup_message,omitempty"`
}

type FitnessDetails struct {
	FitnessSummary
	BodyBattery bool `json:"body_battery"`
}

func (summary FitnessSummary) Details() FitnessDetails {
	return FitnessDetails{
		FitnessSummary: summary,
		BodyBattery:    summary.BodyBatteryCurrent != nil,
	}
}
