package models

import "time"

const SleepDateFormat = "2006-01-02"

type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
	TrendUnavailable      Trend = "unavailable"
)

type SleepLevel struct {
	ActivityLevel string
	Seconds       float64
}

type SleepStages struct {
	Deep  float64
	Light float64
	REM   float64
	Awake float64
}

type SleepRecord struct {
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	Score        int     `json:"score"`
	DeepMinutes  float64 `json:"deep_minutes"`
	LightMinutes float64 `json:"light_minutes"`
	RemMinutes   float64 `json:"rem_minutes"`
	AwakeMinutes float64 `json:"awake_minutes"`
}

func (record SleepRecord) Day() time.Time {
	day, _ := time.Parse(SleepDateFormat, record.Date)
	return day
}

type SleepAverages struct {
	Hours        float64 `json:"hours"`
	Score        float64 `json:"score"`
	DeepMinutes  float64 `json:"deep_minutes"`
	LightMinutes float64 `json:"light_minutes"`
	RemMinutes   float64 `json:"rem_minutes"`
	AwakeMinutes float64 `json:"awake_minutes"`
}

type SleepDebt struct {
	TotalHours float64 `json:"total_hours"`
	AvgDaily   float64 `json:"avg_daily"`
}

type SleepAnalysis struct {
	WeeklyData       []SleepRecord `json:"weekly_data"`
	Averages         SleepAverages `json:"averages"`
	ConsistencyScore float64       `json:"consistency_score"`
	SleepDebt        SleepDebt     `json:"sleep_debt"`
	Trend            Trend         `json:"trend"`
	OptimalBedtime   string        `json:"optimal_bedtime"`
	Recommendations  []string      `json:"recommendations"`
}
