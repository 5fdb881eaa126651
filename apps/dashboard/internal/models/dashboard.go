package models

import "time"

type CalendarOverview struct {
	Today    []CalendarEvent `json:"today"`
	Upcoming []CalendarEvent `json:"upcoming"`
}

type AISuggestions struct {
	DayPlan   string `json:"day_plan"`
	Freetime  string `json:"freetime"`
	Nutrition string `json:"nutrition"`
}

type Dashboard struct {
	Timestamp     time.Time        `json:"timestamp"`
	Weather       Weather          `json:"weather"`
	Garmin        FitnessSummary   `json:"garmin"`
	Calendar      CalendarOverview `json:"calendar"`
	AISuggestions *AISuggestions   `json:"ai_suggestions,omitempty"`
}
