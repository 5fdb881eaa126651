package models

type EventType = string

const (
	TypeRace          EventType = "race"
	TypeGroupTraining EventType = "group_training"
	TypeMeetup        EventType = "meetup"
	TypeWorkshop      EventType = "workshop"
	TypeCompetition   EventType = "competition"
)

//nolint:gochecknoglobals //fixed list
var EventTypes = []EventType{
	TypeRace,
	TypeGroupTraining,
	TypeMeetup,
	TypeWorkshop,
	TypeCompetition,
}

// Event is a catalogued local event. Date is YYYY-MM-DD, Time is HH:MM.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Type        EventType `json:"type"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	URL         string    `json:"url"`
}

// WebEvent is an event found through a web search. Date and time are free
// text since search results rarely carry them.
type WebEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Type        EventType `json:"type"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
}
