package models

type CalendarEvent struct {
	Summary     string `json:"summary"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Calendar    string `json:"calendar"`
	Location    string `json:"location"`
	IsAllDay    bool   `json:"is_all_day"`
}

type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
}
