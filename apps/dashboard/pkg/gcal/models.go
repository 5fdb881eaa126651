package gcal

import (
	"google.golang.org/api/calendar/v3"
)

const PrimaryCalendarID = "primary"

type Calendar struct {
	ID      string
	Summary string
	Primary bool
}

type EventTime struct {
	Date     string
	DateTime string
	TimeZone string
}

// Raw returns the date-time when present and the date otherwise.
func (eventTime EventTime) Raw() string {
	if eventTime.DateTime != "" {
		return eventTime.DateTime
	}
	return eventTime.Date
}

type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       EventTime
	End         EventTime
}

func fromAPICalendar(entry *calendar.CalendarListEntry) Calendar {
	return Calendar{
		ID:      entry.Id,
		Summary: entry.Summary,
		Primary: entry.Primary,
	}
}

func fromAPIEvent(event *calendar.Event) Event {
	return Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start:       fromAPIEventTime(event.Start),
		End:         fromAPIEventTime(event.End),
	}
}

func fromAPIEventTime(eventTime *calendar.EventDateTime) EventTime {
	if eventTime == nil {
		return EventTime{}
	}

	return EventTime{
		Date:     eventTime.Date,
		DateTime: eventTime.DateTime,
		TimeZone: eventTime.TimeZone,
	}
}

func toAPIEvent(event Event) *calendar.Event {
	//nolint:exhaustruct //other fields are optional
	return &calendar.Event{
		Id:          event.ID,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start:       toAPIEventTime(event.Start),
		End:         toAPIEventTime(event.End),
	}
}

func toAPIEventTime(eventTime EventTime) *calendar.EventDateTime {
	//nolint:exhaustruct //other fields are optional
	return &calendar.EventDateTime{
		Date:     eventTime.Date,
		DateTime: eventTime.DateTime,
		TimeZone: eventTime.TimeZone,
	}
}
