package helper

import (
	"slices"
	"sort"
	"strings"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
)

const dateLayout = "2006-01-02"

// FilterCalendars keeps calendars whose summary or ID is in filter.
// An empty filter keeps everything.
func FilterCalendars(calendars []gcal.Calendar, filter []string) []gcal.Calendar {
	if len(filter) == 0 {
		return calendars
	}

	result := []gcal.Calendar{}
	for _, calendar := range calendars {
		if slices.Contains(filter, calendar.Summary) ||
			slices.Contains(filter, calendar.ID) {
			result = append(result, calendar)
		}
	}

	return result
}

func ToCalendarEvent(event gcal.Event, calendarName string) models.CalendarEvent {
	summary := event.Summary
	if summary == "" {
		summary = "No title"
	}

	start := event.Start.Raw()

	return models.CalendarEvent{
		Summary:     summary,
		Start:       start,
		End:         event.End.Raw(),
		Description: event.Description,
		Calendar:    calendarName,
		Location:    event.Location,
		IsAllDay:    !strings.Contains(start, "T"),
	}
}

// ParseEventTime reads an RFC 3339 date-time or a date. Dates are midnight
// in loc.
func ParseEventTime(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if !strings.Contains(raw, "T") {
		date, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	}

	dateTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}

	return dateTime.In(loc), true
}

// SortEvents orders events by start instant. Events with an unparseable
// start keep their relative order after the others.
func SortEvents(events []models.CalendarEvent, loc *time.Location) {
	sort.SliceStable(events, func(i, j int) bool {
		startI, okI := ParseEventTime(events[i].Start, loc)
		startJ, okJ := ParseEventTime(events[j].Start, loc)

		switch {
		case okI && okJ:
			return startI.Before(startJ)
		case okI:
			return true
		default:
			return false
		}
	})
}

func TodayEvents(
	events []models.CalendarEvent,
	now time.Time,
	loc *time.Location,
) []models.CalendarEvent {
	today := now.In(loc).Format(dateLayout)

	result := []models.CalendarEvent{}
	for _, event := range events {
		start, ok := ParseEventTime(event.Start, loc)
		if !ok {
			continue
		}

		if start.Format(dateLayout) == today {
			result = append(result, event)
		}
	}

	return result
}
