package helper

import (
	"fmt"
	"strings"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
)

const (
	TodoMarker        = "[TODO]"
	DoneMarker        = "[DONE]"
	DefaultTodoTime   = "12:00"
	TodoDuration      = 30 * time.Minute
	TodoDescription   = "Created via Personal Dashboard"
	todoStartLayout   = "2006-01-02T15:04"
	todoTimeLayout    = "15:04"
	todoDateTimeWidth = len("2006-01-02")
)

func IsTodo(summary string) bool {
	return strings.HasPrefix(summary, TodoMarker)
}

func TodoSummary(title string, completed bool) string {
	summary := TodoMarker + " "
	if completed {
		summary += DoneMarker + " "
	}
	return strings.TrimSpace(summary + strings.TrimSpace(title))
}

func TodoTitle(summary string) string {
	title := strings.ReplaceAll(summary, TodoMarker, "")
	title = strings.ReplaceAll(title, DoneMarker, "")
	return strings.TrimSpace(title)
}

func ToTodo(event gcal.Event) models.Todo {
	todo := models.Todo{
		ID:        event.ID,
		Title:     TodoTitle(event.Summary),
		Date:      event.Start.Date,
		Time:      DefaultTodoTime,
		Completed: strings.Contains(event.Summary, DoneMarker),
	}

	if event.Start.DateTime != "" {
		if len(event.Start.DateTime) >= todoDateTimeWidth {
			todo.Date = event.Start.DateTime[:todoDateTimeWidth]
		}

		if start, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			todo.Time = start.Format(todoTimeLayout)
		}
	}

	return todo
}

// NewTodoEvent schedules a todo at date and clock time (HH:MM) in loc.
func NewTodoEvent(
	title string,
	date string,
	clock string,
	completed bool,
	loc *time.Location,
) (gcal.Event, error) {
	start, err := time.ParseInLocation(
		todoStartLayout,
		fmt.Sprintf("%sT%s", date, clock),
		loc,
	)
	if err != nil {
		return gcal.Event{}, err
	}

	end := start.Add(TodoDuration)

	//nolint:exhaustruct //ID is assigned by the calendar
	return gcal.Event{
		Summary:     TodoSummary(title, completed),
		Description: TodoDescription,
		Start: gcal.EventTime{
			Date:     "",
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: gcal.EventTime{
			Date:     "",
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}, nil
}
