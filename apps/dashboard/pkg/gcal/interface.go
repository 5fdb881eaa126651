package gcal

import (
	"context"
	"time"
)

type Client interface {
	ListCalendars(ctx context.Context) ([]Calendar, error)
	ListEvents(ctx context.Context, calendarID string, query EventsQuery) ([]Event, error)
	GetEvent(ctx context.Context, calendarID string, eventID string) (*Event, error)
	InsertEvent(ctx context.Context, calendarID string, event Event) (*Event, error)
	UpdateEventSummary(
		ctx context.Context,
		calendarID string,
		eventID string,
		summary string,
	) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID string, eventID string) error
}

// EventsQuery always expands recurring events and orders them by start time.
type EventsQuery struct {
	TimeMin    time.Time
	TimeMax    *time.Time
	MaxResults int64
}
