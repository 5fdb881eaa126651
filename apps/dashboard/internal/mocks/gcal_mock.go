package mocks

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

const WorkCalendarID = "work@group.calendar.google.com"

type MockCalendarClient struct {
	mu     *sync.Mutex
	events map[string][]gcal.Event
}

// NewMockCalendarClient serves a primary and a work calendar, each with an
// all-day event today in loc.
func NewMockCalendarClient(loc *time.Location) *MockCalendarClient {
	now := time.Now().In(loc)
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := now.AddDate(0, 0, 7).Truncate(time.Hour)

	return &MockCalendarClient{
		mu: &sync.Mutex{},
		events: map[string][]gcal.Event{
			gcal.PrimaryCalendarID: {
				{
					ID:          "holiday",
					Summary:     "Day off",
					Description: "",
					Location:    "",
					Start:       gcal.EventTime{Date: today, DateTime: "", TimeZone: ""},
					End:         gcal.EventTime{Date: tomorrow, DateTime: "", TimeZone: ""},
				},
			},
			WorkCalendarID: {
				{
					ID:          "review",
					Summary:     "Sprint review",
					Description: "Demo the new dashboard",
					Location:    "Office",
					Start: gcal.EventTime{
						Date:     "",
						DateTime: nextWeek.Format(time.RFC3339),
						TimeZone: loc.String(),
					},
					End: gcal.EventTime{
						Date:     "",
						DateTime: nextWeek.Add(time.Hour).Format(time.RFC3339),
						TimeZone: loc.String(),
					},
				},
			},
		},
	}
}

func (client *MockCalendarClient) ListCalendars(_ context.Context) ([]gcal.Calendar, error) {
	return []gcal.Calendar{
		{ID: gcal.PrimaryCalendarID, Summary: "Personal", Primary: true},
		{ID: WorkCalendarID, Summary: "Work", Primary: false},
	}, nil
}

func (client *MockCalendarClient) ListEvents(
	_ context.Context,
	calendarID string,
	_ gcal.EventsQuery,
) ([]gcal.Event, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	return slices.Clone(client.events[calendarID]), nil
}

func (client *MockCalendarClient) GetEvent(
	_ context.Context,
	calendarID string,
	eventID string,
) (*gcal.Event, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	index := client.indexOf(calendarID, eventID)
	if index == -1 {
		return nil, ErrEventNotFound
	}

	event := client.events[calendarID][index]
	return &event, nil
}

func (client *MockCalendarClient) InsertEvent(
	_ context.Context,
	calendarID string,
	event gcal.Event,
) (*gcal.Event, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	event.ID = uuid.NewString()
	client.events[calendarID] = append(client.events[calendarID], event)

	return &event, nil
}

func (client *MockCalendarClient) UpdateEventSummary(
	_ context.Context,
	calendarID string,
	eventID string,
	summary string,
) (*gcal.Event, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	index := client.indexOf(calendarID, eventID)
	if index == -1 {
		return nil, ErrEventNotFound
	}

	client.events[calendarID][index].Summary = summary
	event := client.events[calendarID][index]
	return &event, nil
}

func (client *MockCalendarClient) DeleteEvent(
	_ context.Context,
	calendarID string,
	eventID string,
) error {
	client.mu.Lock()
	defer client.mu.Unlock()

	index := client.indexOf(calendarID, eventID)
	if index == -1 {
		return ErrEventNotFound
	}

	client.events[calendarID] = slices.Delete(client.events[calendarID], index, index+1)
	return nil
}

func (client *MockCalendarClient) indexOf(calendarID string, eventID string) int {
	return slices.IndexFunc(client.events[calendarID], func(event gcal.Event) bool {
		return event.ID == eventID
	})
}
