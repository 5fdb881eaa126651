package gcal

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"
)

func (client client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	calendars := []Calendar{}

	err := client.service.CalendarList.List().Pages(
		ctx,
		func(page *calendar.CalendarList) error {
			for _, entry := range page.Items {
				calendars = append(calendars, fromAPICalendar(entry))
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return calendars, nil
}

func (client client) ListEvents(
	ctx context.Context,
	calendarID string,
	query EventsQuery,
) ([]Event, error) {
	call := client.service.Events.List(calendarID).
		Context(ctx).
		TimeMin(query.TimeMin.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	if query.TimeMax != nil {
		call = call.TimeMax(query.TimeMax.Format(time.RFC3339))
	}

	if query.MaxResults > 0 {
		call = call.MaxResults(query.MaxResults)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	events := []Event{}
	for _, item := range response.Items {
		events = append(events, fromAPIEvent(item))
	}

	return events, nil
}

func (client client) GetEvent(
	ctx context.Context,
	calendarID string,
	eventID string,
) (*Event, error) {
	response, err := client.service.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	event := fromAPIEvent(response)
	return &event, nil
}

func (client client) InsertEvent(
	ctx context.Context,
	calendarID string,
	event Event,
) (*Event, error) {
	response, err := client.service.Events.Insert(calendarID, toAPIEvent(event)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	created := fromAPIEvent(response)
	return &created, nil
}

// UpdateEventSummary patches the summary only, everything else set on the
// event is left untouched.
func (client client) UpdateEventSummary(
	ctx context.Context,
	calendarID string,
	eventID string,
	summary string,
) (*Event, error) {
	//nolint:exhaustruct //only the summary is patched
	patch := &calendar.Event{Summary: summary}

	response, err := client.service.Events.Patch(calendarID, eventID, patch).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	updated := fromAPIEvent(response)
	return &updated, nil
}

func (client client) DeleteEvent(
	ctx context.Context,
	calendarID string,
	eventID string,
) error {
	return client.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
}
