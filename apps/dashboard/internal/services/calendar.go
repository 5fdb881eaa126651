package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/helper"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const (
	maxEventsPerCalendar = 100
	daysPerMonth         = 30
)

type CalendarService struct {
	logger      *slog.Logger
	client      gcal.Client
	filter      []string
	monthsAhead int
	location    *time.Location
}

func (service *CalendarService) Enabled() bool {
	return service.client != nil
}

// GetEvents merges the upcoming events of every selected calendar.
func (service *CalendarService) GetEvents(ctx context.Context) []models.CalendarEvent {
	events := []models.CalendarEvent{}

	if !service.Enabled() {
		service.logger.Warn("Google Calendar not configured, calendar events disabled")
		service.logger.Info(
			"authorize the dashboard once to create the token file next to the credentials file",
		)
		return events
	}

	calendars, err := service.client.ListCalendars(ctx)
	if err != nil {
		service.logger.Error("failed to list calendars", logging.ErrAttr(err))
		return events
	}

	selected := helper.FilterCalendars(calendars, service.filter)
	if len(service.filter) > 0 {
		service.logger.Info(
			fmt.Sprintf("Using %d of %d calendars", len(selected), len(calendars)),
		)
	} else {
		service.logger.Info(fmt.Sprintf("Using all %d calendars", len(calendars)))
	}

	now := time.Now().UTC()
	timeMax := now.AddDate(0, 0, daysPerMonth*service.monthsAhead)

	for _, calendar := range selected {
		items, errIn := service.client.ListEvents(ctx, calendar.ID, gcal.EventsQuery{
			TimeMin:    now,
			TimeMax:    &timeMax,
			MaxResults: maxEventsPerCalendar,
		})
		if errIn != nil {
			service.logger.Warn(
				fmt.Sprintf("failed to fetch events of calendar '%s'", calendar.Summary),
				logging.ErrAttr(errIn),
			)
			continue
		}

		for _, item := range items {
			events = append(events, helper.ToCalendarEvent(item, calendar.Summary))
		}
	}

	helper.SortEvents(events, service.location)

	service.logger.Debug(fmt.Sprintf("fetched %d calendar events", len(events)))

	return events
}

func (service *CalendarService) GetTodayEvents(
	events []models.CalendarEvent,
) []models.CalendarEvent {
	return helper.TodayEvents(events, time.Now(), service.location)
}
