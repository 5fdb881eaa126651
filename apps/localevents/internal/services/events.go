package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/dtos"
	"dashboard.xdoubleu.com/apps/localevents/internal/helper"
	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"dashboard.xdoubleu.com/apps/localevents/internal/repositories"
)

const (
	DefaultDaysAhead = 60
	dateLayout       = "2006-01-02"
)

type EventService struct {
	logger    *slog.Logger
	events    *repositories.EventRepository
	location  *time.Location
	daysAhead int
}

func (service *EventService) Today() time.Time {
	now := time.Now().In(service.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, service.location)
}

func (service *EventService) DaysAhead() int {
	return service.daysAhead
}

// GetEvents returns the events from today up to daysAhead days ahead that
// match any of the keywords, sorted by date and time.
func (service *EventService) GetEvents(
	ctx context.Context,
	daysAhead int,
	keywords []string,
) ([]models.Event, error) {
	today := service.Today()

	events, err := service.events.GetBetween(
		ctx,
		today.Format(dateLayout),
		today.AddDate(0, 0, daysAhead).Format(dateLayout),
	)
	if err != nil {
		return nil, err
	}

	result := []models.Event{}
	for _, event := range events {
		if helper.Matches(event, keywords) {
			result = append(result, event)
		}
	}

	service.logger.Info(fmt.Sprintf("Found %d events (filtered: %v)", len(result), keywords))

	return result, nil
}

func (service *EventService) GetCategories(ctx context.Context) ([]string, error) {
	return service.events.GetCategories(ctx)
}

func (service *EventService) GetTypes() []string {
	return slices.Clone(models.EventTypes)
}

func (service *EventService) AddEvent(
	ctx context.Context,
	createEventDto *dtos.CreateEventDto,
) (*models.Event, error) {
	event, err := service.events.Create(ctx, createEventDto.ToEvent())
	if err != nil {
		return nil, err
	}

	service.logger.Info(fmt.Sprintf("Added new event: %s", event.Title))

	return event, nil
}

// Seed fills an empty catalogue with the starter events. It reports whether
// anything was inserted.
func (service *EventService) Seed(ctx context.Context) (bool, error) {
	count, err := service.events.Count(ctx)
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	events := SeedEvents(service.Today())

	err = service.events.CreateMany(ctx, events)
	if err != nil {
		return false, err
	}

	service.logger.Info(fmt.Sprintf("Seeded %d local events", len(events)))

	return true, nil
}
