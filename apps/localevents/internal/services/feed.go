package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const (
	feedProductID = "-//dashboard.xdoubleu.com//localevents//EN"
	feedName      = "Local events"
	eventDuration = time.Hour
	timeLayout    = "2006-01-02 15:04"
)

type FeedService struct {
	logger   *slog.Logger
	events   *EventService
	location *time.Location
}

// Feed exports the matching catalogue as an iCalendar document. Events
// without a time become all-day events.
func (service *FeedService) Feed(
	ctx context.Context,
	daysAhead int,
	keywords []string,
) (string, error) {
	events, err := service.events.GetEvents(ctx, daysAhead, keywords)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(feedProductID)
	cal.SetName(feedName)
	cal.SetXWRCalName(feedName)
	cal.SetXWRTimezone(service.location.String())

	stamp := time.Now().UTC()

	for _, event := range events {
		err = service.addEvent(cal, event, stamp)
		if err != nil {
			service.logger.Warn(
				fmt.Sprintf("skipping event %d in feed", event.ID),
				logging.ErrAttr(err),
			)
		}
	}

	return cal.Serialize(), nil
}

func (service *FeedService) addEvent(
	cal *ics.Calendar,
	event models.Event,
	stamp time.Time,
) error {
	date, err := time.ParseInLocation(dateLayout, event.Date, service.location)
	if err != nil {
		return err
	}

	var start time.Time
	if event.Time != "" {
		start, err = time.ParseInLocation(
			timeLayout,
			fmt.Sprintf("%s %s", event.Date, event.Time),
			service.location,
		)
		if err != nil {
			return err
		}
	}

	vEvent := cal.AddEvent(EventUID(event))
	vEvent.SetDtStampTime(stamp)
	vEvent.SetSummary(event.Title)
	vEvent.SetDescription(event.Description)
	vEvent.SetLocation(event.Location)
	vEvent.SetURL(event.URL)
	vEvent.AddProperty(ics.ComponentPropertyCategories, event.Category)

	if event.Time == "" {
		vEvent.SetAllDayStartAt(date)
		vEvent.SetAllDayEndAt(date.AddDate(0, 0, 1))
		return nil
	}

	vEvent.SetStartAt(start)
	vEvent.SetEndAt(start.Add(eventDuration))

	return nil
}

// EventUID is stable for an event so subscribed calendars update in place.
func EventUID(event models.Event) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "localevents/%d", event.ID))
	return fmt.Sprintf("%s@dashboard.xdoubleu.com", id.String())
}
