package dtos

import (
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/helper"
	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

type CreateEventDto struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

// Validate also derives a missing category and type from the text.
func (dto *CreateEventDto) Validate() (bool, map[string]string) {
	if dto.Category == "" {
		dto.Category = helper.Categorize(dto.Title, dto.Description)
	}

	if dto.Type == "" {
		dto.Type = helper.DetermineType(dto.Title, dto.Description)
	}

	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)
	validate.Check(v, "date", dto.Date, validate.IsNotEmpty)
	validate.Check(v, "type", dto.Type, validate.IsInSlice(models.EventTypes))

	errs := map[string]string{}
	for key, message := range v.Errors() {
		errs[key] = message
	}

	if _, ok := errs["date"]; !ok {
		if _, err := time.Parse(eventDateLayout, dto.Date); err != nil {
			errs["date"] = "must be formatted as YYYY-MM-DD"
		}
	}

	if dto.Time != "" {
		if _, err := time.Parse(eventTimeLayout, dto.Time); err != nil {
			errs["time"] = "must be formatted as HH:MM"
		}
	}

	return len(errs) == 0, errs
}

func (dto *CreateEventDto) ToEvent() models.Event {
	tags := dto.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Event{
		ID:          0,
		Title:       dto.Title,
		Category:    dto.Category,
		Type:        dto.Type,
		Date:        dto.Date,
		Time:        dto.Time,
		Location:    dto.Location,
		Description: dto.Description,
		Tags:        tags,
		URL:         dto.URL,
	}
}
