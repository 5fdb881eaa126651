package dtos_test

import (
	"testing"

	"dashboard.xdoubleu.com/apps/localevents/internal/dtos"
	"github.com/stretchr/testify/assert"
)

func TestCreateEventDtoValidate(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	dto := dtos.CreateEventDto{
		Title:       "Schauinsland hill repeats",
		Date:        "2026-11-01",
		Description: "Weekly interval session",
	}

	ok, errs := dto.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, "fitness", dto.Category)
	assert.Equal(t, "group_training", dto.Type)
	assert.Equal(t, []string{}, dto.ToEvent().Tags)
}

func TestCreateEventDtoValidateErrors(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	dto := dtos.CreateEventDto{
		Title: "",
		Type:  "party",
		Date:  "01.11.2026",
		Time:  "9am",
	}

	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "type")
	assert.Equal(t, "must be formatted as YYYY-MM-DD", errs["date"])
	assert.Equal(t, "must be formatted as HH:MM", errs["time"])
}
