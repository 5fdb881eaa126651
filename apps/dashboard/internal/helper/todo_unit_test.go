package helper_test

import (
	"testing"

	"dashboard.xdoubleu.com/apps/dashboard/internal/helper"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoSummary(t *testing.T) {
	assert.Equal(t, "[TODO] Buy milk", helper.TodoSummary("Buy milk", false))
	assert.Equal(t, "[TODO] [DONE] Buy milk", helper.TodoSummary(" Buy milk ", true))
}

func TestTodoTitle(t *testing.T) {
	assert.Equal(t, "Buy milk", helper.TodoTitle("[TODO] Buy milk"))
	assert.Equal(t, "Buy milk", helper.TodoTitle("[TODO] [DONE]Buy milk"))
	assert.True(t, helper.IsTodo("[TODO] Buy milk"))
	assert.False(t, helper.IsTodo("Buy milk [TODO]"))
}

func TestToTodo(t *testing.T) {
	todo := helper.ToTodo(gcal.Event{
		ID:          "abc",
		Summary:     "[TODO] [DONE] Call mum",
		Description: "",
		Location:    "",
		Start: gcal.EventTime{
			Date:     "",
			DateTime: "2026-10-14T18:45:00+02:00",
			TimeZone: "Europe/Berlin",
		},
		End: gcal.EventTime{Date: "", DateTime: "", TimeZone: ""},
	})

	assert.Equal(t, models.Todo{
		ID:        "abc",
		Title:     "Call mum",
		Date:      "2026-10-14",
		Time:      "18:45",
		Completed: true,
	}, todo)

	//nolint:exhaustruct //only start matters
	allDay := helper.ToTodo(gcal.Event{
		ID:      "def",
		Summary: "[TODO] Taxes",
		Start:   gcal.EventTime{Date: "2026-10-20", DateTime: "", TimeZone: ""},
	})
	assert.Equal(t, "2026-10-20", allDay.Date)
	assert.Equal(t, "12:00", allDay.Time)
	assert.False(t, allDay.Completed)
}

func TestNewTodoEvent(t *testing.T) {
	loc := berlin(t)

	event, err := helper.NewTodoEvent("Call mum", "2026-10-14", "12:45", false, loc)
	require.Nil(t, err)

	assert.Equal(t, "[TODO] Call mum", event.Summary)
	assert.Equal(t, "Created via Personal Dashboard", event.Description)
	assert.Equal(t, "2026-10-14T12:45:00+02:00", event.Start.DateTime)
	assert.Equal(t, "2026-10-14T13:15:00+02:00", event.End.DateTime)
	assert.Equal(t, "Europe/Berlin", event.Start.TimeZone)

	_, err = helper.NewTodoEvent("Call mum", "14.10.2026", "12:45", false, loc)
	assert.NotNil(t, err)

}
