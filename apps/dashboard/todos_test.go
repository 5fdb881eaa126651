package dashboard_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/dtos"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func doTodosRequest(t *testing.T, method string, path string, data any) *http.Response {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		method,
		fmt.Sprintf("/%s/api/todos%s", testApp.GetName(), path),
	)

	tReq.AddCookie(&accessToken)
	tReq.AddCookie(&refreshToken)

	if data != nil {
		tReq.SetData(data)
	}

	return tReq.Do(t)
}

func TestTodosLifecycle(t *testing.T) {
	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	rs := doTodosRequest(t, http.MethodPost, "", dtos.CreateTodoDto{
		Title:     "Buy new running shoes",
		Date:      date,
		Time:      "",
		Completed: false,
	})
	require.Equal(t, http.StatusCreated, rs.StatusCode)

	var created models.Todo
	err := json.NewDecoder(rs.Body).Decode(&created)
	require.Nil(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy new running shoes", created.Title)
	assert.Equal(t, date, created.Date)
	assert.Equal(t, "12:00", created.Time)
	assert.False(t, created.Completed)

	rs = doTodosRequest(t, http.MethodGet, "", nil)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var todos []models.Todo
	err = json.NewDecoder(rs.Body).Decode(&todos)
	require.Nil(t, err)
	assert.Contains(t, todos, created)

	completed := true
	rs = doTodosRequest(
		t,
		http.MethodPatch,
		"/"+created.ID,
		dtos.UpdateTodoDto{Completed: &completed},
	)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var updated models.Todo
	err = json.NewDecoder(rs.Body).Decode(&updated)
	require.Nil(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Time, updated.Time)

	rs = doTodosRequest(t, http.MethodDelete, "/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var rsData map[string]any
	err = json.NewDecoder(rs.Body).Decode(&rsData)
	require.Nil(t, err)
	assert.Equal(t, true, rsData["success"])
	assert.Equal(t, "Todo deleted", rsData["message"])
}

func TestCreateTodoMissingFields(t *testing.T) {
	rs := doTodosRequest(t, http.MethodPost, "", map[string]any{"title": "No date"})
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)

	var rsData map[string]any
	err := json.NewDecoder(rs.Body).Decode(&rsData)
	require.Nil(t, err)
	assert.Equal(t, "Title and date are required", rsData["error"])
}

func TestUpdateTodoMissingCompleted(t *testing.T) {
	rs := doTodosRequest(t, http.MethodPatch, "/holiday", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}
