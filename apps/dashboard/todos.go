package dashboard

import (
	"fmt"
	"net/http"

	"dashboard.xdoubleu.com/apps/dashboard/internal/dtos"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
)

func (app *Dashboard) todosRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/todos", prefix),
		app.Services.Auth.Access(app.getTodosHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/todos", prefix),
		app.Services.Auth.Access(app.createTodoHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("PATCH %s/todos/{id}", prefix),
		app.Services.Auth.Access(app.updateTodoHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("DELETE %s/todos/{id}", prefix),
		app.Services.Auth.Access(app.deleteTodoHandler),
	)
}

func (app *Dashboard) getTodosHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.Services.Todos.GetTodos(r.Context()))
}

func (app *Dashboard) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var createTodoDto dtos.CreateTodoDto

	err := httptools.ReadJSON(r.Body, &createTodoDto)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if ok, errs := createTodoDto.Validate(); !ok {
		errorJSON(w, http.StatusBadRequest, "Title and date are required", errs)
		return
	}

	todo, err := app.Services.Todos.CreateTodo(r.Context(), &createTodoDto)
	if err != nil {
		panic(err)
	}

	writeJSON(w, http.StatusCreated, todo)
}

func (app *Dashboard) updateTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var updateTodoDto dtos.UpdateTodoDto

	err = httptools.ReadJSON(r.Body, &updateTodoDto)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if ok, errs := updateTodoDto.Validate(); !ok {
		errorJSON(w, http.StatusBadRequest, "Completed status required", errs)
		return
	}

	todo, err := app.Services.Todos.UpdateTodo(r.Context(), id, *updateTodoDto.Completed)
	if err != nil {
		panic(err)
	}

	writeJSON(w, http.StatusOK, todo)
}

func (app *Dashboard) deleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Todos.DeleteTodo(r.Context(), id)
	if err != nil {
		panic(err)
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Todo deleted"})
}
