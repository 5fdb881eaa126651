package services

import (
	"context"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/dtos"
	"dashboard.xdoubleu.com/apps/dashboard/internal/helper"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

type TodoService struct {
	logger   *slog.Logger
	client   gcal.Client
	location *time.Location
}

func (service *TodoService) GetTodos(ctx context.Context) []models.Todo {
	todos := []models.Todo{}

	if service.client == nil {
		return todos
	}

	events, err := service.client.ListEvents(ctx, gcal.PrimaryCalendarID, gcal.EventsQuery{
		TimeMin:    time.Now().UTC(),
		TimeMax:    nil,
		MaxResults: maxEventsPerCalendar,
	})
	if err != nil {
		service.logger.Error("failed to fetch todos", logging.ErrAttr(err))
		return todos
	}

	for _, event := range events {
		if helper.IsTodo(event.Summary) {
			todos = append(todos, helper.ToTodo(event))
		}
	}

	return todos
}

func (service *TodoService) CreateTodo(
	ctx context.Context,
	createTodoDto *dtos.CreateTodoDto,
) (*models.Todo, error) {
	if service.client == nil {
		return nil, gcal.ErrNotConfigured
	}

	event, err := helper.NewTodoEvent(
		createTodoDto.Title,
		createTodoDto.Date,
		createTodoDto.Time,
		createTodoDto.Completed,
		service.location,
	)
	if err != nil {
		return nil, err
	}

	created, err := service.client.InsertEvent(ctx, gcal.PrimaryCalendarID, event)
	if err != nil {
		return nil, err
	}

	todo := helper.ToTodo(*created)
	return &todo, nil
}

func (service *TodoService) UpdateTodo(
	ctx context.Context,
	id string,
	completed bool,
) (*models.Todo, error) {
	if service.client == nil {
		return nil, gcal.ErrNotConfigured
	}

	event, err := service.client.GetEvent(ctx, gcal.PrimaryCalendarID, id)
	if err != nil {
		return nil, err
	}

	summary := helper.TodoSummary(helper.TodoTitle(event.Summary), completed)

	updated, err := service.client.UpdateEventSummary(
		ctx,
		gcal.PrimaryCalendarID,
		id,
		summary,
	)
	if err != nil {
		return nil, err
	}

	todo := helper.ToTodo(*updated)
	return &todo, nil
}

func (service *TodoService) DeleteTodo(ctx context.Context, id string) error {
	if service.client == nil {
		return gcal.ErrNotConfigured
	}

	return service.client.DeleteEvent(ctx, gcal.PrimaryCalendarID, id)
}
