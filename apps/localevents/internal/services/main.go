package services

import (
	"log/slog"

	"dashboard.xdoubleu.com/apps/localevents/internal/repositories"
	"dashboard.xdoubleu.com/apps/localevents/pkg/websearch"
	"dashboard.xdoubleu.com/internal/auth"
	"dashboard.xdoubleu.com/internal/config"
)

type Services struct {
	Auth   auth.Service
	Events *EventService
	Search *SearchService
	Feed   *FeedService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	repos *repositories.Repositories,
	searchClient websearch.Client,
	authService auth.Service,
) *Services {
	location := cfg.Location()

	daysAhead := cfg.LocalEventsDays
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	events := &EventService{
		logger:    logger,
		events:    repos.Events,
		location:  location,
		daysAhead: daysAhead,
	}

	return &Services{
		Auth:   authService,
		Events: events,
		Search: &SearchService{logger: logger, client: searchClient, location: location},
		Feed:   &FeedService{logger: logger, events: events, location: location},
	}
}
