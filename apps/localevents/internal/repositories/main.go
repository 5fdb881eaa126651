package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events *EventRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Events: &EventRepository{db: db},
	}
}
