package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Sleep *SleepRepository
}

func New(db postgres.DB) *Repositories {
	sleep := &SleepRepository{db: db}

	return &Repositories{
		Sleep: sleep,
	}
}
