package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type SubscribeSyncDto struct {
	Job string `json:"job"`
}

type SyncStateDto struct {
	Job       string     `json:"job"`
	IsSyncing bool       `json:"isSyncing"`
	LastSync  *time.Time `json:"lastSync"`
}

func (dto SubscribeSyncDto) Topic() string {
	return dto.Job
}

func (dto SubscribeSyncDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "job", dto.Job, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
