package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/services"
	"dashboard.xdoubleu.com/internal/auth"
	"github.com/xhit/go-str2duration/v2"
)

const (
	SleepSyncJobID  = "sleep"
	sleepSyncDays   = 7
	defaultInterval = 6 * time.Hour
)

// SleepSyncJob keeps the cached sleep records of every user fresh.
type SleepSyncJob struct {
	authService  auth.Service
	sleepService *services.SleepService
	interval     time.Duration
}

func NewSleepSyncJob(
	authService auth.Service,
	sleepService *services.SleepService,
	interval string,
) SleepSyncJob {
	runEvery, err := str2duration.ParseDuration(interval)
	if err != nil || runEvery <= 0 {
		runEvery = defaultInterval
	}

	return SleepSyncJob{
		authService:  authService,
		sleepService: sleepService,
		interval:     runEvery,
	}
}

func (j SleepSyncJob) ID() string {
	return SleepSyncJobID
}

func (j SleepSyncJob) RunEvery() time.Duration {
	return j.interval
}

func (j SleepSyncJob) Run(ctx context.Context, logger *slog.Logger) error {
	users, err := j.authService.GetAllUsers()
	if err != nil {
		return err
	}

	for _, user := range users {
		logger.Debug(fmt.Sprintf("syncing sleep records of user %s", user.ID))

		var synced int
		synced, err = j.sleepService.SyncRecent(ctx, user.ID, sleepSyncDays)
		if err != nil {
			return err
		}

		logger.Debug(fmt.Sprintf("synced %d nights", synced))
	}

	return nil
}
