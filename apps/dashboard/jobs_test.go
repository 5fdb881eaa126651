package dashboard_test

import (
	"context"
	"testing"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/jobs"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

func TestSleepSyncJob(t *testing.T) {
	job := jobs.NewSleepSyncJob(testApp.Services.Auth, testApp.Services.Sleep, "12h")

	assert.Equal(t, "sleep", job.ID())
	assert.Equal(t, 12*time.Hour, job.RunEvery())

	err := job.Run(context.Background(), logging.NewNopLogger())
	require.Nil(t, err)

	loc := testApp.Config.Location()
	today := time.Now().In(loc)

	records, err := testApp.Repositories.Sleep.GetRange(
		context.Background(),
		userID,
		today.AddDate(0, 0, -6).Format(models.SleepDateFormat),
		today.Format(models.SleepDateFormat),
	)
	require.Nil(t, err)
	assert.Len(t, records, 7)

	record := records[today.Format(models.SleepDateFormat)]
	assert.Equal(t, 7.5, record.Hours)
	assert.Equal(t, 80, record.Score)
	assert.Equal(t, 240.0, record.LightMinutes)
}

func TestSleepSyncJobInvalidInterval(t *testing.T) {
	job := jobs.NewSleepSyncJob(testApp.Services.Auth, testApp.Services.Sleep, "often")

	assert.Equal(t, 6*time.Hour, job.RunEvery())
}
