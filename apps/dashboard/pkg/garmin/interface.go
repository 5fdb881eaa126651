package garmin

import "context"

// Client fetches daily data from Garmin Connect. Dates use the
// YYYY-MM-DD format.
type Client interface {
	GetSleepData(ctx context.Context, date string) (*SleepDataResponse, error)
	GetTrainingStatus(ctx context.Context, date string) (*TrainingStatusResponse, error)
	GetDailyStats(ctx context.Context, date string) (*DailyStatsResponse, error)
}
