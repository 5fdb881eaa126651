package garmin

import (
	"context"
	"fmt"
	"net/url"
)

func (client *client) GetSleepData(
	ctx context.Context,
	date string,
) (*SleepDataResponse, error) {
	var response SleepDataResponse

	err := client.sendRequest(ctx, func(displayName string) string {
		return fmt.Sprintf(
			"wellness-service/wellness/dailySleepData/%s?date=%s&nonSleepBufferMinutes=60",
			url.PathEscape(displayName),
			date,
		)
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (client *client) GetTrainingStatus(
	ctx context.Context,
	date string,
) (*TrainingStatusResponse, error) {
	var response TrainingStatusResponse

	err := client.sendRequest(ctx, func(_ string) string {
		return fmt.Sprintf("metrics-service/metrics/trainingstatus/aggregated/%s", date)
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (client *client) GetDailyStats(
	ctx context.Context,
	date string,
) (*DailyStatsResponse, error) {
	var response DailyStatsResponse

	err := client.sendRequest(ctx, func(displayName string) string {
		return fmt.Sprintf(
			"usersummary-service/usersummary/daily/%s?calendarDate=%s",
			url.PathEscape(displayName),
			date,
		)
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
