package mocks

import (
	"context"
	"sync"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
)

type MockGarminClient struct {
	mu         *sync.Mutex
	err        error
	failAfter  int
	sleepDates []string
}

func NewMockGarminClient() *MockGarminClient {
	return NewGarminClientFailingAfter(-1, nil)
}

// NewFailingGarminClient returns err on every call.
func NewFailingGarminClient(err error) *MockGarminClient {
	return NewGarminClientFailingAfter(0, err)
}

// NewGarminClientFailingAfter serves calls sleep nights, after that every
// sleep request returns err. A negative calls never fails.
func NewGarminClientFailingAfter(calls int, err error) *MockGarminClient {
	return &MockGarminClient{
		mu:         &sync.Mutex{},
		err:        err,
		failAfter:  calls,
		sleepDates: nil,
	}
}

// SleepDates returns the dates requested through GetSleepData, in order.
func (client *MockGarminClient) SleepDates() []string {
	client.mu.Lock()
	defer client.mu.Unlock()

	result := make([]string, len(client.sleepDates))
	copy(result, client.sleepDates)
	return result
}

func (client *MockGarminClient) failing() bool {
	return client.failAfter == 0
}

//nolint:mnd //mocked values
func (client *MockGarminClient) GetSleepData(
	_ context.Context,
	date string,
) (*garmin.SleepDataResponse, error) {
	client.mu.Lock()
	client.sleepDates = append(client.sleepDates, date)
	failing := client.failAfter >= 0 && len(client.sleepDates) > client.failAfter
	client.mu.Unlock()

	if failing {
		return nil, client.err
	}

	seconds := 27000.0
	score := 80

	return &garmin.SleepDataResponse{
		DailySleepDTO: &garmin.DailySleepDTO{
			CalendarDate:     date,
			SleepTimeSeconds: &seconds,
			SleepScores: &garmin.SleepScores{
				Overall: &garmin.ScoreValue{Value: &score},
			},
			SleepLevels: []garmin.SleepLevel{
				{ActivityLevel: "deep", Seconds: 5400},
				{ActivityLevel: "light", Seconds: 14400},
				{ActivityLevel: "rem", Seconds: 5400},
				{ActivityLevel: "awake", Seconds: 1800},
			},
		},
	}, nil
}

//nolint:mnd //mocked values
func (client *MockGarminClient) GetTrainingStatus(
	_ context.Context,
	_ string,
) (*garmin.TrainingStatusResponse, error) {
	if client.failing() {
		return nil, client.err
	}

	load := 320.5
	phrase := "PRODUCTIVE"

	return &garmin.TrainingStatusResponse{
		MostRecentTrainingStatus: &garmin.MostRecentTrainingStatus{
			LatestTrainingStatusData: map[string]garmin.TrainingStatusData{
				"3412345678": {
					AcuteTrainingLoadDTO: &garmin.AcuteTrainingLoadDTO{
						DailyTrainingLoadAcute:   &load,
						DailyTrainingLoadChronic: nil,
					},
					TrainingStatusFeedbackPhrase: &phrase,
					TrainingStatus:               nil,
				},
			},
		},
	}, nil
}

//nolint:mnd //mocked values
func (client *MockGarminClient) GetDailyStats(
	_ context.Context,
	_ string,
) (*garmin.DailyStatsResponse, error) {
	if client.failing() {
		return nil, client.err
	}

	steps := 9500
	calories := 2300.6
	heartRate := 52
	current, highest, lowest := 65, 90, 20

	return &garmin.DailyStatsResponse{
		TotalSteps:                 &steps,
		TotalKilocalories:          &calories,
		RestingHeartRate:           &heartRate,
		BodyBatteryMostRecentValue: &current,
		BodyBatteryHighestValue:    &highest,
		BodyBatteryLowestValue:     &lowest,
	}, nil
}
