package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const (
	fitnessNotConfigured    = "Not configured"
	fitnessConnectionFailed = "Connection failed"
	unavailable             = "N/A"
)

//nolint:gochecknoglobals //setup hints
var fitnessSetupMessages = map[string]string{
	fitnessNotConfigured: "⚠️ Garmin not configured. Add your GARMIN_EMAIL and " +
		"GARMIN_PASSWORD to .env file. This feature is optional.",
	fitnessConnectionFailed: "⚠️ Could not connect to Garmin. Check your " +
		"GARMIN_EMAIL and GARMIN_PASSWORD in .env file.",
}

type FitnessService struct {
	logger   *slog.Logger
	client   garmin.Client
	location *time.Location
}

func (service *FitnessService) Today() string {
	return time.Now().In(service.location).Format(models.SleepDateFormat)
}

// GetData collects the Garmin summary of date (YYYY-MM-DD).
func (service *FitnessService) GetData(ctx context.Context, date string) models.FitnessSummary {
	if service.client == nil {
		service.logger.Warn("Garmin credentials not configured")
		return fitnessFallback(fitnessNotConfigured)
	}

	sleep, err := service.client.GetSleepData(ctx, date)
	if err != nil {
		service.logger.Error("failed to fetch Garmin sleep data", logging.ErrAttr(err))
		return fitnessFallback(fitnessConnectionFailed)
	}

	//nolint:exhaustruct //setup fields stay empty
	summary := models.FitnessSummary{
		TrainingStatus: unavailable,
	}

	if sleep.DailySleepDTO != nil {
		summary.SleepScore = sleep.DailySleepDTO.Score()
		summary.SleepHours = sleep.DailySleepDTO.Hours()
	}

	service.setTrainingData(ctx, date, &summary)
	service.setDailyStats(ctx, date, &summary)

	service.logger.Info("Garmin data synced successfully")

	return summary
}

func (service *FitnessService) GetDetails(ctx context.Context) models.FitnessDetails {
	return service.GetData(ctx, service.Today()).Details()
}

func (service *FitnessService) setTrainingData(
	ctx context.Context,
	date string,
	summary *models.FitnessSummary,
) {
	response, err := service.client.GetTrainingStatus(ctx, date)
	if err != nil {
		service.logger.Debug("training status unavailable", logging.ErrAttr(err))
		return
	}

	if response.MostRecentTrainingStatus == nil ||
		len(response.MostRecentTrainingStatus.LatestTrainingStatusData) == 0 {
		return
	}

	devices := response.MostRecentTrainingStatus.LatestTrainingStatusData
	keys := make([]string, 0, len(devices))
	for key := range devices {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	device := devices[keys[0]]

	if load := device.AcuteTrainingLoadDTO; load != nil {
		if load.DailyTrainingLoadAcute != nil {
			summary.TrainingLoad = load.DailyTrainingLoadAcute
		} else {
			summary.TrainingLoad = load.DailyTrainingLoadChronic
		}
	}

	switch {
	case device.TrainingStatusFeedbackPhrase != nil:
		summary.TrainingStatus = *device.TrainingStatusFeedbackPhrase
	case device.TrainingStatus != nil:
		summary.TrainingStatus = strconv.Itoa(*device.TrainingStatus)
	}
}

func (service *FitnessService) setDailyStats(
	ctx context.Context,
	date string,
	summary *models.FitnessSummary,
) {
	stats, err := service.client.GetDailyStats(ctx, date)
	if err != nil {
		service.logger.Debug("daily stats unavailable", logging.ErrAttr(err))
		return
	}

	summary.Steps = stats.TotalSteps
	summary.HeartRate = stats.RestingHeartRate
	summary.BodyBatteryCurrent = stats.BodyBatteryMostRecentValue
	summary.BodyBatteryHighest = stats.BodyBatteryHighestValue
	summary.BodyBatteryLowest = stats.BodyBatteryLowestValue

	if stats.TotalKilocalories != nil {
		calories := int(*stats.TotalKilocalories)
		summary.Calories = &calories
	}
}

func isGarminAuthError(err error) bool {
	return errors.Is(err, garmin.ErrAuthentication)
}

func fitnessFallback(reason string) models.FitnessSummary {
	message := fitnessSetupMessages[reason]

	//nolint:exhaustruct //unavailable values stay nil
	return models.FitnessSummary{
		SleepHours:     0,
		TrainingStatus: reason,
		SetupRequired:  &reason,
		SetupMessage:   &message,
	}
}
