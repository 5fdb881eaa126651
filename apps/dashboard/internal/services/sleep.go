package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/helper"
	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/internal/repositories"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const (
	DefaultSleepDays = 7
	MaxSleepDays     = 31
)

type SleepService struct {
	logger   *slog.Logger
	client   garmin.Client
	sleep    *repositories.SleepRepository
	location *time.Location
}

// GetSleepAnalysis analyzes the last days nights of userID, today included.
// Nights before today are served from the cache when present.
func (service *SleepService) GetSleepAnalysis(
	ctx context.Context,
	userID string,
	days int,
) models.SleepAnalysis {
	if service.client == nil {
		service.logger.Warn("Garmin credentials not configured")
		return helper.FallbackSleepAnalysis(fitnessNotConfigured)
	}

	records, err := service.collect(ctx, userID, days, true)
	if err != nil {
		service.logger.Error("Garmin Sleep Analysis failed", logging.ErrAttr(err))
		return helper.FallbackSleepAnalysis(fitnessConnectionFailed)
	}

	if len(records) == 0 {
		return helper.FallbackSleepAnalysis("No data available")
	}

	analysis := helper.AnalyzeSleep(records)

	service.logger.Info(fmt.Sprintf("Sleep analysis complete for %d days", len(records)))

	return analysis
}

// SyncRecent refetches the last days nights and stores them.
func (service *SleepService) SyncRecent(
	ctx context.Context,
	userID string,
	days int,
) (int, error) {
	if service.client == nil {
		return 0, nil
	}

	records, err := service.collect(ctx, userID, days, false)
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func (service *SleepService) dates(days int) []string {
	today := time.Now().In(service.location)

	dates := make([]string, days)
	for i := range days {
		dates[i] = today.AddDate(0, 0, -i).Format(models.SleepDateFormat)
	}

	return dates
}

func (service *SleepService) collect(
	ctx context.Context,
	userID string,
	days int,
	useCache bool,
) ([]models.SleepRecord, error) {
	dates := service.dates(days)

	cached := map[string]models.SleepRecord{}
	if useCache && days > 1 {
		var err error
		cached, err = service.sleep.GetRange(ctx, userID, dates[days-1], dates[1])
		if err != nil {
			service.logger.Warn("failed to read cached sleep records", logging.ErrAttr(err))
			cached = map[string]models.SleepRecord{}
		}
	}

	records := []models.SleepRecord{}
	fetched := []models.SleepRecord{}
	for _, date := range dates {
		if record, ok := cached[date]; ok {
			records = append(records, record)
			continue
		}

		record, err := service.fetchDay(ctx, date)
		if err != nil {
			if isGarminAuthError(err) {
				return nil, err
			}

			service.logger.Debug(
				fmt.Sprintf("could not fetch sleep data for %s", date),
				logging.ErrAttr(err),
			)
			continue
		}

		if record == nil {
			continue
		}

		records = append(records, *record)
		fetched = append(fetched, *record)
	}

	if len(fetched) > 0 {
		err := service.sleep.Upsert(ctx, fetched, userID)
		if err != nil {
			service.logger.Warn("failed to cache sleep records", logging.ErrAttr(err))
		}
	}

	return records, nil
}

func (service *SleepService) fetchDay(
	ctx context.Context,
	date string,
) (*models.SleepRecord, error) {
	response, err := service.client.GetSleepData(ctx, date)
	if err != nil {
		return nil, err
	}

	if response.DailySleepDTO == nil {
		return nil, nil //nolint:nilnil //no sleep tracked that night
	}

	dto := response.DailySleepDTO

	levels := make([]models.SleepLevel, 0, len(dto.SleepLevels))
	for _, level := range dto.SleepLevels {
		levels = append(levels, models.SleepLevel{
			ActivityLevel: level.ActivityLevel,
			Seconds:       level.Seconds,
		})
	}
	stages := helper.CalculateSleepStages(levels)

	score := 0
	if value := dto.Score(); value != nil {
		score = *value
	}

	return &models.SleepRecord{
		Date:         date,
		Hours:        dto.Hours(),
		Score:        score,
		DeepMinutes:  stages.Deep,
		LightMinutes: stages.Light,
		RemMinutes:   stages.REM,
		AwakeMinutes: stages.Awake,
	}, nil
}
