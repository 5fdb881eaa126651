package helper

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"github.com/sgreben/piecewiselinear"
)

const (
	RecommendedSleepHours = 8
	OptimalBedtime        = "22:30 - 23:00"
	trendWindow           = 3
	trendThresholdHours   = 0.5
	consistencyPenalty    = 30
)

// consistency maps the standard deviation of sleep duration (hours) to a
// score, losing 30 points per hour of deviation.
//
//nolint:gochecknoglobals //lookup table
var consistency = piecewiselinear.Function{
	X: []float64{0, 100.0 / consistencyPenalty},
	Y: []float64{100, 0},
}

func CalculateSleepStages(levels []models.SleepLevel) models.SleepStages {
	stages := models.SleepStages{}

	for _, level := range levels {
		stage := strings.ToLower(level.ActivityLevel)
		minutes := level.Seconds / 60 //nolint:mnd //seconds to minutes

		switch {
		case strings.Contains(stage, "deep"):
			stages.Deep += minutes
		case strings.Contains(stage, "light"):
			stages.Light += minutes
		case strings.Contains(stage, "rem"):
			stages.REM += minutes
		case strings.Contains(stage, "awake"):
			stages.Awake += minutes
		}
	}

	return stages
}

func AnalyzeSleep(records []models.SleepRecord) models.SleepAnalysis {
	if len(records) == 0 {
		return FallbackSleepAnalysis("No data")
	}

	sorted := make([]models.SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	n := float64(len(sorted))

	var totalHours, totalDeep, totalLight, totalRem, totalAwake, totalDebt float64
	scoreSum, scoreCount := 0, 0
	for _, record := range sorted {
		totalHours += record.Hours
		totalDeep += record.DeepMinutes
		totalLight += record.LightMinutes
		totalRem += record.RemMinutes
		totalAwake += record.AwakeMinutes
		totalDebt += math.Max(0, RecommendedSleepHours-record.Hours)

		if record.Score > 0 {
			scoreSum += record.Score
			scoreCount++
		}
	}

	avgHours := totalHours / n
	avgScore := float64(scoreSum) / float64(max(scoreCount, 1))
	avgDeep := totalDeep / n
	avgRem := totalRem / n
	avgDebt := totalDebt / n

	consistencyScore := ConsistencyScore(sorted, avgHours)

	return models.SleepAnalysis{
		WeeklyData: sorted,
		Averages: models.SleepAverages{
			Hours:        round(avgHours, 1),
			Score:        round(avgScore, 0),
			DeepMinutes:  round(avgDeep, 0),
			LightMinutes: round(totalLight/n, 0),
			RemMinutes:   round(avgRem, 0),
			AwakeMinutes: round(totalAwake/n, 0),
		},
		ConsistencyScore: round(consistencyScore, 0),
		SleepDebt: models.SleepDebt{
			TotalHours: round(totalDebt, 1),
			AvgDaily:   round(avgDebt, 1),
		},
		Trend:          SleepTrend(sorted),
		OptimalBedtime: OptimalBedtime,
		Recommendations: SleepRecommendations(
			avgHours,
			avgScore,
			consistencyScore,
			avgDeep,
			avgRem,
			avgDebt,
		),
	}
}

// ConsistencyScore uses the population standard deviation of the hours slept.
func ConsistencyScore(records []models.SleepRecord, mean float64) float64 {
	if len(records) <= 1 {
		return 100 //nolint:mnd //perfect score
	}

	variance := 0.0
	for _, record := range records {
		variance += math.Pow(record.Hours-mean, 2) //nolint:mnd //square
	}
	variance /= float64(len(records))

	score := consistency.At(math.Sqrt(variance))
	return math.Max(0, math.Min(100, score)) //nolint:mnd //score bounds
}

// SleepTrend compares the newest three nights with the three before them.
// Records must be sorted newest first.
func SleepTrend(records []models.SleepRecord) models.Trend {
	if len(records) < 2*trendWindow {
		return models.TrendInsufficientData
	}

	recent, older := 0.0, 0.0
	for i := range trendWindow {
		recent += records[i].Hours
		older += records[i+trendWindow].Hours
	}
	recent /= trendWindow
	older /= trendWindow

	switch {
	case recent > older+trendThresholdHours:
		return models.TrendImproving
	case recent < older-trendThresholdHours:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

//nolint:mnd //thresholds
func SleepRecommendations(
	avgHours float64,
	avgScore float64,
	consistencyScore float64,
	deepMinutes float64,
	remMinutes float64,
	avgDebt float64,
) []string {
	recommendations := []string{}

	switch {
	case avgHours < 7:
		recommendations = append(recommendations,
			"⚠️ You're averaging less than 7 hours. Aim for 7-9 hours for optimal recovery.")
	case avgHours > 9:
		recommendations = append(recommendations,
			"💤 Sleeping over 9 hours might indicate poor sleep quality. Check for disruptions.")
	default:
		recommendations = append(recommendations,
			"✅ Great sleep duration! You're in the optimal 7-9 hour range.")
	}

	switch {
	case avgScore < 70:
		recommendations = append(recommendations,
			"📉 Low sleep quality detected. Consider reducing caffeine and screen time before bed.")
	case avgScore >= 80:
		recommendations = append(recommendations,
			"🌟 Excellent sleep quality! Keep up your sleep routine.")
	}

	if consistencyScore < 70 {
		recommendations = append(recommendations,
			"🔄 Inconsistent sleep schedule. Try going to bed at the same time each night.")
	} else {
		recommendations = append(recommendations,
			"✅ Good sleep consistency! Regular schedule helps optimize recovery.")
	}

	switch {
	case deepMinutes < 60:
		recommendations = append(recommendations,
			"🔍 Low deep sleep. Avoid alcohol and exercise 3+ hours before bedtime.")
	case deepMinutes > 120:
		recommendations = append(recommendations,
			"💪 Excellent deep sleep! Your body is recovering optimally.")
	}

	switch {
	case remMinutes < 60:
		recommendations = append(recommendations,
			"🧠 Low REM sleep. Manage stress and maintain consistent sleep times.")
	case remMinutes > 120:
		recommendations = append(recommendations,
			"🎯 Great REM sleep! Your mind is processing and learning well.")
	}

	if avgDebt > 1 {
		recommendations = append(recommendations, fmt.Sprintf(
			"⏰ You have %.1f hours of daily sleep debt. Consider a weekend catch-up sleep session.",
			round(avgDebt, 1),
		))
	}

	return recommendations
}

func FallbackSleepAnalysis(reason string) models.SleepAnalysis {
	//nolint:exhaustruct //zero values are intended
	return models.SleepAnalysis{
		WeeklyData:      []models.SleepRecord{},
		Trend:           models.TrendUnavailable,
		OptimalBedtime:  "N/A",
		Recommendations: []string{fmt.Sprintf("Sleep analysis unavailable: %s", reason)},
	}
}

// round rounds half to even.
func round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals)) //nolint:mnd //decimal base
	return math.RoundToEven(value*factor) / factor
}
