package garmin

type SocialProfile struct {
	DisplayName string `json:"displayName"`
}

type SleepDataResponse struct {
	DailySleepDTO *DailySleepDTO `json:"dailySleepDTO"`
}

type DailySleepDTO struct {
	CalendarDate     string       `json:"calendarDate"`
	SleepTimeSeconds *float64     `json:"sleepTimeSeconds"`
	SleepScores      *SleepScores `json:"sleepScores"`
	SleepLevels      []SleepLevel `json:"sleepLevels"`
}

type SleepScores struct {
	Overall *ScoreValue `json:"overall"`
}

type ScoreValue struct {
	Value *int `json:"value"`
}

type SleepLevel struct {
	ActivityLevel string  `json:"activityLevel"`
	Seconds       float64 `json:"seconds"`
}

// Score is nil when Garmin did not score the night.
func (dto DailySleepDTO) Score() *int {
	if dto.SleepScores == nil || dto.SleepScores.Overall == nil {
		return nil
	}
	return dto.SleepScores.Overall.Value
}

func (dto DailySleepDTO) Hours() float64 {
	if dto.SleepTimeSeconds == nil {
		return 0
	}
	return *dto.SleepTimeSeconds / 3600 //nolint:mnd //seconds per hour
}

type TrainingStatusResponse struct {
	MostRecentTrainingStatus *MostRecentTrainingStatus `json:"mostRecentTrainingStatus"`
}

type MostRecentTrainingStatus struct {
	LatestTrainingStatusData map[string]TrainingStatusData `json:"latestTrainingStatusData"`
}

type TrainingStatusData struct {
	AcuteTrainingLoadDTO         *AcuteTrainingLoadDTO `json:"acuteTrainingLoadDTO"`
	TrainingStatusFeedbackPhrase *string               `json:"trainingStatusFeedbackPhrase"`
	TrainingStatus               *int                  `json:"trainingStatus"`
}

type AcuteTrainingLoadDTO struct {
	DailyTrainingLoadAcute   *float64 `json:"dailyTrainingLoadAcute"`
	DailyTrainingLoadChronic *float64 `json:"dailyTrainingLoadChronic"`
}

type DailyStatsResponse struct {
	TotalSteps                 *int     `json:"totalSteps"`
	TotalKilocalories          *float64 `json:"totalKilocalories"`
	RestingHeartRate           *int     `json:"restingHeartRate"`
	BodyBatteryMostRecentValue *int     `json:"bodyBatteryMostRecentValue"`
	BodyBatteryHighestValue    *int     `json:"bodyBatteryHighestValue"`
	BodyBatteryLowestValue     *int     `json:"bodyBatteryLowestValue"`
}
