package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"dashboard.xdoubleu.com/apps/dashboard/internal/models"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

const maxContextUpcomingEvents = 10

type Suggestion string

const (
	DayPlanSuggestion   Suggestion = "day-plan"
	FreetimeSuggestion  Suggestion = "freetime"
	NutritionSuggestion Suggestion = "nutrition"
)

//nolint:gochecknoglobals //prompt templates
var suggestionPrompts = map[Suggestion]string{
	DayPlanSuggestion: "Based on this information, create a personalized day plan for me. " +
		"Consider my sleep quality, weather, and scheduled events. " +
		"Be specific and actionable.",
	FreetimeSuggestion: "Suggest 3-5 activities I could do in my free time today, " +
		"considering the weather and my energy levels based on sleep data.",
	NutritionSuggestion: "Provide personalized nutrition suggestions for today based on my " +
		"training status, sleep quality, and activity level. " +
		"Include meal ideas and hydration tips.",
}

type AIService struct {
	logger      *slog.Logger
	client      openwebui.Client
	model       string
	maxTokens   int
	monthsAhead int
}

func ParseSuggestion(value string) (Suggestion, bool) {
	suggestion := Suggestion(value)
	_, ok := suggestionPrompts[suggestion]
	return suggestion, ok
}

// GetSuggestion never fails, errors are turned into a readable message.
func (service *AIService) GetSuggestion(ctx context.Context, prompt string) string {
	if service.client == nil {
		service.logger.Warn("AI API key not configured")
		return "AI suggestions unavailable. Please configure OPEN_WEB_UI_API_KEY."
	}

	response, err := service.client.ChatCompletion(ctx, openwebui.ChatCompletionRequest{
		Model: service.model,
		Messages: []openwebui.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens: service.maxTokens,
	})

	var content string
	if err == nil {
		content, err = response.Content()
	}

	var apiErr openwebui.APIError
	var netErr net.Error

	switch {
	case err == nil:
		service.logger.Debug(fmt.Sprintf("AI response: %d chars", len(content)))
		return content
	case errors.As(err, &apiErr):
		service.logger.Error(fmt.Sprintf("API Error %d: %s", apiErr.StatusCode, apiErr.Message))
		return fmt.Sprintf("AI suggestions unavailable (Error %d)", apiErr.StatusCode)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		service.logger.Warn("AI request timed out")
		return "AI suggestions timed out. Please try again."
	default:
		service.logger.Error("AI request failed", logging.ErrAttr(err))
		return fmt.Sprintf("AI suggestions error: %s", err.Error())
	}
}

func (service *AIService) Suggest(
	ctx context.Context,
	suggestion Suggestion,
	aiContext string,
) string {
	return service.GetSuggestion(
		ctx,
		fmt.Sprintf("%s\n\n%s", aiContext, suggestionPrompts[suggestion]),
	)
}

func (service *AIService) SearchEvents(
	ctx context.Context,
	keywords string,
	location string,
	now time.Time,
) string {
	prompt := fmt.Sprintf(
		"Search for local sports and fitness events based on these keywords: '%s'\n"+
			"Location: %s\n"+
			"Current date: %s\n\n"+
			"Please suggest 5-8 realistic local events that match these keywords. "+
			"For each event, provide:\n"+
			"- Event name\n"+
			"- Type (race, group training, meetup, workshop, competition)\n"+
			"- Date (within next 60 days)\n"+
			"- Time\n"+
			"- Location/venue\n"+
			"- Brief description\n"+
			"- Suggested tags\n\n"+
			"Format as a clear, organized list. Focus on events that actually exist "+
			"or are typical for this type of activity. Include both competitive and "+
			"social/training options.",
		keywords,
		location,
		now.Format("2006-01-02 Monday"),
	)

	return service.GetSuggestion(ctx, prompt)
}

// BuildContext describes the day for the prompts.
func (service *AIService) BuildContext(
	now time.Time,
	weather models.Weather,
	fitness models.FitnessSummary,
	today []models.CalendarEvent,
	upcoming []models.CalendarEvent,
) string {
	sleepScore := unavailable
	if fitness.SleepScore != nil {
		sleepScore = strconv.Itoa(*fitness.SleepScore)
	}

	todayText := "No events scheduled"
	if len(today) > 0 {
		todayText = indentJSON(today)
	}

	upcomingText := "No upcoming events"
	if len(upcoming) > 0 {
		upcomingText = indentJSON(upcoming[:min(len(upcoming), maxContextUpcomingEvents)])
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Today's date: %s\n\n", now.Format("2006-01-02 Monday"))
	fmt.Fprintf(&builder, "Weather: %v°C, %s\n\n", weather.Temperature, weather.Description)
	fmt.Fprintf(&builder, "Sleep Score: %s\n", sleepScore)
	fmt.Fprintf(&builder, "Sleep Hours: %v\n", fitness.SleepHours)
	fmt.Fprintf(&builder, "Training Status: %s\n\n", fitness.TrainingStatus)
	fmt.Fprintf(&builder, "Today's Calendar Events:\n%s\n\n", todayText)
	fmt.Fprintf(
		&builder,
		"Upcoming Events (next %d months):\n%s\n",
		service.monthsAhead,
		upcomingText,
	)

	return builder.String()
}

func indentJSON(events []models.CalendarEvent) string {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return unavailable
	}
	return string(data)
}
