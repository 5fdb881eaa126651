package helper

import (
	"strings"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
)

type rule struct {
	value string
	words []string
}

//nolint:gochecknoglobals //lookup table
var categoryRules = []rule{
	{value: "running", words: []string{"run", "marathon", "5k", "10k", "trail"}},
	{value: "cycling", words: []string{"cycl", "bike", "mtb"}},
	{value: "swimming", words: []string{"swim", "aqua"}},
	{value: "triathlon", words: []string{"triathlon", "ironman"}},
	{value: "yoga", words: []string{"yoga", "pilates"}},
}

//nolint:gochecknoglobals //lookup table
var typeRules = []rule{
	{value: models.TypeRace, words: []string{"race", "marathon", "championship", "competition"}},
	{
		value: models.TypeGroupTraining,
		words: []string{"training", "workout", "session", "practice"},
	},
	{value: models.TypeWorkshop, words: []string{"workshop", "class", "clinic", "seminar"}},
	{value: models.TypeMeetup, words: []string{"meetup", "meet", "social", "club"}},
}

// Categorize picks a sport category from the search keywords and a title.
func Categorize(keywords string, title string) string {
	return match(categoryRules, keywords+" "+title, "fitness")
}

// DetermineType picks an event type from a title and description.
func DetermineType(title string, description string) models.EventType {
	return match(typeRules, title+" "+description, models.TypeMeetup)
}

// Matches reports whether any keyword occurs in the event's title,
// description, category or tags. No keywords matches everything.
func Matches(event models.Event, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	text := strings.ToLower(strings.Join([]string{
		event.Title,
		event.Description,
		event.Category,
		strings.Join(event.Tags, " "),
	}, " "))

	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}

// SplitKeywords parses a comma separated keyword list.
func SplitKeywords(value string) []string {
	keywords := []string{}
	for _, keyword := range strings.Split(value, ",") {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

func match(rules []rule, text string, fallback string) string {
	text = strings.ToLower(text)

	for _, r := range rules {
		for _, word := range r.words {
			if strings.Contains(text, word) {
				return r.value
			}
		}
	}

	return fallback
}
