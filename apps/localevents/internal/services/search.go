package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/helper"
	"dashboard.xdoubleu.com/apps/localevents/internal/models"
	"dashboard.xdoubleu.com/apps/localevents/pkg/websearch"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxSearchResults   = 10
	minSearchResults   = 3
	maxDescriptionLen  = 200
	defaultDescription = "Visit link for details"
	checkWebsite       = "Check website"
	variousDates       = "Various dates"
	variousTimes       = "Various times"
	sourceSearch       = "google_search"
	sourceDirectLink   = "direct_link"
)

//nolint:gochecknoglobals //lookup table
var skippedHosts = []string{"youtube", "facebook.com/watch", "instagram", "twitter"}

type SearchService struct {
	logger   *slog.Logger
	client   websearch.Client
	location *time.Location
}

// SearchWeb looks up events for keywords around location. Direct links to
// event directories fill up sparse or failed searches.
func (service *SearchService) SearchWeb(
	ctx context.Context,
	keywords string,
	location string,
) []models.WebEvent {
	events := []models.WebEvent{}

	query := fmt.Sprintf(
		"%s events %s %d",
		keywords,
		location,
		time.Now().In(service.location).Year(),
	)

	results, err := service.client.Search(ctx, query)
	if err != nil {
		service.logger.Debug("web search failed", logging.ErrAttr(err))
	}

	for idx, result := range results {
		if idx >= maxSearchResults {
			break
		}

		if isSkipped(result.URL) {
			continue
		}

		description := result.Description
		if description == "" {
			description = defaultDescription
		}

		events = append(events, models.WebEvent{
			ID:          fmt.Sprintf("web_%d", idx),
			Title:       result.Title,
			Category:    helper.Categorize(keywords, result.Title),
			Type:        helper.DetermineType(result.Title, description),
			Date:        checkWebsite,
			Time:        checkWebsite,
			Location:    location,
			Description: truncate(description, maxDescriptionLen),
			Tags:        []string{keywords, location, "online"},
			URL:         result.URL,
			Source:      sourceSearch,
		})
	}

	if len(events) < minSearchResults {
		events = append(events, FallbackEvents(keywords, location)...)
	}

	service.logger.Info(fmt.Sprintf("Found %d web events for '%s'", len(events), keywords))

	if len(events) > maxSearchResults {
		events = events[:maxSearchResults]
	}

	return events
}

// FallbackEvents links to event directories searched for keywords.
func FallbackEvents(keywords string, location string) []models.WebEvent {
	category := helper.Categorize(keywords, "")
	slug := strings.ReplaceAll(keywords, " ", "-")

	return []models.WebEvent{
		{
			ID:          "fallback_1",
			Title:       fmt.Sprintf("Search %s events on Eventbrite", keywords),
			Category:    category,
			Type:        models.TypeRace,
			Date:        variousDates,
			Time:        variousTimes,
			Location:    location,
			Description: fmt.Sprintf("Browse %s events in %s on Eventbrite", keywords, location),
			Tags:        []string{keywords, location, "eventbrite"},
			URL:         fmt.Sprintf("https://www.eventbrite.com/d/germany--freiburg/%s/", slug),
			Source:      sourceDirectLink,
		},
		{
			ID:          "fallback_2",
			Title:       fmt.Sprintf("Find %s groups on Meetup", keywords),
			Category:    category,
			Type:        models.TypeMeetup,
			Date:        variousDates,
			Time:        variousTimes,
			Location:    location,
			Description: fmt.Sprintf("Join local %s groups and events on Meetup", keywords),
			Tags:        []string{keywords, location, "meetup"},
			URL: fmt.Sprintf(
				"https://www.meetup.com/find/?keywords=%s&location=de--Freiburg",
				url.QueryEscape(keywords),
			),
			Source: sourceDirectLink,
		},
		{
			ID:          "fallback_3",
			Title:       fmt.Sprintf("%s events on Active.com", cases.Title(language.Und).String(keywords)),
			Category:    category,
			Type:        models.TypeRace,
			Date:        variousDates,
			Time:        variousTimes,
			Location:    "Germany",
			Description: fmt.Sprintf("Browse %s races and events across Germany", keywords),
			Tags:        []string{keywords, "Germany", "active"},
			URL:         fmt.Sprintf("https://www.active.com/%s/races", slug),
			Source:      sourceDirectLink,
		},
	}
}

func isSkipped(link string) bool {
	link = strings.ToLower(link)
	for _, host := range skippedHosts {
		if strings.Contains(link, host) {
			return true
		}
	}
	return false
}

// truncate cuts text to limit runes and marks the cut with an ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
