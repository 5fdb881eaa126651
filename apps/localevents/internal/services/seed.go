package services

import (
	"time"

	"dashboard.xdoubleu.com/apps/localevents/internal/models"
)

type seedEvent struct {
	offset int
	event  models.Event
}

//nolint:gochecknoglobals,lll,exhaustruct,mnd //catalogue, ids and dates are assigned later
var seedCatalogue = []seedEvent{
	{90, models.Event{
		Title:       "Freiburg Marathon 2026",
		Category:    "running",
		Type:        models.TypeRace,
		Time:        "09:00",
		Location:    "Freiburg im Breisgau",
		Description: "Annual Freiburg Marathon - Marathon, Half Marathon, and 10K races through the beautiful Black Forest region.",
		Tags:        []string{"running", "marathon", "race", "outdoor"},
		URL:         "https://www.freiburg-marathon.de/",
	}},
	{3, models.Event{
		Title:       "parkrun Freiburg Seepark",
		Category:    "running",
		Type:        models.TypeGroupTraining,
		Time:        "09:00",
		Location:    "Seepark Freiburg",
		Description: "Free weekly 5K timed run every Saturday morning. All abilities welcome!",
		Tags:        []string{"running", "5k", "free", "weekly", "parkrun"},
		URL:         "https://www.parkrun.com.de/freiburgseepark/",
	}},
	{21, models.Event{
		Title:       "Black Forest Trail Run Series",
		Category:    "running",
		Type:        models.TypeRace,
		Time:        "10:00",
		Location:    "Schauinsland, Freiburg",
		Description: "Trail running race series in the Black Forest with distances from 10K to 30K.",
		Tags:        []string{"running", "trail", "race", "mountains"},
		URL:         "https://www.schwarzwald-trailrun.de/",
	}},
	{5, models.Event{
		Title:       "Cycling Club Freiburg - Weekend Ride",
		Category:    "cycling",
		Type:        models.TypeGroupTraining,
		Time:        "08:00",
		Location:    "Freiburg City Center",
		Description: "Regular weekend group rides through the Kaiserstuhl wine region. Different pace groups available.",
		Tags:        []string{"cycling", "group", "weekend", "social"},
		URL:         "https://www.radsportverein-freiburg.de/",
	}},
	{2, models.Event{
		Title:       "Triathlon Training Freiburg",
		Category:    "triathlon",
		Type:        models.TypeGroupTraining,
		Time:        "18:00",
		Location:    "Westbad Freiburg",
		Description: "Weekly triathlon training sessions - swim, bike, run. All levels welcome.",
		Tags:        []string{"triathlon", "training", "swimming", "cycling"},
		URL:         "https://www.tri-team-freiburg.de/",
	}},
	{7, models.Event{
		Title:       "Freiburg Running Meetup",
		Category:    "running",
		Type:        models.TypeMeetup,
		Time:        "18:30",
		Location:    "Colombi Park",
		Description: "Casual evening running group. Meet new runners and explore Freiburg trails.",
		Tags:        []string{"running", "social", "evening", "meetup"},
		URL:         "https://www.meetup.com/freiburg-running-group/",
	}},
	{4, models.Event{
		Title:       "CrossFit Freiburg Open Gym",
		Category:    "fitness",
		Type:        models.TypeWorkshop,
		Time:        "10:00",
		Location:    "CrossFit Box Freiburg",
		Description: "Free trial CrossFit class. Learn fundamental movements and workout of the day.",
		Tags:        []string{"crossfit", "fitness", "workout", "free"},
		URL:         "https://crossfit-freiburg.de/",
	}},
	{10, models.Event{
		Title:       "Yoga for Athletes - Freiburg",
		Category:    "yoga",
		Type:        models.TypeWorkshop,
		Time:        "19:00",
		Location:    "Yoga Studio Freiburg",
		Description: "Specialized yoga class focusing on flexibility and recovery for endurance athletes.",
		Tags:        []string{"yoga", "recovery", "flexibility", "athletes"},
		URL:         "https://www.yogafreiburg.de/",
	}},
	{60, models.Event{
		Title:       "Baden-Marathon Karlsruhe",
		Category:    "running",
		Type:        models.TypeRace,
		Time:        "09:00",
		Location:    "Karlsruhe (50km from Freiburg)",
		Description: "One of Germany's fastest marathon courses. Marathon, half marathon, and relay options.",
		Tags:        []string{"running", "marathon", "race", "fast-course"},
		URL:         "https://www.baden-marathon.de/",
	}},
	{45, models.Event{
		Title:       "Freiburg Cycling Tour - Kaiserstuhl",
		Category:    "cycling",
		Type:        models.TypeRace,
		Time:        "08:00",
		Location:    "Breisach am Rhein",
		Description: "Scenic cycling event through vineyards with 50km, 100km, and 150km routes.",
		Tags:        []string{"cycling", "tour", "scenic", "wine-region"},
		URL:         "https://www.kaiserstuhl-cycling.de/",
	}},
}

// SeedEvents dates the starter catalogue relative to today.
func SeedEvents(today time.Time) []models.Event {
	events := make([]models.Event, 0, len(seedCatalogue))
	for _, seed := range seedCatalogue {
		event := seed.event
		event.Date = today.AddDate(0, 0, seed.offset).Format(dateLayout)
		events = append(events, event)
	}
	return events
}
