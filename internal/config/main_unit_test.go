package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"dashboard.xdoubleu.com/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

func TestDefaults(t *testing.T) {
	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, "Freiburg", cfg.WeatherCity)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, 2, cfg.CalendarMonthsAhead)
	assert.Equal(t, 1000, cfg.AIMaxTokens)
	assert.Equal(t, "https://openwebui.uni-freiburg.de", cfg.OpenWebUIBaseURL)
	assert.Equal(t, 60, cfg.LocalEventsDays)
}

func TestCalendarFilter(t *testing.T) {
	t.Setenv("CALENDAR_FILTER", " Work , ,family@group.calendar.google.com")

	cfg := config.New(logging.NewNopLogger())

	assert.Equal(
		t,
		[]string{"Work", "family@group.calendar.google.com"},
		cfg.CalendarFilter,
	)
}

func TestValidate(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	cfg := config.Config{
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	}

	warnings := cfg.Validate()
	assert.Len(t, warnings, 4)

	cfg.OpenWebUIAPIKey = "key"
	cfg.WeatherAPIKey = "key"
	cfg.GarminEmail = "user@example.com"
	cfg.GarminPassword = "password"

	warnings = cfg.Validate()
	assert.Len(t, warnings, 1)
}

func TestLocation(t *testing.T) {
	//nolint:exhaustruct //other fields are optional
	cfg := config.Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "Europe/Berlin"
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
}
