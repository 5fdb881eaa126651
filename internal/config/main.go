//nolint:mnd //no magic number
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env             string
	Port            int
	Throttle        bool
	WebURL          string
	SentryDsn       string
	SampleRate      float64
	AccessExpiry    string
	RefreshExpiry   string
	DBDsn           string
	Release         string
	SupabaseUserID  string
	SupabaseProjRef string
	SupabaseAPIKey  string

	OpenWebUIAPIKey  string
	OpenWebUIBaseURL string
	OpenWebUIModel   string
	AIRequestTimeout string
	AIMaxTokens      int

	WeatherAPIKey string
	WeatherCity   string
	WeatherAPIURL string

	GarminEmail    string
	GarminPassword string

	CredentialsFile     string
	TokenFile           string
	CalendarFilter      []string
	Timezone            string
	CalendarMonthsAhead int
	SleepSyncInterval   string

	WebSearchURL    string
	LocalEventsDays int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.AccessExpiry = parser.EnvStr("ACCESS_EXPIRY", "1h")
	cfg.RefreshExpiry = parser.EnvStr("REFRESH_EXPIRY", "7d")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.SupabaseUserID = parser.EnvStr("SUPABASE_USER_ID", "")
	cfg.SupabaseProjRef = parser.EnvStr("SUPABASE_PROJ_REF", "")
	cfg.SupabaseAPIKey = parser.EnvStr("SUPABASE_API_KEY", "")

	cfg.OpenWebUIAPIKey = parser.EnvStr("OPEN_WEB_UI_API_KEY", "")
	cfg.OpenWebUIBaseURL = parser.EnvStr(
		"OPEN_WEB_UI_BASE_URL",
		"https://openwebui.uni-freiburg.de",
	)
	cfg.OpenWebUIModel = parser.EnvStr("OPEN_WEB_UI_MODEL", "openai/gpt-5.2-llmlb")
	cfg.AIRequestTimeout = parser.EnvStr("AI_REQUEST_TIMEOUT", "120s")
	cfg.AIMaxTokens = parser.EnvInt("AI_MAX_TOKENS", 1000)

	cfg.WeatherAPIKey = parser.EnvStr("WEATHER_API_KEY", "")
	cfg.WeatherCity = parser.EnvStr("WEATHER_CITY", "Freiburg")
	cfg.WeatherAPIURL = parser.EnvStr(
		"WEATHER_API_URL",
		"http://api.openweathermap.org/data/2.5/weather",
	)

	cfg.GarminEmail = parser.EnvStr("GARMIN_EMAIL", "")
	cfg.GarminPassword = parser.EnvStr("GARMIN_PASSWORD", "")

	cfg.CredentialsFile = parser.EnvStr("CREDENTIALS_FILE", "credentials.json")
	cfg.TokenFile = parser.EnvStr("TOKEN_FILE", "token.json")
	cfg.CalendarFilter = splitList(parser.EnvStr("CALENDAR_FILTER", ""))
	cfg.Timezone = parser.EnvStr("TIMEZONE", "Europe/Berlin")
	cfg.CalendarMonthsAhead = parser.EnvInt("CALENDAR_MONTHS_AHEAD", 2)
	cfg.SleepSyncInterval = parser.EnvStr("SLEEP_SYNC_INTERVAL", "6h")

	cfg.WebSearchURL = parser.EnvStr("WEB_SEARCH_URL", "https://www.google.com/search")
	cfg.LocalEventsDays = parser.EnvInt("LOCAL_EVENTS_DAYS", 60)

	return cfg
}

// Validate returns warnings for integrations that will run on fallbacks.
func (cfg Config) Validate() []string {
	warnings := []string{}

	if cfg.OpenWebUIAPIKey == "" {
		warnings = append(warnings, "OPEN_WEB_UI_API_KEY not set")
	}

	if cfg.WeatherAPIKey == "" {
		warnings = append(warnings, "WEATHER_API_KEY not set")
	}

	if cfg.GarminEmail == "" || cfg.GarminPassword == "" {
		warnings = append(warnings, "Garmin credentials not set")
	}

	if _, err := os.Stat(cfg.CredentialsFile); err != nil {
		warnings = append(
			warnings,
			fmt.Sprintf("Google Calendar credentials file not found: %s", cfg.CredentialsFile),
		)
	}

	return warnings
}

func (cfg Config) Location() *time.Location {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
