package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"voicetask/pkg/voiceparse"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice capture specifics
	Parser VoiceParserConfig
	Voice  VoiceConfig

	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// VoiceParserConfig tunes the utterance parser. Category and priority tables
// are data loaded here, not code, so they can be extended without touching
// resolver logic.
type VoiceParserConfig struct {
	Timezone       string
	WeekEndDay     string // weekday name "end of week" resolves to
	FuzzyMatching  bool
	FuzzyThreshold float64

	// Categories overrides the built-in category trigger tables when
	// non-empty; order declares the tie-break priority.
	Categories []voiceparse.CategoryTriggers
}

// VoiceConfig controls the capture session flow around the parser.
type VoiceConfig struct {
	// ConfirmTTLSeconds bounds how long a parse awaits user confirmation
	// before the session expires.
	ConfirmTTLSeconds int

	// MinConfidence is the caller-side policy threshold: parses below it
	// are flagged for manual confirmation in API responses and rejected
	// outright by the Telegram auto-create flow.
	MinConfidence float64

	// DefaultCategory is applied when the parser suggests none.
	DefaultCategory string

	// ReminderPopupMinutes configures the calendar popup lead time.
	ReminderPopupMinutes int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.WeekEndDay = viper.GetString("parser.week_end_day")
	cfg.Parser.FuzzyMatching = viper.GetBool("parser.fuzzy_matching")
	cfg.Parser.FuzzyThreshold = viper.GetFloat64("parser.fuzzy_threshold")
	if err := viper.UnmarshalKey("parser.categories", &cfg.Parser.Categories); err != nil {
		return nil, fmt.Errorf("invalid parser.categories config: %w", err)
	}

	// Voice capture flow
	cfg.Voice.ConfirmTTLSeconds = viper.GetInt("voice.confirm_ttl_seconds")
	cfg.Voice.MinConfidence = viper.GetFloat64("voice.min_confidence")
	cfg.Voice.DefaultCategory = viper.GetString("voice.default_category")
	cfg.Voice.ReminderPopupMinutes = viper.GetInt("voice.reminder_popup_minutes")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.week_end_day", "sunday")
	viper.SetDefault("parser.fuzzy_matching", false)
	viper.SetDefault("parser.fuzzy_threshold", 0.85)

	viper.SetDefault("voice.confirm_ttl_seconds", 300)
	viper.SetDefault("voice.min_confidence", 0.3)
	viper.SetDefault("voice.default_category", "personal")
	viper.SetDefault("voice.reminder_popup_minutes", 10)

	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
}
