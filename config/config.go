package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Calendar CalendarConfig
	Runner   RunnerConfig
	Session  SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CalendarConfig struct {
	// OutputDir is where generated .ics files are written.
	OutputDir string
	// Timezone is the IANA zone extracted times are resolved in; empty
	// means the system local zone.
	Timezone string
	// GoogleCredentialsPath enables the optional Google Calendar mirror.
	GoogleCredentialsPath string
	GoogleCalendarID      string
}

type RunnerConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

// Load reads configuration from config.yaml and the environment.
// Environment variables override file values (dots become underscores,
// e.g. RUNNER_URL overrides runner.url).
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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Calendar.OutputDir = viper.GetString("calendar.output_dir")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.GoogleCredentialsPath = viper.GetString("calendar.google_credentials_path")
	cfg.Calendar.GoogleCalendarID = viper.GetString("calendar.google_calendar_id")

	cfg.Runner.URL = viper.GetString("runner.url")
	cfg.Runner.Model = viper.GetString("runner.model")
	cfg.Runner.Timeout = viper.GetDuration("runner.timeout")

	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("calendar.output_dir", "calendar_events")
	viper.SetDefault("calendar.google_calendar_id", "primary")

	viper.SetDefault("runner.url", "http://127.0.0.1:8000")
	viper.SetDefault("runner.timeout", "60s")

	viper.SetDefault("session.max_entries", 1000)
	viper.SetDefault("session.ttl", "30m")
}
