package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the bot configuration, persisted as a human-editable YAML file
type Config struct {
	Instance struct {
		URL             string        `yaml:"url" json:"url" jsonschema:"required,description=Mastodon instance base URL"`
		AccessTokenFile string        `yaml:"access_token_file" json:"access_token_file" jsonschema:"default=token.secret,description=File holding the bot account access token"`
		Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=API request timeout"`
		PollInterval    time.Duration `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=15s,description=Notification poll interval"`
	} `yaml:"instance" json:"instance" jsonschema:"description=Mastodon instance configuration"`

	Bot struct {
		Timezone      string `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=IANA timezone for timestamps and auto-post times"`
		MaxPostLength int    `yaml:"max_post_length" json:"max_post_length" jsonschema:"default=500,description=Maximum length of an outgoing post"`
	} `yaml:"bot" json:"bot" jsonschema:"description=Bot behavior configuration"`

	AutoPost struct {
		Enabled     bool   `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable scheduled auto-posts"`
		Times       string `yaml:"times" json:"times" jsonschema:"default=12:00,description=Comma-separated H:MM times of day for auto-posts"`
		IncludeTime bool   `yaml:"include_time" json:"include_time" jsonschema:"default=true,description=Prefix auto-posts with the current time"`
	} `yaml:"auto_post" json:"auto_post" jsonschema:"description=Scheduled auto-post configuration"`

	Weather struct {
		APIKey string `yaml:"api_key" json:"api_key" jsonschema:"description=OpenWeatherMap API key (empty disables weather)"`
		City   string `yaml:"city" json:"city" jsonschema:"description=City name for weather lookups"`
		Units  string `yaml:"units" json:"units" jsonschema:"default=metric,description=Units system: metric or imperial or kelvin"`
	} `yaml:"weather" json:"weather" jsonschema:"description=Optional weather suffix for auto-posts"`

	Database struct {
		DSN string `yaml:"dsn" json:"dsn" jsonschema:"default=file:wilbot.db?cache=shared&mode=rwc,description=SQLite connection string"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=Status server listen address (empty disables)"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Status server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status HTTP server configuration"`
}

// Default returns a config pre-filled with defaults, written on first run
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Save writes the configuration back to a YAML file, used by the console
// /set command so operator changes survive restarts
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// AutoTimes returns the configured auto-post times as trimmed H:MM strings
func (c *Config) AutoTimes() []string {
	if strings.TrimSpace(c.AutoPost.Times) == "" {
		return nil
	}
	parts := strings.Split(c.AutoPost.Times, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			times = append(times, t)
		}
	}
	return times
}

// AccessToken reads the token file and returns the trimmed token string
func (c *Config) AccessToken() (string, error) {
	data, err := os.ReadFile(c.Instance.AccessTokenFile) //nolint:gosec // path comes from config
	if err != nil {
		return "", fmt.Errorf("read access token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("access token file %s is empty", c.Instance.AccessTokenFile)
	}
	return token, nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Bot.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Bot.Timezone, err)
	}
	return loc, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	if cfg.Instance.AccessTokenFile == "" {
		cfg.Instance.AccessTokenFile = "token.secret"
	}
	if cfg.Instance.Timeout == 0 {
		cfg.Instance.Timeout = 30 * time.Second
	}
	if cfg.Instance.PollInterval == 0 {
		cfg.Instance.PollInterval = 15 * time.Second
	}

	if cfg.Bot.Timezone == "" {
		cfg.Bot.Timezone = "UTC"
	}
	if cfg.Bot.MaxPostLength == 0 {
		cfg.Bot.MaxPostLength = 500
	}

	if cfg.AutoPost.Times == "" {
		cfg.AutoPost.Times = "12:00"
	}

	if cfg.Weather.Units == "" {
		cfg.Weather.Units = "metric"
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:wilbot.db?cache=shared&mode=rwc"
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Instance.URL == "" {
		return fmt.Errorf("instance.url is required")
	}
	if !strings.HasPrefix(cfg.Instance.URL, "http://") && !strings.HasPrefix(cfg.Instance.URL, "https://") {
		return fmt.Errorf("instance.url must start with http:// or https://")
	}
	if cfg.Bot.MaxPostLength < 1 {
		return fmt.Errorf("bot.max_post_length must be positive")
	}
	if _, err := time.LoadLocation(cfg.Bot.Timezone); err != nil {
		return fmt.Errorf("bot.timezone is invalid: %w", err)
	}
	switch cfg.Weather.Units {
	case "metric", "imperial", "kelvin":
	default:
		return fmt.Errorf("weather.units must be metric, imperial or kelvin")
	}
	if cfg.AutoPost.Enabled && len(cfg.AutoTimes()) == 0 {
		return fmt.Errorf("auto_post.times is required when auto_post is enabled")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns status server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
