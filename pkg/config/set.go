package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SetKey updates a single setting by its dotted YAML key, e.g.
// "weather.city" or "auto_post.times". The value is parsed according to
// the field type and the whole config is re-validated before the change
// sticks.
func (c *Config) SetKey(key, value string) error {
	prev := *c

	var err error
	switch key {
	case "instance.url":
		c.Instance.URL = value
	case "instance.access_token_file":
		c.Instance.AccessTokenFile = value
	case "instance.timeout":
		c.Instance.Timeout, err = time.ParseDuration(value)
	case "instance.poll_interval":
		c.Instance.PollInterval, err = time.ParseDuration(value)
	case "bot.timezone":
		c.Bot.Timezone = value
	case "bot.max_post_length":
		c.Bot.MaxPostLength, err = strconv.Atoi(value)
	case "auto_post.enabled":
		c.AutoPost.Enabled, err = strconv.ParseBool(value)
	case "auto_post.times":
		c.AutoPost.Times = value
	case "auto_post.include_time":
		c.AutoPost.IncludeTime, err = strconv.ParseBool(value)
	case "weather.api_key":
		c.Weather.APIKey = value
	case "weather.city":
		c.Weather.City = value
	case "weather.units":
		c.Weather.Units = value
	case "database.dsn":
		c.Database.DSN = value
	case "server.listen":
		c.Server.Listen = value
	case "server.timeout":
		c.Server.Timeout, err = time.ParseDuration(value)
	default:
		return fmt.Errorf("unknown setting %q, known: %s", key, strings.Join(SettableKeys(), ", "))
	}
	if err != nil {
		*c = prev
		return fmt.Errorf("parse value for %s: %w", key, err)
	}

	if err := validate(c); err != nil {
		*c = prev
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

// SettableKeys lists the dotted keys SetKey accepts, sorted
func SettableKeys() []string {
	keys := []string{
		"instance.url", "instance.access_token_file", "instance.timeout", "instance.poll_interval",
		"bot.timezone", "bot.max_post_length",
		"auto_post.enabled", "auto_post.times", "auto_post.include_time",
		"weather.api_key", "weather.city", "weather.units",
		"database.dsn",
		"server.listen", "server.timeout",
	}
	sort.Strings(keys)
	return keys
}
