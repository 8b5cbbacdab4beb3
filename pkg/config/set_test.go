package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Instance.URL = "https://example.social"
	return cfg
}

func TestSetKey(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.SetKey("weather.city", "London"))
	assert.Equal(t, "London", cfg.Weather.City)

	require.NoError(t, cfg.SetKey("bot.max_post_length", "1000"))
	assert.Equal(t, 1000, cfg.Bot.MaxPostLength)

	require.NoError(t, cfg.SetKey("auto_post.enabled", "false"))
	assert.False(t, cfg.AutoPost.Enabled)

	require.NoError(t, cfg.SetKey("instance.poll_interval", "30s"))
	assert.Equal(t, 30*time.Second, cfg.Instance.PollInterval)
}

func TestSetKey_Invalid(t *testing.T) {
	cfg := validConfig()

	// a value that fails to parse leaves the config untouched
	err := cfg.SetKey("bot.max_post_length", "lots")
	require.Error(t, err)
	assert.Equal(t, 500, cfg.Bot.MaxPostLength)

	// a parsable value that fails validation rolls back too
	err = cfg.SetKey("bot.max_post_length", "-5")
	require.Error(t, err)
	assert.Equal(t, 500, cfg.Bot.MaxPostLength)

	err = cfg.SetKey("weather.units", "fahrenheit")
	require.Error(t, err)
	assert.Equal(t, "metric", cfg.Weather.Units)
}

func TestSetKey_Unknown(t *testing.T) {
	cfg := validConfig()

	err := cfg.SetKey("bogus.key", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.Instance.URL = ""
	assert.Error(t, VerifyAgainstEmbeddedSchema(cfg))
}
