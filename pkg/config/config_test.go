package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wilbot.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
instance:
  url: https://mastodon.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mastodon.example.com", cfg.Instance.URL)
	assert.Equal(t, "token.secret", cfg.Instance.AccessTokenFile)
	assert.Equal(t, 30*time.Second, cfg.Instance.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Instance.PollInterval)
	assert.Equal(t, "UTC", cfg.Bot.Timezone)
	assert.Equal(t, 500, cfg.Bot.MaxPostLength)
	assert.Equal(t, "12:00", cfg.AutoPost.Times)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Equal(t, "file:wilbot.db?cache=shared&mode=rwc", cfg.Database.DSN)
	assert.Equal(t, ":8080", cfg.Server.Listen)
}

func TestLoad_MissingURL(t *testing.T) {
	path := writeConfig(t, `
bot:
  timezone: UTC
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance.url is required")
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want string
	}{
		{
			name: "bad scheme",
			yml:  "instance:\n  url: mastodon.example.com\n",
			want: "must start with http",
		},
		{
			name: "bad timezone",
			yml:  "instance:\n  url: https://m.example.com\nbot:\n  timezone: Mars/Olympus\n",
			want: "timezone",
		},
		{
			name: "bad units",
			yml:  "instance:\n  url: https://m.example.com\nweather:\n  units: rankine\n",
			want: "weather.units",
		},
		{
			name: "negative post length",
			yml:  "instance:\n  url: https://m.example.com\nbot:\n  max_post_length: -5\n",
			want: "max_post_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_INSTANCE_URL", "https://env.example.com")
	path := writeConfig(t, "instance:\n  url: ${TEST_INSTANCE_URL}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Instance.URL)
}

func TestConfig_RoundTrip(t *testing.T) {
	path := writeConfig(t, `
instance:
  url: https://mastodon.example.com
  poll_interval: 42s
bot:
  timezone: America/New_York
  max_post_length: 300
auto_post:
  enabled: true
  times: "0:00, 6:00, 12:00, 18:00"
weather:
  api_key: abc123
  city: Toronto
  units: metric
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// mutate and persist the way the console /set command does
	cfg.AutoPost.Times = "9:30, 21:30"
	savedPath := filepath.Join(t.TempDir(), "saved.yml")
	require.NoError(t, cfg.Save(savedPath))

	reloaded, err := Load(savedPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded, "saved config must reload to an identical value set")
}

func TestConfig_AutoTimes(t *testing.T) {
	cfg := Default()
	cfg.AutoPost.Times = " 0:00,6:00 , 12:00,18:00 "
	assert.Equal(t, []string{"0:00", "6:00", "12:00", "18:00"}, cfg.AutoTimes())

	cfg.AutoPost.Times = "  "
	assert.Nil(t, cfg.AutoTimes())
}

func TestConfig_AccessToken(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.secret")
	require.NoError(t, os.WriteFile(tokenPath, []byte("s3cret-token\n"), 0o600))

	cfg := Default()
	cfg.Instance.AccessTokenFile = tokenPath

	token, err := cfg.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "s3cret-token", token)

	// empty token file is a startup error
	require.NoError(t, os.WriteFile(tokenPath, []byte("  \n"), 0o600))
	_, err = cfg.AccessToken()
	require.Error(t, err)

	// missing token file is a startup error
	cfg.Instance.AccessTokenFile = filepath.Join(dir, "nope.secret")
	_, err = cfg.AccessToken()
	require.Error(t, err)
}
