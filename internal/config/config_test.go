package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{configPathEnv, databaseDSNEnv, renderAPIKeyEnv, renderEndpointEnv, telegramTokenEnv, telegramChatIDEnv, logLevelEnv} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Extractor.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Extractor.BaseDelay)
	assert.Equal(t, []domain.Format{domain.FormatPost, domain.FormatCarousel}, cfg.Formats())
	assert.Equal(t, 2200, cfg.Adapter.MaxLength)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, time.UTC, cfg.Scheduler.Location())
	assert.False(t, cfg.Reel.Enabled)
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
extractor:
  maxAttempts: 5
  baseDelay: 250ms
  respectRobots: false
adapter:
  formats: [story, reel]
  includeHashtags: false
reel:
  enabled: true
  fromContent: true
  quality: 720p
  branding:
    logoUrl: https://cdn.example.org/logo.png
  templates:
    - id: semester-start
      name: Semesterstart
selectors:
  blog.example.org:
    title: ["h1.headline"]
links:
  file: links.txt
  urls:
    - url: https://blog.example.org/a
scheduler:
  cronExpression: "30 6 * * 1-5"
  timezone: Europe/Berlin
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Extractor.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Extractor.BaseDelay)
	assert.Equal(t, 20*time.Second, cfg.Extractor.Timeout, "unset fields keep defaults")
	assert.False(t, cfg.Extractor.RespectRobots)
	assert.Equal(t, []domain.Format{domain.FormatStory, domain.FormatReel}, cfg.Formats())
	assert.False(t, cfg.Adapter.IncludeHashtags)
	assert.True(t, cfg.Adapter.IncludeCallToAction)
	assert.True(t, cfg.Reel.Enabled)
	assert.True(t, cfg.Reel.FromContent)
	assert.Equal(t, "720p", cfg.Reel.Quality)
	assert.Equal(t, "Studibuch", cfg.Reel.Branding.BrandName)
	assert.Equal(t, "https://cdn.example.org/logo.png", cfg.Reel.Branding.LogoURL)
	require.Len(t, cfg.Reel.Templates, 1)
	assert.Equal(t, "semester-start", cfg.Reel.Templates[0].ID)
	assert.Equal(t, []string{"h1.headline"}, cfg.Selectors["blog.example.org"]["title"])
	assert.Equal(t, "links.txt", cfg.Links.File)
	require.Len(t, cfg.Links.URLs, 1)
	assert.Equal(t, "Europe/Berlin", cfg.Scheduler.Location().String())
}

func TestLoadPathFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(configPathEnv, writeConfig(t, "pipeline:\n  concurrency: 9\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Pipeline.Concurrency)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(databaseDSNEnv, "postgres://env")
	t.Setenv(renderAPIKeyEnv, "render-key")
	t.Setenv(renderEndpointEnv, "https://render.example.org")
	t.Setenv(telegramTokenEnv, "tg-token")
	t.Setenv(telegramChatIDEnv, "42")
	t.Setenv(logLevelEnv, "warn")

	path := writeConfig(t, "database:\n  dsn: postgres://file\nrender:\n  apiKey: file-key\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "render-key", cfg.Render.APIKey)
	assert.Equal(t, "https://render.example.org", cfg.Render.Endpoint)
	assert.Equal(t, "tg-token", cfg.Notifications.Telegram.BotToken)
	assert.Equal(t, "42", cfg.Notifications.Telegram.ChatID)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]struct {
		yaml  string
		field string
	}{
		"unknown format":     {"adapter:\n  formats: [tiktok]\n", "adapter.formats"},
		"no formats":         {"adapter:\n  formats: []\n", "adapter.formats"},
		"zero attempts":      {"extractor:\n  maxAttempts: 0\n", "extractor.maxAttempts"},
		"negative delay":     {"extractor:\n  baseDelay: -1s\n", "extractor"},
		"zero concurrency":   {"pipeline:\n  concurrency: 0\n", "pipeline.concurrency"},
		"bad cron":           {"scheduler:\n  cronExpression: every day\n", "scheduler.cronExpression"},
		"bad timezone":       {"scheduler:\n  timezone: Mars/Olympus\n", "scheduler.timezone"},
		"bad logging format": {"logging:\n  format: xml\n", "logging.format"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tc.yaml))
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "extractor:\n  maxAttemps: 3\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
