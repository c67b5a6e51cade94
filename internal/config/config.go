package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
)

const (
	defaultTimezone   = "UTC"
	configPathEnv     = "CONTENT_PIPELINE_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	renderAPIKeyEnv   = "RENDER_API_KEY"
	renderEndpointEnv = "RENDER_ENDPOINT"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	logLevelEnv       = "LOG_LEVEL"
)

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig                  `yaml:"logging"`
	Extractor     ExtractorConfig                `yaml:"extractor"`
	Selectors     map[string]map[string][]string `yaml:"selectors"`
	Adapter       AdapterConfig                  `yaml:"adapter"`
	Reel          ReelConfig                     `yaml:"reel"`
	Render        RenderConfig                   `yaml:"render"`
	Pipeline      PipelineConfig                 `yaml:"pipeline"`
	Links         LinksConfig                    `yaml:"links"`
	Output        OutputConfig                   `yaml:"output"`
	Database      DatabaseConfig                 `yaml:"database"`
	Scheduler     SchedulerConfig                `yaml:"scheduler"`
	Notifications NotificationConfig             `yaml:"notifications"`
}

// LoggingConfig selects level and handler format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExtractorConfig tunes fetching.
type ExtractorConfig struct {
	UserAgent     string        `yaml:"userAgent"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxAttempts   int           `yaml:"maxAttempts"`
	BaseDelay     time.Duration `yaml:"baseDelay"`
	MaxDelay      time.Duration `yaml:"maxDelay"`
	HostInterval  time.Duration `yaml:"hostInterval"`
	MaxBodyBytes  int64         `yaml:"maxBodyBytes"`
	RespectRobots bool          `yaml:"respectRobots"`
}

// AdapterConfig lists the formats produced per article and the shared options.
type AdapterConfig struct {
	Formats             []string `yaml:"formats"`
	MaxLength           int      `yaml:"maxLength"`
	IncludeHashtags     bool     `yaml:"includeHashtags"`
	IncludeCallToAction bool     `yaml:"includeCallToAction"`
	Tone                string   `yaml:"tone"`
	TargetAudience      string   `yaml:"targetAudience"`
}

// ReelConfig controls reel generation.
type ReelConfig struct {
	Enabled      bool                  `yaml:"enabled"`
	FromContent  bool                  `yaml:"fromContent"`
	TemplateID   string                `yaml:"templateId"`
	Quality      string                `yaml:"quality"`
	AspectRatio  string                `yaml:"aspectRatio"`
	OutputFormat string                `yaml:"outputFormat"`
	FPS          int                   `yaml:"fps"`
	Duration     float64               `yaml:"duration"`
	AudioURL     string                `yaml:"audioUrl"`
	Branding     BrandingConfig        `yaml:"branding"`
	Templates    []domain.ReelTemplate `yaml:"templates"`
}

// BrandingConfig is attached to every render request.
type BrandingConfig struct {
	LogoURL    string `yaml:"logoUrl"`
	BrandName  string `yaml:"brandName"`
	BrandColor string `yaml:"brandColor"`
}

// RenderConfig describes the external rendering service.
type RenderConfig struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"apiKey"`
	Timeout  time.Duration `yaml:"timeout"`
}

// PipelineConfig bounds concurrent extractions.
type PipelineConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// LinksConfig names the link file and links listed inline.
type LinksConfig struct {
	File string               `yaml:"file"`
	URLs []domain.ArticleLink `yaml:"urls"`
}

// OutputConfig names the JSON lines destination; empty means stdout.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN
// disables the processed ledger.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SchedulerConfig defines when the pipeline should run.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	return time.UTC
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads YAML configuration over the defaults and applies environment
// overrides. An empty path falls back to CONTENT_PIPELINE_CONFIG; without
// either only defaults and environment are used.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.bindTimezone(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(raw []byte, cfg *Config) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(renderAPIKeyEnv); v != "" {
		c.Render.APIKey = v
	}

	if v := os.Getenv(renderEndpointEnv); v != "" {
		c.Render.Endpoint = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) bindTimezone() error {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return &ConfigError{Field: "scheduler.timezone", Reason: fmt.Sprintf("unknown timezone %q", tz)}
	}
	c.Scheduler.location = loc
	return nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Reason: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}

	if c.Extractor.MaxAttempts < 1 {
		return &ConfigError{Field: "extractor.maxAttempts", Reason: "must be at least 1"}
	}
	if c.Extractor.BaseDelay < 0 || c.Extractor.MaxDelay < 0 || c.Extractor.HostInterval < 0 {
		return &ConfigError{Field: "extractor", Reason: "delays must not be negative"}
	}

	if len(c.Adapter.Formats) == 0 {
		return &ConfigError{Field: "adapter.formats", Reason: "at least one format is required"}
	}
	for _, f := range c.Adapter.Formats {
		if _, err := domain.ParseFormat(f); err != nil {
			return &ConfigError{Field: "adapter.formats", Reason: err.Error()}
		}
	}

	if c.Pipeline.Concurrency < 1 {
		return &ConfigError{Field: "pipeline.concurrency", Reason: "must be at least 1"}
	}

	if c.Scheduler.CronExpression != "" {
		if _, err := cron.ParseStandard(c.Scheduler.CronExpression); err != nil {
			return &ConfigError{Field: "scheduler.cronExpression", Reason: err.Error()}
		}
	}
	return nil
}

// Formats returns the configured formats. Validate must have passed.
func (c Config) Formats() []domain.Format {
	out := make([]domain.Format, 0, len(c.Adapter.Formats))
	for _, f := range c.Adapter.Formats {
		format, _ := domain.ParseFormat(f)
		out = append(out, format)
	}
	return out
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Extractor: ExtractorConfig{
			UserAgent:     "StudiFlowContentPipeline/1.0",
			Timeout:       20 * time.Second,
			MaxAttempts:   3,
			BaseDelay:     time.Second,
			MaxDelay:      30 * time.Second,
			HostInterval:  500 * time.Millisecond,
			MaxBodyBytes:  5 << 20,
			RespectRobots: true,
		},
		Adapter: AdapterConfig{
			Formats:             []string{string(domain.FormatPost), string(domain.FormatCarousel)},
			MaxLength:           2200,
			IncludeHashtags:     true,
			IncludeCallToAction: true,
			Tone:                string(domain.ToneCasual),
			TargetAudience:      "students",
		},
		Reel: ReelConfig{
			Quality:      "1080p",
			AspectRatio:  "9:16",
			OutputFormat: "mp4",
			FPS:          30,
			Branding: BrandingConfig{
				BrandName:  "Studibuch",
				BrandColor: "#FF6B00",
			},
		},
		Render:    RenderConfig{Timeout: 60 * time.Second},
		Pipeline:  PipelineConfig{Concurrency: 4},
		Scheduler: SchedulerConfig{CronExpression: "0 7 * * *", Timezone: defaultTimezone, location: time.UTC},
	}
}
