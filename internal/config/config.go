package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	// Catalog data provider
	TMDb TMDbConfig `yaml:"tmdb"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// TMDbConfig holds TMDb API configuration. An empty APIKey selects the
// bundled offline catalog instead of the remote API.
type TMDbConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
	ImageBaseURL string `yaml:"image_base_url,omitempty"`
	Language     string `yaml:"language,omitempty"`
	Region       string `yaml:"region,omitempty"`
	IncludeAdult bool   `yaml:"include_adult,omitempty"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
	DataDir  string `yaml:"data_dir"`  // Directory for cache and saved lists
}

// Default configuration values.
const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/"
	DefaultLanguage     = "en-US"
	DefaultRegion       = "US"
)

// Load loads configuration from a YAML file with environment variable
// overrides. A missing file is not an error: the app is fully usable
// without a config (offline catalog, default data dir).
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration back to a YAML file, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	// TMDb
	if v := os.Getenv("CLICKMOVIE_TMDB_API_KEY"); v != "" {
		c.TMDb.APIKey = v
	}
	if v := os.Getenv("CLICKMOVIE_TMDB_BASE_URL"); v != "" {
		c.TMDb.BaseURL = v
	}
	if v := os.Getenv("CLICKMOVIE_TMDB_LANGUAGE"); v != "" {
		c.TMDb.Language = v
	}
	if v := os.Getenv("CLICKMOVIE_TMDB_REGION"); v != "" {
		c.TMDb.Region = v
	}
	if v := os.Getenv("CLICKMOVIE_TMDB_INCLUDE_ADULT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TMDb.IncludeAdult = b
		}
	}

	// Telegram
	if v := os.Getenv("CLICKMOVIE_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}

	// App
	if v := os.Getenv("CLICKMOVIE_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if v := os.Getenv("CLICKMOVIE_DATA_DIR"); v != "" {
		c.App.DataDir = v
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.TMDb.BaseURL == "" {
		c.TMDb.BaseURL = DefaultBaseURL
	}
	if c.TMDb.ImageBaseURL == "" {
		c.TMDb.ImageBaseURL = DefaultImageBaseURL
	}
	if c.TMDb.Language == "" {
		c.TMDb.Language = DefaultLanguage
	}
	if c.TMDb.Region == "" {
		c.TMDb.Region = DefaultRegion
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is configured")
	}

	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		c.App.DataDir = filepath.Join(homeDir, ".clickmovie")
	}

	return nil
}

// HasCredential reports whether a remote API credential is configured.
// Its absence is the sole signal that selects the offline catalog.
func (c *Config) HasCredential() bool {
	return c.TMDb.APIKey != ""
}
