package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. INNBOT_BOT_TOKEN -> bot.token
	EnvPrefix = "INNBOT_"

	// legacyTokenEnv is the token variable used by earlier deployments
	legacyTokenEnv = "TELEGRAM_BOT_TOKEN"
)

// Config holds the bot settings
type Config struct {
	Bot      BotConfig      `koanf:"bot"`
	Registry RegistryConfig `koanf:"registry"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

type BotConfig struct {
	Token string `koanf:"token"`
	Debug bool   `koanf:"debug"`
}

type RegistryConfig struct {
	APIURL  string        `koanf:"api_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

// DefaultConfig returns the settings used when nothing overrides them
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads an optional .env file, then the YAML file at path if it exists,
// then INNBOT_* environment overrides.
func Load(path string, dotenvFiles ...string) (*Config, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access config %s: %w", path, err)
	}

	// INNBOT_REGISTRY_API_URL -> registry.api_url: only the first underscore
	// separates the section from the key.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Bot.Token == "" {
		cfg.Bot.Token = os.Getenv(legacyTokenEnv)
	}

	return cfg, nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		// Existing environment variables win over the file
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks that every required setting is present
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Bot.Token) == "" {
		errs = append(errs, errors.New("bot.token is required"))
	}
	if strings.TrimSpace(c.Registry.APIURL) == "" {
		errs = append(errs, errors.New("registry.api_url is required"))
	}
	if strings.TrimSpace(c.Registry.APIKey) == "" {
		errs = append(errs, errors.New("registry.api_key is required"))
	}
	if c.Registry.Timeout < 0 {
		errs = append(errs, errors.New("registry.timeout must be non-negative"))
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}
