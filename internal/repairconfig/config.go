// Package repairconfig loads repair engine configuration from
// jsonrepair.yml (or environment variables) via viper.
package repairconfig

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the repair engine's externally configurable surface — the
// options normally passed as constructor arguments, sourced here so they
// can be set outside code.
type Config struct {
	MaxIterations int           `mapstructure:"max_iterations"`
	Mode          string        `mapstructure:"mode"`
	AutoFlow      string        `mapstructure:"auto_flow"`
	DryRun        bool          `mapstructure:"dry_run"`
	Debug         bool          `mapstructure:"debug"`
	LogLevel      string        `mapstructure:"log_level"`
	Cache         CacheConfig   `mapstructure:"cache"`
	History       HistoryConfig `mapstructure:"history"`
	API           APIConfig     `mapstructure:"api"`
}

// CacheConfig configures the repair-result cache.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Backend    string `mapstructure:"backend"`
	RedisAddr  string `mapstructure:"redis_addr"`
	LRUEntries int    `mapstructure:"lru_entries"`
}

// HistoryConfig configures repair history persistence. The driver is
// selected from DSN's scheme (postgres://, postgresql://, sqlite://, or
// file:) rather than a separate field — see internal/history.Open.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// APIConfig configures the HTTP repair API.
type APIConfig struct {
	Port        int    `mapstructure:"port"`
	Host        string `mapstructure:"host"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	RequireAuth bool   `mapstructure:"require_auth"`
	// APIKeyHash is a bcrypt hash produced by `jsonrepair init` (via
	// internal/api.HashAPIKey), never the raw key itself.
	APIKeyHash string `mapstructure:"api_key_hash"`
}

// Load reads jsonrepair.yml/.yaml from the current directory (tolerating a
// missing file), applies defaults, and unmarshals into a Config.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("max_iterations", 10)
	v.SetDefault("mode", "lax")
	v.SetDefault("auto_flow", "standard")
	v.SetDefault("dry_run", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.backend", "lru")
	v.SetDefault("cache.lru_entries", 512)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.dsn", "file:jsonrepair_history.db")
	v.SetDefault("api.port", 8089)
	v.SetDefault("api.host", "localhost")
	v.SetDefault("api.require_auth", false)

	v.SetConfigName("jsonrepair")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("JSONREPAIR")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.History.DSN == "" {
		cfg.History.DSN = os.Getenv("JSONREPAIR_HISTORY_DSN")
	}

	return &cfg, nil
}
