// Package config loads runtime settings from an optional config.yaml, a
// .env file and SEJARAH_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sadopc/sejarah/internal/search"
	"github.com/sadopc/sejarah/internal/storage"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

type Config struct {
	DBPath         string        `mapstructure:"db_path"`
	LogPath        string        `mapstructure:"log_path"`
	LogLevel       string        `mapstructure:"log_level"`
	SearchDelay    time.Duration `mapstructure:"search_delay"`
	SearchMinQuery int           `mapstructure:"search_min_query"`
}

// Load reads configuration. A missing config file or .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("SEJARAH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.SearchMinQuery < 0 {
		return nil, fmt.Errorf("search_min_query must be >= 0, got %d", cfg.SearchMinQuery)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) error {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return fmt.Errorf("default db path: %w", err)
	}
	v.SetDefault("db_path", dbPath)
	v.SetDefault("log_path", filepath.Join(filepath.Dir(dbPath), "sejarah.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("search_delay", search.DefaultDelay)
	v.SetDefault("search_min_query", search.DefaultMinQuery)
	return nil
}

func configDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "sejarah"), nil
}

// Level maps log_level onto slog levels; unknown names fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
