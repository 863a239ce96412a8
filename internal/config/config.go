// Package config loads web server settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the web driver.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// GameConfig holds simulation defaults applied to new sessions.
type GameConfig struct {
	DecksFile string `mapstructure:"decks_file"`
	Template  string `mapstructure:"template"`
	MaxTurns  int    `mapstructure:"max_turns"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from path. A missing file is not an error; the
// defaults (overridable via VEIL_* environment variables) apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("game.decks_file", "decks.yaml")
	v.SetDefault("game.template", "balanced")
	v.SetDefault("game.max_turns", 30)
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("VEIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
