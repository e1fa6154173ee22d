// Package config loads the application settings shared by the CLI and
// the HTTP server.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/inventario26/cronograma-go/pkg/cronograma"
)

// Config holds every tunable of the panel binary.
type Config struct {
	// Source is the default workbook location: a path or a raw URL.
	Source string `mapstructure:"source"`
	// Sheet is the schedule tab name.
	Sheet string `mapstructure:"sheet"`
	// IgnorePast restricts target planning to days from today onward.
	IgnorePast bool `mapstructure:"ignore_past"`
	// Addr is the listen address of the serve command.
	Addr string `mapstructure:"addr"`
	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads an optional config file and applies INVENTARIO_* environment
// overrides on top of the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("source", "")
	v.SetDefault("sheet", cronograma.DefaultSheetName)
	v.SetDefault("ignore_past", false)
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("INVENTARIO")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
