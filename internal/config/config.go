// Package config holds runtime configuration for a minkowski session.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. Values are populated from
// .minkowski.yaml, MINKOWSKI_* env vars, and CLI flags.
type Config struct {
	ScenePath      string  `mapstructure:"scene_path"`
	Width          int     `mapstructure:"width"`
	Height         int     `mapstructure:"height"`
	TRange         float64 `mapstructure:"t_range"`
	XRange         float64 `mapstructure:"x_range"`
	NoColor        bool    `mapstructure:"no_color"`
	ShowHyperbolas bool    `mapstructure:"show_hyperbolas"`
	ShowWorldlines bool    `mapstructure:"show_worldlines"`
	ShowLightCone  bool    `mapstructure:"show_light_cone"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("scene_path", ".minkowski/scene.toml")
	viper.SetDefault("width", 79)
	viper.SetDefault("height", 25)
	viper.SetDefault("t_range", 5.0)
	viper.SetDefault("x_range", 5.0)
	viper.SetDefault("no_color", false)
	viper.SetDefault("show_hyperbolas", true)
	viper.SetDefault("show_worldlines", true)
	viper.SetDefault("show_light_cone", true)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
