package cmd

import (
	"fmt"

	"github.com/papapumpkin/minkowski/internal/config"
	"github.com/papapumpkin/minkowski/internal/diagram"
	"github.com/papapumpkin/minkowski/internal/relativity"
	"github.com/papapumpkin/minkowski/internal/scene"
)

// loadConfig resolves the effective configuration from defaults, config
// file, environment, and bound flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadSession loads the scene file and builds its frame registry.
func loadSession(cfg config.Config) (*scene.Scene, *relativity.Registry, error) {
	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return nil, nil, err
	}
	reg, err := scene.Build(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("building scene %s: %w", cfg.ScenePath, err)
	}
	return sc, reg, nil
}

// newRenderer builds a diagram renderer from the configuration.
func newRenderer(cfg config.Config) *diagram.Renderer {
	return &diagram.Renderer{
		Width:          cfg.Width,
		Height:         cfg.Height,
		TRange:         cfg.TRange,
		XRange:         cfg.XRange,
		UseColor:       !cfg.NoColor,
		ShowHyperbolas: cfg.ShowHyperbolas,
		ShowWorldlines: cfg.ShowWorldlines,
		ShowLightCone:  cfg.ShowLightCone,
	}
}
