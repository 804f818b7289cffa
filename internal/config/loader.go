package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"palette/internal/colour"
	"palette/pkg/logging"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/palette"
	projectConfigDir = ".palette"
	configFileName   = "config.yaml"
)

// LoadConfig loads the palette configuration by layering default, user, and project settings.
func LoadConfig() (PaletteConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = overlayIfPresent(config, userConfigPath)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = overlayIfPresent(config, projectConfigPath)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath layers a single explicit file over the defaults.
// Unlike the layered lookup, the file must exist.
func LoadConfigFromPath(path string) (PaletteConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Debug("Config", "Loaded configuration from %s", path)

	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	if err := config.Validate(); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

func overlayIfPresent(base PaletteConfig, path string) (PaletteConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Debug("Config", "No config file at %s", path)
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return PaletteConfig{}, err
	}
	logging.Debug("Config", "Loaded configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PaletteConfig from a YAML file.
func loadConfigFromFile(filePath string) (PaletteConfig, error) {
	var config PaletteConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PaletteConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in overlay leave the base value in place.
func mergeConfigs(base, overlay PaletteConfig) PaletteConfig {
	merged := base

	if overlay.Limit != 0 {
		merged.Limit = overlay.Limit
	}
	if overlay.HexPolicy != "" {
		merged.HexPolicy = overlay.HexPolicy
	}
	if overlay.SwatchWidth != 0 {
		merged.SwatchWidth = overlay.SwatchWidth
	}
	if overlay.WalPath != "" {
		merged.WalPath = overlay.WalPath
	}

	return merged
}

// Validate reports the first invalid setting.
func (c PaletteConfig) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.SwatchWidth < 1 {
		return fmt.Errorf("%w: swatchWidth must be at least 1, got %d", ErrInvalidConfig, c.SwatchWidth)
	}
	if _, err := colour.ParsePolicy(c.HexPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Policy returns the configured hex parse policy.
// It assumes the configuration has passed Validate.
func (c PaletteConfig) Policy() colour.Policy {
	p, _ := colour.ParsePolicy(c.HexPolicy)
	return p
}
