package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sysforge/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir    = ".config/sysforge"
	settingsFileName = "config.yaml"
)

// Settings is the tool's own configuration, distinct from the machine
// configuration it compiles. It lives in ~/.config/sysforge/config.yaml.
type Settings struct {
	OutputDir string `yaml:"outputDir,omitempty"` // Default artifact output directory
	LogLevel  string `yaml:"logLevel,omitempty"`  // debug, info, warn or error
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		OutputDir: "out",
		LogLevel:  "info",
	}
}

// GetDefaultSettingsPathOrPanic returns the user's sysforge settings
// directory.
func GetDefaultSettingsPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadSettings loads the tool settings from the specified directory. A
// missing file is not an error; the defaults are returned instead.
func LoadSettings(settingsPath string) (Settings, error) {
	settingsFilePath := filepath.Join(settingsPath, settingsFileName)
	settings := DefaultSettings()

	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No settings file at %s, using defaults", settingsFilePath)
			return settings, nil
		}
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error loading settings from %s: %w", settingsFilePath, err)
	}
	logging.Debug("ConfigLoader", "Loaded settings from %s", settingsFilePath)
	return settings, nil
}
