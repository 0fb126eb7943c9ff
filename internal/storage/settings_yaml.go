package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	AllowSeconds    int  `yaml:"allow_seconds"`
	ProhibitSeconds int  `yaml:"prohibit_seconds"`
	AutoCycle       bool `yaml:"auto_cycle"`
	StopOnError     bool `yaml:"stop_on_error"`
	KeepHistory     bool `yaml:"keep_history"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		AllowSeconds:    int(settings.AllowDuration / time.Second),
		ProhibitSeconds: int(settings.ProhibitDuration / time.Second),
		AutoCycle:       settings.AutoCycle,
		StopOnError:     settings.StopOnError,
		KeepHistory:     settings.KeepHistory,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.AllowSeconds > 0 {
		settings.AllowDuration = time.Duration(fileData.AllowSeconds) * time.Second
	}
	if fileData.ProhibitSeconds > 0 {
		settings.ProhibitDuration = time.Duration(fileData.ProhibitSeconds) * time.Second
	}
	settings.AutoCycle = fileData.AutoCycle
	settings.StopOnError = fileData.StopOnError
	settings.KeepHistory = fileData.KeepHistory
}
