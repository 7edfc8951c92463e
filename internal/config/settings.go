package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds user preferences read from the optional YAML file.
type Settings struct {
	Sound      bool
	Volume     float64
	ToneHz     float64
	DataDir    string
	ReportsDir string
	AltScreen  bool
}

type yamlSettings struct {
	Sound      *bool    `yaml:"sound"`
	Volume     *float64 `yaml:"volume"`
	ToneHz     float64  `yaml:"tone_hz"`
	DataDir    string   `yaml:"data_dir"`
	ReportsDir string   `yaml:"reports_dir"`
	AltScreen  *bool    `yaml:"alt_screen"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Sound:     true,
		Volume:    0,
		ToneHz:    BeepFrequencyHz,
		AltScreen: true,
	}
}

// LoadSettings reads user preferences from YAML at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	rawData, err := os.ReadFile(path)
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

// SaveSettings writes settings to path, creating the directory if needed.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	sound, volume, alt := settings.Sound, settings.Volume, settings.AltScreen
	fileData := yamlSettings{
		Sound:      &sound,
		Volume:     &volume,
		ToneHz:     settings.ToneHz,
		DataDir:    settings.DataDir,
		ReportsDir: settings.ReportsDir,
		AltScreen:  &alt,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.Sound != nil {
		settings.Sound = *fileData.Sound
	}
	// beep volume is logarithmic (base 2); -3 is barely audible, 1 is double.
	if fileData.Volume != nil && *fileData.Volume >= -3 && *fileData.Volume <= 1 {
		settings.Volume = *fileData.Volume
	}
	if fileData.ToneHz >= 200 && fileData.ToneHz <= 2000 {
		settings.ToneHz = fileData.ToneHz
	}
	if fileData.DataDir != "" {
		settings.DataDir = fileData.DataDir
	}
	if fileData.ReportsDir != "" {
		settings.ReportsDir = fileData.ReportsDir
	}
	if fileData.AltScreen != nil {
		settings.AltScreen = *fileData.AltScreen
	}
}
