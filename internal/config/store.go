package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const (
	appDir       = "particle-field"
	settingsFile = "settings.json"
)

// GetSettingsPath returns ~/.config/particle-field/settings.json, creating
// the directory if needed.
func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", appDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return filepath.Join(configDir, settingsFile), nil
}

// Load reads settings from path. A missing file is created with defaults.
// Malformed files and out-of-range values fall back to defaults with a log
// line rather than an error; only I/O failures are returned.
func Load(path string) (Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Creating default settings file at %s", path)
			if err := Save(path, defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaults, nil
		}
		return defaults, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	known := knownKeys(Settings{})
	for key := range raw {
		if !known[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Start from defaults so absent keys keep their default value
	settings := defaults
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	return Validate(settings), nil
}

// Save writes s to path as indented JSON, creating parent directories.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Validate replaces every out-of-range field of s with its default, logging
// each replacement.
func Validate(s Settings) Settings {
	d := Default()

	if s.ParticleCount < MinCount || s.ParticleCount > MaxCount {
		log.Printf("Invalid particle_count %d, must be between %d and %d, using default %d",
			s.ParticleCount, MinCount, MaxCount, d.ParticleCount)
		s.ParticleCount = d.ParticleCount
	}
	if s.ParticleSize < MinSize || s.ParticleSize > MaxSize {
		log.Printf("Invalid particle_size %.2f, must be between %.1f and %.1f, using default %.1f",
			s.ParticleSize, MinSize, MaxSize, d.ParticleSize)
		s.ParticleSize = d.ParticleSize
	}
	if s.ParticleSpeed < MinSpeed || s.ParticleSpeed > MaxSpeed {
		log.Printf("Invalid particle_speed %.2f, must be between %.1f and %.1f, using default %.1f",
			s.ParticleSpeed, MinSpeed, MaxSpeed, d.ParticleSpeed)
		s.ParticleSpeed = d.ParticleSpeed
	}
	if !s.ColorTheme.Valid() {
		log.Printf("Invalid color_theme %q, using default %q", s.ColorTheme, d.ColorTheme)
		s.ColorTheme = d.ColorTheme
	}
	if !s.InteractionMode.Valid() {
		log.Printf("Invalid interaction_mode %q, using default %q", s.InteractionMode, d.InteractionMode)
		s.InteractionMode = d.InteractionMode
	}
	if s.Drift < 0 || s.Drift > MaxDrift {
		log.Printf("Invalid drift %.2f, must be between 0 and %.1f, using default %.1f", s.Drift, MaxDrift, d.Drift)
		s.Drift = d.Drift
	}
	return s
}

func knownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("json"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = true
			}
		}
	}
	return keys
}
