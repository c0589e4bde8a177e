package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings are the global user preferences. They are not bound to a
// particular run.
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`

	// DarkMode selects the dark palette at startup.
	DarkMode bool `yaml:"darkMode"`
	// Fullscreen starts the window fullscreen.
	Fullscreen bool `yaml:"fullscreen"`
	// Language is the UI language code ("en", "es", "fr", "de").
	Language string `yaml:"language"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		DarkMode:     false,
		Fullscreen:   false,
		Language:     string(LangEnglish),
	}
}

// SettingsManager loads and saves GameSettings through gdata. With a nil
// gdata manager it degrades to in-memory settings.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and loads any saved
// settings. A load failure is not fatal; defaults are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load reads settings from storage. Missing storage or a missing file
// leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded GameSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	sm.clampVolumes()
	return nil
}

// Save writes the current settings to storage. With no storage it is a
// no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Get returns the live settings struct. Mutate through the setters so
// values stay in range and get persisted.
func (sm *SettingsManager) Get() *GameSettings {
	return sm.settings
}

// SetMusicVolume clamps v to 0..1, applies it and saves.
func (sm *SettingsManager) SetMusicVolume(v float64) {
	sm.settings.MusicVolume = clamp01(v)
	sm.saveQuietly()
}

// SetSoundVolume clamps v to 0..1, applies it and saves.
func (sm *SettingsManager) SetSoundVolume(v float64) {
	sm.settings.SoundVolume = clamp01(v)
	sm.saveQuietly()
}

// ToggleSound flips the sound effect switch and saves. It returns the new
// state.
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	sm.saveQuietly()
	return sm.settings.SoundEnabled
}

// ToggleMusic flips the music switch and saves. It returns the new state.
func (sm *SettingsManager) ToggleMusic() bool {
	sm.settings.MusicEnabled = !sm.settings.MusicEnabled
	sm.saveQuietly()
	return sm.settings.MusicEnabled
}

// SetDarkMode records the theme choice and saves.
func (sm *SettingsManager) SetDarkMode(dark bool) {
	sm.settings.DarkMode = dark
	sm.saveQuietly()
}

// SetFullscreen records the fullscreen preference and saves.
func (sm *SettingsManager) SetFullscreen(fullscreen bool) {
	sm.settings.Fullscreen = fullscreen
	sm.saveQuietly()
}

// SetLanguage records the UI language and saves.
func (sm *SettingsManager) SetLanguage(lang Language) {
	sm.settings.Language = string(lang)
	sm.saveQuietly()
}

func (sm *SettingsManager) saveQuietly() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to save settings: %v", err)
	}
}

func (sm *SettingsManager) clampVolumes() {
	sm.settings.MusicVolume = clamp01(sm.settings.MusicVolume)
	sm.settings.SoundVolume = clamp01(sm.settings.SoundVolume)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
