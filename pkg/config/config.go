// Package config loads the game's tuning data: the JSON config file and
// the YAML level definitions.
//
// The config file is optional. Every field is validated independently and
// falls back to a hardcoded default when missing or invalid, so a broken
// config.json can degrade settings but never prevent the game from
// starting.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// WindowConfig holds the window geometry and title.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// GameConfig holds the gameplay tuning knobs.
type GameConfig struct {
	// InitialTrainSpeed is the departure speed of matched trains in
	// pixels per second.
	InitialTrainSpeed float64 `json:"initial_train_speed"`
	// InitialMaxTrains is the number of trains dealt in the first round.
	InitialMaxTrains int `json:"initial_max_trains"`
	// LevelUpThreshold is the score step per difficulty level.
	LevelUpThreshold int `json:"level_up_threshold"`
	// MaxTrainsCap limits row growth as the difficulty rises.
	MaxTrainsCap int `json:"max_trains_cap"`
}

// TrainConfig holds the train sprite geometry.
type TrainConfig struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	WheelRadius float64 `json:"wheel_radius"`
	Spacing     float64 `json:"spacing"`
}

// ParticleConfig holds the particle effect tuning.
type ParticleConfig struct {
	// BurstCount is the particle count of button and match bursts.
	BurstCount int `json:"burst_count"`
	// ExplosionCount is the particle count of failure explosions.
	ExplosionCount int `json:"explosion_count"`
	// SizeMin and SizeMax bound the initial particle radius.
	SizeMin float64 `json:"size_min"`
	SizeMax float64 `json:"size_max"`
	// VelocityMin and VelocityMax bound each velocity component in
	// pixels per second.
	VelocityMin float64 `json:"velocity_min"`
	VelocityMax float64 `json:"velocity_max"`
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float64 `json:"gravity"`
	// FadeMin and FadeMax bound the alpha decay rate per second.
	FadeMin float64 `json:"fade_min"`
	FadeMax float64 `json:"fade_max"`
	// SmokeChance is the per-frame emission probability of chimney smoke
	// from a departing train.
	SmokeChance float64 `json:"smoke_chance"`
}

// ParallaxConfig holds the background layer speeds in pixels per second.
type ParallaxConfig struct {
	CloudSpeed   float64 `json:"cloud_speed"`
	TreeSpeed    float64 `json:"tree_speed"`
	CloudOffsetY float64 `json:"cloud_offset_y"`
	TreeOffsetY  float64 `json:"tree_offset_y"`
}

// SceneryConfig holds the decorative element counts and glow bounds.
type SceneryConfig struct {
	TreeCount  int `json:"tree_count"`
	CloudCount int `json:"cloud_count"`
	StarCount  int `json:"star_count"`
	// GlowMin and GlowMax bound the pulsing star brightness (0-255).
	GlowMin float64 `json:"glow_min"`
	GlowMax float64 `json:"glow_max"`
}

// Config is the full validated game configuration.
type Config struct {
	Window    WindowConfig   `json:"window"`
	Game      GameConfig     `json:"game"`
	Train     TrainConfig    `json:"train"`
	Particles ParticleConfig `json:"particles"`
	Parallax  ParallaxConfig `json:"parallax"`
	Scenery   SceneryConfig  `json:"scenery"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Train Color Matcher",
		},
		Game: GameConfig{
			InitialTrainSpeed: 300,
			InitialMaxTrains:  10,
			LevelUpThreshold:  5,
			MaxTrainsCap:      15,
		},
		Train: TrainConfig{
			Width:       60,
			Height:      30,
			WheelRadius: 5,
			Spacing:     80,
		},
		Particles: ParticleConfig{
			BurstCount:     20,
			ExplosionCount: 30,
			SizeMin:        4,
			SizeMax:        8,
			VelocityMin:    -30,
			VelocityMax:    30,
			Gravity:        15,
			FadeMin:        0.5,
			FadeMax:        1.5,
			SmokeChance:    0.3,
		},
		Parallax: ParallaxConfig{
			CloudSpeed:   10,
			TreeSpeed:    30,
			CloudOffsetY: 100,
			TreeOffsetY:  200,
		},
		Scenery: SceneryConfig{
			TreeCount:  5,
			CloudCount: 3,
			StarCount:  50,
			GlowMin:    150,
			GlowMax:    255,
		},
	}
}

// Load reads and validates the config file at path. A missing or
// unparseable file yields the defaults; individually invalid fields fall
// back to their defaults while valid ones are kept.
func Load(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Config] %s not readable (%v), using defaults", path, err)
		return Default()
	}

	var raw Config
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("[Config] failed to parse %s (%v), using defaults", path, err)
		return Default()
	}

	return Validate(&raw)
}

// Validate substitutes defaults for every invalid field of cfg and returns
// the result. cfg itself is not modified.
func Validate(cfg *Config) *Config {
	def := Default()
	if cfg == nil {
		return def
	}

	out := *def

	// Window: a smaller-than-minimum window would clip the track layout.
	if cfg.Window.Width >= 800 {
		out.Window.Width = cfg.Window.Width
	}
	if cfg.Window.Height >= 600 {
		out.Window.Height = cfg.Window.Height
	}
	if cfg.Window.Title != "" {
		out.Window.Title = cfg.Window.Title
	}

	out.Game.InitialTrainSpeed = positiveOr(cfg.Game.InitialTrainSpeed, def.Game.InitialTrainSpeed)
	out.Game.InitialMaxTrains = positiveIntOr(cfg.Game.InitialMaxTrains, def.Game.InitialMaxTrains)
	out.Game.LevelUpThreshold = positiveIntOr(cfg.Game.LevelUpThreshold, def.Game.LevelUpThreshold)
	out.Game.MaxTrainsCap = positiveIntOr(cfg.Game.MaxTrainsCap, def.Game.MaxTrainsCap)
	if out.Game.MaxTrainsCap < out.Game.InitialMaxTrains {
		out.Game.MaxTrainsCap = out.Game.InitialMaxTrains
	}

	out.Train.Width = positiveOr(cfg.Train.Width, def.Train.Width)
	out.Train.Height = positiveOr(cfg.Train.Height, def.Train.Height)
	out.Train.WheelRadius = positiveOr(cfg.Train.WheelRadius, def.Train.WheelRadius)
	out.Train.Spacing = positiveOr(cfg.Train.Spacing, def.Train.Spacing)
	if out.Train.Spacing < out.Train.Width {
		// Overlapping trains make the leftmost train ambiguous to read.
		out.Train.Spacing = out.Train.Width
	}

	out.Particles.BurstCount = positiveIntOr(cfg.Particles.BurstCount, def.Particles.BurstCount)
	out.Particles.ExplosionCount = positiveIntOr(cfg.Particles.ExplosionCount, def.Particles.ExplosionCount)
	out.Particles.SizeMin = positiveOr(cfg.Particles.SizeMin, def.Particles.SizeMin)
	out.Particles.SizeMax = positiveOr(cfg.Particles.SizeMax, def.Particles.SizeMax)
	if out.Particles.SizeMax < out.Particles.SizeMin {
		out.Particles.SizeMin, out.Particles.SizeMax = out.Particles.SizeMax, out.Particles.SizeMin
	}
	if cfg.Particles.VelocityMin != 0 || cfg.Particles.VelocityMax != 0 {
		out.Particles.VelocityMin = cfg.Particles.VelocityMin
		out.Particles.VelocityMax = cfg.Particles.VelocityMax
		if out.Particles.VelocityMax < out.Particles.VelocityMin {
			out.Particles.VelocityMin, out.Particles.VelocityMax = out.Particles.VelocityMax, out.Particles.VelocityMin
		}
	}
	if cfg.Particles.Gravity > 0 {
		out.Particles.Gravity = cfg.Particles.Gravity
	}
	out.Particles.FadeMin = positiveOr(cfg.Particles.FadeMin, def.Particles.FadeMin)
	out.Particles.FadeMax = positiveOr(cfg.Particles.FadeMax, def.Particles.FadeMax)
	if out.Particles.FadeMax < out.Particles.FadeMin {
		out.Particles.FadeMin, out.Particles.FadeMax = out.Particles.FadeMax, out.Particles.FadeMin
	}
	if cfg.Particles.SmokeChance > 0 && cfg.Particles.SmokeChance <= 1 {
		out.Particles.SmokeChance = cfg.Particles.SmokeChance
	}

	out.Parallax.CloudSpeed = positiveOr(cfg.Parallax.CloudSpeed, def.Parallax.CloudSpeed)
	out.Parallax.TreeSpeed = positiveOr(cfg.Parallax.TreeSpeed, def.Parallax.TreeSpeed)
	out.Parallax.CloudOffsetY = positiveOr(cfg.Parallax.CloudOffsetY, def.Parallax.CloudOffsetY)
	out.Parallax.TreeOffsetY = positiveOr(cfg.Parallax.TreeOffsetY, def.Parallax.TreeOffsetY)

	out.Scenery.TreeCount = positiveIntOr(cfg.Scenery.TreeCount, def.Scenery.TreeCount)
	out.Scenery.CloudCount = positiveIntOr(cfg.Scenery.CloudCount, def.Scenery.CloudCount)
	out.Scenery.StarCount = positiveIntOr(cfg.Scenery.StarCount, def.Scenery.StarCount)
	if cfg.Scenery.GlowMin > 0 && cfg.Scenery.GlowMin <= 255 {
		out.Scenery.GlowMin = cfg.Scenery.GlowMin
	}
	if cfg.Scenery.GlowMax > 0 && cfg.Scenery.GlowMax <= 255 {
		out.Scenery.GlowMax = cfg.Scenery.GlowMax
	}
	if out.Scenery.GlowMax < out.Scenery.GlowMin {
		out.Scenery.GlowMin, out.Scenery.GlowMax = out.Scenery.GlowMax, out.Scenery.GlowMin
	}

	return &out
}

// Save writes cfg to path as indented JSON. Used by tooling and tests;
// the game itself never writes its config.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func positiveOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func positiveIntOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
