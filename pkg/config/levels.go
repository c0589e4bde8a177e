package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelConfig describes one difficulty level of the campaign. The last
// level may be endless, in which case the game keeps scaling it instead
// of advancing.
type LevelConfig struct {
	Name string `yaml:"name"`
	// Colors is how many of the train colors this level draws from.
	Colors int `yaml:"colors"`
	// TrainSpeed is the departure speed in pixels per second.
	TrainSpeed float64 `yaml:"train_speed"`
	// MaxTrains is the number of trains dealt each round.
	MaxTrains int `yaml:"max_trains"`
	// Spacing is the horizontal slot distance in pixels. Zero means use
	// the train config's spacing.
	Spacing float64 `yaml:"spacing"`
	// MistakesAllowed ends the round when reached. Zero means unlimited.
	MistakesAllowed int `yaml:"mistakes_allowed"`
	// Endless marks the level that repeats with scaling difficulty.
	Endless bool `yaml:"endless"`
}

// LevelSet is the ordered list of levels loaded from levels.yaml.
type LevelSet struct {
	Levels []LevelConfig `yaml:"levels"`
}

// DefaultLevels returns the built-in campaign used when no levels.yaml is
// present.
func DefaultLevels() *LevelSet {
	return &LevelSet{
		Levels: []LevelConfig{
			{Name: "Depot", Colors: 3, TrainSpeed: 250, MaxTrains: 6, MistakesAllowed: 3},
			{Name: "Branch Line", Colors: 4, TrainSpeed: 300, MaxTrains: 8, MistakesAllowed: 3},
			{Name: "Main Line", Colors: 5, TrainSpeed: 350, MaxTrains: 10, MistakesAllowed: 3},
			{Name: "Express", Colors: 6, TrainSpeed: 400, MaxTrains: 12, MistakesAllowed: 3},
			{Name: "Night Shift", Colors: 7, TrainSpeed: 450, MaxTrains: 14, MistakesAllowed: 3, Endless: true},
		},
	}
}

// LoadLevels reads the level set at path, falling back to the built-in
// campaign when the file is missing or unusable.
func LoadLevels(path string) *LevelSet {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Config] %s not readable (%v), using built-in levels", path, err)
		}
		return DefaultLevels()
	}

	var set LevelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		log.Printf("[Config] failed to parse %s (%v), using built-in levels", path, err)
		return DefaultLevels()
	}
	if err := set.validate(); err != nil {
		log.Printf("[Config] %s invalid (%v), using built-in levels", path, err)
		return DefaultLevels()
	}
	return &set
}

// Level returns the level config for the 1-based level number. Past the
// end of the list the final level is returned, so an endless last level
// repeats.
func (s *LevelSet) Level(n int) LevelConfig {
	if n < 1 {
		n = 1
	}
	if n > len(s.Levels) {
		n = len(s.Levels)
	}
	return s.Levels[n-1]
}

// Count returns the number of defined levels.
func (s *LevelSet) Count() int {
	return len(s.Levels)
}

func (s *LevelSet) validate() error {
	if len(s.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	for i, lv := range s.Levels {
		if lv.Colors < 2 || lv.Colors > MaxTrainColors {
			return fmt.Errorf("level %d: colors = %d, want 2..%d", i+1, lv.Colors, MaxTrainColors)
		}
		if lv.TrainSpeed <= 0 {
			return fmt.Errorf("level %d: train_speed = %v, want > 0", i+1, lv.TrainSpeed)
		}
		if lv.MaxTrains < 1 {
			return fmt.Errorf("level %d: max_trains = %d, want >= 1", i+1, lv.MaxTrains)
		}
		if lv.MistakesAllowed < 0 {
			return fmt.Errorf("level %d: mistakes_allowed = %d, want >= 0", i+1, lv.MistakesAllowed)
		}
	}
	return nil
}
