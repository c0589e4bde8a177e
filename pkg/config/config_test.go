package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.json"))
	def := Default()
	if *cfg != *def {
		t.Errorf("Load(missing) = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if *cfg != *Default() {
		t.Errorf("Load(malformed) = %+v, want defaults", cfg)
	}
}

func TestLoadKeepsValidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"window": {"width": 1280, "height": 720, "title": "Custom"},
	          "game": {"initial_train_speed": 400}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Custom" {
		t.Errorf("title = %q, want Custom", cfg.Window.Title)
	}
	if cfg.Game.InitialTrainSpeed != 400 {
		t.Errorf("initial_train_speed = %v, want 400", cfg.Game.InitialTrainSpeed)
	}
	// Fields absent from the file fall back to defaults.
	if cfg.Game.InitialMaxTrains != Default().Game.InitialMaxTrains {
		t.Errorf("initial_max_trains = %d, want default %d",
			cfg.Game.InitialMaxTrains, Default().Game.InitialMaxTrains)
	}
}

func TestValidateRejectsSmallWindow(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 100
	cfg.Window.Height = -5

	got := Validate(cfg)
	if got.Window.Width != 800 || got.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", got.Window.Width, got.Window.Height)
	}
}

func TestValidateRejectsNonPositiveGameValues(t *testing.T) {
	cfg := Default()
	cfg.Game.InitialTrainSpeed = -10
	cfg.Game.InitialMaxTrains = 0
	cfg.Game.LevelUpThreshold = -1

	got := Validate(cfg)
	def := Default()
	if got.Game.InitialTrainSpeed != def.Game.InitialTrainSpeed {
		t.Errorf("initial_train_speed = %v, want %v", got.Game.InitialTrainSpeed, def.Game.InitialTrainSpeed)
	}
	if got.Game.InitialMaxTrains != def.Game.InitialMaxTrains {
		t.Errorf("initial_max_trains = %d, want %d", got.Game.InitialMaxTrains, def.Game.InitialMaxTrains)
	}
	if got.Game.LevelUpThreshold != def.Game.LevelUpThreshold {
		t.Errorf("level_up_threshold = %d, want %d", got.Game.LevelUpThreshold, def.Game.LevelUpThreshold)
	}
}

func TestValidateCapNotBelowInitialTrains(t *testing.T) {
	cfg := Default()
	cfg.Game.InitialMaxTrains = 12
	cfg.Game.MaxTrainsCap = 8

	got := Validate(cfg)
	if got.Game.MaxTrainsCap < got.Game.InitialMaxTrains {
		t.Errorf("max_trains_cap = %d below initial_max_trains = %d",
			got.Game.MaxTrainsCap, got.Game.InitialMaxTrains)
	}
}

func TestValidateSwapsInvertedBounds(t *testing.T) {
	cfg := Default()
	cfg.Particles.SizeMin = 9
	cfg.Particles.SizeMax = 3
	cfg.Scenery.GlowMin = 250
	cfg.Scenery.GlowMax = 120

	got := Validate(cfg)
	if got.Particles.SizeMin > got.Particles.SizeMax {
		t.Errorf("particle size bounds inverted: %v > %v", got.Particles.SizeMin, got.Particles.SizeMax)
	}
	if got.Scenery.GlowMin > got.Scenery.GlowMax {
		t.Errorf("glow bounds inverted: %v > %v", got.Scenery.GlowMin, got.Scenery.GlowMax)
	}
}

func TestValidateNilReturnsDefaults(t *testing.T) {
	if got := Validate(nil); *got != *Default() {
		t.Errorf("Validate(nil) = %+v, want defaults", got)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Game.LevelUpThreshold = 8

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got := Load(path)
	if got.Window.Width != 1024 {
		t.Errorf("width = %d, want 1024", got.Window.Width)
	}
	if got.Game.LevelUpThreshold != 8 {
		t.Errorf("level_up_threshold = %d, want 8", got.Game.LevelUpThreshold)
	}
}
