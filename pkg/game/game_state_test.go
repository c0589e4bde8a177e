package game

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/config"
)

func newTestState() *GameState {
	settings, _ := NewSettingsManager(nil)
	scores, _ := NewScoreManager(nil)
	return NewGameState(config.Default(), config.DefaultLevels(), settings, scores, nil)
}

func TestRecordMatchScoresOnePoint(t *testing.T) {
	gs := newTestState()
	super := gs.RecordMatch()
	if super {
		t.Error("RecordMatch() = true on first match, want false")
	}
	if gs.Score != 1 {
		t.Errorf("Score = %d, want 1", gs.Score)
	}
	if gs.Combo != 1 {
		t.Errorf("Combo = %d, want 1", gs.Combo)
	}
}

func TestComboSuperAtThreshold(t *testing.T) {
	gs := newTestState()
	var super bool
	for i := 0; i < SuperComboThreshold; i++ {
		super = gs.RecordMatch()
	}
	if !super {
		t.Errorf("RecordMatch() = false on match %d, want SUPER", SuperComboThreshold)
	}
	// Five matches plus the bonus point.
	if gs.Score != SuperComboThreshold+1 {
		t.Errorf("Score = %d, want %d", gs.Score, SuperComboThreshold+1)
	}
	if gs.Combo != 0 {
		t.Errorf("Combo = %d after SUPER, want 0", gs.Combo)
	}
}

func TestRecordMistakeResetsCombo(t *testing.T) {
	gs := newTestState()
	gs.RecordMatch()
	gs.RecordMatch()

	over := gs.RecordMistake()
	if over {
		t.Error("RecordMistake() = true on first mistake, want false")
	}
	if gs.Combo != 0 {
		t.Errorf("Combo = %d after mistake, want 0", gs.Combo)
	}
	if gs.Score != 2 {
		t.Errorf("Score = %d after mistake, want unchanged 2", gs.Score)
	}
}

func TestMistakesEndTheRun(t *testing.T) {
	gs := newTestState()
	allowed := gs.CurrentLevel().MistakesAllowed
	if allowed <= 0 {
		t.Skip("first level allows unlimited mistakes")
	}

	var over bool
	for i := 0; i < allowed; i++ {
		over = gs.RecordMistake()
	}
	if !over {
		t.Errorf("RecordMistake() = false after %d mistakes, want true", allowed)
	}
}

func TestUnlimitedMistakesNeverEndTheRun(t *testing.T) {
	gs := newTestState()
	gs.Levels = &config.LevelSet{Levels: []config.LevelConfig{
		{Name: "Free", Colors: 3, TrainSpeed: 200, MaxTrains: 5, MistakesAllowed: 0},
	}}

	for i := 0; i < 50; i++ {
		if gs.RecordMistake() {
			t.Fatalf("RecordMistake() = true on mistake %d with mistakes_allowed = 0", i+1)
		}
	}
}

func TestMaybeLevelUpThreshold(t *testing.T) {
	gs := newTestState()
	threshold := gs.Config.Game.LevelUpThreshold

	gs.Score = threshold - 1
	if gs.MaybeLevelUp() {
		t.Error("MaybeLevelUp() = true below threshold")
	}
	gs.Score = threshold
	if !gs.MaybeLevelUp() {
		t.Error("MaybeLevelUp() = false at threshold")
	}
	if gs.Level != 2 {
		t.Errorf("Level = %d, want 2", gs.Level)
	}
	// The next threshold scales with the level.
	if gs.MaybeLevelUp() {
		t.Error("MaybeLevelUp() = true again without more score")
	}
}

func TestEndlessModifiersCycle(t *testing.T) {
	gs := newTestState()
	last := gs.Levels.Count()

	gs.Level = last
	if got := gs.CurrentModifier(); got != ModifierNone {
		t.Errorf("modifier on last defined level = %v, want ModifierNone", got)
	}

	want := []EndlessModifier{ModifierExpressSignals, ModifierDenseFog, ModifierNone, ModifierExpressSignals}
	for i, w := range want {
		gs.Level = last + 1 + i
		if got := gs.CurrentModifier(); got != w {
			t.Errorf("modifier at %d levels past the end = %v, want %v", i+1, got, w)
		}
	}
}

func TestExpressSignalsSpeedUpTrains(t *testing.T) {
	gs := newTestState()
	last := gs.Levels.Count()

	gs.Level = last + 3 // plain endless round
	plain := gs.CurrentLevel()

	gs.Level = last + 4 // next round carries express signals
	express := gs.CurrentLevel()
	// One scaling step adds 25; express adds the multiplier on top.
	if express.TrainSpeed <= plain.TrainSpeed+25 {
		t.Errorf("express speed = %v, want > %v", express.TrainSpeed, plain.TrainSpeed+25)
	}
}

func TestModifierKeysResolve(t *testing.T) {
	lm := NewLanguageManager(LangEnglish)
	for _, m := range []EndlessModifier{ModifierExpressSignals, ModifierDenseFog} {
		key := m.Key()
		if key == "" {
			t.Errorf("modifier %v has empty key", m)
			continue
		}
		if got := lm.T(key); got == key {
			t.Errorf("key %q has no translation", key)
		}
	}
	if got := ModifierNone.Key(); got != "" {
		t.Errorf("ModifierNone.Key() = %q, want empty", got)
	}
}

func TestEndlessLevelKeepsScaling(t *testing.T) {
	gs := newTestState()
	last := gs.Levels.Count()
	gs.Level = last
	base := gs.CurrentLevel()

	gs.Level = last + 3
	scaled := gs.CurrentLevel()
	if scaled.TrainSpeed <= base.TrainSpeed {
		t.Errorf("TrainSpeed = %v past the last level, want > %v", scaled.TrainSpeed, base.TrainSpeed)
	}
	if scaled.MaxTrains > gs.Config.Game.MaxTrainsCap {
		t.Errorf("MaxTrains = %d exceeds cap %d", scaled.MaxTrains, gs.Config.Game.MaxTrainsCap)
	}
}

func TestResetRunClearsProgress(t *testing.T) {
	gs := newTestState()
	gs.Score = 12
	gs.Combo = 3
	gs.Mistakes = 2
	gs.Level = 4

	gs.ResetRun()
	if gs.Score != 0 || gs.Combo != 0 || gs.Mistakes != 0 || gs.Level != 1 {
		t.Errorf("ResetRun left score=%d combo=%d mistakes=%d level=%d",
			gs.Score, gs.Combo, gs.Mistakes, gs.Level)
	}
}

func TestNilAudioManagerIsSafe(t *testing.T) {
	var am *AudioManager
	am.Play(SoundClick)
	am.SyncMusic()
}
