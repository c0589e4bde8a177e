package game

import (
	"log"

	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/theme"
)

// SuperComboThreshold is the streak length that triggers the SUPER
// celebration and bonus point.
const SuperComboThreshold = 5

// GameState is the shared blackboard the scenes read and write: the
// run's score and progression plus the managers every scene needs.
type GameState struct {
	Config *config.Config
	Levels *config.LevelSet

	Settings *SettingsManager
	Scores   *ScoreManager
	Audio    *AudioManager
	Theme    *theme.Manager
	Lang     *LanguageManager

	// Score is the points earned this run.
	Score int
	// Combo counts consecutive correct matches; it resets on a mistake.
	Combo int
	// Mistakes counts wrong selections this run.
	Mistakes int
	// Level is the 1-based difficulty level. It rises with the score and
	// keeps climbing past the defined levels when the last one is
	// endless.
	Level int

	// QuitRequested tells the app loop to terminate cleanly.
	QuitRequested bool
}

// NewGameState wires up a state from loaded config and managers.
func NewGameState(cfg *config.Config, levels *config.LevelSet, settings *SettingsManager, scores *ScoreManager, audio *AudioManager) *GameState {
	dark := false
	lang := LangEnglish
	if settings != nil {
		dark = settings.Get().DarkMode
		lang = Language(settings.Get().Language)
	}
	return &GameState{
		Config:   cfg,
		Levels:   levels,
		Settings: settings,
		Scores:   scores,
		Audio:    audio,
		Theme:    theme.NewManager(dark),
		Lang:     NewLanguageManager(lang),
		Level:    1,
	}
}

// T returns the UI string for key in the active language.
func (gs *GameState) T(key string) string {
	if gs.Lang == nil {
		return key
	}
	return gs.Lang.T(key)
}

// ResetRun clears the per-run progress for a fresh game.
func (gs *GameState) ResetRun() {
	gs.Score = 0
	gs.Combo = 0
	gs.Mistakes = 0
	gs.Level = 1
}

// EndlessModifier is an extra rule applied to rounds past the last
// defined level. Modifiers cycle as the endless level keeps climbing.
type EndlessModifier int

const (
	ModifierNone EndlessModifier = iota
	// ModifierExpressSignals speeds departing trains up further.
	ModifierExpressSignals
	// ModifierDenseFog draws a fog bank over the track.
	ModifierDenseFog
)

// Key returns the translation key of the modifier, empty for none.
func (m EndlessModifier) Key() string {
	switch m {
	case ModifierExpressSignals:
		return "express_signals"
	case ModifierDenseFog:
		return "dense_fog"
	}
	return ""
}

// expressSpeedFactor is the extra departure speed under express signals.
const expressSpeedFactor = 1.2

// CurrentLevel returns the level config in effect. Past the last defined
// level, an endless final level keeps scaling: more speed and up to two
// extra trains per level, capped, plus the active endless modifier.
func (gs *GameState) CurrentLevel() config.LevelConfig {
	lv := gs.Levels.Level(gs.Level)
	if extra := gs.Level - gs.Levels.Count(); extra > 0 && lv.Endless {
		lv.TrainSpeed += float64(extra) * 25
		lv.MaxTrains += extra * 2
		if lv.MaxTrains > gs.Config.Game.MaxTrainsCap {
			lv.MaxTrains = gs.Config.Game.MaxTrainsCap
		}
	}
	if gs.CurrentModifier() == ModifierExpressSignals {
		lv.TrainSpeed *= expressSpeedFactor
	}
	return lv
}

// CurrentModifier returns the endless rule in effect, ModifierNone while
// still inside the defined levels. Past them the modifiers cycle: express
// signals, dense fog, a plain round, and around again.
func (gs *GameState) CurrentModifier() EndlessModifier {
	extra := gs.Level - gs.Levels.Count()
	if extra <= 0 || !gs.Levels.Level(gs.Level).Endless {
		return ModifierNone
	}
	switch extra % 3 {
	case 1:
		return ModifierExpressSignals
	case 2:
		return ModifierDenseFog
	}
	return ModifierNone
}

// RecordMatch applies a correct match: one point, combo advance, and the
// SUPER bonus when the streak reaches the threshold. It returns true when
// the SUPER celebration should fire.
func (gs *GameState) RecordMatch() bool {
	gs.Score++
	gs.Combo++
	if gs.Combo >= SuperComboThreshold {
		gs.Score++
		gs.Combo = 0
		return true
	}
	return false
}

// RecordMistake applies a wrong selection and reports whether the run is
// over. A mistakes_allowed of zero means unlimited.
func (gs *GameState) RecordMistake() bool {
	gs.Mistakes++
	gs.Combo = 0
	allowed := gs.CurrentLevel().MistakesAllowed
	return allowed > 0 && gs.Mistakes >= allowed
}

// MaybeLevelUp raises the level once the score crosses the next
// threshold (level times level_up_threshold) and reports whether it did.
func (gs *GameState) MaybeLevelUp() bool {
	if gs.Score < gs.Level*gs.Config.Game.LevelUpThreshold {
		return false
	}
	gs.Level++
	log.Printf("[GameState] level up: level=%d score=%d", gs.Level, gs.Score)
	return true
}

// RequestQuit asks the app loop to exit after the current frame.
func (gs *GameState) RequestQuit() {
	gs.QuitRequested = true
}
