// Package app wraps the game behind the ebiten.Game interface: it loads
// config and storage, wires the managers together and runs the scene loop
// at a fixed timestep.
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/game"
	"github.com/gonewx/trainmatch/pkg/scenes"
)

// Config defines the startup options.
type Config struct {
	// Verbose enables log output; otherwise logs are discarded.
	Verbose bool
	// ConfigPath is the tuning file, default "config.json".
	ConfigPath string
	// LevelsPath is the level list, default "levels.yaml".
	LevelsPath string
	// SkipMenu starts straight in the playing scene.
	SkipMenu bool
}

// App is the ebiten.Game implementation driving the scene manager.
type App struct {
	sceneManager *game.SceneManager
	state        *game.GameState
	verbose      bool

	// Exiting fullscreen needs a few frames before the window manager
	// accepts a new window size.
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp loads configuration and storage and builds the initial scene.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = "config.json"
	}
	if cfg.LevelsPath == "" {
		cfg.LevelsPath = "levels.yaml"
	}

	gameCfg := config.Load(cfg.ConfigPath)
	levels := config.LoadLevels(cfg.LevelsPath)
	log.Printf("[App] config loaded: window %dx%d, %d levels",
		gameCfg.Window.Width, gameCfg.Window.Height, levels.Count())

	// Storage failure degrades to in-memory settings and scores.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "trainmatch"})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	scoreManager, err := game.NewScoreManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	audioManager := game.NewAudioManager(settings)
	state := game.NewGameState(gameCfg, levels, settings, scoreManager, audioManager)

	sceneManager := game.NewSceneManager()
	if cfg.SkipMenu {
		state.ResetRun()
		sceneManager.SwitchTo(scenes.NewGameScene(state, sceneManager))
	} else {
		sceneManager.SwitchTo(scenes.NewMenuScene(state, sceneManager))
	}

	return &App{
		sceneManager: sceneManager,
		state:        state,
		verbose:      cfg.Verbose,
	}, nil
}

// Update runs one fixed 60 Hz tick.
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.state.Config.Window.Width, a.state.Config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	if a.state.QuitRequested {
		a.Shutdown()
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen letterboxes the scaled game image on black when the
// window aspect does not match.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.state.Config.Window.Width, a.state.Config.Window.Height
}

// Shutdown persists whatever the active scene wants saved. Called on quit
// and on window close.
func (a *App) Shutdown() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok && s.SaveOnExit() {
		log.Printf("[App] scene state saved on exit")
	}
	if a.state.Settings != nil {
		if err := a.state.Settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}
}

// State exposes the game state for the entrypoint (window setup).
func (a *App) State() *game.GameState {
	return a.state
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}
	if a.state.Settings != nil {
		a.state.Settings.SetFullscreen(ebiten.IsFullscreen())
	}
}
