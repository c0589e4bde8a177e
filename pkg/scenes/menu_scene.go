// Package scenes implements the game's screens: menu, playing and game
// over. Each scene owns its entity manager and systems; switching scenes
// throws the old world away.
package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
	"github.com/gonewx/trainmatch/pkg/game"
	"github.com/gonewx/trainmatch/pkg/systems"
)

// MenuScene is the title screen: start and quit buttons over the scrolling
// scenery, plus the theme and language toggles.
type MenuScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	em        *ecs.EntityManager
	buttons   *systems.ButtonSystem
	particles *systems.ParticleSystem
	parallax  *systems.ParallaxSystem
	render    *systems.RenderSystem

	themeButton ecs.EntityID
}

// NewMenuScene builds the title screen.
func NewMenuScene(state *game.GameState, sceneManager *game.SceneManager) *MenuScene {
	em := ecs.NewEntityManager()
	screenW := float64(state.Config.Window.Width)
	screenH := float64(state.Config.Window.Height)

	s := &MenuScene{
		state:        state,
		sceneManager: sceneManager,
		em:           em,
		buttons:      systems.NewButtonSystem(em),
		particles:    systems.NewParticleSystem(em),
		parallax:     systems.NewParallaxSystem(em, screenW, state.Config.Scenery),
		render:       systems.NewRenderSystem(em, screenW, screenH),
	}
	s.buttons.ClickEffect = clickEffect(state, em)

	entities.CreateScenery(em, state.Config, screenW, screenH)

	centerX := screenW / 2
	entities.NewButton(em, centerX, screenH*0.52, state.T("start"), func() {
		state.ResetRun()
		sceneManager.SwitchTo(NewGameScene(state, sceneManager))
	}, entities.ButtonOptions{Bob: true})

	entities.NewButton(em, centerX, screenH*0.52+70, state.T("quit"), func() {
		state.RequestQuit()
	}, entities.ButtonOptions{Bob: true, BobPhase: 1.2})

	s.themeButton = entities.NewButton(em, screenW-70, 40, themeLabel(state), func() {
		toggleTheme(state)
		s.refreshThemeLabel()
	}, entities.ButtonOptions{Width: 100, Height: 36, FontSize: 16})

	entities.NewButton(em, screenW-70, 86, state.Lang.Label(), func() {
		next := state.Lang.Cycle()
		if state.Settings != nil {
			state.Settings.SetLanguage(next)
		}
		// Every label changes, so rebuild the whole screen.
		sceneManager.SwitchTo(NewMenuScene(state, sceneManager))
	}, entities.ButtonOptions{Width: 100, Height: 36, FontSize: 16})

	return s
}

// Update advances the menu by deltaTime seconds.
func (s *MenuScene) Update(deltaTime float64) {
	s.state.Theme.Update(deltaTime)
	s.parallax.Update(deltaTime)
	s.buttons.Update(deltaTime)
	s.particles.Update(deltaTime)
}

// Draw renders the menu.
func (s *MenuScene) Draw(screen *ebiten.Image) {
	pal := s.state.Theme.Current()
	dark := s.state.Theme.IsDark()
	screenW, screenH := s.render.ScreenSize()

	s.render.DrawBackground(screen, pal)
	s.render.DrawScenery(screen, pal, dark)
	s.render.DrawTrack(screen, pal)
	s.render.DrawTitle(screen, "Train Color Matcher", screenH*0.22, pal.Primary)
	s.render.DrawCenteredText(screen, s.state.T("subtitle"),
		screenW/2, screenH*0.32, 20, false, pal.Text)

	if s.state.Scores != nil {
		if hs := s.state.Scores.HighScore(); hs > 0 {
			s.render.DrawCenteredText(screen, fmt.Sprintf("%s: %d", s.state.T("high_score"), hs),
				screenW/2, screenH*0.38, 18, false, pal.Accent)
		}
	}

	s.render.DrawButtons(screen, pal)
	s.render.DrawParticles(screen)
}

func (s *MenuScene) refreshThemeLabel() {
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.em, s.themeButton); ok {
		btn.Label = themeLabel(s.state)
	}
}

func themeLabel(state *game.GameState) string {
	if state.Theme.IsDark() {
		return state.T("light")
	}
	return state.T("dark")
}

func toggleTheme(state *game.GameState) {
	state.Theme.Toggle()
	if state.Settings != nil {
		state.Settings.SetDarkMode(state.Theme.IsDark())
	}
}

// clickEffect returns the shared button click feedback: a small burst at
// the pointer plus the click sound.
func clickEffect(state *game.GameState, em *ecs.EntityManager) func(x, y float64) {
	return func(x, y float64) {
		entities.EmitBurst(em, state.Config.Particles, x, y,
			components.ParticleClick, state.Theme.Current().Accent)
		state.Audio.Play(game.SoundClick)
	}
}
