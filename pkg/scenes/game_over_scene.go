package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
	"github.com/gonewx/trainmatch/pkg/game"
	"github.com/gonewx/trainmatch/pkg/systems"
)

// GameOverScene shows the run's result and offers another round or the
// menu. Entering it records the score, so the high score is already
// up to date when drawn.
type GameOverScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	em        *ecs.EntityManager
	buttons   *systems.ButtonSystem
	particles *systems.ParticleSystem
	parallax  *systems.ParallaxSystem
	render    *systems.RenderSystem

	cleared   bool
	newRecord bool
}

// NewGameOverScene builds the result screen. cleared reports whether the
// round was won (every train matched) or lost (mistakes ran out).
func NewGameOverScene(state *game.GameState, sceneManager *game.SceneManager, cleared bool) *GameOverScene {
	em := ecs.NewEntityManager()
	screenW := float64(state.Config.Window.Width)
	screenH := float64(state.Config.Window.Height)

	s := &GameOverScene{
		state:        state,
		sceneManager: sceneManager,
		em:           em,
		buttons:      systems.NewButtonSystem(em),
		particles:    systems.NewParticleSystem(em),
		parallax:     systems.NewParallaxSystem(em, screenW, state.Config.Scenery),
		render:       systems.NewRenderSystem(em, screenW, screenH),
		cleared:      cleared,
	}
	s.buttons.ClickEffect = clickEffect(state, em)

	if state.Scores != nil {
		s.newRecord = state.Scores.Submit(state.Score, state.Level)
	}

	entities.CreateScenery(em, state.Config, screenW, screenH)

	centerX := screenW / 2
	entities.NewButton(em, centerX, screenH*0.62, state.T("play_again"), func() {
		state.ResetRun()
		sceneManager.SwitchTo(NewGameScene(state, sceneManager))
	}, entities.ButtonOptions{Bob: true})

	entities.NewButton(em, centerX, screenH*0.62+70, state.T("menu"), func() {
		sceneManager.SwitchTo(NewMenuScene(state, sceneManager))
	}, entities.ButtonOptions{Bob: true, BobPhase: 1.2})

	return s
}

// Update advances the result screen by deltaTime seconds.
func (s *GameOverScene) Update(deltaTime float64) {
	s.state.Theme.Update(deltaTime)
	s.parallax.Update(deltaTime)
	s.buttons.Update(deltaTime)
	s.particles.Update(deltaTime)
}

// Draw renders the result screen.
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	pal := s.state.Theme.Current()
	dark := s.state.Theme.IsDark()
	screenW, screenH := s.render.ScreenSize()

	s.render.DrawBackground(screen, pal)
	s.render.DrawScenery(screen, pal, dark)
	s.render.DrawTrack(screen, pal)

	title := s.state.T("game_over")
	titleColor := pal.Error
	if s.cleared {
		title = s.state.T("all_matched")
		titleColor = pal.Secondary
	}
	s.render.DrawTitle(screen, title, screenH*0.24, titleColor)

	s.render.DrawCenteredText(screen, fmt.Sprintf("%s: %d", s.state.T("score"), s.state.Score),
		screenW/2, screenH*0.36, 26, true, pal.Text)
	if s.state.Scores != nil {
		s.render.DrawCenteredText(screen,
			fmt.Sprintf("%s: %d", s.state.T("high_score"), s.state.Scores.HighScore()),
			screenW/2, screenH*0.42, 20, false, pal.Text)
	}
	if s.newRecord {
		s.render.DrawCenteredText(screen, s.state.T("new_record"),
			screenW/2, screenH*0.48, 24, true, pal.Accent)
	}

	s.render.DrawButtons(screen, pal)
	s.render.DrawParticles(screen)
}
