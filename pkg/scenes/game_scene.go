package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
	"github.com/gonewx/trainmatch/pkg/game"
	"github.com/gonewx/trainmatch/pkg/systems"
	"github.com/gonewx/trainmatch/pkg/utils"
)

// GameScene is the playing state: the train queue, the selector row and
// the HUD.
type GameScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	em        *ecs.EntityManager
	trains    *systems.TrainSystem
	buttons   *systems.ButtonSystem
	particles *systems.ParticleSystem
	parallax  *systems.ParallaxSystem
	messages  *systems.MessageSystem
	render    *systems.RenderSystem

	soundButton ecs.EntityID
	roundOver   bool
}

// NewGameScene deals a fresh row for the state's current level and builds
// the playing screen.
func NewGameScene(state *game.GameState, sceneManager *game.SceneManager) *GameScene {
	em := ecs.NewEntityManager()
	screenW := float64(state.Config.Window.Width)
	screenH := float64(state.Config.Window.Height)

	s := &GameScene{
		state:        state,
		sceneManager: sceneManager,
		em:           em,
		trains:       systems.NewTrainSystem(em, state.Config.Particles),
		buttons:      systems.NewButtonSystem(em),
		particles:    systems.NewParticleSystem(em),
		parallax:     systems.NewParallaxSystem(em, screenW, state.Config.Scenery),
		messages:     systems.NewMessageSystem(em),
		render:       systems.NewRenderSystem(em, screenW, screenH),
	}
	s.buttons.ClickEffect = clickEffect(state, em)

	entities.CreateScenery(em, state.Config, screenW, screenH)

	lv := state.CurrentLevel()
	entities.DealTrains(em, lv, state.Config.Train, screenW)
	entities.CreateSelectorRow(em, lv.Colors, screenW)

	s.soundButton = entities.NewButton(em, screenW-70, 40, soundLabel(state), func() {
		if state.Settings != nil {
			state.Settings.ToggleSound()
			state.Settings.ToggleMusic()
		}
		state.Audio.SyncMusic()
		s.refreshSoundLabel()
	}, entities.ButtonOptions{Width: 100, Height: 36, FontSize: 16})

	entities.NewButton(em, screenW-180, 40, state.T("menu"), func() {
		sceneManager.SwitchTo(NewMenuScene(state, sceneManager))
	}, entities.ButtonOptions{Width: 90, Height: 36, FontSize: 16})

	return s
}

// Update advances the playing state by deltaTime seconds.
func (s *GameScene) Update(deltaTime float64) {
	s.state.Theme.Update(deltaTime)
	s.parallax.Update(deltaTime)
	s.buttons.Update(deltaTime)
	s.trains.Update(deltaTime)
	s.particles.Update(deltaTime)
	s.messages.Update(deltaTime)

	if !s.roundOver {
		s.handleSelection()
		// The round is cleared once every train has been matched and has
		// driven off screen.
		if s.trains.TrainCount() == 0 {
			s.finishRound(true)
		}
	}
}

// handleSelection reads the pointer against the selector row. Matching
// the leftmost train scores; a wrong color costs a mistake; empty space
// shows a hint.
func (s *GameScene) handleSelection() {
	pointer := utils.ReadPointer()

	overSelector := false
	for _, id := range ecs.GetEntitiesWith2[*components.SelectorComponent, *components.PositionComponent](s.em) {
		sel, _ := ecs.GetComponent[*components.SelectorComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		inside := utils.InRect(pointer.X, pointer.Y,
			pos.X-sel.Size/2, pos.Y-sel.Size/2, sel.Size, sel.Size)
		sel.Hovered = inside
		if inside {
			overSelector = true
		}

		switch {
		case pointer.JustPressed && inside:
			sel.Pressed = true
		case pointer.JustReleased:
			if sel.Pressed && inside {
				s.selectColor(sel.Color, pos.X, pos.Y)
			}
			sel.Pressed = false
		}
	}

	if pointer.JustReleased && !overSelector && !s.overButton(pointer.X, pointer.Y) {
		screenW, screenH := s.render.ScreenSize()
		entities.NewMessage(s.em, screenW/2, screenH*0.58, s.state.T("hint"),
			s.state.Theme.Current().Text, 18, 1.2)
	}
}

func (s *GameScene) overButton(x, y float64) bool {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.em) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if utils.InRect(x, y, pos.X-btn.Width/2, pos.Y-btn.Height/2, btn.Width, btn.Height) {
			return true
		}
	}
	return false
}

// selectColor compares the chosen color against the leftmost waiting
// train and applies the match or mistake.
func (s *GameScene) selectColor(chosen components.TrainColor, selX, selY float64) {
	id, train, ok := s.trains.Leftmost()
	if !ok {
		return
	}

	trainPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	pal := s.state.Theme.Current()
	screenW, _ := s.render.ScreenSize()

	if chosen == train.Color {
		super := s.state.RecordMatch()
		s.trains.Depart(id)
		s.trains.ShiftQueue(s.spacing())

		entities.EmitBurst(s.em, s.state.Config.Particles, trainPos.X, trainPos.Y,
			components.ParticleBurst, train.Color.RGBA())
		entities.NewMessage(s.em, trainPos.X, trainPos.Y-40, "+1", pal.Secondary, 22, 0.8)

		if super {
			entities.NewMessage(s.em, screenW/2, 150, s.state.T("super"), pal.Accent, 36, 1.5)
			s.state.Audio.Play(game.SoundSuper)
		} else {
			s.state.Audio.Play(game.SoundCorrect)
		}

		if s.state.MaybeLevelUp() {
			s.applyLevelUp()
		}
		return
	}

	entities.EmitBurst(s.em, s.state.Config.Particles, selX, selY,
		components.ParticleExplosion, pal.Error)
	entities.NewMessage(s.em, screenW/2, 150, s.state.T("wrong_color"), pal.Error, 26, 1.2)
	s.state.Audio.Play(game.SoundWrong)

	if s.state.RecordMistake() {
		s.finishRound(false)
	}
}

// applyLevelUp speeds up the queue, widens the selector row to the new
// level's palette and deals the extra trains the new level allows.
func (s *GameScene) applyLevelUp() {
	lv := s.state.CurrentLevel()
	screenW, _ := s.render.ScreenSize()

	// The selector row must cover the new palette before any train of a
	// new color is dealt, or that train could never be matched.
	selectors := ecs.GetEntitiesWith[*components.SelectorComponent](s.em)
	if len(selectors) != lv.Colors {
		for _, id := range selectors {
			s.em.DestroyEntity(id)
		}
		s.em.RemoveMarkedEntities()
		entities.CreateSelectorRow(s.em, lv.Colors, screenW)
	}

	for _, id := range ecs.GetEntitiesWith[*components.TrainComponent](s.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](s.em, id)
		tr.Speed = lv.TrainSpeed
	}

	extra := lv.MaxTrains - s.trains.WaitingCount()
	if extra > 2 {
		extra = 2
	}
	if extra > 0 {
		entities.DealExtraTrains(s.em, lv, s.state.Config.Train, screenW,
			s.trains.NextFreeSlot(), extra)
	}

	pal := s.state.Theme.Current()
	entities.NewMessage(s.em, screenW/2, 110,
		fmt.Sprintf("%s %d: %s", s.state.T("level"), s.state.Level, lv.Name), pal.Primary, 28, 2.0)
	if mod := s.state.CurrentModifier(); mod != game.ModifierNone {
		entities.NewMessage(s.em, screenW/2, 145, s.state.T(mod.Key()), pal.Accent, 22, 2.0)
	}
}

func (s *GameScene) finishRound(cleared bool) {
	s.roundOver = true
	s.state.Audio.Play(game.SoundGameOver)
	s.sceneManager.SwitchTo(NewGameOverScene(s.state, s.sceneManager, cleared))
}

// SaveOnExit persists the run's score when the window closes mid-game.
func (s *GameScene) SaveOnExit() bool {
	if s.state.Scores != nil {
		s.state.Scores.Submit(s.state.Score, s.state.Level)
	}
	return true
}

// Draw renders the playing state.
func (s *GameScene) Draw(screen *ebiten.Image) {
	pal := s.state.Theme.Current()
	dark := s.state.Theme.IsDark()

	s.render.DrawBackground(screen, pal)
	s.render.DrawScenery(screen, pal, dark)
	s.render.DrawTrack(screen, pal)
	s.render.DrawTrains(screen, s.state.Config.Train, pal, dark)
	if s.state.CurrentModifier() == game.ModifierDenseFog {
		s.render.DrawFog(screen)
	}
	s.render.DrawSelectors(screen, pal)
	s.render.DrawParticles(screen)
	s.render.DrawMessages(screen)
	s.render.DrawButtons(screen, pal)
	s.drawHUD(screen)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	pal := s.state.Theme.Current()
	lv := s.state.CurrentLevel()

	s.render.DrawHUDText(screen, fmt.Sprintf("%s: %d", s.state.T("score"), s.state.Score),
		config.HUDMargin, config.HUDMargin, pal.Text)
	if s.state.Scores != nil {
		s.render.DrawHUDText(screen,
			fmt.Sprintf("%s: %d", s.state.T("high_score"), s.state.Scores.HighScore()),
			config.HUDMargin, config.HUDMargin+24, pal.Text)
	}
	s.render.DrawHUDText(screen,
		fmt.Sprintf("%s %d: %s", s.state.T("level"), s.state.Level, lv.Name),
		config.HUDMargin, config.HUDMargin+48, pal.Primary)

	if lv.MistakesAllowed > 0 {
		left := lv.MistakesAllowed - s.state.Mistakes
		s.render.DrawHUDText(screen, fmt.Sprintf("%s: %d", s.state.T("mistakes_left"), left),
			config.HUDMargin, config.HUDMargin+72, pal.Error)
	}
	if s.state.Combo > 1 {
		s.render.DrawHUDText(screen, fmt.Sprintf("%s x%d", s.state.T("combo"), s.state.Combo),
			config.HUDMargin, config.HUDMargin+96, pal.Accent)
	}
	if mod := s.state.CurrentModifier(); mod != game.ModifierNone {
		s.render.DrawHUDText(screen, s.state.T(mod.Key()),
			config.HUDMargin, config.HUDMargin+120, pal.Accent)
	}
}

func (s *GameScene) spacing() float64 {
	lv := s.state.CurrentLevel()
	if lv.Spacing > 0 {
		return lv.Spacing
	}
	return s.state.Config.Train.Spacing
}

func (s *GameScene) refreshSoundLabel() {
	if btn, ok := ecs.GetComponent[*components.ButtonComponent](s.em, s.soundButton); ok {
		btn.Label = soundLabel(s.state)
	}
}

func soundLabel(state *game.GameState) string {
	if state.Settings != nil && !state.Settings.Get().SoundEnabled {
		return state.T("sound_off")
	}
	return state.T("sound_on")
}
