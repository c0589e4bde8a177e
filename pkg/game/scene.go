// Package game holds the scene machinery and the shared managers: game
// state, settings, scores and audio.
package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game (menu, playing, game over). The scene
// manager calls Update and Draw on exactly one scene per frame.
type Scene interface {
	// Update advances the scene. deltaTime is the frame time in seconds.
	Update(deltaTime float64)
	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)
}

// Saveable is implemented by scenes that want to persist state when the
// window is closed mid-session.
type Saveable interface {
	SaveOnExit() bool
}
