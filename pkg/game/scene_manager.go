package game

import "github.com/hajimehoshi/ebiten/v2"

// SceneManager controls which scene is active. Only the active scene's
// Update and Draw run each frame, so scene transitions are a single
// pointer swap.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager returns a manager with no active scene; use SwitchTo to
// set the initial one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo makes scene the active scene starting next frame.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, or nil. Used at shutdown to
// check whether the scene wants to save state.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update advances the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
