package systems

import (
	"math"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/utils"
)

// ButtonSystem drives the hover/press/release state machine of every
// button and runs callbacks on release. A click only fires when the press
// started and ended on the same button.
type ButtonSystem struct {
	em *ecs.EntityManager

	// ClickEffect, when set, runs at the pointer position on every
	// successful click, before the button's own callback. Scenes use it
	// for the click burst and sound.
	ClickEffect func(x, y float64)

	pressedButton ecs.EntityID
	hasPressed    bool
}

// NewButtonSystem creates a button system over the given entity manager.
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{em: em}
}

// Update reads the pointer and advances every button by dt seconds.
func (bs *ButtonSystem) Update(dt float64) {
	pointer := utils.ReadPointer()

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](bs.em) {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](bs.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](bs.em, id)

		if btn.BobAmplitude > 0 {
			btn.BobPhase += dt
		}

		inside := bs.hitTest(btn, pos, pointer.X, pointer.Y)

		switch {
		case pointer.JustPressed && inside:
			btn.State = components.ButtonPressed
			bs.pressedButton = id
			bs.hasPressed = true
		case pointer.JustReleased:
			if bs.hasPressed && bs.pressedButton == id && inside {
				if bs.ClickEffect != nil {
					bs.ClickEffect(pointer.X, pointer.Y)
				}
				if btn.OnClick != nil {
					btn.OnClick()
				}
			}
			btn.State = stateFor(inside)
		case pointer.Pressed && bs.hasPressed && bs.pressedButton == id:
			// Keep the pressed look while the press is held, even if the
			// pointer wanders off the button.
			btn.State = components.ButtonPressed
		default:
			btn.State = stateFor(inside)
		}
	}

	if pointer.JustReleased {
		bs.hasPressed = false
	}
}

// BobOffset returns the vertical float offset of the button this frame.
func BobOffset(btn *components.ButtonComponent) float64 {
	if btn.BobAmplitude <= 0 {
		return 0
	}
	return math.Sin(btn.BobPhase*2) * btn.BobAmplitude
}

func (bs *ButtonSystem) hitTest(btn *components.ButtonComponent, pos *components.PositionComponent, x, y float64) bool {
	offsetY := BobOffset(btn)
	return utils.InRect(x, y,
		pos.X-btn.Width/2, pos.Y-btn.Height/2+offsetY,
		btn.Width, btn.Height)
}

func stateFor(inside bool) components.ButtonState {
	if inside {
		return components.ButtonHovered
	}
	return components.ButtonIdle
}
