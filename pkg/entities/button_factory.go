package entities

import (
	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// ButtonOptions tweaks the standard button. Zero values mean the
// defaults.
type ButtonOptions struct {
	Width, Height float64
	FontSize      float64
	// Bob enables the floating menu-button animation.
	Bob bool
	// BobPhase offsets the float so stacked buttons don't move in sync.
	BobPhase float64
}

// NewButton creates a clickable button centered at (x, y). onClick runs
// when a press that started on the button is released on it.
func NewButton(em *ecs.EntityManager, x, y float64, label string, onClick func(), opts ButtonOptions) ecs.EntityID {
	w := opts.Width
	if w <= 0 {
		w = config.ButtonWidth
	}
	h := opts.Height
	if h <= 0 {
		h = config.ButtonHeight
	}
	amplitude := 0.0
	if opts.Bob {
		amplitude = 4
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Label:        label,
		Width:        w,
		Height:       h,
		OnClick:      onClick,
		BobPhase:     opts.BobPhase,
		BobAmplitude: amplitude,
		FontSize:     opts.FontSize,
	})
	return id
}
