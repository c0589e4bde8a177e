package entities

import (
	"image/color"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// NewMessage creates a floating text that rises and fades out.
func NewMessage(em *ecs.EntityManager, x, y float64, text string, clr color.RGBA, fontSize, lifetime float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.MessageComponent{
		Text:      text,
		Color:     clr,
		FontSize:  fontSize,
		Lifetime:  lifetime,
		Total:     lifetime,
		RiseSpeed: 30,
	})
	return id
}
