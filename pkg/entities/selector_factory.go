package entities

import (
	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// CreateSelectorRow creates one clickable swatch per playable color,
// centered horizontally under the track.
func CreateSelectorRow(em *ecs.EntityManager, colorCount int, screenW float64) []ecs.EntityID {
	if colorCount > components.NumTrainColors {
		colorCount = components.NumTrainColors
	}

	rowWidth := float64(colorCount-1) * config.SelectorSpacing
	startX := (screenW - rowWidth) / 2

	ids := make([]ecs.EntityID, 0, colorCount)
	for i := 0; i < colorCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: startX + float64(i)*config.SelectorSpacing,
			Y: config.SelectorY,
		})
		ecs.AddComponent(em, id, &components.SelectorComponent{
			Color: components.TrainColor(i),
			Size:  config.SelectorSize,
		})
		ids = append(ids, id)
	}
	return ids
}
