// Package entities holds the factory functions that assemble game
// entities from components.
package entities

import (
	"math/rand"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// trackStartX is the x position of slot 0, the head of the queue.
const trackStartX = 100.0

// SlotX returns the track x position of the given slot index.
func SlotX(slot int, spacing float64) float64 {
	return trackStartX + float64(slot)*spacing
}

// NewTrain creates one train gliding from startX to its slot position.
func NewTrain(em *ecs.EntityManager, color components.TrainColor, slot int, startX, spacing, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	targetX := SlotX(slot, spacing)
	ecs.AddComponent(em, id, &components.PositionComponent{X: startX, Y: config.TrackY})
	ecs.AddComponent(em, id, &components.TrainComponent{
		Color:     color,
		Slot:      slot,
		TargetX:   targetX,
		GlideFrom: startX,
		Speed:     speed,
	})
	return id
}

// DealTrains creates a fresh row of trains rolling in from the right
// edge. Colors are drawn at random from the first lv.Colors palette
// entries; slot indices are pairwise distinct by construction.
func DealTrains(em *ecs.EntityManager, lv config.LevelConfig, trainCfg config.TrainConfig, screenW float64) []ecs.EntityID {
	spacing := lv.Spacing
	if spacing <= 0 {
		spacing = trainCfg.Spacing
	}

	ids := make([]ecs.EntityID, 0, lv.MaxTrains)
	for slot := 0; slot < lv.MaxTrains; slot++ {
		color := components.TrainColor(rand.Intn(lv.Colors))
		// Stagger the entry positions so the row rolls in as a convoy.
		startX := screenW + float64(slot)*spacing
		ids = append(ids, NewTrain(em, color, slot, startX, spacing, lv.TrainSpeed))
	}
	return ids
}

// DealExtraTrains appends count trains behind the current rear of the
// queue, used when a level-up grows the row mid-run. nextSlot is the
// first free slot index.
func DealExtraTrains(em *ecs.EntityManager, lv config.LevelConfig, trainCfg config.TrainConfig, screenW float64, nextSlot, count int) []ecs.EntityID {
	spacing := lv.Spacing
	if spacing <= 0 {
		spacing = trainCfg.Spacing
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		color := components.TrainColor(rand.Intn(lv.Colors))
		startX := screenW + float64(i)*spacing
		ids = append(ids, NewTrain(em, color, nextSlot+i, startX, spacing, lv.TrainSpeed))
	}
	return ids
}
