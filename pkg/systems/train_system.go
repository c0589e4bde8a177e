// Package systems holds the per-frame logic that runs over the entities:
// train movement, particles, buttons, parallax scenery, messages and
// rendering.
package systems

import (
	"math/rand"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
	"github.com/gonewx/trainmatch/pkg/utils"
)

// glideDuration is how long a train takes to settle into its slot, in
// seconds.
const glideDuration = 0.5

// departedMargin is how far past the left edge a departing train must be
// before it is removed.
const departedMargin = 100.0

// TrainSystem moves trains: waiting trains glide into their slots with an
// eased slide, matched trains drive off the left edge puffing smoke.
type TrainSystem struct {
	em          *ecs.EntityManager
	particleCfg config.ParticleConfig
}

// NewTrainSystem creates a train system over the given entity manager.
func NewTrainSystem(em *ecs.EntityManager, particleCfg config.ParticleConfig) *TrainSystem {
	return &TrainSystem{em: em, particleCfg: particleCfg}
}

// Update advances all trains by dt seconds.
func (ts *TrainSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.TrainComponent, *components.PositionComponent](ts.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](ts.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ts.em, id)

		if tr.Departing {
			pos.X -= tr.Speed * dt
			if rand.Float64() < ts.particleCfg.SmokeChance {
				// Smoke rises from the chimney at the front of the cab.
				entities.EmitBurst(ts.em, ts.particleCfg, pos.X-15, pos.Y-25,
					components.ParticleSmoke, tr.Color.RGBA())
			}
			if pos.X < -departedMargin {
				ts.em.DestroyEntity(id)
			}
			continue
		}

		if tr.GlideProgress < 1 {
			tr.GlideProgress = utils.Clamp(tr.GlideProgress+dt/glideDuration, 0, 1)
			pos.X = utils.Lerp(tr.GlideFrom, tr.TargetX, utils.EaseOutCubic(tr.GlideProgress))
		} else {
			pos.X = tr.TargetX
		}
	}
	ts.em.RemoveMarkedEntities()
}

// Depart marks the train as matched. It leaves the queue and drives off
// screen.
func (ts *TrainSystem) Depart(id ecs.EntityID) {
	if tr, ok := ecs.GetComponent[*components.TrainComponent](ts.em, id); ok {
		tr.Departing = true
	}
}

// ShiftQueue moves every waiting train one slot toward the head with a
// fresh eased glide. Call after the leftmost train departs.
func (ts *TrainSystem) ShiftQueue(spacing float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.TrainComponent, *components.PositionComponent](ts.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](ts.em, id)
		if tr.Departing || tr.Slot == 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ts.em, id)
		tr.Slot--
		tr.GlideFrom = pos.X
		tr.TargetX = entities.SlotX(tr.Slot, spacing)
		tr.GlideProgress = 0
	}
}

// Leftmost returns the waiting train at the head of the queue. ok is
// false when no train is waiting.
func (ts *TrainSystem) Leftmost() (ecs.EntityID, *components.TrainComponent, bool) {
	var bestID ecs.EntityID
	var best *components.TrainComponent
	for _, id := range ecs.GetEntitiesWith[*components.TrainComponent](ts.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](ts.em, id)
		if tr.Departing {
			continue
		}
		if best == nil || tr.Slot < best.Slot {
			bestID, best = id, tr
		}
	}
	return bestID, best, best != nil
}

// WaitingCount returns how many trains are still in the queue.
func (ts *TrainSystem) WaitingCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith[*components.TrainComponent](ts.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](ts.em, id)
		if !tr.Departing {
			n++
		}
	}
	return n
}

// TrainCount returns the total train count, departing included.
func (ts *TrainSystem) TrainCount() int {
	return len(ecs.GetEntitiesWith[*components.TrainComponent](ts.em))
}

// NextFreeSlot returns the first slot index not occupied by a waiting
// train.
func (ts *TrainSystem) NextFreeSlot() int {
	next := 0
	for _, id := range ecs.GetEntitiesWith[*components.TrainComponent](ts.em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](ts.em, id)
		if !tr.Departing && tr.Slot >= next {
			next = tr.Slot + 1
		}
	}
	return next
}
