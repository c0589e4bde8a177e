package entities

import (
	"image/color"
	"math/rand"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// EmitBurst spawns a kind-specific particle burst at (x, y). base tints
// burst and explosion particles; smoke and click kinds pick their own
// colors.
func EmitBurst(em *ecs.EntityManager, cfg config.ParticleConfig, x, y float64, kind components.ParticleKind, base color.RGBA) []ecs.EntityID {
	count := cfg.BurstCount
	switch kind {
	case components.ParticleExplosion:
		count = cfg.ExplosionCount
	case components.ParticleSmoke:
		count = 1
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, emitOne(em, cfg, x, y, kind, base))
	}
	return ids
}

func emitOne(em *ecs.EntityManager, cfg config.ParticleConfig, x, y float64, kind components.ParticleKind, base color.RGBA) ecs.EntityID {
	id := em.CreateEntity()

	p := &components.ParticleComponent{
		VX:       randRange(cfg.VelocityMin, cfg.VelocityMax),
		VY:       randRange(cfg.VelocityMin, cfg.VelocityMax),
		Size:     randRange(cfg.SizeMin, cfg.SizeMax),
		Gravity:  cfg.Gravity,
		Color:    base,
		Alpha:    1,
		FadeRate: randRange(cfg.FadeMin, cfg.FadeMax),
		Lifetime: randRange(0.6, 1.2),
		Kind:     kind,
	}

	switch kind {
	case components.ParticleExplosion:
		// Failure explosions fly faster and die quicker.
		p.VX *= 2
		p.VY *= 2
		p.Lifetime = randRange(0.4, 0.8)
	case components.ParticleSmoke:
		// Smoke drifts up and is barely pulled back down.
		p.VX = randRange(-8, 8)
		p.VY = randRange(-35, -15)
		p.Gravity = cfg.Gravity * 0.2
		p.Size = randRange(cfg.SizeMin, cfg.SizeMax) * 1.5
		p.Lifetime = randRange(1.0, 1.8)
		gray := uint8(randRange(160, 220))
		p.Color = color.RGBA{gray, gray, gray, 255}
	case components.ParticleClick:
		p.Lifetime = randRange(0.3, 0.6)
	}

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, p)
	return id
}

func randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}
