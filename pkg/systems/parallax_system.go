package systems

import (
	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// wrapMargin keeps scenery fully off screen before it wraps around.
const wrapMargin = 120.0

// ParallaxSystem scrolls the background layers and pulses the stars.
// Clouds and trees wrap from the left edge back to the right; stars stay
// put and bounce their glow between the configured bounds.
type ParallaxSystem struct {
	em      *ecs.EntityManager
	screenW float64
	glowMin float64
	glowMax float64
}

// NewParallaxSystem creates a parallax system over the given entity
// manager.
func NewParallaxSystem(em *ecs.EntityManager, screenW float64, scenery config.SceneryConfig) *ParallaxSystem {
	return &ParallaxSystem{
		em:      em,
		screenW: screenW,
		glowMin: scenery.GlowMin,
		glowMax: scenery.GlowMax,
	}
}

// Update advances all scenery by dt seconds.
func (ps *ParallaxSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.SceneryComponent, *components.PositionComponent](ps.em) {
		sc, _ := ecs.GetComponent[*components.SceneryComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)

		switch sc.Kind {
		case components.SceneryCloud, components.SceneryTree:
			pos.X -= sc.Speed * dt
			if pos.X < -wrapMargin {
				pos.X = ps.screenW + wrapMargin
			}
		case components.SceneryStar:
			sc.Glow += sc.GlowDir * sc.GlowRate * dt
			if sc.Glow >= ps.glowMax {
				sc.Glow = ps.glowMax
				sc.GlowDir = -1
			} else if sc.Glow <= ps.glowMin {
				sc.Glow = ps.glowMin
				sc.GlowDir = 1
			}
		}
	}
}
