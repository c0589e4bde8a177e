package systems

import (
	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// ParticleSystem integrates particle motion and removes particles whose
// lifetime has run out. Each particle is removed exactly once.
type ParticleSystem struct {
	em *ecs.EntityManager
}

// NewParticleSystem creates a particle system over the given entity
// manager.
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{em: em}
}

// Update advances all particles by dt seconds.
func (ps *ParticleSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](ps.em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)

		pos.X += p.VX * dt
		pos.Y += p.VY * dt
		p.VY += p.Gravity * dt

		p.Alpha -= p.FadeRate * dt
		if p.Alpha < 0 {
			p.Alpha = 0
		}

		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			ps.em.DestroyEntity(id)
		}
	}
	ps.em.RemoveMarkedEntities()
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith[*components.ParticleComponent](ps.em))
}
