package systems

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
)

func TestParticleLifetimeDecreases(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := entities.EmitBurst(em, config.Default().Particles, 100, 100,
		components.ParticleBurst, components.TrainBlue.RGBA())
	ps := NewParticleSystem(em)

	before := make(map[ecs.EntityID]float64)
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		before[id] = p.Lifetime
	}

	ps.Update(testDT)

	for _, id := range ids {
		p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !ok {
			continue
		}
		if p.Lifetime >= before[id] {
			t.Errorf("lifetime did not decrease: %v -> %v", before[id], p.Lifetime)
		}
	}
}

func TestParticlesRemovedAtEndOfLife(t *testing.T) {
	em := ecs.NewEntityManager()
	entities.EmitBurst(em, config.Default().Particles, 100, 100,
		components.ParticleBurst, components.TrainBlue.RGBA())
	ps := NewParticleSystem(em)

	// Max particle lifetime is well under 3 seconds.
	for i := 0; i < 180; i++ {
		ps.Update(testDT)
	}
	if got := ps.Count(); got != 0 {
		t.Errorf("Count() = %d after all lifetimes expired, want 0", got)
	}
	if got := em.EntityCount(); got != 0 {
		t.Errorf("EntityCount() = %d, want 0 (particles removed exactly once)", got)
	}
}

func TestGravityPullsParticlesDown(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: 0})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		VY: -10, Gravity: 100, Alpha: 1, FadeRate: 0.1, Lifetime: 10,
	})
	ps := NewParticleSystem(em)

	ps.Update(testDT)
	p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
	if p.VY <= -10 {
		t.Errorf("VY = %v after gravity step, want > -10", p.VY)
	}
}

func TestParticleAlphaClampedAtZero(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Alpha: 0.01, FadeRate: 10, Lifetime: 5,
	})
	ps := NewParticleSystem(em)

	ps.Update(testDT)
	p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
	if p.Alpha != 0 {
		t.Errorf("Alpha = %v, want clamped to 0", p.Alpha)
	}
}
