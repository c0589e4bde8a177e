package systems

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

func newScenery(em *ecs.EntityManager, kind components.SceneryKind, x, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: 100})
	ecs.AddComponent(em, id, &components.SceneryComponent{Kind: kind, Scale: 1, Speed: speed})
	return id
}

func TestCloudsScrollLeft(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newScenery(em, components.SceneryCloud, 400, 60)
	ps := NewParallaxSystem(em, 800, config.Default().Scenery)

	ps.Update(1.0)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 340 {
		t.Errorf("cloud X = %v after 1s at 60 px/s, want 340", pos.X)
	}
}

func TestSceneryWrapsAtLeftEdge(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newScenery(em, components.SceneryTree, -119, 60)
	ps := NewParallaxSystem(em, 800, config.Default().Scenery)

	ps.Update(0.1)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X <= 800 {
		t.Errorf("tree X = %v after wrap, want > 800", pos.X)
	}
}

func TestStarGlowBouncesBetweenBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.Default().Scenery
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 50})
	ecs.AddComponent(em, id, &components.SceneryComponent{
		Kind: components.SceneryStar, Glow: cfg.GlowMax - 1, GlowDir: 1, GlowRate: 100,
	})
	ps := NewParallaxSystem(em, 800, cfg)

	sc, _ := ecs.GetComponent[*components.SceneryComponent](em, id)
	for i := 0; i < 600; i++ {
		ps.Update(testDT)
		if sc.Glow > cfg.GlowMax || sc.Glow < cfg.GlowMin {
			t.Fatalf("glow %v escaped bounds [%v, %v]", sc.Glow, cfg.GlowMin, cfg.GlowMax)
		}
	}
	if sc.GlowDir != -1 && sc.GlowDir != 1 {
		t.Errorf("GlowDir = %v, want ±1", sc.GlowDir)
	}
}
