package entities

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

func TestDealTrainsSlotsDistinct(t *testing.T) {
	em := ecs.NewEntityManager()
	lv := config.LevelConfig{Colors: 4, TrainSpeed: 300, MaxTrains: 10}

	ids := DealTrains(em, lv, config.Default().Train, 800)
	if len(ids) != 10 {
		t.Fatalf("dealt %d trains, want 10", len(ids))
	}

	seen := map[int]bool{}
	for _, id := range ids {
		tr, ok := ecs.GetComponent[*components.TrainComponent](em, id)
		if !ok {
			t.Fatalf("entity %d has no train component", id)
		}
		if seen[tr.Slot] {
			t.Errorf("slot %d assigned twice", tr.Slot)
		}
		seen[tr.Slot] = true
		if tr.Color < 0 || int(tr.Color) >= lv.Colors {
			t.Errorf("color %v outside level palette of %d", tr.Color, lv.Colors)
		}
		if tr.Departing {
			t.Errorf("slot %d dealt already departing", tr.Slot)
		}
	}
}

func TestDealTrainsTargetsFollowSpacing(t *testing.T) {
	em := ecs.NewEntityManager()
	lv := config.LevelConfig{Colors: 3, TrainSpeed: 300, MaxTrains: 4, Spacing: 90}

	ids := DealTrains(em, lv, config.Default().Train, 800)
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TrainComponent](em, id)
		want := SlotX(tr.Slot, 90)
		if tr.TargetX != want {
			t.Errorf("slot %d TargetX = %v, want %v", tr.Slot, tr.TargetX, want)
		}
	}
}

func TestDealExtraTrainsContinuesSlots(t *testing.T) {
	em := ecs.NewEntityManager()
	lv := config.LevelConfig{Colors: 3, TrainSpeed: 300, MaxTrains: 5}

	DealTrains(em, lv, config.Default().Train, 800)
	extra := DealExtraTrains(em, lv, config.Default().Train, 800, 5, 2)
	if len(extra) != 2 {
		t.Fatalf("dealt %d extra trains, want 2", len(extra))
	}
	for i, id := range extra {
		tr, _ := ecs.GetComponent[*components.TrainComponent](em, id)
		if tr.Slot != 5+i {
			t.Errorf("extra train %d slot = %d, want %d", i, tr.Slot, 5+i)
		}
	}
}

func TestEmitBurstCounts(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.Default().Particles

	burst := EmitBurst(em, cfg, 100, 100, components.ParticleBurst, components.TrainRed.RGBA())
	if len(burst) != cfg.BurstCount {
		t.Errorf("burst emitted %d, want %d", len(burst), cfg.BurstCount)
	}

	explosion := EmitBurst(em, cfg, 100, 100, components.ParticleExplosion, components.TrainRed.RGBA())
	if len(explosion) != cfg.ExplosionCount {
		t.Errorf("explosion emitted %d, want %d", len(explosion), cfg.ExplosionCount)
	}

	smoke := EmitBurst(em, cfg, 100, 100, components.ParticleSmoke, components.TrainRed.RGBA())
	if len(smoke) != 1 {
		t.Errorf("smoke emitted %d, want 1", len(smoke))
	}
	p, _ := ecs.GetComponent[*components.ParticleComponent](em, smoke[0])
	if p.VY >= 0 {
		t.Errorf("smoke VY = %v, want upward (< 0)", p.VY)
	}
}

func TestSelectorRowOnePerColor(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := CreateSelectorRow(em, 5, 800)
	if len(ids) != 5 {
		t.Fatalf("created %d selectors, want 5", len(ids))
	}
	for i, id := range ids {
		sel, ok := ecs.GetComponent[*components.SelectorComponent](em, id)
		if !ok {
			t.Fatalf("entity %d has no selector component", id)
		}
		if sel.Color != components.TrainColor(i) {
			t.Errorf("selector %d color = %v, want %v", i, sel.Color, components.TrainColor(i))
		}
	}
}
