package systems

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
)

const testDT = 1.0 / 60.0

func dealTestRow(em *ecs.EntityManager, n int) []ecs.EntityID {
	lv := config.LevelConfig{Colors: 3, TrainSpeed: 300, MaxTrains: n}
	return entities.DealTrains(em, lv, config.Default().Train, 800)
}

func settle(ts *TrainSystem, seconds float64) {
	steps := int(seconds / testDT)
	for i := 0; i < steps; i++ {
		ts.Update(testDT)
	}
}

func TestTrainsGlideToSlots(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := dealTestRow(em, 4)
	ts := NewTrainSystem(em, config.Default().Particles)

	settle(ts, 1.0)

	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TrainComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != tr.TargetX {
			t.Errorf("slot %d settled at %v, want %v", tr.Slot, pos.X, tr.TargetX)
		}
	}
}

func TestLeftmostIsSlotZero(t *testing.T) {
	em := ecs.NewEntityManager()
	dealTestRow(em, 5)
	ts := NewTrainSystem(em, config.Default().Particles)

	_, tr, ok := ts.Leftmost()
	if !ok {
		t.Fatal("Leftmost() found no train")
	}
	if tr.Slot != 0 {
		t.Errorf("Leftmost().Slot = %d, want 0", tr.Slot)
	}
}

func TestDepartingTrainLeavesAndIsRemoved(t *testing.T) {
	em := ecs.NewEntityManager()
	dealTestRow(em, 3)
	ts := NewTrainSystem(em, config.Default().Particles)
	settle(ts, 1.0)

	id, _, _ := ts.Leftmost()
	ts.Depart(id)
	if ts.WaitingCount() != 2 {
		t.Errorf("WaitingCount() = %d after depart, want 2", ts.WaitingCount())
	}

	// Plenty of time to drive off the left edge at 300 px/s.
	settle(ts, 5.0)
	if _, ok := ecs.GetComponent[*components.TrainComponent](em, id); ok {
		t.Error("departed train still exists after leaving the screen")
	}
}

func TestShiftQueueAdvancesSlots(t *testing.T) {
	em := ecs.NewEntityManager()
	dealTestRow(em, 3)
	ts := NewTrainSystem(em, config.Default().Particles)
	settle(ts, 1.0)

	id, _, _ := ts.Leftmost()
	ts.Depart(id)
	spacing := config.Default().Train.Spacing
	ts.ShiftQueue(spacing)

	_, front, ok := ts.Leftmost()
	if !ok {
		t.Fatal("no waiting train after shift")
	}
	if front.Slot != 0 {
		t.Errorf("front slot after shift = %d, want 0", front.Slot)
	}
	if front.TargetX != entities.SlotX(0, spacing) {
		t.Errorf("front TargetX = %v, want %v", front.TargetX, entities.SlotX(0, spacing))
	}

	settle(ts, 1.0)
	slots := map[int]bool{}
	for _, tid := range ecs.GetEntitiesWith[*components.TrainComponent](em) {
		tr, _ := ecs.GetComponent[*components.TrainComponent](em, tid)
		if tr.Departing {
			continue
		}
		if slots[tr.Slot] {
			t.Errorf("slot %d occupied twice after shift", tr.Slot)
		}
		slots[tr.Slot] = true
	}
}

func TestNextFreeSlot(t *testing.T) {
	em := ecs.NewEntityManager()
	dealTestRow(em, 4)
	ts := NewTrainSystem(em, config.Default().Particles)

	if got := ts.NextFreeSlot(); got != 4 {
		t.Errorf("NextFreeSlot() = %d, want 4", got)
	}

	id, _, _ := ts.Leftmost()
	ts.Depart(id)
	ts.ShiftQueue(config.Default().Train.Spacing)
	if got := ts.NextFreeSlot(); got != 3 {
		t.Errorf("NextFreeSlot() after shift = %d, want 3", got)
	}
}
