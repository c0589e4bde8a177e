package ecs

import "testing"

type testPosition struct {
	X, Y float64
}

type testVelocity struct {
	VX, VY float64
}

type testTag struct{}

func TestCreateEntityAssignsUniqueIDs(t *testing.T) {
	em := NewEntityManager()

	seen := make(map[EntityID]bool)
	for i := 0; i < 100; i++ {
		id := em.CreateEntity()
		if id == 0 {
			t.Fatal("CreateEntity() returned the reserved invalid ID 0")
		}
		if seen[id] {
			t.Fatalf("CreateEntity() returned duplicate ID %d", id)
		}
		seen[id] = true
	}

	if got := em.EntityCount(); got != 100 {
		t.Errorf("EntityCount() = %d, want 100", got)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPosition{X: 3, Y: 4})

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("GetComponent() did not find the added component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("component = (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocity](em, id); ok {
		t.Error("GetComponent() found a component that was never added")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTag{})

	if !HasComponent[*testTag](em, id) {
		t.Error("HasComponent() = false after AddComponent")
	}

	RemoveComponent[*testTag](em, id)
	if HasComponent[*testTag](em, id) {
		t.Error("HasComponent() = true after RemoveComponent")
	}
}

func TestGetEntitiesWith2MatchesOnlyFullSets(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &testPosition{})
	AddComponent(em, both, &testVelocity{})

	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &testPosition{})

	got := GetEntitiesWith2[*testPosition, *testVelocity](em)
	if len(got) != 1 {
		t.Fatalf("GetEntitiesWith2() returned %d entities, want 1", len(got))
	}
	if got[0] != both {
		t.Errorf("GetEntitiesWith2() = %v, want %v", got[0], both)
	}

	if n := len(GetEntitiesWith[*testPosition](em)); n != 2 {
		t.Errorf("GetEntitiesWith() returned %d entities, want 2", n)
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPosition{})

	em.DestroyEntity(id)

	// Still visible until the end-of-frame sweep.
	if !HasComponent[*testPosition](em, id) {
		t.Error("entity removed before RemoveMarkedEntities()")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testPosition](em, id) {
		t.Error("entity still present after RemoveMarkedEntities()")
	}
	if got := em.EntityCount(); got != 0 {
		t.Errorf("EntityCount() = %d, want 0", got)
	}
}
