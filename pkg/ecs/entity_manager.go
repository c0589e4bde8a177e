package ecs

import "reflect"

// EntityID is the unique identifier of an entity.
type EntityID uint64

// EntityManager owns all entities and their components.
type EntityManager struct {
	nextID uint64
	// entity -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal at the end of the frame
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is reserved as the invalid ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal. The entity stays queryable
// until RemoveMarkedEntities runs, so systems iterating this frame are
// not invalidated mid-loop.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities drops every entity marked by DestroyEntity.
// Call once per frame after all systems have updated.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount returns the number of live entities.
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}
