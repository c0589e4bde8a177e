package ecs

import "reflect"

// AddComponent attaches a component to an entity. Adding a second component
// of the same type replaces the first.
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// GetComponent returns the entity's component of type T, if present.
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	_, found := compMap[reflect.TypeOf(zero)]
	return found
}

// RemoveComponent detaches the component of type T from an entity.
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeOf(zero))
	}
}

// GetEntitiesWith returns all entities that have a component of type A.
func GetEntitiesWith[A any](em *EntityManager) []EntityID {
	var a A
	return em.query(reflect.TypeOf(a))
}

// GetEntitiesWith2 returns all entities that have components of both
// type A and type B.
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	var a A
	var b B
	return em.query(reflect.TypeOf(a), reflect.TypeOf(b))
}

// GetEntitiesWith3 returns all entities that have components of types
// A, B and C.
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	var a A
	var b B
	var c C
	return em.query(reflect.TypeOf(a), reflect.TypeOf(b), reflect.TypeOf(c))
}

func (em *EntityManager) query(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
