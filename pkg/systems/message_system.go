package systems

import (
	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// MessageSystem floats messages upward and removes them when their
// lifetime runs out.
type MessageSystem struct {
	em *ecs.EntityManager
}

// NewMessageSystem creates a message system over the given entity
// manager.
func NewMessageSystem(em *ecs.EntityManager) *MessageSystem {
	return &MessageSystem{em: em}
}

// Update advances all messages by dt seconds.
func (ms *MessageSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.MessageComponent, *components.PositionComponent](ms.em) {
		msg, _ := ecs.GetComponent[*components.MessageComponent](ms.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ms.em, id)

		pos.Y -= msg.RiseSpeed * dt
		msg.Lifetime -= dt
		if msg.Lifetime <= 0 {
			ms.em.DestroyEntity(id)
		}
	}
	ms.em.RemoveMarkedEntities()
}
