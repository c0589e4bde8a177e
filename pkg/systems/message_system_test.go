package systems

import (
	"testing"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/ecs"
	"github.com/gonewx/trainmatch/pkg/entities"
)

func TestMessagesRiseAndExpire(t *testing.T) {
	em := ecs.NewEntityManager()
	id := entities.NewMessage(em, 400, 300, "Correct!", components.TrainGreen.RGBA(), 24, 0.5)
	ms := NewMessageSystem(em)

	ms.Update(testDT)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y >= 300 {
		t.Errorf("message Y = %v after update, want < 300", pos.Y)
	}

	for i := 0; i < 60; i++ {
		ms.Update(testDT)
	}
	if _, ok := ecs.GetComponent[*components.MessageComponent](em, id); ok {
		t.Error("message still exists after its lifetime expired")
	}
}

func TestMessageFadeFractionWellFormed(t *testing.T) {
	em := ecs.NewEntityManager()
	id := entities.NewMessage(em, 0, 0, "SUPER!", components.TrainYellow.RGBA(), 32, 1.0)
	ms := NewMessageSystem(em)

	ms.Update(0.25)
	msg, _ := ecs.GetComponent[*components.MessageComponent](em, id)
	if msg.Total != 1.0 {
		t.Errorf("Total = %v, want the initial lifetime 1.0", msg.Total)
	}
	if msg.Lifetime >= msg.Total {
		t.Errorf("Lifetime = %v not below Total %v after update", msg.Lifetime, msg.Total)
	}
}
