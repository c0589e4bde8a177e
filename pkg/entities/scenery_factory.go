package entities

import (
	"math/rand"

	"github.com/gonewx/trainmatch/pkg/components"
	"github.com/gonewx/trainmatch/pkg/config"
	"github.com/gonewx/trainmatch/pkg/ecs"
)

// CreateScenery populates the parallax background: drifting clouds,
// scrolling trees and pulsing stars. Stars are only drawn in dark mode
// but exist in both themes.
func CreateScenery(em *ecs.EntityManager, cfg *config.Config, screenW, screenH float64) {
	for i := 0; i < cfg.Scenery.CloudCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: rand.Float64() * screenW,
			Y: cfg.Parallax.CloudOffsetY*0.4 + rand.Float64()*cfg.Parallax.CloudOffsetY*0.6,
		})
		ecs.AddComponent(em, id, &components.SceneryComponent{
			Kind:  components.SceneryCloud,
			Scale: 0.7 + rand.Float64()*0.6,
			Speed: cfg.Parallax.CloudSpeed * (0.8 + rand.Float64()*0.4),
		})
	}

	for i := 0; i < cfg.Scenery.TreeCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: rand.Float64() * screenW,
			Y: cfg.Parallax.TreeOffsetY,
		})
		ecs.AddComponent(em, id, &components.SceneryComponent{
			Kind:  components.SceneryTree,
			Scale: 0.8 + rand.Float64()*0.4,
			Speed: cfg.Parallax.TreeSpeed * (0.9 + rand.Float64()*0.2),
		})
	}

	glowSpan := cfg.Scenery.GlowMax - cfg.Scenery.GlowMin
	for i := 0; i < cfg.Scenery.StarCount; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: rand.Float64() * screenW,
			Y: rand.Float64() * screenH * 0.5,
		})
		dir := 1.0
		if rand.Intn(2) == 0 {
			dir = -1
		}
		ecs.AddComponent(em, id, &components.SceneryComponent{
			Kind:     components.SceneryStar,
			Scale:    0.5 + rand.Float64(),
			Glow:     cfg.Scenery.GlowMin + rand.Float64()*glowSpan,
			GlowDir:  dir,
			GlowRate: 60 + rand.Float64()*80,
		})
	}
}
