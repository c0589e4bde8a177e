package components

import "image/color"

// ParticleKind distinguishes emission styles so the emitter and renderer
// can vary size, color and physics.
type ParticleKind int

const (
	ParticleBurst ParticleKind = iota
	ParticleExplosion
	ParticleSmoke
	ParticleClick
)

// ParticleComponent is a short-lived decorative dot. Particles move under
// their own velocity plus gravity and fade out over their lifetime.
type ParticleComponent struct {
	VX, VY   float64
	Size     float64
	Gravity  float64
	Color    color.RGBA
	Alpha    float64 // 1 at spawn, fades toward 0
	FadeRate float64 // alpha decay per second
	Lifetime float64 // seconds remaining
	Kind     ParticleKind
}
