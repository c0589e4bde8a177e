// Package components defines the plain data attached to entities. Systems
// query and mutate these; components themselves carry no behavior beyond
// small accessors.
package components

// PositionComponent is the world position of an entity in screen pixels.
type PositionComponent struct {
	X float64
	Y float64
}
