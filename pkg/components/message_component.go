package components

import "image/color"

// MessageComponent is a transient floating text such as "+1" or "SUPER!".
// It drifts upward and fades out over its lifetime.
type MessageComponent struct {
	Text     string
	Color    color.RGBA
	FontSize float64
	// Lifetime counts down in seconds; at zero the message is removed.
	Lifetime float64
	// Total is the initial lifetime, kept for the fade fraction.
	Total float64
	// RiseSpeed is the upward drift in pixels per second.
	RiseSpeed float64
}
