package components

// SelectorComponent is one clickable color swatch in the selector row.
type SelectorComponent struct {
	Color TrainColor
	Size  float64
	// Hovered and Pressed drive the draw-time highlight and sink.
	Hovered bool
	Pressed bool
}
