package components

// ButtonState tracks the interaction phase of a button.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// ButtonComponent is a clickable rectangular button with a label. OnClick
// runs when a press started on the button is released on it.
type ButtonComponent struct {
	Label   string
	Width   float64
	Height  float64
	State   ButtonState
	OnClick func()
	// Bob animates a gentle vertical float on menu buttons. BobPhase
	// advances with time; BobAmplitude of zero disables the effect.
	BobPhase     float64
	BobAmplitude float64
	// FontSize overrides the default label size when non-zero.
	FontSize float64
}
