package components

// SceneryKind identifies a decorative background element.
type SceneryKind int

const (
	SceneryCloud SceneryKind = iota
	SceneryTree
	SceneryStar
)

// SceneryComponent is a parallax background element. Clouds and trees
// scroll and wrap; stars stay put and pulse.
type SceneryComponent struct {
	Kind SceneryKind
	// Scale varies individual element size.
	Scale float64
	// Speed is the leftward scroll speed in pixels per second. Zero for
	// stars.
	Speed float64
	// Glow is the current star brightness (0-255); GlowDir is +1 or -1.
	Glow    float64
	GlowDir float64
	// GlowRate is the brightness change per second.
	GlowRate float64
}
