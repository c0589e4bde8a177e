// Package theme defines the light and dark color palettes and the
// cosmetic fade used when switching between them.
package theme

import (
	"image/color"

	"github.com/gonewx/trainmatch/pkg/utils"
)

// Palette is the set of colors a theme assigns to the fixed UI roles.
type Palette struct {
	Background color.RGBA
	Primary    color.RGBA
	Secondary  color.RGBA
	Accent     color.RGBA
	Error      color.RGBA
	Text       color.RGBA
	Shadow     color.RGBA
	Button     color.RGBA
	Track      color.RGBA
	Rail       color.RGBA
}

// Light returns the light theme palette.
func Light() Palette {
	return Palette{
		Background: color.RGBA{245, 245, 245, 255},
		Primary:    color.RGBA{66, 133, 244, 255},
		Secondary:  color.RGBA{52, 168, 83, 255},
		Accent:     color.RGBA{251, 188, 4, 255},
		Error:      color.RGBA{234, 67, 53, 255},
		Text:       color.RGBA{32, 33, 36, 255},
		Shadow:     color.RGBA{0, 0, 0, 50},
		Button:     color.RGBA{255, 255, 255, 255},
		Track:      color.RGBA{200, 200, 200, 255},
		Rail:       color.RGBA{100, 100, 100, 255},
	}
}

// Dark returns the dark theme palette.
func Dark() Palette {
	return Palette{
		Background: color.RGBA{30, 30, 30, 255},
		Primary:    color.RGBA{138, 180, 248, 255},
		Secondary:  color.RGBA{129, 201, 149, 255},
		Accent:     color.RGBA{253, 214, 99, 255},
		Error:      color.RGBA{242, 139, 130, 255},
		Text:       color.RGBA{232, 234, 237, 255},
		Shadow:     color.RGBA{0, 0, 0, 80},
		Button:     color.RGBA{70, 70, 70, 255},
		Track:      color.RGBA{70, 70, 70, 255},
		Rail:       color.RGBA{200, 200, 200, 255},
	}
}

// transitionDuration is how long the palette fade takes, in seconds.
const transitionDuration = 0.4

// Manager tracks the active theme and animates the fade between palettes.
type Manager struct {
	dark     bool
	progress float64 // 1 = fade finished
	from     Palette
	to       Palette
}

// NewManager creates a theme manager starting on the given theme with no
// fade in progress.
func NewManager(dark bool) *Manager {
	m := &Manager{dark: dark, progress: 1}
	m.to = m.target()
	m.from = m.to
	return m
}

// IsDark reports whether the dark theme is active (or being faded in).
func (m *Manager) IsDark() bool {
	return m.dark
}

// Toggle switches themes and starts the fade from the currently displayed
// colors, so toggling mid-fade does not jump.
func (m *Manager) Toggle() {
	current := m.Current()
	m.dark = !m.dark
	m.from = current
	m.to = m.target()
	m.progress = 0
}

// Update advances the fade. dt is the frame time in seconds.
func (m *Manager) Update(dt float64) {
	if m.progress >= 1 {
		return
	}
	m.progress = utils.Clamp(m.progress+dt/transitionDuration, 0, 1)
}

// Current returns the palette to draw with this frame. During a fade this
// is an interpolation between the previous and target palettes.
func (m *Manager) Current() Palette {
	if m.progress >= 1 {
		return m.to
	}
	t := utils.EaseInOutCubic(m.progress)
	return Palette{
		Background: lerpColor(m.from.Background, m.to.Background, t),
		Primary:    lerpColor(m.from.Primary, m.to.Primary, t),
		Secondary:  lerpColor(m.from.Secondary, m.to.Secondary, t),
		Accent:     lerpColor(m.from.Accent, m.to.Accent, t),
		Error:      lerpColor(m.from.Error, m.to.Error, t),
		Text:       lerpColor(m.from.Text, m.to.Text, t),
		Shadow:     lerpColor(m.from.Shadow, m.to.Shadow, t),
		Button:     lerpColor(m.from.Button, m.to.Button, t),
		Track:      lerpColor(m.from.Track, m.to.Track, t),
		Rail:       lerpColor(m.from.Rail, m.to.Rail, t),
	}
}

func (m *Manager) target() Palette {
	if m.dark {
		return Dark()
	}
	return Light()
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(utils.Lerp(float64(a.A), float64(b.A), t)),
	}
}
