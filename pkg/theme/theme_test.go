package theme

import "testing"

func TestToggleSwitchesTheme(t *testing.T) {
	m := NewManager(false)
	if m.IsDark() {
		t.Fatal("NewManager(false).IsDark() = true, want false")
	}

	m.Toggle()
	if !m.IsDark() {
		t.Error("IsDark() = false after Toggle, want true")
	}

	m.Toggle()
	if m.IsDark() {
		t.Error("IsDark() = true after second Toggle, want false")
	}
}

func TestFadeReachesTargetPalette(t *testing.T) {
	m := NewManager(false)
	m.Toggle()

	// Immediately after toggling the displayed palette is still light.
	if got, want := m.Current().Background, Light().Background; got != want {
		t.Errorf("Background right after Toggle = %v, want %v", got, want)
	}

	// Advance well past the transition duration.
	for i := 0; i < 120; i++ {
		m.Update(1.0 / 60.0)
	}

	if got, want := m.Current(), Dark(); got != want {
		t.Errorf("Current() after fade = %+v, want %+v", got, want)
	}
}

func TestFadeIsGradual(t *testing.T) {
	m := NewManager(false)
	m.Toggle()
	m.Update(0.1)

	bg := m.Current().Background
	if bg == Light().Background || bg == Dark().Background {
		t.Errorf("mid-fade Background = %v, want an intermediate value", bg)
	}
}

func TestToggleMidFadeDoesNotJump(t *testing.T) {
	m := NewManager(false)
	m.Toggle()
	m.Update(0.1)
	before := m.Current()

	m.Toggle()
	after := m.Current()

	if before != after {
		t.Errorf("palette jumped on mid-fade Toggle: %+v -> %+v", before, after)
	}
}
