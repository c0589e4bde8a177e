package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is the pointer input for the current frame.
type PointerState struct {
	// X, Y is the cursor position in logical screen coordinates.
	X, Y float64
	// Pressed is true while the left button is held down.
	Pressed bool
	// JustPressed is true only on the frame the left button went down.
	JustPressed bool
	// JustReleased is true only on the frame the left button came up.
	JustReleased bool
}

// ReadPointer samples the mouse once per frame. Systems share the returned
// value instead of polling ebiten individually, so every system sees the
// same snapshot.
func ReadPointer() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// InRect reports whether the point (x, y) lies inside the axis-aligned
// rectangle with top-left corner (rx, ry).
func InRect(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
