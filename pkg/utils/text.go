package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce    sync.Once
	regularSrc  *text.GoTextFaceSource
	boldSrc     *text.GoTextFaceSource
	fontInitErr error

	faceMu    sync.Mutex
	faceCache = map[string]*text.GoTextFace{}
)

func initFontSources() {
	regularSrc, fontInitErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if fontInitErr != nil {
		return
	}
	boldSrc, fontInitErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
}

// LoadFace returns a cached text face of the embedded Go font at the given
// size. The repository ships no font assets; all text uses the Go fonts.
func LoadFace(size float64, bold bool) (*text.GoTextFace, error) {
	fontOnce.Do(initFontSources)
	if fontInitErr != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", fontInitErr)
	}

	key := fmt.Sprintf("%.1f:%v", size, bold)
	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faceCache[key]; ok {
		return face, nil
	}

	src := regularSrc
	if bold {
		src = boldSrc
	}
	face := &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	faceCache[key] = face
	return face, nil
}

// MeasureWidth returns the rendered width of s in pixels.
func MeasureWidth(s string, face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return w
}
