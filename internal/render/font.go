package render

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches the embedded Go font sources and the faces derived from
// them. Face construction per draw call is cheap, but the sources must be
// parsed exactly once.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	mu    sync.Mutex
	faces map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

var (
	defaultFonts     *Fonts
	defaultFontsOnce sync.Once
)

// DefaultFonts returns the process-wide font cache backed by the embedded
// Go Regular and Go Bold fonts.
func DefaultFonts() *Fonts {
	defaultFontsOnce.Do(func() {
		defaultFonts = mustLoadFonts()
	})
	return defaultFonts
}

func mustLoadFonts() *Fonts {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// The embedded fonts are known-good TTF data.
		panic("render: loading embedded Go Regular: " + err.Error())
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic("render: loading embedded Go Bold: " + err.Error())
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}
}

// Face returns a cached text face at the given size.
func (f *Fonts) Face(size float64, bold bool) *text.GoTextFace {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}

	source := f.regular
	if bold {
		source = f.bold
	}
	face := &text.GoTextFace{Source: source, Size: size}
	f.faces[key] = face
	return face
}
