package host

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/overlay/ui"
)

// defaultSize is used for fonts that do not name a size.
const defaultSize = 12

// Fonts resolves ui.Font handles to ebiten text faces backed by the Go
// fonts. It implements ui.Measurer so layout and drawing agree on widths.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[ui.Font]*text.GoTextFace
}

// NewFonts parses the embedded Go regular and bold fonts.
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[ui.Font]*text.GoTextFace),
	}, nil
}

// Face returns the cached face for f.
func (fs *Fonts) Face(f ui.Font) *text.GoTextFace {
	if face, ok := fs.faces[f]; ok {
		return face
	}
	src := fs.regular
	if f.Bold {
		src = fs.bold
	}
	size := f.Size
	if size <= 0 {
		size = defaultSize
	}
	face := &text.GoTextFace{Source: src, Size: size}
	fs.faces[f] = face
	return face
}

func (fs *Fonts) TextWidth(f ui.Font, s string) float64 {
	return text.Advance(s, fs.Face(f))
}

func (fs *Fonts) Metrics(f ui.Font) ui.FontMetrics {
	m := fs.Face(f).Metrics()
	return ui.FontMetrics{
		Ascent:  m.HAscent,
		Descent: m.HDescent,
		Leading: m.HAscent + m.HDescent + m.HLineGap,
	}
}
