package ui

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font is a handle the Measurer and Surface resolve to an actual face.
type Font struct {
	Size float64
	Bold bool
}

// FontMetrics are the vertical metrics of a font, in pixels.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64 // distance between consecutive baselines
}

// Measurer measures text for layout. The controller's measurer feeds the
// minimum size of every text-bearing component.
type Measurer interface {
	TextWidth(f Font, s string) float64
	Metrics(f Font) FontMetrics
}

// FaceMeasurer measures with fixed-size x/image faces. Font.Size is
// ignored; Font.Bold selects Bold when it is set.
type FaceMeasurer struct {
	Regular font.Face
	Bold    font.Face
}

// NewBasicMeasurer returns a measurer backed by the 7x13 bitmap face. It
// needs no font files and gives stable numbers in headless use.
func NewBasicMeasurer() *FaceMeasurer {
	return &FaceMeasurer{Regular: basicfont.Face7x13}
}

func (m *FaceMeasurer) face(f Font) font.Face {
	if f.Bold && m.Bold != nil {
		return m.Bold
	}
	return m.Regular
}

func (m *FaceMeasurer) TextWidth(f Font, s string) float64 {
	return float64(font.MeasureString(m.face(f), s)) / 64
}

func (m *FaceMeasurer) Metrics(f Font) FontMetrics {
	fm := m.face(f).Metrics()
	return FontMetrics{
		Ascent:  float64(fm.Ascent) / 64,
		Descent: float64(fm.Descent) / 64,
		Leading: float64(fm.Height) / 64,
	}
}

// CellMeasurer measures text on a fixed cell grid, counting East Asian
// wide characters as two cells.
type CellMeasurer struct {
	CellWidth float64
	Ascent    float64
	Descent   float64
	Leading   float64
}

func (m CellMeasurer) TextWidth(_ Font, s string) float64 {
	return float64(runewidth.StringWidth(s)) * m.CellWidth
}

func (m CellMeasurer) Metrics(Font) FontMetrics {
	return FontMetrics{Ascent: m.Ascent, Descent: m.Descent, Leading: m.Leading}
}
