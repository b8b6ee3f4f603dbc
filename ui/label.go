package ui

import (
	"image/color"
	"math"
	"strings"
)

// Label displays one or more lines of text. Labels take no focus and are
// transparent to the pointer.
type Label struct {
	Base
	text   string
	align  Align
	valign VAlign
}

func NewLabel(ctl *Controller, text string) *Label {
	l := &Label{}
	l.InitLabel(l, ctl, text)
	return l
}

// InitLabel initialises an embedded Label whose outer wrapper is self.
func (l *Label) InitLabel(self Component, ctl *Controller, text string) {
	l.Init(self, ctl)
	l.text = text
	l.focusable = false
	l.capturesMouse = false
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) {
	l.text = s
	l.self.Invalidate()
}

func (l *Label) Alignment() (Align, VAlign) { return l.align, l.valign }

func (l *Label) SetAlignment(a Align)          { l.align = a }
func (l *Label) SetVerticalAlignment(v VAlign) { l.valign = v }

func (l *Label) defaultBackground(*Style) color.Color { return color.Transparent }

func (l *Label) lines() []string {
	return strings.Split(strings.TrimSpace(l.text), "\n")
}

// MinimumSize is the widest line by the height of all lines.
func (l *Label) MinimumSize() Size {
	f := l.Font()
	m := l.measurer()
	lines := l.lines()
	var w float64
	for _, line := range lines {
		w = max(w, m.TextWidth(f, line))
	}
	fm := m.Metrics(f)
	h := fm.Ascent + fm.Descent + float64(len(lines)-1)*fm.Leading
	return Size{Width: w, Height: math.Ceil(h)}
}

func (l *Label) Draw(s Surface) {
	l.Base.Draw(s)
	l.drawText(s, l.bounds.Inset(l.padding), l.ForegroundColor())
}

// drawText draws the label's lines aligned within r.
func (l *Label) drawText(s Surface, r Rectangle, clr color.Color) {
	f := l.Font()
	m := l.measurer()
	fm := m.Metrics(f)
	lines := l.lines()
	h := fm.Ascent + fm.Descent + float64(len(lines)-1)*fm.Leading
	y := r.Y
	switch l.valign {
	case VAlignCenter:
		y += (r.Height - h) / 2
	case VAlignBottom:
		y += r.Height - h
	}
	y += fm.Ascent
	for _, line := range lines {
		x := r.X
		switch l.align {
		case AlignCenter:
			x += (r.Width - m.TextWidth(f, line)) / 2
		case AlignRight:
			x += r.Width - m.TextWidth(f, line)
		}
		s.Text(f, line, x, y, clr)
		y += fm.Leading
	}
}
