package ui

import (
	"image/color"
	"math"
)

// ToggleButton is a button with a selected state. Inside a ButtonGroup at
// most one member is selected and clicking the selected one does nothing.
type ToggleButton struct {
	Button
	selected bool
	group    *ButtonGroup
}

func NewToggleButton(ctl *Controller, text string, group *ButtonGroup) *ToggleButton {
	t := &ToggleButton{}
	t.InitToggleButton(t, ctl, text, group)
	return t
}

// InitToggleButton initialises an embedded ToggleButton whose outer
// wrapper is self.
func (t *ToggleButton) InitToggleButton(self Component, ctl *Controller, text string, group *ButtonGroup) {
	t.InitButton(self, ctl, text)
	t.SetButtonGroup(group)
}

func (t *ToggleButton) IsSelected() bool          { return t.selected }
func (t *ToggleButton) SetSelected(v bool)        { t.selected = v }
func (t *ToggleButton) ButtonGroup() *ButtonGroup { return t.group }

// SetButtonGroup moves the button into g. The first member of a group
// becomes its selected button.
func (t *ToggleButton) SetButtonGroup(g *ButtonGroup) {
	t.group = g
	if g != nil && g.selected == nil {
		g.SetSelected(t)
	}
}

func (t *ToggleButton) defaultForeground(st *Style) color.Color {
	if t.selected {
		return st.Foreground
	}
	return st.ToggleOff
}

// HandleKey ignores events while the button is its group's selection,
// since neither Tab handling nor the hot key could change anything.
func (t *ToggleButton) HandleKey(e *KeyEvent) {
	if t.group == nil || t.group.selected != t {
		t.Button.HandleKey(e)
	}
}

// Clicked toggles the button, or selects it within its group, and fires
// the action event.
func (t *ToggleButton) Clicked() {
	switch {
	case t.group == nil:
		t.selected = !t.selected
	case t.group.selected != t:
		t.group.SetSelected(t)
	default:
		return
	}
	t.Button.Clicked()
}

// ButtonGroup gives a set of toggle buttons radio semantics.
type ButtonGroup struct {
	selected *ToggleButton
}

// NewButtonGroup returns a group holding buttons; the first is selected.
func NewButtonGroup(buttons ...*ToggleButton) *ButtonGroup {
	g := &ButtonGroup{}
	for _, b := range buttons {
		b.SetButtonGroup(g)
	}
	return g
}

func (g *ButtonGroup) Selected() *ToggleButton { return g.selected }

// SetSelected selects b and deselects the previous selection. Buttons of
// other groups are ignored.
func (g *ButtonGroup) SetSelected(b *ToggleButton) {
	if b == nil || g.selected == b || b.group != g {
		return
	}
	if g.selected != nil {
		g.selected.selected = false
	}
	g.selected = b
	b.selected = true
}

// CheckBox is a toggle button drawn as a box with a cross, or as a radio
// disc when it belongs to a group.
type CheckBox struct {
	ToggleButton
}

func NewCheckBox(ctl *Controller, text string, group *ButtonGroup) *CheckBox {
	c := &CheckBox{}
	c.InitToggleButton(c, ctl, text, group)
	c.align = AlignLeft
	return c
}

// boxWidth is the room taken by the box left of the text.
func (c *CheckBox) boxWidth() float64 {
	fm := c.measurer().Metrics(c.Font())
	return fm.Descent/2 + 5 + fm.Ascent
}

func (c *CheckBox) MinimumSize() Size {
	d := c.ToggleButton.MinimumSize()
	d.Width += c.boxWidth()
	return d
}

// PreferredSize trims the button's horizontal padding by 15.
func (c *CheckBox) PreferredSize() Size {
	d := c.ToggleButton.PreferredSize()
	d.Width += c.boxWidth() - 15
	return d
}

func (c *CheckBox) defaultForeground(st *Style) color.Color { return st.Foreground }

func (c *CheckBox) Draw(s Surface) {
	c.Base.Draw(s)
	f := c.Font()
	m := c.measurer()
	fm := m.Metrics(f)
	fg := c.ForegroundColor()
	boxPad := fm.Ascent + m.TextWidth(f, "  ")
	r := c.bounds.Inset(c.padding)
	r.X += boxPad
	r.Width -= boxPad
	c.drawText(s, r, fg)

	x := c.bounds.X + c.padding.Left
	y := c.bounds.Y + c.bounds.Height - c.padding.Bottom - fm.Descent
	if h := fm.Ascent + fm.Descent; c.bounds.Height > h {
		y -= (c.bounds.Height - h) / 2
	}
	if c.group == nil {
		a := fm.Ascent
		s.StrokeRect(Rectangle{X: x + 1, Y: y - a + 2, Width: a - 2, Height: a - 2}, CornerRadii{}, 1, fg)
		if c.selected {
			s.StrokeLine(x+3, y-a+4, x+a-3, y-2, 1, fg)
			s.StrokeLine(x+3, y-2, x+a-3, y-a+4, 1, fg)
		}
		return
	}
	d := fm.Ascent - 3
	cx := x + 2 + d/2
	cy := c.bounds.Y + math.Round(c.bounds.Height/2)
	s.StrokeCircle(cx, cy, d/2, 1, fg)
	if c.selected {
		s.FillCircle(cx, cy, d/6, fg)
	}
}
