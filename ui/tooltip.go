package ui

import "image/color"

// Placement is where a tooltip shows relative to its anchor.
type Placement int

const (
	// PlaceDefault is PlaceLeftOrRight for menu entries and
	// PlaceBelowOrAbove for everything else.
	PlaceDefault Placement = iota
	PlaceBelow
	PlaceAbove
	PlaceLeft
	PlaceRight
	PlaceBelowOrAbove
	PlaceLeftOrRight
)

// menuEntry marks the entries of popup and choice menus.
type menuEntry interface {
	menuEntry()
}

// ToolTip is a small window drawn next to its anchor once the pointer has
// rested on the anchor for the style's ToolTipDelay. It never joins the
// window stack: the anchor requests it from the controller every frame
// while it should show.
type ToolTip struct {
	Window
	anchor    Component
	placement Placement
	delay     float64 // negative: the style's ToolTipDelay
	fuse      float64
	shown     bool
}

// NewToolTip returns a tooltip showing text next to anchor. It does not
// attach itself; see Base.SetToolTip.
func NewToolTip(anchor Component, text string) *ToolTip {
	ctl := anchor.Core().ctl
	t := &ToolTip{anchor: anchor, delay: -1}
	t.InitWindow(t, ctl, NewBorderLayout(true))
	t.capturesMouse = false
	t.margin = Pad(5)
	t.padding = Pad(5)
	t.radii = Radius(5)
	t.SetText(text)
	return t
}

func (t *ToolTip) defaultBackground(st *Style) color.Color { return st.ToolTipBackground }

// Anchor returns the component the tooltip belongs to.
func (t *ToolTip) Anchor() Component { return t.anchor }

// SetText replaces the content with a label showing s.
func (t *ToolTip) SetText(s string) {
	t.RemoveAll()
	l := NewLabel(t.ctl, s)
	l.margin = Spacing{}
	l.padding = Spacing{}
	t.Container.Add(l, Center)
}

func (t *ToolTip) Placement() Placement     { return t.placement }
func (t *ToolTip) SetPlacement(p Placement) { t.placement = p }
func (t *ToolTip) IsShown() bool            { return t.shown }

// SetDelay overrides the style's ToolTipDelay; negative restores it.
func (t *ToolTip) SetDelay(seconds float64) { t.delay = seconds }

func (t *ToolTip) showDelay() float64 {
	if t.delay >= 0 {
		return t.delay
	}
	return t.style().ToolTipDelay
}

// update runs while the anchor is drawn. The fuse burns while the anchor
// is hovered; once it is out the tooltip asks to be drawn this frame.
func (t *ToolTip) update() {
	ctl := t.ctl
	if ctl == nil {
		return
	}
	if ctl.hovered != t.anchor || ctl.captured != nil {
		t.fuse = 0
		t.shown = false
		return
	}
	t.fuse += ctl.dt
	if !t.shown && t.fuse >= t.showDelay() {
		t.valid = false
		t.self.Validate()
		t.shown = true
	}
	if t.shown {
		ctl.ShowToolTip(t)
	}
}

// Validate sizes the tooltip and places it next to its anchor on the side
// its placement asks for, switching sides when the preferred one has no
// room on screen.
func (t *ToolTip) Validate() {
	if t.valid {
		return
	}
	d := t.self.PreferredSize()
	t.bounds.Width, t.bounds.Height = d.Width, d.Height
	t.place()
	t.Container.Validate()
}

func (t *ToolTip) place() {
	ab := t.anchor.Core()
	a := ab.LocationOnScreen()
	aw, ah := ab.bounds.Width, ab.bounds.Height
	w, h := t.bounds.Width, t.bounds.Height
	m := t.margin
	var sw, sh float64 = Unbounded, Unbounded
	if t.ctl != nil {
		sw, sh = t.ctl.ScreenSize()
	}

	p := t.placement
	if p == PlaceDefault {
		p = PlaceBelowOrAbove
		if _, ok := t.anchor.(menuEntry); ok {
			p = PlaceLeftOrRight
		}
	}
	below := a.Y + ah + m.Top
	above := a.Y - h - m.Bottom
	right := a.X + aw + m.Left
	left := a.X - w - m.Right
	switch p {
	case PlaceBelowOrAbove:
		p = PlaceBelow
		if below+h > sh && above >= 0 {
			p = PlaceAbove
		}
	case PlaceLeftOrRight:
		p = PlaceRight
		if right+w > sw && left >= 0 {
			p = PlaceLeft
		}
	}

	var x, y float64
	switch p {
	case PlaceBelow, PlaceAbove:
		x = a.X + aw/2 - w/2
		y = below
		if p == PlaceAbove {
			y = above
		}
	default:
		y = a.Y + ah/2 - h/2
		x = right
		if p == PlaceLeft {
			x = left
		}
	}
	t.bounds.X = max(0, min(sw-w, x))
	t.bounds.Y = max(0, min(sh-h, y))
}
