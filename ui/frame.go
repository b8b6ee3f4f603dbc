package ui

import "image/color"

// DockSide is the screen edge a frame is docked to.
type DockSide int

const (
	DockNone DockSide = iota
	DockLeft
	DockRight
	DockTop
	DockBottom
)

func (d DockSide) String() string {
	switch d {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	}
	return "none"
}

type resizeEdge uint8

const (
	edgeLeft resizeEdge = 1 << iota
	edgeRight
	edgeTop
	edgeBottom
)

const (
	dockThreshold  = 20.0
	resizeArea     = 5.0
	minFrameWidth  = 100.0
	minFrameHeight = 50.0
)

var dockPreviewColor = color.NRGBA{33, 150, 243, 84}

// Frame is a movable, focusable window with a title bar above a content
// panel. Dockable frames snap to a screen edge when dropped within
// dockThreshold pixels of it; resizable frames are resized by dragging
// their edges.
type Frame struct {
	Window
	title   *Label
	content *Panel

	dockable  bool
	resizable bool
	dock      DockSide
	preview   DockSide
	undocked  Rectangle // bounds to restore when undocking
	resizing  resizeEdge
	sizeStart Rectangle
}

// NewFrame returns a frame titled title whose content panel uses layout,
// a stretching BorderLayout when nil. An empty title hides the title bar.
func NewFrame(ctl *Controller, title string, layout Layout) *Frame {
	if layout == nil {
		layout = NewBorderLayout(true)
	}
	f := &Frame{}
	f.InitWindow(f, ctl, NewBorderLayout(true))
	f.movable = true
	f.focusable = true

	f.title = NewLabel(ctl, title)
	f.title.align = AlignCenter
	f.title.visible = title != ""
	f.Container.Add(f.title, North)

	f.content = NewPanel(ctl, layout)
	f.Container.Add(f.content, Center)
	return f
}

// Title returns the title bar label.
func (f *Frame) Title() *Label { return f.title }

func (f *Frame) SetTitle(s string) {
	f.title.SetText(s)
	f.title.SetVisible(s != "")
}

// ContentPane returns the panel holding the frame's components.
func (f *Frame) ContentPane() *Panel { return f.content }

// Add adds comp to the content pane.
func (f *Frame) Add(comp Component, hint Hint) { f.content.Add(comp, hint) }

func (f *Frame) Remove(comp Component) { f.content.Remove(comp) }

func (f *Frame) IsDockable() bool { return f.dockable }

func (f *Frame) SetDockable(v bool) {
	f.dockable = v
	if !v {
		f.SetDock(DockNone)
	}
}

func (f *Frame) IsResizable() bool     { return f.resizable }
func (f *Frame) SetResizable(v bool)   { f.resizable = v }
func (f *Frame) Dock() DockSide        { return f.dock }
func (f *Frame) DockPreview() DockSide { return f.preview }

// SetDock docks the frame to side, or restores its undocked bounds for
// DockNone.
func (f *Frame) SetDock(side DockSide) {
	if side == f.dock {
		return
	}
	if f.dock == DockNone {
		f.undocked = f.bounds
	}
	f.dock = side
	if side == DockNone {
		f.bounds = f.undocked
	} else {
		f.applyDock()
	}
	f.self.Invalidate()
	if f.ctl != nil {
		f.ctl.logger.Debug("frame docked", "frame", describe(f.self), "side", side)
	}
}

// dockBounds returns the bounds of the frame docked to side.
func (f *Frame) dockBounds(side DockSide) Rectangle {
	r := f.bounds
	if f.ctl == nil {
		return r
	}
	sw, sh := f.ctl.ScreenSize()
	switch side {
	case DockLeft:
		r.X, r.Y, r.Height = 0, 0, sh
	case DockRight:
		r.X, r.Y, r.Height = sw-r.Width, 0, sh
	case DockTop:
		r.X, r.Y, r.Width = 0, 0, sw
	case DockBottom:
		r.X, r.Y, r.Width = 0, sh-r.Height, sw
	}
	return r
}

func (f *Frame) applyDock() {
	if f.dock != DockNone {
		f.bounds = f.dockBounds(f.dock)
	}
}

// screenResized keeps a docked frame against its edge.
func (f *Frame) screenResized() {
	if f.dock != DockNone {
		f.applyDock()
		f.self.Invalidate()
	}
}

// dockSideAt returns the screen edge within dockThreshold of (x, y).
func (f *Frame) dockSideAt(x, y float64) DockSide {
	if f.ctl == nil {
		return DockNone
	}
	sw, sh := f.ctl.ScreenSize()
	switch {
	case x < dockThreshold:
		return DockLeft
	case sw-x < dockThreshold:
		return DockRight
	case y < dockThreshold:
		return DockTop
	case sh-y < dockThreshold:
		return DockBottom
	}
	return DockNone
}

// edgeAt returns the edges whose resize band contains the screen point
// (x, y). A docked frame only resizes along its inner edge.
func (f *Frame) edgeAt(x, y float64) resizeEdge {
	if !f.resizable {
		return 0
	}
	p := f.LocationOnScreen()
	w, h := f.bounds.Width, f.bounds.Height
	if x < p.X || x > p.X+w || y < p.Y || y > p.Y+h {
		return 0
	}
	var e resizeEdge
	if x <= p.X+resizeArea {
		e |= edgeLeft
	}
	if x >= p.X+w-resizeArea {
		e |= edgeRight
	}
	if y <= p.Y+resizeArea {
		e |= edgeTop
	}
	if y >= p.Y+h-resizeArea {
		e |= edgeBottom
	}
	switch f.dock {
	case DockLeft:
		e &= edgeRight
	case DockRight:
		e &= edgeLeft
	case DockTop:
		e &= edgeBottom
	case DockBottom:
		e &= edgeTop
	}
	return e
}

// CursorAt returns the pointer shape over the screen point (x, y).
func (f *Frame) CursorAt(x, y float64) CursorShape {
	e := f.resizing
	if e == 0 {
		e = f.edgeAt(x, y)
	}
	switch e {
	case edgeLeft, edgeRight:
		return CursorEWResize
	case edgeTop, edgeBottom:
		return CursorNSResize
	case edgeLeft | edgeTop, edgeRight | edgeBottom:
		return CursorNWSEResize
	case edgeRight | edgeTop, edgeLeft | edgeBottom:
		return CursorNESWResize
	}
	if f.movable && f.inTitle(y) {
		return CursorMove
	}
	return CursorDefault
}

func (f *Frame) inTitle(y float64) bool {
	if !f.title.visible {
		return false
	}
	ty := f.title.LocationOnScreen().Y
	return y >= ty && y <= ty+f.title.bounds.Height
}

// resize applies a drag of the resized edges by (dx, dy) from the bounds
// at the start of the drag.
func (f *Frame) resize(dx, dy float64) {
	s := f.sizeStart
	r := s
	if f.resizing&edgeLeft != 0 {
		r.Width = max(minFrameWidth, s.Width-dx)
		r.X = s.X + s.Width - r.Width
	}
	if f.resizing&edgeRight != 0 {
		r.Width = max(minFrameWidth, s.Width+dx)
	}
	if f.resizing&edgeTop != 0 {
		r.Height = max(minFrameHeight, s.Height-dy)
		r.Y = s.Y + s.Height - r.Height
	}
	if f.resizing&edgeBottom != 0 {
		r.Height = max(minFrameHeight, s.Height+dy)
	}
	f.bounds = r
	if f.dock == DockNone {
		f.undocked = r
	}
	f.self.Invalidate()
}

// undockAt restores the undocked size under the pointer at (x, y),
// keeping the press point at the same relative horizontal position.
func (f *Frame) undockAt(x, y float64) {
	rel := 0.5
	if f.bounds.Width > 0 {
		rel = (f.pressX - f.bounds.X) / f.bounds.Width
	}
	f.dock = DockNone
	f.bounds.Width, f.bounds.Height = f.undocked.Width, f.undocked.Height
	f.bounds.X = x - f.bounds.Width*rel
	f.bounds.Y = y - f.title.bounds.Height/2
	f.pressX, f.pressY = x, y
	f.pressBounds = f.bounds
	f.self.Invalidate()
}

// HandleMouse takes focus on a press and handles edge resizing and
// docking around the window's drag behaviour.
func (f *Frame) HandleMouse(e *MouseEvent) {
	holding := f.ctl != nil && f.ctl.captured == f.self
	if holding {
		switch e.Type {
		case MousePressed:
			f.resizing = f.edgeAt(e.X, e.Y)
			f.sizeStart = f.bounds
			f.pressX, f.pressY = e.X, e.Y
			if f.dock == DockNone {
				f.undocked = f.bounds
			}
		case MouseDragged:
			if f.resizing != 0 {
				f.Container.HandleMouse(e)
				f.resize(e.X-f.pressX, e.Y-f.pressY)
				return
			}
			if f.movable && f.dock != DockNone {
				f.undockAt(e.X, e.Y)
			}
		case MouseReleased:
			f.resizing = 0
			if f.preview != DockNone {
				side := f.preview
				f.preview = DockNone
				f.SetDock(side)
			}
		}
	}
	f.Window.HandleMouse(e)
	if holding && e.Type == MouseDragged && f.movable && f.dockable {
		f.preview = f.dockSideAt(e.X, e.Y)
	}
	if e.Type == MousePressed {
		f.RequestFocus()
	}
}

// borderOverride outlines the focused frame, and the frame holding the
// focus owner, with the style's frame colours.
func (f *Frame) borderOverride(st *Style) (float64, color.Color, bool) {
	switch {
	case f.IsFocused():
		return 2, st.FrameFocusBorder, true
	case f.IsActive():
		return 2, st.FrameActiveBorder, true
	}
	return 0, nil, false
}

// Validate restyles the title bar and content pane before laying out.
func (f *Frame) Validate() {
	if f.valid {
		return
	}
	t := f.title
	t.margin = Spacing{}
	t.padding = Pad(2)
	t.capturesMouse = false
	t.bg = f.style().TitleBackground
	t.radii = CornerRadii{TopLeft: f.radii.TopLeft, TopRight: f.radii.TopRight}
	c := f.content
	c.margin = Spacing{}
	c.padding = Pad(10)
	c.capturesMouse = false
	f.Container.Validate()
}

// Draw paints the frame and, while a drag hovers a screen edge, the
// area the frame would dock to.
func (f *Frame) Draw(s Surface) {
	f.Window.Draw(s)
	if f.preview != DockNone {
		s.FillRect(f.dockBounds(f.preview), CornerRadii{}, dockPreviewColor)
	}
}
