package ui

import "image/color"

// Window is a top-level container living in the controller's window stack.
// Fragile windows are dismissed by a press outside of them; movable
// windows follow the pointer while dragged.
type Window struct {
	Container
	fragile bool
	movable bool

	// press position and window origin at the start of a drag
	pressX, pressY float64
	pressBounds    Rectangle
}

// WindowNode is implemented by every component that embeds Window.
type WindowNode interface {
	ContainerNode
	AsWindow() *Window
}

// NewWindow returns a window with the given layout, or a stretching
// BorderLayout when layout is nil.
func NewWindow(ctl *Controller, layout Layout) *Window {
	w := &Window{}
	w.InitWindow(w, ctl, layout)
	return w
}

// InitWindow initialises an embedded Window whose outer wrapper is self.
func (w *Window) InitWindow(self Component, ctl *Controller, layout Layout) {
	if layout == nil {
		layout = NewBorderLayout(true)
	}
	w.InitContainer(self, ctl, layout)
	w.focusable = false
	w.capturesMouse = true
}

// Window returns w.
func (w *Window) AsWindow() *Window { return w }

func (w *Window) focusScope() {}

func (w *Window) defaultBackground(st *Style) color.Color { return st.WindowBackground }

func (w *Window) IsFragile() bool   { return w.fragile }
func (w *Window) SetFragile(v bool) { w.fragile = v }
func (w *Window) IsMovable() bool   { return w.movable }
func (w *Window) SetMovable(v bool) { w.movable = v }

// IsFocused reports whether the focus owner lives in this window.
func (w *Window) IsFocused() bool {
	return w.ctl != nil && w.ctl.FocusedWindow() == w
}

// IsActive reports whether this window is the frame holding the focus owner.
func (w *Window) IsActive() bool {
	return w.ctl != nil && w.ctl.ActiveWindow() == w
}

// Pack resizes the window to its preferred size.
func (w *Window) Pack() {
	d := w.self.PreferredSize()
	w.SetSize(d.Width, d.Height)
	w.self.Invalidate()
}

// HandleMouse records the press origin and, for movable windows, follows
// drags while the window holds the press capture. The window is kept
// fully on screen.
func (w *Window) HandleMouse(e *MouseEvent) {
	w.Container.HandleMouse(e)
	if w.ctl == nil || w.ctl.captured != w.self {
		return
	}
	switch e.Type {
	case MousePressed:
		w.pressX, w.pressY = e.X, e.Y
		w.pressBounds = w.bounds
	case MouseDragged:
		if !w.movable {
			return
		}
		sw, sh := w.ctl.ScreenSize()
		x := w.pressBounds.X + e.X - w.pressX
		y := w.pressBounds.Y + e.Y - w.pressY
		w.bounds.X = max(0, min(sw-w.bounds.Width, x))
		w.bounds.Y = max(0, min(sh-w.bounds.Height, y))
		w.self.Invalidate()
	}
}
