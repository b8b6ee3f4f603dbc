package ui

// CursorShape is the pointer shape the host should show.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorText
	CursorPointer
	CursorMove
	CursorEWResize
	CursorNSResize
	CursorNWSEResize
	CursorNESWResize
)

// cursorHinter is implemented by components that pick the pointer shape
// over themselves. x and y are screen coordinates.
type cursorHinter interface {
	CursorAt(x, y float64) CursorShape
}

// Cursor returns the pointer shape for the current pointer position: the
// choice of the component holding the press capture, else of the hovered
// component.
func (c *Controller) Cursor() CursorShape {
	target := c.captured
	if target == nil {
		target = c.hovered
	}
	if ch, ok := target.(cursorHinter); ok {
		return ch.CursorAt(c.mouseX, c.mouseY)
	}
	return CursorDefault
}

// CursorAt shows the text cursor over an enabled field.
func (t *TextField) CursorAt(x, y float64) CursorShape {
	if t.IsEnabled() {
		return CursorText
	}
	return CursorDefault
}
