package ui

import (
	"image/color"
	"io"
	"log/slog"
)

var testMeasurer = CellMeasurer{CellWidth: 7, Ascent: 10, Descent: 3, Leading: 13}

func newTestController() *Controller {
	return NewController(800, 600,
		WithMeasurer(testMeasurer),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// box is a leaf with a fixed minimum size and no margin or padding. It
// records the mouse events it receives and counts clicks.
type box struct {
	Base
	min    Size
	clicks int
	events []MouseEventType
	keys   []Key
}

func newBox(ctl *Controller, w, h float64) *box {
	b := &box{min: Size{Width: w, Height: h}}
	b.Init(b, ctl)
	b.margin = Spacing{}
	b.padding = Spacing{}
	b.clickable = true
	return b
}

func (b *box) MinimumSize() Size { return b.min }

func (b *box) Clicked() { b.clicks++ }

func (b *box) HandleMouse(e *MouseEvent) {
	b.events = append(b.events, e.Type)
	b.Base.HandleMouse(e)
}

func (b *box) HandleKey(e *KeyEvent) {
	b.keys = append(b.keys, e.Key)
	b.Base.HandleKey(e)
}

// manualLayout leaves children where the test put them.
type manualLayout struct{}

func (manualLayout) PreferredSize(target *Container) Size { return target.bounds.Size() }
func (manualLayout) MinimumSize(target *Container) Size   { return target.bounds.Size() }
func (manualLayout) MaximumSize(target *Container) Size   { return UnboundedSize() }
func (manualLayout) ArrangeChildren(*Container)           {}

// addWindow puts a manually laid out window at r on top of the stack.
func addWindow(ctl *Controller, r Rectangle, comps ...Component) *Window {
	w := NewWindow(ctl, manualLayout{})
	w.SetBounds(r)
	for _, c := range comps {
		w.Add(c, "")
	}
	ctl.AddWindow(w, -1)
	return w
}

func place(c Component, x, y float64) Component {
	b := c.Core()
	d := c.PreferredSize()
	b.SetBounds(Rectangle{X: x, Y: y, Width: d.Width, Height: d.Height})
	return c
}

func mouse(ctl *Controller, t MouseEventType, x, y float64) *MouseEvent {
	e := &MouseEvent{Type: t, X: x, Y: y, Button: ButtonLeft}
	ctl.HandleMouse(e)
	return e
}

func click(ctl *Controller, x, y float64) {
	mouse(ctl, MousePressed, x, y)
	mouse(ctl, MouseReleased, x, y)
}

func key(ctl *Controller, k Key, mods Modifiers) *KeyEvent {
	e := &KeyEvent{Type: KeyPressed, Key: k, Modifiers: mods}
	ctl.HandleKey(e)
	return e
}

func typeText(ctl *Controller, s string) {
	for _, r := range s {
		ctl.HandleKey(&KeyEvent{Type: KeyTyped, Char: r})
	}
}

// recordActions installs a controller-level handler and returns the
// slice it appends commands to.
func recordActions(ctl *Controller) *[]string {
	var cmds []string
	ctl.onAction = func(ev ActionEvent) { cmds = append(cmds, ev.Command) }
	return &cmds
}

// recordingSurface keeps what was drawn, in screen coordinates.
type recordingSurface struct {
	dx, dy float64
	texts  []string
	fills  []Rectangle
	clips  int
}

func (s *recordingSurface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *recordingSurface) FillRect(r Rectangle, _ CornerRadii, _ color.Color) {
	r.X += s.dx
	r.Y += s.dy
	s.fills = append(s.fills, r)
}

func (s *recordingSurface) StrokeRect(Rectangle, CornerRadii, float64, color.Color) {}
func (s *recordingSurface) StrokeLine(_, _, _, _, _ float64, _ color.Color)         {}
func (s *recordingSurface) FillCircle(_, _, _ float64, _ color.Color)               {}
func (s *recordingSurface) StrokeCircle(_, _, _, _ float64, _ color.Color)          {}
func (s *recordingSurface) Text(_ Font, str string, _, _ float64, _ color.Color)    { s.texts = append(s.texts, str) }
func (s *recordingSurface) PushClip(Rectangle)                                      { s.clips++ }
func (s *recordingSurface) PopClip()                                                { s.clips-- }
