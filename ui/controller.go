package ui

import (
	"image/color"
	"log/slog"
	"slices"
	"sync"
)

// Controller is the root of a UI: it owns the window stack and routes
// input to components. It is driven by the host once per frame: PreFrame,
// then Draw, with HandleMouse and HandleKey in between as input arrives.
//
// Controller implements sync.Locker. Draw runs under the lock, so code
// that changes the component tree from another goroutine must hold it.
type Controller struct {
	mu sync.Mutex

	root *Container // window stack, last is topmost
	main *Window

	style       Style
	measurer    Measurer
	logger      *slog.Logger
	onAction    ActionHandler
	reservedKey Key

	width, height  float64
	mouseX, mouseY float64

	hovered    Component
	hoverValid bool
	captured   Component
	focused    Component

	keyListeners []Component
	tooltip      *ToolTip // shown this frame

	t, dt float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithMeasurer sets the text measurer. The default measures with the
// 7x13 basic font.
func WithMeasurer(m Measurer) Option {
	return func(c *Controller) { c.measurer = m }
}

// WithStyle replaces DefaultStyle.
func WithStyle(s Style) Option {
	return func(c *Controller) { c.style = s }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithActionHandler sets the handler receiving action events no
// component handled.
func WithActionHandler(h ActionHandler) Option {
	return func(c *Controller) { c.onAction = h }
}

// WithReservedKey sets the key whose press is flagged as handled for the
// host, so that the host skips its own action for it. Default KeyEscape.
func WithReservedKey(k Key) Option {
	return func(c *Controller) { c.reservedKey = k }
}

// NewController creates a controller for a screen of the given size. Its
// main window covers the screen, is transparent and lets the pointer pass
// through to the host where it has no components.
func NewController(width, height float64, opts ...Option) *Controller {
	c := &Controller{
		style:       DefaultStyle(),
		logger:      defaultLogger,
		reservedKey: KeyEscape,
		mouseX:      -1,
		mouseY:      -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.measurer == nil {
		c.measurer = NewBasicMeasurer()
	}

	c.root = NewContainer(c, nil)
	c.root.root = true
	c.root.bg = color.Transparent

	c.main = NewWindow(c, NewBorderLayout(true))
	c.main.capturesMouse = false
	c.main.bg = color.Transparent
	c.root.Add(c.main, "")
	c.Resize(width, height)
	return c
}

func (c *Controller) Lock()   { c.mu.Lock() }
func (c *Controller) Unlock() { c.mu.Unlock() }

// Main returns the full-screen window at the bottom of the stack.
func (c *Controller) Main() *Window { return c.main }

// Style returns the controller's style. Changes apply from the next frame.
func (c *Controller) Style() *Style { return &c.style }

// Measurer returns the text measurer.
func (c *Controller) Measurer() Measurer { return c.measurer }

// Logger returns the controller's logger.
func (c *Controller) Logger() *slog.Logger { return c.logger }

// ScreenSize returns the size given to NewController or the last Resize.
func (c *Controller) ScreenSize() (w, h float64) { return c.width, c.height }

// Resize changes the screen size and forces a full relayout.
func (c *Controller) Resize(width, height float64) {
	c.width, c.height = width, height
	c.root.SetBounds(Rectangle{Width: width, Height: height})
	c.main.SetBounds(Rectangle{Width: width, Height: height})
	for _, w := range c.Windows() {
		if f, ok := w.(*Frame); ok {
			f.screenResized()
		}
	}
	c.root.InvalidateAll()
	c.hoverValid = false
}

// AddWindow inserts w into the window stack at index; -1 puts it on top.
func (c *Controller) AddWindow(w WindowNode, index int) {
	c.root.Insert(w, "", index)
	c.hoverValid = false
	c.logger.Debug("window added", "window", describe(w), "index", index)
}

// RemoveWindow takes w off the window stack.
func (c *Controller) RemoveWindow(w WindowNode) {
	if c.root.IndexOf(w) < 0 {
		return
	}
	c.root.Remove(w)
	c.hoverValid = false
	c.logger.Debug("window removed", "window", describe(w))
}

// HasWindow reports whether w is on the window stack.
func (c *Controller) HasWindow(w WindowNode) bool { return c.root.IndexOf(w) >= 0 }

// Windows returns the window stack, bottom first.
func (c *Controller) Windows() []WindowNode {
	out := make([]WindowNode, 0, c.root.Len())
	for _, comp := range c.root.children {
		if w, ok := comp.(WindowNode); ok {
			out = append(out, w)
		}
	}
	return out
}

// Time is the sum of all frame deltas passed to PreFrame, in seconds.
func (c *Controller) Time() float64 { return c.t }

// FrameDelta is the delta passed to the last PreFrame, in seconds.
func (c *Controller) FrameDelta() float64 { return c.dt }

// Pointer returns the last known pointer position.
func (c *Controller) Pointer() Point { return Point{X: c.mouseX, Y: c.mouseY} }

// Hovered returns the capturing component under the pointer, or nil.
func (c *Controller) Hovered() Component { return c.hovered }

// Captured returns the component that received the current press, or nil.
func (c *Controller) Captured() Component { return c.captured }

// FocusOwner returns the component with keyboard focus, or nil.
func (c *Controller) FocusOwner() Component { return c.focused }

// FocusedWindow returns the window containing the focus owner.
func (c *Controller) FocusedWindow() *Window {
	for comp := c.focused; comp != nil; {
		if w, ok := comp.(WindowNode); ok {
			return w.AsWindow()
		}
		p := comp.Core().parent
		if p == nil {
			break
		}
		comp = p.self
	}
	return nil
}

// ActiveWindow returns the frame containing the focus owner.
func (c *Controller) ActiveWindow() *Window {
	for comp := c.focused; comp != nil; {
		if f, ok := comp.(*Frame); ok {
			return f.AsWindow()
		}
		p := comp.Core().parent
		if p == nil {
			break
		}
		comp = p.self
	}
	return nil
}

// OverUI reports whether the pointer rests on a component that takes
// mouse input, or a press is in progress on one.
func (c *Controller) OverUI() bool { return c.hovered != nil || c.captured != nil }

// PreFrame records the frame delta and resolves the hovered component if
// pointer movement or tree changes made it stale.
func (c *Controller) PreFrame(dt float64) {
	c.dt = dt
	c.t += dt
	c.updateHover()
}

func (c *Controller) updateHover() {
	if c.hoverValid {
		return
	}
	c.root.Validate()
	hit := c.root.ComponentAt(c.mouseX, c.mouseY)
	for hit != nil && !hit.Core().capturesMouse {
		p := hit.Core().parent
		if p == nil {
			hit = nil
			break
		}
		hit = p.self
	}
	if hit != c.hovered {
		if ht, ok := c.hovered.(HoverTarget); ok {
			ht.MouseExited()
		}
		c.hovered = hit
		if ht, ok := hit.(HoverTarget); ok {
			ht.MouseEntered()
		}
		c.logger.Debug("hover changed", "component", describe(hit))
	}
	c.hoverValid = true
}

// Draw lays out what is invalid and draws the window stack, then the
// tooltip requested during this frame, if any.
func (c *Controller) Draw(s Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tooltip = nil
	c.root.Draw(s)
	if c.tooltip != nil {
		c.tooltip.Draw(s)
	}
}

// ShowToolTip asks for t to be drawn on top of everything this frame. The
// last request of a frame wins.
func (c *Controller) ShowToolTip(t *ToolTip) { c.tooltip = t }

// VisibleToolTip returns the tooltip drawn in the current frame, or nil.
func (c *Controller) VisibleToolTip() *ToolTip { return c.tooltip }

// RequestFocus moves keyboard focus to comp, or clears it for nil. A
// component that is not focusable, showing and enabled is refused.
func (c *Controller) RequestFocus(comp Component) {
	if comp != nil && !eligibleForFocus(comp) {
		return
	}
	if c.focused == comp {
		return
	}
	if ft, ok := c.focused.(FocusTarget); ok {
		ft.FocusLost()
	}
	c.focused = comp
	if ft, ok := comp.(FocusTarget); ok {
		ft.FocusGained()
	}
	c.logger.Debug("focus changed", "component", describe(comp))
}

// RegisterKeyEvents makes comp receive key events that the focus owner
// did not consume, for hot keys.
func (c *Controller) RegisterKeyEvents(comp Component) {
	if !slices.Contains(c.keyListeners, comp) {
		c.keyListeners = append(c.keyListeners, comp)
	}
}

func (c *Controller) UnregisterKeyEvents(comp Component) {
	if i := slices.Index(c.keyListeners, comp); i >= 0 {
		c.keyListeners = slices.Delete(c.keyListeners, i, i+1)
	}
}

// FireAction delivers ev to the nearest action handler, starting at its
// source and walking up the parents, then to the controller's handler.
func (c *Controller) FireAction(ev ActionEvent) {
	c.logger.Debug("action", "command", ev.Command, "source", describe(ev.Source))
	for comp := ev.Source; comp != nil; {
		b := comp.Core()
		if b.onAction != nil {
			b.onAction(ev)
			return
		}
		if b.parent == nil {
			break
		}
		comp = b.parent.self
	}
	if c.onAction != nil {
		c.onAction(ev)
	}
}

// dismissFragile removes the fragile windows not containing (x, y) and
// reports whether there were any.
func (c *Controller) dismissFragile(x, y float64) bool {
	dismissed := false
	for _, w := range c.Windows() {
		win := w.AsWindow()
		if win.fragile && win.valid && !win.Contains(x, y) {
			c.root.Remove(w)
			dismissed = true
			c.logger.Debug("fragile window dismissed", "window", describe(w))
		}
	}
	if dismissed {
		c.hoverValid = false
	}
	return dismissed
}

// HandleMouse routes a pointer event. Coordinates are screen pixels.
//
// A press goes to the hovered component, which then holds the capture
// until the release: it also receives every event in between, wherever
// the pointer is. The release completes a click unless it happens over a
// different component taking mouse input.
func (c *Controller) HandleMouse(e *MouseEvent) {
	switch e.Type {
	case MouseExited:
		c.mouseX, c.mouseY = -10000, -10000
	default:
		c.mouseX, c.mouseY = e.X, e.Y
	}

	switch e.Type {
	case MousePressed:
		c.captured = nil
		c.hoverValid = false
		c.updateHover()
		if c.dismissFragile(e.X, e.Y) {
			e.Consume()
		}
		if c.focused != nil && c.hovered == nil {
			c.RequestFocus(nil)
			e.Consume()
		}
	case MouseReleased:
		c.hoverValid = false
		c.updateHover()
		if c.captured != nil && c.hovered != nil && c.hovered != c.captured {
			c.captured.Core().cancelPress()
		}
	default:
		c.hoverValid = false
	}

	if !e.Consumed() {
		target := c.hovered
		if target != nil && target.Core().IsEnabled() {
			if e.Type == MousePressed {
				c.captured = target
			}
			target.HandleMouse(e)
		}
		if c.captured != nil && c.captured != target {
			c.captured.HandleMouse(e)
			e.Consume()
		}
	}
	if e.Type == MouseReleased {
		c.captured = nil
	}
}

// HandleKey routes a key event to the focus owner, then to the registered
// key listeners until one consumes it.
func (c *Controller) HandleKey(e *KeyEvent) {
	if c.focused != nil {
		c.focused.HandleKey(e)
	}
	for _, comp := range slices.Clone(c.keyListeners) {
		if e.Consumed() {
			break
		}
		if comp == c.focused || !comp.Core().IsEnabled() {
			continue
		}
		comp.HandleKey(e)
	}
	if e.Type == KeyPressed && e.Key == c.reservedKey && c.reservedKey != KeyUnknown {
		e.hostSuppressed = true
		c.logger.Debug("reserved key withheld from host", "key", e.Key)
	}
}
