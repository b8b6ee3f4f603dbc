package ui

import "image/color"

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
//
// Concrete components embed Base (or Container, which embeds Base) and
// record themselves as the outer wrapper with Base.Init, so that default
// behaviour in Base dispatches to overridden methods.
type Component interface {
	// Core returns the embedded Base holding the shared geometry and state.
	Core() *Base

	MinimumSize() Size
	PreferredSize() Size
	MaximumSize() Size

	// DoLayout positions children. It is a no-op for leaves.
	DoLayout()
	Validate()
	Invalidate()

	// ComponentAt returns the deepest visible component at (x, y), given in
	// the coordinate space of this component's parent, or nil.
	ComponentAt(x, y float64) Component

	HandleMouse(e *MouseEvent)
	HandleKey(e *KeyEvent)

	Draw(s Surface)
}

// Clicker is implemented by components that react to a completed click:
// a press and a release delivered to the same component.
type Clicker interface {
	Clicked()
}

// HoverTarget is notified when a component becomes, or stops being, the
// hovered component. Base implements it.
type HoverTarget interface {
	MouseEntered()
	MouseExited()
}

// FocusTarget is notified about keyboard focus changes.
type FocusTarget interface {
	FocusGained()
	FocusLost()
}

// ContainerNode is implemented by every component that embeds Container.
type ContainerNode interface {
	Component
	AsContainer() *Container
}

type mouseState uint8

const (
	mouseOver mouseState = 1 << iota
	mouseDown
)

// Base is the state shared by all components.
type Base struct {
	self   Component
	ctl    *Controller
	parent *Container
	hint   Hint

	valid     bool
	visible   bool
	enabled   bool
	focusable bool
	root      bool // the controller's root container is always showing

	bounds  Rectangle
	margin  Spacing
	padding Spacing
	border  Spacing
	radii   CornerRadii

	font        *Font
	fg, bg, bdc color.Color

	capturesMouse bool
	clickable     bool
	mouseState    mouseState

	contextMenu *PopupMenu
	tooltip     *ToolTip
	onAction    ActionHandler
}

// Init records self as the outer component wrapping b and applies the
// defaults: visible, enabled, focusable, capturing the mouse, margin 1/3,
// padding 0/10 and corner radius 8. ctl may be nil for components used
// outside a controller, in which case focus and actions are unavailable.
func (b *Base) Init(self Component, ctl *Controller) {
	if self == nil {
		panic("ui: Base.Init called with nil self")
	}
	b.self = self
	b.ctl = ctl
	b.visible = true
	b.enabled = true
	b.focusable = true
	b.capturesMouse = true
	b.margin = Pad(1, 3)
	b.padding = Pad(0, 10)
	b.radii = Radius(8)
}

// Core returns b.
func (b *Base) Core() *Base { return b }

// Self returns the outer component wrapping b.
func (b *Base) Self() Component { return b.self }

// Controller returns the controller the component was created for.
func (b *Base) Controller() *Controller { return b.ctl }

// Parent returns the container holding the component, or nil.
func (b *Base) Parent() *Container { return b.parent }

// Hint returns the layout hint given when the component was added.
func (b *Base) Hint() Hint { return b.hint }

// SetHint changes the layout hint and invalidates the component.
func (b *Base) SetHint(h Hint) {
	b.hint = h
	b.self.Invalidate()
}

func (b *Base) IsValid() bool   { return b.valid }
func (b *Base) IsVisible() bool { return b.visible }

// IsShowing reports whether the component is visible and attached to a
// showing parent.
func (b *Base) IsShowing() bool {
	if b.root {
		return true
	}
	return b.visible && b.parent != nil && b.parent.IsShowing()
}

// IsEnabled reports whether the component and all of its ancestors are
// enabled.
func (b *Base) IsEnabled() bool {
	return b.enabled && (b.parent == nil || b.parent.IsEnabled())
}

func (b *Base) IsFocusable() bool { return b.focusable }

// IsFocusOwner reports whether the component holds keyboard focus.
func (b *Base) IsFocusOwner() bool {
	return b.ctl != nil && b.ctl.focused == b.self
}

func (b *Base) SetEnabled(v bool)   { b.enabled = v }
func (b *Base) SetFocusable(v bool) { b.focusable = v }

// SetVisible shows or hides the component. Changing the flag invalidates
// the parent, since hidden components take no part in layout.
func (b *Base) SetVisible(v bool) {
	if b.visible == v {
		return
	}
	b.visible = v
	if b.parent != nil {
		b.parent.self.Invalidate()
	}
}

func (b *Base) SetVisibleAndEnabled(v bool) {
	b.SetVisible(v)
	b.SetEnabled(v)
}

// CapturesMouse reports whether the component takes part in hover and
// click routing. Non-capturing components are transparent to the pointer:
// the router walks up to the nearest capturing ancestor.
func (b *Base) CapturesMouse() bool     { return b.capturesMouse }
func (b *Base) SetCapturesMouse(v bool) { b.capturesMouse = v }
func (b *Base) Clickable() bool         { return b.clickable }
func (b *Base) SetClickable(v bool)     { b.clickable = v }

// Pressed reports whether a press on the component is waiting for its release.
func (b *Base) Pressed() bool { return b.mouseState&mouseDown != 0 }

// Hovered reports whether the pointer rests on the component.
func (b *Base) Hovered() bool { return b.mouseState&mouseOver != 0 }

func (b *Base) cancelPress() { b.mouseState &^= mouseDown }

// RequestFocus asks the controller for keyboard focus.
func (b *Base) RequestFocus() {
	if b.ctl != nil {
		b.ctl.RequestFocus(b.self)
	}
}

// TransferFocus moves focus to the next component in traversal order.
func (b *Base) TransferFocus() {
	if b.ctl == nil {
		return
	}
	if cn, ok := b.self.(ContainerNode); ok {
		b.ctl.RequestFocus(cn.AsContainer().FocusableAfter(b.self))
	} else if b.parent != nil {
		b.ctl.RequestFocus(b.parent.FocusableAfter(b.self))
	}
}

// TransferFocusBackward moves focus to the previous component in traversal order.
func (b *Base) TransferFocusBackward() {
	if b.ctl == nil {
		return
	}
	if cn, ok := b.self.(ContainerNode); ok {
		b.ctl.RequestFocus(cn.AsContainer().FocusableBefore(b.self))
	} else if b.parent != nil {
		b.ctl.RequestFocus(b.parent.FocusableBefore(b.self))
	}
}

func (b *Base) style() *Style {
	if b.ctl != nil {
		return &b.ctl.style
	}
	st := DefaultStyle()
	return &st
}

func (b *Base) measurer() Measurer {
	if b.ctl != nil {
		return b.ctl.measurer
	}
	return NewBasicMeasurer()
}

// Font returns the component's font, falling back to the style's.
func (b *Base) Font() Font {
	if b.font != nil {
		return *b.font
	}
	return b.style().Font
}

// SetFont overrides the font and invalidates the component.
func (b *Base) SetFont(f Font) {
	b.font = &f
	b.self.Invalidate()
}

// ForegroundColor returns the text colour; disabled components are faded.
func (b *Base) ForegroundColor() color.Color {
	c := b.fg
	if c == nil {
		if fs, ok := b.self.(foregroundStyler); ok {
			c = fs.defaultForeground(b.style())
		} else {
			c = b.style().Foreground
		}
	}
	if !b.IsEnabled() {
		return withAlpha(c, .25)
	}
	return c
}

// BackgroundColor returns the fill colour; disabled components have none.
func (b *Base) BackgroundColor() color.Color {
	c := b.bg
	if c == nil {
		if bs, ok := b.self.(backgroundStyler); ok {
			c = bs.defaultBackground(b.style())
		} else {
			c = b.style().Background
		}
	}
	if !b.IsEnabled() {
		return color.Transparent
	}
	return c
}

// BorderColor returns the stroke colour of the component's border.
func (b *Base) BorderColor() color.Color {
	if b.bdc != nil {
		return b.bdc
	}
	if b.ctl != nil && b.parent != nil && b.parent.self == Component(b.ctl.main) {
		return b.style().MainBorder
	}
	return b.style().Border
}

// SetForegroundColor overrides the text colour; nil restores the style's.
func (b *Base) SetForegroundColor(c color.Color) { b.fg = c }

// SetBackgroundColor overrides the fill colour; nil restores the style's.
func (b *Base) SetBackgroundColor(c color.Color) { b.bg = c }

// SetBorderColor overrides the border colour; nil restores the style's.
func (b *Base) SetBorderColor(c color.Color) { b.bdc = c }

// Bounds returns the component's box relative to its parent's origin.
func (b *Base) Bounds() Rectangle { return b.bounds }

// SetBounds places the component. It does not invalidate: it is the
// layout's way of assigning the result of a validation.
func (b *Base) SetBounds(r Rectangle) { b.bounds = r }

func (b *Base) Location() Point { return b.bounds.Location() }

func (b *Base) SetLocation(x, y float64) {
	b.bounds.X = x
	b.bounds.Y = y
}

func (b *Base) Size() Size { return b.bounds.Size() }

func (b *Base) SetSize(w, h float64) {
	b.bounds.Width = w
	b.bounds.Height = h
}

func (b *Base) X() float64      { return b.bounds.X }
func (b *Base) Y() float64      { return b.bounds.Y }
func (b *Base) Width() float64  { return b.bounds.Width }
func (b *Base) Height() float64 { return b.bounds.Height }

// LocationOnScreen returns the component's top-left corner in screen
// coordinates.
func (b *Base) LocationOnScreen() Point {
	p := b.bounds.Location()
	if b.parent != nil {
		pp := b.parent.LocationOnScreen()
		p.X += pp.X
		p.Y += pp.Y
	}
	return p
}

func (b *Base) Margin() Spacing  { return b.margin }
func (b *Base) Padding() Spacing { return b.padding }
func (b *Base) Border() Spacing  { return b.border }

func (b *Base) SetMargin(s Spacing) {
	b.margin = s
	b.self.Invalidate()
}

func (b *Base) SetPadding(s Spacing) {
	b.padding = s
	b.self.Invalidate()
}

func (b *Base) SetBorder(s Spacing) {
	b.border = s
	b.self.Invalidate()
}

func (b *Base) CornerRadii() CornerRadii     { return b.radii }
func (b *Base) SetCornerRadii(c CornerRadii) { b.radii = c }

// ContextMenu returns the menu shown on the popup trigger, or nil.
func (b *Base) ContextMenu() *PopupMenu     { return b.contextMenu }
func (b *Base) SetContextMenu(m *PopupMenu) { b.contextMenu = m }

// ToolTip returns the tooltip anchored to the component, or nil.
func (b *Base) ToolTip() *ToolTip     { return b.tooltip }
func (b *Base) SetToolTip(t *ToolTip) { b.tooltip = t }

// SetToolTipText anchors a new text tooltip to the component.
func (b *Base) SetToolTipText(s string) {
	b.tooltip = NewToolTip(b.self, s)
}

// SetActionHandler registers the handler receiving action events fired
// by this component or bubbling up from its descendants.
func (b *Base) SetActionHandler(h ActionHandler) { b.onAction = h }
func (b *Base) ActionHandler() ActionHandler     { return b.onAction }

// MinimumSize is the intrinsic content size; zero for the base component.
func (b *Base) MinimumSize() Size { return Size{} }

// PreferredSize is the minimum size plus padding.
func (b *Base) PreferredSize() Size {
	d := b.self.MinimumSize()
	d.Width += b.padding.Left + b.padding.Right
	d.Height += b.padding.Top + b.padding.Bottom
	return d
}

func (b *Base) MaximumSize() Size { return UnboundedSize() }

func (b *Base) DoLayout() {}

// Validate runs the component's layout and marks it valid.
func (b *Base) Validate() {
	b.self.DoLayout()
	b.valid = true
}

// Invalidate marks the component as needing layout, together with its
// tooltip and every ancestor. Propagation stops at an ancestor that is
// already invalid: a valid container only ever holds valid visible
// children, so everything above it is invalid too.
func (b *Base) Invalidate() {
	b.valid = false
	if b.tooltip != nil {
		b.tooltip.Invalidate()
	}
	if p := b.parent; p != nil && p.valid {
		p.self.Invalidate()
	}
}

// Contains reports whether (x, y), in parent coordinates, is inside the box.
func (b *Base) Contains(x, y float64) bool { return b.bounds.Contains(x, y) }

func (b *Base) ComponentAt(x, y float64) Component {
	if b.visible && b.Contains(x, y) {
		return b.self
	}
	return nil
}

// HandleKey moves focus on Tab and Shift+Tab when the component owns focus.
func (b *Base) HandleKey(e *KeyEvent) {
	if !b.IsFocusOwner() {
		return
	}
	if (e.Type == KeyPressed && e.Key == KeyTab) || (e.Type == KeyTyped && e.Char == '\t') {
		if e.Type == KeyPressed {
			if e.Modifiers.Shift() {
				b.TransferFocusBackward()
			} else {
				b.TransferFocus()
			}
		}
		e.Consume()
	}
}

// HandleMouse opens the context menu on the popup trigger and otherwise
// tracks press and release, calling Clicked on a completed click.
func (b *Base) HandleMouse(e *MouseEvent) {
	if b.contextMenu != nil && e.PopupTrigger && e.Type == MousePressed {
		b.contextMenu.Show(e.X, e.Y)
		e.Consume()
		return
	}
	switch e.Type {
	case MousePressed:
		if b.clickable {
			b.mouseState |= mouseDown
		}
	case MouseReleased:
		if b.mouseState&mouseDown != 0 {
			b.mouseState &^= mouseDown
			if c, ok := b.self.(Clicker); ok {
				c.Clicked()
			}
		}
	}
	e.Consume()
}

// MouseEntered is called by the controller when the component becomes the
// hovered component. While another component holds the press capture the
// hover highlight is suppressed.
func (b *Base) MouseEntered() {
	if b.ctl == nil || b.ctl.captured == nil || b.ctl.captured == b.self {
		b.mouseState |= mouseOver
	}
}

// MouseExited is called by the controller when the pointer leaves.
func (b *Base) MouseExited() { b.mouseState &^= mouseOver }

// DrawBackground fills the component's box. Clickable components are only
// filled while hovered or pressed.
func (b *Base) DrawBackground(s Surface) {
	if b.bounds.Width == 0 || b.bounds.Height == 0 {
		return
	}
	bg := b.BackgroundColor()
	if b.clickable && b.IsEnabled() {
		switch {
		case b.mouseState&mouseDown != 0:
		case b.mouseState&mouseOver != 0:
			bg = withAlpha(bg, .5)
		default:
			bg = withAlpha(bg, 0)
		}
	}
	if transparent(bg) {
		return
	}
	s.FillRect(b.bounds, b.radii, bg)
}

// borderStyler lets a component kind override its border width and colour.
type borderStyler interface {
	borderOverride(st *Style) (width float64, clr color.Color, ok bool)
}

// DrawBorder strokes the component's border. The focus owner is outlined
// with the style's focus colour.
func (b *Base) DrawBorder(s Surface) {
	if b.bounds.Width == 0 || b.bounds.Height == 0 {
		return
	}
	st := b.style()
	bc := b.BorderColor()
	bw := b.border.Uniform()
	if b.IsFocusOwner() {
		bw, bc = 1, st.FocusBorder
	}
	if bs, ok := b.self.(borderStyler); ok {
		if w, c, ok := bs.borderOverride(st); ok {
			bw, bc = w, c
		}
	}
	if b.contextMenu != nil && b.contextMenu.IsShowing() {
		bw = 2
	}
	if transparent(bc) || bw == 0 {
		return
	}
	if bw > 0 {
		s.StrokeRect(b.bounds, b.radii, bw, bc)
		return
	}
	r := b.bounds
	if b.border.Top > 0 {
		s.StrokeLine(r.X, r.Y, r.X+r.Width, r.Y, b.border.Top, bc)
	}
	if b.border.Right > 0 {
		s.StrokeLine(r.X+r.Width, r.Y, r.X+r.Width, r.Y+r.Height, b.border.Right, bc)
	}
	if b.border.Bottom > 0 {
		s.StrokeLine(r.X, r.Y+r.Height, r.X+r.Width, r.Y+r.Height, b.border.Bottom, bc)
	}
	if b.border.Left > 0 {
		s.StrokeLine(r.X, r.Y, r.X, r.Y+r.Height, b.border.Left, bc)
	}
}

// Draw validates the component if needed and paints its box. Widgets
// call it first and then draw their content on top.
func (b *Base) Draw(s Surface) {
	if !b.valid {
		b.self.Validate()
	}
	b.DrawBackground(s)
	b.DrawBorder(s)
	if b.tooltip != nil {
		b.tooltip.update()
	}
}
