package ui

import "slices"

// Container is a Component that holds an ordered list of children and an
// optional Layout. Child order is drawing order and focus order; the last
// child is the topmost for hit testing.
type Container struct {
	Base
	children []Component
	layout   Layout
}

// NewContainer returns a plain container using layout, which may be nil.
func NewContainer(ctl *Controller, layout Layout) *Container {
	c := &Container{}
	c.InitContainer(c, ctl, layout)
	return c
}

// InitContainer initialises an embedded Container whose outer wrapper is
// self. Containers default to zero margin and padding, take no focus and
// do not capture the mouse.
func (c *Container) InitContainer(self Component, ctl *Controller, layout Layout) {
	c.Init(self, ctl)
	c.margin = Spacing{}
	c.padding = Spacing{}
	c.focusable = false
	c.capturesMouse = false
	c.layout = layout
}

// Container returns c.
func (c *Container) AsContainer() *Container { return c }

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// At returns the i-th child.
func (c *Container) At(i int) Component { return c.children[i] }

// Children returns the children in order. The slice must not be modified.
func (c *Container) Children() []Component { return c.children }

// IndexOf returns the position of comp among the children, or -1.
func (c *Container) IndexOf(comp Component) int {
	return slices.Index(c.children, comp)
}

// Add appends comp with the given hint. See Insert.
func (c *Container) Add(comp Component, hint Hint) {
	c.Insert(comp, hint, -1)
}

// Insert places comp at index (-1 appends, out of range indices append),
// detaching it from its previous parent first.
func (c *Container) Insert(comp Component, hint Hint, index int) {
	cb := comp.Core()
	if cb.parent != nil {
		cb.parent.Remove(comp)
	}
	cb.parent = c
	cb.hint = hint
	if index < 0 || index > len(c.children) {
		c.children = append(c.children, comp)
	} else {
		c.children = slices.Insert(c.children, index, comp)
	}
	// the child may already be invalid, so the container is invalidated
	// directly as well
	comp.Invalidate()
	c.self.Invalidate()
}

// Remove detaches comp. Removing a component that is not a child is a no-op.
func (c *Container) Remove(comp Component) {
	i := c.IndexOf(comp)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	comp.Invalidate()
	c.self.Invalidate()
	cb := comp.Core()
	cb.parent = nil
	cb.hint = ""
}

// RemoveAt detaches the child at index; out of range indices are ignored.
func (c *Container) RemoveAt(index int) {
	if index < 0 || index >= len(c.children) {
		return
	}
	c.Remove(c.children[index])
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	for len(c.children) > 0 {
		c.Remove(c.children[0])
	}
}

// Layout returns the container's layout, or nil.
func (c *Container) Layout() Layout { return c.layout }

// SetLayout replaces the layout and invalidates the container.
func (c *Container) SetLayout(l Layout) {
	c.layout = l
	c.self.Invalidate()
}

// DoLayout lets the layout assign bounds to the children.
func (c *Container) DoLayout() {
	if c.layout != nil {
		c.layout.ArrangeChildren(c)
	}
}

// Validate lays out the children and validates the visible ones. It is a
// no-op on a valid container.
func (c *Container) Validate() {
	if c.valid {
		return
	}
	c.self.DoLayout()
	for _, child := range c.children {
		if child.Core().visible {
			child.Validate()
		}
	}
	c.valid = true
}

// InvalidateAll invalidates the container and its whole subtree.
func (c *Container) InvalidateAll() {
	c.valid = false
	c.self.Invalidate()
	// invalidating a child may detach windows from the stack
	for _, child := range slices.Clone(c.children) {
		if cn, ok := child.(ContainerNode); ok {
			cn.AsContainer().InvalidateAll()
		} else {
			child.Core().valid = false
			child.Invalidate()
		}
	}
}

func (c *Container) PreferredSize() Size {
	if c.layout != nil {
		return c.layout.PreferredSize(c)
	}
	return c.Base.PreferredSize()
}

func (c *Container) MinimumSize() Size {
	if c.layout != nil {
		return c.layout.MinimumSize(c)
	}
	return c.Base.MinimumSize()
}

func (c *Container) MaximumSize() Size {
	if c.layout != nil {
		return c.layout.MaximumSize(c)
	}
	return c.Base.MaximumSize()
}

// ComponentAt queries the children front-most first in the container's
// own coordinates, then falls back to the container itself.
func (c *Container) ComponentAt(x, y float64) Component {
	if !c.visible {
		return nil
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		if !child.Core().visible {
			continue
		}
		if hit := child.ComponentAt(x-c.bounds.X, y-c.bounds.Y); hit != nil {
			return hit
		}
	}
	return c.Base.ComponentAt(x, y)
}

func eligibleForFocus(comp Component) bool {
	b := comp.Core()
	return b.IsShowing() && b.IsEnabled() && b.IsFocusable()
}

// focusScope marks containers that keep focus traversal inside themselves.
type focusScope interface {
	focusScope()
}

// FocusableAfter returns the next component in focus order after comp,
// which is a child of c or c itself (then the search starts at the first
// child). Traversal wraps inside windows.
func (c *Container) FocusableAfter(comp Component) Component {
	index := c.IndexOf(comp)
	for _, child := range c.children[index+1:] {
		if cand := firstIn(child); cand != nil {
			return cand
		}
	}
	if _, ok := c.self.(focusScope); ok {
		return c.FirstFocusable()
	}
	if c.parent != nil {
		return c.parent.FocusableAfter(c.self)
	}
	return nil
}

// FocusableBefore returns the previous component in focus order before
// comp. A container precedes its own children.
func (c *Container) FocusableBefore(comp Component) Component {
	index := c.IndexOf(comp)
	end := index
	if end < 0 {
		end = len(c.children)
	}
	for i := end - 1; i >= 0; i-- {
		if cand := lastIn(c.children[i]); cand != nil {
			return cand
		}
	}
	if index != -1 && eligibleForFocus(c.self) {
		return c.self
	}
	if _, ok := c.self.(focusScope); ok {
		return c.LastFocusable()
	}
	if c.parent != nil {
		return c.parent.FocusableBefore(c.self)
	}
	return nil
}

// FirstFocusable returns the first eligible component in pre-order,
// starting with c itself.
func (c *Container) FirstFocusable() Component {
	if eligibleForFocus(c.self) {
		return c.self
	}
	for _, child := range c.children {
		if cand := firstIn(child); cand != nil {
			return cand
		}
	}
	return nil
}

// LastFocusable returns the last eligible component in pre-order.
func (c *Container) LastFocusable() Component {
	for i := len(c.children) - 1; i >= 0; i-- {
		if cand := lastIn(c.children[i]); cand != nil {
			return cand
		}
	}
	if eligibleForFocus(c.self) {
		return c.self
	}
	return nil
}

func firstIn(comp Component) Component {
	if cn, ok := comp.(ContainerNode); ok {
		return cn.AsContainer().FirstFocusable()
	}
	if eligibleForFocus(comp) {
		return comp
	}
	return nil
}

func lastIn(comp Component) Component {
	if cn, ok := comp.(ContainerNode); ok {
		return cn.AsContainer().LastFocusable()
	}
	if eligibleForFocus(comp) {
		return comp
	}
	return nil
}

// Draw validates the container if needed, then paints its box, its
// visible children in order, and its border on top.
func (c *Container) Draw(s Surface) {
	if !c.valid {
		c.self.Validate()
	}
	c.DrawBackground(s)
	s.Translate(c.bounds.X, c.bounds.Y)
	for _, child := range c.children {
		if child.Core().visible {
			child.Draw(s)
		}
	}
	s.Translate(-c.bounds.X, -c.bounds.Y)
	c.DrawBorder(s)
	if c.tooltip != nil {
		c.tooltip.update()
	}
}
