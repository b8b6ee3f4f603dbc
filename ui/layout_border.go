package ui

// BorderLayout arranges up to one Center child and any number of edge
// children (North, South, East, West), stacked from the container's
// edges inward in child order.
//
// A child with no hint, or a hint BorderLayout does not know, is a Center
// candidate; only the first visible candidate is placed.
type BorderLayout struct {
	stretchCenter bool
}

// NewBorderLayout returns a BorderLayout. With stretchCenter the Center
// child fills the space left by the edges; otherwise it keeps its
// preferred size and is centred in that space.
func NewBorderLayout(stretchCenter bool) *BorderLayout {
	return &BorderLayout{stretchCenter: stretchCenter}
}

func borderEdge(h Hint) Hint {
	switch h {
	case North, South, East, West:
		return h
	}
	return Center
}

// splitBorder returns the visible Center child (or nil) and the visible
// edge children in order. Extra Center candidates are dropped.
func splitBorder(target *Container) (center Component, edges []Component) {
	for _, c := range visibleChildren(target) {
		if borderEdge(c.Core().hint) == Center {
			if center == nil {
				center = c
			}
			continue
		}
		edges = append(edges, c)
	}
	return center, edges
}

// PreferredSize accumulates the height of North/South children and the
// width of East/West children, each with the spacing owed towards the
// previous child on that edge, and tracks how far the other axis has to
// extend to fit each of them.
func (l *BorderLayout) PreferredSize(target *Container) Size {
	var width, height, addWidth, addHeight float64
	s := target.padding
	center, edges := splitBorder(target)
	for _, c := range edges {
		d := c.PreferredSize()
		m := c.Core().margin
		switch c.Core().hint {
		case North, South:
			var h float64
			if c.Core().hint == North {
				h = d.Height + max(s.Top, m.Top)
				s.Top = m.Bottom
			} else {
				h = d.Height + max(s.Bottom, m.Bottom)
				s.Bottom = m.Top
			}
			height += h
			addHeight = max(0, addHeight-h)
			addWidth = max(addWidth, d.Width+max(s.Left, m.Left)+max(s.Right, m.Right))
		case East, West:
			var w float64
			if c.Core().hint == East {
				w = d.Width + max(s.Right, m.Right)
				s.Right = m.Left
			} else {
				w = d.Width + max(s.Left, m.Left)
				s.Left = m.Right
			}
			width += w
			addWidth = max(0, addWidth-w)
			addHeight = max(addHeight, d.Height+max(s.Top, m.Top)+max(s.Bottom, m.Bottom))
		}
	}
	if center != nil {
		d := center.PreferredSize()
		m := center.Core().margin
		d.Width += max(s.Left, m.Left) + max(s.Right, m.Right)
		d.Height += max(s.Top, m.Top) + max(s.Bottom, m.Bottom)
		addWidth = max(addWidth, d.Width)
		addHeight = max(addHeight, d.Height)
	} else if len(edges) > 0 {
		// nothing fills the middle, so the padding on the far side of the
		// last edge child has to be paid as well
		p := target.padding
		switch edges[len(edges)-1].Core().hint {
		case North:
			h := max(s.Top, p.Bottom)
			height += h
			addHeight = max(0, addHeight-h)
		case South:
			h := max(s.Bottom, p.Top)
			height += h
			addHeight = max(0, addHeight-h)
		case East:
			w := max(s.Right, p.Left)
			width += w
			addWidth = max(0, addWidth-w)
		case West:
			w := max(s.Left, p.Right)
			width += w
			addWidth = max(0, addWidth-w)
		}
	}
	return Size{Width: width + addWidth, Height: height + addHeight}
}

// MinimumSize is PreferredSize with minimum sizes and no spacing.
func (l *BorderLayout) MinimumSize(target *Container) Size {
	var width, height, addWidth, addHeight float64
	center, edges := splitBorder(target)
	for _, c := range edges {
		d := c.MinimumSize()
		switch c.Core().hint {
		case North, South:
			height += d.Height
			addHeight = max(0, addHeight-d.Height)
			addWidth = max(addWidth, d.Width)
		case East, West:
			width += d.Width
			addWidth = max(0, addWidth-d.Width)
			addHeight = max(addHeight, d.Height)
		}
	}
	if center != nil {
		d := center.MinimumSize()
		addWidth = max(addWidth, d.Width)
		addHeight = max(addHeight, d.Height)
	}
	return Size{Width: width + addWidth, Height: height + addHeight}
}

func (l *BorderLayout) MaximumSize(target *Container) Size { return UnboundedSize() }

// ArrangeChildren places the edge children against the walls built so far
// and gives the Center child what remains.
func (l *BorderLayout) ArrangeChildren(target *Container) {
	left, right := 0.0, target.bounds.Width
	top, bottom := 0.0, target.bounds.Height
	s := target.padding
	center, edges := splitBorder(target)
	for _, c := range edges {
		d := c.PreferredSize()
		m := c.Core().margin
		switch c.Core().hint {
		case North:
			top += max(s.Top, m.Top)
			cl := left + max(s.Left, m.Left)
			cr := right - max(s.Right, m.Right)
			c.Core().SetBounds(Rectangle{X: cl, Y: top, Width: max(0, cr-cl), Height: d.Height})
			top += d.Height
			s.Top = m.Bottom
		case South:
			bottom -= max(s.Bottom, m.Bottom)
			cl := left + max(s.Left, m.Left)
			cr := right - max(s.Right, m.Right)
			c.Core().SetBounds(Rectangle{X: cl, Y: bottom - d.Height, Width: max(0, cr-cl), Height: d.Height})
			bottom -= d.Height
			s.Bottom = m.Top
		case East:
			right -= max(s.Right, m.Right)
			ct := top + max(s.Top, m.Top)
			cb := bottom - max(s.Bottom, m.Bottom)
			c.Core().SetBounds(Rectangle{X: right - d.Width, Y: ct, Width: d.Width, Height: max(0, cb-ct)})
			right -= d.Width
			s.Right = m.Left
		case West:
			left += max(s.Left, m.Left)
			ct := top + max(s.Top, m.Top)
			cb := bottom - max(s.Bottom, m.Bottom)
			c.Core().SetBounds(Rectangle{X: left, Y: ct, Width: d.Width, Height: max(0, cb-ct)})
			left += d.Width
			s.Left = m.Right
		}
	}
	if center == nil {
		return
	}
	m := center.Core().margin
	r := Rectangle{
		X: left + max(s.Left, m.Left),
		Y: top + max(s.Top, m.Top),
	}
	r.Width = max(0, right-max(s.Right, m.Right)-r.X)
	r.Height = max(0, bottom-max(s.Bottom, m.Bottom)-r.Y)
	if !l.stretchCenter {
		d := center.PreferredSize()
		r.X += (r.Width - d.Width) / 2
		r.Y += (r.Height - d.Height) / 2
		r.Width, r.Height = d.Width, d.Height
	}
	center.Core().SetBounds(r)
}
