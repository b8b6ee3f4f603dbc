package ui

// CompactGroupLayout fuses a row of children into one rounded cluster.
// It restyles the children itself: margins are removed, the padding is
// made uniform and only the outer corners of the first and last child are
// rounded. Children hinted Stretch share any width beyond the sum of the
// preferred widths.
type CompactGroupLayout struct {
	AddPadding float64 // extra vertical padding given to every child
}

func NewCompactGroupLayout(addPadding float64) *CompactGroupLayout {
	return &CompactGroupLayout{AddPadding: addPadding}
}

// style writes the group styling straight into the fields, so that it
// does not invalidate the components it runs on during validation.
func (l *CompactGroupLayout) style(target *Container) {
	const r = 8
	target.padding = Spacing{}
	target.bg = target.style().CompactGroupBackground
	var first, last *Base
	for _, c := range visibleChildren(target) {
		b := c.Core()
		if first == nil {
			first = b
		}
		b.margin = Spacing{}
		b.padding = Pad(l.AddPadding, 5)
		b.radii = CornerRadii{}
		last = b
	}
	if first == nil {
		return
	}
	first.padding.Left += 5
	first.radii.TopLeft, first.radii.BottomLeft = r, r
	last.padding.Right += 5
	last.radii.TopRight, last.radii.BottomRight = r, r
	target.radii = Radius(5)
}

func (l *CompactGroupLayout) PreferredSize(target *Container) Size {
	return l.MinimumSize(target)
}

// MinimumSize is the sum of the children's preferred widths by the tallest
// preferred height.
func (l *CompactGroupLayout) MinimumSize(target *Container) Size {
	l.style(target)
	var s Size
	for _, c := range visibleChildren(target) {
		d := c.PreferredSize()
		s.Width += d.Width
		s.Height = max(s.Height, d.Height)
	}
	return s
}

func (l *CompactGroupLayout) MaximumSize(target *Container) Size { return UnboundedSize() }

// ArrangeChildren places the children side by side at full height. A
// child that would extend past the right edge is clipped to it.
func (l *CompactGroupLayout) ArrangeChildren(target *Container) {
	l.style(target)
	children := visibleChildren(target)
	var prefWidth, stretchCount float64
	for _, c := range children {
		prefWidth += c.PreferredSize().Width
		if c.Core().hint == Stretch {
			stretchCount++
		}
	}
	width, height := target.bounds.Width, target.bounds.Height
	var addToStretch float64
	if stretchCount > 0 {
		addToStretch = (width - prefWidth) / stretchCount
	}
	var left float64
	for _, c := range children {
		w := c.PreferredSize().Width
		if c.Core().hint == Stretch {
			w = max(0, w+addToStretch)
		}
		w = max(0, min(w, width-left))
		c.Core().SetBounds(Rectangle{X: left, Width: w, Height: height})
		left += w
	}
}
