package ui

// FlowLayout lays children out left to right at their preferred sizes,
// starting a new row when the next child would not fit. Children are
// centred vertically within their row.
type FlowLayout struct {
	Align Align
}

func NewFlowLayout(align Align) *FlowLayout {
	return &FlowLayout{Align: align}
}

// PreferredSize is the size of a single row holding every child, with the
// larger of neighbouring margins (or the container's padding) between them.
func (l *FlowLayout) PreferredSize(target *Container) Size {
	var width, height float64
	p := target.padding
	spacing := p.Left
	for _, c := range visibleChildren(target) {
		d := c.PreferredSize()
		m := c.Core().margin
		width += d.Width + max(spacing, m.Left)
		height = max(height, d.Height+max(m.Top, p.Top)+max(m.Bottom, p.Bottom))
		spacing = m.Right
	}
	width += max(spacing, p.Right)
	return Size{Width: width, Height: height}
}

// MinimumSize sums minimum widths on one row, without spacing.
func (l *FlowLayout) MinimumSize(target *Container) Size {
	var s Size
	for _, c := range visibleChildren(target) {
		d := c.MinimumSize()
		s.Width += d.Width
		s.Height = max(s.Height, d.Height)
	}
	return s
}

func (l *FlowLayout) MaximumSize(target *Container) Size { return UnboundedSize() }

type flowRow struct {
	items      []Component
	height     float64
	spacingTop float64
	right      float64 // right edge of the last item
	trailing   float64 // right margin of the last item
}

func (l *FlowLayout) ArrangeChildren(target *Container) {
	p := target.padding
	width := target.bounds.Width
	row := flowRow{spacingTop: p.Top}
	var top, spacingBottom float64
	spacingLeft := p.Left
	for _, c := range visibleChildren(target) {
		d := c.PreferredSize()
		m := c.Core().margin
		gap := max(spacingLeft, m.Left)
		if len(row.items) > 0 && row.right+gap+d.Width > width {
			l.alignRow(row, width, top, p.Right)
			top += row.spacingTop + row.height
			row = flowRow{spacingTop: spacingBottom}
			spacingBottom = 0
			gap = max(p.Left, m.Left)
		}
		x := row.right + gap
		row.spacingTop = max(row.spacingTop, m.Top)
		c.Core().SetBounds(Rectangle{X: x, Width: d.Width, Height: d.Height})
		row.items = append(row.items, c)
		row.right = x + d.Width
		row.trailing = m.Right
		row.height = max(row.height, d.Height)
		spacingBottom = max(spacingBottom, m.Bottom)
		spacingLeft = m.Right
	}
	if len(row.items) > 0 {
		l.alignRow(row, width, top, p.Right)
	}
}

// alignRow moves the row's items into their final vertical position and
// shifts them right according to the alignment.
func (l *FlowLayout) alignRow(row flowRow, width, top, padRight float64) {
	var dx float64
	excess := max(0, width-row.right-max(padRight, row.trailing))
	switch l.Align {
	case AlignCenter:
		dx = excess / 2
	case AlignRight:
		dx = excess
	}
	for _, c := range row.items {
		b := c.Core()
		b.SetLocation(b.bounds.X+dx, top+row.spacingTop+(row.height-b.bounds.Height)/2)
	}
}
