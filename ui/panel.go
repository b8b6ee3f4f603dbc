package ui

// Panel is a plain container for grouping components inside a window.
type Panel struct {
	Container
}

// NewPanel returns a panel with the given layout, or a left-aligned
// FlowLayout when layout is nil.
func NewPanel(ctl *Controller, layout Layout) *Panel {
	if layout == nil {
		layout = NewFlowLayout(AlignLeft)
	}
	p := &Panel{}
	p.InitContainer(p, ctl, layout)
	return p
}

// NewCompactGroup returns a panel fusing comps into one rounded row. Each
// child keeps its hint, so Stretch children share the spare width, and
// gets addPadding of extra vertical padding.
func NewCompactGroup(ctl *Controller, addPadding float64, comps ...Component) *Panel {
	p := NewPanel(ctl, NewCompactGroupLayout(addPadding))
	p.capturesMouse = true
	p.margin = Pad(1, 3)
	for _, c := range comps {
		p.Add(c, c.Core().Hint())
	}
	return p
}
