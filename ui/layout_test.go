package ui

import "testing"

func newTarget(ctl *Controller, l Layout, w, h float64, children ...Component) *Container {
	c := NewContainer(ctl, l)
	c.SetBounds(Rectangle{Width: w, Height: h})
	for _, child := range children {
		c.Add(child, child.Core().hint)
	}
	return c
}

func hinted(c Component, h Hint) Component {
	c.Core().hint = h
	return c
}

func TestBorderLayout(t *testing.T) {
	ctl := newTestController()
	n := newBox(ctl, 50, 10)
	s := newBox(ctl, 30, 20)
	w := newBox(ctl, 40, 30)
	c := newBox(ctl, 20, 20)
	target := newTarget(ctl, NewBorderLayout(true), 200, 100,
		hinted(n, North), hinted(s, South), hinted(w, West), hinted(c, Center))

	if got, want := target.PreferredSize(), (Size{Width: 60, Height: 60}); got != want {
		t.Errorf("PreferredSize = %+v; want %+v", got, want)
	}
	if got, want := target.MinimumSize(), (Size{Width: 60, Height: 60}); got != want {
		t.Errorf("MinimumSize = %+v; want %+v", got, want)
	}

	target.DoLayout()
	tests := []struct {
		name string
		comp *box
		want Rectangle
	}{
		{"north", n, Rectangle{X: 0, Y: 0, Width: 200, Height: 10}},
		{"south", s, Rectangle{X: 0, Y: 80, Width: 200, Height: 20}},
		{"west", w, Rectangle{X: 0, Y: 10, Width: 40, Height: 70}},
		{"center", c, Rectangle{X: 40, Y: 10, Width: 160, Height: 70}},
	}
	for _, tt := range tests {
		if got := tt.comp.Bounds(); got != tt.want {
			t.Errorf("%s: bounds %+v; want %+v", tt.name, got, tt.want)
		}
	}

	target.SetLayout(NewBorderLayout(false))
	target.DoLayout()
	if got, want := c.Bounds(), (Rectangle{X: 110, Y: 35, Width: 20, Height: 20}); got != want {
		t.Errorf("unstretched center: bounds %+v; want %+v", got, want)
	}
}

func TestBorderLayoutSpacing(t *testing.T) {
	ctl := newTestController()
	n := newBox(ctl, 50, 10)
	n.margin = Pad(3)
	c := newBox(ctl, 20, 20)
	c.margin = Pad(8)
	target := newTarget(ctl, NewBorderLayout(true), 100, 100, hinted(n, North), hinted(c, Center))
	target.padding = Pad(5)

	if got, want := target.PreferredSize(), (Size{Width: 60, Height: 51}); got != want {
		t.Errorf("PreferredSize = %+v; want %+v", got, want)
	}
	target.DoLayout()
	if got, want := n.Bounds(), (Rectangle{X: 5, Y: 5, Width: 90, Height: 10}); got != want {
		t.Errorf("north: bounds %+v; want %+v", got, want)
	}
	if got, want := c.Bounds(), (Rectangle{X: 8, Y: 23, Width: 84, Height: 69}); got != want {
		t.Errorf("center: bounds %+v; want %+v", got, want)
	}
}

func TestBorderLayoutWithoutCenter(t *testing.T) {
	ctl := newTestController()
	target := newTarget(ctl, NewBorderLayout(true), 100, 100, hinted(newBox(ctl, 50, 10), North))
	target.padding = Pad(5)
	if got, want := target.PreferredSize(), (Size{Width: 60, Height: 20}); got != want {
		t.Errorf("PreferredSize = %+v; want %+v", got, want)
	}
}

func TestBorderLayoutCenterCandidates(t *testing.T) {
	ctl := newTestController()
	first := newBox(ctl, 10, 10)
	second := newBox(ctl, 10, 10)
	target := newTarget(ctl, NewBorderLayout(true), 100, 100, hinted(first, "Middle"), hinted(second, ""))
	target.DoLayout()
	if got, want := first.Bounds(), (Rectangle{Width: 100, Height: 100}); got != want {
		t.Errorf("unknown hint: bounds %+v; want %+v", got, want)
	}
	if got := second.Bounds(); got != (Rectangle{}) {
		t.Errorf("second center candidate placed at %+v", got)
	}
}

func TestFlowLayout(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		want  []Point
	}{
		{"left", AlignLeft, []Point{{0, 0}, {40, 0}, {0, 10}}},
		{"center", AlignCenter, []Point{{10, 0}, {50, 0}, {30, 10}}},
		{"right", AlignRight, []Point{{20, 0}, {60, 0}, {60, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := newTestController()
			boxes := []Component{newBox(ctl, 40, 10), newBox(ctl, 40, 10), newBox(ctl, 40, 10)}
			target := newTarget(ctl, NewFlowLayout(tt.align), 100, 100, boxes...)
			target.DoLayout()
			for i, b := range boxes {
				if got := b.Core().Location(); got != tt.want[i] {
					t.Errorf("box %d at %+v; want %+v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestFlowLayoutCentresVertically(t *testing.T) {
	ctl := newTestController()
	short, tall := newBox(ctl, 40, 10), newBox(ctl, 40, 20)
	target := newTarget(ctl, NewFlowLayout(AlignLeft), 100, 100, short, tall)
	target.DoLayout()
	if got := short.Y(); got != 5 {
		t.Errorf("short box at y=%v; want 5", got)
	}
	if got := tall.Y(); got != 0 {
		t.Errorf("tall box at y=%v; want 0", got)
	}
}

func TestFlowLayoutMargins(t *testing.T) {
	ctl := newTestController()
	a, b := newBox(ctl, 40, 10), newBox(ctl, 40, 10)
	a.margin, b.margin = Pad(2), Pad(2)
	target := newTarget(ctl, NewFlowLayout(AlignLeft), 100, 100, a, b)
	if got, want := target.PreferredSize(), (Size{Width: 86, Height: 14}); got != want {
		t.Errorf("PreferredSize = %+v; want %+v", got, want)
	}
	target.DoLayout()
	if got, want := a.Location(), (Point{2, 2}); got != want {
		t.Errorf("a at %+v; want %+v", got, want)
	}
	if got, want := b.Location(), (Point{44, 2}); got != want {
		t.Errorf("b at %+v; want %+v", got, want)
	}
}

func TestCompactGroupLayout(t *testing.T) {
	ctl := newTestController()
	a, b, c := newBox(ctl, 40, 10), newBox(ctl, 40, 10), newBox(ctl, 40, 10)
	target := newTarget(ctl, NewCompactGroupLayout(0), 300, 30, a, hinted(b, Stretch), c)

	if got, want := target.PreferredSize(), (Size{Width: 160, Height: 10}); got != want {
		t.Errorf("PreferredSize = %+v; want %+v", got, want)
	}
	target.DoLayout()
	tests := []struct {
		name string
		comp *box
		want Rectangle
	}{
		{"first", a, Rectangle{X: 0, Width: 55, Height: 30}},
		{"stretched", b, Rectangle{X: 55, Width: 190, Height: 30}},
		{"last", c, Rectangle{X: 245, Width: 55, Height: 30}},
	}
	for _, tt := range tests {
		if got := tt.comp.Bounds(); got != tt.want {
			t.Errorf("%s: bounds %+v; want %+v", tt.name, got, tt.want)
		}
	}
	if a.radii.TopLeft != 8 || a.radii.TopRight != 0 || c.radii.BottomRight != 8 || b.radii != (CornerRadii{}) {
		t.Errorf("outer corners not rounded: %+v %+v %+v", a.radii, b.radii, c.radii)
	}
}

// Stretch children share the width beyond the preferred total: with
// preferred widths 50, 50 and 100 in a 300 wide group, the stretched
// child grows by 100.
func TestCompactGroupStretchShare(t *testing.T) {
	ctl := newTestController()
	// padding is restyled to 5 on each side, plus 5 on the outer edges
	a, s, c := newBox(ctl, 35, 10), newBox(ctl, 40, 10), newBox(ctl, 85, 10)
	target := newTarget(ctl, NewCompactGroupLayout(0), 300, 30, a, hinted(s, Stretch), c)
	target.DoLayout()
	if got := s.Width(); got != 150 {
		t.Errorf("stretched width %v; want 150", got)
	}
	if got := c.X() + c.Width(); got != 300 {
		t.Errorf("group ends at %v; want 300", got)
	}
}

func TestCompactGroupOverflow(t *testing.T) {
	ctl := newTestController()
	a, b, c := newBox(ctl, 40, 10), newBox(ctl, 40, 10), newBox(ctl, 40, 10)
	target := newTarget(ctl, NewCompactGroupLayout(0), 100, 30, a, b, c)
	target.DoLayout()
	if got := b.Width(); got != 45 {
		t.Errorf("clipped width %v; want 45", got)
	}
	if got := c.Width(); got != 0 {
		t.Errorf("overflowing width %v; want 0", got)
	}
}

func TestCompactGroupKeepsHints(t *testing.T) {
	ctl := newTestController()
	a, s := newBox(ctl, 40, 10), newBox(ctl, 40, 10)
	s.SetHint(Stretch)
	g := NewCompactGroup(ctl, 0, a, s)
	if s.Hint() != Stretch || a.Hint() != "" {
		t.Errorf("hints %q %q; want \"\" %q", a.Hint(), s.Hint(), Stretch)
	}
	if !g.CapturesMouse() {
		t.Error("compact group does not capture the mouse")
	}
}

func TestBorderLayoutTooSmall(t *testing.T) {
	ctl := newTestController()
	n := newBox(ctl, 40, 10)
	n.margin = Pad(3)
	w := newBox(ctl, 40, 10)
	c := newBox(ctl, 40, 10)
	target := newTarget(ctl, NewBorderLayout(true), 0, 0, hinted(n, North), hinted(w, West), hinted(c, Center))
	target.padding = Pad(5)
	target.DoLayout()
	for name, b := range map[string]*box{"north": n, "west": w, "center": c} {
		if r := b.Bounds(); r.Width < 0 || r.Height < 0 {
			t.Errorf("%s: bounds %+v; want no negative size", name, r)
		}
	}
}

func TestHiddenChildrenIgnoredBySizes(t *testing.T) {
	tests := []struct {
		name   string
		layout func() Layout
		hint   Hint
	}{
		{"border", func() Layout { return NewBorderLayout(true) }, East},
		{"flow", func() Layout { return NewFlowLayout(AlignLeft) }, ""},
		{"compact group", func() Layout { return NewCompactGroupLayout(0) }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := newTestController()
			want := newTarget(ctl, tt.layout(), 300, 300,
				hinted(newBox(ctl, 40, 10), North), newBox(ctl, 20, 10))

			hidden := newBox(ctl, 500, 500)
			hidden.SetVisible(false)
			got := newTarget(ctl, tt.layout(), 300, 300,
				hinted(newBox(ctl, 40, 10), North), hinted(hidden, tt.hint), newBox(ctl, 20, 10))

			if g, w := got.PreferredSize(), want.PreferredSize(); g != w {
				t.Errorf("PreferredSize = %+v; want %+v", g, w)
			}
			if g, w := got.MinimumSize(), want.MinimumSize(); g != w {
				t.Errorf("MinimumSize = %+v; want %+v", g, w)
			}
		})
	}
}

func TestFlowLayoutOversizedChildOwnRow(t *testing.T) {
	ctl := newTestController()
	a, wide, c := newBox(ctl, 40, 10), newBox(ctl, 150, 10), newBox(ctl, 40, 10)
	target := newTarget(ctl, NewFlowLayout(AlignLeft), 100, 100, a, wide, c)
	target.DoLayout()
	want := []Point{{0, 0}, {0, 10}, {0, 20}}
	for i, b := range []*box{a, wide, c} {
		if got := b.Location(); got != want[i] {
			t.Errorf("box %d at %+v; want %+v", i, got, want[i])
		}
	}
}
