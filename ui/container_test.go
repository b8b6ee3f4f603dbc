package ui

import "testing"

func TestComponentAt(t *testing.T) {
	ctl := newTestController()
	inner := NewContainer(ctl, manualLayout{})
	inner.SetBounds(Rectangle{X: 50, Y: 50, Width: 100, Height: 100})
	deep := place(newBox(ctl, 20, 20), 10, 10).(*box)
	inner.Add(deep, "")

	under := place(newBox(ctl, 40, 40), 0, 0).(*box)
	over := place(newBox(ctl, 40, 40), 20, 20).(*box)
	hidden := place(newBox(ctl, 40, 40), 200, 0).(*box)
	hidden.SetVisible(false)
	w := addWindow(ctl, Rectangle{X: 100, Y: 100, Width: 300, Height: 300}, under, over, inner, hidden)
	ctl.PreFrame(0)

	tests := []struct {
		name string
		x, y float64
		want Component
	}{
		{"last child is topmost", 130, 130, over},
		{"lower child where not covered", 105, 105, under},
		{"nested child", 165, 165, deep},
		{"nested container background", 240, 240, inner},
		{"window background", 390, 390, w},
		{"hidden child", 310, 110, w},
		{"main window", 10, 10, ctl.Main()},
		{"outside the screen", -5, -5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctl.root.ComponentAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ComponentAt(%v, %v) = %s; want %s", tt.x, tt.y, describe(got), describe(tt.want))
			}
		})
	}
}

func TestInsertDetachesFromPreviousParent(t *testing.T) {
	ctl := newTestController()
	a := NewContainer(ctl, nil)
	b := NewContainer(ctl, nil)
	x := newBox(ctl, 1, 1)
	a.Add(x, North)
	b.Insert(x, South, 0)
	if a.Len() != 0 {
		t.Errorf("old parent still holds %d children", a.Len())
	}
	if x.Parent() != b || x.Hint() != South {
		t.Errorf("parent %p hint %q; want %p %q", x.Parent(), x.Hint(), b, South)
	}
	b.Remove(x)
	if x.Parent() != nil || x.Hint() != "" {
		t.Errorf("removed child keeps parent %p hint %q", x.Parent(), x.Hint())
	}
	b.Remove(x) // no-op
}

func TestInvalidatePropagation(t *testing.T) {
	ctl := newTestController()
	panel := NewPanel(ctl, nil)
	x := newBox(ctl, 10, 10)
	panel.Add(x, "")
	w := addWindow(ctl, Rectangle{Width: 100, Height: 100}, panel)
	ctl.PreFrame(0)
	if !x.IsValid() || !panel.IsValid() || !w.IsValid() || !ctl.root.IsValid() {
		t.Fatal("tree not valid after PreFrame")
	}

	x.Invalidate()
	for _, c := range []Component{x, panel, w, ctl.root} {
		if c.Core().IsValid() {
			t.Errorf("%s still valid", describe(c))
		}
	}
	if !ctl.Main().IsValid() {
		t.Error("sibling window invalidated")
	}

	ctl.Draw(&recordingSurface{})
	if !x.IsValid() || !ctl.root.IsValid() {
		t.Error("not revalidated")
	}
}

func TestFocusTraversalWrapsInWindow(t *testing.T) {
	ctl := newTestController()
	x, y, z := newBox(ctl, 10, 10), newBox(ctl, 10, 10), newBox(ctl, 10, 10)
	off := newBox(ctl, 10, 10)
	off.SetFocusable(false)
	nested := NewPanel(ctl, nil)
	nested.Add(y, "")
	nested.Add(off, "")
	hidden := newBox(ctl, 10, 10)
	hidden.SetVisible(false)
	addWindow(ctl, Rectangle{Width: 100, Height: 100}, x, hidden, nested, z)
	other := newBox(ctl, 10, 10)
	addWindow(ctl, Rectangle{X: 200, Width: 100, Height: 100}, other)

	tests := []struct {
		name    string
		from    Component
		forward bool
		want    Component
	}{
		{"into nested panel", x, true, y},
		{"out of nested panel skipping unfocusable", y, true, z},
		{"wraps to first", z, true, x},
		{"backward wraps to last", x, false, z},
		{"backward into nested panel", z, false, y},
		{"backward skips hidden sibling", y, false, x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl.RequestFocus(tt.from)
			if tt.forward {
				key(ctl, KeyTab, 0)
			} else {
				key(ctl, KeyTab, ModShift)
			}
			if got := ctl.FocusOwner(); got != tt.want {
				t.Errorf("focus on %s; want %s", describe(got), describe(tt.want))
			}
		})
	}
}

func TestFirstAndLastFocusable(t *testing.T) {
	ctl := newTestController()
	a, b := newBox(ctl, 1, 1), newBox(ctl, 1, 1)
	w := addWindow(ctl, Rectangle{Width: 10, Height: 10}, a, b)
	if got := w.FirstFocusable(); got != a {
		t.Errorf("FirstFocusable = %s; want a", describe(got))
	}
	if got := w.LastFocusable(); got != b {
		t.Errorf("LastFocusable = %s; want b", describe(got))
	}
	b.SetEnabled(false)
	if got := w.LastFocusable(); got != a {
		t.Errorf("LastFocusable with b disabled = %s; want a", describe(got))
	}
}

func TestEmbeddersAreNodes(t *testing.T) {
	ctl := newTestController()
	tests := []struct {
		name       string
		comp       Component
		wantWindow bool
	}{
		{"panel", NewPanel(ctl, nil), false},
		{"window", NewWindow(ctl, nil), true},
		{"frame", NewFrame(ctl, "title", nil), true},
		{"popup menu", NewPopupMenu(ctl), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cn, ok := tt.comp.(ContainerNode)
			if !ok {
				t.Fatal("not a ContainerNode")
			}
			if cn.AsContainer().self != tt.comp {
				t.Error("AsContainer does not lead back to the component")
			}
			if _, ok := tt.comp.(WindowNode); ok != tt.wantWindow {
				t.Errorf("WindowNode: %v; want %v", ok, tt.wantWindow)
			}
		})
	}
}
