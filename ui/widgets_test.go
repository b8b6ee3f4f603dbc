package ui

import (
	"slices"
	"testing"
)

func TestLabelSize(t *testing.T) {
	ctl := newTestController()
	tests := []struct {
		text string
		want Size
	}{
		{"OK", Size{Width: 14, Height: 13}},
		{"one\nthree", Size{Width: 35, Height: 26}},
		{"  padded  ", Size{Width: 42, Height: 13}},
	}
	for _, tt := range tests {
		l := NewLabel(ctl, tt.text)
		if got := l.MinimumSize(); got != tt.want {
			t.Errorf("MinimumSize(%q) = %+v; want %+v", tt.text, got, tt.want)
		}
	}
	b := NewButton(ctl, "OK")
	if got, want := b.PreferredSize(), (Size{Width: 34, Height: 13}); got != want {
		t.Errorf("button PreferredSize = %+v; want %+v", got, want)
	}
}

func TestButtonClick(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	b := NewButton(ctl, "Save")
	b.SetActionCommand("save")
	place(b, 0, 0)
	addWindow(ctl, Rectangle{Width: 100, Height: 100}, b)
	ctl.PreFrame(0)
	click(ctl, 5, 5)
	if !slices.Equal(*cmds, []string{"save"}) {
		t.Errorf("commands %v; want [save]", *cmds)
	}
	b.SetEnabled(false)
	click(ctl, 5, 5)
	if len(*cmds) != 1 {
		t.Errorf("disabled button fired: %v", *cmds)
	}
}

func TestToggleButtonGroup(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	g := NewButtonGroup()
	a := NewToggleButton(ctl, "a", g)
	b := NewToggleButton(ctl, "b", g)
	if !a.IsSelected() || b.IsSelected() || g.Selected() != a {
		t.Fatal("first member not selected")
	}
	b.Clicked()
	if a.IsSelected() || !b.IsSelected() {
		t.Error("selection did not move to b")
	}
	b.Clicked()
	if !b.IsSelected() || len(*cmds) != 1 {
		t.Errorf("clicking the selection changed something: %v", *cmds)
	}

	solo := NewToggleButton(ctl, "solo", nil)
	solo.Clicked()
	solo.Clicked()
	if solo.IsSelected() {
		t.Error("ungrouped toggle did not toggle back")
	}
}

func TestCheckBoxSize(t *testing.T) {
	ctl := newTestController()
	c := NewCheckBox(ctl, "OK", nil)
	// box is 3/2 + 5 + 10 wide
	if got, want := c.MinimumSize(), (Size{Width: 30.5, Height: 13}); got != want {
		t.Errorf("MinimumSize = %+v; want %+v", got, want)
	}
}

func focusedField(t *testing.T) (*Controller, *TextField, *[]string) {
	t.Helper()
	ctl := newTestController()
	cmds := recordActions(ctl)
	f := NewTextField(ctl, "name")
	place(f, 0, 0)
	addWindow(ctl, Rectangle{Width: 400, Height: 100}, f)
	ctl.RequestFocus(f)
	if ctl.FocusOwner() != f {
		t.Fatal("field did not take focus")
	}
	return ctl, f, cmds
}

func TestTextFieldEditing(t *testing.T) {
	ctl, f, cmds := focusedField(t)
	typeText(ctl, "abc")
	key(ctl, KeyBackspace, 0)
	key(ctl, KeyLeft, 0)
	typeText(ctl, "x")
	if got := f.Text(); got != "axb" {
		t.Errorf("text %q; want %q", got, "axb")
	}
	if got := f.Caret(); got != 2 {
		t.Errorf("caret %d; want 2", got)
	}
	if len(*cmds) != 5 || (*cmds)[0] != "name##textChanged" {
		t.Errorf("commands %v", *cmds)
	}

	key(ctl, KeyHome, ModShift)
	if got := f.SelectedText(); got != "ax" {
		t.Errorf("selection %q; want %q", got, "ax")
	}
	typeText(ctl, "z")
	if got := f.Text(); got != "zb" {
		t.Errorf("typing over the selection gave %q; want %q", got, "zb")
	}
}

func TestTextFieldWordMoves(t *testing.T) {
	ctl, f, _ := focusedField(t)
	f.SetText("one two three")
	key(ctl, KeyLeft, ModAlt)
	if got := f.Caret(); got != 8 {
		t.Errorf("caret after word left %d; want 8", got)
	}
	key(ctl, KeyHome, 0)
	key(ctl, KeyRight, ModAlt)
	if got := f.Caret(); got != 3 {
		t.Errorf("caret after word right %d; want 3", got)
	}
	key(ctl, KeyDelete, 0)
	if got := f.Text(); got != "onetwo three" {
		t.Errorf("text %q after delete", got)
	}
}

func TestTextFieldEnterAndEscape(t *testing.T) {
	ctl, f, cmds := focusedField(t)
	typeText(ctl, "hi")
	*cmds = nil
	key(ctl, KeyEnter, 0)
	if !slices.Equal(*cmds, []string{"name##enterKeyPressed"}) {
		t.Errorf("commands %v", *cmds)
	}
	if ctl.FocusOwner() != nil {
		t.Error("Enter kept focus")
	}

	ctl.RequestFocus(f)
	*cmds = nil
	key(ctl, KeyEscape, 0)
	if f.Text() != "" || ctl.FocusOwner() != nil {
		t.Errorf("Escape left %q, focus on %s", f.Text(), describe(ctl.FocusOwner()))
	}
	if !slices.Equal(*cmds, []string{"name##textChanged"}) {
		t.Errorf("commands %v", *cmds)
	}
}

func TestTextFieldLeavesShortcuts(t *testing.T) {
	ctl, _, _ := focusedField(t)
	if e := key(ctl, KeyS, ModControl); e.Consumed() {
		t.Error("Ctrl+S consumed by the field")
	}
	if e := key(ctl, KeyS, 0); !e.Consumed() {
		t.Error("plain key not consumed by the field")
	}
}

func TestSliderDrag(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	s := NewSlider(ctl, "vol")
	s.padding = Spacing{}
	s.SetBounds(Rectangle{Width: 108, Height: 8})
	addWindow(ctl, Rectangle{Width: 200, Height: 20}, s)
	ctl.PreFrame(0)

	mouse(ctl, MousePressed, 4, 4)
	if s.Value() != 0 {
		t.Errorf("value %d after press at the start", s.Value())
	}
	mouse(ctl, MouseDragged, 58, 4)
	if s.Value() != 54 {
		t.Errorf("value %d; want 54", s.Value())
	}
	mouse(ctl, MouseDragged, 500, 4)
	if s.Value() != 100 {
		t.Errorf("value %d past the end; want 100", s.Value())
	}
	mouse(ctl, MouseReleased, 500, 4)
	if len(*cmds) != 2 || (*cmds)[0] != "vol##valueChanged" {
		t.Errorf("commands %v", *cmds)
	}
}

func TestChoice(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	c := NewChoice(ctl, "fruit:", "apple", "pear", "plum")
	place(c, 100, 100)
	addWindow(ctl, Rectangle{Width: 400, Height: 400}, c)
	ctl.PreFrame(0)

	if _, ok := c.SelectedItem(); ok {
		t.Fatal("new choice has a selection")
	}
	c.Clicked()
	if !c.IsMenuShowing() {
		t.Fatal("menu not opened")
	}
	ctl.PreFrame(0)
	menu := c.menu
	if menu.Len() != 3 {
		t.Fatalf("menu has %d entries; want 3", menu.Len())
	}
	menu.At(1).(*choiceItem).Clicked()
	if it, _ := c.SelectedItem(); it != "pear" {
		t.Errorf("selected %q; want pear", it)
	}
	if c.IsMenuShowing() {
		t.Error("menu still open after picking")
	}
	if !slices.Equal(*cmds, []string{"fruit:pear"}) {
		t.Errorf("commands %v", *cmds)
	}
}

func TestChoiceMenuCoversSelection(t *testing.T) {
	ctl := newTestController()
	c := NewChoice(ctl, "", "a", "b", "c")
	c.Select(2)
	place(c, 100, 200)
	addWindow(ctl, Rectangle{Width: 400, Height: 400}, c)
	ctl.PreFrame(0)
	c.Clicked()
	ctl.PreFrame(0)
	sel := c.menu.At(2).Core()
	if got, want := sel.LocationOnScreen().Y, c.LocationOnScreen().Y; got != want {
		t.Errorf("selected entry at y=%v; want %v", got, want)
	}
}

func TestChoiceAllowNone(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	c := NewChoice(ctl, "p:", "a")
	c.SetAllowNone(true)
	c.Select(0)
	addWindow(ctl, Rectangle{Width: 400, Height: 400}, place(c, 0, 0))
	c.Clicked()
	ctl.PreFrame(0)
	if c.menu.Len() != 2 {
		t.Fatalf("menu has %d entries; want 2", c.menu.Len())
	}
	c.menu.At(0).(*choiceItem).Clicked()
	if c.SelectedIndex() != -1 {
		t.Errorf("selection %d; want none", c.SelectedIndex())
	}
	if !slices.Equal(*cmds, []string{"p:" + NoneCommand}) {
		t.Errorf("commands %v", *cmds)
	}
}

func TestChoiceKeys(t *testing.T) {
	ctl := newTestController()
	c := NewChoice(ctl, "", "a", "b", "c")
	addWindow(ctl, Rectangle{Width: 400, Height: 400}, c)
	c.SetCycleChar('n')
	c.SetShortcutChars('1', '2', '3')
	tests := []struct {
		char rune
		want int
	}{
		{'n', 0},
		{'n', 1},
		{'3', 2},
		{'n', 0},
		{'x', 0},
	}
	for _, tt := range tests {
		ctl.HandleKey(&KeyEvent{Type: KeyTyped, Char: tt.char})
		if got := c.SelectedIndex(); got != tt.want {
			t.Errorf("after %q selection %d; want %d", tt.char, got, tt.want)
		}
	}
}

func TestChoiceEditKeepsSelection(t *testing.T) {
	ctl := newTestController()
	c := NewChoice(ctl, "", "a", "b")
	c.Select(1)
	c.Insert("z", 0)
	if it, _ := c.SelectedItem(); it != "b" {
		t.Errorf("selected %q after insert; want b", it)
	}
	c.Remove("b")
	if c.SelectedIndex() != -1 {
		t.Error("removed item still selected")
	}
}

func TestPopupMenu(t *testing.T) {
	ctl := newTestController()
	cmds := recordActions(ctl)
	m := NewPopupMenuOf(ctl, "Cut", "Copy", "", "Paste")
	m.SetItemEnabled("Paste", false)
	owner := place(newBox(ctl, 50, 50), 0, 0).(*box)
	owner.SetContextMenu(m)
	addWindow(ctl, Rectangle{Width: 100, Height: 100}, owner)
	ctl.PreFrame(0)

	e := &MouseEvent{Type: MousePressed, X: 10, Y: 10, Button: ButtonRight, PopupTrigger: true}
	ctl.HandleMouse(e)
	mouse(ctl, MouseReleased, 10, 10)
	if !m.IsShowing() {
		t.Fatal("context menu not shown")
	}
	if got := m.Location(); got != (Point{10, 10}) {
		t.Errorf("menu at %+v; want (10, 10)", got)
	}
	if m.Item("Paste").IsEnabled() {
		t.Error("disabled item enabled")
	}
	m.Item("Copy").Clicked()
	if !slices.Equal(*cmds, []string{"Copy"}) {
		t.Errorf("commands %v", *cmds)
	}
	if m.IsShowing() {
		t.Error("menu still showing after picking an item")
	}
}

func TestPopupMenuFlipsAtScreenEdge(t *testing.T) {
	ctl := newTestController()
	m := NewPopupMenuOf(ctl, "One", "Two")
	m.Show(790, 590)
	b := m.Bounds()
	if b.X+b.Width > 800 || b.Y+b.Height > 600 {
		t.Errorf("menu at %+v leaves the screen", b)
	}
	if b.X != 790-b.Width || b.Y != 590-b.Height {
		t.Errorf("menu at %+v not flipped around the point", b)
	}
}

func TestToolTipDelay(t *testing.T) {
	ctl := newTestController()
	anchor := place(newBox(ctl, 50, 20), 100, 100).(*box)
	anchor.SetToolTipText("help")
	addWindow(ctl, Rectangle{Width: 400, Height: 400}, anchor)
	mouse(ctl, MouseMoved, 110, 110)

	frame := func(dt float64) *ToolTip {
		ctl.PreFrame(dt)
		ctl.Draw(&recordingSurface{})
		return ctl.VisibleToolTip()
	}
	if frame(0.3) != nil {
		t.Error("tooltip shown before the delay")
	}
	tip := frame(0.3)
	if tip != anchor.ToolTip() {
		t.Fatal("tooltip not shown after the delay")
	}
	b := tip.Bounds()
	if b.Y != 125 {
		t.Errorf("tooltip at y=%v; want 125, below the anchor", b.Y)
	}
	if cx := b.X + b.Width/2; cx != 125 {
		t.Errorf("tooltip centred at x=%v; want 125", cx)
	}

	mouse(ctl, MouseMoved, 300, 300)
	if frame(0.3) != nil {
		t.Error("tooltip kept after leaving the anchor")
	}
}

func TestToolTipFlipsAbove(t *testing.T) {
	ctl := newTestController()
	anchor := place(newBox(ctl, 50, 20), 100, 580).(*box)
	tip := NewToolTip(anchor, "help")
	anchor.SetToolTip(tip)
	addWindow(ctl, Rectangle{Width: 800, Height: 600}, anchor)
	tip.Validate()
	if b := tip.Bounds(); b.Y+b.Height > 580 {
		t.Errorf("tooltip at %+v overlaps the anchor", b)
	}
}
