package ui

import (
	"image/color"
	"slices"
)

// NoneCommand is appended to a Choice's command prefix when the "none"
// entry is picked.
const NoneCommand = "@@none@@"

// Choice is a drop-down list of strings. Clicking it opens a fragile menu
// with the current selection under the pointer; picking an entry fires
// "<prefix><item>".
type Choice struct {
	Base
	prefix    string
	items     []string
	selected  int
	menu      *choiceMenu
	compact   bool
	allowNone bool

	strEmpty       string
	strNoSelection string
	strNone        string

	cycleChar rune
	itemChars []rune
}

func NewChoice(ctl *Controller, prefix string, items ...string) *Choice {
	c := &Choice{
		prefix:         prefix,
		selected:       -1,
		compact:        true,
		strEmpty:       "— empty —",
		strNoSelection: "— click to select —",
		strNone:        "— none —",
	}
	c.Init(c, ctl)
	c.clickable = true
	c.menu = newChoiceMenu(c)
	c.items = append(c.items, items...)
	return c
}

func (c *Choice) ActionCommandPrefix() string     { return c.prefix }
func (c *Choice) SetActionCommandPrefix(p string) { c.prefix = p }

// Len returns the number of items.
func (c *Choice) Len() int { return len(c.items) }

// Item returns the i-th item.
func (c *Choice) Item(i int) string { return c.items[i] }

// Items returns a copy of the items.
func (c *Choice) Items() []string { return slices.Clone(c.items) }

// Add appends items.
func (c *Choice) Add(items ...string) {
	c.items = append(c.items, items...)
	c.self.Invalidate()
}

// Insert puts item at index, keeping the same item selected.
func (c *Choice) Insert(item string, index int) {
	index = max(0, min(len(c.items), index))
	c.items = slices.Insert(c.items, index, item)
	if c.selected >= index {
		c.selected++
	}
	c.self.Invalidate()
}

// Remove deletes the first occurrence of item.
func (c *Choice) Remove(item string) {
	for i, it := range c.items {
		if it == item {
			c.RemoveAt(i)
			return
		}
	}
}

// RemoveAt deletes the i-th item. Removing the selected item clears the
// selection.
func (c *Choice) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = slices.Delete(c.items, i, i+1)
	switch {
	case c.selected == i:
		c.selected = -1
	case c.selected > i:
		c.selected--
	}
	c.self.Invalidate()
}

func (c *Choice) RemoveAll() {
	c.items = nil
	c.selected = -1
	c.self.Invalidate()
}

// SelectedIndex returns the selected item's index, -1 for none.
func (c *Choice) SelectedIndex() int { return c.selected }

// SelectedItem returns the selected item and whether there is one.
func (c *Choice) SelectedItem() (string, bool) {
	if c.selected < 0 || c.selected >= len(c.items) {
		return "", false
	}
	return c.items[c.selected], true
}

// Select selects the item at index, or nothing for -1, without firing an
// event. It reports whether the selection changed.
func (c *Choice) Select(index int) bool {
	if index < -1 || index >= len(c.items) || index == c.selected {
		return false
	}
	c.selected = index
	if c.compact {
		c.self.Invalidate()
	}
	return true
}

// SelectItem selects the first occurrence of item, or nothing when it is
// not an item.
func (c *Choice) SelectItem(item string) bool {
	for i, it := range c.items {
		if it == item {
			return c.Select(i)
		}
	}
	return c.Select(-1)
}

// selectAndNotify selects index and fires the action event if that
// changed the selection.
func (c *Choice) selectAndNotify(index int) {
	if !c.Select(index) || c.ctl == nil {
		return
	}
	cmd := c.prefix + NoneCommand
	if it, ok := c.SelectedItem(); ok {
		cmd = c.prefix + it
	}
	c.ctl.FireAction(ActionEvent{Source: c.self, Command: cmd})
}

// IsCompact reports whether the choice is only as wide as its selection.
// Otherwise it is sized to fit the widest item.
func (c *Choice) IsCompact() bool { return c.compact }

func (c *Choice) SetCompact(v bool) {
	c.compact = v
	c.self.Invalidate()
}

// AllowNone adds a "none" entry at the top of the menu.
func (c *Choice) AllowNone() bool { return c.allowNone }

func (c *Choice) SetAllowNone(v bool) {
	c.allowNone = v
	c.self.Invalidate()
}

// SetPlaceholders replaces the texts shown for an empty list, for no
// selection, and for the "none" entry.
func (c *Choice) SetPlaceholders(empty, noSelection, none string) {
	c.strEmpty, c.strNoSelection, c.strNone = empty, noSelection, none
	c.self.Invalidate()
}

func (c *Choice) placeholder() string {
	if len(c.items) == 0 {
		return c.strEmpty
	}
	return c.strNoSelection
}

// SetCycleChar makes typing r select the next item, wrapping around. Zero
// disables it.
func (c *Choice) SetCycleChar(r rune) {
	c.cycleChar = r
	c.updateKeyRegistration()
}

// SetShortcutChars makes typing chars[i] select item i.
func (c *Choice) SetShortcutChars(chars ...rune) {
	c.itemChars = chars
	c.updateKeyRegistration()
}

func (c *Choice) updateKeyRegistration() {
	if c.ctl == nil {
		return
	}
	c.ctl.UnregisterKeyEvents(c.self)
	if c.cycleChar != 0 || len(c.itemChars) > 0 {
		c.ctl.RegisterKeyEvents(c.self)
	}
}

func (c *Choice) HandleKey(e *KeyEvent) {
	c.Base.HandleKey(e)
	if e.Consumed() || e.Type != KeyTyped || e.Modifiers.Control() || e.Modifiers.Meta() {
		return
	}
	if c.cycleChar != 0 && e.Char == c.cycleChar && len(c.items) > 0 {
		c.selectAndNotify((c.selected + 1) % len(c.items))
		e.Consume()
		return
	}
	for i, r := range c.itemChars {
		if r == e.Char && i < len(c.items) {
			c.selectAndNotify(i)
			e.Consume()
			return
		}
	}
}

func (c *Choice) itemSize(s string) Size {
	f := c.Font()
	m := c.measurer()
	fm := m.Metrics(f)
	return Size{Width: m.TextWidth(f, s), Height: fm.Ascent + 1.5*fm.Descent}
}

// MinimumSize fits the selected item, or every item when not compact, and
// the placeholder when it can show.
func (c *Choice) MinimumSize() Size {
	var d Size
	grow := func(s string) {
		e := c.itemSize(s)
		d.Width = max(d.Width, e.Width)
		d.Height = max(d.Height, e.Height)
	}
	if it, ok := c.SelectedItem(); ok {
		grow(it)
	}
	if !c.compact {
		for _, it := range c.items {
			grow(it)
		}
		if c.allowNone {
			grow(c.strNone)
		}
	}
	if c.selected < 0 || !c.compact {
		grow(c.placeholder())
	}
	return d
}

// Invalidate also closes the menu, whose entries have to be rebuilt.
func (c *Choice) Invalidate() {
	c.Base.Invalidate()
	if c.menu == nil {
		return
	}
	if c.ctl != nil {
		c.ctl.RemoveWindow(c.menu)
	}
	c.menu.Invalidate()
}

// Clicked opens the menu.
func (c *Choice) Clicked() {
	if c.ctl == nil || (len(c.items) == 0 && !c.allowNone) {
		return
	}
	c.ctl.AddWindow(c.menu, -1)
}

// IsMenuShowing reports whether the menu is open.
func (c *Choice) IsMenuShowing() bool {
	return c.ctl != nil && c.ctl.HasWindow(c.menu)
}

func (c *Choice) Draw(s Surface) {
	c.Base.Draw(s)
	text, clr := c.placeholder(), withAlpha(c.ForegroundColor(), .5)
	if it, ok := c.SelectedItem(); ok {
		text, clr = it, c.ForegroundColor()
	}
	drawItemText(s, c.Font(), c.measurer(), text, c.bounds, c.padding, clr)
}

// drawItemText draws one line left aligned and vertically centred in the
// padded box b.
func drawItemText(s Surface, f Font, m Measurer, text string, b Rectangle, p Spacing, clr color.Color) {
	fm := m.Metrics(f)
	y := b.Y + b.Height - p.Bottom - fm.Descent
	if h := fm.Ascent + fm.Descent; b.Height-p.Top-p.Bottom > h {
		y -= (b.Height - p.Top - p.Bottom - h) / 2
	}
	s.Text(f, text, b.X+p.Left, y, clr)
}

// choiceMenu is the fragile window listing a Choice's items.
type choiceMenu struct {
	Window
	choice *Choice
}

func newChoiceMenu(c *Choice) *choiceMenu {
	m := &choiceMenu{choice: c}
	m.InitWindow(m, c.ctl, NewBorderLayout(true))
	m.fragile = true
	return m
}

// Validate rebuilds the entries and places the menu so that the selected
// entry covers the choice, moved as needed to stay on screen.
func (m *choiceMenu) Validate() {
	if m.valid {
		return
	}
	c := m.choice
	m.RemoveAll()
	if c.allowNone {
		m.Container.Add(newChoiceItem(m, -1, c.strNone), North)
	}
	for i, it := range c.items {
		m.Container.Add(newChoiceItem(m, i, it), North)
	}

	p := c.LocationOnScreen()
	if len(m.children) > 0 {
		ip := m.children[0].Core().padding
		p.X -= ip.Left - c.padding.Left
		p.Y -= ip.Top - c.padding.Top
	}
	d := m.self.PreferredSize()
	m.bounds = Rectangle{X: p.X, Y: p.Y, Width: max(d.Width, c.bounds.Width), Height: d.Height}
	m.Container.Validate()

	k := c.selected
	if c.allowNone {
		k++
	}
	for i := 0; i < k && i < len(m.children); i++ {
		m.bounds.Y -= m.children[i].Core().bounds.Height
	}
	if m.ctl != nil {
		sw, sh := m.ctl.ScreenSize()
		m.bounds.X = max(0, min(sw-m.bounds.Width, m.bounds.X))
		m.bounds.Y = max(0, min(sh-m.bounds.Height, m.bounds.Y))
	}
}

// choiceItem is one entry of a choiceMenu. index is -1 for the "none" entry.
type choiceItem struct {
	Base
	menu  *choiceMenu
	index int
	text  string
}

func newChoiceItem(m *choiceMenu, index int, text string) *choiceItem {
	it := &choiceItem{menu: m, index: index, text: text}
	it.Init(it, m.ctl)
	it.clickable = true
	it.focusable = false
	it.margin = Spacing{}
	if c := m.choice; c.font != nil {
		it.font = c.font
	}
	return it
}

func (it *choiceItem) menuEntry() {}

func (it *choiceItem) MinimumSize() Size { return it.menu.choice.itemSize(it.text) }

func (it *choiceItem) Clicked() {
	it.menu.choice.selectAndNotify(it.index)
	if it.ctl != nil {
		it.ctl.RemoveWindow(it.menu)
	}
}

func (it *choiceItem) Draw(s Surface) {
	it.Base.Draw(s)
	clr := it.ForegroundColor()
	if it.index < 0 {
		clr = withAlpha(clr, .5)
	}
	drawItemText(s, it.Font(), it.measurer(), it.text, it.bounds, it.padding, clr)
}
