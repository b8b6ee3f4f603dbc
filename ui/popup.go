package ui

import "image/color"

// PopupMenu is a fragile window listing menu items top to bottom. Clicking
// an item fires its action event and closes the menu; so does a press
// anywhere outside of it.
type PopupMenu struct {
	Window
}

func NewPopupMenu(ctl *Controller) *PopupMenu {
	m := &PopupMenu{}
	m.InitWindow(m, ctl, NewBorderLayout(true))
	m.fragile = true
	m.padding = Pad(5, 1)
	m.border = Pad(2)
	return m
}

// NewPopupMenuOf builds a menu from item texts; an empty string adds a
// separator.
func NewPopupMenuOf(ctl *Controller, items ...string) *PopupMenu {
	m := NewPopupMenu(ctl)
	for _, it := range items {
		if it == "" {
			m.AddSeparator("")
		} else {
			m.Add(it)
		}
	}
	return m
}

func (m *PopupMenu) borderOverride(st *Style) (float64, color.Color, bool) {
	return 2, st.MenuBorder, true
}

// Add appends an item whose action command is its text.
func (m *PopupMenu) Add(text string) *MenuItem { return m.AddItem(text, text) }

// AddItem appends an item firing command.
func (m *PopupMenu) AddItem(text, command string) *MenuItem {
	it := newMenuItem(m, text)
	it.command = command
	m.Container.Add(it, North)
	return it
}

// AddSeparator appends a disabled divider line, with text in its middle
// when text is not empty.
func (m *PopupMenu) AddSeparator(text string) {
	it := newMenuItem(m, text)
	it.separator = true
	it.enabled = false
	it.align = AlignCenter
	m.Container.Add(it, North)
}

// Item returns the item firing command, or nil.
func (m *PopupMenu) Item(command string) *MenuItem {
	for _, c := range m.children {
		if it, ok := c.(*MenuItem); ok && !it.separator && it.ActionCommand() == command {
			return it
		}
	}
	return nil
}

// SetItemEnabled enables or disables the item firing command.
func (m *PopupMenu) SetItemEnabled(command string, v bool) {
	if it := m.Item(command); it != nil {
		it.SetEnabled(v)
	}
}

// Show opens the menu with its top-left corner at the screen position
// (x, y), flipped to the other side of the point where it would leave the
// screen.
func (m *PopupMenu) Show(x, y float64) {
	if m.ctl == nil {
		return
	}
	m.Pack()
	m.self.Validate()
	sw, sh := m.ctl.ScreenSize()
	if x+m.bounds.Width+m.margin.Right > sw {
		x -= m.bounds.Width
	}
	if y+m.bounds.Height+m.margin.Bottom > sh {
		y -= m.bounds.Height
	}
	m.SetLocation(x, y)
	m.ctl.AddWindow(m, -1)
}

// Close removes the menu from the screen.
func (m *PopupMenu) Close() {
	if m.ctl != nil {
		m.ctl.RemoveWindow(m)
	}
}

// MenuItem is an entry of a PopupMenu.
type MenuItem struct {
	Button
	menu      *PopupMenu
	separator bool
}

func newMenuItem(m *PopupMenu, text string) *MenuItem {
	it := &MenuItem{menu: m}
	it.InitButton(it, m.ctl, text)
	it.margin = Spacing{}
	it.align = AlignLeft
	return it
}

func (it *MenuItem) menuEntry() {}

// IsSeparator reports whether the item is a divider.
func (it *MenuItem) IsSeparator() bool { return it.separator }

func (it *MenuItem) Clicked() {
	it.Button.Clicked()
	it.menu.Close()
}

func (it *MenuItem) PreferredSize() Size {
	d := it.Button.PreferredSize()
	if it.separator {
		d.Width += 20
		if it.text == "" {
			d.Height -= 5
		}
	}
	return d
}

func (it *MenuItem) Draw(s Surface) {
	if !it.separator {
		it.Button.Draw(s)
		return
	}
	it.Base.Draw(s)
	fg := it.ForegroundColor()
	b, p := it.bounds, it.padding
	if it.text == "" {
		y := b.Y + b.Height/2 - 1
		s.StrokeLine(b.X+p.Left, y, b.X+b.Width-p.Right, y, 1, fg)
		return
	}
	it.drawText(s, b.Inset(p), fg)
	f := it.Font()
	m := it.measurer()
	fm := m.Metrics(f)
	tw := m.TextWidth(f, it.text)
	y := b.Y + b.Height - p.Bottom - fm.Descent
	if h := fm.Ascent + fm.Descent; b.Height-p.Top-p.Bottom > h {
		y -= (b.Height - p.Top - p.Bottom - h) / 2
	}
	y -= fm.Ascent / 3
	s.StrokeLine(b.X+p.Left, y, b.X+b.Width/2-tw/2-5, y, 1, fg)
	s.StrokeLine(b.X+b.Width/2+tw/2+5, y, b.X+b.Width-p.Right, y, 1, fg)
}
