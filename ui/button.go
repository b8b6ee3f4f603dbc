package ui

import "image/color"

var _ Clicker = (*Button)(nil)

// Button is a clickable label firing an action event. A hot key makes it
// clickable from the keyboard wherever focus is.
type Button struct {
	Label
	command string
	hotKey  Key
	hotMods Modifiers
}

func NewButton(ctl *Controller, text string) *Button {
	b := &Button{}
	b.InitButton(b, ctl, text)
	return b
}

// InitButton initialises an embedded Button whose outer wrapper is self.
func (b *Button) InitButton(self Component, ctl *Controller, text string) {
	b.InitLabel(self, ctl, text)
	b.clickable = true
	b.capturesMouse = true
	b.focusable = true
	b.align = AlignCenter
}

func (b *Button) defaultBackground(st *Style) color.Color { return st.Background }

// ActionCommand returns the command of fired action events, which defaults
// to the button's text.
func (b *Button) ActionCommand() string {
	if b.command != "" {
		return b.command
	}
	return b.text
}

func (b *Button) SetActionCommand(cmd string) { b.command = cmd }

// SetHotKey makes the key with exactly the given modifiers click the
// button. KeyUnknown removes the hot key.
func (b *Button) SetHotKey(k Key, mods Modifiers) {
	if b.ctl == nil {
		return
	}
	b.ctl.UnregisterKeyEvents(b.self)
	b.hotKey, b.hotMods = k, mods
	if k != KeyUnknown {
		b.ctl.RegisterKeyEvents(b.self)
	}
}

func (b *Button) HotKey() (Key, Modifiers) { return b.hotKey, b.hotMods }

func (b *Button) HandleKey(e *KeyEvent) {
	b.Label.HandleKey(e)
	if e.Consumed() || e.Type != KeyPressed || b.hotKey == KeyUnknown {
		return
	}
	if e.Key == b.hotKey && e.Modifiers == b.hotMods {
		if c, ok := b.self.(Clicker); ok {
			c.Clicked()
		}
		e.Consume()
	}
}

// Clicked fires the button's action event.
func (b *Button) Clicked() {
	if b.ctl != nil {
		b.ctl.FireAction(ActionEvent{Source: b.self, Command: b.ActionCommand()})
	}
}
