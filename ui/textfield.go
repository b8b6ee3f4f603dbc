package ui

import (
	"image/color"
	"math"
	"slices"
	"strings"
	"unicode"
)

// TextField is a single-line text editor. Edits fire "<cmd>##textChanged",
// Enter fires "<cmd>##enterKeyPressed"; both Enter and Escape drop focus,
// and Escape also clears the text.
type TextField struct {
	Base
	text      []rune
	empty     string // placeholder shown while empty and unfocused
	caret     int
	selection int // other end of the selection, -1 for none
	scroll    float64
	command   string
	hotKey    Key
	hotMods   Modifiers
}

func NewTextField(ctl *Controller, command string) *TextField {
	t := &TextField{selection: -1, command: command}
	t.Init(t, ctl)
	t.clickable = true
	return t
}

// Text returns the field's content.
func (t *TextField) Text() string { return string(t.text) }

// SetText replaces the content and puts the caret at its end.
func (t *TextField) SetText(s string) {
	t.text = []rune(strings.ReplaceAll(s, "\n", " "))
	t.caret = len(t.text)
	t.selection = -1
}

func (t *TextField) EmptyText() string     { return t.empty }
func (t *TextField) SetEmptyText(s string) { t.empty = s }

// Caret returns the caret position in runes.
func (t *TextField) Caret() int { return t.caret }

// SelectedText returns the selected part of the content.
func (t *TextField) SelectedText() string {
	if t.selection < 0 {
		return ""
	}
	i0, i1 := min(t.selection, t.caret), max(t.selection, t.caret)
	return string(t.text[i0:i1])
}

func (t *TextField) ClearSelection() { t.selection = -1 }

// SetSelection selects runes i0 to i1, leaving the caret at i1.
func (t *TextField) SetSelection(i0, i1 int) {
	t.selection = max(0, min(len(t.text), i0))
	t.caret = max(0, min(len(t.text), i1))
}

// ActionCommand returns the prefix of fired commands, "TextField" by default.
func (t *TextField) ActionCommand() string {
	if t.command != "" {
		return t.command
	}
	return "TextField"
}

func (t *TextField) SetActionCommand(cmd string) { t.command = cmd }

// SetHotKey makes the key with exactly the given modifiers focus the field.
func (t *TextField) SetHotKey(k Key, mods Modifiers) {
	if t.ctl == nil {
		return
	}
	t.ctl.UnregisterKeyEvents(t.self)
	t.hotKey, t.hotMods = k, mods
	if k != KeyUnknown {
		t.ctl.RegisterKeyEvents(t.self)
	}
}

// MinimumSize leaves room for about 200 pixels of text on one line.
func (t *TextField) MinimumSize() Size {
	fm := t.measurer().Metrics(t.Font())
	return Size{Width: 200, Height: fm.Ascent + 1.5*fm.Descent}
}

// Clicked focuses the field.
func (t *TextField) Clicked() {
	if !t.IsFocusOwner() {
		t.RequestFocus()
	}
}

func (t *TextField) fire(suffix string) {
	if t.ctl != nil {
		t.ctl.FireAction(ActionEvent{Source: t.self, Command: t.ActionCommand() + suffix})
	}
}

func (t *TextField) deleteSelection() {
	i0, i1 := min(t.selection, t.caret), max(t.selection, t.caret)
	t.text = slices.Delete(t.text, i0, i1)
	t.caret = i0
	t.selection = -1
}

// wordStartBefore returns the position after the last space before i-1.
func (t *TextField) wordStartBefore(i int) int {
	for j := min(i-2, len(t.text)-1); j >= 0; j-- {
		if t.text[j] == ' ' {
			return j + 1
		}
	}
	return 0
}

// wordEndAfter returns the position of the first space after i.
func (t *TextField) wordEndAfter(i int) int {
	for j := i + 1; j < len(t.text); j++ {
		if t.text[j] == ' ' {
			return j
		}
	}
	return len(t.text)
}

func (t *TextField) HandleKey(e *KeyEvent) {
	t.Base.HandleKey(e)
	if e.Consumed() {
		return
	}
	if !t.IsFocusOwner() {
		if e.Type == KeyPressed && t.hotKey != KeyUnknown && e.Key == t.hotKey && e.Modifiers == t.hotMods {
			t.Clicked()
			e.Consume()
		}
		return
	}
	shortcut := e.Modifiers.Control() || e.Modifiers.Meta()
	switch e.Type {
	case KeyPressed:
		switch e.Key {
		case KeyLeft, KeyRight:
			t.moveCaret(e.Key == KeyRight, e.Modifiers)
		case KeyHome:
			t.moveCaret(false, e.Modifiers|ModControl)
		case KeyEnd:
			t.moveCaret(true, e.Modifiers|ModControl)
		case KeyBackspace:
			if t.selection >= 0 {
				t.deleteSelection()
			} else if t.caret > 0 {
				t.text = slices.Delete(t.text, t.caret-1, t.caret)
				t.caret--
			}
			t.fire("##textChanged")
		case KeyDelete:
			if t.selection >= 0 {
				t.deleteSelection()
			} else if t.caret < len(t.text) {
				t.text = slices.Delete(t.text, t.caret, t.caret+1)
			}
			t.fire("##textChanged")
		case KeyEscape:
			t.text, t.caret, t.selection = nil, 0, -1
			t.fire("##textChanged")
			if t.ctl != nil {
				t.ctl.RequestFocus(nil)
			}
		case KeyEnter:
			t.fire("##enterKeyPressed")
			if t.ctl != nil {
				t.ctl.RequestFocus(nil)
			}
		case KeyA:
			if shortcut {
				t.selection, t.caret = 0, len(t.text)
			}
		}
	case KeyTyped:
		if shortcut || !unicode.IsPrint(e.Char) {
			break
		}
		if t.selection >= 0 {
			t.deleteSelection()
		}
		t.text = slices.Insert(t.text, t.caret, e.Char)
		t.caret++
		t.fire("##textChanged")
	}
	// shortcuts stay available to hot keys elsewhere
	if e.Modifiers != ModControl && e.Modifiers != ModMeta {
		e.Consume()
	}
}

// moveCaret moves one rune, one word with Alt, or to the end with
// Control/Meta. Shift extends the selection; without Shift an existing
// selection collapses to its edge in the direction of travel.
func (t *TextField) moveCaret(right bool, mods Modifiers) {
	if mods.Shift() && t.selection < 0 {
		t.selection = t.caret
	}
	if !mods.Shift() && t.selection >= 0 {
		if right {
			t.caret = max(t.selection, t.caret)
		} else {
			t.caret = min(t.selection, t.caret)
		}
		t.selection = -1
		return
	}
	switch {
	case mods.Control() || mods.Meta():
		if right {
			t.caret = len(t.text)
		} else {
			t.caret = 0
		}
	case mods.Alt():
		if right {
			t.caret = t.wordEndAfter(t.caret)
		} else {
			t.caret = t.wordStartBefore(t.caret)
		}
	case right:
		t.caret = min(len(t.text), t.caret+1)
	default:
		t.caret = max(0, t.caret-1)
	}
}

var selectionColor = color.NRGBA{200, 0, 0, 127}

func (t *TextField) Draw(s Surface) {
	t.Base.Draw(s)
	f := t.Font()
	m := t.measurer()
	fm := m.Metrics(f)
	inner := t.bounds.Inset(t.padding)
	y := t.bounds.Y + t.bounds.Height - t.padding.Bottom - fm.Descent
	if h := fm.Ascent + fm.Descent; inner.Height > h {
		y -= (inner.Height - h) / 2
	}

	dxCaret := m.TextWidth(f, string(t.text[:t.caret]))
	if t.scroll+dxCaret < 0 {
		t.scroll = -dxCaret
	}
	if t.scroll+dxCaret > inner.Width {
		t.scroll = inner.Width - dxCaret
	}
	t.scroll = min(0, max(t.scroll, inner.Width-m.TextWidth(f, string(t.text))))

	s.PushClip(Rectangle{X: inner.X, Y: t.bounds.Y, Width: inner.Width + 1, Height: t.bounds.Height})
	defer s.PopClip()
	x := inner.X + t.scroll
	focused := t.IsFocusOwner()
	if focused && t.selection >= 0 {
		dxSel := m.TextWidth(f, string(t.text[:t.selection]))
		r := Rectangle{X: x + min(dxSel, dxCaret), Y: y - fm.Ascent, Width: math.Abs(dxCaret - dxSel), Height: fm.Ascent + fm.Descent}
		s.FillRect(r, CornerRadii{}, selectionColor)
	}
	fg := t.ForegroundColor()
	if len(t.text) == 0 && !focused {
		s.Text(f, t.empty, x, y, withAlpha(fg, .5))
	} else {
		s.Text(f, string(t.text), x, y, fg)
	}
	if focused {
		s.StrokeLine(x+dxCaret, y-fm.Ascent, x+dxCaret, y+fm.Descent, 1, fg)
	}
}
