package ui

import "time"

// MouseEventType identifies what happened to the pointer.
type MouseEventType int

const (
	MouseMoved MouseEventType = iota
	MousePressed
	MouseReleased
	MouseDragged
	MouseEntered
	MouseExited
)

func (t MouseEventType) String() string {
	switch t {
	case MouseMoved:
		return "moved"
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	case MouseDragged:
		return "dragged"
	case MouseEntered:
		return "entered"
	case MouseExited:
		return "exited"
	}
	return "unknown"
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Shift reports whether Shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Control reports whether Control is held.
func (m Modifiers) Control() bool { return m&ModControl != 0 }

// Alt reports whether Alt/Option is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Meta reports whether Meta/Command is held.
func (m Modifiers) Meta() bool { return m&ModMeta != 0 }

// MouseEvent is a pointer event in screen coordinates.
type MouseEvent struct {
	Type      MouseEventType
	X, Y      float64
	Button    MouseButton
	Modifiers Modifiers
	Time      time.Time

	// PopupTrigger marks the platform's context-menu gesture.
	PopupTrigger bool

	consumed bool
}

// Consume marks the event as handled.
func (e *MouseEvent) Consume() { e.consumed = true }

// Consumed reports whether a component or the router handled the event.
func (e *MouseEvent) Consumed() bool { return e.consumed }

// KeyEventType identifies a key press or a typed character.
type KeyEventType int

const (
	KeyPressed KeyEventType = iota
	KeyTyped
)

// Key is a physical key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// KeyEvent is a keyboard event. Pressed events carry Key, typed events
// carry Char.
type KeyEvent struct {
	Type      KeyEventType
	Key       Key
	Char      rune
	Modifiers Modifiers
	Time      time.Time

	consumed       bool
	hostSuppressed bool
}

// Consume marks the event as handled.
func (e *KeyEvent) Consume() { e.consumed = true }

// Consumed reports whether a component handled the event.
func (e *KeyEvent) Consumed() bool { return e.consumed }

// HostSuppressed reports whether the host must skip its own default action
// for this event. It is set by the controller for the reserved host key.
func (e *KeyEvent) HostSuppressed() bool { return e.hostSuppressed }

// ActionEvent is fired by buttons, text fields and other controls.
type ActionEvent struct {
	Source  Component
	Command string
}

// ActionHandler receives action events.
type ActionHandler func(ActionEvent)
