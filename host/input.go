package host

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/overlay/ui"
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	ub ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.ButtonLeft},
	{ebiten.MouseButtonRight, ui.ButtonRight},
	{ebiten.MouseButtonMiddle, ui.ButtonMiddle},
}

// Input polls ebiten's input state once per tick and feeds the changes to
// a controller as events.
type Input struct {
	ctl *ui.Controller

	last     time.Time
	cursorX  int
	cursorY  int
	inside   bool
	held     ui.MouseButton
	touch    touchState
	keys     []ebiten.Key
	chars    []rune
	hostKeys []ebiten.Key
}

// NewInput returns an Input feeding ctl.
func NewInput(ctl *ui.Controller) *Input {
	return &Input{ctl: ctl, cursorX: -1, cursorY: -1}
}

// Poll translates this tick's input into events, then starts the
// controller's frame. Call it from ebiten's Update.
func (in *Input) Poll() {
	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !in.last.IsZero() {
		dt = now.Sub(in.last).Seconds()
	}
	in.last = now

	in.ctl.Lock()
	defer in.ctl.Unlock()

	mods := modifiers()
	if !in.pollTouches(now, mods) {
		in.pollMouse(now, mods)
	}
	in.pollKeys(now, mods)
	in.ctl.PreFrame(dt)
}

// HostKeys returns the keys pressed this tick that no component consumed
// and that are not reserved by the UI.
func (in *Input) HostKeys() []ebiten.Key { return in.hostKeys }

// Pinch returns this tick's two finger gesture, if any.
func (in *Input) Pinch() (Pinch, bool) {
	if in.touch.pinch == nil {
		return Pinch{}, false
	}
	return *in.touch.pinch, true
}

// TouchDelta returns how far the primary touch moved this tick.
func (in *Input) TouchDelta() (dx, dy float64) { return in.touch.dx, in.touch.dy }

func (in *Input) send(e *ui.MouseEvent) {
	in.ctl.HandleMouse(e)
}

func (in *Input) pollMouse(now time.Time, mods ui.Modifiers) {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	w, h := in.ctl.ScreenSize()
	inside := fx >= 0 && fy >= 0 && fx < w && fy < h

	if inside && !in.inside {
		in.send(&ui.MouseEvent{Type: ui.MouseEntered, X: fx, Y: fy, Modifiers: mods, Time: now})
	}
	if x != in.cursorX || y != in.cursorY {
		typ := ui.MouseMoved
		if in.held != ui.ButtonNone {
			typ = ui.MouseDragged
		}
		in.send(&ui.MouseEvent{Type: typ, X: fx, Y: fy, Button: in.held, Modifiers: mods, Time: now})
	}
	in.cursorX, in.cursorY = x, y

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) && in.held == ui.ButtonNone {
			in.held = b.ub
			in.send(&ui.MouseEvent{
				Type:         ui.MousePressed,
				X:            fx,
				Y:            fy,
				Button:       b.ub,
				Modifiers:    mods,
				Time:         now,
				PopupTrigger: b.ub == ui.ButtonRight,
			})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) && in.held == b.ub {
			in.held = ui.ButtonNone
			in.send(&ui.MouseEvent{Type: ui.MouseReleased, X: fx, Y: fy, Button: b.ub, Modifiers: mods, Time: now})
		}
	}

	// a drag keeps its target outside the window
	if !inside && in.inside && in.held == ui.ButtonNone {
		in.send(&ui.MouseEvent{Type: ui.MouseExited, X: fx, Y: fy, Modifiers: mods, Time: now})
	}
	in.inside = inside || (in.inside && in.held != ui.ButtonNone)
}

func (in *Input) pollKeys(now time.Time, mods ui.Modifiers) {
	in.hostKeys = in.hostKeys[:0]

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.pressKey(k, mods, now)
	}
	in.keys = inpututil.AppendPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		d := inpututil.KeyPressDuration(k)
		if d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			in.pressKey(k, mods, now)
		}
	}

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		if r < 0x20 || r == 0x7f {
			continue
		}
		in.ctl.HandleKey(&ui.KeyEvent{Type: ui.KeyTyped, Char: r, Modifiers: mods, Time: now})
	}
}

func (in *Input) pressKey(k ebiten.Key, mods ui.Modifiers, now time.Time) {
	uk, ok := keyMap[k]
	if !ok {
		in.hostKeys = append(in.hostKeys, k)
		return
	}
	e := &ui.KeyEvent{Type: ui.KeyPressed, Key: uk, Modifiers: mods, Time: now}
	in.ctl.HandleKey(e)
	if !e.Consumed() && !e.HostSuppressed() {
		in.hostKeys = append(in.hostKeys, k)
	}
}
