package host

import (
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/overlay/ui"
)

// Pinch is a two finger gesture the UI does not use; the host may zoom
// with it.
type Pinch struct {
	Scale      float64 // current distance over previous distance
	MidX, MidY float64
}

// touchState turns the first touch into a left mouse button and tracks
// two finger pinches.
type touchState struct {
	ids     []ebiten.TouchID
	lastX   map[ebiten.TouchID]float64
	lastY   map[ebiten.TouchID]float64
	primary ebiten.TouchID
	down    bool
	dx, dy  float64 // primary touch movement this tick
	pinch   *Pinch
}

// pollTouches sends the primary touch to ctl as mouse events. It reports
// whether a touch was active this tick.
func (in *Input) pollTouches(now time.Time, mods ui.Modifiers) bool {
	ts := &in.touch
	if ts.lastX == nil {
		ts.lastX = make(map[ebiten.TouchID]float64)
		ts.lastY = make(map[ebiten.TouchID]float64)
	}
	ts.pinch = nil
	ts.dx, ts.dy = 0, 0
	ts.ids = ebiten.AppendTouchIDs(ts.ids[:0])

	if ts.down && inpututil.IsTouchJustReleased(ts.primary) {
		x, y := inpututil.TouchPositionInPreviousTick(ts.primary)
		in.send(&ui.MouseEvent{Type: ui.MouseReleased, X: float64(x), Y: float64(y), Button: ui.ButtonLeft, Modifiers: mods, Time: now})
		// no hover without a finger on the screen
		in.send(&ui.MouseEvent{Type: ui.MouseExited, Modifiers: mods, Time: now})
		ts.down = false
	}

	for id := range ts.lastX {
		if !slices.Contains(ts.ids, id) {
			delete(ts.lastX, id)
			delete(ts.lastY, id)
		}
	}

	switch len(ts.ids) {
	case 0:
		return ts.down
	case 1:
		id := ts.ids[0]
		x, y := ebiten.TouchPosition(id)
		fx, fy := float64(x), float64(y)
		_, seen := ts.lastX[id]
		switch {
		case !ts.down && !seen:
			ts.primary = id
			ts.down = true
			in.send(&ui.MouseEvent{Type: ui.MouseMoved, X: fx, Y: fy, Modifiers: mods, Time: now})
			in.send(&ui.MouseEvent{Type: ui.MousePressed, X: fx, Y: fy, Button: ui.ButtonLeft, Modifiers: mods, Time: now})
		case ts.down && id == ts.primary && (fx != ts.lastX[id] || fy != ts.lastY[id]):
			ts.dx, ts.dy = fx-ts.lastX[id], fy-ts.lastY[id]
			in.send(&ui.MouseEvent{Type: ui.MouseDragged, X: fx, Y: fy, Button: ui.ButtonLeft, Modifiers: mods, Time: now})
		}
		ts.lastX[id], ts.lastY[id] = fx, fy
	default:
		id1, id2 := ts.ids[0], ts.ids[1]
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)
		cur := distance(float64(x1), float64(y1), float64(x2), float64(y2))
		_, ok1 := ts.lastX[id1]
		_, ok2 := ts.lastX[id2]
		if ok1 && ok2 {
			prev := distance(ts.lastX[id1], ts.lastY[id1], ts.lastX[id2], ts.lastY[id2])
			if prev > 0 {
				ts.pinch = &Pinch{
					Scale: cur / prev,
					MidX:  (float64(x1) + float64(x2)) / 2,
					MidY:  (float64(y1) + float64(y2)) / 2,
				}
			}
		}
		ts.lastX[id1], ts.lastY[id1] = float64(x1), float64(y1)
		ts.lastX[id2], ts.lastY[id2] = float64(x2), float64(y2)
	}
	return true
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
