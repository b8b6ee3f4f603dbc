// Package host runs a ui.Controller inside an ebiten game: it turns
// ebiten's polled input into ui events, draws the component tree on the
// screen image and keeps the pointer shape in sync.
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/overlay/ui"
)

// Overlay bundles a controller with its input and drawing adapters. A game
// calls Update, Draw and Layout from its own ebiten.Game methods.
type Overlay struct {
	ctl     *ui.Controller
	input   *Input
	surface *Surface
	cursor  ebiten.CursorShapeType
	width   int
	height  int
}

// NewOverlay wraps ctl. The controller should measure with fonts so that
// layout matches what the surface draws.
func NewOverlay(ctl *ui.Controller, fonts *Fonts) *Overlay {
	return &Overlay{
		ctl:     ctl,
		input:   NewInput(ctl),
		surface: NewSurface(fonts),
		cursor:  ebiten.CursorShapeDefault,
	}
}

// Controller returns the wrapped controller.
func (o *Overlay) Controller() *ui.Controller { return o.ctl }

// Input returns the input adapter.
func (o *Overlay) Input() *Input { return o.input }

// Update routes this tick's input and updates the pointer shape.
func (o *Overlay) Update() error {
	o.input.Poll()
	shape, ok := cursorShapes[o.ctl.Cursor()]
	if !ok {
		shape = ebiten.CursorShapeDefault
	}
	if shape != o.cursor {
		ebiten.SetCursorShape(shape)
		o.cursor = shape
	}
	return nil
}

// Draw draws the component tree over screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.surface.Begin(screen)
	o.ctl.Draw(o.surface)
}

// Layout resizes the UI when the outside size changes.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	if outsideWidth == o.width && outsideHeight == o.height {
		return
	}
	o.width, o.height = outsideWidth, outsideHeight
	o.ctl.Lock()
	o.ctl.Resize(float64(outsideWidth), float64(outsideHeight))
	o.ctl.Unlock()
}

// IsInteractingWithUI reports whether the pointer is over a component or a
// press on one is in progress. The game should skip its own pointer
// handling while it is.
func (o *Overlay) IsInteractingWithUI() bool { return o.ctl.OverUI() }
