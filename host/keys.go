package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/overlay/ui"
)

var keyMap = map[ebiten.Key]ui.Key{
	ebiten.KeyTab:         ui.KeyTab,
	ebiten.KeyEnter:       ui.KeyEnter,
	ebiten.KeyNumpadEnter: ui.KeyEnter,
	ebiten.KeyEscape:      ui.KeyEscape,
	ebiten.KeyBackspace:   ui.KeyBackspace,
	ebiten.KeyDelete:      ui.KeyDelete,
	ebiten.KeySpace:       ui.KeySpace,
	ebiten.KeyArrowLeft:   ui.KeyLeft,
	ebiten.KeyArrowRight:  ui.KeyRight,
	ebiten.KeyArrowUp:     ui.KeyUp,
	ebiten.KeyArrowDown:   ui.KeyDown,
	ebiten.KeyHome:        ui.KeyHome,
	ebiten.KeyEnd:         ui.KeyEnd,
	ebiten.KeyPageUp:      ui.KeyPageUp,
	ebiten.KeyPageDown:    ui.KeyPageDown,
}

var (
	letterKeys = [...]ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digitKeys = [...]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	functionKeys = [...]ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
)

func init() {
	for i, k := range letterKeys {
		keyMap[k] = ui.KeyA + ui.Key(i)
	}
	for i, k := range digitKeys {
		keyMap[k] = ui.Key0 + ui.Key(i)
	}
	for i, k := range functionKeys {
		keyMap[k] = ui.KeyF1 + ui.Key(i)
	}
}

// modifiers reads the held modifier keys.
func modifiers() ui.Modifiers {
	var m ui.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ui.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ui.ModMeta
	}
	return m
}

var cursorShapes = map[ui.CursorShape]ebiten.CursorShapeType{
	ui.CursorDefault:    ebiten.CursorShapeDefault,
	ui.CursorText:       ebiten.CursorShapeText,
	ui.CursorPointer:    ebiten.CursorShapePointer,
	ui.CursorMove:       ebiten.CursorShapeMove,
	ui.CursorEWResize:   ebiten.CursorShapeEWResize,
	ui.CursorNSResize:   ebiten.CursorShapeNSResize,
	ui.CursorNWSEResize: ebiten.CursorShapeNWSEResize,
	ui.CursorNESWResize: ebiten.CursorShapeNESWResize,
}
