package ui

import "image/color"

// Surface is the drawing target handed to Component.Draw. Coordinates are
// relative to the current translation; containers translate to their own
// origin before drawing children.
type Surface interface {
	Translate(dx, dy float64)
	FillRect(r Rectangle, radii CornerRadii, clr color.Color)
	StrokeRect(r Rectangle, radii CornerRadii, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	// Text draws s with its baseline at y.
	Text(f Font, s string, x, y float64, clr color.Color)
	// PushClip restricts drawing to r, intersected with the current clip,
	// until the matching PopClip.
	PushClip(r Rectangle)
	PopClip()
}

// withAlpha scales the alpha of c by a, keeping the colour premultiplied.
func withAlpha(c color.Color, a float64) color.Color {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	r, g, b, al := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}

func transparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
