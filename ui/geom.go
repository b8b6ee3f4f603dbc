package ui

import "math"

// Unbounded is the size reported by components that can grow without limit.
const Unbounded = math.MaxInt32

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// UnboundedSize is the default maximum size of every component.
func UnboundedSize() Size {
	return Size{Width: Unbounded, Height: Unbounded}
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r. All four edges count as inside.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Location returns the top-left corner of r.
func (r Rectangle) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of r.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Inset shrinks r by s on every side.
func (r Rectangle) Inset(s Spacing) Rectangle {
	return Rectangle{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  r.Width - s.Left - s.Right,
		Height: r.Height - s.Top - s.Bottom,
	}
}

// Spacing is a four-sided record used for margins, padding and borders.
type Spacing struct {
	Top, Right, Bottom, Left float64
}

// Pad builds a Spacing from one to four values, in the same order as CSS
// shorthand: all; top/bottom, right/left; top, right/left, bottom;
// top, right, bottom, left. No values gives the zero Spacing.
func Pad(v ...float64) Spacing {
	switch len(v) {
	case 0:
		return Spacing{}
	case 1:
		return Spacing{v[0], v[0], v[0], v[0]}
	case 2:
		return Spacing{v[0], v[1], v[0], v[1]}
	case 3:
		return Spacing{v[0], v[1], v[2], v[1]}
	default:
		return Spacing{v[0], v[1], v[2], v[3]}
	}
}

// Uniform returns the common value when all four sides are equal, -1 otherwise.
func (s Spacing) Uniform() float64 {
	if s.Top == s.Right && s.Top == s.Bottom && s.Top == s.Left {
		return s.Top
	}
	return -1
}

// Horizontal is Left + Right.
func (s Spacing) Horizontal() float64 { return s.Left + s.Right }

// Vertical is Top + Bottom.
func (s Spacing) Vertical() float64 { return s.Top + s.Bottom }

// CornerRadii holds the rounding of each corner of a component's box.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Radius returns CornerRadii with all corners set to r.
func Radius(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// Uniform returns the common radius when all corners are equal, -1 otherwise.
func (c CornerRadii) Uniform() float64 {
	if c.TopLeft == c.TopRight && c.TopLeft == c.BottomRight && c.TopLeft == c.BottomLeft {
		return c.TopLeft
	}
	return -1
}
