package ui

// Hint is the tag a child carries for its parent's layout.
type Hint string

const (
	North   Hint = "North"
	South   Hint = "South"
	East    Hint = "East"
	West    Hint = "West"
	Center  Hint = "Center"
	Stretch Hint = "Stretch" // CompactGroupLayout: absorbs leftover width
)

// Align is a horizontal alignment, used for flow rows and label text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is a vertical alignment.
type VAlign int

const (
	VAlignCenter VAlign = iota
	VAlignTop
	VAlignBottom
)

// Layout defines how Components are arranged within a Container.
//
// A Layout holds no per-container state: it reads the target's children,
// hints and padding, so one value can serve many containers.
type Layout interface {
	PreferredSize(target *Container) Size
	MinimumSize(target *Container) Size
	MaximumSize(target *Container) Size
	// ArrangeChildren sets the bounds of every visible child of target,
	// given target's current size.
	ArrangeChildren(target *Container)
}

// visibleChildren returns target's children that take part in layout.
func visibleChildren(target *Container) []Component {
	out := make([]Component, 0, len(target.children))
	for _, c := range target.children {
		if c.Core().visible {
			out = append(out, c)
		}
	}
	return out
}
