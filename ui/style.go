package ui

import "image/color"

// Style holds the default fonts and colours components fall back to when
// they have no explicit override.
type Style struct {
	Font     Font
	BoldFont Font

	Foreground color.Color
	ToggleOff  color.Color // foreground of deselected toggle buttons
	Background color.Color
	Border     color.Color

	WindowBackground       color.Color
	CompactGroupBackground color.Color
	MainBorder             color.Color // border of direct children of the main window
	FocusBorder            color.Color
	FrameFocusBorder       color.Color
	FrameActiveBorder      color.Color
	TitleBackground        color.Color
	ToolTipBackground      color.Color
	MenuBorder             color.Color

	// ToolTipDelay is how long, in seconds, the pointer has to rest on an
	// anchor before its tooltip shows.
	ToolTipDelay float64
}

// DefaultStyle returns the stock look.
func DefaultStyle() Style {
	return Style{
		Font:                   Font{Size: 12},
		BoldFont:               Font{Size: 12, Bold: true},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToggleOff:              color.RGBA{127, 127, 127, 255},
		Background:             color.NRGBA{127, 127, 127, 225},
		Border:                 color.NRGBA{0, 0, 0, 225},
		WindowBackground:       color.NRGBA{200, 200, 200, 225},
		CompactGroupBackground: color.NRGBA{225, 225, 225, 225},
		MainBorder:             color.NRGBA{127, 127, 127, 225},
		FocusBorder:            color.RGBA{255, 0, 0, 255},
		FrameFocusBorder:       color.NRGBA{200, 0, 0, 200},
		FrameActiveBorder:      color.NRGBA{127, 127, 127, 200},
		TitleBackground:        color.NRGBA{225, 225, 225, 225},
		ToolTipBackground:      color.NRGBA{225, 225, 175, 225},
		MenuBorder:             color.NRGBA{200, 0, 0, 200},
		ToolTipDelay:           0.5,
	}
}

// backgroundStyler lets a component kind pick its default background.
type backgroundStyler interface {
	defaultBackground(st *Style) color.Color
}

// foregroundStyler lets a component kind pick its default foreground.
type foregroundStyler interface {
	defaultForeground(st *Style) color.Color
}
