package ui

import "math"

// Slider selects an integer in [Min, Max] by dragging a knob along a line.
// Every change fires an action event with the command suffix
// "##valueChanged".
type Slider struct {
	Base
	value, min, max int
	prefWidth       float64
	knobSize        float64
	command         string
}

func NewSlider(ctl *Controller, command string) *Slider {
	s := &Slider{max: 100, knobSize: 8, command: command}
	s.Init(s, ctl)
	s.clickable = true
	return s
}

// ActionCommand returns the prefix of fired commands, "Slider" by default.
func (s *Slider) ActionCommand() string {
	if s.command != "" {
		return s.command
	}
	return "Slider"
}

func (s *Slider) SetActionCommand(cmd string) { s.command = cmd }

func (s *Slider) Value() int          { return s.value }
func (s *Slider) SetValue(v int)      { s.value = v }
func (s *Slider) Min() int            { return s.min }
func (s *Slider) Max() int            { return s.max }
func (s *Slider) SetRange(lo, hi int) { s.min, s.max = lo, hi }

// SetPreferredWidth sets the length of the line, excluding the knob.
func (s *Slider) SetPreferredWidth(w float64) {
	s.prefWidth = w
	s.self.Invalidate()
}

func (s *Slider) MinimumSize() Size {
	return Size{Width: s.prefWidth + s.knobSize, Height: s.knobSize}
}

// track returns the usable length of the line.
func (s *Slider) track() float64 {
	return s.bounds.Width - s.padding.Left - s.padding.Right - s.knobSize
}

// HandleMouse sets the value from the pointer while the slider holds the
// press capture.
func (s *Slider) HandleMouse(e *MouseEvent) {
	s.Base.HandleMouse(e)
	if s.ctl == nil || s.ctl.captured != s.self {
		return
	}
	w := s.track()
	if w <= 0 || s.max == s.min {
		return
	}
	old := s.value
	pos := e.X - s.LocationOnScreen().X - s.padding.Left - s.knobSize/2
	v := s.min + int(math.Round(pos/w*float64(s.max-s.min)))
	s.value = max(s.min, min(s.max, v))
	if s.value != old {
		s.ctl.FireAction(ActionEvent{Source: s.self, Command: s.ActionCommand() + "##valueChanged"})
	}
}

func (s *Slider) Draw(sf Surface) {
	s.Base.Draw(sf)
	fg := s.ForegroundColor()
	active := s.ctl != nil && s.ctl.captured == s.self
	lw, r := .25, .7*s.knobSize
	if active {
		lw, r = 1, s.knobSize
	}
	inner := s.bounds.Width - s.padding.Left - s.padding.Right
	y := s.bounds.Y + s.padding.Top + (s.bounds.Height-s.padding.Top-s.padding.Bottom)/2
	x0 := s.bounds.X + s.padding.Left + s.knobSize/2
	sf.StrokeLine(x0, y, s.bounds.X+s.padding.Left+inner-s.knobSize/2, y, lw, fg)
	var off float64
	if s.max != s.min {
		off = float64(s.value-s.min) * s.track() / float64(s.max-s.min)
	}
	sf.FillCircle(x0+off, y, r/2, fg)
}
