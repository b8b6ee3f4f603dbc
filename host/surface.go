package host

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/overlay/ui"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface implements ui.Surface on top of an ebiten image.
type Surface struct {
	fonts  *Fonts
	dst    *ebiten.Image
	dx, dy float64
	clips  []*ebiten.Image
}

// NewSurface returns a surface drawing text with fonts.
func NewSurface(fonts *Fonts) *Surface {
	return &Surface{fonts: fonts}
}

// Begin starts a frame on dst, dropping any translation or clip left over
// from the previous one.
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.dx, s.dy = 0, 0
	s.clips = s.clips[:0]
}

func (s *Surface) target() *ebiten.Image {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.dst
}

func (s *Surface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *Surface) FillRect(r ui.Rectangle, radii ui.CornerRadii, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	if radii == (ui.CornerRadii{}) {
		vector.DrawFilledRect(s.target(), float32(r.X+s.dx), float32(r.Y+s.dy), float32(r.Width), float32(r.Height), clr, true)
		return
	}
	FillPath(s.target(), s.roundedRect(r, radii), clr, ebiten.FillRuleNonZero)
}

func (s *Surface) StrokeRect(r ui.Rectangle, radii ui.CornerRadii, width float64, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 || width <= 0 {
		return
	}
	// the stroke is centred on the path; keep it inside r
	in := ui.Rectangle{X: r.X + width/2, Y: r.Y + width/2, Width: r.Width - width, Height: r.Height - width}
	if radii == (ui.CornerRadii{}) {
		vector.StrokeRect(s.target(), float32(in.X+s.dx), float32(in.Y+s.dy), float32(in.Width), float32(in.Height), float32(width), clr, true)
		return
	}
	StrokePath(s.target(), s.roundedRect(in, radii), width, clr)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.target(),
		float32(x0+s.dx), float32(y0+s.dy),
		float32(x1+s.dx), float32(y1+s.dy),
		float32(width), clr, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.target(), float32(cx+s.dx), float32(cy+s.dy), float32(r), clr, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(s.target(), float32(cx+s.dx), float32(cy+s.dy), float32(r), float32(width), clr, true)
}

func (s *Surface) Text(f ui.Font, str string, x, y float64, clr color.Color) {
	face := s.fonts.Face(f)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+s.dx, y+s.dy-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.target(), str, face, op)
}

// PushClip narrows drawing to r through a sub-image. Sub-images keep the
// coordinates of the image they are cut from.
func (s *Surface) PushClip(r ui.Rectangle) {
	rect := image.Rect(
		int(math.Floor(r.X+s.dx)), int(math.Floor(r.Y+s.dy)),
		int(math.Ceil(r.X+s.dx+r.Width)), int(math.Ceil(r.Y+s.dy+r.Height)),
	)
	cur := s.target()
	rect = rect.Intersect(cur.Bounds())
	s.clips = append(s.clips, cur.SubImage(rect).(*ebiten.Image))
}

func (s *Surface) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// roundedRect builds the outline of r in target coordinates. Radii are
// limited to half the shorter side.
func (s *Surface) roundedRect(r ui.Rectangle, radii ui.CornerRadii) *vector.Path {
	x, y := float32(r.X+s.dx), float32(r.Y+s.dy)
	w, h := float32(r.Width), float32(r.Height)
	limit := min(w, h) / 2
	tl := min(float32(radii.TopLeft), limit)
	tr := min(float32(radii.TopRight), limit)
	br := min(float32(radii.BottomRight), limit)
	bl := min(float32(radii.BottomLeft), limit)

	var p vector.Path
	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	p.ArcTo(x+w, y, x+w, y+tr, tr)
	p.LineTo(x+w, y+h-br)
	p.ArcTo(x+w, y+h, x+w-br, y+h, br)
	p.LineTo(x+bl, y+h)
	p.ArcTo(x, y+h, x, y+h-bl, bl)
	p.LineTo(x, y+tl)
	p.ArcTo(x, y, x+tl, y, tl)
	p.Close()
	return &p
}

// FillPath fills p on dst with a solid colour.
func FillPath(dst *ebiten.Image, p *vector.Path, clr color.Color, rule ebiten.FillRule) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr, rule)
}

// StrokePath strokes p on dst with a solid colour.
func StrokePath(dst *ebiten.Image, p *vector.Path, width float64, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	drawVertices(dst, vs, is, clr, ebiten.FillRuleFillAll)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	if len(is) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
