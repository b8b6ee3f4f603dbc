// Package backdrop loads vector shapes from ESRI shapefiles and projects
// them onto a pannable, zoomable Web Mercator view. It draws nothing
// itself; the host turns the projected shapes into paths.
package backdrop

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/overlay/proj"
)

// CRS is the coordinate system of a shapefile's points.
type CRS int

const (
	// Geographic points are longitude (X) and latitude (Y) in degrees.
	Geographic CRS = iota
	// WebMercator points are EPSG:3857 meters.
	WebMercator
)

// ParseCRS accepts "EPSG:4326" (or an empty string) and "EPSG:3857".
func ParseCRS(s string) (CRS, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "EPSG:4326", "WGS84":
		return Geographic, nil
	case "EPSG:3857", "WEBMERCATOR":
		return WebMercator, nil
	}
	return Geographic, fmt.Errorf("unknown coordinate system %q", s)
}

// Kind says how a shape is drawn.
type Kind int

const (
	Polygon Kind = iota
	Line
	Points
)

// Point is a position in layer or screen coordinates.
type Point struct{ X, Y float64 }

// Box is an axis-aligned bounding box.
type Box struct{ MinX, MinY, MaxX, MaxY float64 }

func (b Box) intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Feature is one shapefile record split into its parts. Polygon parts are
// rings; holes are drawn with the even-odd rule.
type Feature struct {
	Kind  Kind
	Parts [][]Point
	Box   Box
}

// Layer is the content of one shapefile.
type Layer struct {
	CRS      CRS
	Features []Feature
	Box      Box
}

// Load reads every polygon, polyline and point record of the shapefile at
// path. Null and multipatch records are skipped.
func Load(path string, crs CRS) (*Layer, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	l := &Layer{CRS: crs, Box: Box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}}
	for r.Next() {
		_, shape := r.Shape()
		f, ok := featureOf(shape)
		if !ok {
			continue
		}
		l.Features = append(l.Features, f)
		l.Box = Box{
			MinX: math.Min(l.Box.MinX, f.Box.MinX),
			MinY: math.Min(l.Box.MinY, f.Box.MinY),
			MaxX: math.Max(l.Box.MaxX, f.Box.MaxX),
			MaxY: math.Max(l.Box.MaxY, f.Box.MaxY),
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l, nil
}

func featureOf(s shp.Shape) (Feature, bool) {
	switch s := s.(type) {
	case *shp.Polygon:
		return Feature{Kind: Polygon, Parts: split(s.Parts, s.Points), Box: boxOf(s.BBox())}, true
	case *shp.PolygonZ:
		return Feature{Kind: Polygon, Parts: split(s.Parts, s.Points), Box: boxOf(s.BBox())}, true
	case *shp.PolyLine:
		return Feature{Kind: Line, Parts: split(s.Parts, s.Points), Box: boxOf(s.BBox())}, true
	case *shp.PolyLineZ:
		return Feature{Kind: Line, Parts: split(s.Parts, s.Points), Box: boxOf(s.BBox())}, true
	case *shp.Point:
		p := Point{s.X, s.Y}
		return Feature{Kind: Points, Parts: [][]Point{{p}}, Box: Box{p.X, p.Y, p.X, p.Y}}, true
	case *shp.MultiPoint:
		pts := make([]Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = Point{p.X, p.Y}
		}
		return Feature{Kind: Points, Parts: [][]Point{pts}, Box: boxOf(s.BBox())}, true
	}
	return Feature{}, false
}

func boxOf(b shp.Box) Box { return Box{b.MinX, b.MinY, b.MaxX, b.MaxY} }

// split cuts points at the part start indices.
func split(parts []int32, points []shp.Point) [][]Point {
	out := make([][]Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(points) {
			continue
		}
		part := make([]Point, 0, end-start)
		for _, p := range points[start:end] {
			part = append(part, Point{p.X, p.Y})
		}
		out = append(out, part)
	}
	return out
}

// Shape is a feature in screen coordinates.
type Shape struct {
	Kind  Kind
	Parts [][]Point
}

// Project appends to dst the features that overlap v, converted to
// screen coordinates.
func (l *Layer) Project(v *View, dst []Shape) []Shape {
	screen := Box{0, 0, float64(v.ScreenWidth), float64(v.ScreenHeight)}
	left, top := v.TopLeft()
	toScreen := func(p Point) Point {
		if l.CRS == WebMercator {
			x, y := proj.WebMercatorToScreenCoords(p.X, p.Y, v.Zoom, left, top, TileSize)
			return Point{x, y}
		}
		tx, ty := proj.LatLonToTileCoords(p.Y, p.X, v.Zoom)
		return Point{tx*TileSize - left, ty*TileSize - top}
	}

	for _, f := range l.Features {
		// north is up: the box's max Y lands on the smaller screen Y
		a := toScreen(Point{f.Box.MinX, f.Box.MaxY})
		b := toScreen(Point{f.Box.MaxX, f.Box.MinY})
		if !screen.intersects(Box{a.X, a.Y, b.X, b.Y}) {
			continue
		}
		s := Shape{Kind: f.Kind, Parts: make([][]Point, len(f.Parts))}
		for i, part := range f.Parts {
			sp := make([]Point, len(part))
			for j, p := range part {
				sp[j] = toScreen(p)
			}
			s.Parts[i] = sp
		}
		dst = append(dst, s)
	}
	return dst
}
