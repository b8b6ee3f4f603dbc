package backdrop

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/overlay/proj"
)

func writeShapefile(t *testing.T, typ shp.ShapeType, shapes ...shp.Shape) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layer.shp")
	w, err := shp.Create(path, typ)
	if err != nil {
		t.Fatalf("creating shapefile: %v", err)
	}
	for _, s := range shapes {
		w.Write(s)
	}
	w.Close()
	return path
}

func square(x0, y0, x1, y1 float64) []shp.Point {
	return []shp.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}, {X: x0, Y: y0}}
}

func polygon(rings ...[]shp.Point) *shp.Polygon {
	p := shp.Polygon(*shp.NewPolyLine(rings))
	return &p
}

func TestLoadPolygons(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON,
		polygon(square(-10, -10, 10, 10), square(-2, -2, 2, 2)),
		polygon(square(170, 0, 175, 5)),
	)
	l, err := Load(path, Geographic)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.Features) != 2 {
		t.Fatalf("got %d features; want 2", len(l.Features))
	}
	f := l.Features[0]
	if f.Kind != Polygon || len(f.Parts) != 2 || len(f.Parts[0]) != 5 || len(f.Parts[1]) != 5 {
		t.Errorf("first feature kind %v with %d parts; want a polygon with a hole", f.Kind, len(f.Parts))
	}
	if want := (Box{-10, -10, 175, 10}); l.Box != want {
		t.Errorf("layer box %+v; want %+v", l.Box, want)
	}
}

func TestLoadPoints(t *testing.T) {
	path := writeShapefile(t, shp.POINT, &shp.Point{X: 1, Y: 2}, &shp.Point{X: 3, Y: 4})
	l, err := Load(path, Geographic)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.Features) != 2 || l.Features[1].Kind != Points || l.Features[1].Parts[0][0] != (Point{3, 4}) {
		t.Errorf("got %+v", l.Features)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.shp"), Geographic); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestProjectCullsAndConverts(t *testing.T) {
	path := writeShapefile(t, shp.POLYGON,
		polygon(square(-10, -10, 10, 10)),
		polygon(square(170, 0, 175, 5)),
	)
	l, err := Load(path, Geographic)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v := NewView(512, 512, 0, 0, 2)
	shapes := l.Project(v, nil)
	if len(shapes) != 1 {
		t.Fatalf("got %d visible shapes; want 1", len(shapes))
	}
	// zoom 2 is a 1024 pixel world, the screen shows pixels 256 to 768
	ring := shapes[0].Parts[0]
	wantX := (-10.0+180)/360*1024 - 256
	if math.Abs(ring[0].X-wantX) > 1e-9 {
		t.Errorf("first point x=%v; want %v", ring[0].X, wantX)
	}
	if ring[0].Y <= 256 || ring[1].Y >= 256 {
		t.Errorf("south point at y=%v, north point at y=%v; want them either side of the center", ring[0].Y, ring[1].Y)
	}
}

func TestProjectWebMercator(t *testing.T) {
	l := &Layer{CRS: WebMercator, Features: []Feature{{
		Kind:  Line,
		Parts: [][]Point{{{0, 0}, {proj.MaxMeters / 2, 0}}},
		Box:   Box{0, 0, proj.MaxMeters / 2, 0},
	}}}
	v := NewView(512, 512, 0, 0, 1)
	shapes := l.Project(v, nil)
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes; want 1", len(shapes))
	}
	if got := shapes[0].Parts[0][0]; got != (Point{256, 256}) {
		t.Errorf("origin at %+v; want the screen center", got)
	}
	if got := shapes[0].Parts[0][1].X; math.Abs(got-384) > 1e-6 {
		t.Errorf("half-east point at x=%v; want 384", got)
	}
}

func TestParseCRS(t *testing.T) {
	tests := []struct {
		in      string
		want    CRS
		wantErr bool
	}{
		{"", Geographic, false},
		{"epsg:4326", Geographic, false},
		{"EPSG:3857", WebMercator, false},
		{"EPSG:2056", Geographic, true},
	}
	for _, tt := range tests {
		got, err := ParseCRS(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCRS(%q) = %v, %v; want %v, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
