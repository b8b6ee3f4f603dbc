package backdrop

import (
	"math"

	"github.com/OpticalFlyer/overlay/proj"
)

const (
	// TileSize is the pixel size of one tile of the Web Mercator grid.
	TileSize = 256
	// MaxZoomLevel is the deepest zoom the view allows.
	MaxZoomLevel = 19
	// PanSpeed is how far, in pixels, one keyboard pan step moves.
	PanSpeed = 50
)

// PanDirection is a keyboard pan direction.
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// View is a slippy-map viewport: a center in degrees, an integer zoom and
// a screen size.
type View struct {
	CenterLat    float64
	CenterLon    float64
	Zoom         int
	ScreenWidth  int
	ScreenHeight int
}

// NewView returns a view of the given screen size.
func NewView(screenWidth, screenHeight int, lat, lon float64, zoom int) *View {
	return &View{
		CenterLat:    lat,
		CenterLon:    lon,
		Zoom:         max(0, min(zoom, MaxZoomLevel)),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// worldSize is the number of tiles along one axis at the current zoom.
func (v *View) worldSize() float64 { return proj.Scale(v.Zoom) }

func (v *View) center() (x, y float64) {
	return proj.LatLonToTileCoords(v.CenterLat, v.CenterLon, v.Zoom)
}

func (v *View) setCenter(tileX, tileY float64) {
	n := v.worldSize()
	tileX = math.Max(0, math.Min(n, tileX))
	tileY = math.Max(0, math.Min(n, tileY))
	v.CenterLat, v.CenterLon = proj.TileCoordsToLatLon(tileX, tileY, v.Zoom)
}

// Pan moves the map one step in dir.
func (v *View) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		v.PanBy(PanSpeed, 0)
	case PanRight:
		v.PanBy(-PanSpeed, 0)
	case PanUp:
		v.PanBy(0, PanSpeed)
	case PanDown:
		v.PanBy(0, -PanSpeed)
	}
}

// PanBy drags the map by a screen offset: positive dx moves the map right,
// showing more of the west. The center stays on the world.
func (v *View) PanBy(dx, dy float64) {
	cx, cy := v.center()
	v.setCenter(cx-dx/TileSize, cy-dy/TileSize)
}

// ZoomIn increases the zoom level up to MaxZoomLevel.
func (v *View) ZoomIn() {
	if v.Zoom < MaxZoomLevel {
		v.Zoom++
	}
}

// ZoomOut decreases the zoom level down to 0.
func (v *View) ZoomOut() {
	if v.Zoom > 0 {
		v.Zoom--
	}
}

// ScreenToWorld converts a screen position to tile coordinates.
func (v *View) ScreenToWorld(screenX, screenY float64) (tileX, tileY float64) {
	cx, cy := v.center()
	tileX = cx + (screenX-float64(v.ScreenWidth)/2)/TileSize
	tileY = cy + (screenY-float64(v.ScreenHeight)/2)/TileSize
	return tileX, tileY
}

// WorldToScreen converts tile coordinates to a screen position.
func (v *View) WorldToScreen(tileX, tileY float64) (screenX, screenY float64) {
	cx, cy := v.center()
	screenX = (tileX-cx)*TileSize + float64(v.ScreenWidth)/2
	screenY = (tileY-cy)*TileSize + float64(v.ScreenHeight)/2
	return screenX, screenY
}

// TopLeft returns the world pixel shown at the screen's top-left corner.
func (v *View) TopLeft() (pixelX, pixelY float64) {
	cx, cy := v.center()
	return cx*TileSize - float64(v.ScreenWidth)/2, cy*TileSize - float64(v.ScreenHeight)/2
}

// ZoomAtPoint zooms one level in or out keeping the world point under the
// screen position in place. Positions off the world do not zoom.
func (v *View) ZoomAtPoint(zoomIn bool, screenX, screenY float64) {
	if (zoomIn && v.Zoom >= MaxZoomLevel) || (!zoomIn && v.Zoom <= 0) {
		return
	}
	wx, wy := v.ScreenToWorld(screenX, screenY)
	n := v.worldSize()
	if wx < 0 || wx > n || wy < 0 || wy > n {
		return
	}

	scale := 2.0
	if zoomIn {
		v.Zoom++
	} else {
		v.Zoom--
		scale = 0.5
	}
	newX := wx*scale - (screenX-float64(v.ScreenWidth)/2)/TileSize
	newY := wy*scale - (screenY-float64(v.ScreenHeight)/2)/TileSize

	lat, lon := proj.TileCoordsToLatLon(newX, newY, v.Zoom)
	v.CenterLon = math.Max(-180.0, math.Min(180.0, lon))
	v.CenterLat = math.Max(-85.0511, math.Min(85.0511, lat))
}
