// Package proj converts between geographic coordinates, Web Mercator
// meters and slippy-map tile coordinates.
package proj

import "math"

const (
	maxLat   = 85.0511 // arctan(sinh(π)), the Web Mercator latitude limit
	minLat   = -85.0511
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	// MaxMeters is the half extent of the Web Mercator plane.
	MaxMeters = 20037508.34

	// MaxZoom is the deepest zoom level the tables cover.
	MaxZoom = 21
)

// pow2 holds 2^zoom for every supported zoom level.
var pow2 = [MaxZoom + 1]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

// Scale returns the number of tiles along one axis at zoom, clamping zoom
// to [0, MaxZoom].
func Scale(zoom int) float64 {
	return pow2[max(0, min(zoom, MaxZoom))]
}

// LatLonToTileCoords converts WGS84 degrees to fractional tile coordinates
// at zoom. Latitude is clamped to the Web Mercator limits.
func LatLonToTileCoords(lat, lon float64, zoom int) (x, y float64) {
	if lat > maxLat {
		lat = maxLat
	} else if lat < minLat {
		lat = minLat
	}
	n := Scale(zoom)
	x = (lon + 180.0) * (n / 360.0)

	if lat >= maxLat {
		return x, 0
	}
	if lat <= minLat {
		return x, n
	}
	sinLat := math.Sin(lat * degToRad)
	y = n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)
	return x, y
}

// TileCoordsToLatLon is the inverse of LatLonToTileCoords.
func TileCoordsToLatLon(x, y float64, zoom int) (lat, lon float64) {
	n := Scale(zoom)
	lon = x/n*360.0 - 180.0
	lat = math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * radToDeg
	return lat, lon
}

// WebMercatorToTileCoords converts EPSG:3857 meters to fractional tile
// coordinates at zoom.
func WebMercatorToTileCoords(x, y float64, zoom int) (tileX, tileY float64) {
	nx := (x + MaxMeters) / (2 * MaxMeters)
	ny := 1 - ((y + MaxMeters) / (2 * MaxMeters))
	n := Scale(zoom)
	return nx * n, ny * n
}

// WebMercatorToScreenCoords converts EPSG:3857 meters to screen pixels,
// given the world pixel at the screen's top-left corner.
func WebMercatorToScreenCoords(x, y float64, zoom int, mapTopLeftPixelX, mapTopLeftPixelY, tileSize float64) (screenX, screenY float64) {
	tileX, tileY := WebMercatorToTileCoords(x, y, zoom)
	return tileX*tileSize - mapTopLeftPixelX, tileY*tileSize - mapTopLeftPixelY
}
