package geo

import (
	"math"
	"strconv"

	"github.com/lintang-b-s/location-index/pkg"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// child order of Quadrants.
const (
	NE = iota
	NW
	SW
	SE
)

// Rectangle is an axis-aligned lat/lon boundary. Edges are inclusive.
type Rectangle struct {
	latMin, lonMin, latMax, lonMax float64
}

type rectangleBounds struct {
	LatMin float64 `validate:"ltefield=LatMax"`
	LonMin float64 `validate:"ltefield=LonMax"`
	LatMax float64
	LonMax float64
}

// NewRectangle returns an error wrapping pkg.ErrBadParamInput when a min
// exceeds its max or when a bound is NaN.
func NewRectangle(latMin, lonMin, latMax, lonMax float64) (Rectangle, error) {
	err := pkg.ValidateStruct(rectangleBounds{
		LatMin: latMin,
		LonMin: lonMin,
		LatMax: latMax,
		LonMax: lonMax,
	})
	if err != nil {
		return Rectangle{}, err
	}
	return newRectangle(latMin, lonMin, latMax, lonMax), nil
}

func MustNewRectangle(latMin, lonMin, latMax, lonMax float64) Rectangle {
	rect, err := NewRectangle(latMin, lonMin, latMax, lonMax)
	if err != nil {
		panic(err)
	}
	return rect
}

func newRectangle(latMin, lonMin, latMax, lonMax float64) Rectangle {
	return Rectangle{
		latMin: latMin,
		lonMin: lonMin,
		latMax: latMax,
		lonMax: lonMax,
	}
}

// WorldRectangle covers the whole lat/lon domain.
func WorldRectangle() Rectangle {
	return newRectangle(MinLatitude, MinLongitude, MaxLatitude, MaxLongitude)
}

func (r Rectangle) GetLatMin() float64 {
	return r.latMin
}

func (r Rectangle) GetLonMin() float64 {
	return r.lonMin
}

func (r Rectangle) GetLatMax() float64 {
	return r.latMax
}

func (r Rectangle) GetLonMax() float64 {
	return r.lonMax
}

func (r Rectangle) Contains(lat, lon float64) bool {
	if lat < r.latMin || lat > r.latMax {
		return false
	}
	if lon < r.lonMin || lon > r.lonMax {
		return false
	}
	return true
}

func (r Rectangle) ContainsPoint(p LatLon) bool {
	return r.Contains(p.Latitude(), p.Longitude())
}

// Intersects treats shared edges as intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(other.latMin > r.latMax || other.latMax < r.latMin ||
		other.lonMin > r.lonMax || other.lonMax < r.lonMin)
}

// Quadrants splits r at the midpoint of both axes. Every quadrant keeps the
// shared midlines, so a point on a midline is contained by more than one of them.
func (r Rectangle) Quadrants() [4]Rectangle {
	latMid := (r.latMin + r.latMax) / 2
	lonMid := (r.lonMin + r.lonMax) / 2

	var quadrants [4]Rectangle
	quadrants[NE] = newRectangle(latMid, lonMid, r.latMax, r.lonMax)
	quadrants[NW] = newRectangle(r.latMin, lonMid, latMid, r.lonMax)
	quadrants[SW] = newRectangle(r.latMin, r.lonMin, latMid, lonMid)
	quadrants[SE] = newRectangle(latMid, r.lonMin, r.latMax, lonMid)
	return quadrants
}

// Clamp returns the point of r nearest to (lat, lon) in the plane.
func (r Rectangle) Clamp(lat, lon float64) (float64, float64) {
	closestLat := math.Max(r.latMin, math.Min(lat, r.latMax))
	closestLon := math.Max(r.lonMin, math.Min(lon, r.lonMax))
	return closestLat, closestLon
}

func (r Rectangle) String() string {
	return "[" + formatFloat(r.latMin) + "," + formatFloat(r.lonMin) + "," +
		formatFloat(r.latMax) + "," + formatFloat(r.lonMax) + "]"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
