package geo

// Circle is a radius query region. radius is in km.
type Circle struct {
	centerLat float64
	centerLon float64
	radius    float64
}

func NewCircle(centerLat, centerLon, radius float64) Circle {
	return Circle{
		centerLat: centerLat,
		centerLon: centerLon,
		radius:    radius,
	}
}

func (c Circle) GetCenterLat() float64 {
	return c.centerLat
}

func (c Circle) GetCenterLon() float64 {
	return c.centerLon
}

func (c Circle) GetRadius() float64 {
	return c.radius
}

// is the point (lat, lon) inside the circle?
func (c Circle) Contains(lat, lon float64) bool {
	return HaversineDistance(c.centerLat, c.centerLon, lat, lon) <= c.radius
}

func (c Circle) ContainsPoint(p LatLon) bool {
	return c.Contains(p.Latitude(), p.Longitude())
}

// MayIntersect reports whether rect can hold a point of the circle, judged
// by DistanceToRectangle. It can over-prune: at high latitude or for large
// radii it may return false for a rectangle that does hold a point within
// radius.
func (c Circle) MayIntersect(rect Rectangle) bool {
	return DistanceToRectangle(c.centerLat, c.centerLon, rect) <= c.radius
}
