package locationindex

import "github.com/lintang-b-s/location-index/pkg/geo"

type LocationService[T comparable] interface {
	// Insert adds point to the index.
	Insert(point geo.Point[T])
	// Delete removes point if it is indexed, otherwise it does nothing.
	Delete(point geo.Point[T])
	// QueryRadius returns the points at most radius km from (lat, lon).
	QueryRadius(lat, lon, radius float64) []geo.Point[T]
	// QueryRange returns the points inside rect.
	QueryRange(rect geo.Rectangle) []geo.Point[T]
	// ClearAll removes every point.
	ClearAll()
}
