package locationindex

import (
	"sync"

	"github.com/lintang-b-s/location-index/pkg/datastructure"
	"github.com/lintang-b-s/location-index/pkg/geo"
	"go.uber.org/zap"
)

// LocationServiceManager serializes every operation on one world covering
// quadtree behind a single mutex. Reads block each other as well as writes.
type LocationServiceManager[T comparable] struct {
	mu       sync.Mutex
	quadtree *datastructure.Quadtree[T]
	log      *zap.Logger
}

func NewLocationServiceManager[T comparable](log *zap.Logger) *LocationServiceManager[T] {
	return &LocationServiceManager[T]{
		quadtree: datastructure.NewQuadtree[T](geo.WorldRectangle()),
		log:      log,
	}
}

func (s *LocationServiceManager[T]) Insert(point geo.Point[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quadtree.Insert(point)
	if !s.quadtree.Bound().ContainsPoint(point) {
		s.log.Warn("indexed point outside the world rectangle",
			zap.Float64("lat", point.Latitude()), zap.Float64("lon", point.Longitude()))
	}
}

func (s *LocationServiceManager[T]) Delete(point geo.Point[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.quadtree.Delete(point) {
		s.log.Debug("delete of a point that is not indexed", zap.Stringer("point", point))
	}
}

func (s *LocationServiceManager[T]) QueryRadius(lat, lon, radius float64) []geo.Point[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.quadtree.QueryRadius(lat, lon, radius)
	s.log.Debug("radius query",
		zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Float64("radius_km", radius),
		zap.Int("results", len(result)))
	return result
}

func (s *LocationServiceManager[T]) QueryRange(rect geo.Rectangle) []geo.Point[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.quadtree.QueryRange(rect)
	s.log.Debug("range query", zap.Stringer("rect", rect), zap.Int("results", len(result)))
	return result
}

// QueryRangeBounds validates the bounds before running QueryRange.
func (s *LocationServiceManager[T]) QueryRangeBounds(latMin, lonMin, latMax, lonMax float64) ([]geo.Point[T], error) {
	rect, err := geo.NewRectangle(latMin, lonMin, latMax, lonMax)
	if err != nil {
		return []geo.Point[T]{}, err
	}
	return s.QueryRange(rect), nil
}

func (s *LocationServiceManager[T]) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quadtree.ClearAll()
	s.log.Debug("index cleared")
}

func (s *LocationServiceManager[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quadtree.Size()
}
