package locationindex_di

import (
	"github.com/lintang-b-s/location-index/pkg/geo"
	"github.com/lintang-b-s/location-index/pkg/locationindex"

	"go.uber.org/zap"
)

// New registers one index for element type T. Providers built from it are
// called once per injector, so every consumer shares the same index.
func New[T comparable](log *zap.Logger) *locationindex.LocationServiceManager[T] {
	return locationindex.NewLocationServiceManager[T](log.Named("locationindex"))
}

func NewPlaceIndex(log *zap.Logger) *locationindex.LocationServiceManager[geo.Place] {
	return New[geo.Place](log)
}
