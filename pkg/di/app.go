package di

import (
	"github.com/lintang-b-s/location-index/pkg/di/config"
	"github.com/lintang-b-s/location-index/pkg/geo"
	"github.com/lintang-b-s/location-index/pkg/locationindex"

	"go.uber.org/zap"
)

type PlaceIndexApp struct {
	Config     *config.Config
	Log        *zap.Logger
	PlaceIndex *locationindex.LocationServiceManager[geo.Place]
}
