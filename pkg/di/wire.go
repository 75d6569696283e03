//go:build wireinject

//go:generate wire
package di

import (
	"github.com/lintang-b-s/location-index/pkg/di/config"
	locationindex_di "github.com/lintang-b-s/location-index/pkg/di/locationindex"
	logger_di "github.com/lintang-b-s/location-index/pkg/di/logger"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
)

var placeIndexSet = wire.NewSet(
	defaultSet,
	locationindex_di.NewPlaceIndex,
	wire.Struct(new(PlaceIndexApp), "*"),
)

func InitializePlaceIndexApp() (*PlaceIndexApp, func(), error) {

	panic(wire.Build(placeIndexSet))
}
