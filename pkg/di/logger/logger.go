package logger_di

import (
	appconfig "github.com/lintang-b-s/location-index/pkg/di/config"
	"github.com/lintang-b-s/location-index/pkg/logger/config"
	myZap "github.com/lintang-b-s/location-index/pkg/logger/zap"

	"go.uber.org/zap"
)

func New(appCfg *appconfig.Config) (*zap.Logger, func(), error) {
	cfg := config.Configuration{
		Level:      appCfg.LogLevel,
		TimeFormat: appCfg.LogTimeFormat,
	}

	err := cfg.Validate()
	if err != nil {
		return nil, nil, err
	}

	log, err := myZap.New(cfg)

	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = log.Sync()
	}

	return log, cleanup, nil
}
