package config

import (
	"errors"
	"runtime"
	"time"

	logconfig "github.com/lintang-b-s/location-index/pkg/logger/config"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel      int
	LogTimeFormat string
	BenchWorkers  int
}

// New reads config.yaml from the working directory when there is one.
// Environment variables override file values.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("LOG_LEVEL", logconfig.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("BENCH_WORKERS", runtime.NumCPU())

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{
		LogLevel:      viper.GetInt("LOG_LEVEL"),
		LogTimeFormat: viper.GetString("LOG_TIME_FORMAT"),
		BenchWorkers:  viper.GetInt("BENCH_WORKERS"),
	}
	return config, nil
}
