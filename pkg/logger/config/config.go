package config

import "github.com/lintang-b-s/location-index/pkg"

// levels follow zapcore.Level.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int    `validate:"min=-1,max=5"`
	TimeFormat string `validate:"required"`
}

func (c Configuration) Validate() error {
	return pkg.ValidateStruct(c)
}
