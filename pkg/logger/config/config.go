package config

import (
	"github.com/lintang-b-s/text-summarizer/pkg"
)

const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown log level %d", cfg.Level)
	}
	if cfg.TimeFormat == "" {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "empty log time format")
	}
	return nil
}
