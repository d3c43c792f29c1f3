// Package logging constructs the service logger.
package logging

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the given environment and level.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		parsed = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = parsed

	return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
}
