package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger. level is a zap level name ("debug",
// "info", ...); format is "json" or "console". The returned logger is also
// installed as the zap global so helpers like obs.Time can reach it.
func New(level, format, serviceName string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("new logger: parse level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("new logger: build: %w", err)
	}

	if serviceName != "" {
		log = log.With(zap.String("service", serviceName))
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
