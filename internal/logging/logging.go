package logging

import (
	"fmt"

	"github.com/l1jgo/classkit/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the logger name every classkit log line carries.
const Name = "classkit"

// ParseLevel turns a configured level into a zap level. An empty string is
// info; anything zap does not recognize is an error.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("logging level %q: %w", s, err)
	}
	return level, nil
}

// New builds the named zap logger described by cfg. "json" selects the
// production encoder; any other format gets a compact colored console.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := consoleConfig()
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.Named(Name), nil
}

func consoleConfig() zap.Config {
	c := zap.NewDevelopmentConfig()
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	c.EncoderConfig.ConsoleSeparator = " | "
	c.DisableCaller = true
	c.DisableStacktrace = true
	return c
}
