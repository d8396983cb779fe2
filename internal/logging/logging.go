// Package logging wires go.uber.org/zap into the reactor CLI: a single
// process-wide logger configured from the resolved config.Config, plus a
// helper that surfaces a Model's accumulated warnings at the right level.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.Logger for the given level ("debug"/"info"/"warn"/
// "error") and format ("text" prints a human console encoder, anything
// else falls back to structured JSON).
func New(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.DisableStacktrace = true
	if format == "text" {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return cfg.Build()
}

// LogWarnings emits every model-assembly warning at Warn level, tagged
// with the originating model/document name so multi-model runs stay
// attributable in the log stream.
func LogWarnings(logger *zap.Logger, source string, warnings []string) {
	for _, w := range warnings {
		logger.Warn(w, zap.String("source", source))
	}
}
