// Package log builds the zap logger used by the fuzzy-clock command.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
)

// New returns a development logger when debug is set and a warn level
// production logger otherwise. Both write to stderr.
func New(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Sampling = nil
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}

	return logger, nil
}

// TranslationHook records every translation at debug level.
func TranslationHook(logger *zap.Logger) fuzzyclock.TranslationHook {
	if logger == nil {
		logger = zap.NewNop()
	}

	return fuzzyclock.TranslationHookFuncs{
		After: func(ctx *fuzzyclock.TranslatorHookContext) {
			logger.Debug("translated reading",
				zap.Stringer("language", ctx.Language),
				zap.Stringer("level", ctx.Level),
				zap.Stringer("reading", ctx.Snapshot),
				zap.Bool("24_hour", ctx.Options.Use24Hour),
				zap.Bool("include_units", ctx.Options.IncludeUnits),
				zap.String("phrase", ctx.Result),
			)
		},
	}
}
