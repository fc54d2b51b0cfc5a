// Package obslog builds the zap logger every repair component logs
// through, falling back to a no-op logger if construction fails.
package obslog

import "go.uber.org/zap"

// New returns a sugared zap logger — development-mode when debug is true,
// production-mode otherwise — or a no-op logger if construction fails.
func New(debug bool) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

// Nop returns a logger that discards everything, used by tests and by
// callers that never configured logging.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
