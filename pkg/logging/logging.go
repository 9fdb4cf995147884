// Package logging builds the process logger. Logging is off unless debug
// mode is requested; the tool's primary output channel is the presenter.
package logging

import "go.uber.org/zap"

// New returns the process logger. With debug enabled it is a development
// logger on stderr; otherwise a no-op.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
