package constellation

import "go.uber.org/zap"

// newLogger returns logger unchanged, or a no-op logger if logger is
// nil. Manager never logs through a nil *zap.Logger (spec §4.9).
func newLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
