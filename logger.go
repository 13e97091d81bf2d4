package fmod

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var activeLogger atomic.Pointer[zap.Logger]

var nopLogger = zap.NewNop()

// logger returns the wrapper's logger. No-op by default.
func logger() *zap.Logger {
	if l := activeLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger routes wrapper diagnostics (release failures, callback
// panics, engine debug output) to l. Safe to call at any time from any
// goroutine; nil restores the no-op logger.
//
// Note that DPanic-level events fire on programmer misuse (for example a
// second safe system creation); install a development logger during
// development to turn those into panics.
func SetLogger(l *zap.Logger) {
	activeLogger.Store(l)
}
