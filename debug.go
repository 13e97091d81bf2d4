package fmod

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// The engine supports installing one process-wide debug sink. Wrapper
// policy: a zap-backed sink is installed automatically before the first
// system is created unless the application claimed the sink first, and
// repeated initialization through the safe entry points only ever
// installs once per call, racing nothing (the read lock keeps it off
// system create/release).

// DebugSink receives engine debug output.
//
// The engine fires this directly from the emitting line, so it can run
// on any engine thread (mixer, streaming, async I/O) and must be
// thread-safe and quick. Calling back into the engine from the sink is
// not supported.
type DebugSink interface {
	Log(flags DebugFlags, file string, line int32, fn string, message string) error
}

const (
	debugModeTTY int32 = iota
	debugModeFile
	debugModeCallback
)

// Boxed because atomic.Value wants one concrete type.
type sinkBox struct{ sink DebugSink }

var (
	debugClaimed atomic.Bool
	debugSink    atomic.Value // sinkBox
)

// InitializeDebug routes engine debug output to the platform default
// location (stderr, logcat, debugger output).
//
// Only the logging build of the native library produces output; the
// release build answers ErrUnsupported.
func InitializeDebug(flags DebugFlags) error {
	if !abi.Installed() {
		return ErrInitialization
	}
	debugClaimed.Store(true)
	return defaultLifecycle.guardRead(func() error {
		return errFrom(abi.Current().DebugInitialize(uint32(flags), debugModeTTY, 0, 0))
	})
}

// InitializeDebugSink routes engine debug output to sink.
func InitializeDebugSink(flags DebugFlags, sink DebugSink) error {
	if !abi.Installed() {
		return ErrInitialization
	}
	debugClaimed.Store(true)
	debugSink.Store(sinkBox{sink: sink})
	return defaultLifecycle.guardRead(func() error {
		return errFrom(abi.Current().DebugInitialize(uint32(flags), debugModeCallback, debugTrampolinePtr(), 0))
	})
}

// initializeDefaultDebug installs the zap-backed sink ahead of system
// creation, unless the application already initialized debugging.
// Failure is expected with release builds of the library and ignored.
func initializeDefaultDebug() {
	if debugClaimed.CompareAndSwap(false, true) {
		debugSink.Store(sinkBox{sink: zapSink{}})
		r := abi.Current().DebugInitialize(
			uint32(DebugLevelLog), debugModeCallback, debugTrampolinePtr(), 0)
		if r != abi.OK {
			logger().Debug("default debug sink not installed",
				zap.Error(errFrom(r)))
		}
	}
}

// zapSink forwards engine debug output to the wrapper logger.
type zapSink struct{}

func (zapSink) Log(flags DebugFlags, file string, line int32, fn string, message string) error {
	fields := []zap.Field{
		zap.String("file", file),
		zap.Int32("line", line),
		zap.String("func", fn),
	}
	switch {
	case flags.Has(DebugLevelError):
		logger().Error(message, fields...)
	case flags.Has(DebugLevelWarning):
		logger().Warn(message, fields...)
	default:
		logger().Debug(message, fields...)
	}
	return nil
}

var debugTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(debugTrampoline)
})

// debugTrampoline matches the native debug callback signature. Fires
// from arbitrary engine threads.
func debugTrampoline(flags uint32, file uintptr, line int32, fn uintptr, message uintptr) abi.Result {
	box, _ := debugSink.Load().(sinkBox)
	sink := box.sink
	if sink == nil {
		return abi.OK
	}
	return catchPanic("debug", func() error {
		return sink.Log(DebugFlags(flags), goString(file), line, goString(fn), goString(message))
	})
}
