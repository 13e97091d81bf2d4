package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/soniccore/fmod-go/abi"
)

func resetDebugState(t *testing.T) {
	t.Helper()
	reset := func() {
		debugClaimed.Store(false)
		debugSink.Store(sinkBox{})
	}
	reset()
	t.Cleanup(reset)
}

func TestInitializeDebugRequiresLoadedLibrary(t *testing.T) {
	uninstallABI(t)
	resetDebugState(t)
	require.ErrorIs(t, InitializeDebug(DebugLevelLog), ErrInitialization)
}

func TestInitializeDebugPassesFlags(t *testing.T) {
	m := installMock(t)
	resetDebugState(t)

	var gotFlags uint32
	var gotMode int32
	m.procs.DebugInitialize = func(flags uint32, mode int32, callback, filename uintptr) abi.Result {
		m.count("DebugInitialize")
		gotFlags, gotMode = flags, mode
		return abi.OK
	}

	require.NoError(t, InitializeDebug(DebugLevelWarning|DebugTypeFile))
	require.Equal(t, uint32(DebugLevelWarning|DebugTypeFile), gotFlags)
	require.Equal(t, debugModeTTY, gotMode)
}

func TestInitializeDebugSinkRoutesOutput(t *testing.T) {
	m := installMock(t)
	resetDebugState(t)

	var gotCallback uintptr
	m.procs.DebugInitialize = func(flags uint32, mode int32, callback, filename uintptr) abi.Result {
		m.count("DebugInitialize")
		gotCallback = callback
		return abi.OK
	}

	var got []string
	sink := sinkFunc(func(flags DebugFlags, file string, line int32, fn string, message string) error {
		got = append(got, message)
		return nil
	})
	require.NoError(t, InitializeDebugSink(DebugLevelLog, sink))
	require.NotZero(t, gotCallback)

	res := debugTrampoline(uint32(DebugLevelWarning),
		cString("fmod_channel.cpp"), 42, cString("Channel::setVolume"),
		cString("volume clamped"))
	require.Equal(t, abi.OK, res)
	require.Equal(t, []string{"volume clamped"}, got)
}

func TestDebugTrampolineNoSink(t *testing.T) {
	resetDebugState(t)
	debugSink.Store(sinkBox{})
	require.Equal(t, abi.OK, debugTrampoline(uint32(DebugLevelLog), 0, 0, 0, 0))
}

func TestDebugTrampolinePanicContainment(t *testing.T) {
	resetDebugState(t)
	debugSink.Store(sinkBox{sink: sinkFunc(func(DebugFlags, string, int32, string, string) error {
		panic("sink bug")
	})})
	require.Equal(t, abi.ErrInternalWrapper,
		debugTrampoline(uint32(DebugLevelLog), 0, 0, 0, 0))
}

func TestDefaultDebugInstalledOnce(t *testing.T) {
	m := installMock(t)
	resetDebugState(t)
	var l Lifecycle

	h, err := l.NewSystem()
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.Equal(t, 1, m.callCount("DebugInitialize"))

	// The next creation sees debugging already claimed.
	h, err = l.NewSystem()
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.Equal(t, 1, m.callCount("DebugInitialize"))
}

func TestZapSinkLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	sink := zapSink{}
	require.NoError(t, sink.Log(DebugLevelError, "f.cpp", 1, "fn", "bad"))
	require.NoError(t, sink.Log(DebugLevelWarning, "f.cpp", 2, "fn", "iffy"))
	require.NoError(t, sink.Log(DebugLevelLog, "f.cpp", 3, "fn", "fine"))

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "bad", entries[0].Message)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

type sinkFunc func(flags DebugFlags, file string, line int32, fn string, message string) error

func (f sinkFunc) Log(flags DebugFlags, file string, line int32, fn string, message string) error {
	return f(flags, file, line, fn, message)
}
