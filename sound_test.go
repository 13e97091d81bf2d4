package fmod

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soniccore/fmod-go/abi"
)

func newTestSound(t *testing.T, sys *System) *Sound {
	t.Helper()
	h, err := sys.CreateSound("jingle.wav", ModeDefault, nil)
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h.Resource()
}

func TestSoundModeAndLoop(t *testing.T) {
	m := installMock(t)
	sys := newTestSystem(t)
	snd := newTestSound(t, sys)

	require.NoError(t, snd.SetMode(ModeLoopNormal))
	mode, err := snd.Mode()
	require.NoError(t, err)
	require.True(t, mode.Has(ModeLoopNormal))

	require.NoError(t, snd.SetLoopCount(-1))
	n, err := snd.LoopCount()
	require.NoError(t, err)
	require.Equal(t, int32(-1), n)
	require.Equal(t, 1, m.callCount("SoundSetLoopCount"))
}

func TestSoundLengthAndFormat(t *testing.T) {
	installMock(t)
	sys := newTestSystem(t)
	snd := newTestSound(t, sys)

	length, err := snd.Length(TimeUnitPCM)
	require.NoError(t, err)
	require.Equal(t, uint32(44100), length)

	kind, format, channels, bits, err := snd.Format()
	require.NoError(t, err)
	require.Equal(t, SoundTypeWAV, kind)
	require.Equal(t, SoundFormatPCM16, format)
	require.Equal(t, int32(2), channels)
	require.Equal(t, int32(16), bits)
}

func TestSoundName(t *testing.T) {
	installMock(t)
	sys := newTestSystem(t)
	snd := newTestSound(t, sys)

	name, err := snd.Name()
	require.NoError(t, err)
	require.Equal(t, "jingle.wav", name)
}

func TestSoundOpenState(t *testing.T) {
	m := installMock(t)
	sys := newTestSystem(t)
	snd := newTestSound(t, sys)

	state, _, _, err := snd.OpenState()
	require.NoError(t, err)
	require.Equal(t, OpenStateReady, state)

	// A nonblocking open that failed keeps the error on the sound.
	m.procs.SoundGetOpenState = func(sound uintptr, st *int32, buffered *uint32, starving, busy *int32) abi.Result {
		return abi.ErrFormat
	}
	state, _, _, err = snd.OpenState()
	require.ErrorIs(t, err, ErrFormat)
	require.Equal(t, OpenStateError, state)
}

func TestSoundNotReadyPassthrough(t *testing.T) {
	m := installMock(t)
	sys := newTestSystem(t)
	snd := newTestSound(t, sys)

	// Operations on a still-loading sound answer with the retry code;
	// the wrapper maps it without special-casing.
	m.procs.SoundGetLength = func(sound uintptr, length *uint32, unit uint32) abi.Result {
		return abi.ErrNotReady
	}
	_, err := snd.Length(TimeUnitMS)
	require.ErrorIs(t, err, ErrNotReady)
	var e Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindNotReady, e.Kind())
}
