package fmod

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/soniccore/fmod-go/abi"
)

// Sound is loaded (or streaming) audio data. Sounds are created by
// System.CreateSound and System.CreateStream and owned by the returned
// handle.
type Sound struct {
	opaque
}

func (s *Sound) release() error {
	raw := s.Raw()
	// A nonblocking sound parks its dispatch token in userdata; drop
	// the registration with it.
	var token uintptr
	if abi.Current().SoundGetUserData(raw, &token) == abi.OK && token != 0 {
		nonBlockCallbacks.delete(token)
	}
	return errFrom(abi.Current().SoundRelease(raw))
}

// SetMode changes the relative playback modes of the sound. Creation
// modes like the open and create-stream bits cannot be changed here.
func (s *Sound) SetMode(mode Mode) error {
	return errFrom(abi.Current().SoundSetMode(s.Raw(), uint32(mode)))
}

// Mode reports the current mode bits, creation bits included.
func (s *Sound) Mode() (Mode, error) {
	var m uint32
	err := errFrom(abi.Current().SoundGetMode(s.Raw(), &m))
	return Mode(m), err
}

// SetLoopCount sets how many times a looping sound repeats. 0 plays
// once, -1 loops forever.
func (s *Sound) SetLoopCount(count int32) error {
	return errFrom(abi.Current().SoundSetLoopCount(s.Raw(), count))
}

// LoopCount reports the loop count.
func (s *Sound) LoopCount() (int32, error) {
	var n int32
	err := errFrom(abi.Current().SoundGetLoopCount(s.Raw(), &n))
	return n, err
}

// Length reports the length of the sound in the given unit.
func (s *Sound) Length(unit TimeUnit) (uint32, error) {
	var n uint32
	err := errFrom(abi.Current().SoundGetLength(s.Raw(), &n, uint32(unit)))
	return n, err
}

// Format reports the codec, sample format, channel count and bit depth.
func (s *Sound) Format() (SoundType, SoundFormat, int32, int32, error) {
	var kind, format, channels, bits int32
	err := errFrom(abi.Current().SoundGetFormat(s.Raw(), &kind, &format, &channels, &bits))
	return SoundType(kind), SoundFormat(format), channels, bits, err
}

// Name reports the name of the sound, usually the file name it was
// opened from.
func (s *Sound) Name() (string, error) {
	var buf [256]byte
	if err := errFrom(abi.Current().SoundGetName(s.Raw(), &buf[0], int32(len(buf)))); err != nil {
		return "", err
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}

// OpenState reports the loading state of the sound along with stream
// buffering details. For a nonblocking sound whose open failed, state
// is OpenStateError and err carries the retained open error.
func (s *Sound) OpenState() (state OpenState, percentBuffered uint32, starving bool, err error) {
	var st, starve, busy int32
	r := abi.Current().SoundGetOpenState(s.Raw(), &st, &percentBuffered, &starve, &busy)
	if r != abi.OK {
		return OpenStateError, percentBuffered, goBool(starve), errFrom(r)
	}
	return OpenState(st), percentBuffered, goBool(starve), nil
}

var nonBlockCallbacks registry[NonBlockCallback]

var nonBlockTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(nonBlockTrampoline)
})

func nonBlockTrampoline(sound uintptr, result abi.Result) abi.Result {
	var token uintptr
	if r := abi.Current().SoundGetUserData(sound, &token); r != abi.OK {
		return r
	}
	cb, ok := nonBlockCallbacks.load(token)
	if !ok {
		return abi.OK
	}
	return catchPanic("nonblock", func() error {
		return cb(rawRes[Sound](sound), errFrom(result))
	})
}
