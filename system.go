package fmod

import (
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// System is the root engine object. Create one with NewSystem, call
// Init before anything else, and pump Update from one goroutine.
//
// Closing the system handle invalidates every object created from it;
// close or leak child handles first.
type System struct {
	opaque
}

func (s *System) release() error {
	raw := s.Raw()
	systemCallbacks.delete(raw)
	guard, ok := systemGuards.load(raw)
	if !ok {
		// Adopted from an address the guard never saw. Release
		// directly; there is no live count to maintain.
		logger().Warn("releasing unguarded system", zap.Uintptr("raw", raw))
		return errFrom(abi.Current().SystemRelease(raw))
	}
	return guard.releaseSystem(raw)
}

// Init readies the system for playback. maxChannels is the number of
// virtual voices, up to 4095.
func (s *System) Init(maxChannels int32, flags InitFlags) error {
	return errFrom(abi.Current().SystemInit(s.Raw(), maxChannels, uint32(flags), 0))
}

// Close shuts playback down, keeping the system reusable with another
// Init. Objects created since Init are invalidated.
func (s *System) Close() error {
	return errFrom(abi.Current().SystemClose(s.Raw()))
}

// Update pumps the engine. Call once per frame, or at least every few
// tens of milliseconds, from a single goroutine.
func (s *System) Update() error {
	return errFrom(abi.Current().SystemUpdate(s.Raw()))
}

// Version reports the version of the loaded native library. Comparing
// against HeaderVersion catches a stale library on the search path.
func (s *System) Version() (VersionNumber, error) {
	var v uint32
	if err := errFrom(abi.Current().SystemGetVersion(s.Raw(), &v)); err != nil {
		return 0, err
	}
	return VersionNumber(v), nil
}

// MixerSuspend halts the output device and mixer thread, for mobile
// backgrounding. Every engine call between suspend and resume must come
// from the goroutine that called MixerSuspend.
func (s *System) MixerSuspend() error {
	return errFrom(abi.Current().SystemMixerSuspend(s.Raw()))
}

// MixerResume restarts the output device and mixer thread.
func (s *System) MixerResume() error {
	return errFrom(abi.Current().SystemMixerResume(s.Raw()))
}

// SetSoftwareFormat sets the mixer output format. Only before Init.
func (s *System) SetSoftwareFormat(sampleRate int32, mode SpeakerMode, numRawSpeakers int32) error {
	return errFrom(abi.Current().SystemSetSoftwareFormat(
		s.Raw(), sampleRate, int32(mode), numRawSpeakers))
}

// SoftwareFormat reports the mixer output format.
func (s *System) SoftwareFormat() (sampleRate int32, mode SpeakerMode, numRawSpeakers int32, err error) {
	var m int32
	err = errFrom(abi.Current().SystemGetSoftwareFormat(s.Raw(), &sampleRate, &m, &numRawSpeakers))
	return sampleRate, SpeakerMode(m), numRawSpeakers, err
}

// SystemCallback receives system notifications selected by the mask
// passed to SetCallback. It fires on engine threads, including the
// mixer for the mix-stage kinds, and must be quick and thread-safe.
//
// The command data arguments are kind-specific native pointers, valid
// only for the duration of the call.
type SystemCallback interface {
	Notification(sys *System, kind SystemCallbackMask, commandData1, commandData2 uintptr) error
}

var systemCallbacks registry[SystemCallback]

// SetCallback installs cb for the notification kinds in mask, replacing
// any previous callback. A nil cb uninstalls.
func (s *System) SetCallback(cb SystemCallback, mask SystemCallbackMask) error {
	raw := s.Raw()
	if cb == nil {
		if err := errFrom(abi.Current().SystemSetCallback(raw, 0, uint32(mask))); err != nil {
			return err
		}
		systemCallbacks.delete(raw)
		return nil
	}
	systemCallbacks.store(raw, cb)
	return errFrom(abi.Current().SystemSetCallback(raw, systemTrampolinePtr(), uint32(mask)))
}

var systemTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(systemTrampoline)
})

func systemTrampoline(system uintptr, kind uint32, commandData1, commandData2, userData uintptr) abi.Result {
	cb, ok := systemCallbacks.load(system)
	if !ok {
		// The engine can still deliver queued notifications right
		// after an uninstall; drop them.
		return abi.OK
	}
	return catchPanic("system", func() error {
		return cb.Notification(rawRes[System](system),
			SystemCallbackMask(kind), commandData1, commandData2)
	})
}

// NonBlockCallback fires when a sound opened with ModeNonBlocking
// finishes loading, or when a stream finishes a deferred seek.
// openResult carries the engine's verdict; a failed open still delivers
// the sound so it can be released.
//
// Fires on the async-load thread. Do not release the sound from inside
// the callback.
type NonBlockCallback func(sound *Sound, openResult error) error

// SoundOptions carries the optional open parameters for CreateSound and
// CreateStream. The zero value of a field means "not specified".
type SoundOptions struct {
	// Length limits how many bytes of the source are read, and is
	// required with ModeOpenMemory and ModeOpenRaw.
	Length uint32
	// NumChannels, DefaultFrequency and Format describe raw or
	// user-created sample data.
	NumChannels      int32
	DefaultFrequency int32
	Format           SoundFormat
	// SuggestedSoundType makes the named codec try first.
	SuggestedSoundType SoundType
	// InitialSubsound selects the subsound to seek streams to.
	InitialSubsound int32
	// NonBlock is required with ModeNonBlocking and ignored otherwise.
	NonBlock NonBlockCallback
}

func (o *SoundOptions) exInfo() *abi.CreateSoundExInfo {
	info := abi.NewCreateSoundExInfo()
	info.Length = o.Length
	info.NumChannels = o.NumChannels
	info.DefaultFrequency = o.DefaultFrequency
	info.Format = int32(o.Format)
	info.SuggestedSoundType = int32(o.SuggestedSoundType)
	info.InitialSubsound = o.InitialSubsound
	if o.NonBlock != nil {
		token := nextCallbackToken()
		nonBlockCallbacks.store(token, o.NonBlock)
		info.UserData = token
		info.NonBlockCallback = nonBlockTrampolinePtr()
	}
	return info
}

// CreateSound loads a sound fully into memory. nameOrURL is a file
// path, an URL, or with the open-memory modes a pointer baked into
// opts. Pass nil opts for defaults.
//
// With ModeNonBlocking the returned handle is valid immediately but the
// sound only becomes usable once opts.NonBlock fires with a nil result;
// meanwhile most operations on it return ErrNotReady.
func (s *System) CreateSound(nameOrURL string, mode Mode, opts *SoundOptions) (*Handle[*Sound], error) {
	return s.createSound(abi.Current().SystemCreateSound, nameOrURL, mode, opts)
}

// CreateStream opens a sound for streamed playback, reading from the
// source during playback instead of upfront. Equivalent to CreateSound
// with ModeCreateStream.
func (s *System) CreateStream(nameOrURL string, mode Mode, opts *SoundOptions) (*Handle[*Sound], error) {
	return s.createSound(abi.Current().SystemCreateStream, nameOrURL, mode, opts)
}

func (s *System) createSound(
	create func(uintptr, string, uint32, *abi.CreateSoundExInfo, *uintptr) abi.Result,
	nameOrURL string, mode Mode, opts *SoundOptions,
) (*Handle[*Sound], error) {
	if mode.Has(ModeNonBlocking) && (opts == nil || opts.NonBlock == nil) {
		return nil, ErrInvalidParam
	}
	var info *abi.CreateSoundExInfo
	if opts != nil {
		info = opts.exInfo()
	}
	var raw uintptr
	if err := errFrom(create(s.Raw(), nameOrURL, uint32(mode), info, &raw)); err != nil {
		if info != nil && info.UserData != 0 {
			nonBlockCallbacks.delete(info.UserData)
		}
		return nil, err
	}
	return newHandle(rawRes[Sound](raw)), nil
}

// PlaySound starts sound on a free voice, paused or not, routed into
// group (nil for the master group). The returned channel is a borrowed
// reference owned by the engine; it goes stale when playback ends and
// the voice is reused, after which its operations return
// ErrInvalidHandle or ErrChannelStolen.
func (s *System) PlaySound(sound *Sound, group *ChannelGroup, paused bool) (*Channel, error) {
	var groupRaw uintptr
	if group != nil {
		groupRaw = group.Raw()
	}
	var raw uintptr
	err := errFrom(abi.Current().SystemPlaySound(
		s.Raw(), sound.Raw(), groupRaw, cBool(paused), &raw))
	if err != nil {
		return nil, err
	}
	return rawRes[Channel](raw), nil
}

// CreateChannelGroup creates a named submix group.
func (s *System) CreateChannelGroup(name string) (*Handle[*ChannelGroup], error) {
	var raw uintptr
	if err := errFrom(abi.Current().SystemCreateChannelGroup(s.Raw(), name, &raw)); err != nil {
		return nil, err
	}
	return newHandle(rawRes[ChannelGroup](raw)), nil
}

// CreateDSP creates an effect unit of the given built-in type.
func (s *System) CreateDSP(kind DSPType) (*Handle[*DSP], error) {
	var raw uintptr
	if err := errFrom(abi.Current().SystemCreateDSPByType(s.Raw(), int32(kind), &raw)); err != nil {
		return nil, err
	}
	return newHandle(rawRes[DSP](raw)), nil
}

// MasterChannelGroup returns the master submix group every channel
// routes into by default. The reference is borrowed from the system and
// must not be released.
func (s *System) MasterChannelGroup() (*ChannelGroup, error) {
	var raw uintptr
	if err := errFrom(abi.Current().SystemGetMasterChannelGroup(s.Raw(), &raw)); err != nil {
		return nil, err
	}
	return rawRes[ChannelGroup](raw), nil
}

func cBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func goBool(v int32) bool { return v != 0 }
