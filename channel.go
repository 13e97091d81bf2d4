package fmod

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/soniccore/fmod-go/abi"
)

// Channel is a playing (or paused) voice, obtained from
// System.PlaySound. Channels are owned by the engine and never
// released: the reference is borrowed and goes stale when the sound
// ends or the voice is stolen for a newer sound, after which every
// operation reports ErrInvalidHandle or ErrChannelStolen. Both are
// ordinary runtime answers, not misuse.
type Channel struct {
	opaque
}

// Stop ends playback and frees the voice.
func (c *Channel) Stop() error {
	channelCallbacks.delete(c.Raw())
	return errFrom(abi.Current().ChannelStop(c.Raw()))
}

// SetPaused pauses or resumes the voice.
func (c *Channel) SetPaused(paused bool) error {
	return errFrom(abi.Current().ChannelSetPaused(c.Raw(), cBool(paused)))
}

// Paused reports whether the voice is paused.
func (c *Channel) Paused() (bool, error) {
	var v int32
	err := errFrom(abi.Current().ChannelGetPaused(c.Raw(), &v))
	return goBool(v), err
}

// SetVolume sets the linear volume. 1 is unchanged, 0 is silent;
// values above 1 or negative are allowed.
func (c *Channel) SetVolume(volume float32) error {
	return errFrom(abi.Current().ChannelSetVolume(c.Raw(), volume))
}

// Volume reports the linear volume.
func (c *Channel) Volume() (float32, error) {
	var v float32
	err := errFrom(abi.Current().ChannelGetVolume(c.Raw(), &v))
	return v, err
}

// SetPitch scales the playback rate. 1 is unchanged.
func (c *Channel) SetPitch(pitch float32) error {
	return errFrom(abi.Current().ChannelSetPitch(c.Raw(), pitch))
}

// Pitch reports the pitch scale.
func (c *Channel) Pitch() (float32, error) {
	var v float32
	err := errFrom(abi.Current().ChannelGetPitch(c.Raw(), &v))
	return v, err
}

// SetMute mutes or unmutes the voice, keeping the volume setting.
func (c *Channel) SetMute(mute bool) error {
	return errFrom(abi.Current().ChannelSetMute(c.Raw(), cBool(mute)))
}

// Muted reports whether the voice is muted.
func (c *Channel) Muted() (bool, error) {
	var v int32
	err := errFrom(abi.Current().ChannelGetMute(c.Raw(), &v))
	return goBool(v), err
}

// SetMode changes the relative playback modes of the voice, loop bits
// most usefully.
func (c *Channel) SetMode(mode Mode) error {
	return errFrom(abi.Current().ChannelSetMode(c.Raw(), uint32(mode)))
}

// IsPlaying reports whether the voice is still bound to a playing
// sound. A stale reference reports the invalid-handle error instead.
func (c *Channel) IsPlaying() (bool, error) {
	var v int32
	err := errFrom(abi.Current().ChannelIsPlaying(c.Raw(), &v))
	return goBool(v), err
}

// SetPosition seeks within the current sound.
func (c *Channel) SetPosition(position uint32, unit TimeUnit) error {
	return errFrom(abi.Current().ChannelSetPosition(c.Raw(), position, uint32(unit)))
}

// Position reports the playback position in the given unit.
func (c *Channel) Position(unit TimeUnit) (uint32, error) {
	var v uint32
	err := errFrom(abi.Current().ChannelGetPosition(c.Raw(), &v, uint32(unit)))
	return v, err
}

// SetFrequency sets the playback frequency in Hz.
func (c *Channel) SetFrequency(hz float32) error {
	return errFrom(abi.Current().ChannelSetFrequency(c.Raw(), hz))
}

// Frequency reports the playback frequency in Hz.
func (c *Channel) Frequency() (float32, error) {
	var v float32
	err := errFrom(abi.Current().ChannelGetFrequency(c.Raw(), &v))
	return v, err
}

// SetPriority sets the voice-stealing priority, 0 (most important) to
// 256 (least important).
func (c *Channel) SetPriority(priority int32) error {
	return errFrom(abi.Current().ChannelSetPriority(c.Raw(), priority))
}

// Priority reports the voice-stealing priority.
func (c *Channel) Priority() (int32, error) {
	var v int32
	err := errFrom(abi.Current().ChannelGetPriority(c.Raw(), &v))
	return v, err
}

// CurrentSound returns a borrowed reference to the sound the voice is
// playing.
func (c *Channel) CurrentSound() (*Sound, error) {
	var raw uintptr
	if err := errFrom(abi.Current().ChannelGetCurrentSound(c.Raw(), &raw)); err != nil {
		return nil, err
	}
	return rawRes[Sound](raw), nil
}

// ChannelCallback receives voice notifications. It fires on engine
// threads and must be quick and thread-safe.
type ChannelCallback interface {
	// End fires when the voice finishes playing. The reference is
	// stale the moment the callback returns.
	End(ch *Channel) error
	// VirtualVoice fires when the voice goes virtual (inaudible,
	// emulated) or returns to a real voice.
	VirtualVoice(ch *Channel, virtual bool) error
	// SyncPoint fires when playback crosses the sync point at index.
	SyncPoint(ch *Channel, index int32) error
	// Occlusion fires each mix to let the callback adjust the computed
	// direct and reverb occlusion values in place.
	Occlusion(ch *Channel, direct, reverb *float32) error
}

// ChannelCallbackBase is a no-op ChannelCallback for embedding, so
// implementations only write the notifications they care about.
type ChannelCallbackBase struct{}

func (ChannelCallbackBase) End(*Channel) error                { return nil }
func (ChannelCallbackBase) VirtualVoice(*Channel, bool) error { return nil }
func (ChannelCallbackBase) SyncPoint(*Channel, int32) error   { return nil }
func (ChannelCallbackBase) Occlusion(*Channel, *float32, *float32) error {
	return nil
}

var channelCallbacks registry[ChannelCallback]

// SetCallback installs cb for this voice, replacing any previous one.
// A nil cb uninstalls. The registration is dropped automatically when
// the end notification fires.
func (c *Channel) SetCallback(cb ChannelCallback) error {
	raw := c.Raw()
	if cb == nil {
		if err := errFrom(abi.Current().ChannelSetCallback(raw, 0)); err != nil {
			return err
		}
		channelCallbacks.delete(raw)
		return nil
	}
	channelCallbacks.store(raw, cb)
	return errFrom(abi.Current().ChannelSetCallback(raw, channelControlTrampolinePtr()))
}

// One trampoline serves both channels and groups; the engine tells
// them apart with the control-type discriminant.
var channelControlTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(channelControlTrampoline)
})

func channelControlTrampoline(ctrl uintptr, controlType, callbackType int32, commandData1, commandData2 uintptr) abi.Result {
	switch channelControlType(controlType) {
	case channelControlChannel:
		cb, ok := channelCallbacks.load(ctrl)
		if !ok {
			return abi.OK
		}
		return dispatchChannelCallback(cb, ctrl, callbackType, commandData1, commandData2)
	case channelControlGroup:
		cb, ok := groupCallbacks.load(ctrl)
		if !ok {
			return abi.OK
		}
		return dispatchGroupCallback(cb, ctrl, callbackType, commandData1, commandData2)
	default:
		return badDiscriminant("channelcontrol", controlType)
	}
}

func dispatchChannelCallback(cb ChannelCallback, ctrl uintptr, callbackType int32, commandData1, commandData2 uintptr) abi.Result {
	ch := rawRes[Channel](ctrl)
	switch channelControlCallbackType(callbackType) {
	case channelCallbackEnd:
		channelCallbacks.delete(ctrl)
		return catchPanic("channel.end", func() error { return cb.End(ch) })
	case channelCallbackVirtualVoice:
		return catchPanic("channel.virtualvoice", func() error {
			return cb.VirtualVoice(ch, commandData1 != 0)
		})
	case channelCallbackSyncPoint:
		return catchPanic("channel.syncpoint", func() error {
			return cb.SyncPoint(ch, int32(commandData1))
		})
	case channelCallbackOcclusion:
		return catchPanic("channel.occlusion", func() error {
			return cb.Occlusion(ch,
				(*float32)(unsafe.Pointer(commandData1)),
				(*float32)(unsafe.Pointer(commandData2)))
		})
	default:
		return badDiscriminant("channel", callbackType)
	}
}
