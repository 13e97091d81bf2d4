package fmod

import (
	"unsafe"

	"github.com/soniccore/fmod-go/abi"
)

// ChannelGroup is a submix: channels and child groups route through it
// and inherit its volume, pitch and pause state. Groups created with
// System.CreateChannelGroup are owned by the returned handle; the
// master group is borrowed from the system.
type ChannelGroup struct {
	opaque
}

func (g *ChannelGroup) release() error {
	groupCallbacks.delete(g.Raw())
	return errFrom(abi.Current().ChannelGroupRelease(g.Raw()))
}

// Stop ends playback of every channel routed through the group.
func (g *ChannelGroup) Stop() error {
	return errFrom(abi.Current().ChannelGroupStop(g.Raw()))
}

// SetPaused pauses or resumes everything routed through the group.
func (g *ChannelGroup) SetPaused(paused bool) error {
	return errFrom(abi.Current().ChannelGroupSetPaused(g.Raw(), cBool(paused)))
}

// SetVolume sets the linear volume applied on top of the routed
// channels' own volumes.
func (g *ChannelGroup) SetVolume(volume float32) error {
	return errFrom(abi.Current().ChannelGroupSetVolume(g.Raw(), volume))
}

// SetPitch scales the playback rate of everything routed through the
// group.
func (g *ChannelGroup) SetPitch(pitch float32) error {
	return errFrom(abi.Current().ChannelGroupSetPitch(g.Raw(), pitch))
}

// SetMute mutes or unmutes the group.
func (g *ChannelGroup) SetMute(mute bool) error {
	return errFrom(abi.Current().ChannelGroupSetMute(g.Raw(), cBool(mute)))
}

// AddGroup routes child into this group. With propagateDSPClock the
// child inherits this group's DSP clock offsets.
func (g *ChannelGroup) AddGroup(child *ChannelGroup, propagateDSPClock bool) error {
	var conn uintptr
	return errFrom(abi.Current().ChannelGroupAddGroup(
		g.Raw(), child.Raw(), cBool(propagateDSPClock), &conn))
}

// NumChannels reports how many channels currently route through the
// group, child groups excluded.
func (g *ChannelGroup) NumChannels() (int32, error) {
	var n int32
	err := errFrom(abi.Current().ChannelGroupGetNumChannels(g.Raw(), &n))
	return n, err
}

// ChannelGroupCallback receives group notifications. It fires on
// engine threads and must be quick and thread-safe.
type ChannelGroupCallback interface {
	// End fires when the last channel routed through the group
	// finishes.
	End(g *ChannelGroup) error
	// Occlusion fires each mix to let the callback adjust the computed
	// direct and reverb occlusion values in place.
	Occlusion(g *ChannelGroup, direct, reverb *float32) error
}

// ChannelGroupCallbackBase is a no-op ChannelGroupCallback for
// embedding.
type ChannelGroupCallbackBase struct{}

func (ChannelGroupCallbackBase) End(*ChannelGroup) error { return nil }
func (ChannelGroupCallbackBase) Occlusion(*ChannelGroup, *float32, *float32) error {
	return nil
}

var groupCallbacks registry[ChannelGroupCallback]

// SetCallback installs cb for this group, replacing any previous one.
// A nil cb uninstalls.
func (g *ChannelGroup) SetCallback(cb ChannelGroupCallback) error {
	raw := g.Raw()
	if cb == nil {
		if err := errFrom(abi.Current().ChannelGroupSetCallback(raw, 0)); err != nil {
			return err
		}
		groupCallbacks.delete(raw)
		return nil
	}
	groupCallbacks.store(raw, cb)
	return errFrom(abi.Current().ChannelGroupSetCallback(raw, channelControlTrampolinePtr()))
}

func dispatchGroupCallback(cb ChannelGroupCallback, ctrl uintptr, callbackType int32, commandData1, commandData2 uintptr) abi.Result {
	g := rawRes[ChannelGroup](ctrl)
	switch channelControlCallbackType(callbackType) {
	case channelCallbackEnd:
		groupCallbacks.delete(ctrl)
		return catchPanic("group.end", func() error { return cb.End(g) })
	case channelCallbackOcclusion:
		return catchPanic("group.occlusion", func() error {
			return cb.Occlusion(g,
				(*float32)(unsafe.Pointer(commandData1)),
				(*float32)(unsafe.Pointer(commandData2)))
		})
	case channelCallbackVirtualVoice, channelCallbackSyncPoint:
		// Voice-only notifications; not delivered for groups.
		return abi.OK
	default:
		return badDiscriminant("group", callbackType)
	}
}
