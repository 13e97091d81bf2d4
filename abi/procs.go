package abi

import "sync/atomic"

// Procs is the table of native entry points the wrapper consumes. One
// field per extern function, in the native signature with raw object
// addresses as uintptr and callback function pointers as uintptr.
//
// The table is populated either by Load (binding the real library) or by
// a test installing an instrumented implementation.
type Procs struct {
	// Global.
	DebugInitialize func(flags uint32, mode int32, callback uintptr, filename uintptr) Result
	MemoryGetStats  func(currentAlloced, maxAlloced *int32, blocking int32) Result

	// System.
	SystemCreate                func(system *uintptr, headerVersion uint32) Result
	SystemRelease               func(system uintptr) Result
	SystemInit                  func(system uintptr, maxChannels int32, flags uint32, extraDriverData uintptr) Result
	SystemClose                 func(system uintptr) Result
	SystemUpdate                func(system uintptr) Result
	SystemGetVersion            func(system uintptr, version *uint32) Result
	SystemSetCallback           func(system uintptr, callback uintptr, callbackMask uint32) Result
	SystemMixerSuspend          func(system uintptr) Result
	SystemMixerResume           func(system uintptr) Result
	SystemSetSoftwareFormat     func(system uintptr, sampleRate int32, speakerMode int32, numRawSpeakers int32) Result
	SystemGetSoftwareFormat     func(system uintptr, sampleRate *int32, speakerMode *int32, numRawSpeakers *int32) Result
	SystemSetFileSystem         func(system uintptr, userOpen, userClose, userRead, userSeek, userAsyncRead, userAsyncCancel uintptr, blockAlign int32) Result
	SystemCreateSound           func(system uintptr, nameOrData string, mode uint32, exInfo *CreateSoundExInfo, sound *uintptr) Result
	SystemCreateStream          func(system uintptr, nameOrData string, mode uint32, exInfo *CreateSoundExInfo, sound *uintptr) Result
	SystemCreateChannelGroup    func(system uintptr, name string, group *uintptr) Result
	SystemCreateDSPByType       func(system uintptr, dspType int32, dsp *uintptr) Result
	SystemPlaySound             func(system uintptr, sound uintptr, group uintptr, paused int32, channel *uintptr) Result
	SystemGetMasterChannelGroup func(system uintptr, group *uintptr) Result

	// Sound.
	SoundRelease      func(sound uintptr) Result
	SoundSetMode      func(sound uintptr, mode uint32) Result
	SoundGetMode      func(sound uintptr, mode *uint32) Result
	SoundSetLoopCount func(sound uintptr, loopCount int32) Result
	SoundGetLoopCount func(sound uintptr, loopCount *int32) Result
	SoundGetLength    func(sound uintptr, length *uint32, lengthType uint32) Result
	SoundGetFormat    func(sound uintptr, soundType *int32, format *int32, channels *int32, bits *int32) Result
	SoundGetName      func(sound uintptr, name *byte, nameLen int32) Result
	SoundGetOpenState func(sound uintptr, openState *int32, percentBuffered *uint32, starving *int32, diskBusy *int32) Result
	SoundSetUserData  func(sound uintptr, userData uintptr) Result
	SoundGetUserData  func(sound uintptr, userData *uintptr) Result

	// Channel. The shared channel-control surface keeps the Channel
	// entry points; the native library aliases them for groups.
	ChannelStop            func(channel uintptr) Result
	ChannelSetPaused       func(channel uintptr, paused int32) Result
	ChannelGetPaused       func(channel uintptr, paused *int32) Result
	ChannelSetVolume       func(channel uintptr, volume float32) Result
	ChannelGetVolume       func(channel uintptr, volume *float32) Result
	ChannelSetPitch        func(channel uintptr, pitch float32) Result
	ChannelGetPitch        func(channel uintptr, pitch *float32) Result
	ChannelSetMute         func(channel uintptr, mute int32) Result
	ChannelGetMute         func(channel uintptr, mute *int32) Result
	ChannelSetMode         func(channel uintptr, mode uint32) Result
	ChannelIsPlaying       func(channel uintptr, playing *int32) Result
	ChannelSetPosition     func(channel uintptr, position uint32, posType uint32) Result
	ChannelGetPosition     func(channel uintptr, position *uint32, posType uint32) Result
	ChannelSetFrequency    func(channel uintptr, frequency float32) Result
	ChannelGetFrequency    func(channel uintptr, frequency *float32) Result
	ChannelSetPriority     func(channel uintptr, priority int32) Result
	ChannelGetPriority     func(channel uintptr, priority *int32) Result
	ChannelGetCurrentSound func(channel uintptr, sound *uintptr) Result
	ChannelSetCallback     func(channel uintptr, callback uintptr) Result

	// ChannelGroup.
	ChannelGroupRelease        func(group uintptr) Result
	ChannelGroupStop           func(group uintptr) Result
	ChannelGroupSetPaused      func(group uintptr, paused int32) Result
	ChannelGroupSetVolume      func(group uintptr, volume float32) Result
	ChannelGroupSetPitch       func(group uintptr, pitch float32) Result
	ChannelGroupSetMute        func(group uintptr, mute int32) Result
	ChannelGroupAddGroup       func(group uintptr, child uintptr, propagateDSPClock int32, connection *uintptr) Result
	ChannelGroupGetNumChannels func(group uintptr, numChannels *int32) Result
	ChannelGroupSetCallback    func(group uintptr, callback uintptr) Result

	// DSP.
	DSPRelease           func(dsp uintptr) Result
	DSPSetActive         func(dsp uintptr, active int32) Result
	DSPGetActive         func(dsp uintptr, active *int32) Result
	DSPSetBypass         func(dsp uintptr, bypass int32) Result
	DSPGetBypass         func(dsp uintptr, bypass *int32) Result
	DSPSetParameterFloat func(dsp uintptr, index int32, value float32) Result
	DSPGetParameterFloat func(dsp uintptr, index int32, value *float32, valueStr uintptr, valueStrLen int32) Result
	DSPSetParameterInt   func(dsp uintptr, index int32, value int32) Result
	DSPSetParameterBool  func(dsp uintptr, index int32, value int32) Result
	DSPGetType           func(dsp uintptr, dspType *int32) Result
}

var active atomic.Pointer[Procs]

// Install makes table the active entry-point table and returns a restore
// function for the previous one. Tests use it to substitute instrumented
// tables; Load uses it once after binding the real library.
func Install(table *Procs) (restore func()) {
	prev := active.Swap(table)
	return func() { active.Store(prev) }
}

// Installed reports whether an entry-point table is active.
func Installed() bool {
	return active.Load() != nil
}

// Current returns the active entry-point table.
//
// The safe wrapper API never reaches this before a table is installed;
// getting nil here means raw entry points were driven by hand before
// loading the library.
func Current() *Procs {
	return active.Load()
}
