package fmod

// Flag newtypes are bit-identical to the native representation. Raw
// conversions are plain Go conversions and lossless in both directions;
// unknown bits pass through untouched so values defined by newer engine
// versions or plugins survive a round trip.

// InitFlags configure System.Init.
type InitFlags uint32

const (
	// InitNormal initializes normally.
	InitNormal InitFlags = 0
	// InitStreamFromUpdate drives streams from System.Update instead of
	// a stream thread. Mainly for non-realtime outputs.
	InitStreamFromUpdate InitFlags = 1 << 0
	// InitMixFromUpdate drives mixing from System.Update instead of a
	// mixer thread. Only applies to polling-based output modes.
	InitMixFromUpdate InitFlags = 1 << 1
	// Init3DRightHanded performs 3D calculations in right-handed
	// coordinates.
	Init3DRightHanded InitFlags = 1 << 2
	// InitClipOutput hard-clips output values outside [-1, 1].
	InitClipOutput InitFlags = 1 << 3
	// InitChannelLowpass adds a per-voice lowpass filter for occlusion
	// and low-pass gain control.
	InitChannelLowpass InitFlags = 1 << 8
	// InitChannelDistanceFilter adds a distance-automated bandpass
	// filter to 3D voices.
	InitChannelDistanceFilter InitFlags = 1 << 9
	// InitProfileEnable starts the TCP/IP profiling host.
	InitProfileEnable InitFlags = 1 << 16
	// InitVol0BecomesVirtual makes zero-volume sounds go virtual.
	InitVol0BecomesVirtual InitFlags = 1 << 17
	// InitGeometryUseClosest processes only the closest geometry
	// polygon instead of accumulating all intersections.
	InitGeometryUseClosest InitFlags = 1 << 18
	// InitPreferDolbyDownmix selects the Dolby Pro Logic II downmix for
	// surround on stereo outputs.
	InitPreferDolbyDownmix InitFlags = 1 << 19
	// InitThreadUnsafe disables engine-side API thread safety. Only for
	// strictly single-threaded use.
	InitThreadUnsafe InitFlags = 1 << 20
	// InitProfileMeterAll meters every DSP unit in the graph.
	InitProfileMeterAll InitFlags = 1 << 21
	// InitMemoryTracking enables allocation tracking.
	InitMemoryTracking InitFlags = 1 << 22
)

// Has reports whether every bit of subset is set.
func (f InitFlags) Has(subset InitFlags) bool { return f&subset == subset }

// Mode controls sound creation and playback behavior.
type Mode uint32

const (
	ModeDefault                Mode = 0
	ModeLoopOff                Mode = 1 << 0
	ModeLoopNormal             Mode = 1 << 1
	ModeLoopBidi               Mode = 1 << 2
	Mode2D                     Mode = 1 << 3
	Mode3D                     Mode = 1 << 4
	ModeCreateStream           Mode = 1 << 7
	ModeCreateSample           Mode = 1 << 8
	ModeCreateCompressedSample Mode = 1 << 9
	ModeOpenUser               Mode = 1 << 10
	ModeOpenMemory             Mode = 1 << 11
	ModeOpenRaw                Mode = 1 << 12
	ModeOpenOnly               Mode = 1 << 13
	ModeAccurateTime           Mode = 1 << 14
	// ModeNonBlocking opens the sound on the async-load thread; the
	// sound is usable once its open state reports ready, and calls made
	// before that return ErrNotReady.
	ModeNonBlocking             Mode = 1 << 16
	ModeUnique                  Mode = 1 << 17
	Mode3DHeadRelative          Mode = 1 << 18
	Mode3DWorldRelative         Mode = 1 << 19
	Mode3DInverseRolloff        Mode = 1 << 20
	Mode3DLinearRolloff         Mode = 1 << 21
	Mode3DLinearSquareRolloff   Mode = 1 << 22
	Mode3DInverseTaperedRolloff Mode = 1 << 23
	ModeIgnoreTags              Mode = 1 << 25
	Mode3DCustomRolloff         Mode = 1 << 26
	ModeLowMem                  Mode = 1 << 27
	ModeOpenMemoryPoint         Mode = 1 << 28
	Mode3DIgnoreGeometry        Mode = 1 << 30
	ModeVirtualPlayFromStart    Mode = 1 << 31
)

// Has reports whether every bit of subset is set.
func (m Mode) Has(subset Mode) bool { return m&subset == subset }

// TimeUnit selects the unit for position and length values.
type TimeUnit uint32

const (
	TimeUnitMS          TimeUnit = 1 << 0
	TimeUnitPCM         TimeUnit = 1 << 1
	TimeUnitPCMBytes    TimeUnit = 1 << 2
	TimeUnitRawBytes    TimeUnit = 1 << 3
	TimeUnitPCMFraction TimeUnit = 1 << 4
	TimeUnitModOrder    TimeUnit = 1 << 8
	TimeUnitModRow      TimeUnit = 1 << 9
	TimeUnitModPattern  TimeUnit = 1 << 10
)

// DebugFlags select the level and categories of engine debug output.
type DebugFlags uint32

const (
	DebugLevelNone    DebugFlags = 0
	DebugLevelError   DebugFlags = 1 << 0
	DebugLevelWarning DebugFlags = 1 << 1
	DebugLevelLog     DebugFlags = 1 << 2

	DebugTypeMemory DebugFlags = 1 << 8
	DebugTypeFile   DebugFlags = 1 << 9
	DebugTypeCodec  DebugFlags = 1 << 10
	DebugTypeTrace  DebugFlags = 1 << 11

	DebugDisplayTimestamps  DebugFlags = 1 << 16
	DebugDisplayLineNumbers DebugFlags = 1 << 17
	DebugDisplayThread      DebugFlags = 1 << 18
)

// Has reports whether every bit of subset is set.
func (f DebugFlags) Has(subset DebugFlags) bool { return f&subset == subset }

// ChannelMask describes which speakers a signal addresses, for raw
// speaker layouts.
type ChannelMask uint32

const (
	ChannelMaskFrontLeft     ChannelMask = 1 << 0
	ChannelMaskFrontRight    ChannelMask = 1 << 1
	ChannelMaskFrontCenter   ChannelMask = 1 << 2
	ChannelMaskLowFrequency  ChannelMask = 1 << 3
	ChannelMaskSurroundLeft  ChannelMask = 1 << 4
	ChannelMaskSurroundRight ChannelMask = 1 << 5
	ChannelMaskBackLeft      ChannelMask = 1 << 6
	ChannelMaskBackRight     ChannelMask = 1 << 7
	ChannelMaskBackCenter    ChannelMask = 1 << 8

	ChannelMaskMono     = ChannelMaskFrontLeft
	ChannelMaskStereo   = ChannelMaskFrontLeft | ChannelMaskFrontRight
	ChannelMaskLRC      = ChannelMaskStereo | ChannelMaskFrontCenter
	ChannelMaskQuad     = ChannelMaskStereo | ChannelMaskSurroundLeft | ChannelMaskSurroundRight
	ChannelMaskSurround = ChannelMaskLRC | ChannelMaskSurroundLeft | ChannelMaskSurroundRight
	ChannelMask5Point1  = ChannelMaskSurround | ChannelMaskLowFrequency
	ChannelMask7Point1  = ChannelMask5Point1 | ChannelMaskBackLeft | ChannelMaskBackRight
)

// Has reports whether every bit of subset is set.
func (m ChannelMask) Has(subset ChannelMask) bool { return m&subset == subset }

// SystemCallbackMask selects which system notifications fire.
type SystemCallbackMask uint32

const (
	SystemCallbackDeviceListChanged     SystemCallbackMask = 1 << 0
	SystemCallbackDeviceLost            SystemCallbackMask = 1 << 1
	SystemCallbackMemoryAllocFailed     SystemCallbackMask = 1 << 2
	SystemCallbackThreadCreated         SystemCallbackMask = 1 << 3
	SystemCallbackBadDSPConnection      SystemCallbackMask = 1 << 4
	SystemCallbackPreMix                SystemCallbackMask = 1 << 5
	SystemCallbackPostMix               SystemCallbackMask = 1 << 6
	SystemCallbackError                 SystemCallbackMask = 1 << 7
	SystemCallbackMidMix                SystemCallbackMask = 1 << 8
	SystemCallbackThreadDestroyed       SystemCallbackMask = 1 << 9
	SystemCallbackPreUpdate             SystemCallbackMask = 1 << 10
	SystemCallbackPostUpdate            SystemCallbackMask = 1 << 11
	SystemCallbackRecordListChanged     SystemCallbackMask = 1 << 12
	SystemCallbackBufferedNoMix         SystemCallbackMask = 1 << 13
	SystemCallbackDeviceReinitialize    SystemCallbackMask = 1 << 14
	SystemCallbackOutputUnderrun        SystemCallbackMask = 1 << 15
	SystemCallbackRecordPositionChanged SystemCallbackMask = 1 << 16
	SystemCallbackAll                   SystemCallbackMask = 0xFFFFFFFF
)

// Has reports whether every bit of subset is set.
func (f SystemCallbackMask) Has(subset SystemCallbackMask) bool { return f&subset == subset }
