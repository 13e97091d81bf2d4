package fmod

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/soniccore/fmod-go/abi"
)

// mockEngine is an instrumented entry-point table. Every entry succeeds
// by default and counts its calls; tests override individual fields for
// failure paths.
type mockEngine struct {
	procs *abi.Procs

	mu       sync.Mutex
	calls    map[string]int
	nextAddr uintptr

	// Arguments captured by the default implementations.
	initMaxChannels int32
	initFlags       uint32
	createdSounds   map[uintptr]abi.CreateSoundExInfo
	userData        map[uintptr]uintptr
}

func (m *mockEngine) count(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
}

func (m *mockEngine) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockEngine) alloc() uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextAddr += 0x10
	return m.nextAddr
}

// installMock installs a fresh all-success table for the duration of the
// test.
func installMock(t *testing.T) *mockEngine {
	t.Helper()
	m := &mockEngine{
		calls:         make(map[string]int),
		nextAddr:      0x1000,
		createdSounds: make(map[uintptr]abi.CreateSoundExInfo),
		userData:      make(map[uintptr]uintptr),
	}
	m.procs = &abi.Procs{
		DebugInitialize: func(flags uint32, mode int32, callback, filename uintptr) abi.Result {
			m.count("DebugInitialize")
			return abi.OK
		},
		MemoryGetStats: func(current, max *int32, blocking int32) abi.Result {
			m.count("MemoryGetStats")
			*current, *max = 1024, 4096
			return abi.OK
		},

		SystemCreate: func(system *uintptr, headerVersion uint32) abi.Result {
			m.count("SystemCreate")
			*system = m.alloc()
			return abi.OK
		},
		SystemRelease: func(system uintptr) abi.Result {
			m.count("SystemRelease")
			return abi.OK
		},
		SystemInit: func(system uintptr, maxChannels int32, flags uint32, extra uintptr) abi.Result {
			m.count("SystemInit")
			m.mu.Lock()
			m.initMaxChannels, m.initFlags = maxChannels, flags
			m.mu.Unlock()
			return abi.OK
		},
		SystemClose:  func(system uintptr) abi.Result { m.count("SystemClose"); return abi.OK },
		SystemUpdate: func(system uintptr) abi.Result { m.count("SystemUpdate"); return abi.OK },
		SystemGetVersion: func(system uintptr, version *uint32) abi.Result {
			m.count("SystemGetVersion")
			*version = abi.Version
			return abi.OK
		},
		SystemSetCallback: func(system uintptr, callback uintptr, mask uint32) abi.Result {
			m.count("SystemSetCallback")
			return abi.OK
		},
		SystemMixerSuspend: func(system uintptr) abi.Result { m.count("SystemMixerSuspend"); return abi.OK },
		SystemMixerResume:  func(system uintptr) abi.Result { m.count("SystemMixerResume"); return abi.OK },
		SystemSetSoftwareFormat: func(system uintptr, rate, mode, raw int32) abi.Result {
			m.count("SystemSetSoftwareFormat")
			return abi.OK
		},
		SystemGetSoftwareFormat: func(system uintptr, rate, mode, raw *int32) abi.Result {
			m.count("SystemGetSoftwareFormat")
			*rate, *mode, *raw = 48000, int32(SpeakerModeStereo), 0
			return abi.OK
		},
		SystemSetFileSystem: func(system uintptr, open, close, read, seek, asyncRead, asyncCancel uintptr, blockAlign int32) abi.Result {
			m.count("SystemSetFileSystem")
			return abi.OK
		},
		SystemCreateSound:        m.createSound("SystemCreateSound"),
		SystemCreateStream:       m.createSound("SystemCreateStream"),
		SystemCreateChannelGroup: func(system uintptr, name string, group *uintptr) abi.Result {
			m.count("SystemCreateChannelGroup")
			*group = m.alloc()
			return abi.OK
		},
		SystemCreateDSPByType: func(system uintptr, dspType int32, dsp *uintptr) abi.Result {
			m.count("SystemCreateDSPByType")
			*dsp = m.alloc()
			return abi.OK
		},
		SystemPlaySound: func(system, sound, group uintptr, paused int32, channel *uintptr) abi.Result {
			m.count("SystemPlaySound")
			*channel = m.alloc()
			return abi.OK
		},
		SystemGetMasterChannelGroup: func(system uintptr, group *uintptr) abi.Result {
			m.count("SystemGetMasterChannelGroup")
			*group = m.alloc()
			return abi.OK
		},

		SoundRelease: func(sound uintptr) abi.Result { m.count("SoundRelease"); return abi.OK },
		SoundSetMode: func(sound uintptr, mode uint32) abi.Result { m.count("SoundSetMode"); return abi.OK },
		SoundGetMode: func(sound uintptr, mode *uint32) abi.Result {
			m.count("SoundGetMode")
			*mode = uint32(ModeLoopNormal | Mode2D)
			return abi.OK
		},
		SoundSetLoopCount: func(sound uintptr, n int32) abi.Result { m.count("SoundSetLoopCount"); return abi.OK },
		SoundGetLoopCount: func(sound uintptr, n *int32) abi.Result {
			m.count("SoundGetLoopCount")
			*n = -1
			return abi.OK
		},
		SoundGetLength: func(sound uintptr, length *uint32, unit uint32) abi.Result {
			m.count("SoundGetLength")
			*length = 44100
			return abi.OK
		},
		SoundGetFormat: func(sound uintptr, kind, format, channels, bits *int32) abi.Result {
			m.count("SoundGetFormat")
			*kind = int32(SoundTypeWAV)
			*format = int32(SoundFormatPCM16)
			*channels, *bits = 2, 16
			return abi.OK
		},
		SoundGetName: func(sound uintptr, name *byte, nameLen int32) abi.Result {
			m.count("SoundGetName")
			copyName(name, nameLen, "jingle.wav")
			return abi.OK
		},
		SoundGetOpenState: func(sound uintptr, state *int32, buffered *uint32, starving, busy *int32) abi.Result {
			m.count("SoundGetOpenState")
			*state = int32(OpenStateReady)
			return abi.OK
		},
		SoundSetUserData: func(sound uintptr, userData uintptr) abi.Result {
			m.count("SoundSetUserData")
			m.mu.Lock()
			m.userData[sound] = userData
			m.mu.Unlock()
			return abi.OK
		},
		SoundGetUserData: func(sound uintptr, userData *uintptr) abi.Result {
			m.count("SoundGetUserData")
			m.mu.Lock()
			*userData = m.userData[sound]
			m.mu.Unlock()
			return abi.OK
		},

		ChannelStop:      func(channel uintptr) abi.Result { m.count("ChannelStop"); return abi.OK },
		ChannelSetPaused: func(channel uintptr, paused int32) abi.Result { m.count("ChannelSetPaused"); return abi.OK },
		ChannelGetPaused: func(channel uintptr, paused *int32) abi.Result {
			m.count("ChannelGetPaused")
			*paused = 1
			return abi.OK
		},
		ChannelSetVolume: func(channel uintptr, volume float32) abi.Result { m.count("ChannelSetVolume"); return abi.OK },
		ChannelGetVolume: func(channel uintptr, volume *float32) abi.Result {
			m.count("ChannelGetVolume")
			*volume = 0.5
			return abi.OK
		},
		ChannelSetPitch: func(channel uintptr, pitch float32) abi.Result { m.count("ChannelSetPitch"); return abi.OK },
		ChannelGetPitch: func(channel uintptr, pitch *float32) abi.Result {
			m.count("ChannelGetPitch")
			*pitch = 1
			return abi.OK
		},
		ChannelSetMute: func(channel uintptr, mute int32) abi.Result { m.count("ChannelSetMute"); return abi.OK },
		ChannelGetMute: func(channel uintptr, mute *int32) abi.Result { m.count("ChannelGetMute"); return abi.OK },
		ChannelSetMode: func(channel uintptr, mode uint32) abi.Result { m.count("ChannelSetMode"); return abi.OK },
		ChannelIsPlaying: func(channel uintptr, playing *int32) abi.Result {
			m.count("ChannelIsPlaying")
			*playing = 1
			return abi.OK
		},
		ChannelSetPosition: func(channel uintptr, pos uint32, unit uint32) abi.Result {
			m.count("ChannelSetPosition")
			return abi.OK
		},
		ChannelGetPosition: func(channel uintptr, pos *uint32, unit uint32) abi.Result {
			m.count("ChannelGetPosition")
			*pos = 1000
			return abi.OK
		},
		ChannelSetFrequency: func(channel uintptr, hz float32) abi.Result { m.count("ChannelSetFrequency"); return abi.OK },
		ChannelGetFrequency: func(channel uintptr, hz *float32) abi.Result {
			m.count("ChannelGetFrequency")
			*hz = 44100
			return abi.OK
		},
		ChannelSetPriority: func(channel uintptr, priority int32) abi.Result { m.count("ChannelSetPriority"); return abi.OK },
		ChannelGetPriority: func(channel uintptr, priority *int32) abi.Result {
			m.count("ChannelGetPriority")
			*priority = 128
			return abi.OK
		},
		ChannelGetCurrentSound: func(channel uintptr, sound *uintptr) abi.Result {
			m.count("ChannelGetCurrentSound")
			*sound = m.alloc()
			return abi.OK
		},
		ChannelSetCallback: func(channel uintptr, callback uintptr) abi.Result {
			m.count("ChannelSetCallback")
			return abi.OK
		},

		ChannelGroupRelease:   func(group uintptr) abi.Result { m.count("ChannelGroupRelease"); return abi.OK },
		ChannelGroupStop:      func(group uintptr) abi.Result { m.count("ChannelGroupStop"); return abi.OK },
		ChannelGroupSetPaused: func(group uintptr, paused int32) abi.Result { m.count("ChannelGroupSetPaused"); return abi.OK },
		ChannelGroupSetVolume: func(group uintptr, volume float32) abi.Result { m.count("ChannelGroupSetVolume"); return abi.OK },
		ChannelGroupSetPitch:  func(group uintptr, pitch float32) abi.Result { m.count("ChannelGroupSetPitch"); return abi.OK },
		ChannelGroupSetMute:   func(group uintptr, mute int32) abi.Result { m.count("ChannelGroupSetMute"); return abi.OK },
		ChannelGroupAddGroup: func(group, child uintptr, propagate int32, conn *uintptr) abi.Result {
			m.count("ChannelGroupAddGroup")
			*conn = m.alloc()
			return abi.OK
		},
		ChannelGroupGetNumChannels: func(group uintptr, n *int32) abi.Result {
			m.count("ChannelGroupGetNumChannels")
			*n = 3
			return abi.OK
		},
		ChannelGroupSetCallback: func(group uintptr, callback uintptr) abi.Result {
			m.count("ChannelGroupSetCallback")
			return abi.OK
		},

		DSPRelease:   func(dsp uintptr) abi.Result { m.count("DSPRelease"); return abi.OK },
		DSPSetActive: func(dsp uintptr, active int32) abi.Result { m.count("DSPSetActive"); return abi.OK },
		DSPGetActive: func(dsp uintptr, active *int32) abi.Result {
			m.count("DSPGetActive")
			*active = 1
			return abi.OK
		},
		DSPSetBypass: func(dsp uintptr, bypass int32) abi.Result { m.count("DSPSetBypass"); return abi.OK },
		DSPGetBypass: func(dsp uintptr, bypass *int32) abi.Result { m.count("DSPGetBypass"); return abi.OK },
		DSPSetParameterFloat: func(dsp uintptr, index int32, value float32) abi.Result {
			m.count("DSPSetParameterFloat")
			return abi.OK
		},
		DSPGetParameterFloat: func(dsp uintptr, index int32, value *float32, s uintptr, n int32) abi.Result {
			m.count("DSPGetParameterFloat")
			*value = 0.25
			return abi.OK
		},
		DSPSetParameterInt: func(dsp uintptr, index, value int32) abi.Result {
			m.count("DSPSetParameterInt")
			return abi.OK
		},
		DSPSetParameterBool: func(dsp uintptr, index, value int32) abi.Result {
			m.count("DSPSetParameterBool")
			return abi.OK
		},
		DSPGetType: func(dsp uintptr, dspType *int32) abi.Result {
			m.count("DSPGetType")
			*dspType = int32(DSPTypeEcho)
			return abi.OK
		},
	}
	restore := abi.Install(m.procs)
	t.Cleanup(restore)
	return m
}

func (m *mockEngine) createSound(name string) func(uintptr, string, uint32, *abi.CreateSoundExInfo, *uintptr) abi.Result {
	return func(system uintptr, nameOrData string, mode uint32, info *abi.CreateSoundExInfo, sound *uintptr) abi.Result {
		m.count(name)
		raw := m.alloc()
		m.mu.Lock()
		if info != nil {
			m.createdSounds[raw] = *info
			m.userData[raw] = info.UserData
		} else {
			m.createdSounds[raw] = abi.CreateSoundExInfo{}
		}
		m.mu.Unlock()
		*sound = raw
		return abi.OK
	}
}

func copyName(dst *byte, dstLen int32, s string) {
	if dst == nil || dstLen == 0 {
		return
	}
	buf := unsafe.Slice(dst, int(dstLen))
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}

// uninstallABI leaves no entry-point table active for the duration of
// the test.
func uninstallABI(t *testing.T) {
	t.Helper()
	restore := abi.Install(nil)
	t.Cleanup(restore)
}
