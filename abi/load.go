//go:build darwin || freebsd || linux

package abi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Load opens the native library at path and installs an entry-point table
// bound to it. path is passed to dlopen verbatim, so a bare soname
// ("libfmod.so.14") resolves through the system search path.
//
// Load does not guard against concurrent engine use; it is expected to
// run once during startup, before any system is created.
func Load(path string) (err error) {
	defer func() {
		// purego reports missing symbols by panicking; surface that as
		// an error so a wrong or stripped library fails loudly but
		// recoverably.
		if r := recover(); r != nil {
			err = fmt.Errorf("abi: binding %s: %v", path, r)
		}
	}()

	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("abi: loading %s: %w", path, err)
	}

	p := &Procs{}

	purego.RegisterLibFunc(&p.DebugInitialize, lib, "FMOD_Debug_Initialize")
	purego.RegisterLibFunc(&p.MemoryGetStats, lib, "FMOD_Memory_GetStats")

	purego.RegisterLibFunc(&p.SystemCreate, lib, "FMOD_System_Create")
	purego.RegisterLibFunc(&p.SystemRelease, lib, "FMOD_System_Release")
	purego.RegisterLibFunc(&p.SystemInit, lib, "FMOD_System_Init")
	purego.RegisterLibFunc(&p.SystemClose, lib, "FMOD_System_Close")
	purego.RegisterLibFunc(&p.SystemUpdate, lib, "FMOD_System_Update")
	purego.RegisterLibFunc(&p.SystemGetVersion, lib, "FMOD_System_GetVersion")
	purego.RegisterLibFunc(&p.SystemSetCallback, lib, "FMOD_System_SetCallback")
	purego.RegisterLibFunc(&p.SystemMixerSuspend, lib, "FMOD_System_MixerSuspend")
	purego.RegisterLibFunc(&p.SystemMixerResume, lib, "FMOD_System_MixerResume")
	purego.RegisterLibFunc(&p.SystemSetSoftwareFormat, lib, "FMOD_System_SetSoftwareFormat")
	purego.RegisterLibFunc(&p.SystemGetSoftwareFormat, lib, "FMOD_System_GetSoftwareFormat")
	purego.RegisterLibFunc(&p.SystemSetFileSystem, lib, "FMOD_System_SetFileSystem")
	purego.RegisterLibFunc(&p.SystemCreateSound, lib, "FMOD_System_CreateSound")
	purego.RegisterLibFunc(&p.SystemCreateStream, lib, "FMOD_System_CreateStream")
	purego.RegisterLibFunc(&p.SystemCreateChannelGroup, lib, "FMOD_System_CreateChannelGroup")
	purego.RegisterLibFunc(&p.SystemCreateDSPByType, lib, "FMOD_System_CreateDSPByType")
	purego.RegisterLibFunc(&p.SystemPlaySound, lib, "FMOD_System_PlaySound")
	purego.RegisterLibFunc(&p.SystemGetMasterChannelGroup, lib, "FMOD_System_GetMasterChannelGroup")

	purego.RegisterLibFunc(&p.SoundRelease, lib, "FMOD_Sound_Release")
	purego.RegisterLibFunc(&p.SoundSetMode, lib, "FMOD_Sound_SetMode")
	purego.RegisterLibFunc(&p.SoundGetMode, lib, "FMOD_Sound_GetMode")
	purego.RegisterLibFunc(&p.SoundSetLoopCount, lib, "FMOD_Sound_SetLoopCount")
	purego.RegisterLibFunc(&p.SoundGetLoopCount, lib, "FMOD_Sound_GetLoopCount")
	purego.RegisterLibFunc(&p.SoundGetLength, lib, "FMOD_Sound_GetLength")
	purego.RegisterLibFunc(&p.SoundGetFormat, lib, "FMOD_Sound_GetFormat")
	purego.RegisterLibFunc(&p.SoundGetName, lib, "FMOD_Sound_GetName")
	purego.RegisterLibFunc(&p.SoundGetOpenState, lib, "FMOD_Sound_GetOpenState")
	purego.RegisterLibFunc(&p.SoundSetUserData, lib, "FMOD_Sound_SetUserData")
	purego.RegisterLibFunc(&p.SoundGetUserData, lib, "FMOD_Sound_GetUserData")

	purego.RegisterLibFunc(&p.ChannelStop, lib, "FMOD_Channel_Stop")
	purego.RegisterLibFunc(&p.ChannelSetPaused, lib, "FMOD_Channel_SetPaused")
	purego.RegisterLibFunc(&p.ChannelGetPaused, lib, "FMOD_Channel_GetPaused")
	purego.RegisterLibFunc(&p.ChannelSetVolume, lib, "FMOD_Channel_SetVolume")
	purego.RegisterLibFunc(&p.ChannelGetVolume, lib, "FMOD_Channel_GetVolume")
	purego.RegisterLibFunc(&p.ChannelSetPitch, lib, "FMOD_Channel_SetPitch")
	purego.RegisterLibFunc(&p.ChannelGetPitch, lib, "FMOD_Channel_GetPitch")
	purego.RegisterLibFunc(&p.ChannelSetMute, lib, "FMOD_Channel_SetMute")
	purego.RegisterLibFunc(&p.ChannelGetMute, lib, "FMOD_Channel_GetMute")
	purego.RegisterLibFunc(&p.ChannelSetMode, lib, "FMOD_Channel_SetMode")
	purego.RegisterLibFunc(&p.ChannelIsPlaying, lib, "FMOD_Channel_IsPlaying")
	purego.RegisterLibFunc(&p.ChannelSetPosition, lib, "FMOD_Channel_SetPosition")
	purego.RegisterLibFunc(&p.ChannelGetPosition, lib, "FMOD_Channel_GetPosition")
	purego.RegisterLibFunc(&p.ChannelSetFrequency, lib, "FMOD_Channel_SetFrequency")
	purego.RegisterLibFunc(&p.ChannelGetFrequency, lib, "FMOD_Channel_GetFrequency")
	purego.RegisterLibFunc(&p.ChannelSetPriority, lib, "FMOD_Channel_SetPriority")
	purego.RegisterLibFunc(&p.ChannelGetPriority, lib, "FMOD_Channel_GetPriority")
	purego.RegisterLibFunc(&p.ChannelGetCurrentSound, lib, "FMOD_Channel_GetCurrentSound")
	purego.RegisterLibFunc(&p.ChannelSetCallback, lib, "FMOD_Channel_SetCallback")

	purego.RegisterLibFunc(&p.ChannelGroupRelease, lib, "FMOD_ChannelGroup_Release")
	purego.RegisterLibFunc(&p.ChannelGroupStop, lib, "FMOD_ChannelGroup_Stop")
	purego.RegisterLibFunc(&p.ChannelGroupSetPaused, lib, "FMOD_ChannelGroup_SetPaused")
	purego.RegisterLibFunc(&p.ChannelGroupSetVolume, lib, "FMOD_ChannelGroup_SetVolume")
	purego.RegisterLibFunc(&p.ChannelGroupSetPitch, lib, "FMOD_ChannelGroup_SetPitch")
	purego.RegisterLibFunc(&p.ChannelGroupSetMute, lib, "FMOD_ChannelGroup_SetMute")
	purego.RegisterLibFunc(&p.ChannelGroupAddGroup, lib, "FMOD_ChannelGroup_AddGroup")
	purego.RegisterLibFunc(&p.ChannelGroupGetNumChannels, lib, "FMOD_ChannelGroup_GetNumChannels")
	purego.RegisterLibFunc(&p.ChannelGroupSetCallback, lib, "FMOD_ChannelGroup_SetCallback")

	purego.RegisterLibFunc(&p.DSPRelease, lib, "FMOD_DSP_Release")
	purego.RegisterLibFunc(&p.DSPSetActive, lib, "FMOD_DSP_SetActive")
	purego.RegisterLibFunc(&p.DSPGetActive, lib, "FMOD_DSP_GetActive")
	purego.RegisterLibFunc(&p.DSPSetBypass, lib, "FMOD_DSP_SetBypass")
	purego.RegisterLibFunc(&p.DSPGetBypass, lib, "FMOD_DSP_GetBypass")
	purego.RegisterLibFunc(&p.DSPSetParameterFloat, lib, "FMOD_DSP_SetParameterFloat")
	purego.RegisterLibFunc(&p.DSPGetParameterFloat, lib, "FMOD_DSP_GetParameterFloat")
	purego.RegisterLibFunc(&p.DSPSetParameterInt, lib, "FMOD_DSP_SetParameterInt")
	purego.RegisterLibFunc(&p.DSPSetParameterBool, lib, "FMOD_DSP_SetParameterBool")
	purego.RegisterLibFunc(&p.DSPGetType, lib, "FMOD_DSP_GetType")

	Install(p)
	return nil
}
