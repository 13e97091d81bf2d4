package fmod

// Enum newtypes mirror the native discriminants. Like the flag types
// they tolerate values this wrapper version does not know about.

// OutputType identifies an output driver backend.
type OutputType int32

const (
	OutputAutodetect OutputType = iota
	OutputUnknown
	OutputNoSound
	OutputWavWriter
	OutputNoSoundNRT
	OutputWavWriterNRT
	OutputWASAPI
	OutputASIO
	OutputPulseAudio
	OutputALSA
	OutputCoreAudio
	OutputAudioTrack
	OutputOpenSL
	OutputAudioOut
	OutputAudio3D
	OutputWebAudio
	OutputNNAudio
	OutputWinSonic
	OutputAAudio
	OutputAudioWorklet
	OutputPhase
	OutputOHAudio
)

// SpeakerMode identifies a speaker layout.
type SpeakerMode int32

const (
	SpeakerModeDefault SpeakerMode = iota
	SpeakerModeRaw
	SpeakerModeMono
	SpeakerModeStereo
	SpeakerModeQuad
	SpeakerModeSurround
	SpeakerMode5Point1
	SpeakerMode7Point1
	SpeakerMode7Point1Point4
)

// SoundType identifies the codec a sound was opened with.
type SoundType int32

const (
	SoundTypeUnknown SoundType = iota
	SoundTypeAIFF
	SoundTypeASF
	SoundTypeDLS
	SoundTypeFLAC
	SoundTypeFSB
	SoundTypeIT
	SoundTypeMIDI
	SoundTypeMOD
	SoundTypeMPEG
	SoundTypeOggVorbis
	SoundTypePlaylist
	SoundTypeRaw
	SoundTypeS3M
	SoundTypeUser
	SoundTypeWAV
	SoundTypeXM
	SoundTypeXMA
	SoundTypeAudioQueue
	SoundTypeAT9
	SoundTypeVorbis
	SoundTypeMediaFoundation
	SoundTypeMediaCodec
	SoundTypeFADPCM
	SoundTypeOpus
)

// SoundFormat identifies the sample data format.
type SoundFormat int32

const (
	SoundFormatNone SoundFormat = iota
	SoundFormatPCM8
	SoundFormatPCM16
	SoundFormatPCM24
	SoundFormatPCM32
	SoundFormatPCMFloat
	SoundFormatBitstream
)

// OpenState reports the loading state of a sound, most relevantly for
// sounds opened with ModeNonBlocking or over the network.
type OpenState int32

const (
	// OpenStateReady means the sound is opened and ready for use.
	OpenStateReady OpenState = iota
	// OpenStateLoading means the sound is initializing; operations
	// return ErrNotReady until it finishes.
	OpenStateLoading
	// OpenStateError means the open failed; the retained error is
	// returned from Sound.OpenState.
	OpenStateError
	OpenStateConnecting
	OpenStateBuffering
	OpenStateSeeking
	OpenStatePlaying
	OpenStateSetPosition
)

// DSPType identifies a built-in effect unit kind.
type DSPType int32

const (
	DSPTypeUnknown DSPType = iota
	DSPTypeMixer
	DSPTypeOscillator
	DSPTypeLowpass
	DSPTypeITLowpass
	DSPTypeHighpass
	DSPTypeEcho
	DSPTypeFader
	DSPTypeFlange
	DSPTypeDistortion
	DSPTypeNormalize
	DSPTypeLimiter
	DSPTypeParamEQ
	DSPTypePitchShift
	DSPTypeChorus
	DSPTypeVSTPlugin
	DSPTypeWinampPlugin
	DSPTypeITEcho
	DSPTypeCompressor
	DSPTypeSFXReverb
	DSPTypeLowpassSimple
	DSPTypeDelay
	DSPTypeTremolo
	DSPTypeLADSPAPlugin
	DSPTypeSend
	DSPTypeReturn
	DSPTypeHighpassSimple
	DSPTypePan
	DSPTypeThreeEQ
	DSPTypeFFT
	DSPTypeLoudnessMeter
	DSPTypeEnvelopeFollower
	DSPTypeConvolutionReverb
	DSPTypeChannelMix
	DSPTypeTransceiver
	DSPTypeObjectPan
	DSPTypeMultibandEQ
	DSPTypeMultibandDynamics
)

// InstanceType identifies the object kind in an error callback.
type InstanceType int32

const (
	InstanceTypeNone InstanceType = iota
	InstanceTypeSystem
	InstanceTypeChannel
	InstanceTypeChannelGroup
	InstanceTypeChannelControl
	InstanceTypeSound
	InstanceTypeSoundGroup
	InstanceTypeDSP
	InstanceTypeDSPConnection
	InstanceTypeGeometry
	InstanceTypeReverb3D
)

// channelControlType is the trampoline-level discriminant between
// channel and group callbacks.
type channelControlType int32

const (
	channelControlChannel channelControlType = iota
	channelControlGroup
)

// channelControlCallbackType discriminates channel notification kinds.
type channelControlCallbackType int32

const (
	channelCallbackEnd channelControlCallbackType = iota
	channelCallbackVirtualVoice
	channelCallbackSyncPoint
	channelCallbackOcclusion
)

// systemCallbackType discriminates system notification kinds inside the
// trampoline; the registration mask uses SystemCallbackMask.
type systemCallbackType = SystemCallbackMask
