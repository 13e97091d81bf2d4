package abi

import "unsafe"

// Structs in this file are passed across the boundary by pointer and must
// match the native memory layout bit-for-bit. Callback and object fields
// are declared uintptr: they hold native function pointers or addresses
// the wrapper never dereferences as Go pointers.

// Vector is a 3D position or direction in engine units.
type Vector struct {
	X float32
	Y float32
	Z float32
}

// GUID identifies drivers and plugins.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]uint8
}

// CreateSoundExInfo carries extended configuration for sound creation.
// CBSize must be the struct size; use NewCreateSoundExInfo.
type CreateSoundExInfo struct {
	CBSize              int32
	Length              uint32
	FileOffset          uint32
	NumChannels         int32
	DefaultFrequency    int32
	Format              int32
	DecodeBufferSize    uint32
	InitialSubsound     int32
	NumSubsounds        int32
	InclusionList       uintptr
	InclusionListNum    int32
	PCMReadCallback     uintptr
	PCMSetPosCallback   uintptr
	NonBlockCallback    uintptr
	DLSName             uintptr
	EncryptionKey       uintptr
	MaxPolyphony        int32
	UserData            uintptr
	SuggestedSoundType  int32
	FileUserOpen        uintptr
	FileUserClose       uintptr
	FileUserRead        uintptr
	FileUserSeek        uintptr
	FileUserAsyncRead   uintptr
	FileUserAsyncCancel uintptr
	FileUserData        uintptr
	FileBufferSize      int32
	ChannelOrder        int32
	InitialSoundGroup   uintptr
	InitialSeekPosition uint32
	InitialSeekPosType  uint32
	IgnoreSetFileSystem int32
	AudioQueuePolicy    uint32
	MinMIDIGranularity  uint32
	NonBlockThreadID    int32
	FSBGuid             uintptr
}

// NewCreateSoundExInfo returns a zeroed info with CBSize set, which the
// native side requires before reading any other field.
func NewCreateSoundExInfo() *CreateSoundExInfo {
	return &CreateSoundExInfo{CBSize: int32(unsafe.Sizeof(CreateSoundExInfo{}))}
}

// AsyncReadInfo describes an in-flight asynchronous read request. The
// engine owns the allocation; the wrapper reads Handle/Offset/SizeBytes/
// Buffer, writes BytesRead, and signals completion through Done.
type AsyncReadInfo struct {
	Handle    uintptr
	Offset    uint32
	SizeBytes uint32
	Priority  int32
	UserData  uintptr
	Buffer    uintptr
	BytesRead uint32
	Done      uintptr
}

// ErrorCallbackInfo accompanies the system error callback.
type ErrorCallbackInfo struct {
	Result         Result
	InstanceType   int32
	Instance       uintptr
	FunctionName   uintptr
	FunctionParams uintptr
}
