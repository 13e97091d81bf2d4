package abi

// Result is the status code returned by every native entry point.
// Zero is the only success value.
type Result int32

// Status codes, in header order. The values are part of the native ABI
// and stable for the lifetime of a loaded library version.
const (
	OK Result = iota
	ErrBadCommand
	ErrChannelAlloc
	ErrChannelStolen
	ErrDMA
	ErrDSPConnection
	ErrDSPDontProcess
	ErrDSPFormat
	ErrDSPInUse
	ErrDSPNotFound
	ErrDSPReserved
	ErrDSPSilence
	ErrDSPType
	ErrFileBad
	ErrFileCouldNotSeek
	ErrFileDiskEjected
	ErrFileEOF
	ErrFileEndOfData
	ErrFileNotFound
	ErrFormat
	ErrHeaderMismatch
	ErrHTTP
	ErrHTTPAccess
	ErrHTTPProxyAuth
	ErrHTTPServerError
	ErrHTTPTimeout
	ErrInitialization
	ErrInitialized
	ErrInternal
	ErrInvalidFloat
	ErrInvalidHandle
	ErrInvalidParam
	ErrInvalidPosition
	ErrInvalidSpeaker
	ErrInvalidSyncPoint
	ErrInvalidThread
	ErrInvalidVector
	ErrMaxAudible
	ErrMemory
	ErrMemoryCantPoint
	ErrNeeds3D
	ErrNeedsHardware
	ErrNetConnect
	ErrNetSocketError
	ErrNetURL
	ErrNetWouldBlock
	ErrNotReady
	ErrOutputAllocated
	ErrOutputCreateBuffer
	ErrOutputDriverCall
	ErrOutputFormat
	ErrOutputInit
	ErrOutputNoDrivers
	ErrPlugin
	ErrPluginMissing
	ErrPluginResource
	ErrPluginVersion
	ErrRecord
	ErrReverbChannelGroup
	ErrReverbInstance
	ErrSubSounds
	ErrSubSoundAllocated
	ErrSubSoundCantMove
	ErrTagNotFound
	ErrTooManyChannels
	ErrTruncated
	ErrUnimplemented
	ErrUninitialized
	ErrUnsupported
	ErrVersion
	ErrEventAlreadyLoaded
	ErrEventLiveUpdateBusy
	ErrEventLiveUpdateMismatch
	ErrEventLiveUpdateTimeout
	ErrEventNotFound
	ErrStudioUninitialized
	ErrStudioNotLoaded
	ErrInvalidString
	ErrAlreadyLocked
	ErrNotLocked
	ErrRecordDisconnected
	ErrTooManySamples
)

// ErrInternalWrapper has no native equivalent. It is reserved for
// violations caught at the boundary by the wrapper itself (a user
// callback panicking, an invariant broken) and is never produced by the
// engine.
const ErrInternalWrapper Result = -1

// Version is the header version constant passed on the create call. The
// engine rejects a mismatched library with ErrHeaderMismatch. Encoded as
// 0xaaaabbcc: major.minor.patch in binary-coded decimal.
const Version uint32 = 0x00020205
