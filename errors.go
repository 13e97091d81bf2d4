package fmod

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// Error is a nonzero engine status code. The zero code is success and is
// never represented as an Error; every fallible wrapper operation returns
// nil or an Error through the plain error interface.
//
// Error values are comparable, so errors.Is works directly against the
// sentinel constants below.
type Error int32

// Sentinel errors, one per native status code. Values mirror abi exactly.
const (
	ErrBadCommand              = Error(abi.ErrBadCommand)
	ErrChannelAlloc            = Error(abi.ErrChannelAlloc)
	ErrChannelStolen           = Error(abi.ErrChannelStolen)
	ErrDMA                     = Error(abi.ErrDMA)
	ErrDSPConnection           = Error(abi.ErrDSPConnection)
	ErrDSPDontProcess          = Error(abi.ErrDSPDontProcess)
	ErrDSPFormat               = Error(abi.ErrDSPFormat)
	ErrDSPInUse                = Error(abi.ErrDSPInUse)
	ErrDSPNotFound             = Error(abi.ErrDSPNotFound)
	ErrDSPReserved             = Error(abi.ErrDSPReserved)
	ErrDSPSilence              = Error(abi.ErrDSPSilence)
	ErrDSPType                 = Error(abi.ErrDSPType)
	ErrFileBad                 = Error(abi.ErrFileBad)
	ErrFileCouldNotSeek        = Error(abi.ErrFileCouldNotSeek)
	ErrFileDiskEjected         = Error(abi.ErrFileDiskEjected)
	ErrFileEOF                 = Error(abi.ErrFileEOF)
	ErrFileEndOfData           = Error(abi.ErrFileEndOfData)
	ErrFileNotFound            = Error(abi.ErrFileNotFound)
	ErrFormat                  = Error(abi.ErrFormat)
	ErrHeaderMismatch          = Error(abi.ErrHeaderMismatch)
	ErrHTTP                    = Error(abi.ErrHTTP)
	ErrHTTPAccess              = Error(abi.ErrHTTPAccess)
	ErrHTTPProxyAuth           = Error(abi.ErrHTTPProxyAuth)
	ErrHTTPServerError         = Error(abi.ErrHTTPServerError)
	ErrHTTPTimeout             = Error(abi.ErrHTTPTimeout)
	ErrInitialization          = Error(abi.ErrInitialization)
	ErrInitialized             = Error(abi.ErrInitialized)
	ErrInternal                = Error(abi.ErrInternal)
	ErrInvalidFloat            = Error(abi.ErrInvalidFloat)
	ErrInvalidHandle           = Error(abi.ErrInvalidHandle)
	ErrInvalidParam            = Error(abi.ErrInvalidParam)
	ErrInvalidPosition         = Error(abi.ErrInvalidPosition)
	ErrInvalidSpeaker          = Error(abi.ErrInvalidSpeaker)
	ErrInvalidSyncPoint        = Error(abi.ErrInvalidSyncPoint)
	ErrInvalidThread           = Error(abi.ErrInvalidThread)
	ErrInvalidVector           = Error(abi.ErrInvalidVector)
	ErrMaxAudible              = Error(abi.ErrMaxAudible)
	ErrMemory                  = Error(abi.ErrMemory)
	ErrMemoryCantPoint         = Error(abi.ErrMemoryCantPoint)
	ErrNeeds3D                 = Error(abi.ErrNeeds3D)
	ErrNeedsHardware           = Error(abi.ErrNeedsHardware)
	ErrNetConnect              = Error(abi.ErrNetConnect)
	ErrNetSocketError          = Error(abi.ErrNetSocketError)
	ErrNetURL                  = Error(abi.ErrNetURL)
	ErrNetWouldBlock           = Error(abi.ErrNetWouldBlock)
	ErrNotReady                = Error(abi.ErrNotReady)
	ErrOutputAllocated         = Error(abi.ErrOutputAllocated)
	ErrOutputCreateBuffer      = Error(abi.ErrOutputCreateBuffer)
	ErrOutputDriverCall        = Error(abi.ErrOutputDriverCall)
	ErrOutputFormat            = Error(abi.ErrOutputFormat)
	ErrOutputInit              = Error(abi.ErrOutputInit)
	ErrOutputNoDrivers         = Error(abi.ErrOutputNoDrivers)
	ErrPlugin                  = Error(abi.ErrPlugin)
	ErrPluginMissing           = Error(abi.ErrPluginMissing)
	ErrPluginResource          = Error(abi.ErrPluginResource)
	ErrPluginVersion           = Error(abi.ErrPluginVersion)
	ErrRecord                  = Error(abi.ErrRecord)
	ErrReverbChannelGroup      = Error(abi.ErrReverbChannelGroup)
	ErrReverbInstance          = Error(abi.ErrReverbInstance)
	ErrSubSounds               = Error(abi.ErrSubSounds)
	ErrSubSoundAllocated       = Error(abi.ErrSubSoundAllocated)
	ErrSubSoundCantMove        = Error(abi.ErrSubSoundCantMove)
	ErrTagNotFound             = Error(abi.ErrTagNotFound)
	ErrTooManyChannels         = Error(abi.ErrTooManyChannels)
	ErrTruncated               = Error(abi.ErrTruncated)
	ErrUnimplemented           = Error(abi.ErrUnimplemented)
	ErrUninitialized           = Error(abi.ErrUninitialized)
	ErrUnsupported             = Error(abi.ErrUnsupported)
	ErrVersion                 = Error(abi.ErrVersion)
	ErrEventAlreadyLoaded      = Error(abi.ErrEventAlreadyLoaded)
	ErrEventLiveUpdateBusy     = Error(abi.ErrEventLiveUpdateBusy)
	ErrEventLiveUpdateMismatch = Error(abi.ErrEventLiveUpdateMismatch)
	ErrEventLiveUpdateTimeout  = Error(abi.ErrEventLiveUpdateTimeout)
	ErrEventNotFound           = Error(abi.ErrEventNotFound)
	ErrStudioUninitialized     = Error(abi.ErrStudioUninitialized)
	ErrStudioNotLoaded         = Error(abi.ErrStudioNotLoaded)
	ErrInvalidString           = Error(abi.ErrInvalidString)
	ErrAlreadyLocked           = Error(abi.ErrAlreadyLocked)
	ErrNotLocked               = Error(abi.ErrNotLocked)
	ErrRecordDisconnected      = Error(abi.ErrRecordDisconnected)
	ErrTooManySamples          = Error(abi.ErrTooManySamples)

	// ErrInternalWrapper is produced by the wrapper, never by the
	// engine: a user callback panicked or a boundary invariant broke.
	ErrInternalWrapper = Error(abi.ErrInternalWrapper)
)

// Kind partitions the status codes into the handful of categories callers
// actually branch on.
type Kind string

const (
	KindCommand   Kind = "command"   // operation not valid for this object or state
	KindResource  Kind = "resource"  // channel/memory/voice exhaustion
	KindStale     Kind = "stale"     // object invalidated by the engine's own management
	KindFormat    Kind = "format"    // bad parameter, format or value
	KindNotReady  Kind = "not_ready" // valid operation, retry later
	KindEndOfData Kind = "end_of_data"
	KindIO        Kind = "io"      // file/media access
	KindNetwork   Kind = "network" // http/socket transport
	KindOutput    Kind = "output"  // output device / driver
	KindPlugin    Kind = "plugin"
	KindVersion   Kind = "version" // header/library/file version mismatch
	KindInternal  Kind = "internal"
	KindWrapper   Kind = "wrapper" // caught at the boundary, no native equivalent
	KindUnknown   Kind = "unknown"
)

// errFrom maps a raw status code to the typed result model. It is the
// single choke point every call site goes through: zero maps to nil,
// everything else to the identical Error for that code, always.
func errFrom(r abi.Result) error {
	if r == abi.OK {
		return nil
	}
	e := Error(r)
	if e.Kind() == KindUnknown {
		warnUnknownCode(e)
	}
	return e
}

// resultOf is the inverse direction, used by trampolines handing a typed
// result back to the engine.
func resultOf(err error) abi.Result {
	if err == nil {
		return abi.OK
	}
	if e, ok := err.(Error); ok {
		return abi.Result(e)
	}
	// A non-Error error can only come from a user callback; it has no
	// code of its own on the wire.
	return abi.ErrInternalWrapper
}

var unknownCodes sync.Map

// An unrecognized code means the loaded library speaks a newer dialect
// than this wrapper, which is a version-mismatch bug rather than a
// runtime condition. The mapping stays total so classification remains
// deterministic, but the first sighting fails fast under a development
// logger.
func warnUnknownCode(e Error) {
	if _, seen := unknownCodes.LoadOrStore(e, struct{}{}); !seen {
		logger().DPanic("unrecognized engine status code",
			zap.Int32("code", int32(e)))
	}
}

// Code returns the raw status code.
func (e Error) Code() int32 { return int32(e) }

// IsStale reports whether err is the engine invalidating an object
// through its own management, most commonly a channel whose sound ended
// or whose voice was stolen. Stale answers are routine during playback,
// not bugs.
func IsStale(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Kind() == KindStale
}

// IsNotReady reports whether err is the retry-later answer from an
// object that is still loading.
func IsNotReady(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Kind() == KindNotReady
}

// Kind returns the taxonomy category for this code. Pure; stable for a
// given wrapper version.
func (e Error) Kind() Kind {
	switch e {
	case ErrBadCommand, ErrUnsupported, ErrUnimplemented, ErrInvalidThread,
		ErrNeeds3D, ErrNeedsHardware, ErrInitialization, ErrInitialized,
		ErrUninitialized, ErrDSPConnection, ErrDSPDontProcess, ErrDSPInUse,
		ErrDSPNotFound, ErrDSPReserved, ErrDSPSilence, ErrDSPType,
		ErrSubSounds, ErrSubSoundAllocated, ErrSubSoundCantMove,
		ErrReverbChannelGroup, ErrReverbInstance, ErrAlreadyLocked,
		ErrNotLocked, ErrStudioUninitialized, ErrStudioNotLoaded,
		ErrEventAlreadyLoaded:
		return KindCommand
	case ErrChannelAlloc, ErrMemory, ErrMemoryCantPoint, ErrMaxAudible,
		ErrTooManyChannels, ErrTooManySamples:
		return KindResource
	case ErrChannelStolen, ErrInvalidHandle, ErrRecordDisconnected:
		return KindStale
	case ErrFormat, ErrInvalidParam, ErrInvalidFloat, ErrInvalidPosition,
		ErrInvalidSpeaker, ErrInvalidSyncPoint, ErrInvalidVector,
		ErrInvalidString, ErrTagNotFound, ErrTruncated, ErrDSPFormat,
		ErrEventNotFound:
		return KindFormat
	case ErrNotReady:
		return KindNotReady
	case ErrFileEOF, ErrFileEndOfData:
		return KindEndOfData
	case ErrFileBad, ErrFileCouldNotSeek, ErrFileDiskEjected, ErrFileNotFound:
		return KindIO
	case ErrHTTP, ErrHTTPAccess, ErrHTTPProxyAuth, ErrHTTPServerError,
		ErrHTTPTimeout, ErrNetConnect, ErrNetSocketError, ErrNetURL,
		ErrNetWouldBlock, ErrEventLiveUpdateBusy, ErrEventLiveUpdateMismatch,
		ErrEventLiveUpdateTimeout:
		return KindNetwork
	case ErrOutputAllocated, ErrOutputCreateBuffer, ErrOutputDriverCall,
		ErrOutputFormat, ErrOutputInit, ErrOutputNoDrivers, ErrRecord:
		return KindOutput
	case ErrPlugin, ErrPluginMissing, ErrPluginResource, ErrPluginVersion:
		return KindPlugin
	case ErrVersion, ErrHeaderMismatch:
		return KindVersion
	case ErrDMA, ErrInternal:
		return KindInternal
	case ErrInternalWrapper:
		return KindWrapper
	default:
		return KindUnknown
	}
}

// Error returns the native description for the code.
func (e Error) Error() string {
	if s := e.message(); s != "" {
		return s
	}
	return fmt.Sprintf("unknown error code %d", int32(e))
}

// message mirrors the native error-string table.
func (e Error) message() string {
	switch e {
	case ErrBadCommand:
		return "Tried to call a function on a data type that does not allow this type of functionality (ie calling Sound::lock on a streaming sound)."
	case ErrChannelAlloc:
		return "Error trying to allocate a channel."
	case ErrChannelStolen:
		return "The specified channel has been reused to play another sound."
	case ErrDMA:
		return "DMA Failure. See debug output for more information."
	case ErrDSPConnection:
		return "DSP connection error. Connection possibly caused a cyclic dependency or connected dsps with incompatible buffer counts."
	case ErrDSPDontProcess:
		return "DSP return code from a DSP process query callback. Tells mixer not to call the process callback and therefore not consume CPU. Use this to optimize the DSP graph."
	case ErrDSPFormat:
		return "DSP Format error. A DSP unit may have attempted to connect to this network with the wrong format, or a matrix may have been set with the wrong size if the target unit has a specified channel map."
	case ErrDSPInUse:
		return "DSP is already in the mixer's DSP network. It must be removed before being reinserted or released."
	case ErrDSPNotFound:
		return "DSP connection error. Couldn't find the DSP unit specified."
	case ErrDSPReserved:
		return "DSP operation error. Cannot perform operation on this DSP as it is reserved by the system."
	case ErrDSPSilence:
		return "DSP return code from a DSP process query callback. Tells mixer silence would be produced from read, so go idle and not consume CPU. Use this to optimize the DSP graph."
	case ErrDSPType:
		return "DSP operation cannot be performed on a DSP of this type."
	case ErrFileBad:
		return "Error loading file."
	case ErrFileCouldNotSeek:
		return "Couldn't perform seek operation. This is a limitation of the medium (ie netstreams) or the file format."
	case ErrFileDiskEjected:
		return "Media was ejected while reading."
	case ErrFileEOF:
		return "End of file unexpectedly reached while trying to read essential data (truncated?)."
	case ErrFileEndOfData:
		return "End of current chunk reached while trying to read data."
	case ErrFileNotFound:
		return "File not found."
	case ErrFormat:
		return "Unsupported file or audio format."
	case ErrHeaderMismatch:
		return "There is a version mismatch between the FMOD header and either the FMOD Studio library or the FMOD Low Level library."
	case ErrHTTP:
		return "A HTTP error occurred. This is a catch-all for HTTP errors not listed elsewhere."
	case ErrHTTPAccess:
		return "The specified resource requires authentication or is forbidden."
	case ErrHTTPProxyAuth:
		return "Proxy authentication is required to access the specified resource."
	case ErrHTTPServerError:
		return "A HTTP server error occurred."
	case ErrHTTPTimeout:
		return "The HTTP request timed out."
	case ErrInitialization:
		return "FMOD was not initialized correctly to support this function."
	case ErrInitialized:
		return "Cannot call this command after System::init."
	case ErrInternal:
		return "An error occurred in the FMOD system. Use the logging version of FMOD for more information."
	case ErrInvalidFloat:
		return "Value passed in was a NaN, Inf or denormalized float."
	case ErrInvalidHandle:
		return "An invalid object handle was used."
	case ErrInvalidParam:
		return "An invalid parameter was passed to this function."
	case ErrInvalidPosition:
		return "An invalid seek position was passed to this function."
	case ErrInvalidSpeaker:
		return "An invalid speaker was passed to this function based on the current speaker mode."
	case ErrInvalidSyncPoint:
		return "The syncpoint did not come from this sound handle."
	case ErrInvalidThread:
		return "Tried to call a function on a thread that is not supported."
	case ErrInvalidVector:
		return "The vectors passed in are not unit length, or perpendicular."
	case ErrMaxAudible:
		return "Reached maximum audible playback count for this sound's soundgroup."
	case ErrMemory:
		return "Not enough memory or resources."
	case ErrMemoryCantPoint:
		return "Can't use FMOD_OPENMEMORY_POINT on non PCM source data, or non mp3/xma/adpcm data if FMOD_CREATECOMPRESSEDSAMPLE was used."
	case ErrNeeds3D:
		return "Tried to call a command on a 2d sound when the command was meant for 3d sound."
	case ErrNeedsHardware:
		return "Tried to use a feature that requires hardware support."
	case ErrNetConnect:
		return "Couldn't connect to the specified host."
	case ErrNetSocketError:
		return "A socket error occurred. This is a catch-all for socket-related errors not listed elsewhere."
	case ErrNetURL:
		return "The specified URL couldn't be resolved."
	case ErrNetWouldBlock:
		return "Operation on a non-blocking socket could not complete immediately."
	case ErrNotReady:
		return "Operation could not be performed because specified sound/DSP connection is not ready."
	case ErrOutputAllocated:
		return "Error initializing output device, but more specifically, the output device is already in use and cannot be reused."
	case ErrOutputCreateBuffer:
		return "Error creating hardware sound buffer."
	case ErrOutputDriverCall:
		return "A call to a standard soundcard driver failed, which could possibly mean a bug in the driver or resources were missing or exhausted."
	case ErrOutputFormat:
		return "Soundcard does not support the specified format."
	case ErrOutputInit:
		return "Error initializing output device."
	case ErrOutputNoDrivers:
		return "The output device has no drivers installed. If pre-init, FMOD_OUTPUT_NOSOUND is selected as the output mode. If post-init, the function just fails."
	case ErrPlugin:
		return "An unspecified error has been returned from a plugin."
	case ErrPluginMissing:
		return "A requested output, dsp unit type or codec was not available."
	case ErrPluginResource:
		return "A resource that the plugin requires cannot be found. (ie the DLS file for MIDI playback)"
	case ErrPluginVersion:
		return "A plugin was built with an unsupported SDK version."
	case ErrRecord:
		return "An error occurred trying to initialize the recording device."
	case ErrReverbChannelGroup:
		return "Reverb properties cannot be set on this channel because a parent channelgroup owns the reverb connection."
	case ErrReverbInstance:
		return "Specified instance in FMOD_REVERB_PROPERTIES couldn't be set. Most likely because it is an invalid instance number or the reverb doesn't exist."
	case ErrSubSounds:
		return "The error occurred because the sound referenced contains subsounds when it shouldn't have, or it doesn't contain subsounds when it should have. The operation may also not be able to be performed on a parent sound."
	case ErrSubSoundAllocated:
		return "This subsound is already being used by another sound, you cannot have more than one parent to a sound. Null out the other parent's entry first."
	case ErrSubSoundCantMove:
		return "Shared subsounds cannot be replaced or moved from their parent stream, such as when the parent stream is an FSB file."
	case ErrTagNotFound:
		return "The specified tag could not be found or there are no tags."
	case ErrTooManyChannels:
		return "The sound created exceeds the allowable input channel count. This can be increased using the 'maxinputchannels' parameter in System::setSoftwareFormat."
	case ErrTruncated:
		return "The retrieved string is too long to fit in the supplied buffer and has been truncated."
	case ErrUnimplemented:
		return "Something in FMOD hasn't been implemented when it should be. Contact support."
	case ErrUninitialized:
		return "This command failed because System::init or System::setDriver was not called."
	case ErrUnsupported:
		return "A command issued was not supported by this object. Possibly a plugin without certain callbacks specified."
	case ErrVersion:
		return "The version number of this file format is not supported."
	case ErrEventAlreadyLoaded:
		return "The specified bank has already been loaded."
	case ErrEventLiveUpdateBusy:
		return "The live update connection failed due to the game already being connected."
	case ErrEventLiveUpdateMismatch:
		return "The live update connection failed due to the game data being out of sync with the tool."
	case ErrEventLiveUpdateTimeout:
		return "The live update connection timed out."
	case ErrEventNotFound:
		return "The requested event, parameter, bus or vca could not be found."
	case ErrStudioUninitialized:
		return "The Studio::System object is not yet initialized."
	case ErrStudioNotLoaded:
		return "The specified resource is not loaded, so it can't be unloaded."
	case ErrInvalidString:
		return "An invalid string was passed to this function."
	case ErrAlreadyLocked:
		return "The specified resource is already locked."
	case ErrNotLocked:
		return "The specified resource is not locked, so it can't be unlocked."
	case ErrRecordDisconnected:
		return "The specified recording driver has been disconnected."
	case ErrTooManySamples:
		return "The length provided exceeds the allowable limit."
	case ErrInternalWrapper:
		return "An error occurred in the wrapper that wasn't supposed to. Check the logs."
	default:
		return ""
	}
}
