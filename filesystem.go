package fmod

import (
	"io"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// FileSystem replaces the engine's file access for sounds created
// after it is installed. All methods fire on engine I/O threads.
//
// Returning an error from Open makes the create call (or nonblocking
// load) fail with that error's code; wrapper-side failures surface as
// ErrFileBad.
type FileSystem interface {
	// Open opens name, as passed to CreateSound or CreateStream, and
	// reports the total file size in bytes.
	Open(name string) (File, uint32, error)
}

// File is one open file of a FileSystem.
type File interface {
	// Read fills p from the current position and reports how many
	// bytes it produced. A short read past the end of the file is
	// normal and must not be an error.
	Read(p []byte) (uint32, error)
	// Seek moves the read position to the absolute byte offset.
	Seek(offset uint32) error
	Close() error
}

// AsyncFileSystem is an optional extension of FileSystem. When the
// installed file system implements it, reads are delivered as
// AsyncRead requests that may complete on any goroutine, out of order,
// instead of through File.Read and File.Seek.
type AsyncFileSystem interface {
	FileSystem
	// ReadAsync queues req. Ownership of req passes to the
	// implementation until req.Done is called; well after the call
	// returns is fine, but Done must be called exactly once.
	ReadAsync(req *AsyncRead) error
	// CancelAsync requests early completion of a queued req. The
	// implementation must still complete req through Done, canceled or
	// not.
	CancelAsync(req *AsyncRead) error
}

// AsyncRead is one in-flight asynchronous read request. The engine
// owns the underlying memory; the request and its buffer are valid
// until Done is called and not an instant longer.
type AsyncRead struct {
	info *abi.AsyncReadInfo
	file File
	done atomic.Bool
}

// File returns the file the request reads from.
func (r *AsyncRead) File() File { return r.file }

// Offset is the absolute byte offset to read from.
func (r *AsyncRead) Offset() uint32 { return r.info.Offset }

// Priority is the engine's urgency for this request, 0 to 100. 100
// means a stream is about to starve.
func (r *AsyncRead) Priority() int32 { return r.info.Priority }

// Buffer is the destination, sized to the requested byte count. It
// aliases engine memory and must not be retained after Done.
func (r *AsyncRead) Buffer() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r.info.Buffer)), r.info.SizeBytes)
}

// Done completes the request: bytesRead says how much of Buffer was
// filled, err is nil for success, ErrFileDiskEjected for cancellation,
// or any error to fail the read. A short read with nil err past the
// end of the file is reported to the engine as the end-of-file
// condition.
//
// Exactly one Done per request; extra calls are dropped with a log.
func (r *AsyncRead) Done(bytesRead uint32, err error) {
	if !r.done.CompareAndSwap(false, true) {
		logger().DPanic("async read completed twice",
			zap.Uint32("offset", r.info.Offset))
		return
	}
	asyncRequests.delete(uintptr(unsafe.Pointer(r.info)))
	r.info.BytesRead = bytesRead
	abi.AsyncDone(r.info, readResult(bytesRead, r.info.SizeBytes, err))
}

// readResult translates a read outcome into the code the engine
// expects: a short successful read is the end-of-file condition.
func readResult(bytesRead, want uint32, err error) abi.Result {
	if res := resultOf(err); res != abi.OK {
		return res
	}
	if bytesRead < want {
		return abi.ErrFileEOF
	}
	return abi.OK
}

// asyncRequests tracks requests between the read trampoline and Done,
// keyed by the engine's request address, so a cancel sees the same
// AsyncRead the read handed out.
var asyncRequests registry[*AsyncRead]

// The install entry point takes no user data, so one file system is a
// process-global slot shared by every system instance. Boxed because
// atomic.Value wants one concrete type.
type fsBox struct{ fs FileSystem }

var installedFS atomic.Value // fsBox

var openFiles registry[File]

// SetFileSystem installs fs as the file access layer for sounds
// created afterwards, replacing any previous one; nil restores the
// engine's own file access. blockAlign rounds read sizes and offsets
// up to the given alignment, -1 for no alignment.
//
// The file system slot is process-global: with several system
// instances, the last install wins for all of them.
func (s *System) SetFileSystem(fs FileSystem, blockAlign int32) error {
	if fs == nil {
		if err := errFrom(abi.Current().SystemSetFileSystem(
			s.Raw(), 0, 0, 0, 0, 0, 0, blockAlign)); err != nil {
			return err
		}
		installedFS.Store(fsBox{})
		return nil
	}
	installedFS.Store(fsBox{fs: fs})
	var asyncRead, asyncCancel uintptr
	if _, ok := fs.(AsyncFileSystem); ok {
		asyncRead = fileAsyncReadTrampolinePtr()
		asyncCancel = fileAsyncCancelTrampolinePtr()
	}
	return errFrom(abi.Current().SystemSetFileSystem(s.Raw(),
		fileOpenTrampolinePtr(), fileCloseTrampolinePtr(),
		fileReadTrampolinePtr(), fileSeekTrampolinePtr(),
		asyncRead, asyncCancel, blockAlign))
}

func currentFS() FileSystem {
	box, _ := installedFS.Load().(fsBox)
	return box.fs
}

var fileOpenTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileOpenTrampoline)
})

func fileOpenTrampoline(name uintptr, fileSize *uint32, handle *uintptr, userData uintptr) abi.Result {
	fs := currentFS()
	if fs == nil {
		return abi.ErrFileNotFound
	}
	return catchPanic("file.open", func() error {
		f, size, err := fs.Open(goString(name))
		if err != nil {
			return err
		}
		token := nextCallbackToken()
		openFiles.store(token, f)
		*fileSize = size
		*handle = token
		return nil
	})
}

var fileCloseTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileCloseTrampoline)
})

func fileCloseTrampoline(handle uintptr, userData uintptr) abi.Result {
	f, ok := openFiles.load(handle)
	if !ok {
		return abi.ErrFileBad
	}
	openFiles.delete(handle)
	return catchPanic("file.close", f.Close)
}

var fileReadTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileReadTrampoline)
})

func fileReadTrampoline(handle uintptr, buffer uintptr, sizeBytes uint32, bytesRead *uint32, userData uintptr) abi.Result {
	f, ok := openFiles.load(handle)
	if !ok {
		return abi.ErrFileBad
	}
	res := catchPanic("file.read", func() error {
		buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), sizeBytes)
		n, err := f.Read(buf)
		*bytesRead = n
		if err == io.EOF {
			return nil
		}
		return err
	})
	if res == abi.OK && *bytesRead < sizeBytes {
		// Short read past the end of the file; the engine expects the
		// end-of-file code alongside the partial count.
		return abi.ErrFileEOF
	}
	return res
}

var fileSeekTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileSeekTrampoline)
})

func fileSeekTrampoline(handle uintptr, position uint32, userData uintptr) abi.Result {
	f, ok := openFiles.load(handle)
	if !ok {
		return abi.ErrFileBad
	}
	return catchPanic("file.seek", func() error {
		return f.Seek(position)
	})
}

var fileAsyncReadTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileAsyncReadTrampoline)
})

func fileAsyncReadTrampoline(info *abi.AsyncReadInfo, userData uintptr) abi.Result {
	afs, ok := currentFS().(AsyncFileSystem)
	if !ok {
		return abi.ErrFileBad
	}
	f, ok := openFiles.load(info.Handle)
	if !ok {
		return abi.ErrFileBad
	}
	req := &AsyncRead{info: info, file: f}
	asyncRequests.store(uintptr(unsafe.Pointer(info)), req)
	return catchPanic("file.asyncread", func() error {
		return afs.ReadAsync(req)
	})
}

var fileAsyncCancelTrampolinePtr = sync.OnceValue(func() uintptr {
	return purego.NewCallback(fileAsyncCancelTrampoline)
})

func fileAsyncCancelTrampoline(info *abi.AsyncReadInfo, userData uintptr) abi.Result {
	afs, ok := currentFS().(AsyncFileSystem)
	if !ok {
		return abi.ErrFileBad
	}
	req, ok := asyncRequests.load(uintptr(unsafe.Pointer(info)))
	if !ok {
		// Completed before the cancel arrived; nothing to do.
		return abi.OK
	}
	return catchPanic("file.asynccancel", func() error {
		return afs.CancelAsync(req)
	})
}
