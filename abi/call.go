package abi

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// AsyncDone signals completion of an asynchronous read request back to
// the engine through the request's completion function pointer. result
// may be a cancellation or failure code; the engine treats it the same
// way a synchronous read return would be treated.
func AsyncDone(info *AsyncReadInfo, result Result) {
	if info == nil || info.Done == 0 {
		return
	}
	purego.SyscallN(info.Done, uintptr(unsafe.Pointer(info)), uintptr(int(result)))
}
