package fmod

import "unsafe"

// opaque is embedded by every resource kind. A value is never constructed
// in Go memory: a *System, *Sound, etc. is a native object address
// reinterpreted as a typed pointer, so the address is the whole identity
// and the pointee is never read or written from Go. The zero-sized
// incomparable field keeps the kinds distinct types with no layout to
// misuse.
type opaque struct {
	_ [0]func()
}

// Raw returns the native address for passing back into entry points.
// Ownership is unaffected.
func (o *opaque) Raw() uintptr {
	return uintptr(unsafe.Pointer(o))
}

// rawRes reinterprets a native address as a typed resource reference.
//
// Safety: raw must be a live object of kind R obtained from the engine,
// and the returned reference must not be used after the object is
// released. Neither condition is checked; callers are the wrapper
// functions that just received raw from a create call, or trampolines
// receiving it for the duration of a native callback frame.
func rawRes[R any](raw uintptr) *R {
	return (*R)(unsafe.Pointer(raw))
}

// Resource is a native object kind that a Handle can own: it exposes its
// address and knows its kind-specific release entry point.
type Resource interface {
	Raw() uintptr
	release() error
}
