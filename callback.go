package fmod

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// The engine stores plain function pointers with no captured state, so
// every callback shape gets exactly one static trampoline, created once
// with purego.NewCallback and shared by all registrations. Dispatch to
// the user implementation goes through a registry keyed by the native
// object address (or a wrapper-chosen userdata token where the callback
// arguments carry no address).

// registry associates raw native addresses (or tokens) with user
// callback implementations. Trampolines read it from engine worker
// threads concurrently with application registrations.
type registry[T any] struct {
	mu sync.RWMutex
	m  map[uintptr]T
}

func (r *registry[T]) store(key uintptr, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.m == nil {
		r.m = make(map[uintptr]T)
	}
	r.m[key] = v
}

func (r *registry[T]) load(key uintptr) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

func (r *registry[T]) delete(key uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, key)
}

// catchPanic is the unwind barrier every trampoline runs user code
// under. A panic must not cross into native frames; it is logged with a
// stack and reported to the engine as the wrapper-internal error code.
func catchPanic(name string, fn func() error) (res abi.Result) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error("panic in user callback",
				zap.String("callback", name),
				zap.Any("panic", r),
				zap.Stack("stack"))
			res = abi.ErrInternalWrapper
		}
	}()
	return resultOf(fn())
}

// badDiscriminant handles callback invocations carrying a discriminant
// this wrapper version does not know: logged, answered with the invalid
// parameter code, never undefined behavior.
func badDiscriminant(name string, value int32) abi.Result {
	logger().Warn("unknown callback discriminant",
		zap.String("callback", name),
		zap.Int32("value", value))
	return abi.ErrInvalidParam
}

// goString copies a NUL-terminated native string.
//
// Safety: p must be a valid C string address or zero, live for the
// duration of the call. Holds for strings the engine passes into
// callbacks for the callback frame.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// callbackToken hands out userdata tokens for callback shapes whose
// arguments carry no native address to key a registry on.
var callbackToken struct {
	mu   sync.Mutex
	next uintptr
}

func nextCallbackToken() uintptr {
	callbackToken.mu.Lock()
	defer callbackToken.mu.Unlock()
	callbackToken.next++
	return callbackToken.next
}
