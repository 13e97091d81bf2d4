package fmod

import (
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
)

// Handle exclusively owns one native resource. At most one live Handle
// exists per native address; borrowed access goes through Resource() and
// must not outlive the handle.
//
// Close releases the underlying object through its kind-specific release
// entry point, exactly once. A handle that becomes unreachable without
// Close is released by a GC cleanup as a safety net — with a warning,
// because cleanup timing is not a substitute for deterministic release.
type Handle[R Resource] struct {
	res      R
	cleanup  runtime.Cleanup
	released atomic.Bool
}

// newHandle wraps a freshly created resource as owned. Called exactly
// once per successful create call, by the wrapper function that made it.
func newHandle[R Resource](res R) *Handle[R] {
	h := &Handle[R]{res: res}
	h.cleanup = runtime.AddCleanup(h, releaseLeaked[R], res)
	logger().Debug("created resource handle", zap.Uintptr("raw", res.Raw()))
	return h
}

// releaseLeaked runs only when a live handle was dropped without Close.
// Release failure here has nowhere to propagate; it is logged and lost,
// same as the native contract for teardown-time failure.
func releaseLeaked[R Resource](res R) {
	logger().Warn("resource handle leaked, releasing from GC cleanup",
		zap.Uintptr("raw", res.Raw()))
	if err := res.release(); err != nil {
		logger().Warn("error releasing leaked resource",
			zap.Uintptr("raw", res.Raw()), zap.Error(err))
	}
}

// Resource borrows the underlying resource without transferring
// ownership. The reference is valid until the handle is closed or leaked.
func (h *Handle[R]) Resource() R {
	return h.res
}

// Raw returns the native address for passing into further entry points.
func (h *Handle[R]) Raw() uintptr {
	return h.res.Raw()
}

// Close releases the native resource. The first call wins; any later
// call returns ErrInvalidHandle without touching the engine.
//
// If the release entry point fails, the error is returned and the
// resource is leaked rather than retried: the engine defines no retry
// contract for release.
func (h *Handle[R]) Close() error {
	if !h.released.CompareAndSwap(false, true) {
		return ErrInvalidHandle
	}
	h.cleanup.Stop()
	if err := h.res.release(); err != nil {
		return err
	}
	logger().Debug("released resource handle", zap.Uintptr("raw", h.res.Raw()))
	return nil
}

// Leak gives up ownership without releasing: the resource stays live for
// the rest of the process (or until reclaimed with Adopt) and the
// returned reference is no longer tied to the handle. Useful for
// process-lifetime resources like the root system.
func (h *Handle[R]) Leak() R {
	if h.released.CompareAndSwap(false, true) {
		h.cleanup.Stop()
	}
	return h.res
}

// Adopt claims responsibility for releasing a previously leaked
// resource.
//
// Safety: res must have been obtained from Leak (or a create call whose
// handle was leaked), and no other reference to the resource may outlive
// the returned handle. Adopting a resource twice creates two owners and
// a double release.
func Adopt[R Resource](res R) *Handle[R] {
	return newHandle(res)
}
