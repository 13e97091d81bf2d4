package fmod

import (
	"sync"

	"go.uber.org/zap"

	"github.com/soniccore/fmod-go/abi"
)

// Lifecycle guards creation and destruction of the root engine system.
//
// System create and release race with every other entry point on the
// same instance, not just with other create/release calls, so the guard
// is a real reader/writer lock rather than an atomic flag: ordinary
// calls that touch process-global engine state take the read side and
// proceed concurrently, create/release take the write side exclusively.
//
// The zero value is ready to use and holds no instance. NewSystem and
// the free functions use the process-wide default guard; embedding code
// that needs its own guard (tests, advanced multi-instance setups) can
// carry a separate Lifecycle.
type Lifecycle struct {
	mu   sync.RWMutex
	live int
}

var defaultLifecycle Lifecycle

// DefaultLifecycle returns the process-wide guard used by NewSystem,
// NewSystemUnchecked and the free functions.
func DefaultLifecycle() *Lifecycle { return &defaultLifecycle }

// NewSystem creates the root engine system under the default guard.
// See (*Lifecycle).NewSystem.
func NewSystem() (*Handle[*System], error) {
	return defaultLifecycle.NewSystem()
}

// NewSystemUnchecked creates an additional engine system under the
// default guard. See (*Lifecycle).NewSystemUnchecked.
func NewSystemUnchecked() (*Handle[*System], error) {
	return defaultLifecycle.NewSystemUnchecked()
}

// NewSystem creates an instance of the engine system.
//
// Only a single system can exist safely at a time; further attempts
// return ErrInitialized without disturbing the live instance. For the
// common case where the system is a process-lifetime resource, leak the
// handle and pass the borrowed *System around freely.
func (l *Lifecycle) NewSystem() (*Handle[*System], error) {
	if !abi.Installed() {
		return nil, ErrInitialization
	}

	// Optimistic read first: reject the misuse case without blocking
	// ordinary calls behind the write lock.
	l.mu.RLock()
	live := l.live
	l.mu.RUnlock()
	if live != 0 {
		logger().DPanic("only one system may be created safely; " +
			"use NewSystemUnchecked if multiple instances are really intended")
		return nil, ErrInitialized
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.live != 0 {
		// Lost the creation race; same answer as the fast path.
		logger().Warn("concurrent system creation lost the race")
		return nil, ErrInitialized
	}
	return l.createLocked()
}

// NewSystemUnchecked creates an engine system without the
// single-instance restriction.
//
// Working with multiple systems shifts the race obligations to the
// caller: system create/release is thread-unsafe against every engine
// call on any instance, handles must never be used across instances,
// and closing any system handle while other instances run must be
// externally serialized. The guard still serializes creations among
// themselves, nothing more. If one system is enough, use NewSystem.
func (l *Lifecycle) NewSystemUnchecked() (*Handle[*System], error) {
	if !abi.Installed() {
		return nil, ErrInitialization
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.createLocked()
}

func (l *Lifecycle) createLocked() (*Handle[*System], error) {
	initializeDefaultDebug()

	var raw uintptr
	if err := errFrom(abi.Current().SystemCreate(&raw, abi.Version)); err != nil {
		return nil, err
	}
	l.live++
	sys := rawRes[System](raw)
	systemGuards.store(raw, l)
	return newHandle(sys), nil
}

// releaseSystem is the write-side release path. The guard only counts
// the instance as gone once the engine agrees; on failure the instance
// is still live and still guarded.
func (l *Lifecycle) releaseSystem(raw uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := errFrom(abi.Current().SystemRelease(raw)); err != nil {
		logger().Warn("system release failed, instance remains live",
			zap.Uintptr("raw", raw), zap.Error(err))
		return err
	}
	l.live--
	systemGuards.delete(raw)
	return nil
}

// guardRead runs fn holding the read side of the guard, for free
// functions that touch process-global engine state and must not race
// system create/release.
func (l *Lifecycle) guardRead(fn func() error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn()
}

// liveCount reports how many instances the guard currently tracks.
func (l *Lifecycle) liveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.live
}

// systemGuards maps a live system address back to the guard that
// created it, so the handle release path decrements the right one.
var systemGuards registry[*Lifecycle]
