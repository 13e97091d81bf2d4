package fmod

import (
	"github.com/soniccore/fmod-go/abi"
)

// MemoryStats is a snapshot of engine-internal memory usage.
type MemoryStats struct {
	// CurrentAlloced is the engine's current allocation total in
	// bytes.
	CurrentAlloced int32
	// MaxAlloced is the high-water mark in bytes.
	MaxAlloced int32
}

// MemoryUsage reports the engine's memory usage. With blocking set the
// engine flushes queued async allocations first, which is precise but
// expensive; non-blocking reads the running counters.
func MemoryUsage(blocking bool) (MemoryStats, error) {
	if !abi.Installed() {
		return MemoryStats{}, ErrInitialization
	}
	var stats MemoryStats
	err := defaultLifecycle.guardRead(func() error {
		return errFrom(abi.Current().MemoryGetStats(
			&stats.CurrentAlloced, &stats.MaxAlloced, cBool(blocking)))
	})
	return stats, err
}
