// Package fmod is a safety wrapper around the FMOD Core native audio
// engine, loaded at runtime through its C ABI.
//
// The engine itself (mixing, DSP, codecs) is opaque: this package never
// interprets engine memory, it only moves opaque addresses and status
// codes across the boundary. What the package does own is everything
// that makes that boundary safe to use from Go:
//
//	fmod/        Root package: error mapping, Handle ownership, the
//	             single-instance lifecycle guard, callback trampolines,
//	             and thin typed facades (System, Sound, Channel, ...)
//	└── abi/     Raw surface: status codes, entry-point table, and
//	             bit-exact struct layouts, bound with purego
//
// # Quick start
//
//	if err := fmod.Load("libfmod.so.14"); err != nil {
//	    log.Fatal(err)
//	}
//	h, err := fmod.NewSystem()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
//	sys := h.Resource()
//	if err := sys.Init(512, fmod.InitNormal); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership
//
// Every create call returns a *Handle that owns the underlying native
// object and releases it exactly once, on Close. Borrowed access goes
// through Resource(); a borrowed *System, *Sound, etc. is a typed view
// of the native address and must not outlive the owning handle. See
// Handle for the leak/adopt escape hatches.
//
// # Threads
//
// The engine runs its own mixer, streaming and I/O threads and invokes
// registered callbacks from them. All wrapper entry points are safe to
// call from any goroutine; system creation and release are additionally
// serialized against every other call through the lifecycle guard.
// Callback implementations run on engine threads and must be
// thread-safe; a panic in one is caught at the trampoline boundary,
// logged, and reported to the engine as an internal error code.
package fmod
