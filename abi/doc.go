// Package abi declares the raw surface of the native FMOD Core library:
// the status-code convention, the entry points the wrapper consumes, and
// the struct layouts that cross the boundary bit-for-bit.
//
// Nothing in this package interprets engine behavior. Entry points are
// collected in a Procs table so the wrapper above can run against either
// the real library (bound with purego at load time) or an instrumented
// table in tests. Raw object addresses travel as uintptr; ownership and
// typing are layered on by the root fmod package.
//
// Struct layouts must match the native headers exactly (size, alignment,
// field offsets). layout.go carries static assertions that fail the build
// on drift.
package abi
