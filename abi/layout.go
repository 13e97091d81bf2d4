//go:build amd64 || arm64

package abi

import "unsafe"

// Build-time layout checks against the native 64-bit struct layouts. A
// negative array length here means a struct drifted from the header and
// the boundary contract is broken.

const (
	sizeVector            = 12
	sizeGUID              = 16
	sizeAsyncReadInfo     = 56
	sizeErrorCallbackInfo = 32
	sizeCreateSoundExInfo = 224
)

var (
	_ [sizeVector - unsafe.Sizeof(Vector{})]byte
	_ [unsafe.Sizeof(Vector{}) - sizeVector]byte

	_ [sizeGUID - unsafe.Sizeof(GUID{})]byte
	_ [unsafe.Sizeof(GUID{}) - sizeGUID]byte

	_ [sizeAsyncReadInfo - unsafe.Sizeof(AsyncReadInfo{})]byte
	_ [unsafe.Sizeof(AsyncReadInfo{}) - sizeAsyncReadInfo]byte

	_ [sizeErrorCallbackInfo - unsafe.Sizeof(ErrorCallbackInfo{})]byte
	_ [unsafe.Sizeof(ErrorCallbackInfo{}) - sizeErrorCallbackInfo]byte

	_ [sizeCreateSoundExInfo - unsafe.Sizeof(CreateSoundExInfo{})]byte
	_ [unsafe.Sizeof(CreateSoundExInfo{}) - sizeCreateSoundExInfo]byte

	_ [unsafe.Offsetof(AsyncReadInfo{}.Done) - 48]byte
	_ [48 - unsafe.Offsetof(AsyncReadInfo{}.Done)]byte

	_ [unsafe.Offsetof(CreateSoundExInfo{}.NonBlockCallback) - 72]byte
	_ [72 - unsafe.Offsetof(CreateSoundExInfo{}.NonBlockCallback)]byte

	_ [unsafe.Offsetof(CreateSoundExInfo{}.FileUserData) - 168]byte
	_ [168 - unsafe.Offsetof(CreateSoundExInfo{}.FileUserData)]byte
)
