package fmod

import (
	"fmt"

	"github.com/soniccore/fmod-go/abi"
)

// VersionNumber is a product version encoded as 0xaaaabbcc, each
// component in simple binary-coded decimal.
type VersionNumber uint32

// HeaderVersion is the version this wrapper was written against. It is
// passed on the create call; a library that does not match answers with
// ErrHeaderMismatch, which is the wrapper's distinct version-mismatch
// category.
const HeaderVersion = VersionNumber(abi.Version)

// Major returns the product major version.
func (v VersionNumber) Major() int { return decodeSBCD(uint16(v >> 16)) }

// Minor returns the product minor version.
func (v VersionNumber) Minor() int { return decodeSBCD(uint16(v >> 8 & 0xFF)) }

// Patch returns the product patch version.
func (v VersionNumber) Patch() int { return decodeSBCD(uint16(v & 0xFF)) }

// String formats like "2.02.05", keeping the native zero padding.
func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%02d.%02d", v.Major(), v.Minor(), v.Patch())
}

// decodeSBCD decodes simple binary-coded decimal, one decimal digit per
// nibble.
func decodeSBCD(encoded uint16) int {
	n := 0
	for mul := 1; encoded != 0; mul *= 10 {
		n += int(encoded&0xF) * mul
		encoded >>= 4
	}
	return n
}

// Load opens the native library and binds the entry points the wrapper
// consumes. Must succeed before any system is created. See abi.Load for
// path semantics.
func Load(path string) error {
	return abi.Load(path)
}
