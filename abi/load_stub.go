//go:build !(darwin || freebsd || linux)

package abi

import "fmt"

// Load is unavailable on platforms without dlopen support. Tests still
// run everywhere: they install instrumented tables directly.
func Load(path string) error {
	return fmt.Errorf("abi: dynamic loading not supported on this platform")
}
