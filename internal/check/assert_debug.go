//go:build debug

// Package check holds invariant assertions that only fire in debug builds.
// Kernel lifecycle transitions are checked here; release builds fall back
// to the caller's safe path instead of panicking.
package check

import "fmt"

// Assert panics with msg if cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("invariant violated: " + msg)
	}
}

// Assertf panics with a formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
}
