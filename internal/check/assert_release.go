//go:build !debug

package check

// Assert does nothing without the debug build tag.
func Assert(_ bool, _ string) {}

// Assertf does nothing without the debug build tag.
func Assertf(_ bool, _ string, _ ...any) {}
