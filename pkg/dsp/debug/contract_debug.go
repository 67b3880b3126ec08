//go:build debug

package debug

import "fmt"

// Enabled reports whether contract checks are compiled in
const Enabled = true

// Assert panics with msg if cond is false
func Assert(cond bool, msg string) bool {
	if !cond {
		panic("contract violated: " + msg)
	}
	return true
}

// CheckChannels panics if a block's channel count differs from the
// prepared count. It returns true when the block may be processed.
func CheckChannels(got, want int) bool {
	if got != want {
		panic(fmt.Sprintf("contract violated: block has %d channels, prepared for %d", got, want))
	}
	return true
}

// CheckBlockSize panics if a block is longer than the prepared maximum
func CheckBlockSize(got, max int) bool {
	if got > max {
		panic(fmt.Sprintf("contract violated: block of %d samples exceeds prepared maximum %d", got, max))
	}
	return true
}
