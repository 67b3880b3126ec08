//go:build !debug

package debug

// Enabled reports whether contract checks are compiled in
const Enabled = false

// Assert returns cond without panicking
func Assert(cond bool, msg string) bool {
	return cond
}

// CheckChannels reports whether a block's channel count matches
func CheckChannels(got, want int) bool {
	return got == want
}

// CheckBlockSize reports whether a block fits the prepared maximum
func CheckBlockSize(got, max int) bool {
	return got <= max
}
