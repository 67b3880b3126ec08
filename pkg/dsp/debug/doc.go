// Package debug provides contract checks for audio processing code.
//
// The checks are compiled in only when building with the 'debug' build tag:
//
//	go test -tags debug ./...
//
// In debug builds a violated contract panics with a descriptive message.
// Without the tag every check reports success and costs nothing, so the
// caller decides how to recover (the engine clears the block).
package debug
