// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"
)

// MinDB is the minimum dB value (effectively -infinity)
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return math.Max(20.0*math.Log10(linear), MinDB)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// ApplyBuffer applies gain to an entire buffer in-place - no allocations
func ApplyBuffer(buffer []float32, gain float32) {
	if gain == 1 {
		return
	}
	for i := range buffer {
		buffer[i] *= gain
	}
}

// ApplyChannels applies gain to every channel of a block in place
func ApplyChannels(block [][]float32, gain float32) {
	for _, ch := range block {
		ApplyBuffer(ch, gain)
	}
}
