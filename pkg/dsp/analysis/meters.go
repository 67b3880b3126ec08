package analysis

import (
	"errors"
	"math"
	"sync/atomic"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/justyntemme/svfilter/pkg/dsp/gain"
)

// ErrBlockTooLarge is returned when a block exceeds the meter's scratch size
var ErrBlockTooLarge = errors.New("block larger than meter capacity")

// MinDB is reported for silent signals
const MinDB = -120.0

// Levels computes the peak and RMS of a block. x and sq are float64
// scratch buffers at least len(block) long.
func Levels(block []float32, x, sq []float64) (peak, rms float64) {
	n := len(block)
	if n == 0 {
		return 0, 0
	}
	x = x[:n]
	sq = sq[:n]

	for i, v := range block {
		x[i] = float64(v)
		if a := math.Abs(x[i]); a > peak {
			peak = a
		}
	}

	vecmath.MulBlock(sq, x, x)
	sum := 0.0
	for _, v := range sq {
		sum += v
	}
	return peak, math.Sqrt(sum / float64(n))
}

// ToDB converts a linear amplitude to decibels, floored at MinDB
func ToDB(linear float64) float64 {
	return math.Max(gain.LinearToDb(linear), MinDB)
}

// LevelMeter tracks the last block's peak and RMS per channel. Process
// must be called from a single goroutine (the audio callback); the getters
// and Reset are lock-free and safe from any goroutine.
type LevelMeter struct {
	// float64 bits
	peak []atomic.Uint64
	rms  []atomic.Uint64

	x  []float64
	sq []float64
}

// NewLevelMeter creates a meter for channels with blocks up to maxBlockSize
func NewLevelMeter(channels, maxBlockSize int) *LevelMeter {
	return &LevelMeter{
		peak: make([]atomic.Uint64, channels),
		rms:  make([]atomic.Uint64, channels),
		x:    make([]float64, maxBlockSize),
		sq:   make([]float64, maxBlockSize),
	}
}

// Process measures a channel-major block. Channels beyond the meter's
// count are ignored.
func (lm *LevelMeter) Process(block [][]float32) error {
	for ch := range block {
		if ch >= len(lm.peak) {
			break
		}
		if len(block[ch]) > len(lm.x) {
			return ErrBlockTooLarge
		}
		peak, rms := Levels(block[ch], lm.x, lm.sq)
		lm.peak[ch].Store(math.Float64bits(peak))
		lm.rms[ch].Store(math.Float64bits(rms))
	}
	return nil
}

func load(v []atomic.Uint64, ch int) float64 {
	if ch < 0 || ch >= len(v) {
		return 0
	}
	return math.Float64frombits(v[ch].Load())
}

// GetPeak returns the last peak of a channel
func (lm *LevelMeter) GetPeak(ch int) float64 {
	return load(lm.peak, ch)
}

// GetRMS returns the last RMS of a channel
func (lm *LevelMeter) GetRMS(ch int) float64 {
	return load(lm.rms, ch)
}

// GetPeakDB returns the last peak of a channel in dB
func (lm *LevelMeter) GetPeakDB(ch int) float64 {
	return ToDB(lm.GetPeak(ch))
}

// GetRMSDB returns the last RMS of a channel in dB
func (lm *LevelMeter) GetRMSDB(ch int) float64 {
	return ToDB(lm.GetRMS(ch))
}

// Reset clears the readings
func (lm *LevelMeter) Reset() {
	for ch := range lm.peak {
		lm.peak[ch].Store(0)
		lm.rms[ch].Store(0)
	}
}
