package analysis

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSize is returned for FFT sizes below two
var ErrInvalidSize = errors.New("fft size must be at least 2")

// BlockProcessor filters a mono buffer in place
type BlockProcessor func(buf []float32)

// MagnitudeResponse feeds a unit impulse of the given length through proc
// and returns the linear magnitude of bins 0..size/2. The processor should
// start from a reset state.
func MagnitudeResponse(proc BlockProcessor, size int) ([]float64, error) {
	if size < 2 {
		return nil, ErrInvalidSize
	}

	impulse := make([]float32, size)
	impulse[0] = 1
	proc(impulse)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("create fft plan: %w", err)
	}

	buf := make([]complex128, size)
	for i, v := range impulse {
		buf[i] = complex(float64(v), 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("forward fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// BinFrequency returns the centre frequency of an FFT bin in Hz
func BinFrequency(bin, size int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(size)
}

// FrequencyBin returns the bin nearest to freq
func FrequencyBin(freq float64, size int, sampleRate float64) int {
	bin := int(freq*float64(size)/sampleRate + 0.5)
	if bin < 0 {
		return 0
	}
	if bin > size/2 {
		return size / 2
	}
	return bin
}
