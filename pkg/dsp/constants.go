// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the DSP packages and the plugin.
const (
	// Frequency ranges
	MinFrequency   = 20.0    // 20 Hz
	MaxFrequency   = 20000.0 // 20 kHz
	DefaultMidFreq = 1000.0  // perceptual centre of the audible range

	// Highest usable cutoff as a fraction of the sample rate; keeps the
	// prewarped integrator gain finite below Nyquist.
	MaxCutoffRatio = 0.49

	// Q factor ranges
	MinQ = 0.1
	MaxQ = 20.0

	// Channel counts
	Mono   = 1
	Stereo = 2

	// Default device sample rate
	SampleRate48k = 48000.0

	// Buffer sizes
	DefaultBufferSize = 512
	MaxBufferSize     = 8192

	// Phase constants
	TwoPi = 6.283185307179586

	// Magnitudes below this are flushed to zero in filter state
	SmallFloat32 = 1e-30
)
