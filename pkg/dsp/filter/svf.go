// Package filter provides the state variable filter used by the plugin.
package filter

import (
	"math"

	"github.com/justyntemme/svfilter/pkg/dsp"
)

// Mode selects which SVF output is written back to the buffer
type Mode int

const (
	// LowPass passes content below the cutoff
	LowPass Mode = iota
	// HighPass passes content above the cutoff
	HighPass
	// BandPass passes a band around the cutoff; its peak gain equals the resonance (Q)
	BandPass
)

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case LowPass:
		return "Low Pass"
	case HighPass:
		return "High Pass"
	case BandPass:
		return "Band Pass"
	default:
		return "Unknown"
	}
}

// ModeFromValue converts a raw parameter value to a mode. The value is
// truncated toward zero; anything that does not name a mode is LowPass.
func ModeFromValue(v float64) Mode {
	if math.IsNaN(v) || v < 0 || v >= float64(BandPass)+1 {
		return LowPass
	}
	return Mode(int(v))
}

// Coefficients holds the per-block TPT integrator coefficients
type Coefficients struct {
	G  float32 // prewarped integrator gain
	K  float32 // damping (1/Q)
	A1 float32
	A2 float32
	A3 float32
}

// ComputeCoefficients derives the filter coefficients for a cutoff and Q.
// The cutoff is clamped to [dsp.MinFrequency, dsp.MaxCutoffRatio*sampleRate]
// and Q to [dsp.MinQ, dsp.MaxQ]. A non-positive sample rate yields an
// integrator gain of zero.
func ComputeCoefficients(sampleRate, cutoff, q float64) Coefficients {
	if math.IsNaN(q) || q < dsp.MinQ {
		q = dsp.MinQ
	} else if q > dsp.MaxQ {
		q = dsp.MaxQ
	}
	k := 1.0 / q

	if sampleRate <= 0 {
		return Coefficients{K: float32(k), A1: 1}
	}

	maxCutoff := dsp.MaxCutoffRatio * sampleRate
	if math.IsNaN(cutoff) || cutoff < dsp.MinFrequency {
		cutoff = dsp.MinFrequency
	}
	if cutoff > maxCutoff {
		cutoff = maxCutoff
	}

	// Pre-warp the frequency for the bilinear transform
	g := math.Tan(math.Pi * cutoff / sampleRate)
	a1 := 1.0 / (1.0 + g*(g+k))
	a2 := g * a1
	a3 := g * a2

	return Coefficients{
		G:  float32(g),
		K:  float32(k),
		A1: float32(a1),
		A2: float32(a2),
		A3: float32(a3),
	}
}

// SVF implements a state variable filter
// Zero-delay feedback topology with one integrator pair per channel.
// All modes share the same coefficients; the mode only picks the output tap.
type SVF struct {
	coeffs Coefficients
	mode   Mode

	// State variables (per-channel)
	ic1eq []float32 // integrator 1 state
	ic2eq []float32 // integrator 2 state
}

// NewSVF creates a new state variable filter for the specified number of channels
func NewSVF(channels int) *SVF {
	return &SVF{
		coeffs: Coefficients{A1: 1},
		ic1eq:  make([]float32, channels),
		ic2eq:  make([]float32, channels),
	}
}

// Channels returns the number of channels with filter state
func (s *SVF) Channels() int {
	return len(s.ic1eq)
}

// Reset clears the filter state
func (s *SVF) Reset() {
	clear(s.ic1eq)
	clear(s.ic2eq)
}

// SetCoefficients installs the coefficients used by subsequent processing
func (s *SVF) SetCoefficients(c Coefficients) {
	s.coeffs = c
}

// Coefficients returns the current coefficients
func (s *SVF) Coefficients() Coefficients {
	return s.coeffs
}

// SetMode sets the output tap
func (s *SVF) SetMode(m Mode) {
	s.mode = m
}

// Mode returns the output tap
func (s *SVF) Mode() Mode {
	return s.mode
}

// ProcessSample filters one sample on a channel and returns the selected tap
func (s *SVF) ProcessSample(input float32, channel int) float32 {
	c := s.coeffs
	ic1eq := s.ic1eq[channel]
	ic2eq := s.ic2eq[channel]

	v3 := input - ic2eq
	v1 := c.A1*ic1eq + c.A2*v3
	v2 := ic2eq + c.A2*ic1eq + c.A3*v3

	s.ic1eq[channel] = 2*v1 - ic1eq
	s.ic2eq[channel] = 2*v2 - ic2eq

	switch s.mode {
	case HighPass:
		return input - c.K*v1 - v2
	case BandPass:
		return v1
	default:
		return v2
	}
}

// Process filters a buffer in place on a channel - no allocations
func (s *SVF) Process(buffer []float32, channel int) {
	c := s.coeffs
	ic1eq := s.ic1eq[channel]
	ic2eq := s.ic2eq[channel]

	switch s.mode {
	case HighPass:
		for i, x := range buffer {
			v3 := x - ic2eq
			v1 := c.A1*ic1eq + c.A2*v3
			v2 := ic2eq + c.A2*ic1eq + c.A3*v3
			ic1eq = 2*v1 - ic1eq
			ic2eq = 2*v2 - ic2eq
			buffer[i] = x - c.K*v1 - v2
		}
	case BandPass:
		for i, x := range buffer {
			v3 := x - ic2eq
			v1 := c.A1*ic1eq + c.A2*v3
			v2 := ic2eq + c.A2*ic1eq + c.A3*v3
			ic1eq = 2*v1 - ic1eq
			ic2eq = 2*v2 - ic2eq
			buffer[i] = v1
		}
	default:
		for i, x := range buffer {
			v3 := x - ic2eq
			v1 := c.A1*ic1eq + c.A2*v3
			v2 := ic2eq + c.A2*ic1eq + c.A3*v3
			ic1eq = 2*v1 - ic1eq
			ic2eq = 2*v2 - ic2eq
			buffer[i] = v2
		}
	}

	s.ic1eq[channel] = ic1eq
	s.ic2eq[channel] = ic2eq
}

// FlushDenormals zeroes integrator state that has decayed below dsp.SmallFloat32
func (s *SVF) FlushDenormals() {
	for i := range s.ic1eq {
		s.ic1eq[i] = dsp.FlushDenormal(s.ic1eq[i])
		s.ic2eq[i] = dsp.FlushDenormal(s.ic2eq[i])
	}
}

// State returns the integrator state of a channel
func (s *SVF) State(channel int) (ic1, ic2 float32) {
	return s.ic1eq[channel], s.ic2eq[channel]
}
