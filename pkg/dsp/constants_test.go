package dsp

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
	}{
		{"Frequency", MinFrequency, MaxFrequency},
		{"Q", MinQ, MaxQ},
		{"Buffer", DefaultBufferSize, MaxBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.min >= tt.max {
				t.Errorf("%s: min (%f) >= max (%f)", tt.name, tt.min, tt.max)
			}
		})
	}

	if DefaultMidFreq <= MinFrequency || DefaultMidFreq >= MaxFrequency {
		t.Errorf("DefaultMidFreq %f outside the frequency range", DefaultMidFreq)
	}
	if MaxCutoffRatio >= 0.5 {
		t.Errorf("MaxCutoffRatio %f must stay below Nyquist", MaxCutoffRatio)
	}
}

func TestMathConstants(t *testing.T) {
	if math.Abs(TwoPi-2*math.Pi) > 1e-10 {
		t.Errorf("TwoPi constant incorrect: %f vs %f", TwoPi, 2*math.Pi)
	}
}

func TestFlushDenormal(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1e-35, 0},
		{-1e-35, 0},
		{0, 0},
		{1e-6, 1e-6},
		{-0.5, -0.5},
	}
	for _, tt := range tests {
		if got := FlushDenormal(tt.in); got != tt.want {
			t.Errorf("FlushDenormal(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestClearChannels(t *testing.T) {
	block := [][]float32{{1, 2}, {3, 4, 5}}
	ClearChannels(block)
	for ch := range block {
		for i, v := range block[ch] {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v", ch, i, v)
			}
		}
	}
}
