package svfilter

import (
	"fmt"
	"math"

	"github.com/justyntemme/svfilter/pkg/dsp"
	"github.com/justyntemme/svfilter/pkg/dsp/debug"
	"github.com/justyntemme/svfilter/pkg/dsp/filter"
)

// ParameterSource supplies the parameter values for a block
type ParameterSource interface {
	Snapshot() Snapshot
}

// EngineState is the lifecycle state of an Engine
type EngineState int

const (
	// StateUninitialized means Prepare has not been called since creation or Release
	StateUninitialized EngineState = iota
	// StatePrepared means blocks may be processed
	StatePrepared
)

// String returns the state name
func (s EngineState) String() string {
	if s == StatePrepared {
		return "Prepared"
	}
	return "Uninitialized"
}

// Engine runs the state variable filter over channel-major blocks
type Engine struct {
	params ParameterSource
	svf    *filter.SVF

	state        EngineState
	sampleRate   float64
	maxBlockSize int
	numChannels  int
}

// NewEngine creates an unprepared engine reading from params
func NewEngine(params ParameterSource) *Engine {
	return &Engine{params: params}
}

// Prepare sizes and zeroes the filter state for a processing setup.
// Every call fully resets the state. Not real-time safe.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize, numChannels int) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("invalid sample rate %v", sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("invalid block size %d", maxBlockSize)
	}
	if numChannels <= 0 {
		return fmt.Errorf("invalid channel count %d", numChannels)
	}

	if e.svf == nil || e.svf.Channels() != numChannels {
		e.svf = filter.NewSVF(numChannels)
	} else {
		e.svf.Reset()
	}

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.numChannels = numChannels
	e.state = StatePrepared
	return nil
}

// Release drops the filter state and returns to StateUninitialized
func (e *Engine) Release() {
	e.svf = nil
	e.sampleRate = 0
	e.maxBlockSize = 0
	e.numChannels = 0
	e.state = StateUninitialized
}

// ProcessBlock filters every channel of block in place - no allocations,
// no locks. A block that breaks the prepared setup panics in debug builds
// and is silenced otherwise.
func (e *Engine) ProcessBlock(block [][]float32) {
	if !debug.Assert(e.state == StatePrepared, "process before prepare") ||
		!debug.CheckChannels(len(block), e.numChannels) {
		dsp.ClearChannels(block)
		return
	}
	for _, ch := range block {
		if !debug.CheckBlockSize(len(ch), e.maxBlockSize) {
			dsp.ClearChannels(block)
			return
		}
	}

	snap := e.params.Snapshot()
	cutoff := clampParam(snap.Cutoff, MinCutoff, MaxCutoff)
	resonance := clampParam(snap.Resonance, MinResonance, MaxResonance)

	e.svf.SetMode(filter.ModeFromValue(snap.FilterType))
	e.svf.SetCoefficients(filter.ComputeCoefficients(e.sampleRate, cutoff, resonance))

	for ch, buf := range block {
		e.svf.Process(buf, ch)
	}
	e.svf.FlushDenormals()
}

// State returns the lifecycle state
func (e *Engine) State() EngineState {
	return e.state
}

// SampleRate returns the prepared sample rate
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// MaxBlockSize returns the prepared maximum block length
func (e *Engine) MaxBlockSize() int {
	return e.maxBlockSize
}

// NumChannels returns the prepared channel count
func (e *Engine) NumChannels() int {
	return e.numChannels
}

func clampParam(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
