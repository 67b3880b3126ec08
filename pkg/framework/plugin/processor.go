// Package plugin provides the processor contract between a host and an audio
// effect, plus a base implementation that handles the host bookkeeping.
package plugin

import (
	"errors"
	"fmt"
	"io"

	"github.com/justyntemme/svfilter/pkg/framework/bus"
	"github.com/justyntemme/svfilter/pkg/framework/param"
	"github.com/justyntemme/svfilter/pkg/framework/process"
	"github.com/justyntemme/svfilter/pkg/framework/state"
)

// Processor handles the actual audio processing
type Processor interface {
	// Initialize is called with the processing setup before activation
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessAudio processes audio - ZERO ALLOCATIONS!
	ProcessAudio(ctx *process.Context)

	// GetParameters returns the parameter registry
	GetParameters() *param.Registry

	// GetBuses returns the bus configuration
	GetBuses() *bus.Configuration

	// SetActive is called when processing starts/stops
	SetActive(active bool) error

	// GetLatencySamples returns the plugin's latency in samples
	GetLatencySamples() int32

	// GetTailSamples returns the tail length in samples
	GetTailSamples() int32
}

var (
	// ErrNotInitialized is returned when activating before Initialize
	ErrNotInitialized = errors.New("processor not initialized")
	// ErrActive is returned for setup changes while processing is active
	ErrActive = errors.New("processor is active")
)

// BaseProcessor provides common functionality for audio processors
type BaseProcessor struct {
	params *param.Registry
	buses  *bus.Configuration
	state  *state.Manager

	sampleRate   float64
	maxBlockSize int32
	initialized  bool
	active       bool

	// Optional callbacks for customization
	onInitialize func(sampleRate float64, maxBlockSize int32) error
	onSetActive  func(active bool) error
}

// NewBaseProcessor creates a new base processor with the given bus configuration
func NewBaseProcessor(buses *bus.Configuration) *BaseProcessor {
	if buses == nil {
		buses = bus.NewStereoConfiguration() // Default to stereo
	}

	params := param.NewRegistry()
	return &BaseProcessor{
		params: params,
		buses:  buses,
		state:  state.NewManager(params),
	}
}

// Initialize implements the Processor interface
func (b *BaseProcessor) Initialize(sampleRate float64, maxBlockSize int32) error {
	if b.active {
		return ErrActive
	}
	if sampleRate <= 0 || maxBlockSize <= 0 {
		return fmt.Errorf("invalid processing setup: sample rate %v, block size %d", sampleRate, maxBlockSize)
	}

	if b.onInitialize != nil {
		if err := b.onInitialize(sampleRate, maxBlockSize); err != nil {
			return err
		}
	}

	b.sampleRate = sampleRate
	b.maxBlockSize = maxBlockSize
	b.initialized = true
	return nil
}

// SetBusArrangements negotiates the main bus layout. Only allowed while
// inactive.
func (b *BaseProcessor) SetBusArrangements(inputs, outputs int32) error {
	if b.active {
		return ErrActive
	}
	if err := bus.CheckLayout(inputs, outputs); err != nil {
		return err
	}
	buses, err := bus.NewConfiguration(outputs)
	if err != nil {
		return err
	}
	b.buses = buses
	return nil
}

// SetActive implements the Processor interface
func (b *BaseProcessor) SetActive(active bool) error {
	if active && !b.initialized {
		return ErrNotInitialized
	}
	if active == b.active {
		return nil
	}

	if b.onSetActive != nil {
		if err := b.onSetActive(active); err != nil {
			return err
		}
	}

	b.active = active
	return nil
}

// GetParameters implements the Processor interface
func (b *BaseProcessor) GetParameters() *param.Registry {
	return b.params
}

// GetBuses implements the Processor interface
func (b *BaseProcessor) GetBuses() *bus.Configuration {
	return b.buses
}

// GetLatencySamples implements the Processor interface - default no latency
func (b *BaseProcessor) GetLatencySamples() int32 {
	return 0
}

// GetTailSamples implements the Processor interface - default no tail
func (b *BaseProcessor) GetTailSamples() int32 {
	return 0
}

// AcceptsMIDI reports whether the processor wants note input
func (b *BaseProcessor) AcceptsMIDI() bool {
	return false
}

// ProducesMIDI reports whether the processor emits note output
func (b *BaseProcessor) ProducesMIDI() bool {
	return false
}

// ProgramCount returns the number of program slots. Some hosts misbehave
// with zero programs, so there is always one.
func (b *BaseProcessor) ProgramCount() int {
	return 1
}

// CurrentProgram returns the selected program index
func (b *BaseProcessor) CurrentProgram() int {
	return 0
}

// SetCurrentProgram selects a program; the single slot makes this a no-op
func (b *BaseProcessor) SetCurrentProgram(int) {}

// ProgramName returns the name of a program slot
func (b *BaseProcessor) ProgramName(int) string {
	return ""
}

// SaveState writes the parameter state blob
func (b *BaseProcessor) SaveState(w io.Writer) error {
	return b.state.Save(w)
}

// LoadState restores the parameter state blob. A malformed blob resets all
// parameters to their defaults and returns the decode error.
func (b *BaseProcessor) LoadState(r io.Reader) error {
	return b.state.Load(r)
}

// SampleRate returns the current sample rate
func (b *BaseProcessor) SampleRate() float64 {
	return b.sampleRate
}

// MaxBlockSize returns the largest block the host will deliver
func (b *BaseProcessor) MaxBlockSize() int32 {
	return b.maxBlockSize
}

// IsActive reports whether processing is active
func (b *BaseProcessor) IsActive() bool {
	return b.active
}

// OnInitialize sets a callback for initialization
func (b *BaseProcessor) OnInitialize(fn func(sampleRate float64, maxBlockSize int32) error) {
	b.onInitialize = fn
}

// OnSetActive sets a callback for activation/deactivation
func (b *BaseProcessor) OnSetActive(fn func(active bool) error) {
	b.onSetActive = fn
}
