// Package svfilter implements a state variable filter effect: a parameter
// store, the filter engine and a host-facing processor tying them together.
package svfilter

import (
	"github.com/justyntemme/svfilter/pkg/framework/bus"
	"github.com/justyntemme/svfilter/pkg/framework/debug"
	"github.com/justyntemme/svfilter/pkg/framework/plugin"
	"github.com/justyntemme/svfilter/pkg/framework/process"
)

// PluginInfo describes the plugin to hosts
var PluginInfo = plugin.Info{
	ID:       "com.svfilter.stateVariableFilter",
	Name:     "SV Filter",
	Version:  "1.0.0",
	Vendor:   "svfilter",
	Category: "Fx|Filter",
}

// Processor is the host-facing filter effect
type Processor struct {
	*plugin.BaseProcessor

	params *Store
	engine *Engine
	logger *debug.Logger
}

// NewProcessor creates a stereo processor with default parameters
func NewProcessor() (*Processor, error) {
	base := plugin.NewBaseProcessor(bus.NewStereoConfiguration())

	params, err := NewStore(base.GetParameters())
	if err != nil {
		return nil, err
	}

	p := &Processor{
		BaseProcessor: base,
		params:        params,
		engine:        NewEngine(params),
		logger:        debug.Default().With("svfilter"),
	}
	base.OnInitialize(p.onInitialize)
	base.OnSetActive(p.onSetActive)
	return p, nil
}

// SetLogger replaces the control-path logger
func (p *Processor) SetLogger(l *debug.Logger) {
	p.logger = l
}

// Info returns the plugin metadata
func (p *Processor) Info() plugin.Info {
	return PluginInfo
}

// Params returns the parameter store
func (p *Processor) Params() *Store {
	return p.params
}

// Engine returns the filter engine
func (p *Processor) Engine() *Engine {
	return p.engine
}

// SetBusArrangements accepts matching mono or stereo layouts
func (p *Processor) SetBusArrangements(inputs, outputs int32) error {
	if err := p.BaseProcessor.SetBusArrangements(inputs, outputs); err != nil {
		p.logger.Warn("rejected bus arrangement %d in / %d out: %v", inputs, outputs, err)
		return err
	}
	p.logger.Debug("bus arrangement %d in / %d out", inputs, outputs)
	return nil
}

func (p *Processor) onInitialize(sampleRate float64, maxBlockSize int32) error {
	p.logger.Info("initialize: sampleRate=%.1f maxBlockSize=%d", sampleRate, maxBlockSize)
	return nil
}

func (p *Processor) onSetActive(active bool) error {
	if !active {
		p.engine.Release()
		p.logger.Info("deactivated")
		return nil
	}

	channels := int(p.GetBuses().ChannelCount(bus.DirectionOutput))
	if err := p.engine.Prepare(p.SampleRate(), int(p.MaxBlockSize()), channels); err != nil {
		p.logger.Error("prepare failed: %v", err)
		return err
	}
	p.logger.Info("activated: %d channels at %.1f Hz", channels, p.SampleRate())
	return nil
}

// ProcessAudio copies input to output and filters the output in place -
// no allocations, no logging
func (p *Processor) ProcessAudio(ctx *process.Context) {
	ctx.ClearUnmatchedOutputs()
	ctx.PassThrough()
	p.engine.ProcessBlock(ctx.Output)
}
