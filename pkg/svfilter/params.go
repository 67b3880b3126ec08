package svfilter

import (
	"fmt"

	"github.com/justyntemme/svfilter/pkg/dsp"
	"github.com/justyntemme/svfilter/pkg/framework/param"
)

// Parameter IDs
const (
	ParamCutoff uint32 = iota
	ParamResonance
	ParamFilterType
)

// Parameter keys used by hosts, GUIs and the state blob
const (
	KeyCutoff     = "cutoff"
	KeyResonance  = "resonance"
	KeyFilterType = "filterType"
)

// Parameter ranges
const (
	MinCutoff     = dsp.MinFrequency
	MaxCutoff     = dsp.MaxFrequency
	CutoffCentre  = dsp.DefaultMidFreq
	DefaultCutoff = dsp.MaxFrequency

	MinResonance     = 1.0
	MaxResonance     = 5.0
	DefaultResonance = 1.0
)

// Snapshot is one read of every parameter, taken at the start of a block
type Snapshot struct {
	Cutoff     float64
	Resonance  float64
	FilterType float64
}

// Store holds the plugin parameters. Reads and writes of a single value
// are atomic; Snapshot never locks.
type Store struct {
	registry *param.Registry

	cutoff     *param.Parameter
	resonance  *param.Parameter
	filterType *param.Parameter
}

// NewStore registers the filter parameters in registry, or in a new
// registry when nil.
func NewStore(registry *param.Registry) (*Store, error) {
	if registry == nil {
		registry = param.NewRegistry()
	}

	s := &Store{
		registry: registry,
		cutoff: param.FrequencyParameter(ParamCutoff, "Cutoff", MinCutoff, MaxCutoff, CutoffCentre, DefaultCutoff).
			Key(KeyCutoff).
			Interval(1).
			Build(),
		resonance: param.QParameter(ParamResonance, "Resonance", MinResonance, MaxResonance, DefaultResonance).
			Key(KeyResonance).
			ShortName("Res").
			Build(),
		filterType: param.FilterTypeParameter(ParamFilterType, "Filter Type").
			Key(KeyFilterType).
			ShortName("Type").
			Build(),
	}

	if err := registry.Add(s.cutoff, s.resonance, s.filterType); err != nil {
		return nil, fmt.Errorf("register parameters: %w", err)
	}
	return s, nil
}

// Registry returns the registry the parameters live in
func (s *Store) Registry() *param.Registry {
	return s.registry
}

// Get returns the plain value of a parameter, or 0 for unknown keys
func (s *Store) Get(key string) float64 {
	if p := s.registry.Lookup(key); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// Set clamps and stores a plain value. Unknown keys are ignored.
func (s *Store) Set(key string, value float64) {
	if p := s.registry.Lookup(key); p != nil {
		p.SetPlainValue(value)
	}
}

// GetNormalized returns the control position [0, 1] of a parameter
func (s *Store) GetNormalized(key string) float64 {
	if p := s.registry.Lookup(key); p != nil {
		return p.GetValue()
	}
	return 0
}

// SetNormalized sets a parameter from a control position [0, 1]
func (s *Store) SetNormalized(key string, normalized float64) {
	if p := s.registry.Lookup(key); p != nil {
		p.SetValue(normalized)
	}
}

// Snapshot reads all parameters - no locks, no allocations
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Cutoff:     s.cutoff.GetPlainValue(),
		Resonance:  s.resonance.GetPlainValue(),
		FilterType: s.filterType.GetPlainValue(),
	}
}

// Reset restores every parameter to its default
func (s *Store) Reset() {
	s.registry.ResetAll()
}

// Format returns the display text of a parameter's current value
func (s *Store) Format(key string) string {
	if p := s.registry.Lookup(key); p != nil {
		return p.FormatPlain(p.GetPlainValue())
	}
	return ""
}

// Parse sets a parameter from display text such as "2.5 kHz" or "Band Pass"
func (s *Store) Parse(key, text string) error {
	p := s.registry.Lookup(key)
	if p == nil {
		return fmt.Errorf("unknown parameter %q", key)
	}
	v, err := p.ParsePlain(text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	p.SetPlainValue(v)
	return nil
}
