package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter represents a plugin parameter
type Parameter struct {
	ID           uint32
	Key          string // stable textual identifier, e.g. "cutoff"
	Name         string
	ShortName    string
	Unit         string
	Range        Range
	DefaultValue float64 // plain value
	StepCount    int32
	Flags        uint32

	// Plain value as float64 bits; a single load or store is never torn,
	// so the audio thread can read while the GUI writes.
	value atomic.Uint64

	// Value formatting
	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Flags for parameters
const (
	CanAutomate uint32 = 1 << 0
	IsList      uint32 = 1 << 3
)

// GetPlainValue returns the current plain value
func (p *Parameter) GetPlainValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetPlainValue stores the nearest legal value to plain
func (p *Parameter) SetPlainValue(plain float64) {
	p.value.Store(math.Float64bits(p.Range.Snap(plain)))
}

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return p.Range.ToNormalized(p.GetPlainValue())
}

// SetValue sets the value from a normalized control position (0-1)
func (p *Parameter) SetValue(normalized float64) {
	p.value.Store(math.Float64bits(p.Range.FromNormalized(normalized)))
}

// Reset restores the default value
func (p *Parameter) Reset() {
	p.SetPlainValue(p.DefaultValue)
}

// Normalize converts plain value to normalized (0-1)
func (p *Parameter) Normalize(plain float64) float64 {
	return p.Range.ToNormalized(plain)
}

// Denormalize converts normalized (0-1) to plain value
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Range.FromNormalized(normalized)
}

// FormatPlain returns the display string for a plain value
func (p *Parameter) FormatPlain(plain float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	if p.StepCount > 0 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses a display string to a normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	plain, err := p.ParsePlain(str)
	if err != nil {
		return 0, err
	}
	return p.Normalize(plain), nil
}

// ParsePlain parses a display string to a plain value
func (p *Parameter) ParsePlain(str string) (float64, error) {
	if p.parseFunc != nil {
		return p.parseFunc(str)
	}
	return strconv.ParseFloat(str, 64)
}
