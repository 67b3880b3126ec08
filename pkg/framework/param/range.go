package param

import "math"

// Range describes the plain value range of a parameter and how it maps onto
// the normalized 0-1 control position used by hosts and GUI controls.
//
// Skew shapes the mapping: 1 is linear, values below 1 spread the low end of
// the range across more of the control travel.
type Range struct {
	Min      float64
	Max      float64
	Interval float64 // snapping step in plain units, 0 for continuous
	Skew     float64
}

// NewRange creates a linear, continuous range
func NewRange(min, max float64) Range {
	return Range{Min: min, Max: max, Skew: 1}
}

// SkewForCentre returns the skew factor that places centre at the normalized
// midpoint of [min, max].
func SkewForCentre(min, max, centre float64) float64 {
	if max <= min || centre <= min || centre >= max {
		return 1
	}
	return math.Log(0.5) / math.Log((centre-min)/(max-min))
}

// WithCentre returns a copy of the range skewed so that centre sits at 0.5
func (r Range) WithCentre(centre float64) Range {
	r.Skew = SkewForCentre(r.Min, r.Max, centre)
	return r
}

// Clamp limits a plain value to [Min, Max]. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Snap returns the nearest legal value: snapped to Interval and clamped
func (r Range) Snap(v float64) float64 {
	if r.Interval > 0 && !math.IsNaN(v) {
		v = r.Min + r.Interval*math.Floor((v-r.Min)/r.Interval+0.5)
	}
	return r.Clamp(v)
}

// ToNormalized converts a plain value to a control position in [0, 1]
func (r Range) ToNormalized(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	proportion := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	if r.Skew == 1 || r.Skew <= 0 || proportion <= 0 {
		return proportion
	}
	return math.Pow(proportion, r.Skew)
}

// FromNormalized converts a control position to a legal plain value
func (r Range) FromNormalized(normalized float64) float64 {
	if math.IsNaN(normalized) || normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	proportion := normalized
	if r.Skew != 1 && r.Skew > 0 && normalized > 0 {
		proportion = math.Exp(math.Log(normalized) / r.Skew)
	}
	return r.Snap(r.Min + proportion*(r.Max-r.Min))
}
