package param

import (
	"fmt"
	"strings"
)

// ChoiceOption represents a single choice in a list parameter
type ChoiceOption struct {
	Value   float64
	Name    string
	Aliases []string
}

// Choice creates a parameter builder for a multiple choice parameter.
// The value stays continuous; readers pick an option by truncation.
func Choice(id uint32, name string, options []ChoiceOption) *Builder {
	formatter := func(value float64) string {
		for _, opt := range options {
			if opt.Value == value {
				return opt.Name
			}
		}
		// Fallback to index-based lookup for integer values
		index := int(value)
		if index >= 0 && index < len(options) {
			return options[index].Name
		}
		return "Unknown"
	}

	parser := func(str string) (float64, error) {
		normalizedStr := strings.ToLower(strings.TrimSpace(str))

		for _, opt := range options {
			if strings.EqualFold(normalizedStr, opt.Name) {
				return opt.Value, nil
			}
			for _, alias := range opt.Aliases {
				if strings.EqualFold(normalizedStr, alias) {
					return opt.Value, nil
				}
			}
		}

		return 0, fmt.Errorf("unknown option: %s", str)
	}

	minVal, maxVal := 0.0, 0.0
	if len(options) > 0 {
		minVal = options[0].Value
		maxVal = options[len(options)-1].Value
	}

	b := New(id, name).
		Range(minVal, maxVal).
		Steps(int32(len(options)-1)).
		Formatter(formatter, parser)
	b.param.Flags |= IsList
	return b
}

// FrequencyParameter creates a frequency parameter whose control travel is
// skewed so that centre sits at the midpoint.
func FrequencyParameter(id uint32, name string, min, max, centre, defaultVal float64) *Builder {
	return New(id, name).
		Range(min, max).
		Centre(centre).
		Default(defaultVal).
		Unit("Hz").
		Formatter(FrequencyFormatter, FrequencyParser)
}

// QParameter creates a Q/resonance parameter
func QParameter(id uint32, name string, minQ, maxQ, defaultQ float64) *Builder {
	return New(id, name).
		Range(minQ, maxQ).
		Default(defaultQ).
		Formatter(QFormatter, QParser)
}

// parseFloat is a helper function to parse float values
func parseFloat(s string) (float64, error) {
	var value float64
	_, err := fmt.Sscanf(s, "%f", &value)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", s)
	}
	return value, nil
}
