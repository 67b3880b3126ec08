// Package bus provides audio bus configuration and layout negotiation.
package bus

import (
	"errors"
	"fmt"
)

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// ErrUnsupportedLayout is returned for channel layouts the plugin cannot run
var ErrUnsupportedLayout = errors.New("unsupported bus layout")

// Info contains bus configuration
type Info struct {
	Direction    Direction
	ChannelCount int32
	Name         string
	IsActive     bool
}

// Configuration holds the main input and output bus of an effect
type Configuration struct {
	audioBuses []Info
}

// NewStereoConfiguration creates a standard stereo I/O configuration
func NewStereoConfiguration() *Configuration {
	c, _ := NewConfiguration(2)
	return c
}

// NewMonoConfiguration creates a mono I/O configuration
func NewMonoConfiguration() *Configuration {
	c, _ := NewConfiguration(1)
	return c
}

// NewConfiguration creates matching input and output buses with the given
// channel count. Only mono and stereo are supported.
func NewConfiguration(channels int32) (*Configuration, error) {
	if err := CheckLayout(channels, channels); err != nil {
		return nil, err
	}

	name := "Stereo"
	if channels == 1 {
		name = "Mono"
	}

	return &Configuration{
		audioBuses: []Info{
			{Direction: DirectionInput, ChannelCount: channels, Name: name + " In", IsActive: true},
			{Direction: DirectionOutput, ChannelCount: channels, Name: name + " Out", IsActive: true},
		},
	}, nil
}

// CheckLayout accepts mono or stereo layouts where input matches output
func CheckLayout(inputs, outputs int32) error {
	if outputs != 1 && outputs != 2 {
		return fmt.Errorf("%w: %d output channels", ErrUnsupportedLayout, outputs)
	}
	if inputs != outputs {
		return fmt.Errorf("%w: %d inputs for %d outputs", ErrUnsupportedLayout, inputs, outputs)
	}
	return nil
}

// GetBusCount returns the number of audio buses in a direction
func (c *Configuration) GetBusCount(direction Direction) int32 {
	count := int32(0)
	for _, bus := range c.audioBuses {
		if bus.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns information about a specific bus
func (c *Configuration) GetBusInfo(direction Direction, index int32) *Info {
	busIndex := int32(0)
	for i := range c.audioBuses {
		if c.audioBuses[i].Direction == direction {
			if busIndex == index {
				return &c.audioBuses[i]
			}
			busIndex++
		}
	}
	return nil
}

// ChannelCount returns the channel count of the main bus in a direction
func (c *Configuration) ChannelCount(direction Direction) int32 {
	if info := c.GetBusInfo(direction, 0); info != nil {
		return info.ChannelCount
	}
	return 0
}
