package bus

import (
	"errors"
	"testing"
)

func TestNewStereoConfiguration(t *testing.T) {
	config := NewStereoConfiguration()

	if got := config.GetBusCount(DirectionInput); got != 1 {
		t.Errorf("Expected 1 audio input bus, got %d", got)
	}
	if got := config.GetBusCount(DirectionOutput); got != 1 {
		t.Errorf("Expected 1 audio output bus, got %d", got)
	}

	inBus := config.GetBusInfo(DirectionInput, 0)
	if inBus == nil {
		t.Fatal("Expected input bus to exist")
	}
	if inBus.ChannelCount != 2 {
		t.Errorf("Expected 2 input channels, got %d", inBus.ChannelCount)
	}
	if inBus.Name != "Stereo In" {
		t.Errorf("Expected input name 'Stereo In', got %s", inBus.Name)
	}

	outBus := config.GetBusInfo(DirectionOutput, 0)
	if outBus == nil {
		t.Fatal("Expected output bus to exist")
	}
	if outBus.ChannelCount != 2 {
		t.Errorf("Expected 2 output channels, got %d", outBus.ChannelCount)
	}
	if config.GetBusInfo(DirectionOutput, 1) != nil {
		t.Error("Expected a single output bus")
	}
}

func TestNewMonoConfiguration(t *testing.T) {
	config := NewMonoConfiguration()

	if got := config.ChannelCount(DirectionInput); got != 1 {
		t.Errorf("Expected 1 input channel, got %d", got)
	}
	if got := config.ChannelCount(DirectionOutput); got != 1 {
		t.Errorf("Expected 1 output channel, got %d", got)
	}
	if name := config.GetBusInfo(DirectionOutput, 0).Name; name != "Mono Out" {
		t.Errorf("Expected 'Mono Out', got %s", name)
	}
}

func TestCheckLayout(t *testing.T) {
	tests := []struct {
		name    string
		in, out int32
		wantErr bool
	}{
		{"mono", 1, 1, false},
		{"stereo", 2, 2, false},
		{"mono to stereo", 1, 2, true},
		{"stereo to mono", 2, 1, true},
		{"surround", 6, 6, true},
		{"no outputs", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLayout(tt.in, tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckLayout(%d, %d) error = %v, wantErr %v", tt.in, tt.out, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedLayout) {
				t.Errorf("expected ErrUnsupportedLayout, got %v", err)
			}
		})
	}
}

func TestNewConfigurationRejectsUnsupported(t *testing.T) {
	if _, err := NewConfiguration(4); !errors.Is(err, ErrUnsupportedLayout) {
		t.Errorf("NewConfiguration(4) error = %v", err)
	}
}
