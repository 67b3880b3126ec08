// Package state persists parameter values as an opaque binary blob.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/justyntemme/svfilter/pkg/framework/param"
)

const (
	magic          = "SVFSTATE"
	currentVersion = uint32(1)

	// upper bound on the entry count so a corrupt header cannot force a
	// huge allocation
	maxEntries = 1 << 16
)

var (
	// ErrInvalidFormat is returned when a blob is not a parameter state blob
	ErrInvalidFormat = errors.New("invalid state format")
	// ErrUnsupportedVersion is returned for blobs written by a newer version
	ErrUnsupportedVersion = errors.New("unsupported state version")
)

// Manager handles plugin state saving and loading
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  currentVersion,
		registry: registry,
	}
}

type entry struct {
	ID    uint32
	Value float64
}

// Save writes every parameter as an {id, plain value} pair
func (m *Manager) Save(w io.Writer) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	params := m.registry.All()
	header := struct {
		Version uint32
		Count   uint32
	}{m.version, uint32(len(params))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range params {
		e := entry{ID: p.ID, Value: p.GetPlainValue()}
		if err := binary.Write(w, binary.LittleEndian, e); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
	}

	return nil
}

// Load restores parameters from a blob written by Save.
//
// The blob is decoded completely before anything is applied. If it is
// malformed every parameter falls back to its default and the error is
// returned. Unknown ids are skipped; values are clamped by the parameters.
func (m *Manager) Load(r io.Reader) error {
	entries, err := m.decode(r)
	if err != nil {
		m.registry.ResetAll()
		return err
	}

	for _, e := range entries {
		if p := m.registry.Get(e.ID); p != nil {
			p.SetPlainValue(e.Value)
		}
	}

	return nil
}

func (m *Manager) decode(r io.Reader) ([]entry, error) {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidFormat, err)
	}
	if string(header) != magic {
		return nil, ErrInvalidFormat
	}

	var version, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: read version: %v", ErrInvalidFormat, err)
	}
	if version == 0 || version > m.version {
		return nil, fmt.Errorf("%w: %d (supported up to %d)", ErrUnsupportedVersion, version, m.version)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: read count: %v", ErrInvalidFormat, err)
	}
	if count > maxEntries {
		return nil, fmt.Errorf("%w: %d entries", ErrInvalidFormat, count)
	}

	entries := make([]entry, count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("%w: read parameters: %v", ErrInvalidFormat, err)
	}

	return entries, nil
}
