package plugin

import (
	"errors"

	"github.com/google/uuid"
)

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx|Filter")
}

// namespace for name-based plugin UIDs
var uidNamespace = uuid.MustParse("6f1c2b7e-3a4d-4e59-9b7a-5d2c8e1f0a63")

// ErrEmptyID is returned when a plugin has no identifier
var ErrEmptyID = errors.New("plugin id is empty")

// UID derives the 16-byte class id from the string ID. The same ID always
// yields the same UID, so hosts keep finding saved sessions.
func (i Info) UID() [16]byte {
	return uuid.NewSHA1(uidNamespace, []byte(i.ID))
}

// ValidateUID reports whether a usable UID can be derived
func (i Info) ValidateUID() error {
	if i.ID == "" {
		return ErrEmptyID
	}
	return nil
}
