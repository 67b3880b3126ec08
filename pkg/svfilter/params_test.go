package svfilter

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(nil)
	require.NoError(t, err)
	return s
}

func TestStoreDefaults(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, DefaultCutoff, s.Get(KeyCutoff))
	assert.Equal(t, DefaultResonance, s.Get(KeyResonance))
	assert.Equal(t, 0.0, s.Get(KeyFilterType))
	assert.Equal(t, 0.0, s.Get("gain"), "unknown keys read as zero")
	assert.Equal(t, int32(3), s.Registry().Count())
}

func TestStoreClampsToNearestBound(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		key  string
		in   float64
		want float64
	}{
		{KeyCutoff, 5, MinCutoff},
		{KeyCutoff, -100, MinCutoff},
		{KeyCutoff, 1e6, MaxCutoff},
		{KeyCutoff, 1000.4, 1000},
		{KeyCutoff, math.NaN(), MinCutoff},
		{KeyResonance, 0, MinResonance},
		{KeyResonance, 10, MaxResonance},
		{KeyResonance, 2.5, 2.5},
		{KeyFilterType, -3, 0},
		{KeyFilterType, 9, 2},
		{KeyFilterType, 1.5, 1.5},
	}
	for _, tt := range tests {
		s.Set(tt.key, tt.in)
		assert.Equal(t, tt.want, s.Get(tt.key), "Set(%s, %v)", tt.key, tt.in)
	}

	s.Set("unknown", 42)
	assert.Equal(t, 0.0, s.Get("unknown"))
}

func TestStoreNormalizedCutoff(t *testing.T) {
	s := newTestStore(t)

	s.SetNormalized(KeyCutoff, 0.5)
	assert.InDelta(t, CutoffCentre, s.Get(KeyCutoff), 1)

	s.SetNormalized(KeyCutoff, 0)
	assert.Equal(t, MinCutoff, s.Get(KeyCutoff))
	s.SetNormalized(KeyCutoff, 1)
	assert.Equal(t, MaxCutoff, s.Get(KeyCutoff))

	s.Set(KeyCutoff, 1000)
	assert.InDelta(t, 0.5, s.GetNormalized(KeyCutoff), 1e-3)

	s.SetNormalized(KeyResonance, 0.5)
	assert.InDelta(t, 3.0, s.Get(KeyResonance), 1e-9, "resonance is linear")
	assert.Equal(t, 0.0, s.GetNormalized("unknown"))
}

func TestStoreSnapshot(t *testing.T) {
	s := newTestStore(t)
	s.Set(KeyCutoff, 2500)
	s.Set(KeyResonance, 3)
	s.Set(KeyFilterType, 2)

	assert.Equal(t, Snapshot{Cutoff: 2500, Resonance: 3, FilterType: 2}, s.Snapshot())

	allocs := testing.AllocsPerRun(100, func() { _ = s.Snapshot() })
	assert.Zero(t, allocs)
}

func TestStoreReset(t *testing.T) {
	s := newTestStore(t)
	s.Set(KeyCutoff, 300)
	s.Set(KeyFilterType, 1)
	s.Reset()
	assert.Equal(t, DefaultCutoff, s.Get(KeyCutoff))
	assert.Equal(t, 0.0, s.Get(KeyFilterType))
}

func TestStoreFormatParse(t *testing.T) {
	s := newTestStore(t)

	s.Set(KeyCutoff, 1000)
	assert.Equal(t, "1.00 kHz", s.Format(KeyCutoff))
	s.Set(KeyResonance, 2.5)
	assert.Equal(t, "Q: 2.50", s.Format(KeyResonance))
	s.Set(KeyFilterType, 2)
	assert.Equal(t, "Band Pass", s.Format(KeyFilterType))
	assert.Equal(t, "", s.Format("unknown"))

	require.NoError(t, s.Parse(KeyCutoff, "2.5 kHz"))
	assert.Equal(t, 2500.0, s.Get(KeyCutoff))
	require.NoError(t, s.Parse(KeyCutoff, "440 Hz"))
	assert.Equal(t, 440.0, s.Get(KeyCutoff))
	require.NoError(t, s.Parse(KeyFilterType, "high pass"))
	assert.Equal(t, 1.0, s.Get(KeyFilterType))
	require.NoError(t, s.Parse(KeyResonance, "Q: 4"))
	assert.Equal(t, 4.0, s.Get(KeyResonance))

	assert.Error(t, s.Parse(KeyFilterType, "notch"))
	assert.Error(t, s.Parse("unknown", "1"))
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Set(KeyCutoff, float64(100+i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			snap := s.Snapshot()
			if snap.Cutoff < MinCutoff || snap.Cutoff > MaxCutoff {
				t.Errorf("torn cutoff %v", snap.Cutoff)
				return
			}
		}
	}()
	wg.Wait()
}
