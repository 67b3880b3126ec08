//go:build !debug

package svfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineUnpreparedSilences(t *testing.T) {
	e := NewEngine(&fixedSource{})
	block := ones(2, 64)
	e.ProcessBlock(block)
	assert.Equal(t, makeBlock(2, 64), block)

	require.NoError(t, e.Prepare(44100, 64, 2))
	e.Release()
	block = ones(2, 64)
	e.ProcessBlock(block)
	assert.Equal(t, makeBlock(2, 64), block)
}

func TestEngineChannelMismatchSilences(t *testing.T) {
	e := NewEngine(&fixedSource{snap: Snapshot{Cutoff: 1000, Resonance: 1}})
	require.NoError(t, e.Prepare(44100, 64, 2))

	block := ones(1, 64)
	e.ProcessBlock(block)
	assert.Equal(t, makeBlock(1, 64), block)

	block = ones(3, 64)
	e.ProcessBlock(block)
	assert.Equal(t, makeBlock(3, 64), block)
}

func TestEngineOversizedBlockSilences(t *testing.T) {
	e := NewEngine(&fixedSource{snap: Snapshot{Cutoff: 1000, Resonance: 1}})
	require.NoError(t, e.Prepare(44100, 64, 1))

	block := ones(1, 65)
	e.ProcessBlock(block)
	assert.Equal(t, makeBlock(1, 65), block)
}
