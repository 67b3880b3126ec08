package gain

import (
	"math"
	"testing"
)

func TestDbConversion(t *testing.T) {
	tests := []struct {
		linear float64
		db     float64
	}{
		{1.0, 0.0},
		{0.5, -6.0206},
		{2.0, 6.0206},
		{0.1, -20.0},
		{10.0, 20.0},
	}

	for _, tt := range tests {
		db := LinearToDb(tt.linear)
		if math.Abs(db-tt.db) > 0.001 {
			t.Errorf("LinearToDb(%f) = %f, want %f", tt.linear, db, tt.db)
		}
		linear := DbToLinear(tt.db)
		if math.Abs(linear-tt.linear) > 0.001 {
			t.Errorf("DbToLinear(%f) = %f, want %f", tt.db, linear, tt.linear)
		}
	}

	if LinearToDb(0) != MinDB || LinearToDb(-1) != MinDB {
		t.Error("non-positive amplitude should map to MinDB")
	}
	if DbToLinear(MinDB) != 0 {
		t.Error("MinDB should map to silence")
	}
}

func TestApplyChannels(t *testing.T) {
	block := [][]float32{{1, -1}, {0.5, 0.25}}
	ApplyChannels(block, 0.5)

	want := [][]float32{{0.5, -0.5}, {0.25, 0.125}}
	for ch := range block {
		for i := range block[ch] {
			if block[ch][i] != want[ch][i] {
				t.Errorf("block[%d][%d] = %f, want %f", ch, i, block[ch][i], want[ch][i])
			}
		}
	}

	ApplyBuffer(block[0], 1)
	if block[0][0] != 0.5 {
		t.Error("unity gain changed the buffer")
	}
}
