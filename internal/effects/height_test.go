package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightFactor(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   float64
	}{
		{"ground level", 0, 1.0},
		{"1 km", 1000, 0.9},
		{"5 km", 5000, 0.5},
		{"floor at 7 km", 7000, 0.3},
		{"floor holds above 10 km", 20000, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, heightFactor(tt.height), 1e-9)
		})
	}

	t.Run("bounded to [0.3, 1.0]", func(t *testing.T) {
		for h := 0.0; h <= 50000; h += 250 {
			f := heightFactor(h)
			assert.GreaterOrEqual(t, f, 0.3)
			assert.LessOrEqual(t, f, 1.0)
		}
	})
}

func TestOptimalBurstHeights(t *testing.T) {
	t.Run("1 MT", func(t *testing.T) {
		oh, err := OptimalBurstHeights(1.0)
		require.NoError(t, err)
		assert.InDelta(t, 220.0, oh.Thermal, 1e-9)
		assert.InDelta(t, 180.0, oh.Blast, 1e-9)
		assert.InDelta(t, 200.0, oh.Combined, 1e-9)
	})

	t.Run("cube-root scaling", func(t *testing.T) {
		oh, err := OptimalBurstHeights(8.0)
		require.NoError(t, err)
		assert.InDelta(t, 440.0, oh.Thermal, 1e-9)
		assert.InDelta(t, 360.0, oh.Blast, 1e-9)
		assert.InDelta(t, 400.0, oh.Combined, 1e-9)
	})

	t.Run("blast optimum below combined below thermal", func(t *testing.T) {
		oh, err := OptimalBurstHeights(0.3)
		require.NoError(t, err)
		assert.Less(t, oh.Blast, oh.Combined)
		assert.Less(t, oh.Combined, oh.Thermal)
	})

	t.Run("non-positive yield rejected", func(t *testing.T) {
		_, err := OptimalBurstHeights(0)
		require.ErrorIs(t, err, ErrInvalidYield)
	})
}
