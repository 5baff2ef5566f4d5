package effects

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	frozen := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	pop := Population{CoreDensity: 5724, SuburbanDensity: 3500, CoreRadius: 22.5}

	t.Run("reference airburst scenario", func(t *testing.T) {
		det, err := NewDetonation(0.15, 159.4, 3)
		require.NoError(t, err)

		res, err := Compute(det, pop)
		require.NoError(t, err)

		assert.InDelta(t, 561.85, res.Thermal.Severe.Radius, 0.01)
		assert.InDelta(t, 1045.72, res.Blast.Severe.Radius, 0.01)
		assert.InDelta(t, 74.61, res.Fallout.MaxDownwindDistance, 0.01)
		assert.InDelta(t, 2.80, res.Fallout.MaxWidth, 0.01)
		assert.Equal(t, frozen, res.ComputedAt)
		assert.Equal(t, det, res.Detonation)
		assert.Equal(t, pop, res.Population)
	})

	t.Run("rejects non-positive yield", func(t *testing.T) {
		_, err := Compute(Detonation{YieldMegatons: 0}, pop)
		require.ErrorIs(t, err, ErrInvalidYield)
	})

	t.Run("height attenuation hits blast and radiation, not thermal", func(t *testing.T) {
		surface, err := NewDetonation(1.0, 0, 0)
		require.NoError(t, err)
		elevated, err := NewDetonation(1.0, 2000, 0)
		require.NoError(t, err)

		rs, err := Compute(surface, pop)
		require.NoError(t, err)
		re, err := Compute(elevated, pop)
		require.NoError(t, err)

		assert.InDelta(t, 0.8, re.Blast.Severe.Radius/rs.Blast.Severe.Radius, 1e-9)
		assert.InDelta(t, 0.8, re.Radiation.Light.Radius/rs.Radiation.Light.Radius, 1e-9)
		assert.Equal(t, rs.Thermal, re.Thermal)
	})

	t.Run("tier ordering invariant across yields", func(t *testing.T) {
		for _, y := range []float64{0.015, 0.15, 1, 15, 50} {
			det, err := NewDetonation(y, 300, 5)
			require.NoError(t, err)
			res, err := Compute(det, pop)
			require.NoError(t, err)

			for name, l := range map[string]EffectLevels{
				"thermal": res.Thermal, "blast": res.Blast, "radiation": res.Radiation,
			} {
				assert.LessOrEqual(t, l.Severe.Radius, l.Moderate.Radius, "%s at %v MT", name, y)
				assert.LessOrEqual(t, l.Moderate.Radius, l.Light.Radius, "%s at %v MT", name, y)
			}
		}
	})

	t.Run("areas consistent with radii everywhere", func(t *testing.T) {
		det, err := NewDetonation(0.3, 300, 12)
		require.NoError(t, err)
		res, err := Compute(det, pop)
		require.NoError(t, err)

		for _, l := range []EffectLevels{res.Thermal, res.Blast, res.Radiation} {
			for _, b := range []EffectBand{l.Severe, l.Moderate, l.Light} {
				assert.InDelta(t, math.Pi*math.Pow(b.Radius/1000, 2), b.Area, 1e-12)
			}
		}
	})

	t.Run("no NaN or Inf in any output field", func(t *testing.T) {
		det, err := NewDetonation(0.001, 0, 0)
		require.NoError(t, err)
		res, err := Compute(det, pop)
		require.NoError(t, err)

		for _, v := range []float64{
			res.Fallout.MaxDownwindDistance, res.Fallout.MaxWidth,
			res.Fallout.DangerousZoneArea, res.Fallout.FalloutAngle,
			res.Casualties.Deaths, res.Casualties.SevereInjuries,
			res.Casualties.LightInjuries, res.Casualties.Delayed20Year,
		} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		det, err := NewDetonation(0.475, 300, 20)
		require.NoError(t, err)

		first, err := Compute(det, pop)
		require.NoError(t, err)
		second, err := Compute(det, pop)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("repeated Compute diverged (-first +second):\n%s", diff)
		}
	})

	t.Run("ID is stable and parameter-derived", func(t *testing.T) {
		det, err := NewDetonation(0.475, 300, 20)
		require.NoError(t, err)
		other, err := NewDetonation(0.475, 301, 20)
		require.NoError(t, err)

		a, err := Compute(det, pop)
		require.NoError(t, err)
		b, err := Compute(det, pop)
		require.NoError(t, err)
		c, err := Compute(other, pop)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(a.ID, "det-"))
		assert.Equal(t, a.ID, b.ID)
		assert.NotEqual(t, a.ID, c.ID)
	})
}
