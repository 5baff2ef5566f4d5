package catalog

import (
	"fmt"

	"github.com/larseberhart/nuccalc/internal/effects"
)

// BurstType names a burst-height selection strategy.
type BurstType string

const (
	// BurstSurface detonates at ground level: maximum fallout, reduced
	// blast radius.
	BurstSurface BurstType = "surface"
	// BurstOptimum uses the combined blast/thermal optimum height.
	BurstOptimum BurstType = "optimum"
	// BurstLow uses 70% of the combined optimum: balanced effects, moderate
	// fallout.
	BurstLow BurstType = "low"
	// BurstHigh uses 150% of the combined optimum: minimum fallout, reduced
	// effects.
	BurstHigh BurstType = "high"
	// BurstThermal uses the thermal-optimized height.
	BurstThermal BurstType = "thermal"
	// BurstBlast uses the blast-optimized height.
	BurstBlast BurstType = "blast"
)

// ResolveBurstHeight maps a burst type to a concrete burst height in meters
// for the given yield, using the engine's yield-scaled optimal heights.
func ResolveBurstHeight(burst BurstType, yieldMegatons float64) (float64, error) {
	oh, err := effects.OptimalBurstHeights(yieldMegatons)
	if err != nil {
		return 0, err
	}
	switch burst {
	case BurstSurface:
		return 0, nil
	case BurstOptimum:
		return oh.Combined, nil
	case BurstLow:
		return oh.Combined * 0.7, nil
	case BurstHigh:
		return oh.Combined * 1.5, nil
	case BurstThermal:
		return oh.Thermal, nil
	case BurstBlast:
		return oh.Blast, nil
	default:
		return 0, fmt.Errorf("unknown burst type %q", burst)
	}
}
