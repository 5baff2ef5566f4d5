package effects

import "math"

// heightFactor is the multiplicative attenuation applied to blast and
// radiation tiers for elevated bursts: higher bursts couple less energy into
// ground-level overpressure and radiation. Linear falloff with a 0.3 floor;
// exactly 1.0 at ground level.
func heightFactor(burstHeight float64) float64 {
	return math.Max(0.3, 1.0-burstHeight/10000.0)
}

// OptimalBurstHeights returns yield-scaled advisory burst heights in meters
// for maximizing thermal effects, blast effects, and a combined compromise.
// All three follow cube-root scaling.
func OptimalBurstHeights(yieldMegatons float64) (OptimalHeights, error) {
	if yieldMegatons <= 0 {
		return OptimalHeights{}, ErrInvalidYield
	}
	f := math.Cbrt(yieldMegatons)
	return OptimalHeights{
		Thermal:  220.0 * f,
		Blast:    180.0 * f,
		Combined: 200.0 * f,
	}, nil
}
