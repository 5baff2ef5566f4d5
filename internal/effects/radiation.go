package effects

import "math"

// radiationLevels returns the initial ionizing radiation damage tiers for a
// yield, before height attenuation. Initial radiation falls off steeply with
// distance and is yield-dominated over the modeled range, so a yield^0.19
// scaling law is the whole model; there is no distance-dependent dose
// function to expose.
func radiationLevels(yieldMegatons float64) EffectLevels {
	f := math.Pow(yieldMegatons, radiationScalingExp)
	return newLevels(radiationSevereRef*f, radiationModerateRef*f, radiationLightRef*f)
}
