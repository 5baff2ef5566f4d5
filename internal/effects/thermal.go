package effects

import "math"

// Fluence computes the thermal fluence reaching a ground distance in meters.
// It applies the inverse-square law to the thermal partition of the yield,
// Beer-Lambert atmospheric attenuation, and for airbursts an obliquity
// factor plus an altitude transmission term for the thinner slant path.
//
// As with blast, the tier radii come from an empirical yield^0.4 scaling
// law; Fluence is the underlying physical model, exposed for diagnostics.
func Fluence(distance float64, det Detonation) (float64, error) {
	if distance <= 0 {
		return 0, ErrInvalidDistance
	}
	if det.YieldMegatons <= 0 {
		return 0, ErrInvalidYield
	}

	radiantEnergy := det.YieldMegatons * joulesPerMegaton * thermalFraction
	fluence := thermalCalibration * radiantEnergy / (4.0 * math.Pi * distance * distance)

	if h := det.BurstHeight; h > 0 {
		sine := h / (distance + h)
		obliquity := math.Sqrt(1.0 - sine*sine)
		fluence *= obliquity * math.Exp(-h/atmosphereScaleHeight)
	}

	transmission := math.Exp(-extinctionPerKm * distance / 1000.0)
	return fluence * transmission, nil
}

// FireballTemperature returns the effective fireball surface temperature in
// kelvin for a yield in megatons. Diagnostic output only; no tier radius
// depends on it.
func FireballTemperature(yieldMegatons float64) float64 {
	return 6000.0 + 1000.0*math.Log10(yieldMegatons)
}

// thermalLevels returns the thermal damage tiers for a yield. Thermal radii
// are never height-attenuated: Fluence already carries its own height terms.
func thermalLevels(yieldMegatons float64) EffectLevels {
	f := math.Pow(yieldMegatons, thermalScalingExp)
	return newLevels(thermalSevereRef*f, thermalModerateRef*f, thermalLightRef*f)
}
