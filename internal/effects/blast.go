package effects

import "math"

// Overpressure computes the peak blast overpressure in Pa at a ground
// distance in meters, using Sachs scaling and a modified Brode equation.
// Airbursts get a Mach-stem enhancement that decays with scaled height, plus
// an extra 25% inside the triple-point region where the incident and
// reflected shocks have merged.
//
// The tier radii in Compute come from cube-root scaling of reference radii,
// not from inverting this curve; Overpressure is exposed for diagnostics and
// validation against published blast tables.
func Overpressure(distance float64, det Detonation) (float64, error) {
	if distance <= 0 {
		return 0, ErrInvalidDistance
	}
	if det.YieldMegatons <= 0 {
		return 0, ErrInvalidYield
	}

	energy := det.YieldMegatons * joulesPerMegaton
	scaledDistance := distance / math.Cbrt(energy/AtmosphericPressure)

	machStem := 1.0
	if det.BurstHeight > 0 {
		machHeight := det.BurstHeight / math.Cbrt(det.YieldMegatons)
		machStem = 1.0 + 0.1*math.Exp(-machHeight/100.0)

		// Triple-point height grows with yield^0.4 (empirical fit).
		triplePoint := 83.0 * math.Pow(det.YieldMegatons, 0.4)
		if det.BurstHeight < triplePoint {
			machStem *= 1.25
		}
	}

	s := scaledDistance
	brode := 1.0 + 0.076/s + 0.255/(s*s) + 0.536/(s*s*s)
	return AtmosphericPressure * brode * machStem, nil
}

// blastLevels returns the blast damage tiers for a yield, before height
// attenuation. Reference radii correspond to 20/10/5 psi at 1 MT.
func blastLevels(yieldMegatons float64) EffectLevels {
	f := math.Pow(yieldMegatons, blastScalingExp)
	return newLevels(blastSevereRef*f, blastModerateRef*f, blastLightRef*f)
}
