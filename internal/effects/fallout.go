package effects

import "math"

// falloutPattern computes the fallout deposition footprint for a detonation.
//
// The branch between ground-burst and air-burst behavior keys on
// BurstHeight == 0, not the Airburst flag, for both the cloud-height formula
// and the final deposition scale. The two agree for any Detonation built by
// NewDetonation; the flag itself only enters the particle fraction and the
// lobe-area reduction, matching the reference model.
func falloutPattern(det Detonation) FalloutPattern {
	yield := det.YieldMegatons

	// Empirical cloud-stabilization altitude; air-burst clouds stabilize
	// slightly lower for the same yield.
	var stabilizedHeight float64
	if det.BurstHeight == 0 {
		stabilizedHeight = 212.0 * math.Pow(yield, 0.375)
	} else {
		stabilizedHeight = 188.0 * math.Pow(yield, 0.375)
	}

	// Ground bursts loft all particulate activity; airbursts deposit less
	// as the burst height grows relative to the stabilized cloud.
	particleFraction := 1.0
	if det.Airburst {
		particleFraction = 0.3 * math.Exp(-det.BurstHeight/(0.7*stabilizedHeight))
	}

	activityFraction := 0.6 + 0.2*math.Log10(yield)
	effectiveYield := yield * particleFraction * activityFraction

	baseRadius := 1000.0 * math.Pow(effectiveYield, 0.4) // meters

	var p FalloutPattern
	if det.WindSpeed < 0.1 {
		// Calm air: circular pattern around ground zero.
		p.MaxDownwindDistance = baseRadius / 1000.0
		p.MaxWidth = baseRadius / 1000.0
		p.FalloutAngle = 360.0
		p.DangerousZoneArea = math.Pi * p.MaxDownwindDistance * p.MaxDownwindDistance
	} else {
		// Wind-driven transport dominates once it exceeds the cloud-spread
		// minimum.
		p.MaxDownwindDistance = math.Max(
			baseRadius/1000.0,
			det.WindSpeed*3600.0*(math.Pow(effectiveYield, 0.4)/Gravity)*
				(1.0+0.15*math.Log10(yield)),
		)

		// Turbulent lateral diffusion, scaled by cloud height.
		p.MaxWidth = p.MaxDownwindDistance *
			(0.14 + 0.02*math.Log10(yield)) *
			math.Sqrt(stabilizedHeight/1000.0)

		p.FalloutAngle = 40.0 * math.Exp(-det.BurstHeight/(2.0*stabilizedHeight)) *
			(1.0 - 0.1*math.Log10(math.Max(1.0, det.WindSpeed)))

		// Triangular-lobe approximation of the deposition area, reduced
		// ~20% for airbursts.
		airburstReduction := 1.0
		if det.Airburst {
			airburstReduction = 0.8
		}
		p.DangerousZoneArea = 0.5 * p.MaxDownwindDistance * p.MaxWidth *
			particleFraction * airburstReduction
	}

	// Elevated bursts deposit roughly 30% of the surface-burst activity.
	if det.BurstHeight != 0 {
		p.DangerousZoneArea *= 0.3
	}

	return p
}
