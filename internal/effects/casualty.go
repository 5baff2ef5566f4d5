package effects

import "math"

// DefaultRingCount is the number of concentric integration rings used by
// Compute. Doubling it changes totals by well under 1%; see the convergence
// test.
const DefaultRingCount = 20

// Per-ring casualty fractions by effect category and tier.
const (
	blastSevereMortality      = 0.9
	blastModerateInjuryRate   = 0.5
	blastLightInjuryRate      = 0.3
	thermalSevereMortality    = 0.7
	radiationSevereInjuryRate = 0.8
)

// Delayed-mortality fractions of the injured population per horizon. A
// fixed-fraction placeholder, not a cited epidemiological model; kept
// isolated in projectDelayedMortality so it can be replaced in one spot.
const (
	delayed1YearFraction  = 0.1
	delayed5YearFraction  = 0.2
	delayed10YearFraction = 0.3
	delayed20YearFraction = 0.4
)

// EstimateCasualties integrates the damage tiers of all three effect
// categories against the population model over rings concentric rings.
//
// Each ring's midpoint decides which tier it falls in per category, and the
// categories accumulate independently: a ring inside both the blast and
// thermal severe zones contributes casualties from each. That cross-category
// double counting is accepted model behavior.
//
// Thermal contributes only its severe tier and radiation only its severe
// tier; their moderate and light tiers never enter the sum.
func EstimateCasualties(blast, thermal, radiation EffectLevels, pop Population, rings int) CasualtyEstimate {
	var c CasualtyEstimate

	// Tier boundaries in km, recovered from the tier areas.
	blastSevere := math.Sqrt(blast.Severe.Area / math.Pi)
	blastModerate := math.Sqrt(blast.Moderate.Area / math.Pi)
	blastLight := math.Sqrt(blast.Light.Area / math.Pi)
	thermalSevere := math.Sqrt(thermal.Severe.Area / math.Pi)
	thermalLight := math.Sqrt(thermal.Light.Area / math.Pi)
	radiationSevere := math.Sqrt(radiation.Severe.Area / math.Pi)
	radiationLight := math.Sqrt(radiation.Light.Area / math.Pi)

	maxRadius := math.Max(blastLight, math.Max(thermalLight, radiationLight))

	for i := 0; i < rings; i++ {
		inner := float64(i) * maxRadius / float64(rings)
		outer := float64(i+1) * maxRadius / float64(rings)
		ringArea := math.Pi * (outer*outer - inner*inner)
		mid := (inner + outer) / 2
		exposed := ringArea * pop.DensityAt(mid)

		switch {
		case mid <= blastSevere:
			c.Deaths += exposed * blastSevereMortality
		case mid <= blastModerate:
			c.SevereInjuries += exposed * blastModerateInjuryRate
		case mid <= blastLight:
			c.LightInjuries += exposed * blastLightInjuryRate
		}

		if mid <= thermalSevere {
			c.Deaths += exposed * thermalSevereMortality
		}

		if mid <= radiationSevere {
			c.SevereInjuries += exposed * radiationSevereInjuryRate
		}
	}

	c.Delayed1Year, c.Delayed5Year, c.Delayed10Year, c.Delayed20Year =
		projectDelayedMortality(c.SevereInjuries + c.LightInjuries)

	return c
}

// projectDelayedMortality projects cumulative long-term deaths among the
// injured at the 1/5/10/20-year horizons. Monotone in the horizon by
// construction.
func projectDelayedMortality(injured float64) (y1, y5, y10, y20 float64) {
	return injured * delayed1YearFraction,
		injured * delayed5YearFraction,
		injured * delayed10YearFraction,
		injured * delayed20YearFraction
}
