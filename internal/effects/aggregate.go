package effects

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Compute runs every model against one parameter set and assembles the
// complete result: damage tiers for all three effect categories (blast and
// radiation height-attenuated, thermal not), the fallout pattern, and the
// ring-integrated casualty estimate.
//
// Compute is a pure function of its inputs plus the package clock. It never
// mutates its arguments and shares no state across calls.
func Compute(det Detonation, pop Population) (Result, error) {
	return ComputeWithRings(det, pop, DefaultRingCount)
}

// ComputeWithRings is Compute with an explicit casualty-integration ring
// count, for callers that configure the integration resolution.
func ComputeWithRings(det Detonation, pop Population, rings int) (Result, error) {
	if det.YieldMegatons <= 0 {
		return Result{}, ErrInvalidYield
	}
	if rings <= 0 {
		rings = DefaultRingCount
	}

	blast := blastLevels(det.YieldMegatons)
	thermal := thermalLevels(det.YieldMegatons)
	radiation := radiationLevels(det.YieldMegatons)

	if det.BurstHeight > 0 {
		f := heightFactor(det.BurstHeight)
		blast = blast.scale(f)
		radiation = radiation.scale(f)
	}

	return Result{
		ID:         resultID(det),
		Detonation: det,
		Population: pop,
		Thermal:    thermal,
		Blast:      blast,
		Radiation:  radiation,
		Fallout:    falloutPattern(det),
		Casualties: EstimateCasualties(blast, thermal, radiation, pop, rings),
		ComputedAt: clock.Now(),
	}, nil
}

// resultID produces a deterministic ID from the input parameters, so the
// same scenario always maps to the same ID regardless of when or where it
// was computed.
func resultID(det Detonation) string {
	input := fmt.Sprintf("%g|%g|%t|%g",
		det.YieldMegatons, det.BurstHeight, det.Airburst, det.WindSpeed)
	hash := sha256.Sum256([]byte(input))
	return "det-" + hex.EncodeToString(hash[:8])
}
