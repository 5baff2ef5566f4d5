package effects

import "errors"

var (
	// ErrInvalidYield is returned when a yield is zero or negative. Several
	// models take log10 or fractional powers of the yield, which are
	// undefined at or below zero.
	ErrInvalidYield = errors.New("yield must be positive")

	// ErrInvalidDistance is returned by the point-evaluation functions when
	// the distance is zero or negative (inverse-square singularity).
	ErrInvalidDistance = errors.New("distance must be positive")
)

// Detonation holds the input parameters for a single calculation run.
// Values are fixed at construction; the models never mutate them.
type Detonation struct {
	// YieldMegatons is the weapon yield in megatons TNT equivalent.
	YieldMegatons float64 `json:"yield_mt"`
	// BurstHeight is the height of burst above ground in meters.
	BurstHeight float64 `json:"burst_height_m"`
	// Airburst is true for detonations above ground level. Derived from
	// BurstHeight by NewDetonation.
	Airburst bool `json:"airburst"`
	// WindSpeed is the surface wind speed in km/h, used by the fallout model.
	WindSpeed float64 `json:"wind_speed_kmh"`
}

// NewDetonation validates and constructs a Detonation. Negative height and
// wind speed are clamped to zero; a non-positive yield is rejected.
func NewDetonation(yieldMegatons, burstHeight, windSpeed float64) (Detonation, error) {
	if yieldMegatons <= 0 {
		return Detonation{}, ErrInvalidYield
	}
	if burstHeight < 0 {
		burstHeight = 0
	}
	if windSpeed < 0 {
		windSpeed = 0
	}
	return Detonation{
		YieldMegatons: yieldMegatons,
		BurstHeight:   burstHeight,
		Airburst:      burstHeight > 0,
		WindSpeed:     windSpeed,
	}, nil
}

// Population describes a target's radial population distribution.
type Population struct {
	// CoreDensity is the population density at the urban core in people/km².
	CoreDensity float64 `json:"core_density"`
	// SuburbanDensity is the density at the core boundary in people/km².
	SuburbanDensity float64 `json:"suburban_density"`
	// CoreRadius is the urban core radius in km.
	CoreRadius float64 `json:"core_radius_km"`
}
