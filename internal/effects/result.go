package effects

import (
	"math"
	"time"
)

// EffectBand is one severity tier of an effect: the damage radius and the
// circular area it encloses.
type EffectBand struct {
	Radius float64 `json:"radius_m"`
	Area   float64 `json:"area_km2"`
}

// EffectLevels groups the three severity tiers of one effect category.
// Severe.Radius <= Moderate.Radius <= Light.Radius always holds.
type EffectLevels struct {
	Severe   EffectBand `json:"severe"`
	Moderate EffectBand `json:"moderate"`
	Light    EffectBand `json:"light"`
}

// FalloutPattern describes the ground deposition footprint.
type FalloutPattern struct {
	// MaxDownwindDistance is how far fallout travels downwind in km.
	MaxDownwindDistance float64 `json:"max_downwind_km"`
	// MaxWidth is the widest crosswind extent of the pattern in km.
	MaxWidth float64 `json:"max_width_km"`
	// DangerousZoneArea is the dangerous deposition area in km².
	DangerousZoneArea float64 `json:"dangerous_zone_km2"`
	// FalloutAngle is the angular spread in degrees; 360 means a circular
	// pattern under calm wind.
	FalloutAngle float64 `json:"fallout_angle_deg"`
}

// OptimalHeights holds yield-scaled advisory burst heights in meters.
// They only suggest heights to the selection layer; nothing in the engine
// ever auto-selects one.
type OptimalHeights struct {
	Thermal  float64 `json:"thermal_m"`
	Blast    float64 `json:"blast_m"`
	Combined float64 `json:"combined_m"`
}

// CasualtyEstimate holds prompt casualties and the long-term mortality
// projections for the exposed population.
type CasualtyEstimate struct {
	Deaths         float64 `json:"deaths"`
	SevereInjuries float64 `json:"severe_injuries"`
	LightInjuries  float64 `json:"light_injuries"`

	// Delayed mortality among the injured, cumulative per horizon.
	Delayed1Year  float64 `json:"delayed_deaths_1y"`
	Delayed5Year  float64 `json:"delayed_deaths_5y"`
	Delayed10Year float64 `json:"delayed_deaths_10y"`
	Delayed20Year float64 `json:"delayed_deaths_20y"`
}

// Total returns deaths plus all prompt injuries.
func (c CasualtyEstimate) Total() float64 {
	return c.Deaths + c.SevereInjuries + c.LightInjuries
}

// Result is the complete output of one calculation run. It echoes the input
// parameters for display layers and is immutable after construction.
type Result struct {
	ID         string     `json:"id"`
	Detonation Detonation `json:"detonation"`
	Population Population `json:"population"`

	Thermal   EffectLevels `json:"thermal"`
	Blast     EffectLevels `json:"blast"`
	Radiation EffectLevels `json:"radiation"`

	Fallout    FalloutPattern   `json:"fallout"`
	Casualties CasualtyEstimate `json:"casualties"`

	ComputedAt time.Time `json:"computed_at"`
}

// bandArea converts a damage radius in meters to the enclosed area in km².
func bandArea(radius float64) float64 {
	return math.Pi * math.Pow(radius/1000.0, 2)
}

// newBand builds an EffectBand from a radius in meters.
func newBand(radius float64) EffectBand {
	return EffectBand{Radius: radius, Area: bandArea(radius)}
}

// newLevels builds an EffectLevels from three tier radii in meters.
func newLevels(severe, moderate, light float64) EffectLevels {
	return EffectLevels{
		Severe:   newBand(severe),
		Moderate: newBand(moderate),
		Light:    newBand(light),
	}
}

// scale multiplies all three tier radii by f and recomputes the areas.
func (e EffectLevels) scale(f float64) EffectLevels {
	return newLevels(e.Severe.Radius*f, e.Moderate.Radius*f, e.Light.Radius*f)
}
