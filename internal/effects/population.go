package effects

import "math"

// DensityAt returns the population density in people/km² at a radial
// distance in km from the target center. Inside the core the density decays
// exponentially from CoreDensity; outside, a faster-decaying suburban
// profile starts from SuburbanDensity at the core boundary.
//
// The profile is discontinuous at CoreRadius unless CoreDensity equals
// SuburbanDensity. That is deliberate: the two densities are independent
// survey values, not endpoints of one curve.
func (p Population) DensityAt(distance float64) float64 {
	if distance <= p.CoreRadius {
		return p.CoreDensity * math.Exp(-distance/p.CoreRadius)
	}
	return p.SuburbanDensity * math.Exp(-(distance-p.CoreRadius)/(0.5*p.CoreRadius))
}
