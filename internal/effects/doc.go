// Package effects implements closed-form models for the physical effects of
// a nuclear detonation and the resulting casualties.
//
// # Models
//
// Blast:
//
//	Sachs-scaled distance with a modified Brode overpressure polynomial,
//	Mach-stem enhancement for airbursts, and a triple-point region bonus.
//	Damage tiers at 2000/3000/4500 m reference radii (≈20/10/5 psi at 1 MT)
//	scaled by yield^(1/3).
//
// Thermal:
//
//	Inverse-square fluence of the 35% thermal yield partition, Beer-Lambert
//	attenuation (0.17/km extinction), obliquity and altitude-transmission
//	factors for airbursts. Tiers at 1200/1800/2400 m scaled by yield^0.4.
//
// Initial radiation:
//
//	Tiers at 800/1200/1600 m scaled by yield^0.19. Initial radiation is
//	yield-dominated over the modeled range, so the scaling law is the whole
//	model.
//
// Height attenuation:
//
//	Blast and radiation tiers shrink by max(0.3, 1 − h/10000) for elevated
//	bursts. Thermal is exempt because its fluence model already carries
//	height terms.
//
// Fallout:
//
//	DELFIC-style empirical fits: stabilized cloud height, particulate and
//	activity fractions, and either a circular calm-air pattern or an
//	elongated downwind lobe with turbulent lateral diffusion. Ground bursts
//	(burst height exactly 0) deposit at full scale; elevated bursts at 30%.
//
// # Casualty integration
//
// EstimateCasualties partitions the ground into concentric rings out to the
// largest light-tier radius. Each ring's midpoint decides its tier per
// effect category; categories accumulate independently, so overlap between
// categories is intentionally double-counted. Thermal and radiation
// contribute only their severe tiers. Long-term mortality among the injured
// is a fixed 10/20/30/40% at 1/5/10/20 years, isolated behind
// projectDelayedMortality until a cited model replaces it.
//
// # Units
//
// Yield in megatons TNT, burst height in meters, wind speed in km/h, damage
// radii in meters, areas in km², population densities in people/km².
//
// All functions are pure: no I/O, no shared mutable state, deterministic
// output for a given input and clock.
package effects
