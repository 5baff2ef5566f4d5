package effects

// Physical constants used across the effect models.
const (
	// AirDensity is standard sea-level air density in kg/m³.
	AirDensity = 1.225
	// SpeedOfSound is the speed of sound at sea level in m/s.
	SpeedOfSound = 340.29
	// Gravity is standard gravitational acceleration in m/s².
	Gravity = 9.80665
	// AtmosphericPressure is sea-level atmospheric pressure in Pa.
	AtmosphericPressure = 101325.0
	// StefanBoltzmann is the Stefan-Boltzmann constant in W/(m²·K⁴).
	StefanBoltzmann = 5.670374419e-8
	// PlanckConstant is the Planck constant in J·s.
	PlanckConstant = 6.62607015e-34
	// BoltzmannConstant is the Boltzmann constant in J/K.
	BoltzmannConstant = 1.380649e-23
	// LightSpeed is the speed of light in vacuum in m/s.
	LightSpeed = 299792458.0
)

// Model calibration constants.
const (
	// joulesPerMegaton converts weapon yield from megatons TNT to joules.
	joulesPerMegaton = 4.184e15

	// thermalFraction is the fraction of total yield released as thermal
	// radiation.
	thermalFraction = 0.35

	// thermalCalibration scales the inverse-square fluence to ground-truth
	// damage thresholds.
	thermalCalibration = 10000.0

	// extinctionPerKm is the Beer-Lambert atmospheric extinction coefficient.
	extinctionPerKm = 0.17

	// atmosphereScaleHeight is the exponential scale height of the
	// atmosphere in meters, used for altitude transmission.
	atmosphereScaleHeight = 7400.0
)

// Reference damage radii in meters at 1 MT, scaled by the per-effect yield
// exponents below. Tier ordering severe < moderate < light holds by
// construction.
const (
	blastSevereRef   = 2000.0 // 20 psi
	blastModerateRef = 3000.0 // 10 psi
	blastLightRef    = 4500.0 // 5 psi

	thermalSevereRef   = 1200.0 // third-degree burns
	thermalModerateRef = 1800.0 // second-degree burns
	thermalLightRef    = 2400.0 // first-degree burns

	radiationSevereRef   = 800.0 // lethal dose
	radiationModerateRef = 1200.0
	radiationLightRef    = 1600.0
)

// Yield-scaling exponents for the tier radii.
const (
	blastScalingExp     = 1.0 / 3.0 // cube-root (Sachs) scaling
	thermalScalingExp   = 0.4
	radiationScalingExp = 0.19
)
