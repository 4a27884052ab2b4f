package psychrometrics

import "psychrometric-calculator/units"

// Validated input bounds
const (
	MinDryBulb units.Fahrenheit = 0
	MaxDryBulb units.Fahrenheit = 120

	MinRelativeHumidity units.RelativeHumidity = 0
	MaxRelativeHumidity units.RelativeHumidity = 100
)

// StandardAtmosphere is the sea-level standard pressure used by the humidity ratio
// unless a corrected pressure is supplied
const StandardAtmosphere units.InchesOfMercury = 29.921

// Saturation vapor pressure correlation (ASHRAE 1994, Goff-Gratch form).
// The a-coefficients apply over liquid water, the b-coefficients over ice.
const (
	steamPointKelvin  = 373.16
	triplePointKelvin = 273.16

	a1 = -7.90298
	a2 = 5.02808
	a3 = -1.3816e-7
	a4 = 11.344
	a5 = 8.1328e-3
	a6 = -3.49149

	b1 = -9.09718
	b2 = -3.56654
	b3 = 0.876793
	b4 = 0.0060273
)

// Barometric formula for the standard troposphere
const (
	seaLevelPressure = 101325.0 // P0, Pa
	lapseRate        = 0.0065   // L, K/m
	seaLevelTemp     = 288.15   // T0, K
	gravity          = 9.8      // g, m/s²
	gasConstantAir   = 287.05   // R, J/(kg·K)
)

// Humidity ratio
const (
	molecularWeightRatio = 0.62198 // water vapor / dry air
)

const (
	pressurePlaces = 3
	gppPlaces      = 2
)
