package psychrometrics

import (
	"math"
	"psychrometric-calculator/units"
)

// SaturationVaporPressure returns the unrounded saturation vapor pressure for the given
// dry-bulb temperature, over water above the triple point and over ice at or below it.
func SaturationVaporPressure(dryBulb units.Fahrenheit) units.InchesOfMercury {
	ta := float64(dryBulb.Kelvin())

	var p1, p2, p3, p4 float64
	if ta > triplePointKelvin {
		z := steamPointKelvin / ta
		p1 = a1 * (z - 1)
		p2 = a2 * math.Log10(z)
		p3 = a3 * (math.Pow(10, a4*(1-1/z)) - 1)
		p4 = a5 * (math.Pow(10, a6*(z-1)) - 1)
	} else {
		z := triplePointKelvin / ta
		p1 = b1 * (z - 1)
		p2 = b2 * math.Log10(z)
		p3 = b3 * (1 - 1/z)
		// the ice branch carries a constant fourth term
		p4 = math.Log10(b4)
	}

	return StandardAtmosphere * units.InchesOfMercury(math.Pow(10, p1+p2+p3+p4))
}
