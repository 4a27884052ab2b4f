package psychrometrics

import (
	"math"
	"psychrometric-calculator/units"
)

// AtmosphericPressure applies the barometric formula for the standard troposphere and returns
// the local pressure rounded to three decimals. Elevations at or above the ceiling where the
// temperature term reaches zero produce NaN.
func AtmosphericPressure(elevation units.Meters) units.InchesOfMercury {
	base := 1 - lapseRate*float64(elevation)/seaLevelTemp
	if base <= 0 {
		return units.InchesOfMercury(math.NaN())
	}

	exponent := gravity / (gasConstantAir * lapseRate)
	pressure := units.Pascals(seaLevelPressure * math.Pow(base, exponent))

	return units.InchesOfMercury(units.Round(float64(pressure.InchesOfMercury()), pressurePlaces))
}
