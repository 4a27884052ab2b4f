package psychrometrics

import (
	"math"
	"psychrometric-calculator/units"

	"github.com/pkg/errors"
)

// HumidityRatio returns the mass ratio of water vapor to dry air at the given conditions.
// Pass StandardAtmosphere for the sea-level default.
func HumidityRatio(dryBulb units.Fahrenheit, relativeHumidity units.RelativeHumidity, atmosphere units.InchesOfMercury) (units.HumidityRatio, error) {
	wsat := SaturationVaporPressure(dryBulb)

	atm := float64(atmosphere)
	if math.IsNaN(atm) || math.IsInf(atm, 0) || atmosphere <= wsat {
		return 0, errors.Wrapf(ErrSaturatedAtmosphere, "%v inHg at %v°F (saturation %v inHg)", atm, float64(dryBulb), float64(wsat))
	}

	wtemp := molecularWeightRatio * (float64(wsat) / (atm - float64(wsat)))
	return units.HumidityRatio(float64(relativeHumidity) * wtemp / 100), nil
}
