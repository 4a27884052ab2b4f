package psychrometrics

import "psychrometric-calculator/units"

// Validate checks relative humidity and then dry-bulb temperature against their inclusive
// ranges. Elevation is not validated.
func Validate(dryBulb units.Fahrenheit, relativeHumidity units.RelativeHumidity) error {
	// written as negated range checks so NaN is rejected
	if !(relativeHumidity >= MinRelativeHumidity && relativeHumidity <= MaxRelativeHumidity) {
		return &OutOfRangeError{
			Parameter: ParameterRelativeHumidity,
			Value:     float64(relativeHumidity),
			Min:       float64(MinRelativeHumidity),
			Max:       float64(MaxRelativeHumidity),
		}
	}

	if !(dryBulb >= MinDryBulb && dryBulb <= MaxDryBulb) {
		return &OutOfRangeError{
			Parameter: ParameterDryBulb,
			Value:     float64(dryBulb),
			Min:       float64(MinDryBulb),
			Max:       float64(MaxDryBulb),
		}
	}

	return nil
}
