package psychrometrics

import (
	"psychrometric-calculator/units"

	"golang.org/x/exp/constraints"
)

// Number is any whole or fractional numeric input accepted by the calculator
type Number interface {
	constraints.Integer | constraints.Float
}

// Conditions describes the air being measured
type Conditions struct {
	DryBulb          units.Fahrenheit
	RelativeHumidity units.RelativeHumidity
	Elevation        units.Meters
}

// CalculateGpp returns the moisture content of air in grains per pound, rounded to two decimals.
//
// Elevation is accepted but the humidity ratio is taken at StandardAtmosphere, so elevation does
// not change the result. Use CalculateGppAtElevation for the corrected value.
func CalculateGpp[N Number](dryBulb, relativeHumidity, elevation N) (units.GrainsPerPound, error) {
	return newConditions(dryBulb, relativeHumidity, elevation).Gpp()
}

// CalculateGppAtElevation is CalculateGpp with the humidity ratio taken at the local atmospheric
// pressure for the given elevation.
func CalculateGppAtElevation[N Number](dryBulb, relativeHumidity, elevation N) (units.GrainsPerPound, error) {
	return newConditions(dryBulb, relativeHumidity, elevation).GppAtElevation()
}

func newConditions[N Number](dryBulb, relativeHumidity, elevation N) Conditions {
	return Conditions{
		DryBulb:          units.Fahrenheit(dryBulb),
		RelativeHumidity: units.RelativeHumidity(relativeHumidity),
		Elevation:        units.Meters(elevation),
	}
}

// AtmosphericPressure returns the local pressure at the conditions' elevation
func (c Conditions) AtmosphericPressure() units.InchesOfMercury {
	return AtmosphericPressure(c.Elevation)
}

// Gpp matches CalculateGpp
func (c Conditions) Gpp() (units.GrainsPerPound, error) {
	err := Validate(c.DryBulb, c.RelativeHumidity)
	if err != nil {
		return 0, err
	}

	return c.gppAt(StandardAtmosphere)
}

// GppAtElevation matches CalculateGppAtElevation
func (c Conditions) GppAtElevation() (units.GrainsPerPound, error) {
	err := Validate(c.DryBulb, c.RelativeHumidity)
	if err != nil {
		return 0, err
	}

	return c.gppAt(c.AtmosphericPressure())
}

func (c Conditions) gppAt(atmosphere units.InchesOfMercury) (units.GrainsPerPound, error) {
	ratio, err := HumidityRatio(c.DryBulb, c.RelativeHumidity, atmosphere)
	if err != nil {
		return 0, err
	}

	gpp := ratio.GrainsPerPound()
	return units.GrainsPerPound(units.Round(float64(gpp), gppPlaces)), nil
}
