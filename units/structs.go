package units

import "math"

type Fahrenheit float64
type Celsius float64
type Kelvin float64
type RelativeHumidity float64
type Meters float64
type Pascals float64
type InchesOfMercury float64

// HumidityRatio is the mass of water vapor per unit mass of dry air
type HumidityRatio float64

// GrainsPerPound is the mass of water vapor in grains (1/7000 lb) per pound of dry air
type GrainsPerPound float64

const (
	rankineOffset         = 459.688
	rankinePerKelvin      = 1.8
	pascalsPerInchMercury = 3386.389
	grainsPerPound        = 7000
)

// Kelvin converts through the Rankine scale used by the ASHRAE saturation correlation
func (t Fahrenheit) Kelvin() Kelvin {
	return Kelvin((float64(t) + rankineOffset) / rankinePerKelvin)
}

func (t Celsius) Fahrenheit() Fahrenheit {
	return Fahrenheit(float64(t)*9/5 + 32)
}

func (p Pascals) InchesOfMercury() InchesOfMercury {
	return InchesOfMercury(float64(p) / pascalsPerInchMercury)
}

func (w HumidityRatio) GrainsPerPound() GrainsPerPound {
	return GrainsPerPound(float64(w) * grainsPerPound)
}

// Round rounds half away from zero to the given number of decimal places
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
