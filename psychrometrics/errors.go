package psychrometrics

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parameter identifies a validated input
type Parameter string

const (
	ParameterDryBulb          Parameter = "dry-bulb temperature"
	ParameterRelativeHumidity Parameter = "relative humidity"
)

// OutOfRangeError reports an input outside of its inclusive valid range
type OutOfRangeError struct {
	Parameter Parameter
	Value     float64
	Min       float64
	Max       float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %v is out of range [%v, %v]", e.Parameter, e.Value, e.Min, e.Max)
}

// ErrSaturatedAtmosphere is returned when the atmospheric pressure does not exceed the
// saturation vapor pressure, which leaves the humidity ratio undefined
var ErrSaturatedAtmosphere = errors.New("atmospheric pressure does not exceed saturation vapor pressure")

// IsOutOfRange reports whether err was caused by an out-of-range input and, if so, which one
func IsOutOfRange(err error) (Parameter, bool) {
	var rangeErr *OutOfRangeError
	if errors.As(err, &rangeErr) {
		return rangeErr.Parameter, true
	}
	return "", false
}
