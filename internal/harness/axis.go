package harness

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseAxis expands values and start:stop:step ranges (stop inclusive). An empty axis falls back
// to the single value given.
func parseAxis(values []string, fallback float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{fallback}, nil
	}

	axis := []float64{}
	for _, value := range values {
		parts := strings.Split(strings.TrimSpace(value), ":")
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse %q", value)
			}
			axis = append(axis, v)
		case 3:
			bounds := make([]float64, 3)
			for i, part := range parts {
				v, err := strconv.ParseFloat(part, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "failed to parse range %q", value)
				}
				bounds[i] = v
			}

			start, stop, step := bounds[0], bounds[1], bounds[2]
			if step <= 0 || stop < start {
				return nil, errors.Errorf("failed to expand range %q: step must be positive and stop must not precede start", value)
			}

			// stop is included when it lands within 1e-9 of a step
			steps := int(math.Floor((stop-start)/step + 1e-9))
			for i := 0; i <= steps; i++ {
				axis = append(axis, start+float64(i)*step)
			}
		default:
			return nil, errors.Errorf("failed to parse %q: expected a value or start:stop:step", value)
		}
	}

	return axis, nil
}
