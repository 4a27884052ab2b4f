package harness

import (
	"psychrometric-calculator/psychrometrics"
	"psychrometric-calculator/sweep"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry = prometheus.NewRegistry()

	gpp_calculations = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gpp_calculations",
			Help: "Number of conditions evaluated",
		},
	)
	gpp_calculation_errors = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gpp_calculation_errors",
			Help: "Number of conditions that could not be evaluated",
		},
		[]string{"reason"},
	)
	gpp_grains_per_pound = promauto.With(registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gpp_grains_per_pound",
			Help: "Grains of water vapor per pound of dry air",
		},
		[]string{"dry_bulb", "relative_humidity", "elevation"},
	)
	gpp_atmospheric_pressure = promauto.With(registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gpp_atmospheric_pressure_inhg",
			Help: "Atmospheric pressure in inches of mercury derived from elevation",
		},
		[]string{"elevation"},
	)
)

func setPointMetrics(point *sweep.Point) {
	gpp_calculations.Inc()

	c := point.Conditions
	elevation := formatLabel(float64(c.Elevation))
	gpp_atmospheric_pressure.WithLabelValues(elevation).Set(float64(c.AtmosphericPressure()))

	if point.Err != nil {
		gpp_calculation_errors.WithLabelValues(errorReason(point.Err)).Inc()
		return
	}

	gpp_grains_per_pound.WithLabelValues(
		formatLabel(float64(c.DryBulb)),
		formatLabel(float64(c.RelativeHumidity)),
		elevation,
	).Set(float64(point.Gpp))
}

func errorReason(err error) string {
	if parameter, ok := psychrometrics.IsOutOfRange(err); ok {
		switch parameter {
		case psychrometrics.ParameterDryBulb:
			return "dry_bulb_out_of_range"
		case psychrometrics.ParameterRelativeHumidity:
			return "relative_humidity_out_of_range"
		}
	}
	if errors.Cause(err) == psychrometrics.ErrSaturatedAtmosphere {
		return "saturated_atmosphere"
	}
	return "unknown"
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
