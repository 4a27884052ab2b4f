package harness

import (
	"context"
	"fmt"
	"io"
	"psychrometric-calculator/psychrometrics"
	"psychrometric-calculator/sweep"
	"psychrometric-calculator/units"
	"sort"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/syncromatics/go-kit/v2/log"
	"golang.org/x/sync/errgroup"
)

// Settings defines the configured settings for the harness
type Settings struct {
	DryBulb                 float64  `mapstructure:"dry-bulb"`
	RelativeHumidity        float64  `mapstructure:"relative-humidity"`
	Elevation               float64  `mapstructure:"elevation"`
	Celsius                 bool     `mapstructure:"celsius"`
	CorrectForElevation     bool     `mapstructure:"correct-for-elevation"`
	SweepDryBulbs           []string `mapstructure:"sweep-dry-bulbs"`
	SweepRelativeHumidities []string `mapstructure:"sweep-relative-humidities"`
	BatchFile               string   `mapstructure:"batch"`
	TextfilePath            string   `mapstructure:"textfile"`
}

const (
	DefaultDryBulb          float64 = 77
	DefaultRelativeHumidity float64 = 70
	DefaultElevation        float64 = 0
)

func ConfigureFlags(flags *pflag.FlagSet) {
	flags.Float64("dry-bulb", DefaultDryBulb, "Dry-bulb temperature in degrees Fahrenheit (Celsius with --celsius)")
	flags.Float64("relative-humidity", DefaultRelativeHumidity, "Relative humidity in percent")
	flags.Float64("elevation", DefaultElevation, "Elevation in meters above sea level")
	flags.Bool("celsius", false, "Interpret every dry-bulb temperature as degrees Celsius")
	flags.Bool("correct-for-elevation", false, "Take the humidity ratio at the elevation-derived atmospheric pressure instead of the sea-level standard")
	flags.StringSlice("sweep-dry-bulbs", nil, "Dry-bulb temperatures to sweep, as values or start:stop:step ranges")
	flags.StringSlice("sweep-relative-humidities", nil, "Relative humidities to sweep, as values or start:stop:step ranges")
	flags.String("batch", "", "Path to a TOML file of [[condition]] tables to calculate")
	flags.String("textfile", "", "Path to write Prometheus metrics for the node_exporter textfile collector")
}

// Execute calculates the configured conditions and writes a table of results to out
func Execute(ctx context.Context, settings *Settings, out io.Writer) error {
	var points []*sweep.Point
	var err error
	switch {
	case settings.BatchFile != "":
		points, err = runBatch(settings)
	case len(settings.SweepDryBulbs) > 0 || len(settings.SweepRelativeHumidities) > 0:
		points, err = runSweep(ctx, settings)
	default:
		points = []*sweep.Point{
			sweep.Evaluate(psychrometrics.Conditions{
				DryBulb:          dryBulb(settings, settings.DryBulb),
				RelativeHumidity: units.RelativeHumidity(settings.RelativeHumidity),
				Elevation:        units.Meters(settings.Elevation),
			}, settings.CorrectForElevation),
		}
	}
	if err != nil {
		return err
	}

	for _, point := range points {
		setPointMetrics(point)
		if point.Err != nil {
			log.Warn("failed to calculate grains per pound",
				"conditions", point.Conditions,
				"err", point.Err)
		}
	}

	err = writeTable(out, points)
	if err != nil {
		return errors.Wrap(err, "failed to write results")
	}

	if settings.TextfilePath != "" {
		log.Info("writing metrics textfile",
			"path", settings.TextfilePath)
		err = prometheus.WriteToTextfile(settings.TextfilePath, registry)
		if err != nil {
			return errors.Wrapf(err, "failed to write metrics to %s", settings.TextfilePath)
		}
	}

	return nil
}

func dryBulb(settings *Settings, value float64) units.Fahrenheit {
	if settings.Celsius {
		return units.Celsius(value).Fahrenheit()
	}
	return units.Fahrenheit(value)
}

func runSweep(ctx context.Context, settings *Settings) ([]*sweep.Point, error) {
	dryBulbs, err := parseAxis(settings.SweepDryBulbs, settings.DryBulb)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse dry-bulb sweep")
	}
	for i, value := range dryBulbs {
		dryBulbs[i] = float64(dryBulb(settings, value))
	}

	relativeHumidities, err := parseAxis(settings.SweepRelativeHumidities, settings.RelativeHumidity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse relative humidity sweep")
	}

	generator := sweep.NewGenerator(sweep.Grid{
		DryBulbs:            dryBulbs,
		RelativeHumidities:  relativeHumidities,
		Elevation:           settings.Elevation,
		CorrectForElevation: settings.CorrectForElevation,
	})
	log.Info("starting sweep",
		"points", generator.Grid().Size())

	points := make([]*sweep.Point, 0, generator.Grid().Size())
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(generator.Start(groupCtx))
	group.Go(func() error {
		for {
			select {
			case point, ok := <-generator.Points():
				if !ok {
					log.Debug("sweep points channel closed")
					return nil
				}

				points = append(points, point)
			case <-groupCtx.Done():
				return nil
			}
		}
	})

	err = group.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete sweep")
	}
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "sweep was interrupted")
	}

	sort.Slice(points, func(i, j int) bool {
		a, b := points[i].Conditions, points[j].Conditions
		if a.DryBulb != b.DryBulb {
			return a.DryBulb < b.DryBulb
		}
		return a.RelativeHumidity < b.RelativeHumidity
	})
	return points, nil
}

func writeTable(out io.Writer, points []*sweep.Point) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "DRY BULB (°F)\tRH (%)\tELEVATION (m)\tPRESSURE (inHg)\tGPP\t")
	for _, point := range points {
		c := point.Conditions
		var result string
		if point.Err != nil {
			result = "error"
		} else {
			result = fmt.Sprintf("%.2f", float64(point.Gpp))
		}
		fmt.Fprintf(w, "%.2f\t%.2f\t%.0f\t%.3f\t%s\t\n",
			float64(c.DryBulb),
			float64(c.RelativeHumidity),
			float64(c.Elevation),
			float64(c.AtmosphericPressure()),
			result)
	}
	return w.Flush()
}
