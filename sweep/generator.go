package sweep

import (
	"context"
	"psychrometric-calculator/psychrometrics"
	"psychrometric-calculator/units"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Grid is the set of conditions to evaluate; every dry-bulb temperature is paired with every
// relative humidity at a single elevation
type Grid struct {
	DryBulbs            []float64
	RelativeHumidities  []float64
	Elevation           float64
	CorrectForElevation bool
}

// Point is the result of evaluating one set of conditions
type Point struct {
	Conditions psychrometrics.Conditions
	Gpp        units.GrainsPerPound
	// Set when the conditions could not be evaluated, for example when out of range
	Err error
}

type Generator struct {
	grid   Grid
	points chan *Point
}

// Normalize returns a copy of the grid with each axis sorted and de-duplicated
func (g Grid) Normalize() Grid {
	normalize := func(values []float64) []float64 {
		sorted := slices.Clone(values)
		slices.Sort(sorted)
		return slices.Compact(sorted)
	}

	return Grid{
		DryBulbs:            normalize(g.DryBulbs),
		RelativeHumidities:  normalize(g.RelativeHumidities),
		Elevation:           g.Elevation,
		CorrectForElevation: g.CorrectForElevation,
	}
}

// Size is the number of points the grid produces
func (g Grid) Size() int {
	return len(g.DryBulbs) * len(g.RelativeHumidities)
}

func NewGenerator(grid Grid) *Generator {
	points := make(chan *Point)
	return &Generator{
		grid.Normalize(),
		points,
	}
}

func (g *Generator) Grid() Grid {
	return g.grid
}

func (g *Generator) Points() <-chan *Point {
	return g.points
}

// Start evaluates one dry-bulb row per goroutine. Points arrive in no particular order and the
// channel is closed once every row has been sent or ctx is done.
func (g *Generator) Start(ctx context.Context) func() error {
	return func() error {
		defer close(g.points)

		if g.grid.Size() == 0 {
			return errors.New("failed to start sweep: grid has no points")
		}

		group, innerCtx := errgroup.WithContext(ctx)
		for _, dryBulb := range g.grid.DryBulbs {
			dryBulb := dryBulb
			group.Go(func() error {
				for _, relativeHumidity := range g.grid.RelativeHumidities {
					point := Evaluate(psychrometrics.Conditions{
						DryBulb:          units.Fahrenheit(dryBulb),
						RelativeHumidity: units.RelativeHumidity(relativeHumidity),
						Elevation:        units.Meters(g.grid.Elevation),
					}, g.grid.CorrectForElevation)

					select {
					case g.points <- point:
					case <-innerCtx.Done():
						return nil
					}
				}
				return nil
			})
		}

		return group.Wait()
	}
}

// Evaluate calculates a single point, taking the humidity ratio at the elevation-derived pressure
// when correctForElevation is set
func Evaluate(conditions psychrometrics.Conditions, correctForElevation bool) *Point {
	var gpp units.GrainsPerPound
	var err error
	if correctForElevation {
		gpp, err = conditions.GppAtElevation()
	} else {
		gpp, err = conditions.Gpp()
	}

	return &Point{
		Conditions: conditions,
		Gpp:        gpp,
		Err:        err,
	}
}
