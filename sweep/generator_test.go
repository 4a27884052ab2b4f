package sweep

import (
	"context"
	"psychrometric-calculator/psychrometrics"
	"psychrometric-calculator/units"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, generator *Generator) []*Point {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- generator.Start(context.Background())()
	}()

	points := []*Point{}
	for point := range generator.Points() {
		points = append(points, point)
	}
	require.NoError(t, <-done)

	sort.Slice(points, func(i, j int) bool {
		a, b := points[i].Conditions, points[j].Conditions
		if a.DryBulb != b.DryBulb {
			return a.DryBulb < b.DryBulb
		}
		return a.RelativeHumidity < b.RelativeHumidity
	})
	return points
}

func TestGridNormalize(t *testing.T) {
	grid := Grid{
		DryBulbs:           []float64{72, 32, 72, 52},
		RelativeHumidities: []float64{70, 10, 10},
		Elevation:          1609,
	}

	normalized := grid.Normalize()
	assert.Equal(t, []float64{32, 52, 72}, normalized.DryBulbs)
	assert.Equal(t, []float64{10, 70}, normalized.RelativeHumidities)
	assert.Equal(t, 1609.0, normalized.Elevation)
	assert.Equal(t, 6, normalized.Size())

	// the input grid is left untouched
	assert.Equal(t, []float64{72, 32, 72, 52}, grid.DryBulbs)
}

func TestGenerator(t *testing.T) {
	generator := NewGenerator(Grid{
		DryBulbs:           []float64{77, 32, 42},
		RelativeHumidities: []float64{70, 10},
	})

	points := collect(t, generator)
	require.Len(t, points, 6)

	expected := map[[2]float64]units.GrainsPerPound{
		{32, 10}: 2.64,
		{42, 10}: 3.93,
		{77, 70}: 98.34,
	}
	for _, point := range points {
		assert.NoError(t, point.Err)
		key := [2]float64{float64(point.Conditions.DryBulb), float64(point.Conditions.RelativeHumidity)}
		if gpp, ok := expected[key]; ok {
			assert.Equal(t, gpp, point.Gpp, "%v", key)
		}
	}
}

func TestGenerator_MatchesDirectCalculation(t *testing.T) {
	dryBulbs := []float64{}
	for dryBulb := 0.0; dryBulb <= 120; dryBulb += 4 {
		dryBulbs = append(dryBulbs, dryBulb)
	}

	generator := NewGenerator(Grid{
		DryBulbs:           dryBulbs,
		RelativeHumidities: []float64{0, 25, 50, 75, 100},
	})

	points := collect(t, generator)
	require.Len(t, points, generator.Grid().Size())

	for _, point := range points {
		require.NoError(t, point.Err)
		gpp, err := psychrometrics.CalculateGpp(float64(point.Conditions.DryBulb), float64(point.Conditions.RelativeHumidity), 0)
		require.NoError(t, err)
		assert.Equal(t, gpp, point.Gpp)
	}
}

func TestGenerator_CorrectForElevation(t *testing.T) {
	generator := NewGenerator(Grid{
		DryBulbs:            []float64{77},
		RelativeHumidities:  []float64{70},
		Elevation:           1609,
		CorrectForElevation: true,
	})

	points := collect(t, generator)
	require.Len(t, points, 1)
	assert.Equal(t, units.GrainsPerPound(120.24), points[0].Gpp)
}

func TestGenerator_OutOfRangePointsCarryError(t *testing.T) {
	generator := NewGenerator(Grid{
		DryBulbs:           []float64{-5, 77},
		RelativeHumidities: []float64{70, 150},
	})

	points := collect(t, generator)
	require.Len(t, points, 4)

	failures := map[psychrometrics.Parameter]int{}
	for _, point := range points {
		if point.Err == nil {
			continue
		}
		parameter, ok := psychrometrics.IsOutOfRange(point.Err)
		require.True(t, ok)
		failures[parameter]++
	}

	assert.Equal(t, map[psychrometrics.Parameter]int{
		psychrometrics.ParameterRelativeHumidity: 2,
		psychrometrics.ParameterDryBulb:          1,
	}, failures)
}

func TestGenerator_EmptyGrid(t *testing.T) {
	generator := NewGenerator(Grid{DryBulbs: []float64{77}})

	err := generator.Start(context.Background())()
	assert.Error(t, err)

	_, ok := <-generator.Points()
	assert.False(t, ok)
}

func TestGenerator_Cancelled(t *testing.T) {
	generator := NewGenerator(Grid{
		DryBulbs:           []float64{10, 20, 30, 40},
		RelativeHumidities: []float64{10, 20, 30, 40},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := generator.Start(ctx)()
	assert.NoError(t, err)

	_, ok := <-generator.Points()
	assert.False(t, ok)
}
