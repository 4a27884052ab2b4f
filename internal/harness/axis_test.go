package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected []float64
	}{
		{"empty falls back", nil, []float64{77}},
		{"values", []string{"32", " 42.5", "72"}, []float64{32, 42.5, 72}},
		{"range", []string{"0:120:40"}, []float64{0, 40, 80, 120}},
		{"range with remainder", []string{"0:10:4"}, []float64{0, 4, 8}},
		{"fractional range", []string{"0:0.3:0.1"}, []float64{0, 0.1, 0.2, 0.30000000000000004}},
		{"mixed", []string{"5", "10:20:10"}, []float64{5, 10, 20}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			axis, err := parseAxis(test.values, 77)
			require.NoError(t, err)
			assert.InDeltaSlice(t, test.expected, axis, 1e-9)
		})
	}
}

func TestParseAxis_Invalid(t *testing.T) {
	for _, values := range [][]string{
		{"warm"},
		{"0:10"},
		{"0:10:0"},
		{"10:0:1"},
		{"0:ten:1"},
	} {
		_, err := parseAxis(values, 0)
		assert.Error(t, err, "%v", values)
	}
}
