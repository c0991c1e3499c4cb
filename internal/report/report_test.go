package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lightcurve/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := report.Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := report.Summarize(nil)
	assert.Error(t, err)
}

func TestSummarize_NaN(t *testing.T) {
	s, err := report.Summarize([]float64{math.NaN(), math.NaN()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.Mean))
}

func TestWriteCurves(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCurves(&buf, []float64{0, 0.5}, [][]float64{{1.25, -3}, {0, 1e-20}})
	require.NoError(t, err)
	assert.Equal(t, "0\t1.25\n0.5\t-3\n\n0\t0\n0.5\t1e-20\n", buf.String())
}

func TestWriteCurves_LengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCurves(&buf, []float64{0, 1, 2}, [][]float64{{1, 2}})
	assert.ErrorContains(t, err, "curve 0")
}
