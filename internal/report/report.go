// Package report formats simulated light curves for the lcsim command:
// tab-separated rows on the output stream and summary statistics for logs.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of one light curve.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the population mean, standard deviation, minimum and
// maximum of lc. NaN samples propagate into the result.
func Summarize(lc []float64) (Summary, error) {
	data := stats.Float64Data(lc)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("report: mean: %w", err)
	}
	sd, err := data.StandardDeviationPopulation()
	if err != nil {
		return Summary{}, fmt.Errorf("report: stddev: %w", err)
	}
	lo, err := data.Min()
	if err != nil {
		return Summary{}, fmt.Errorf("report: min: %w", err)
	}
	hi, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("report: max: %w", err)
	}

	return Summary{Mean: mean, StdDev: sd, Min: lo, Max: hi}, nil
}

// WriteCurves writes one "time<TAB>value" row per sample. Consecutive curves
// are separated by a blank line. times must be as long as every curve.
func WriteCurves(w io.Writer, times []float64, curves [][]float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for c, lc := range curves {
		if len(lc) != len(times) {
			return fmt.Errorf("report: curve %d has %d samples, want %d", c, len(lc), len(times))
		}
		if c > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		for i, v := range lc {
			buf = buf[:0]
			buf = strconv.AppendFloat(buf, times[i], 'g', -1, 64)
			buf = append(buf, '\t')
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
