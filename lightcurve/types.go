package lightcurve

import "github.com/katalvlaran/lightcurve/spectrum"

// Request describes one light curve.
//
// Fields:
//   - N     - number of output samples (≥ 2).
//   - Dt    - sampling interval in seconds (> 0).
//   - Mean  - target mean of the series.
//   - Model - spectral model; one of spectrum.UnbrokenParams,
//     spectrum.SharpParams, spectrum.SlowParams.
type Request struct {
	N     int
	Dt    float64
	Mean  float64
	Model spectrum.Model
}

// Result carries the output of every pipeline stage.
//
// Frequencies, Power and Coefficients have ⌊N/2⌋ entries; Samples has N.
type Result struct {
	Frequencies  []float64
	Power        []float64
	Coefficients []complex128
	Samples      []float64
}
