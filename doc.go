// Package lightcurve is a small, dependency-light toolkit for simulating
// light curves: time series whose power spectral density follows a
// prescribed analytic model, built with the method of Timmer & Koenig
// (1995, A&A 300, 707).
//
// 🚀 What is it for?
//
//	Monte Carlo testing of variability-detection and timing-analysis
//	pipelines: draw many statistically faithful synthetic curves, run the
//	pipeline on each, and measure its false-alarm rate or bias.
//
// ✨ Why this module?
//
//   - Three spectral shapes as typed parameter records: unbroken power law,
//     sharply broken power law, slowly bending knee
//   - Explicit randomness: inject a seeded source, get bit-identical curves
//   - Parallel Monte Carlo batches that do not depend on the worker count
//   - Any sample count, even or odd; O(n log n)
//
// Under the hood:
//
//	spectrum/   - frequency grid and spectral models
//	fourier/    - randomized Fourier coefficients and the inverse real FFT
//	lightcurve/ - the pipeline: Run, Simulate, SimulateLightCurve, SimulateBatch
//	cmd/lcsim/  - command-line front end printing "time<TAB>value" rows
//
// Quick start:
//
//	lc, err := lightcurve.SimulateLightCurve(1024, 1.0, 100.0, "sharp",
//	  []float64{2, 0.05, 1, 3, 0.01}, lightcurve.WithSeed(42))
//
//	go get github.com/katalvlaran/lightcurve
package lightcurve
