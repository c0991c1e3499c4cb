// Package lightcurve synthesizes time series whose power spectral density
// follows a prescribed model, using the method of Timmer & Koenig (1995,
// A&A 300, 707).
//
// 🚀 Pipeline (strictly sequential, single pass):
//
//  1. spectrum.Frequencies  - one-sided grid k/(n·dt), k = 1..⌊n/2⌋
//  2. spectrum.Evaluate     - model power S(f) on that grid
//  3. fourier.Coefficients  - sqrt(S/2)·(a + b·i), a, b ~ N(0,1); Nyquist bin real for even n
//  4. fourier.InverseReal   - mean in the DC bin, inverse real FFT to exactly n samples
//
// ✨ Entry points:
//   - Run                - core pipeline with an explicit random source; returns every stage.
//   - Simulate           - Run with functional options (WithSeed / WithRand / WithSource).
//   - SimulateLightCurve - positional form: model name + parameter slice.
//   - SimulateBatch      - many independent curves for Monte Carlo studies, in parallel,
//     reproducible for a given seed whatever the worker count.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lightcurve/lightcurve"
//
//	lc, err := lightcurve.SimulateLightCurve(1024, 1.0, 100.0, "slow",
//	  []float64{1, 0.01, 0, 2, 0}, lightcurve.WithSeed(42))
//	if errors.Is(err, lightcurve.ErrInvalidArgument) {
//	  // wrong parameter count, unknown model, n < 2, dt <= 0, ...
//	}
//
// Randomness:
//
//	Without an option, draws come from the process-wide math/rand generator,
//	so consecutive calls return different curves. Every call consumes exactly
//	2·⌊n/2⌋ draws. Invalid input is rejected before the first draw.
//	A *rand.Rand passed with WithRand is not goroutine-safe; do not share it
//	between concurrent calls.
//
// Numeric anomalies:
//
//	Spectral parameters that imply negative (or non-real) power are not
//	rejected and not clamped. The square root in stage 3 turns them into NaN,
//	which the inverse transform spreads over the output. NaN samples in a
//	light curve therefore point at the model parameters.
//
// Performance:
//
//   - Time:   O(n log n), dominated by the inverse FFT
//   - Memory: O(n)
package lightcurve
