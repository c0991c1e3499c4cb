// Package spectrum builds the theoretical power spectrum that a synthetic
// light curve must follow.
//
// 🚀 What lives here?
//
//	Two of the four pipeline stages of the Timmer & Koenig (1995) method:
//	  • Frequencies - the one-sided Fourier grid k/(n·dt), k = 1..⌊n/2⌋
//	  • Evaluate    - the model power S(f) at every grid frequency
//
// ✨ Models (closed set, one parameter record per variant):
//
//	Unbroken  S = N·(f/ν0)^(−β) + noise
//	Sharp     S = N·(f/νc)^(−γ) + noise   for f ≤ νc
//	          S = N·(f/νc)^(−β) + noise   for f >  νc
//	Slow      S = N·f^αlo / (1 + f/νk)^(αhi − αlo) + noise
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lightcurve/spectrum"
//
//	freqs, err := spectrum.Frequencies(1024, 1.0)
//	if err != nil {
//	  // ErrBadSize / ErrBadStep, both wrap ErrInvalidArgument
//	}
//	model := spectrum.SharpParams{Norm: 2, NuC: 0.1, Gamma: 1, Beta: 3, Noise: 0.01}
//	power := spectrum.Evaluate(model, freqs)
//
// The positional form used by command lines and configuration files goes
// through Parse:
//
//	model, err := spectrum.Parse("slow", []float64{1, 0.01, 0, 2, 0})
//
// Numeric anomalies:
//
//	Power values are never clamped. Parameters that imply a negative power
//	(a large negative noise level, for instance) or a non-real power
//	(negative base raised to a fractional exponent) produce negative or NaN
//	entries. They pass through unchanged so the caller can diagnose them in
//	the final light curve.
//
// Performance:
//
//   - Frequencies: O(n) time, O(n) memory
//   - Evaluate:    O(len(freqs)) time, one allocation
package spectrum
