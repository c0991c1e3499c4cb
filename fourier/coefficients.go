// SPDX-License-Identifier: MIT
// Package: lightcurve/fourier
//
// coefficients.go - randomized Fourier amplitudes for a target spectrum.
//
// Contract:
//   • Exactly 2·len(power) draws per call: all real parts, then all
//     imaginary parts, in frequency order.
//   • Validation happens before the first draw; a failed call leaves the
//     source untouched.
//   • No clamping: sqrt of a negative power is NaN and stays NaN.

package fourier

import "math"

// NormalSource yields independent standard-normal variates.
//
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe;
// serialising access to a shared source is the caller's job.
type NormalSource interface {
	NormFloat64() float64
}

const half = 0.5

// Coefficients draws one complex Fourier coefficient per entry of power,
// scaled by sqrt(power/2), for a series of n samples.
//
// If n is even the last coefficient sits on the Nyquist frequency and is
// replaced by the real value sqrt(power[m−1]/2). If n is odd there is no
// exact Nyquist bin and nothing is replaced.
//
// Errors:
//   - ErrNilSource      if src is nil.
//   - ErrBadSize        if n < 2.
//   - ErrLengthMismatch if len(power) != n/2.
//
// Complexity: O(m) time, one allocation, 2m draws from src.
func Coefficients(power []float64, n int, src NormalSource) ([]complex128, error) {
	if src == nil {
		return nil, fourierErrorf(MethodCoefficients, ErrNilSource, "n=%d", n)
	}
	if n < 2 {
		return nil, fourierErrorf(MethodCoefficients, ErrBadSize, "n=%d", n)
	}
	m := n / 2
	if len(power) != m {
		return nil, fourierErrorf(MethodCoefficients, ErrLengthMismatch, "len(power)=%d, want %d", len(power), m)
	}

	// Real parts first, then imaginary parts: same stream layout as drawing
	// two full vectors of normals.
	re := make([]float64, m)
	for i := range re {
		re[i] = src.NormFloat64()
	}
	coeffs := make([]complex128, m)
	var amp float64
	for i := range coeffs {
		amp = math.Sqrt(half * power[i])
		coeffs[i] = complex(amp*re[i], amp*src.NormFloat64())
	}

	if n%2 == 0 {
		coeffs[m-1] = complex(math.Sqrt(half*power[m-1]), 0)
	}

	return coeffs, nil
}
