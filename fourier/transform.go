package fourier

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PrependMean returns the m+1 half-spectrum coefficients of an n-sample
// series: the DC bin followed by coeffs. The DC bin holds mean·n so that
// InverseReal produces a series whose average is mean.
//
// coeffs is not modified.
func PrependMean(coeffs []complex128, mean float64, n int) []complex128 {
	out := make([]complex128, len(coeffs)+1)
	out[0] = complex(mean*float64(n), 0)
	copy(out[1:], coeffs)

	return out
}

// InverseReal reconstructs n real samples from the half spectrum
// X[0..n/2] of a real signal: x[t] = (1/n)·Σ X[k]·e^{2πikt/n} over the
// Hermitian extension of X.
//
// The imaginary parts of X[0] and, for even n, of the Nyquist bin X[n/2]
// cannot be represented by a real signal and are ignored.
//
// Errors:
//   - ErrBadSize        if n < 1.
//   - ErrLengthMismatch if len(halfSpec) != n/2+1.
//
// Complexity: O(n log n) time, O(n) memory.
func InverseReal(halfSpec []complex128, n int) ([]float64, error) {
	if n < 1 {
		return nil, fourierErrorf(MethodInverseReal, ErrBadSize, "n=%d", n)
	}
	if len(halfSpec) != n/2+1 {
		return nil, fourierErrorf(MethodInverseReal, ErrLengthMismatch, "len=%d, want %d", len(halfSpec), n/2+1)
	}

	full := make([]complex128, n)
	full[0] = complex(real(halfSpec[0]), 0)
	for k := 1; k < len(halfSpec); k++ {
		if 2*k == n {
			full[k] = complex(real(halfSpec[k]), 0)
			continue
		}
		full[k] = halfSpec[k]
		full[n-k] = cmplx.Conj(halfSpec[k])
	}

	// fft.IFFT already divides by n.
	inv := fft.IFFT(full)
	out := make([]float64, n)
	for i, v := range inv {
		out[i] = real(v)
	}

	return out, nil
}

// ForwardReal returns the half spectrum X[0..n/2] of the real series x,
// unnormalized, so that InverseReal(ForwardReal(x), len(x)) ≈ x.
// An empty input yields an empty result.
func ForwardReal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	full := fft.FFTReal(x)
	out := make([]complex128, len(x)/2+1)
	copy(out, full)

	return out
}
