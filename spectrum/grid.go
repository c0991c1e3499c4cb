package spectrum

import "math"

// MinPoints is the smallest sample count that yields a non-empty grid.
const MinPoints = 2

// Method names used as error context.
const (
	MethodFrequencies = "Frequencies"
	MethodParseKind   = "ParseKind"
	MethodNew         = "New"
)

// Frequencies returns the one-sided Fourier grid for n samples taken every
// dt seconds: k/(n·dt) for k = 1..⌊n/2⌋. The zero frequency is excluded; it
// belongs to the mean term.
//
// Errors:
//   - ErrBadSize if n < MinPoints.
//   - ErrBadStep if dt is not finite and strictly positive.
//
// Complexity: O(n) time, O(n) memory.
func Frequencies(n int, dt float64) ([]float64, error) {
	if n < MinPoints {
		return nil, spectrumErrorf(MethodFrequencies, ErrBadSize, "n=%d", n)
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, spectrumErrorf(MethodFrequencies, ErrBadStep, "dt=%g", dt)
	}

	m := n / 2
	span := float64(n) * dt
	freqs := make([]float64, m)
	for k := 1; k <= m; k++ {
		freqs[k-1] = float64(k) / span
	}

	return freqs, nil
}
