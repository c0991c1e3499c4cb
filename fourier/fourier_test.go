package fourier_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lightcurve/fourier"
	"github.com/katalvlaran/lightcurve/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// countingSource wraps a seeded generator and counts draws.
type countingSource struct {
	r     *rand.Rand
	draws int
}

func newCountingSource(seed int64) *countingSource {
	return &countingSource{r: rand.New(rand.NewSource(seed))}
}

func (c *countingSource) NormFloat64() float64 {
	c.draws++
	return c.r.NormFloat64()
}

// constSource returns the same value on every draw.
type constSource float64

func (c constSource) NormFloat64() float64 { return float64(c) }

// TestCoefficients_DrawCount verifies 2·⌊n/2⌋ draws for even and odd n.
func TestCoefficients_DrawCount(t *testing.T) {
	for _, n := range []int{2, 3, 8, 9, 1024, 1025} {
		src := newCountingSource(7)
		_, err := fourier.Coefficients(make([]float64, n/2), n, src)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, 2*(n/2), src.draws, "n=%d", n)
	}
}

// TestCoefficients_Scaling checks sqrt(S/2)·(a+bi) with a fixed draw value.
func TestCoefficients_Scaling(t *testing.T) {
	power := []float64{8, 2, 0.5}
	coeffs, err := fourier.Coefficients(power, 7, constSource(1))
	require.NoError(t, err)
	require.Len(t, coeffs, 3)

	assert.InDelta(t, 2.0, real(coeffs[0]), tol)
	assert.InDelta(t, 2.0, imag(coeffs[0]), tol)
	assert.InDelta(t, 1.0, real(coeffs[1]), tol)
	assert.InDelta(t, 0.5, imag(coeffs[2]), tol, "odd n keeps the last imaginary part")
}

// TestCoefficients_DrawOrder checks real parts are drawn before imaginary parts.
func TestCoefficients_DrawOrder(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	draws := make([]float64, 6)
	for i := range draws {
		draws[i] = r.NormFloat64()
	}

	power := []float64{2, 2, 2} // amplitude 1
	coeffs, err := fourier.Coefficients(power, 7, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	for i, c := range coeffs {
		assert.InDelta(t, draws[i], real(c), tol, "re[%d]", i)
		assert.InDelta(t, draws[3+i], imag(c), tol, "im[%d]", i)
	}
}

// TestCoefficients_NyquistReal verifies the even-length Nyquist correction.
func TestCoefficients_NyquistReal(t *testing.T) {
	power := []float64{64, 16, 64.0 / 9.0, 4}
	coeffs, err := fourier.Coefficients(power, 8, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	last := coeffs[len(coeffs)-1]
	assert.Equal(t, 0.0, imag(last), "Nyquist bin must be real")
	assert.InDelta(t, math.Sqrt(2), real(last), tol, "Nyquist bin is sqrt(S/2)·1")
	for _, c := range coeffs[:len(coeffs)-1] {
		assert.NotEqual(t, 0.0, imag(c))
	}
}

// TestCoefficients_NegativePowerIsNaN verifies there is no clamping.
func TestCoefficients_NegativePowerIsNaN(t *testing.T) {
	coeffs, err := fourier.Coefficients([]float64{1, -1}, 5, constSource(1))
	require.NoError(t, err)
	assert.False(t, cmplx.IsNaN(coeffs[0]))
	assert.True(t, cmplx.IsNaN(coeffs[1]))
}

// TestCoefficients_Errors checks validation happens before any draw.
func TestCoefficients_Errors(t *testing.T) {
	src := newCountingSource(1)

	_, err := fourier.Coefficients(make([]float64, 4), 8, nil)
	assert.ErrorIs(t, err, fourier.ErrNilSource)

	_, err = fourier.Coefficients(nil, 1, src)
	assert.ErrorIs(t, err, fourier.ErrBadSize)

	_, err = fourier.Coefficients(make([]float64, 3), 8, src)
	assert.ErrorIs(t, err, fourier.ErrLengthMismatch)
	assert.ErrorIs(t, err, spectrum.ErrInvalidArgument)

	assert.Zero(t, src.draws, "failed calls must not consume draws")
}

// TestPrependMean places mean·n in front without touching the input.
func TestPrependMean(t *testing.T) {
	in := []complex128{1 + 2i, 3 - 1i}
	out := fourier.PrependMean(in, 2.5, 5)
	assert.Equal(t, []complex128{12.5, 1 + 2i, 3 - 1i}, out)
	assert.Equal(t, []complex128{1 + 2i, 3 - 1i}, in)
}

// TestInverseReal_MeanOnly returns a flat series for a DC-only spectrum.
func TestInverseReal_MeanOnly(t *testing.T) {
	for _, n := range []int{2, 5, 8, 13} {
		spec := fourier.PrependMean(make([]complex128, n/2), 10, n)
		x, err := fourier.InverseReal(spec, n)
		require.NoError(t, err)
		require.Len(t, x, n)
		for i, v := range x {
			assert.InDelta(t, 10.0, v, tol, "n=%d i=%d", n, i)
		}
	}
}

// TestInverseReal_Cosine synthesizes a single cosine and checks each sample.
func TestInverseReal_Cosine(t *testing.T) {
	const n = 8
	spec := make([]complex128, n/2+1)
	spec[1] = complex(float64(n)/2, 0) // x[t] = cos(2πt/n)

	x, err := fourier.InverseReal(spec, n)
	require.NoError(t, err)
	for i, v := range x {
		assert.InDelta(t, math.Cos(2*math.Pi*float64(i)/n), v, tol, "t=%d", i)
	}
}

// TestInverseReal_RoundTrip checks ForwardReal/InverseReal for even and odd n.
func TestInverseReal_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, n := range []int{2, 3, 7, 8, 31, 64, 100} {
		x := make([]float64, n)
		for i := range x {
			x[i] = r.NormFloat64()*3 + 1
		}
		spec := fourier.ForwardReal(x)
		require.Len(t, spec, n/2+1)

		y, err := fourier.InverseReal(spec, n)
		require.NoError(t, err)
		assert.InDeltaSlice(t, x, y, 1e-8, "n=%d", n)
	}
}

// TestInverseReal_IgnoresNonRealBins drops imaginary DC and Nyquist parts.
func TestInverseReal_IgnoresNonRealBins(t *testing.T) {
	a := []complex128{4, 1 + 1i, 2}
	b := []complex128{4 + 9i, 1 + 1i, 2 - 5i}
	xa, err := fourier.InverseReal(a, 4)
	require.NoError(t, err)
	xb, err := fourier.InverseReal(b, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, xa, xb, tol)
}

// TestInverseReal_Errors covers length validation.
func TestInverseReal_Errors(t *testing.T) {
	_, err := fourier.InverseReal(make([]complex128, 4), 8)
	assert.ErrorIs(t, err, fourier.ErrLengthMismatch)

	_, err = fourier.InverseReal(make([]complex128, 1), 0)
	assert.ErrorIs(t, err, fourier.ErrBadSize)
}

// TestForwardReal_Empty returns an empty half spectrum.
func TestForwardReal_Empty(t *testing.T) {
	assert.Empty(t, fourier.ForwardReal(nil))
}
