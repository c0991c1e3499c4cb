// Package fourier turns a power spectrum into a real-valued time series.
//
// It covers the last two stages of the Timmer & Koenig (1995) synthesis:
//
//  1. Coefficients - for every frequency draw a, b ~ N(0,1) and form
//     sqrt(S/2)·(a + b·i). For an even sample count the Nyquist bin is
//     forced real, since a real signal of even length has a real Nyquist term.
//  2. PrependMean + InverseReal - put the mean in the zero-frequency bin and
//     run the inverse real FFT with an explicit output length, so odd lengths
//     (where ⌊n/2⌋ loses the parity) come back with exactly n samples.
//
// Randomness is injected through NormalSource; *math/rand.Rand satisfies it.
// Nothing in this package owns or seeds a generator.
//
// The transforms are computed with github.com/mjibson/go-dsp/fft, which
// handles any length (radix-2 for powers of two, Bluestein otherwise).
//
// Scaling:
//
//	InverseReal is normalized by 1/n (the usual irfft convention). PrependMean
//	therefore stores mean·n in the DC bin, which makes the synthesized series
//	average exactly to mean.
//
// Numeric anomalies:
//
//	Negative power makes sqrt(S/2) NaN. The NaN is not clamped; it spreads
//	through the inverse transform into every output sample.
package fourier
