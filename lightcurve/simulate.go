package lightcurve

import (
	"github.com/katalvlaran/lightcurve/fourier"
	"github.com/katalvlaran/lightcurve/spectrum"
)

// Run executes the four pipeline stages for req, drawing normals from src,
// and returns the output of every stage.
//
// All validation (model, source, n, dt) happens before the first draw, so a
// failed call leaves src untouched. On success src has been advanced by
// exactly 2·⌊N/2⌋ draws.
//
// Errors (all wrap ErrInvalidArgument):
//   - ErrNilModel         if req.Model is nil.
//   - ErrNilSource        if src is nil.
//   - spectrum.ErrBadSize if req.N < 2.
//   - spectrum.ErrBadStep if req.Dt is not finite and > 0.
//
// Complexity: O(N log N) time, O(N) memory.
func Run(req Request, src fourier.NormalSource) (Result, error) {
	if req.Model == nil {
		return Result{}, wrapf(MethodRun, ErrNilModel)
	}
	if src == nil {
		return Result{}, wrapf(MethodRun, ErrNilSource)
	}

	// Stage 1: frequency grid (validates N and Dt).
	freqs, err := spectrum.Frequencies(req.N, req.Dt)
	if err != nil {
		return Result{}, wrapf(MethodRun, err)
	}

	// Stage 2: model power, no clamping.
	power := spectrum.Evaluate(req.Model, freqs)

	// Stage 3: randomized coefficients with the Nyquist fix for even N.
	coeffs, err := fourier.Coefficients(power, req.N, src)
	if err != nil {
		return Result{}, wrapf(MethodRun, err)
	}

	// Stage 4: mean in the DC bin, inverse real transform to N samples.
	samples, err := fourier.InverseReal(fourier.PrependMean(coeffs, req.Mean, req.N), req.N)
	if err != nil {
		return Result{}, wrapf(MethodRun, err)
	}

	return Result{
		Frequencies:  freqs,
		Power:        power,
		Coefficients: coeffs,
		Samples:      samples,
	}, nil
}

// Simulate returns the N samples of one light curve. Without options the
// process-wide generator is used; see WithSeed, WithRand and WithSource.
func Simulate(req Request, opts ...Option) ([]float64, error) {
	cfg := newSimConfig(opts...)
	res, err := Run(req, cfg.src)
	if err != nil {
		return nil, err
	}

	return res.Samples, nil
}

// SimulateLightCurve is the positional form of Simulate: model is one of
// "unbroken", "sharp", "slow" (any case) and params holds 4 or 5 values in
// the order documented on spectrum.UnbrokenParams, SharpParams, SlowParams.
//
// A malformed model name or parameter count fails with ErrInvalidArgument
// before any random draw.
func SimulateLightCurve(n int, dt, mean float64, model string, params []float64, opts ...Option) ([]float64, error) {
	m, err := spectrum.Parse(model, params)
	if err != nil {
		return nil, wrapf(MethodSimulateLightCurve, err)
	}

	return Simulate(Request{N: n, Dt: dt, Mean: mean, Model: m}, opts...)
}

// Times returns the sample times i·dt for i = 0..n−1, or nil if n < 1.
func Times(n int, dt float64) []float64 {
	if n < 1 {
		return nil
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}

	return t
}
