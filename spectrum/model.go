// SPDX-License-Identifier: MIT
// Package: lightcurve/spectrum
//
// model.go - power evaluation for the three spectral shapes.
//
// Contract:
//   • Power is a pure function of (params, f); no validation, no clamping.
//   • Negative or NaN results are returned as computed.
//   • Evaluate allocates exactly one output slice aligned with its input.

package spectrum

import (
	"math"
	"strings"
)

// Kind reports Unbroken.
func (p UnbrokenParams) Kind() Kind { return Unbroken }

// Power returns Norm·(f/Nu0)^(−Beta) + Noise.
func (p UnbrokenParams) Power(f float64) float64 {
	return p.Norm*math.Pow(f/p.Nu0, -p.Beta) + p.Noise
}

// Params returns [Norm, Nu0, Beta, Noise].
func (p UnbrokenParams) Params() []float64 {
	return []float64{p.Norm, p.Nu0, p.Beta, p.Noise}
}

// Kind reports Sharp.
func (p SharpParams) Kind() Kind { return Sharp }

// Power picks the slope by comparing f with the pivot. f == NuC takes the
// Gamma branch; both branches agree there because (f/NuC)^x == 1.
func (p SharpParams) Power(f float64) float64 {
	slope := p.Beta
	if f <= p.NuC {
		slope = p.Gamma
	}

	return p.Norm*math.Pow(f/p.NuC, -slope) + p.Noise
}

// Params returns [Norm, NuC, Gamma, Beta, Noise].
func (p SharpParams) Params() []float64 {
	return []float64{p.Norm, p.NuC, p.Gamma, p.Beta, p.Noise}
}

// Kind reports Slow.
func (p SlowParams) Kind() Kind { return Slow }

// Power returns Norm·f^AlphaLo / (1 + f/NuKnee)^(AlphaHi − AlphaLo) + Noise.
func (p SlowParams) Power(f float64) float64 {
	return p.Norm*math.Pow(f, p.AlphaLo)/math.Pow(1+f/p.NuKnee, p.AlphaHi-p.AlphaLo) + p.Noise
}

// Params returns [Norm, NuKnee, AlphaLo, AlphaHi, Noise].
func (p SlowParams) Params() []float64 {
	return []float64{p.Norm, p.NuKnee, p.AlphaLo, p.AlphaHi, p.Noise}
}

// Evaluate returns the power of m at every frequency in freqs, one-to-one.
// A nil model yields nil.
//
// Complexity: O(len(freqs)) time, one allocation.
func Evaluate(m Model, freqs []float64) []float64 {
	if m == nil {
		return nil
	}
	power := make([]float64, len(freqs))
	for i, f := range freqs {
		power[i] = m.Power(f)
	}

	return power
}

// ParamCount returns the positional parameter count for kind k, or 0 for
// an unknown kind.
func ParamCount(k Kind) int {
	switch k {
	case Unbroken:
		return unbrokenParamCount
	case Sharp, Slow:
		return brokenParamCount
	default:
		return 0
	}
}

// ParseKind maps a model name to its Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameUnbroken:
		return Unbroken, nil
	case NameSharp:
		return Sharp, nil
	case NameSlow:
		return Slow, nil
	default:
		return 0, spectrumErrorf(MethodParseKind, ErrUnknownModel, "name=%q", name)
	}
}

// New builds the parameter record for kind k from its positional form.
// The slice is copied into the record; later mutation of params has no effect.
func New(k Kind, params []float64) (Model, error) {
	want := ParamCount(k)
	if want == 0 {
		return nil, spectrumErrorf(MethodNew, ErrUnknownModel, "kind=%d", int(k))
	}
	if len(params) != want {
		return nil, spectrumErrorf(MethodNew, ErrParamCount, "%s wants %d, got %d", k, want, len(params))
	}

	switch k {
	case Unbroken:
		return UnbrokenParams{Norm: params[0], Nu0: params[1], Beta: params[2], Noise: params[3]}, nil
	case Sharp:
		return SharpParams{Norm: params[0], NuC: params[1], Gamma: params[2], Beta: params[3], Noise: params[4]}, nil
	default:
		return SlowParams{Norm: params[0], NuKnee: params[1], AlphaLo: params[2], AlphaHi: params[3], Noise: params[4]}, nil
	}
}

// Parse is ParseKind followed by New.
func Parse(name string, params []float64) (Model, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	return New(k, params)
}
