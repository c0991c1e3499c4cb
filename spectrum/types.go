package spectrum

// Kind names one of the three supported spectral shapes.
//
//   - Unbroken - a single power law plus white noise.
//   - Sharp    - two power laws joined at a pivot frequency.
//   - Slow     - a smoothly bending "knee" spectrum.
type Kind int

const (
	// Unbroken: S = N·(f/ν0)^(−β) + noise. Four parameters.
	Unbroken Kind = iota

	// Sharp: γ slope below the pivot νc, β slope above it. Five parameters.
	Sharp

	// Slow: N·f^αlo / (1 + f/νk)^(αhi − αlo) + noise. Five parameters.
	Slow
)

// Canonical model names accepted by ParseKind (case-insensitive).
const (
	NameUnbroken = "unbroken"
	NameSharp    = "sharp"
	NameSlow     = "slow"
)

// Positional parameter counts per model.
const (
	unbrokenParamCount = 4
	brokenParamCount   = 5
)

// String returns the canonical lower-case model name.
func (k Kind) String() string {
	switch k {
	case Unbroken:
		return NameUnbroken
	case Sharp:
		return NameSharp
	case Slow:
		return NameSlow
	default:
		return "unknown"
	}
}

// Model evaluates a theoretical power spectrum at a single frequency.
//
// The three implementations in this package (UnbrokenParams, SharpParams,
// SlowParams) form a closed set; Kind reports which one a value is.
// Params returns the positional form in the documented order, so that
// New(m.Kind(), m.Params()) reproduces m.
type Model interface {
	Kind() Kind
	Power(f float64) float64
	Params() []float64
}

// UnbrokenParams is a single power law: S = Norm·(f/Nu0)^(−Beta) + Noise.
//
// Positional order: [Norm, Nu0, Beta, Noise].
type UnbrokenParams struct {
	Norm  float64 // power at f == Nu0 (before noise)
	Nu0   float64 // reference frequency
	Beta  float64 // spectral slope
	Noise float64 // white-noise level added at every frequency
}

// SharpParams is a sharply broken power law pivoting at NuC.
//
//	f ≤ NuC: S = Norm·(f/NuC)^(−Gamma) + Noise
//	f >  NuC: S = Norm·(f/NuC)^(−Beta)  + Noise
//
// Positional order: [Norm, NuC, Gamma, Beta, Noise].
type SharpParams struct {
	Norm  float64 // power at the pivot (before noise)
	NuC   float64 // pivot frequency
	Gamma float64 // low-frequency slope
	Beta  float64 // high-frequency slope
	Noise float64 // white-noise level
}

// SlowParams is a slowly bending knee:
//
//	S = Norm·f^AlphaLo / (1 + f/NuKnee)^(AlphaHi − AlphaLo) + Noise
//
// Positional order: [Norm, NuKnee, AlphaLo, AlphaHi, Noise].
type SlowParams struct {
	Norm    float64 // normalization
	NuKnee  float64 // knee frequency where the spectrum rolls over
	AlphaLo float64 // low-frequency slope
	AlphaHi float64 // high-frequency slope
	Noise   float64 // white-noise level
}
