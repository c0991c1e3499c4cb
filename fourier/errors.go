package fourier

import (
	"fmt"

	"github.com/katalvlaran/lightcurve/spectrum"
)

// Sentinel errors. All wrap spectrum.ErrInvalidArgument and are returned
// before any random draw takes place.
var (
	// ErrNilSource indicates that Coefficients was called without a random source.
	ErrNilSource = fmt.Errorf("%w: random source is nil", spectrum.ErrInvalidArgument)

	// ErrLengthMismatch indicates a spectrum or coefficient slice whose length
	// does not fit the requested sample count.
	ErrLengthMismatch = fmt.Errorf("%w: length does not match sample count", spectrum.ErrInvalidArgument)

	// ErrBadSize indicates a sample count below spectrum.MinPoints.
	ErrBadSize = spectrum.ErrBadSize
)

// Method names used as error context.
const (
	MethodCoefficients = "Coefficients"
	MethodInverseReal  = "InverseReal"
)

func fourierErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
