// SPDX-License-Identifier: MIT
// Package: lightcurve/spectrum
//
// errors.go - sentinel errors for the spectrum package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every validation sentinel wraps ErrInvalidArgument, so a caller that
//     only cares about "bad input, fix and retry" checks one value.
//   • Context (method name, offending value) is attached with %w at the
//     return site via spectrumErrorf, never baked into the sentinel text.

package spectrum

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella class for malformed input. It is raised
// before any computation or random draw takes place.
var ErrInvalidArgument = errors.New("lightcurve: invalid argument")

// ErrBadSize indicates a sample count below MinPoints.
var ErrBadSize = fmt.Errorf("%w: sample count must be at least 2", ErrInvalidArgument)

// ErrBadStep indicates a sampling interval that is not a finite positive number.
var ErrBadStep = fmt.Errorf("%w: sampling interval must be finite and > 0", ErrInvalidArgument)

// ErrUnknownModel indicates a model name outside {unbroken, sharp, slow}
// or a Kind value outside the declared constants.
var ErrUnknownModel = fmt.Errorf("%w: unknown spectral model", ErrInvalidArgument)

// ErrParamCount indicates a positional parameter slice whose length does not
// match the selected model (4 for Unbroken, 5 for Sharp and Slow).
var ErrParamCount = fmt.Errorf("%w: wrong number of model parameters", ErrInvalidArgument)

// ErrNilModel indicates that no model was supplied.
var ErrNilModel = fmt.Errorf("%w: model is nil", ErrInvalidArgument)

// spectrumErrorf prefixes a sentinel with the method name and a formatted
// detail while keeping the sentinel reachable through errors.Is.
//
// Result form: "<method>: <detail>: <sentinel text>".
func spectrumErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
