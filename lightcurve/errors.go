package lightcurve

import (
	"fmt"

	"github.com/katalvlaran/lightcurve/fourier"
	"github.com/katalvlaran/lightcurve/spectrum"
)

// Re-exported sentinels, so callers of this package need not import the
// stage packages to classify errors.
var (
	// ErrInvalidArgument is the class of every input-validation failure.
	ErrInvalidArgument = spectrum.ErrInvalidArgument

	// ErrNilModel indicates a Request without a spectral model.
	ErrNilModel = spectrum.ErrNilModel

	// ErrNilSource indicates that no random source was available.
	ErrNilSource = fourier.ErrNilSource

	// ErrBadCount indicates a batch size below 1.
	ErrBadCount = fmt.Errorf("%w: batch count must be at least 1", spectrum.ErrInvalidArgument)
)

// Method names used as error context.
const (
	MethodRun                = "Run"
	MethodSimulateLightCurve = "SimulateLightCurve"
	MethodSimulateBatch      = "SimulateBatch"
)

// wrapf prefixes err with the method name, keeping it reachable via errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
