package lightcurve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lightcurve/spectrum"
	"golang.org/x/sync/errgroup"
)

// SimulateBatch returns count independent light curves for the same request.
//
// Curve i draws from its own generator, seeded by mixing the batch seed with
// i, so the batch is reproducible for a given seed and does not depend on the
// worker count or scheduling. Curves are computed concurrently, at most
// `workers` at a time (WithWorkers, default GOMAXPROCS).
//
// The request is validated once up front. When ctx is cancelled no further
// curves are started and ctx.Err() is returned.
//
// Errors:
//   - ErrBadCount if count < 1.
//   - the validation errors of Run.
//   - ctx.Err() on cancellation.
func SimulateBatch(ctx context.Context, req Request, count int, opts ...BatchOption) ([][]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d: %w", MethodSimulateBatch, count, ErrBadCount)
	}
	if req.Model == nil {
		return nil, wrapf(MethodSimulateBatch, ErrNilModel)
	}
	if _, err := spectrum.Frequencies(req.N, req.Dt); err != nil {
		return nil, wrapf(MethodSimulateBatch, err)
	}

	cfg := newBatchConfig(opts...)
	out := make([][]float64, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < count; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Run(req, streamRand(cfg.seed, i))
			if err != nil {
				return err
			}
			out[i] = res.Samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrapf(MethodSimulateBatch, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, wrapf(MethodSimulateBatch, err)
	}

	return out, nil
}
