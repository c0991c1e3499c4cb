package lightcurve_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lightcurve/lightcurve"
	"github.com/katalvlaran/lightcurve/spectrum"
	"github.com/montanaflynn/stats"
)

// ExampleSimulateLightCurve produces a reproducible 8-sample curve from an
// unbroken β=2 power law and reports its length and mean.
func ExampleSimulateLightCurve() {
	lc, err := lightcurve.SimulateLightCurve(8, 1.0, 10.0, "unbroken",
		[]float64{1.0, 1.0, 2.0, 0.0}, lightcurve.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mean, _ := stats.Mean(lc)
	fmt.Printf("len=%d mean=%.2f\n", len(lc), mean)
	// Output:
	// len=8 mean=10.00
}

// ExampleSimulateLightCurve_invalid shows the parameter-count check.
func ExampleSimulateLightCurve_invalid() {
	_, err := lightcurve.SimulateLightCurve(8, 1.0, 10.0, "unbroken", []float64{1, 1, 2})
	fmt.Println(errors.Is(err, lightcurve.ErrInvalidArgument))
	// Output:
	// true
}

// ExampleRun inspects the intermediate stages of an odd-length curve.
func ExampleRun() {
	req := lightcurve.Request{
		N:     5,
		Dt:    2.0,
		Mean:  0.0,
		Model: spectrum.SharpParams{Norm: 2, NuC: 0.1, Gamma: 1, Beta: 3, Noise: 0.01},
	}
	res, err := lightcurve.Run(req, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("frequencies:", res.Frequencies)
	fmt.Printf("power: [%.3f %.3f]\n", res.Power[0], res.Power[1])
	fmt.Println("samples:", len(res.Samples))
	// Output:
	// frequencies: [0.1 0.2]
	// power: [2.010 0.260]
	// samples: 5
}

// ExampleSimulateBatch generates a small Monte Carlo ensemble.
func ExampleSimulateBatch() {
	req := lightcurve.Request{
		N:     1024,
		Dt:    1.0,
		Mean:  100,
		Model: spectrum.SlowParams{Norm: 1, NuKnee: 0.01, AlphaLo: 0, AlphaHi: 2, Noise: 0},
	}
	curves, err := lightcurve.SimulateBatch(context.Background(), req, 4, lightcurve.WithBatchSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, lc := range curves {
		mean, _ := stats.Mean(lc)
		fmt.Printf("%d samples, mean %.1f\n", len(lc), mean)
	}
	// Output:
	// 1024 samples, mean 100.0
	// 1024 samples, mean 100.0
	// 1024 samples, mean 100.0
	// 1024 samples, mean 100.0
}
