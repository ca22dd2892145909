package optimization

import (
	"context"

	"github.com/YuminosukeSato/omoikane/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// ErrorFunc computes a scalar error of fn over ds.
type ErrorFunc func(fn ParametricFunction, ds Dataset) float64

// GradientFunc computes the gradient of an error with respect to the
// parameters of fn over ds.
type GradientFunc func(fn ParametricFunction, ds Dataset) *mat.VecDense

// GradientDescentFit runs maxIterations-1 gradient-descent steps on fn and
// returns the error trace, one value per step.
//
// Each step reads the current parameters, computes errorGradients on them,
// records errorAverage of the not yet updated function, then replaces the
// parameters with params - learningRate*gradients. There is no convergence
// check: a learning rate too large for the data makes the parameters
// diverge and the loop still runs to the end.
//
// fn is exclusively owned by the call until it returns; ds is only read.
func GradientDescentFit(
	ds Dataset,
	fn ParametricFunction,
	errorAverage ErrorFunc,
	errorGradients GradientFunc,
	maxIterations int,
	learningRate float64,
	opts ...DescentOption,
) []float64 {
	cfg := &descentConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	debug := cfg.logger != nil && cfg.logger.Enabled(context.Background(), log.LevelDebug)

	errs := make([]float64, 0, max(maxIterations-1, 0))
	for iteration := 1; iteration < maxIterations; iteration++ {
		params := fn.Parameters()
		gradients := errorGradients(fn, ds)

		next := mat.NewVecDense(params.Len(), nil)
		next.AddScaledVec(params, -learningRate, gradients)

		e := errorAverage(fn, ds)
		errs = append(errs, e)
		fn.SetParameters(next)

		if debug {
			cfg.logger.Debug("gradient descent iteration",
				log.IterationKey, iteration,
				log.LossKey, e,
			)
		}
		for _, cb := range cfg.callbacks {
			cb(&CallbackEnv{Iteration: iteration, Error: e, Function: fn})
		}
	}
	return errs
}
