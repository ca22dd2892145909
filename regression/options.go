package regression

import (
	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/log"
)

// 既定のハイパーパラメータ
const (
	DefaultLearningRate  = 1e-4
	DefaultMaxIterations = 10000
)

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithLearningRate sets the gradient-descent step size
func WithLearningRate(rate float64) Option {
	return func(lr *LinearRegression) {
		lr.learningRate = rate
	}
}

// WithMaxIterations sets the iteration count passed to the optimizer.
// The optimizer performs maxIterations-1 updates.
func WithMaxIterations(n int) Option {
	return func(lr *LinearRegression) {
		lr.maxIterations = n
	}
}

// WithFunction replaces the model function. The parameter layout must be
// [intercept, weights...] for Intercept, Coef and ExportWeights to make sense.
func WithFunction(factory optimization.Factory) Option {
	return func(lr *LinearRegression) {
		lr.factory = factory
	}
}

// WithLogger sets the logger used for fit progress
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}

// WithCallback observes every gradient-descent iteration
func WithCallback(cb optimization.Callback) Option {
	return func(lr *LinearRegression) {
		lr.callbacks = append(lr.callbacks, cb)
	}
}
