package optimization

import "github.com/YuminosukeSato/omoikane/pkg/log"

// CallbackEnv describes a completed gradient-descent iteration.
type CallbackEnv struct {
	// Iteration counts from 1.
	Iteration int
	// Error is the error measured before this iteration's update.
	Error float64
	// Function is the function being optimized, already holding the updated
	// parameters. Callbacks must not modify it.
	Function ParametricFunction
}

// Callback observes the optimizer after each iteration. It cannot stop the loop.
type Callback func(env *CallbackEnv)

// DescentOption configures GradientDescentFit.
type DescentOption func(*descentConfig)

type descentConfig struct {
	logger    log.Logger
	callbacks []Callback
}

// WithLogger logs every iteration at debug level.
func WithLogger(logger log.Logger) DescentOption {
	return func(c *descentConfig) {
		c.logger = logger
	}
}

// WithCallback registers a callback run after each iteration.
func WithCallback(cb Callback) DescentOption {
	return func(c *descentConfig) {
		c.callbacks = append(c.callbacks, cb)
	}
}
