// Package log defines standard attribute keys for optimization runs.
//
// Keys follow a hierarchical naming convention ("model.name",
// "data.samples") so that log records from the optimizer, the regression
// model and the CLI can be filtered together.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// FunctionKey identifies the parametric function being optimized,
	// e.g. "LinearFunction".
	FunctionKey = "model.function"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the input dimensionality.
	FeaturesKey = "data.features"

	// ParametersKey indicates the length of the parameter vector.
	ParametersKey = "model.parameters"
)

// Training progress
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the mean squared error of an iteration.
	LossKey = "metrics.loss"

	// R2ScoreKey records the R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the current gradient-descent iteration.
	IterationKey = "training.iteration"

	// MaxIterationsKey records the configured iteration count.
	MaxIterationsKey = "hyperparams.max_iterations"

	// LearningRateKey records the learning rate.
	LearningRateKey = "hyperparams.learning_rate"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code.
	ErrorCodeKey = "error.code"

	// WarningKey holds a structured warning object.
	WarningKey = "warning"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorDivergence        = "DIVERGENCE"
)
