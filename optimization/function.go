package optimization

import "gonum.org/v1/gonum/mat"

// ParametricFunction is a differentiable scalar function of an input vector
// whose shape is controlled by a fixed-length parameter vector.
//
// Implementations panic with a *errors.DimensionError when an input does not
// have InputSize components or when SetParameters receives a vector of the
// wrong length.
type ParametricFunction interface {
	// InputSize returns the number of input variables.
	InputSize() int

	// Parameters returns the current parameter vector. Callers must not modify it.
	Parameters() mat.Vector

	// SetParameters replaces the parameter vector.
	SetParameters(parameters mat.Vector)

	// F evaluates the function at x.
	F(x mat.Vector) float64

	// DF evaluates a derivative quantity of the function at x. It is used for
	// diagnostics only.
	DF(x mat.Vector) float64

	// ParameterGradients returns ∂F/∂parameters at x, one component per parameter.
	ParameterGradients(x mat.Vector) *mat.VecDense
}

// Factory creates a ParametricFunction for the given input size with its
// initial parameters.
type Factory func(inputSize int) ParametricFunction
