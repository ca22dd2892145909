// Package optimization fits parametric functions to labeled data by
// gradient descent on the mean squared error.
//
// A ParametricFunction is any scalar function of an input vector controlled
// by a fixed-length parameter vector that can report its partial
// derivatives with respect to those parameters. LinearFunction is the affine
// implementation. GradientDescentFit is the generic fixed-iteration loop and
// LeastSquaresFit binds it to the least-squares error and gradient.
//
// Contract violations (input vectors or parameter vectors of the wrong
// length, empty datasets) panic with typed errors from pkg/errors, in the
// same way gonum/mat panics on shape mismatches. Use errors.Recover or
// errors.SafeExecute at API boundaries to turn them back into errors.
//
//	fn := optimization.NewLinearFunction(1)
//	trace := optimization.LeastSquaresFit(fn, dataset, 0.01, 5000)
//	y := fn.F(mat.NewVecDense(1, []float64{1.5}))
package optimization
