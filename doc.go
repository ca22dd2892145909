// Package omoikane fits parametric functions to labeled data by minimizing
// the mean squared error with plain gradient descent.
//
// The library is organized into several packages:
//
//   - optimization: parameter vectors, the ParametricFunction interface,
//     LinearFunction, least-squares error and gradients and the
//     gradient-descent driver
//   - regression: LinearRegression, a Fit/Predict/Score model on top of
//     the optimizer
//   - datasets: building datasets from matrices, CSV and synthetic lines
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R²)
//   - visualization: fit and error-trace plots
//   - core/model: estimator interfaces and weight serialization
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: error types and structured logging
//
// # Quick Start
//
//	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	model := regression.NewLinearRegression(
//	    regression.WithLearningRate(0.01),
//	    regression.WithMaxIterations(5000),
//	)
//	if err := model.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//
// The optimizer itself works on any ParametricFunction:
//
//	fn := optimization.NewLinearFunction(1)
//	trace := optimization.LeastSquaresFit(fn, ds, 1e-4, 10000)
//
// There is no convergence check: the optimizer always runs the requested
// number of iterations, and a learning rate too large for the data makes
// the parameters diverge to Inf or NaN.
//
// # Error Handling
//
// Contract violations inside the optimizer (dimension mismatches, empty
// datasets) panic with typed errors from pkg/errors, like gonum/mat does.
// The regression model recovers them into returned errors:
//
//	var dimErr *errors.DimensionError
//	if errors.As(err, &dimErr) {
//	    // handle dimension mismatch
//	}
package omoikane
