package optimization

import (
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ComputeError returns the squared error (y - f(x))² of a single sample.
func ComputeError(fn ParametricFunction, x mat.Vector, y float64) float64 {
	r := residual(fn, x, y)
	return r * r
}

// residual は符号付き残差 y - f(x)。勾配計算では二乗誤差ではなくこちらを使う。
func residual(fn ParametricFunction, x mat.Vector, y float64) float64 {
	return y - fn.F(x)
}

// ComputeErrorAverage returns the mean squared error of fn over ds.
// ds must not be empty.
func ComputeErrorAverage(fn ParametricFunction, ds Dataset) float64 {
	requireSamples("ComputeErrorAverage", ds)

	var sum float64
	for _, s := range ds {
		sum += ComputeError(fn, s.X, s.Y)
	}
	return sum / float64(len(ds))
}

// ComputeErrorGradients returns the gradient of the mean squared error with
// respect to the parameters of fn:
//
//	Σ_i (-2/n) * (y_i - f(x_i)) * ∂f/∂p (x_i)
//
// The result has the same length and order as fn.Parameters(). ds must not be empty.
func ComputeErrorGradients(fn ParametricFunction, ds Dataset) *mat.VecDense {
	requireSamples("ComputeErrorGradients", ds)

	n := float64(len(ds))
	gradients := mat.NewVecDense(fn.Parameters().Len(), nil)
	for _, s := range ds {
		gradients.AddScaledVec(gradients, -2/n*residual(fn, s.X, s.Y), fn.ParameterGradients(s.X))
	}
	return gradients
}

// LeastSquaresFit fits fn to ds by gradient descent on the mean squared
// error and returns the error trace. fn is updated in place.
func LeastSquaresFit(fn ParametricFunction, ds Dataset, learningRate float64, maxIterations int, opts ...DescentOption) []float64 {
	return GradientDescentFit(ds, fn, ComputeErrorAverage, ComputeErrorGradients, maxIterations, learningRate, opts...)
}

func requireSamples(op string, ds Dataset) {
	if len(ds) == 0 {
		panic(errors.NewValueErrorWithCause(op, "dataset must not be empty", errors.ErrEmptyData))
	}
}
