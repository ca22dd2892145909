// Package regression は勾配降下で学習する線形回帰モデルを提供する
package regression

import (
	"time"

	"github.com/YuminosukeSato/omoikane/core/model"
	"github.com/YuminosukeSato/omoikane/core/parallel"
	"github.com/YuminosukeSato/omoikane/datasets"
	"github.com/YuminosukeSato/omoikane/metrics"
	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/YuminosukeSato/omoikane/pkg/log"
	"gonum.org/v1/gonum/mat"
)

const (
	modelName     = "LinearRegression"
	weightsFormat = "1.0"

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	parallelThreshold = 1000
)

// LinearRegression は最小二乗誤差を勾配降下で最小化する回帰モデル
type LinearRegression struct {
	model.BaseEstimator

	learningRate  float64
	maxIterations int
	factory       optimization.Factory
	logger        log.Logger
	callbacks     []optimization.Callback

	fn        optimization.ParametricFunction
	nFeatures int
	trace     []float64
}

var (
	_ model.Regressor      = (*LinearRegression)(nil)
	_ model.WeightExporter = (*LinearRegression)(nil)
)

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		learningRate:  DefaultLearningRate,
		maxIterations: DefaultMaxIterations,
		factory:       optimization.LinearFactory,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLogger()
	}
	lr.logger = lr.logger.With(log.ModelNameKey, modelName)
	return lr
}

// Fit はモデルを訓練データで学習させる
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, errors.AxisRows)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	ds, err := datasets.FromMatrix(X, y)
	if err != nil {
		return err
	}
	return lr.FitDataset(ds)
}

// FitDataset は構築済みのデータセットで学習する。
// 最適化中の panic（次元不一致など）はエラーとして返す。
func (lr *LinearRegression) FitDataset(ds optimization.Dataset) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	if err := lr.validate(); err != nil {
		return err
	}
	if len(ds) == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if err := datasets.Validate(ds); err != nil {
		return err
	}

	fn := lr.factory(ds.InputSize())
	logger := lr.logger.With(
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(ds),
		log.FeaturesKey, ds.InputSize(),
		log.ParametersKey, fn.Parameters().Len(),
	)
	logger.Info("fit started",
		log.LearningRateKey, lr.learningRate,
		log.MaxIterationsKey, lr.maxIterations,
	)

	opts := []optimization.DescentOption{optimization.WithLogger(logger)}
	for _, cb := range lr.callbacks {
		opts = append(opts, optimization.WithCallback(cb))
	}

	start := time.Now()
	trace := optimization.LeastSquaresFit(fn, ds, lr.learningRate, lr.maxIterations, opts...)

	if errors.CheckVector("gradient_descent", fn.Parameters(), len(trace)) != nil {
		errors.Warn(errors.NewDivergenceWarning("GradientDescent", len(trace), lr.learningRate))
	}

	lr.fn = fn
	lr.nFeatures = ds.InputSize()
	lr.trace = trace
	lr.SetFitted()

	fields := []any{log.DurationMsKey, time.Since(start).Milliseconds()}
	if len(trace) > 0 {
		fields = append(fields, log.LossKey, trace[len(trace)-1])
	}
	logger.Info("fit finished", fields...)
	return nil
}

func (lr *LinearRegression) validate() error {
	if lr.learningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", lr.learningRate)
	}
	if lr.maxIterations < 1 {
		return errors.NewValidationError("max_iterations", "must be at least 1", lr.maxIterations)
	}
	if lr.factory == nil {
		return errors.NewValidationError("function", "factory must not be nil", nil)
	}
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "Predict")
	}

	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.nFeatures, c, errors.AxisFeatures)
	}
	if r == 0 {
		return nil, errors.NewModelError("LinearRegression.Predict", "empty data", errors.ErrEmptyData)
	}

	// 各行の評価はパラメータを読むだけなので並列化できる
	predictions := mat.NewDense(r, 1, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			x := mat.NewVecDense(c, mat.Row(nil, i, X))
			predictions.Set(i, 0, lr.fn.F(x))
		}
	})
	return predictions, nil
}

// PredictVector は1サンプルの予測値を返す
func (lr *LinearRegression) PredictVector(x mat.Vector) (y float64, err error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "PredictVector")
	}
	if x.Len() != lr.nFeatures {
		return 0, errors.NewDimensionError("LinearRegression.PredictVector", lr.nFeatures, x.Len(), errors.AxisFeatures)
	}
	defer errors.Recover(&err, "LinearRegression.PredictVector")
	return lr.fn.F(x), nil
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Score")
	}

	r, _ := X.Dims()
	ry, cy := y.Dims()
	if ry != r {
		return 0, errors.NewDimensionError("LinearRegression.Score", r, ry, errors.AxisRows)
	}
	if cy != 1 {
		return 0, errors.NewValueError("LinearRegression.Score", "y must be a column vector")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	score, err := metrics.R2Score(
		mat.NewVecDense(r, mat.Col(nil, 0, y)),
		mat.NewVecDense(r, mat.Col(nil, 0, yPred)),
	)
	if err != nil {
		return 0, err
	}
	lr.logger.Debug("score computed", log.OperationKey, log.OperationScore, log.R2ScoreKey, score)
	return score, nil
}

// Parameters は学習済みのパラメータ [切片, 重み...] を返す。未学習なら nil
func (lr *LinearRegression) Parameters() []float64 {
	if !lr.IsFitted() {
		return nil
	}
	p := lr.fn.Parameters()
	out := make([]float64, p.Len())
	for i := range out {
		out[i] = p.AtVec(i)
	}
	return out
}

// Intercept は学習された切片を返す
func (lr *LinearRegression) Intercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.fn.Parameters().AtVec(0)
}

// Coef は学習された重み（係数）を返す
func (lr *LinearRegression) Coef() []float64 {
	p := lr.Parameters()
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// ErrorTrace は各イテレーションの更新前の平均二乗誤差を返す
func (lr *LinearRegression) ErrorTrace() []float64 {
	return append([]float64(nil), lr.trace...)
}

// ExportWeights は学習済みパラメータを ModelWeights として書き出す
func (lr *LinearRegression) ExportWeights() (*model.ModelWeights, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "ExportWeights")
	}

	mw := &model.ModelWeights{
		ModelType:    modelName,
		Version:      weightsFormat,
		Coefficients: lr.Coef(),
		Intercept:    lr.Intercept(),
		Hyperparameters: map[string]interface{}{
			"learning_rate":  lr.learningRate,
			"max_iterations": lr.maxIterations,
		},
		IsFitted: true,
	}
	if len(lr.trace) > 0 {
		mw.Metadata = map[string]interface{}{
			"iterations":  len(lr.trace),
			"final_error": lr.trace[len(lr.trace)-1],
		}
	}
	return mw, nil
}

// ImportWeights は ModelWeights からパラメータを復元する。
// ハイパーパラメータが含まれていればそれも復元する。
func (lr *LinearRegression) ImportWeights(weights *model.ModelWeights) (err error) {
	defer errors.Recover(&err, "LinearRegression.ImportWeights")

	if weights == nil {
		return errors.NewValueError("LinearRegression.ImportWeights", "weights must not be nil")
	}
	if err := weights.Validate(); err != nil {
		return errors.Wrap(err, "LinearRegression.ImportWeights")
	}
	if weights.ModelType != modelName {
		return errors.NewValueError("LinearRegression.ImportWeights", "unexpected model type "+weights.ModelType)
	}

	if v, ok := number(weights.Hyperparameters["learning_rate"]); ok {
		lr.learningRate = v
	}
	if v, ok := number(weights.Hyperparameters["max_iterations"]); ok {
		lr.maxIterations = int(v)
	}

	if !weights.IsFitted {
		lr.Reset()
		lr.fn, lr.nFeatures, lr.trace = nil, 0, nil
		return nil
	}

	n := len(weights.Coefficients)
	params := mat.NewVecDense(n+1, nil)
	params.SetVec(0, weights.Intercept)
	for i, w := range weights.Coefficients {
		params.SetVec(i+1, w)
	}

	fn := lr.factory(n)
	fn.SetParameters(params)

	lr.fn = fn
	lr.nFeatures = n
	lr.trace = nil
	lr.SetFitted()
	return nil
}

// number は JSON 経由（float64）とメモリ上（int）の両方の数値を受け付ける
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
