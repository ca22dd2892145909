// Package metrics は回帰モデルの評価指標を提供する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func checkPair(op string, yTrue, yPred mat.Vector) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueErrorWithCause(op, "empty vector", errors.ErrEmptyData)
	}
	if yPred.Len() != n {
		return errors.NewDimensionError(op, n, yPred.Len(), errors.AxisRows)
	}
	return nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	n := yTrue.Len()
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	n := yTrue.Len()
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred mat.Vector) (float64, error) {
	if err := checkPair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	n := yTrue.Len()
	truth := make([]float64, n)
	for i := range truth {
		truth[i] = yTrue.AtVec(i)
	}
	yMean := stat.Mean(truth, nil)

	var tss, rss float64
	for i, v := range truth {
		tss += (v - yMean) * (v - yMean)
		r := v - yPred.AtVec(i)
		rss += r * r
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}
