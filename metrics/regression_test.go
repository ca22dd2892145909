package metrics

import (
	"math"
	"strings"
	"testing"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type metricFunc func(yTrue, yPred mat.Vector) (float64, error)

func isEmptyData(err error) bool {
	return errors.Is(err, errors.ErrEmptyData)
}

func isRowMismatch(err error) bool {
	var dimErr *errors.DimensionError
	return errors.As(err, &dimErr) && dimErr.Axis == errors.AxisRows
}

// 共通の入力検証は全ての指標で同じ結果になる
func TestMetricsRejectBadInput(t *testing.T) {
	metrics := map[string]metricFunc{
		"MSE":     MSE,
		"RMSE":    RMSE,
		"MAE":     MAE,
		"R2Score": R2Score,
	}
	tests := []struct {
		name         string
		yTrue, yPred mat.Vector
		check        func(error) bool
	}{
		{"empty", &mat.VecDense{}, &mat.VecDense{}, isEmptyData},
		{"shorter prediction", mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(2, []float64{1, 2}), isRowMismatch},
		{"longer prediction", mat.NewVecDense(1, []float64{1}), mat.NewVecDense(2, []float64{1, 2}), isRowMismatch},
	}

	for name, metric := range metrics {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				_, err := metric(tt.yTrue, tt.yPred)
				if err == nil || !tt.check(err) {
					t.Errorf("%s() error = %v", name, err)
				}
			})
		}
	}

	var dimErr *errors.DimensionError
	_, err := MSE(mat.NewVecDense(3, nil), mat.NewVecDense(2, nil))
	if !errors.As(err, &dimErr) || dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("MSE() error = %v, want expected 3 got 2", err)
	}
}

func TestRegressionMetrics(t *testing.T) {
	// 列ビューは VecDense 以外の mat.Vector
	table := mat.NewDense(4, 2, []float64{
		1, 1.5,
		2, 2.5,
		3, 2.5,
		4, 3.5,
	})
	truthView, predView := table.ColView(0), table.ColView(1)

	tests := []struct {
		name         string
		metric       metricFunc
		yTrue, yPred mat.Vector
		want         float64
	}{
		{"MSE perfect", MSE, mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(3, []float64{1, 2, 3}), 0},
		{"MSE column views", MSE, truthView, predView, 0.25},
		{"MSE larger errors", MSE, mat.NewVecDense(3, []float64{10, 20, 30}), mat.NewVecDense(3, []float64{12, 18, 33}), 17.0 / 3},
		{"RMSE unit offset", RMSE, mat.NewVecDense(4, nil), mat.NewVecDense(4, []float64{1, 1, 1, 1}), 1},
		{"RMSE column views", RMSE, truthView, predView, 0.5},
		{"MAE mixed signs", MAE, mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(3, []float64{2, 0, 3}), 1},
		{"MAE column views", MAE, truthView, predView, 0.5},
		{"R2 perfect", R2Score, mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(3, []float64{1, 2, 3}), 1},
		// tss = 5, rss = 1
		{"R2 column views", R2Score, truthView, predView, 0.8},
		{"R2 mean prediction", R2Score, mat.NewVecDense(3, []float64{1, 2, 3}), mat.NewVecDense(3, []float64{2, 2, 2}), 0},
		{"R2 worse than mean", R2Score, mat.NewVecDense(2, []float64{1, 3}), mat.NewVecDense(2, []float64{3, 1}), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.metric(tt.yTrue, tt.yPred)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2ScoreConstantLabels(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{5, 5, 5})

	_, err := R2Score(yTrue, mat.NewVecDense(3, []float64{5, 5, 5}))
	if err == nil || !strings.Contains(err.Error(), "total sum of squares is zero") {
		t.Errorf("R2Score() error = %v, want zero variance error", err)
	}

	// 他の指標は定数ラベルでも計算できる
	if mse, err := MSE(yTrue, mat.NewVecDense(3, []float64{4, 5, 6})); err != nil || math.Abs(mse-2.0/3) > 1e-12 {
		t.Errorf("MSE() = %v, %v", mse, err)
	}
}
