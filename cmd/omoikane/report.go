package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/YuminosukeSato/omoikane/datasets"
	"github.com/YuminosukeSato/omoikane/metrics"
	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/regression"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"
)

// newProgressCallback は各イテレーションでプログレスバーを進める。
// 戻り値の finish は学習後に呼ぶ。
func newProgressCallback(w io.Writer, iterations int) (optimization.Callback, func()) {
	bar := progressbar.NewOptions(max(iterations-1, 0),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("fitting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	cb := func(env *optimization.CallbackEnv) {
		_ = bar.Add(1)
	}
	return cb, func() { _ = bar.Finish() }
}

// fitModel builds and fits a LinearRegression with the CLI configuration.
func fitModel(stderr io.Writer, cfg *Config, ds optimization.Dataset) (*regression.LinearRegression, error) {
	opts := []regression.Option{
		regression.WithLearningRate(cfg.LearningRate),
		regression.WithMaxIterations(cfg.Iterations),
	}
	finish := func() {}
	if cfg.Progress && cfg.Iterations > 1 {
		var cb optimization.Callback
		cb, finish = newProgressCallback(stderr, cfg.Iterations)
		opts = append(opts, regression.WithCallback(cb))
	}

	model := regression.NewLinearRegression(opts...)
	err := model.FitDataset(ds)
	finish()
	if err != nil {
		return nil, err
	}
	return model, nil
}

// writeReport はパラメータ表と評価指標を表形式で出力する
func writeReport(w io.Writer, model *regression.LinearRegression, ds optimization.Dataset) error {
	params := tablewriter.NewWriter(w)
	params.Header("Parameter", "Value")
	for i, p := range model.Parameters() {
		name := "intercept"
		if i > 0 {
			name = "w" + strconv.Itoa(i)
		}
		if err := params.Append([]string{name, format(p)}); err != nil {
			return err
		}
	}
	if err := params.Render(); err != nil {
		return err
	}

	X, y, err := datasets.ToMatrix(ds)
	if err != nil {
		return err
	}
	pred, err := model.Predict(X)
	if err != nil {
		return err
	}
	mse, err := metrics.MSE(y, mat.NewVecDense(len(ds), mat.Col(nil, 0, pred)))
	if err != nil {
		return err
	}

	scores := tablewriter.NewWriter(w)
	scores.Header("Metric", "Value")
	rows := [][]string{
		{"samples", strconv.Itoa(len(ds))},
		{"updates", strconv.Itoa(len(model.ErrorTrace()))},
		{"mse", format(mse)},
	}
	// 全ラベルが同じ値のとき R² は定義されない
	if r2, err := model.Score(X, y); err == nil {
		rows = append(rows, []string{"r2", format(r2)})
	}
	if err := scores.Bulk(rows); err != nil {
		return err
	}
	return scores.Render()
}

func format(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
