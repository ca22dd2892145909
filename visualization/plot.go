// Package visualization draws fitted functions and error traces with gonum/plot.
package visualization

import (
	"image/color"

	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// 出力画像のサイズ
const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	sampleColor     = color.RGBA{B: 255, A: 255}
	predictionColor = color.RGBA{R: 255, A: 255}
)

// FitPlot builds a plot of the samples of a single-input dataset (blue) and
// of predict evaluated at the same inputs (red).
func FitPlot(ds optimization.Dataset, predict func(x mat.Vector) float64) (*plot.Plot, error) {
	if len(ds) == 0 {
		return nil, errors.NewModelError("visualization.FitPlot", "empty data", errors.ErrEmptyData)
	}
	for _, s := range ds {
		if s.X.Len() != 1 {
			return nil, errors.NewDimensionError("visualization.FitPlot", 1, s.X.Len(), errors.AxisFeatures)
		}
	}

	samples := make(plotter.XYs, len(ds))
	predictions := make(plotter.XYs, len(ds))
	for i, s := range ds {
		x := s.X.AtVec(0)
		samples[i] = plotter.XY{X: x, Y: s.Y}
		predictions[i] = plotter.XY{X: x, Y: predict(s.X)}
	}

	p := plot.New()
	p.Title.Text = "Least squares fit"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if err := addLine(p, "samples", samples, sampleColor); err != nil {
		return nil, err
	}
	if err := addLine(p, "prediction", predictions, predictionColor); err != nil {
		return nil, err
	}
	return p, nil
}

// TracePlot builds a plot of the error recorded at each iteration.
func TracePlot(trace []float64) (*plot.Plot, error) {
	if len(trace) == 0 {
		return nil, errors.NewModelError("visualization.TracePlot", "empty trace", errors.ErrEmptyData)
	}

	points := make(plotter.XYs, len(trace))
	for i, e := range trace {
		points[i] = plotter.XY{X: float64(i + 1), Y: e}
	}

	p := plot.New()
	p.Title.Text = "Mean squared error"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "error"

	if err := addLine(p, "error", points, predictionColor); err != nil {
		return nil, err
	}
	return p, nil
}

// PlotFit saves FitPlot to path. The image format follows the file extension.
func PlotFit(path string, ds optimization.Dataset, predict func(x mat.Vector) float64) error {
	p, err := FitPlot(ds, predict)
	if err != nil {
		return err
	}
	return save(p, path)
}

// PlotErrorTrace saves TracePlot to path.
func PlotErrorTrace(path string, trace []float64) error {
	p, err := TracePlot(trace)
	if err != nil {
		return err
	}
	return save(p, path)
}

func addLine(p *plot.Plot, name string, xys plotter.XYs, c color.Color) error {
	// NaN や Inf を含むと plotter がエラーを返す（発散した学習結果など）
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrapf(err, "visualization: %s", name)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "visualization: save %s", path)
	}
	return nil
}
