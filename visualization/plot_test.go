package visualization

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/omoikane/datasets"
	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestPlotFit(t *testing.T) {
	ds := datasets.Line(-2, 0, 1, 2, 3, 4, 5, 6)
	fn := optimization.NewLinearFunction(1)
	fn.SetParameters(mat.NewVecDense(2, []float64{0, -1.9}))

	path := filepath.Join(t.TempDir(), "result.png")
	if err := PlotFit(path, ds, fn.F); err != nil {
		t.Fatalf("PlotFit() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty image")
	}
}

func TestFitPlotLabels(t *testing.T) {
	p, err := FitPlot(datasets.Line(1, 0, 1, 2), func(x mat.Vector) float64 { return x.AtVec(0) })
	if err != nil {
		t.Fatalf("FitPlot() error = %v", err)
	}
	if p.X.Label.Text != "x" || p.Y.Label.Text != "y" {
		t.Errorf("axis labels = %q, %q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestFitPlotErrors(t *testing.T) {
	identity := func(x mat.Vector) float64 { return x.AtVec(0) }

	if _, err := FitPlot(nil, identity); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("FitPlot(nil) error = %v, want ErrEmptyData", err)
	}

	wide := optimization.Dataset{{X: mat.NewVecDense(2, []float64{1, 2}), Y: 3}}
	var dimErr *errors.DimensionError
	if _, err := FitPlot(wide, identity); !errors.As(err, &dimErr) {
		t.Errorf("FitPlot(wide) error = %v, want DimensionError", err)
	}

	diverged := func(mat.Vector) float64 { return math.NaN() }
	if _, err := FitPlot(datasets.Line(1, 0, 1), diverged); err == nil {
		t.Error("FitPlot() should reject NaN predictions")
	}
}

func TestPlotErrorTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.svg")
	if err := PlotErrorTrace(path, []float64{16, 4, 1, 0.25}); err != nil {
		t.Fatalf("PlotErrorTrace() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat() error = %v", err)
	}

	if err := PlotErrorTrace(path, nil); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("PlotErrorTrace(nil) error = %v, want ErrEmptyData", err)
	}
}
