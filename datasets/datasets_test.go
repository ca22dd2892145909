package datasets

import (
	"strings"
	"testing"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestFromMatrix(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	y := mat.NewVecDense(3, []float64{10, 20, 30})

	ds, err := FromMatrix(X, y)
	if err != nil {
		t.Fatalf("FromMatrix() error = %v", err)
	}
	if len(ds) != 3 || ds.InputSize() != 2 {
		t.Fatalf("got %d samples of size %d", len(ds), ds.InputSize())
	}
	if ds[1].X.AtVec(0) != 3 || ds[1].X.AtVec(1) != 4 || ds[1].Y != 20 {
		t.Errorf("unexpected sample: %v, %v", mat.Formatted(ds[1].X), ds[1].Y)
	}

	X2, y2, err := ToMatrix(ds)
	if err != nil {
		t.Fatalf("ToMatrix() error = %v", err)
	}
	if !mat.Equal(X, X2) || !mat.Equal(y, y2) {
		t.Error("ToMatrix() did not invert FromMatrix()")
	}
}

func TestFromMatrixErrors(t *testing.T) {
	tests := []struct {
		name  string
		X, y  mat.Matrix
		check func(error) bool
	}{
		{
			name: "row mismatch",
			X:    mat.NewDense(3, 1, []float64{1, 2, 3}),
			y:    mat.NewVecDense(2, []float64{1, 2}),
			check: func(err error) bool {
				var dimErr *errors.DimensionError
				return errors.As(err, &dimErr) && dimErr.Axis == errors.AxisRows
			},
		},
		{
			name: "y not a column",
			X:    mat.NewDense(2, 1, []float64{1, 2}),
			y:    mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			check: func(err error) bool {
				var valErr *errors.ValueError
				return errors.As(err, &valErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMatrix(tt.X, tt.y)
			if err == nil || !tt.check(err) {
				t.Errorf("FromMatrix() error = %v", err)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := `x1, x2, y
# comment
1, 2, 3
4, 5, 9.5
`
	ds, err := ReadCSV(strings.NewReader(input), CSVOptions{Header: true})
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(ds) != 2 || ds.InputSize() != 2 {
		t.Fatalf("got %d samples of size %d", len(ds), ds.InputSize())
	}
	if ds[1].X.AtVec(1) != 5 || ds[1].Y != 9.5 {
		t.Errorf("unexpected sample: %v, %v", mat.Formatted(ds[1].X), ds[1].Y)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    CSVOptions
		wantErr string
	}{
		{"empty", "", CSVOptions{}, "empty data"},
		{"header only", "x,y\n", CSVOptions{Header: true}, "empty data"},
		{"label only", "1\n2\n", CSVOptions{}, "at least one input"},
		{"not a number", "1,a\n", CSVOptions{}, "record 1, field 2"},
		{"ragged", "1,2\n1,2,3\n", CSVOptions{}, "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ReadCSV() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestReadCSVSemicolon(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("1;2\n3;6\n"), CSVOptions{Comma: ';'})
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(ds) != 2 || ds[1].Y != 6 {
		t.Errorf("unexpected dataset: %+v", ds)
	}
}

func TestLineAndLabels(t *testing.T) {
	ds := Line(-2, 1, 1, 2, 3)

	labels := Labels(ds)
	want := []float64{-1, -3, -5}
	for i, w := range want {
		if labels.AtVec(i) != w {
			t.Errorf("label[%d] = %v, want %v", i, labels.AtVec(i), w)
		}
	}
	if err := Validate(ds); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidateMixedSizes(t *testing.T) {
	ds := append(Line(1, 0, 1), Line(1, 0, 2)...)
	ds[1].X = mat.NewVecDense(2, []float64{1, 2})

	var dimErr *errors.DimensionError
	if err := Validate(ds); !errors.As(err, &dimErr) || dimErr.Got != 2 {
		t.Errorf("Validate() error = %v", err)
	}
}
