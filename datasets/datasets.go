// Package datasets builds optimization.Dataset values from matrices, CSV
// input and synthetic lines.
package datasets

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FromMatrix pairs each row of X with the matching entry of the column vector y.
func FromMatrix(X, y mat.Matrix) (optimization.Dataset, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewModelError("datasets.FromMatrix", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return nil, errors.NewDimensionError("datasets.FromMatrix", r, ry, errors.AxisRows)
	}
	if cy != 1 {
		return nil, errors.NewValueError("datasets.FromMatrix", "y must be a column vector")
	}

	ds := make(optimization.Dataset, r)
	for i := 0; i < r; i++ {
		ds[i] = optimization.Sample{X: mat.NewVecDense(c, mat.Row(nil, i, X)), Y: y.At(i, 0)}
	}
	return ds, nil
}

// ToMatrix is the inverse of FromMatrix.
func ToMatrix(ds optimization.Dataset) (*mat.Dense, *mat.VecDense, error) {
	if len(ds) == 0 {
		return nil, nil, errors.NewModelError("datasets.ToMatrix", "empty data", errors.ErrEmptyData)
	}
	if err := Validate(ds); err != nil {
		return nil, nil, err
	}
	c := ds.InputSize()
	X := mat.NewDense(len(ds), c, nil)
	y := mat.NewVecDense(len(ds), nil)
	for i, s := range ds {
		for j := 0; j < c; j++ {
			X.Set(i, j, s.X.AtVec(j))
		}
		y.SetVec(i, s.Y)
	}
	return X, y, nil
}

// Validate checks that every sample has the input size of the first one.
func Validate(ds optimization.Dataset) error {
	want := ds.InputSize()
	for _, s := range ds {
		if s.X.Len() != want {
			return errors.NewDimensionError("datasets.Validate", want, s.X.Len(), errors.AxisFeatures)
		}
	}
	return nil
}

// Labels returns the labels of ds as a vector.
func Labels(ds optimization.Dataset) *mat.VecDense {
	if len(ds) == 0 {
		return &mat.VecDense{}
	}
	y := mat.NewVecDense(len(ds), nil)
	for i, s := range ds {
		y.SetVec(i, s.Y)
	}
	return y
}

// Line returns the samples (x, slope*x + intercept) for every x in xs.
func Line(slope, intercept float64, xs ...float64) optimization.Dataset {
	ds := make(optimization.Dataset, len(xs))
	for i, x := range xs {
		ds[i] = optimization.Sample{X: mat.NewVecDense(1, []float64{x}), Y: slope*x + intercept}
	}
	return ds
}

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// Header skips the first record.
	Header bool
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// ReadCSV reads numeric records whose last field is the label and whose
// other fields are the inputs. Every record must have the same number of fields.
func ReadCSV(r io.Reader, opts CSVOptions) (optimization.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "datasets.ReadCSV")
	}
	if opts.Header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.NewModelError("datasets.ReadCSV", "empty data", errors.ErrEmptyData)
	}
	if len(records[0]) < 2 {
		return nil, errors.NewValueError("datasets.ReadCSV", "records need at least one input and a label")
	}

	ds := make(optimization.Dataset, len(records))
	for i, record := range records {
		values := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "datasets.ReadCSV: record %d, field %d", i+1, j+1)
			}
			values[j] = v
		}
		n := len(values) - 1
		ds[i] = optimization.Sample{X: mat.NewVecDense(n, values[:n]), Y: values[n]}
	}
	return ds, nil
}
