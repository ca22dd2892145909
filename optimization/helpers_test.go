package optimization

import (
	"testing"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// vec は可変長引数からベクトルを作る。空の場合は長さ0のベクトル。
func vec(values ...float64) *mat.VecDense {
	if len(values) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(values), values)
}

func rawVector(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

func assertVector(t *testing.T, got mat.Vector, want ...float64) {
	t.Helper()
	if !mat.Equal(got, vec(want...)) {
		t.Errorf("vector = %v, want %v", rawVector(got), want)
	}
}

// expectDimensionPanic は fn が期待するサイズのDimensionErrorでpanicすることを確認する
func expectDimensionPanic(t *testing.T, wantMsg string, expected, got int, fn func()) {
	t.Helper()
	err := errors.SafeExecute("test", func() error {
		fn()
		return nil
	})
	if err == nil {
		t.Fatal("expected panic, got none")
	}

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Expected != expected || dimErr.Got != got {
		t.Errorf("DimensionError sizes = (expected %d, got %d), want (%d, %d)", dimErr.Expected, dimErr.Got, expected, got)
	}
	if dimErr.Error() != wantMsg {
		t.Errorf("Error() = %q, want %q", dimErr.Error(), wantMsg)
	}
}
