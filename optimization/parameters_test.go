package optimization

import (
	"testing"
)

func TestParametersSetVector(t *testing.T) {
	parameters := NewParameters(vec(1, 2, 3))

	assertVector(t, parameters.Vector(), 1, 2, 3)
	parameters.SetVector(vec(3, 2, 1))
	assertVector(t, parameters.Vector(), 3, 2, 1)
}

func TestParametersSetVectorWrongSize(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMsg string
	}{
		{
			name:    "not enough parameters",
			values:  []float64{3, 2},
			wantMsg: "omoikane: Parameters.SetVector: dimension mismatch on axis 2 (parameters). Expected 3, got 2",
		},
		{
			name:    "too many parameters",
			values:  []float64{3, 2, 1, 0},
			wantMsg: "omoikane: Parameters.SetVector: dimension mismatch on axis 2 (parameters). Expected 3, got 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parameters := NewParameters(vec(1, 2, 3))

			expectDimensionPanic(t, tt.wantMsg, 3, len(tt.values), func() {
				parameters.SetVector(vec(tt.values...))
			})

			// 失敗した置き換えは値を変更しない
			assertVector(t, parameters.Vector(), 1, 2, 3)
		})
	}
}

func TestParametersOwnTheirValues(t *testing.T) {
	initial := vec(1, 2)
	parameters := NewParameters(initial)
	initial.SetVec(0, 100)
	assertVector(t, parameters.Vector(), 1, 2)

	replacement := vec(5, 6)
	parameters.SetVector(replacement)
	replacement.SetVec(1, 100)
	assertVector(t, parameters.Vector(), 5, 6)

	if parameters.Len() != 2 {
		t.Errorf("Len() = %d, want 2", parameters.Len())
	}
}
