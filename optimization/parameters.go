package optimization

import (
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Parameters is a fixed-length parameter vector. Its length is set at
// construction and every replacement must keep it.
type Parameters struct {
	vector *mat.VecDense
}

// NewParameters creates a parameter vector holding a copy of values.
func NewParameters(values mat.Vector) *Parameters {
	p := &Parameters{vector: &mat.VecDense{}}
	if values.Len() > 0 {
		p.vector.CloneFromVec(values)
	}
	return p
}

// Vector returns the current values. The returned vector must not be modified.
func (p *Parameters) Vector() mat.Vector {
	return p.vector
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return p.vector.Len()
}

// SetVector replaces the stored values with a copy of values.
// It panics with a *errors.DimensionError if the lengths differ.
func (p *Parameters) SetVector(values mat.Vector) {
	if values.Len() != p.vector.Len() {
		panic(errors.NewDimensionError("Parameters.SetVector", p.vector.Len(), values.Len(), errors.AxisParameters))
	}
	if values.Len() == 0 {
		return
	}
	next := &mat.VecDense{}
	next.CloneFromVec(values)
	p.vector = next
}
