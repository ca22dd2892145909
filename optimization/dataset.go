package optimization

import "gonum.org/v1/gonum/mat"

// Sample is one labeled observation.
type Sample struct {
	X mat.Vector
	Y float64
}

// Dataset is a sequence of labeled observations sharing the same input size.
// The optimizer only reads it.
type Dataset []Sample

// InputSize returns the input size of the first sample, or 0 for an empty dataset.
func (ds Dataset) InputSize() int {
	if len(ds) == 0 {
		return 0
	}
	return ds[0].X.Len()
}
