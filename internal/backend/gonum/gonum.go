// Package gonum adapts gonum's mat.Dense to the array interface.
//
// Matrices have exactly two axes, so this backend cannot represent every
// shape: asking for anything else fails with array.ErrNotSupported. This
// is the intended behavior for capability-restricted storage, callers
// see a typed error instead of silently wrong data.
package gonum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/atlas-ml/atlas/internal/array"
)

var origin = array.RegisterOrigin("atlas.gonum")

// Array is a two-axis array backed by a gonum *mat.Dense.
type Array struct {
	m *mat.Dense
}

var _ array.Array = (*Array)(nil)

// New creates a zero-filled rows×cols array. gonum matrices cannot be
// empty, so both dimensions must be positive.
func New(rows, cols int) (*Array, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: gonum matrices need positive dimensions, got %dx%d", array.ErrBadShape, rows, cols)
	}
	return &Array{m: mat.NewDense(rows, cols, nil)}, nil
}

// FromSlice creates a rows×cols array copying values from data in
// row-major order.
func FromSlice(data []float64, rows, cols int) (*Array, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: gonum matrices need positive dimensions, got %dx%d", array.ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: shape %dx%d requires %d elements, got %d", array.ErrBadShape, rows, cols, rows*cols, len(data))
	}
	values := make([]float64, len(data))
	copy(values, data)
	return &Array{m: mat.NewDense(rows, cols, values)}, nil
}

// FromDense wraps an existing matrix, taking ownership of it.
func FromDense(m *mat.Dense) *Array {
	return &Array{m: m}
}

// Dense returns the underlying matrix. It is live: mutations are visible
// through the array.
func (a *Array) Dense() *mat.Dense {
	return a.m
}

// Origin implements array.Array.
func (a *Array) Origin() array.Origin {
	return origin
}

// Shape implements array.Array.
func (a *Array) Shape() []int {
	rows, cols := a.m.Dims()
	return []int{rows, cols}
}

// Reshape implements array.Array. Only two-axis target shapes are
// representable.
func (a *Array) Reshape(shape []int) error {
	if len(shape) != 2 {
		return fmt.Errorf("%w: gonum arrays always have exactly two axes, can not reshape to %v", array.ErrNotSupported, shape)
	}
	rows, cols := shape[0], shape[1]
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: gonum matrices need positive dimensions, got %dx%d", array.ErrBadShape, rows, cols)
	}
	currentRows, currentCols := a.m.Dims()
	if rows*cols != currentRows*currentCols {
		return fmt.Errorf("%w: can not reshape %dx%d to %dx%d", array.ErrBadShape, currentRows, currentCols, rows, cols)
	}

	flat := make([]float64, 0, rows*cols)
	for i := 0; i < currentRows; i++ {
		flat = append(flat, a.m.RawRowView(i)...)
	}
	a.m = mat.NewDense(rows, cols, flat)
	return nil
}

// SwapAxes implements array.Array. Swapping the two axes is a transpose.
func (a *Array) SwapAxes(axis, other int) error {
	if axis < 0 || axis > 1 {
		return fmt.Errorf("%w: axis %d for an array with 2 dimensions", array.ErrBadAxis, axis)
	}
	if other < 0 || other > 1 {
		return fmt.Errorf("%w: axis %d for an array with 2 dimensions", array.ErrBadAxis, other)
	}
	if axis == other {
		return nil
	}
	a.m = mat.DenseCopyOf(a.m.T())
	return nil
}

// Clone implements array.Array.
func (a *Array) Clone() (array.Array, error) {
	return &Array{m: mat.DenseCopyOf(a.m)}, nil
}
