// Package dense implements the reference in-memory array backend: a
// contiguous row-major []float64 buffer.
package dense

import (
	"fmt"

	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/parallel"
)

var (
	origin      = array.RegisterOrigin("atlas.dense")
	parallelCfg = parallel.DefaultConfig()
)

// Array is a dense row-major float64 array. The data is always kept
// contiguous in standard layout: SwapAxes physically moves elements
// instead of tracking strides, so a later Reshape reads the array in the
// swapped order.
type Array struct {
	shape []int
	data  []float64
}

var _ array.Array = (*Array)(nil)

// New creates a zero-filled array with the given shape.
func New(shape ...int) (*Array, error) {
	count, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	return &Array{shape: owned, data: make([]float64, count)}, nil
}

// FromSlice creates an array with the given shape, copying the values
// from data in row-major order.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	count, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != count {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d", array.ErrBadShape, shape, count, len(data))
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	values := make([]float64, len(data))
	copy(values, data)
	return &Array{shape: owned, data: values}, nil
}

// Data returns the underlying buffer in row-major order. The slice is
// live: writing to it writes to the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Origin implements array.Array.
func (a *Array) Origin() array.Origin {
	return origin
}

// Shape implements array.Array.
func (a *Array) Shape() []int {
	return a.shape
}

// Reshape implements array.Array. The data is already contiguous, so
// only the shape changes.
func (a *Array) Reshape(shape []int) error {
	count, err := checkShape(shape)
	if err != nil {
		return err
	}
	if count != len(a.data) {
		return fmt.Errorf("%w: can not reshape %v to %v", array.ErrBadShape, a.shape, shape)
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	a.shape = owned
	return nil
}

// SwapAxes implements array.Array by physically transposing the data
// back into standard row-major layout.
func (a *Array) SwapAxes(axis, other int) error {
	rank := len(a.shape)
	if axis < 0 || axis >= rank {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", array.ErrBadAxis, axis, rank)
	}
	if other < 0 || other >= rank {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", array.ErrBadAxis, other, rank)
	}
	if axis == other {
		return nil
	}

	newShape := make([]int, rank)
	copy(newShape, a.shape)
	newShape[axis], newShape[other] = newShape[other], newShape[axis]
	newStrides := rowMajorStrides(newShape)

	// A coordinate decomposed by newStrides indexes the old data once the
	// two swapped slots trade strides.
	srcStrides := rowMajorStrides(a.shape)
	srcStrides[axis], srcStrides[other] = srcStrides[other], srcStrides[axis]

	moved := make([]float64, len(a.data))
	parallel.For(len(moved), func(flat int) {
		remainder := flat
		source := 0
		for dim := 0; dim < rank; dim++ {
			source += (remainder / newStrides[dim]) * srcStrides[dim]
			remainder %= newStrides[dim]
		}
		moved[flat] = a.data[source]
	}, parallelCfg)

	a.shape = newShape
	a.data = moved
	return nil
}

// Clone implements array.Array.
func (a *Array) Clone() (array.Array, error) {
	shape := make([]int, len(a.shape))
	copy(shape, a.shape)
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: shape, data: data}, nil
}

func checkShape(shape []int) (int, error) {
	count := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", array.ErrBadShape, shape)
		}
		count *= dim
	}
	return count, nil
}

// rowMajorStrides computes standard C-order strides: the last axis is
// contiguous. Axes left of a zero-sized axis get a stride of zero, which
// is fine since such arrays hold no elements.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for dim := len(shape) - 1; dim >= 0; dim-- {
		strides[dim] = stride
		stride *= shape[dim]
	}
	return strides
}
