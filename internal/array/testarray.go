package array

import "fmt"

var testOrigin = RegisterOrigin("atlas.TestArray")

// TestArray is a shape-only Array used in tests. It carries no values,
// which makes it handy for exercising metadata validation without a real
// backend.
type TestArray struct {
	shape []int
}

var _ Array = (*TestArray)(nil)

// NewTestArray creates a shape-only array with the given shape.
func NewTestArray(shape ...int) *TestArray {
	owned := make([]int, len(shape))
	copy(owned, shape)
	return &TestArray{shape: owned}
}

// Origin implements Array.
func (a *TestArray) Origin() Origin {
	return testOrigin
}

// Shape implements Array.
func (a *TestArray) Shape() []int {
	return a.shape
}

// Reshape implements Array.
func (a *TestArray) Reshape(shape []int) error {
	if elementCount(shape) != elementCount(a.shape) {
		return fmt.Errorf("%w: can not reshape %v to %v", ErrBadShape, a.shape, shape)
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	a.shape = owned
	return nil
}

// SwapAxes implements Array.
func (a *TestArray) SwapAxes(axis, other int) error {
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", ErrBadAxis, axis, len(a.shape))
	}
	if other < 0 || other >= len(a.shape) {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", ErrBadAxis, other, len(a.shape))
	}
	a.shape[axis], a.shape[other] = a.shape[other], a.shape[axis]
	return nil
}

// Clone implements Array.
func (a *TestArray) Clone() (Array, error) {
	return NewTestArray(a.shape...), nil
}

func elementCount(shape []int) int {
	count := 1
	for _, dim := range shape {
		count *= dim
	}
	return count
}
