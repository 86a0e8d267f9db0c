// Package array defines the storage abstraction used by data blocks.
//
// Blocks never look at the numbers inside an Array. They only need the
// metadata operations below to validate shapes against labels and to move
// axes around, so any storage (CPU slices, gonum matrices, GPU buffers,
// memory-mapped files) can back a block by implementing Array.
package array

import "errors"

// Errors returned by Array implementations. Callers match them with
// errors.Is; implementations wrap them with a message describing the
// offending call.
var (
	// ErrNotSupported is returned when a backend cannot perform an
	// operation at all, for example reshaping to a rank the storage
	// cannot represent.
	ErrNotSupported = errors.New("operation not supported by this array")

	// ErrBadShape is returned when a requested shape does not match the
	// array, for example reshaping to a different total element count.
	ErrBadShape = errors.New("invalid shape for this array")

	// ErrBadAxis is returned when an axis index is out of range for the
	// array's current shape.
	ErrBadAxis = errors.New("axis out of range for this array")
)

// Array is an opaque N-dimensional data container. The contained values
// are never interpreted here, only the shape is.
//
// Implementations must give every axis an independent length and must
// return shapes that callers can read without affecting the array (either
// a fresh slice or one the implementation never mutates).
type Array interface {
	// Origin identifies which backend created this array, see
	// RegisterOrigin.
	Origin() Origin

	// Shape returns the current shape of the array. The returned slice
	// must not be mutated by the caller.
	Shape() []int

	// Reshape changes the shape of the array to the given one. The new
	// shape must describe the same total number of elements, otherwise
	// implementations return an error wrapping ErrBadShape.
	Reshape(shape []int) error

	// SwapAxes exchanges two axes of the array, moving the data so that
	// element [.., i, .., j, ..] becomes element [.., j, .., i, ..].
	// Implementations return an error wrapping ErrBadAxis when an axis
	// is out of range.
	SwapAxes(axis, other int) error

	// Clone returns a deep copy of the array, with the same origin,
	// shape and values. Mutating the copy must not affect the original.
	Clone() (Array, error)
}
