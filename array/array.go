// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/atlas-ml/atlas/internal/array"
)

// Array is an opaque N-dimensional data container. Block logic only uses
// the metadata operations below and never touches the elements.
type Array = array.Array

// Origin identifies the backend that created an array.
type Origin = array.Origin

// Errors returned by Array implementations, matched with errors.Is.
var (
	// ErrNotSupported reports an operation the backend can not perform
	// at all, for example reshaping to a rank the storage can not
	// represent.
	ErrNotSupported = array.ErrNotSupported

	// ErrBadShape reports a shape that does not fit the array, for
	// example reshaping to a different total element count.
	ErrBadShape = array.ErrBadShape

	// ErrBadAxis reports an axis index out of range for the array's
	// current shape.
	ErrBadAxis = array.ErrBadAxis
)

// RegisterOrigin registers a new array origin under the given name and
// returns its identifier. Backends call this once, typically from a
// package-level variable, and stamp every array they create with the
// result.
func RegisterOrigin(name string) Origin {
	return array.RegisterOrigin(name)
}

// OriginName returns the name an origin was registered under, or a
// placeholder for origins that were never registered.
func OriginName(origin Origin) string {
	return array.OriginName(origin)
}
