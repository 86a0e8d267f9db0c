// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides the reference in-memory array backend: a
// contiguous row-major []float64 buffer supporting every array
// operation.
//
// Example:
//
//	data, err := dense.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := block.New(data, samples, nil, properties)
package dense

import (
	"github.com/atlas-ml/atlas/internal/array"
	internaldense "github.com/atlas-ml/atlas/internal/backend/dense"
)

// Array is a dense row-major float64 array.
type Array = internaldense.Array

// Compile-time check that Array implements array.Array.
var _ array.Array = (*Array)(nil)

// New creates a zero-filled array with the given shape.
func New(shape ...int) (*Array, error) {
	return internaldense.New(shape...)
}

// FromSlice creates an array with the given shape, copying the values
// from data in row-major order.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	return internaldense.FromSlice(data, shape...)
}
