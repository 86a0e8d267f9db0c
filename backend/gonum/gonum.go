// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum provides an array backend on top of gonum's mat.Dense.
//
// Matrices have exactly two axes, so this backend can only hold blocks
// without components. Operations asking for any other rank fail with
// array.ErrNotSupported; block logic propagates the failure unchanged.
//
// Example:
//
//	m := mat.NewDense(3, 7, nil)
//	data := gonum.FromDense(m)
//	b, err := block.New(data, samples, nil, properties)
package gonum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/atlas-ml/atlas/internal/array"
	internalgonum "github.com/atlas-ml/atlas/internal/backend/gonum"
)

// Array is a two-axis array backed by a gonum *mat.Dense.
type Array = internalgonum.Array

// Compile-time check that Array implements array.Array.
var _ array.Array = (*Array)(nil)

// New creates a zero-filled rows×cols array. gonum matrices can not be
// empty, so both dimensions must be positive.
func New(rows, cols int) (*Array, error) {
	return internalgonum.New(rows, cols)
}

// FromSlice creates a rows×cols array copying values from data in
// row-major order.
func FromSlice(data []float64, rows, cols int) (*Array, error) {
	return internalgonum.FromSlice(data, rows, cols)
}

// FromDense wraps an existing matrix, taking ownership of it.
func FromDense(m *mat.Dense) *Array {
	return internalgonum.FromDense(m)
}
