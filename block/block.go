// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

import (
	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/block"
	"github.com/atlas-ml/atlas/internal/labels"
)

// BasicBlock is a single data array with the metadata describing each of
// its axes: samples along axis 0, one component per intermediate axis,
// and properties along the last axis.
type BasicBlock = block.BasicBlock

// TensorBlock is a block of values and, optionally, gradients of these
// values with respect to named parameters.
type TensorBlock = block.TensorBlock

// New creates a block containing the given data, described by the
// samples, components and properties labels. The block starts without
// gradients.
//
// The array shape must agree with the labels: one axis per label set,
// whose length equals the label count. Construction fails with an error
// matching atlas.ErrInvalidParameter otherwise.
func New(data array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*TensorBlock, error) {
	return block.New(data, samples, components, properties)
}

// NewBasic creates a bare block with no gradient support, validating the
// shape of data against the labels. Most callers want New instead.
func NewBasic(data array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*BasicBlock, error) {
	return block.NewBasic(data, samples, components, properties)
}
