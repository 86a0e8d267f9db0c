// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensormap

import (
	"github.com/atlas-ml/atlas/internal/block"
	"github.com/atlas-ml/atlas/internal/labels"
	"github.com/atlas-ml/atlas/internal/tensormap"
)

// TensorMap is a collection of blocks keyed by rows of an outer Labels
// instance: key row i identifies block i.
type TensorMap = tensormap.TensorMap

// New creates a tensor map from the given keys and blocks. There must be
// exactly one key entry per block.
//
// Example:
//
//	tensor, err := tensormap.New(labels.Single(), []*block.TensorBlock{b})
func New(keys *labels.Labels, blocks []*block.TensorBlock) (*TensorMap, error) {
	return tensormap.New(keys, blocks)
}
