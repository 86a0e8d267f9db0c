// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensormap provides the keyed collection of blocks.
//
// # Overview
//
// A TensorMap binds an outer Labels instance to a list of blocks: key
// row i identifies block i. Blocks are looked up by position or by key
// row, and bulk operations such as ComponentsToProperties apply to every
// block with all-or-nothing semantics.
//
// # Basic Usage
//
//	b, _ := block.New(data, samples, nil, properties)
//	tensor, err := tensormap.New(labels.Single(), []*block.TensorBlock{b})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	found, ok := tensor.BlockByKey([]labels.LabelValue{0})
package tensormap
