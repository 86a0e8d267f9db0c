// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package atlas is a storage engine for labeled, block-sparse N-dimensional
// numerical data, as used in atomistic machine learning.
//
// # Overview
//
// Atlas stores tensor-like quantities (values and their gradients with
// respect to external parameters) where every axis is annotated by named,
// integer-keyed metadata instead of bare indices. The engine owns shape,
// layout, and metadata consistency; it never computes on array contents.
//
// The module is split into small packages:
//
//   - labels: the immutable named-tuple index (Labels) and its builder
//   - array: the backend-agnostic array interface and origin registry
//   - block: BasicBlock and TensorBlock, binding arrays to their labels
//   - tensormap: the keyed collection of blocks
//   - backend/dense, backend/gonum, backend/webgpu: concrete array backends
//
// This root package only declares the error taxonomy shared by all of them.
//
// # Basic Usage
//
//	samples, _ := labels.Range("structure", 3)
//	properties, _ := labels.Range("n", 2)
//
//	data, _ := dense.New(3, 2)
//	b, err := block.New(data, samples, nil, properties)
//	if err != nil {
//	    log.Fatal(err)
//	}
package atlas
