// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package block provides data blocks: one array of values, labels for
// every axis, and optionally gradients of the values with respect to
// named parameters.
//
// # Overview
//
// A block's array always has samples along axis 0, one component per
// intermediate axis, and properties along the last axis. Construction
// validates that the array shape agrees with the label counts, axis by
// axis, and fails with atlas.ErrInvalidParameter naming the mismatch.
//
// Gradients attached with AddGradient are themselves blocks: their
// samples start with a "sample" column indexing back into the values
// samples, their trailing components must equal the values components,
// and they share the values' property labels.
//
// ComponentsToProperties reshapes a block (and all its gradients) by
// moving one component axis into the property axis, replacing the
// property labels with the Cartesian product of the moved component and
// the old properties.
//
// # Basic Usage
//
//	samples, _ := labels.Range("structure", 3)
//	properties, _ := labels.Range("n", 7)
//
//	data, _ := dense.New(3, 7)
//	b, err := block.New(data, samples, nil, properties)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gradSamples, _ := labels.Range("sample", 3)
//	gradData, _ := dense.New(3, 7)
//	err = b.AddGradient("positions", gradData, gradSamples, nil)
package block
