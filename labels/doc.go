// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package labels provides the immutable named-tuple index that annotates
// every axis of a data block.
//
// # Overview
//
// A Labels instance is a small relation: named columns, unique rows of
// 32-bit integer tuples, insertion order preserved. Rows double as keys,
// with average constant-time reverse lookup from a tuple to its position.
//
// Labels are built once through a Builder and never change afterwards,
// which makes sharing one instance across many blocks safe without any
// locking.
//
// # Basic Usage
//
//	builder, err := labels.NewBuilder([]string{"structure", "atom"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	builder.Add([]labels.LabelValue{0, 0})
//	builder.Add([]labels.LabelValue{0, 1})
//	l := builder.Finish()
//
//	position, ok := l.Position([]labels.LabelValue{0, 1}) // 1, true
package labels
