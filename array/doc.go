// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array defines the storage abstraction behind data blocks.
//
// # Overview
//
// Blocks never read or write the numbers inside an Array: they validate
// shapes against labels and ask the array to move axes around. Any
// storage able to answer the five Array operations (origin, shape,
// reshape, swap-axes, clone) can back a block.
//
// Every backend registers an Origin once and stamps its arrays with it.
// Origin equality is the only compatibility test block logic performs
// between two arrays, for example between values and their gradients.
//
// Operations a backend can not perform fail with a typed error wrapping
// ErrNotSupported, ErrBadShape or ErrBadAxis, and block logic propagates
// those failures unchanged.
//
// The backend/dense, backend/gonum and backend/webgpu packages provide
// ready-made implementations.
package array
