//go:build windows

// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides a GPU-resident array backend.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
//
// Arrays hold float32 elements in GPU buffers. Shape bookkeeping stays on
// the CPU; cloning copies buffer to buffer on the GPU, and only Data and
// SwapAxes read elements back.
//
// Example:
//
//	dev, err := webgpu.NewDevice()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Release()
//
//	data, err := webgpu.FromSlice(dev, values, 3, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer data.Release()
package webgpu

import (
	"github.com/atlas-ml/atlas/internal/array"
	internalwebgpu "github.com/atlas-ml/atlas/internal/backend/webgpu"
)

// Device owns the WebGPU instance, adapter, device and queue shared by
// every array created through it.
type Device = internalwebgpu.Device

// Array is a float32 array resident in a GPU buffer.
type Array = internalwebgpu.Array

// Compile-time check that Array implements array.Array.
var _ array.Array = (*Array)(nil)

// NewDevice initializes WebGPU and requests a high-performance adapter.
// Returns an error if WebGPU is not available on this system. Call
// Release when done to free GPU resources.
func NewDevice() (*Device, error) {
	return internalwebgpu.NewDevice()
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// New creates a zero-filled array with the given shape.
func New(dev *Device, shape ...int) (*Array, error) {
	return internalwebgpu.New(dev, shape...)
}

// FromSlice creates an array with the given shape, uploading the values
// from data in row-major order.
func FromSlice(dev *Device, data []float32, shape ...int) (*Array, error) {
	return internalwebgpu.FromSlice(dev, data, shape...)
}
