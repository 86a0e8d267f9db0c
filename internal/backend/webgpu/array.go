//go:build windows

package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/parallel"
)

const elementSize = 4 // float32

// Array is a float32 array resident in a GPU buffer. Only the shape is
// tracked on the CPU; elements stay on the GPU until Data is called.
// Data is kept contiguous in row-major order, SwapAxes rewrites the
// buffer instead of tracking strides.
type Array struct {
	dev    *Device
	buffer *wgpu.Buffer
	shape  []int
	count  int
}

var _ array.Array = (*Array)(nil)

// New creates a zero-filled array with the given shape. WebGPU buffers
// start zero-initialized, so no upload happens.
func New(dev *Device, shape ...int) (*Array, error) {
	count, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	owned := make([]int, len(shape))
	copy(owned, shape)

	a := &Array{dev: dev, shape: owned, count: count}
	if count > 0 {
		a.buffer = dev.device.CreateBuffer(&wgpu.BufferDescriptor{
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
			Size:  uint64(count * elementSize),
		})
	}
	return a, nil
}

// FromSlice creates an array with the given shape, uploading the values
// from data in row-major order.
func FromSlice(dev *Device, data []float32, shape ...int) (*Array, error) {
	count, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != count {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d", array.ErrBadShape, shape, count, len(data))
	}
	owned := make([]int, len(shape))
	copy(owned, shape)

	a := &Array{dev: dev, shape: owned, count: count}
	if count > 0 {
		a.buffer = dev.createBuffer(data)
	}
	return a, nil
}

// Data reads the array back to the CPU in row-major order. The returned
// slice is a copy.
func (a *Array) Data() ([]float32, error) {
	if a.count == 0 {
		return []float32{}, nil
	}
	return a.dev.readBuffer(a.buffer, a.count)
}

// Release frees the GPU buffer. The array must not be used afterwards.
func (a *Array) Release() {
	if a.buffer != nil {
		a.buffer.Release()
		a.buffer = nil
	}
}

// Origin implements array.Array.
func (a *Array) Origin() array.Origin {
	return origin
}

// Shape implements array.Array.
func (a *Array) Shape() []int {
	return a.shape
}

// Reshape implements array.Array. The buffer is already contiguous, so
// only the shape changes.
func (a *Array) Reshape(shape []int) error {
	count, err := checkShape(shape)
	if err != nil {
		return err
	}
	if count != a.count {
		return fmt.Errorf("%w: can not reshape %v to %v", array.ErrBadShape, a.shape, shape)
	}
	owned := make([]int, len(shape))
	copy(owned, shape)
	a.shape = owned
	return nil
}

// SwapAxes implements array.Array. The elements round-trip through the
// CPU: readback, permute, upload into a fresh buffer.
func (a *Array) SwapAxes(axis, other int) error {
	rank := len(a.shape)
	if axis < 0 || axis >= rank {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", array.ErrBadAxis, axis, rank)
	}
	if other < 0 || other >= rank {
		return fmt.Errorf("%w: axis %d for an array with %d dimensions", array.ErrBadAxis, other, rank)
	}
	if axis == other {
		return nil
	}

	newShape := make([]int, rank)
	copy(newShape, a.shape)
	newShape[axis], newShape[other] = newShape[other], newShape[axis]

	if a.count > 0 {
		flat, err := a.dev.readBuffer(a.buffer, a.count)
		if err != nil {
			return err
		}
		moved := permuteSwapped(flat, a.shape, newShape, axis, other)

		buffer := a.dev.createBuffer(moved)
		a.buffer.Release()
		a.buffer = buffer
	}
	a.shape = newShape
	return nil
}

// Clone implements array.Array. The copy happens on the GPU through a
// command encoder, no readback.
func (a *Array) Clone() (array.Array, error) {
	shape := make([]int, len(a.shape))
	copy(shape, a.shape)

	clone := &Array{dev: a.dev, shape: shape, count: a.count}
	if a.count > 0 {
		size := uint64(a.count * elementSize)
		clone.buffer = a.dev.device.CreateBuffer(&wgpu.BufferDescriptor{
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
			Size:  size,
		})

		encoder := a.dev.device.CreateCommandEncoder(nil)
		encoder.CopyBufferToBuffer(a.buffer, 0, clone.buffer, 0, size)
		cmdBuffer := encoder.Finish(nil)
		a.dev.queue.Submit(cmdBuffer)
	}
	return clone, nil
}

// createBuffer creates a GPU buffer and uploads initial data.
func (d *Device) createBuffer(data []float32) *wgpu.Buffer {
	size := uint64(len(data) * elementSize)

	// Create buffer with MappedAtCreation for initial data upload
	buffer := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*float32)(mappedPtr), len(data))
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a pooled staging buffer since storage buffers can't be mapped
// directly.
func (d *Device) readBuffer(srcBuffer *wgpu.Buffer, count int) ([]float32, error) {
	size := uint64(count * elementSize)

	staging := d.pool.acquire(size)

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, staging.buffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	d.queue.Submit(cmdBuffer)

	if err := staging.buffer.MapAsync(d.device, wgpu.MapModeRead, 0, size); err != nil {
		// A buffer that failed to map is not safe to pool.
		staging.buffer.Release()
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*float32)(mappedPtr), count)
	result := make([]float32, count)
	copy(result, mappedSlice)

	staging.buffer.Unmap()
	d.pool.release(staging)

	return result, nil
}

// permuteSwapped reorders a row-major buffer so that two axes of the
// shape trade places, returning data in the new shape's row-major order.
func permuteSwapped(flat []float32, oldShape, newShape []int, axis, other int) []float32 {
	rank := len(oldShape)
	newStrides := rowMajorStrides(newShape)

	// A coordinate decomposed by newStrides indexes the old data once the
	// two swapped slots trade strides.
	srcStrides := rowMajorStrides(oldShape)
	srcStrides[axis], srcStrides[other] = srcStrides[other], srcStrides[axis]

	moved := make([]float32, len(flat))
	parallel.For(len(moved), func(i int) {
		remainder := i
		source := 0
		for dim := 0; dim < rank; dim++ {
			source += (remainder / newStrides[dim]) * srcStrides[dim]
			remainder %= newStrides[dim]
		}
		moved[i] = flat[source]
	}, parallel.DefaultConfig())
	return moved
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for dim := len(shape) - 1; dim >= 0; dim-- {
		strides[dim] = stride
		stride *= shape[dim]
	}
	return strides
}

func checkShape(shape []int) (int, error) {
	count := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", array.ErrBadShape, shape)
		}
		count *= dim
	}
	return count, nil
}
