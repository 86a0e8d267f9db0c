//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Size thresholds for the staging pool categories.
const (
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB
	maxPooled       = 16          // max buffers kept per category
)

// stagingBuffer is a pooled MapRead buffer. The size records the actual
// allocation, which may exceed what the borrower asked for.
type stagingBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
}

// bufferPool reuses staging buffers across readbacks to reduce allocation
// overhead. Buffers are categorized by size.
type bufferPool struct {
	device *wgpu.Device

	mu    sync.Mutex
	pools [3][]*stagingBuffer

	hits   uint64
	misses uint64
}

func newBufferPool(device *wgpu.Device) *bufferPool {
	return &bufferPool{device: device}
}

// acquire returns a staging buffer of at least size bytes, reusing a
// pooled one when available.
func (p *bufferPool) acquire(size uint64) *stagingBuffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := categorize(size)
	for i, sb := range p.pools[category] {
		if sb.size >= size {
			pool := p.pools[category]
			p.pools[category] = append(pool[:i], pool[i+1:]...)
			p.hits++
			return sb
		}
	}

	p.misses++
	return &stagingBuffer{
		buffer: p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
			Size:  size,
		}),
		size: size,
	}
}

// release returns a staging buffer to the pool, freeing it when the
// category is full.
func (p *bufferPool) release(sb *stagingBuffer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := categorize(sb.size)
	if len(p.pools[category]) >= maxPooled {
		sb.buffer.Release()
		return
	}
	p.pools[category] = append(p.pools[category], sb)
}

// clear frees every pooled buffer. Called when the device is released.
func (p *bufferPool) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.pools {
		for _, sb := range p.pools[i] {
			sb.buffer.Release()
		}
		p.pools[i] = nil
	}
}

// stats reports pool hits and misses.
func (p *bufferPool) stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

func categorize(size uint64) int {
	switch {
	case size < smallThreshold:
		return 0
	case size < mediumThreshold:
		return 1
	default:
		return 2
	}
}
