//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, 0, categorize(16))
	assert.Equal(t, 0, categorize(smallThreshold-1))
	assert.Equal(t, 1, categorize(smallThreshold))
	assert.Equal(t, 1, categorize(mediumThreshold-1))
	assert.Equal(t, 2, categorize(mediumThreshold))
}

func TestBufferPoolReuse(t *testing.T) {
	dev := newTestDevice(t)

	first := dev.pool.acquire(256)
	require.NotNil(t, first.buffer)
	dev.pool.release(first)

	// A smaller request in the same category reuses the pooled buffer.
	second := dev.pool.acquire(128)
	assert.Same(t, first, second)

	hits, misses := dev.pool.stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	dev.pool.release(second)
}

func TestBufferPoolReadback(t *testing.T) {
	dev := newTestDevice(t)

	a, err := FromSlice(dev, []float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	defer a.Release()

	// Repeated readbacks reuse the staging buffer.
	for range 3 {
		got, err := a.Data()
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2, 3, 4}, got)
	}

	hits, misses := dev.pool.stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(1), misses)
}
