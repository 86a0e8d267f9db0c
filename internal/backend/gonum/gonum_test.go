package gonum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/atlas-ml/atlas/internal/array"
)

func TestNew(t *testing.T) {
	a, err := New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, "atlas.gonum", array.OriginName(a.Origin()))

	_, err = New(0, 3)
	assert.ErrorIs(t, err, array.ErrBadShape)
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, a.Dense().At(1, 2))

	_, err = FromSlice([]float64{1, 2, 3}, 2, 3)
	assert.ErrorIs(t, err, array.ErrBadShape)
}

func TestSwapAxesTransposes(t *testing.T) {
	a, err := FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
	require.NoError(t, err)

	require.NoError(t, a.SwapAxes(0, 1))
	assert.Equal(t, []int{3, 2}, a.Shape())
	assert.Equal(t, 4.0, a.Dense().At(0, 1))
	assert.Equal(t, 3.0, a.Dense().At(2, 0))

	assert.ErrorIs(t, a.SwapAxes(0, 2), array.ErrBadAxis)
	require.NoError(t, a.SwapAxes(1, 1))
}

func TestReshape(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	require.NoError(t, a.Reshape([]int{3, 2}))
	assert.Equal(t, []int{3, 2}, a.Shape())
	assert.Equal(t, mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}), a.Dense())

	err = a.Reshape([]int{6})
	assert.ErrorIs(t, err, array.ErrNotSupported)

	err = a.Reshape([]int{1, 2, 3})
	assert.ErrorIs(t, err, array.ErrNotSupported)

	err = a.Reshape([]int{4, 2})
	assert.ErrorIs(t, err, array.ErrBadShape)
}

func TestClone(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	cloned, err := a.Clone()
	require.NoError(t, err)

	clone, ok := cloned.(*Array)
	require.True(t, ok)
	assert.Equal(t, a.Origin(), clone.Origin())

	clone.Dense().Set(0, 0, 42)
	assert.Equal(t, 1.0, a.Dense().At(0, 0))
}
