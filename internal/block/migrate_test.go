package block

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-ml/atlas"
	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/backend/dense"
	"github.com/atlas-ml/atlas/internal/labels"
)

func labelsFrom(t *testing.T, names []string, rows [][]labels.LabelValue) *labels.Labels {
	t.Helper()
	builder, err := labels.NewBuilder(names)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, builder.Add(row))
	}
	return builder.Finish()
}

func full(value float64, count int) []float64 {
	data := make([]float64, count)
	for i := range data {
		data[i] = value
	}
	return data
}

func denseData(t *testing.T, block *BasicBlock) *dense.Array {
	t.Helper()
	data, ok := block.Data().(*dense.Array)
	require.True(t, ok)
	return data
}

func TestComponentsToPropertiesOneComponent(t *testing.T) {
	values, err := dense.FromSlice(full(1.0, 18), 3, 2, 3)
	require.NoError(t, err)

	component := exampleLabels(t, "components", 2)
	block, err := New(values,
		exampleLabels(t, "samples", 3),
		[]*labels.Labels{component},
		exampleLabels(t, "properties", 3),
	)
	require.NoError(t, err)

	gradientData, err := dense.FromSlice(full(11.0, 12), 2, 2, 3)
	require.NoError(t, err)
	gradientSamples := labelsFrom(t, []string{"sample", "parameter"},
		[][]labels.LabelValue{{0, 2}, {1, 2}})
	require.NoError(t, block.AddGradient("parameter", gradientData, gradientSamples,
		[]*labels.Labels{component}))

	require.NoError(t, block.ComponentsToProperties([]string{"components"}))

	assert.Equal(t, []string{"samples"}, block.Values().Samples().Names())
	assert.Equal(t, 3, block.Values().Samples().Count())
	assert.Empty(t, block.Values().Components())

	properties := block.Values().Properties()
	assert.Equal(t, []string{"components", "properties"}, properties.Names())
	require.Equal(t, 6, properties.Count())
	expected := [][]labels.LabelValue{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	for i, row := range expected {
		assert.Equal(t, row, properties.Row(i))
	}

	data := denseData(t, block.Values())
	assert.Equal(t, []int{3, 6}, data.Shape())
	assert.Equal(t, full(1.0, 18), data.Data())

	gradient, ok := block.Gradient("parameter")
	require.True(t, ok)
	assert.Equal(t, []string{"sample", "parameter"}, gradient.Samples().Names())
	assert.Equal(t, []labels.LabelValue{0, 2}, gradient.Samples().Row(0))
	assert.Equal(t, []labels.LabelValue{1, 2}, gradient.Samples().Row(1))
	assert.Empty(t, gradient.Components())
	assert.Same(t, properties, gradient.Properties())

	gradientArray := denseData(t, gradient)
	assert.Equal(t, []int{2, 6}, gradientArray.Shape())
	assert.Equal(t, full(11.0, 12), gradientArray.Data())
}

func TestComponentsToPropertiesMultipleComponents(t *testing.T) {
	values, err := dense.FromSlice([]float64{
		1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
		-1, 1, -2, 2, -3, 3, -4, 4, -5, 5, -6, 6,
	}, 2, 2, 3, 2)
	require.NoError(t, err)

	components := []*labels.Labels{
		exampleLabels(t, "component_1", 2),
		exampleLabels(t, "component_2", 3),
	}
	block, err := New(values,
		exampleLabels(t, "samples", 2),
		components,
		exampleLabels(t, "properties", 2),
	)
	require.NoError(t, err)

	gradientData, err := dense.FromSlice(full(11.0, 36), 3, 2, 3, 2)
	require.NoError(t, err)
	gradientSamples := labelsFrom(t, []string{"sample", "parameter"},
		[][]labels.LabelValue{{0, 2}, {0, 3}, {1, 2}})
	require.NoError(t, block.AddGradient("parameter", gradientData, gradientSamples, components))

	require.NoError(t, block.ComponentsToProperties([]string{"component_1"}))

	remaining := block.Values().Components()
	require.Len(t, remaining, 1)
	assert.Equal(t, []string{"component_2"}, remaining[0].Names())
	assert.Equal(t, 3, remaining[0].Count())

	properties := block.Values().Properties()
	assert.Equal(t, []string{"component_1", "properties"}, properties.Names())
	require.Equal(t, 4, properties.Count())
	expected := [][]labels.LabelValue{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	}
	for i, row := range expected {
		assert.Equal(t, row, properties.Row(i))
	}

	data := denseData(t, block.Values())
	assert.Equal(t, []int{2, 3, 4}, data.Shape())
	assert.Equal(t, []float64{
		1, 1, 4, 4, 2, 2, 5, 5, 3, 3, 6, 6,
		-1, 1, -4, 4, -2, 2, -5, 5, -3, 3, -6, 6,
	}, data.Data())

	gradient, ok := block.Gradient("parameter")
	require.True(t, ok)
	assert.Equal(t, 3, gradient.Samples().Count())
	gradientArray := denseData(t, gradient)
	assert.Equal(t, []int{3, 3, 4}, gradientArray.Shape())
	assert.Equal(t, full(11.0, 36), gradientArray.Data())
}

func TestComponentsToPropertiesEmptyDimensions(t *testing.T) {
	component := exampleLabels(t, "component", 2)
	properties := exampleLabels(t, "properties", 3)
	block, err := New(array.NewTestArray(4, 2, 3),
		exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	require.NoError(t, block.ComponentsToProperties(nil))
	require.NoError(t, block.ComponentsToProperties([]string{}))

	assert.Same(t, properties, block.Values().Properties())
	assert.Len(t, block.Values().Components(), 1)
}

func TestComponentsToPropertiesMissingComponent(t *testing.T) {
	component := exampleLabels(t, "component", 2)
	properties := exampleLabels(t, "properties", 3)
	block, err := New(array.NewTestArray(4, 2, 3),
		exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	err = block.ComponentsToProperties([]string{"missing"})
	assert.EqualError(t, err, "invalid parameter: unable to find [missing] in the components")
	assert.ErrorIs(t, err, atlas.ErrInvalidParameter)

	// nothing moved
	assert.Same(t, properties, block.Values().Properties())
	assert.Equal(t, []int{4, 2, 3}, block.Values().Data().Shape())
}

// A gradient may carry extra leading components the values do not have.
// Moving such a component must fail on the values lookup and leave the
// gradient untouched.
func TestComponentsToPropertiesGradientOnlyComponent(t *testing.T) {
	component := exampleLabels(t, "component", 2)
	extra := exampleLabels(t, "extra", 4)
	properties := exampleLabels(t, "properties", 3)

	block, err := New(array.NewTestArray(4, 2, 3),
		exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	gradientSamples := exampleLabels(t, "sample", 5)
	require.NoError(t, block.AddGradient("parameter", array.NewTestArray(5, 4, 2, 3),
		gradientSamples, []*labels.Labels{extra, component}))

	err = block.ComponentsToProperties([]string{"extra"})
	assert.EqualError(t, err, "invalid parameter: unable to find [extra] in the components")

	gradient, ok := block.Gradient("parameter")
	require.True(t, ok)
	assert.Len(t, gradient.Components(), 2)
	assert.Equal(t, []int{5, 4, 2, 3}, gradient.Data().Shape())
}

// A component name colliding with a property name makes the Cartesian
// product labels impossible to build. This must be caught before any
// array is touched.
func TestComponentsToPropertiesNameCollision(t *testing.T) {
	component := exampleLabels(t, "p", 2)
	properties := exampleLabels(t, "p", 3)
	block, err := New(array.NewTestArray(4, 2, 3),
		exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	err = block.ComponentsToProperties([]string{"p"})
	assert.EqualError(t, err, "invalid parameter: labels names must be unique, got 'p' multiple times")

	assert.Same(t, properties, block.Values().Properties())
	assert.Equal(t, []int{4, 2, 3}, block.Values().Data().Shape())
	assert.Len(t, block.Values().Components(), 1)
}

type noSwapArray struct {
	*array.TestArray
}

func (a *noSwapArray) SwapAxes(axis, other int) error {
	return fmt.Errorf("%w: swap_axes is disabled for this array", array.ErrNotSupported)
}

// Array failures during the migration are backend errors: they must
// surface as-is instead of being reported as invalid parameters.
func TestComponentsToPropertiesArrayFailure(t *testing.T) {
	component := exampleLabels(t, "component", 2)
	properties := exampleLabels(t, "properties", 3)
	data := &noSwapArray{array.NewTestArray(4, 2, 3)}
	block, err := New(data, exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	err = block.ComponentsToProperties([]string{"component"})
	require.Error(t, err)
	assert.ErrorIs(t, err, array.ErrNotSupported)
	assert.NotErrorIs(t, err, atlas.ErrInvalidParameter)

	// metadata was not rebound
	assert.Same(t, properties, block.Values().Properties())
	assert.Len(t, block.Values().Components(), 1)
}

func TestCheckComponentsToProperties(t *testing.T) {
	component := exampleLabels(t, "component", 2)
	properties := exampleLabels(t, "properties", 3)
	block, err := New(array.NewTestArray(4, 2, 3),
		exampleLabels(t, "samples", 4), []*labels.Labels{component}, properties)
	require.NoError(t, err)

	require.NoError(t, block.CheckComponentsToProperties(nil))
	require.NoError(t, block.CheckComponentsToProperties([]string{"component"}))

	err = block.CheckComponentsToProperties([]string{"missing"})
	assert.EqualError(t, err, "invalid parameter: unable to find [missing] in the components")

	// checking never mutates
	assert.Same(t, properties, block.Values().Properties())
	assert.Len(t, block.Values().Components(), 1)
	assert.Equal(t, []int{4, 2, 3}, block.Values().Data().Shape())
}
