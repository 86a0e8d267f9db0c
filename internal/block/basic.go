// Package block implements data blocks: an array of values together with
// the labels describing every axis, and optionally gradients of those
// values with respect to named parameters.
package block

import (
	"strings"

	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/labels"
)

// BasicBlock is a single data array with the metadata describing each of
// its axes: samples along axis 0, one component per intermediate axis,
// and properties along the last axis.
type BasicBlock struct {
	data       array.Array
	samples    *labels.Labels
	components []*labels.Labels
	properties *labels.Labels
}

// NewBasic creates a basic block, validating the shape of data against
// the labels.
func NewBasic(data array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*BasicBlock, error) {
	err := checkDataAndLabels("data and labels don't match", data, samples, components, properties)
	if err != nil {
		return nil, err
	}
	if err := checkComponentLabels(components); err != nil {
		return nil, err
	}

	owned := make([]*labels.Labels, len(components))
	copy(owned, components)
	return &BasicBlock{
		data:       data,
		samples:    samples,
		components: owned,
		properties: properties,
	}, nil
}

// Data returns the block's array.
func (b *BasicBlock) Data() array.Array {
	return b.data
}

// Samples returns the labels for axis 0 of the data.
func (b *BasicBlock) Samples() *labels.Labels {
	return b.samples
}

// Components returns the labels for the intermediate axes of the data,
// one per axis. The returned slice is a copy.
func (b *BasicBlock) Components() []*labels.Labels {
	components := make([]*labels.Labels, len(b.components))
	copy(components, b.components)
	return components
}

// Properties returns the labels for the last axis of the data.
func (b *BasicBlock) Properties() *labels.Labels {
	return b.properties
}

// Clone copies the block. This can fail if the underlying array can not
// be copied. Labels are immutable and shared with the original.
func (b *BasicBlock) Clone() (*BasicBlock, error) {
	data, err := b.data.Clone()
	if err != nil {
		return nil, err
	}

	components := make([]*labels.Labels, len(b.components))
	copy(components, b.components)
	return &BasicBlock{
		data:       data,
		samples:    b.samples,
		components: components,
		properties: b.properties,
	}, nil
}

// checkDataAndLabels validates that the array shape matches the labels:
// one axis per label set, and matching entry counts along every axis.
func checkDataAndLabels(context string, data array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) error {
	shape := data.Shape()

	if len(shape) != len(components)+2 {
		return invalidParamf(
			"%s: the array has %d dimensions, but we have %d separate labels",
			context, len(shape), len(components)+2,
		)
	}

	if shape[0] != samples.Count() {
		return invalidParamf(
			"%s: the array shape along axis 0 is %d but we have %d sample labels",
			context, shape[0], samples.Count(),
		)
	}

	// ensure that all component labels have different names
	seen := make(map[string]bool, len(components))
	for _, component := range components {
		seen[strings.Join(component.Names(), ",")] = true
	}
	if len(seen) != len(components) {
		return invalidParamf(
			"%s: some of the component names appear more than once in component labels",
			context,
		)
	}

	axis := 1
	for _, component := range components {
		if shape[axis] != component.Count() {
			return invalidParamf(
				"%s: the array shape along axis %d is %d but we have %d entries for the corresponding component",
				context, axis, shape[axis], component.Count(),
			)
		}
		axis++
	}

	if shape[axis] != properties.Count() {
		return invalidParamf(
			"%s: the array shape along axis %d is %d but we have %d properties labels",
			context, axis, shape[axis], properties.Count(),
		)
	}

	return nil
}

func checkComponentLabels(components []*labels.Labels) error {
	for i, component := range components {
		if component.Size() != 1 {
			return invalidParamf(
				"component labels must have a single dimension, got %d: [%s] for component %d",
				component.Size(), strings.Join(component.Names(), ", "), i,
			)
		}
	}
	return nil
}
