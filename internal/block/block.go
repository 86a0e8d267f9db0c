package block

import (
	"iter"
	"slices"
	"strings"

	"github.com/atlas-ml/atlas/internal/array"
	"github.com/atlas-ml/atlas/internal/labels"
)

// TensorBlock is a block of values and, optionally, gradients of these
// values with respect to named parameters. Gradients share the property
// labels of the values they differentiate.
type TensorBlock struct {
	values    *BasicBlock
	gradients map[string]*BasicBlock
	// keys of gradients, in insertion order
	gradientParameters []string
}

// New creates a block containing the given data, described by the
// samples, components and properties labels. The block starts without
// gradients.
func New(data array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*TensorBlock, error) {
	values, err := NewBasic(data, samples, components, properties)
	if err != nil {
		return nil, err
	}
	return &TensorBlock{
		values:    values,
		gradients: make(map[string]*BasicBlock),
	}, nil
}

// Values returns the values data and metadata of this block.
func (b *TensorBlock) Values() *BasicBlock {
	return b.values
}

// AddGradient adds a gradient with respect to parameter to this block.
//
// The gradient samples must start with a dimension named "sample"
// indexing the values samples. The components must contain at least the
// values components, in the same order at the end, and can prepend extra
// components. The property labels are shared with the values.
func (b *TensorBlock) AddGradient(parameter string, data array.Array, samples *labels.Labels, components []*labels.Labels) error {
	if _, exists := b.gradients[parameter]; exists {
		return invalidParamf("gradient with respect to '%s' already exists for this block", parameter)
	}

	if data.Origin() != b.values.data.Origin() {
		return invalidParamf(
			"the gradient array has a different origin ('%s') than the value array ('%s')",
			array.OriginName(data.Origin()), array.OriginName(b.values.data.Origin()),
		)
	}

	if parameter == "" {
		return invalidParamf("can not store gradient with an empty parameter name")
	}
	// "values" is reserved to address the values themselves
	if parameter == "values" {
		return invalidParamf("can not store gradient with respect to 'values'")
	}

	if samples.Size() == 0 {
		return invalidParamf("gradients samples must have at least one dimension named 'sample', we got none")
	}
	if samples.Names()[0] != "sample" {
		return invalidParamf(
			"'%s' is not valid for the first dimension in the gradients samples labels. It must be 'sample'",
			samples.Names()[0],
		)
	}

	if err := checkComponentLabels(components); err != nil {
		return err
	}
	if len(b.values.components) > len(components) {
		return invalidParamf("gradients components should contain at least as many labels as the values components")
	}
	extra := len(components) - len(b.values.components)
	for i, valuesComponent := range b.values.components {
		if !components[extra+i].Equal(valuesComponent) {
			return invalidParamf(
				"gradients and values components mismatch for values component %d (the corresponding names are [%s])",
				i, strings.Join(valuesComponent.Names(), ", "),
			)
		}
	}

	properties := b.values.properties
	err := checkDataAndLabels("gradient data and labels don't match", data, samples, components, properties)
	if err != nil {
		return err
	}

	owned := make([]*labels.Labels, len(components))
	copy(owned, components)
	b.gradients[parameter] = &BasicBlock{
		data:       data,
		samples:    samples,
		components: owned,
		properties: properties,
	}
	b.gradientParameters = append(b.gradientParameters, parameter)

	return nil
}

// Gradient returns the data and metadata for the gradient with respect
// to the given parameter, if it exists.
func (b *TensorBlock) Gradient(parameter string) (*BasicBlock, bool) {
	gradient, ok := b.gradients[parameter]
	return gradient, ok
}

// GradientParameters returns the parameters for which this block has
// gradients, in the order they were added.
func (b *TensorBlock) GradientParameters() []string {
	return slices.Clone(b.gradientParameters)
}

// Gradients iterates over all gradients in this block, in the order they
// were added.
func (b *TensorBlock) Gradients() iter.Seq2[string, *BasicBlock] {
	return func(yield func(string, *BasicBlock) bool) {
		for _, parameter := range b.gradientParameters {
			if !yield(parameter, b.gradients[parameter]) {
				return
			}
		}
	}
}

// Clone copies the block and all its gradients. This can fail if one of
// the underlying arrays can not be copied, in which case the original is
// left untouched and no partial copy escapes.
func (b *TensorBlock) Clone() (*TensorBlock, error) {
	values, err := b.values.Clone()
	if err != nil {
		return nil, err
	}

	gradients := make(map[string]*BasicBlock, len(b.gradients))
	for parameter, gradient := range b.gradients {
		clone, err := gradient.Clone()
		if err != nil {
			return nil, err
		}
		gradients[parameter] = clone
	}

	return &TensorBlock{
		values:             values,
		gradients:          gradients,
		gradientParameters: slices.Clone(b.gradientParameters),
	}, nil
}
