package block

import (
	"slices"
	"strings"

	"github.com/atlas-ml/atlas/internal/labels"
)

// migrationPlan is the validated outcome of moving one component to the
// properties of a basic block. Planning does all the metadata work up
// front so that applying can only fail inside the array.
type migrationPlan struct {
	componentAxis int // index into the block's components
	newProperties *labels.Labels
	newShape      []int
}

// planComponentsToProperties locates the component whose names are
// exactly dimensions and builds the migrated properties and shape,
// without modifying the block.
func (b *BasicBlock) planComponentsToProperties(dimensions []string) (*migrationPlan, error) {
	componentAxis := -1
	for i, component := range b.components {
		if slices.Equal(component.Names(), dimensions) {
			componentAxis = i
			break
		}
	}
	if componentAxis == -1 {
		return nil, invalidParamf("unable to find [%s] in the components", strings.Join(dimensions, ", "))
	}
	moved := b.components[componentAxis]

	// new properties are the moved component entries (outer) combined
	// with the old properties (inner)
	names := slices.Concat(moved.Names(), b.properties.Names())
	builder, err := labels.NewBuilder(names)
	if err != nil {
		return nil, err
	}
	for _, movedRow := range moved.All() {
		for _, oldRow := range b.properties.All() {
			row := make([]labels.LabelValue, 0, len(movedRow)+len(oldRow))
			row = append(row, movedRow...)
			row = append(row, oldRow...)
			if err := builder.Add(row); err != nil {
				return nil, err
			}
		}
	}
	newProperties := builder.Finish()

	shape := b.data.Shape()
	newShape := make([]int, len(shape))
	copy(newShape, shape)
	propertiesAxis := len(newShape) - 1
	newShape[propertiesAxis] = newProperties.Count()
	newShape = slices.Delete(newShape, componentAxis+1, componentAxis+2)

	return &migrationPlan{
		componentAxis: componentAxis,
		newProperties: newProperties,
		newShape:      newShape,
	}, nil
}

// applyComponentsToProperties moves the data axis next to the properties
// axis, flattens the two, and rebinds the block metadata to the plan.
func (b *BasicBlock) applyComponentsToProperties(plan *migrationPlan) error {
	propertiesAxis := len(b.data.Shape()) - 1
	if err := b.data.SwapAxes(plan.componentAxis+1, propertiesAxis-1); err != nil {
		return err
	}
	if err := b.data.Reshape(plan.newShape); err != nil {
		return err
	}

	b.components = slices.Delete(b.components, plan.componentAxis, plan.componentAxis+1)
	b.properties = plan.newProperties
	return nil
}

// CheckComponentsToProperties reports whether moving the component with
// the given names to the properties would succeed on the values and on
// every gradient, without modifying anything.
func (b *TensorBlock) CheckComponentsToProperties(dimensions []string) error {
	if len(dimensions) == 0 {
		return nil
	}

	if _, err := b.values.planComponentsToProperties(dimensions); err != nil {
		return err
	}
	for _, parameter := range b.gradientParameters {
		if _, err := b.gradients[parameter].planComponentsToProperties(dimensions); err != nil {
			return err
		}
	}
	return nil
}

// ComponentsToProperties moves the component with the given names to the
// properties, on the values and on every gradient of this block. Calling
// it with no dimensions does nothing.
//
// All the metadata is validated before any data moves: when the
// component is missing from the values or a gradient, the block is left
// untouched.
func (b *TensorBlock) ComponentsToProperties(dimensions []string) error {
	if len(dimensions) == 0 {
		return nil
	}

	valuesPlan, err := b.values.planComponentsToProperties(dimensions)
	if err != nil {
		return err
	}
	gradientPlans := make([]*migrationPlan, len(b.gradientParameters))
	for i, parameter := range b.gradientParameters {
		plan, err := b.gradients[parameter].planComponentsToProperties(dimensions)
		if err != nil {
			return err
		}
		// the moved component is identical between values and gradients,
		// so the migrated properties are too: keep sharing one instance
		plan.newProperties = valuesPlan.newProperties
		gradientPlans[i] = plan
	}

	if err := b.values.applyComponentsToProperties(valuesPlan); err != nil {
		return err
	}
	for i, parameter := range b.gradientParameters {
		if err := b.gradients[parameter].applyComponentsToProperties(gradientPlans[i]); err != nil {
			return err
		}
	}
	return nil
}
