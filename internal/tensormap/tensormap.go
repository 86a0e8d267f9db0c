// Package tensormap implements the keyed collection of blocks: every
// block is identified by exactly one row of an outer Labels instance.
package tensormap

import (
	"iter"

	"github.com/atlas-ml/atlas/internal/block"
	"github.com/atlas-ml/atlas/internal/labels"
)

// TensorMap is a collection of blocks keyed by rows of an outer Labels
// instance: key row i identifies block i.
type TensorMap struct {
	keys   *labels.Labels
	blocks []*block.TensorBlock
}

// New creates a tensor map from the given keys and blocks. There must be
// exactly one key entry per block.
func New(keys *labels.Labels, blocks []*block.TensorBlock) (*TensorMap, error) {
	if keys.Count() != len(blocks) {
		return nil, invalidParamf(
			"expected the same number of blocks (%d) as the number of key entries (%d)",
			len(blocks), keys.Count(),
		)
	}

	owned := make([]*block.TensorBlock, len(blocks))
	copy(owned, blocks)
	return &TensorMap{keys: keys, blocks: owned}, nil
}

// Keys returns the labels keying the blocks.
func (t *TensorMap) Keys() *labels.Labels {
	return t.keys
}

// Len returns the number of blocks.
func (t *TensorMap) Len() int {
	return len(t.blocks)
}

// Block returns the block at the given position. It panics when the
// position is out of range, like indexing a Go slice.
func (t *TensorMap) Block(i int) *block.TensorBlock {
	return t.blocks[i]
}

// BlockByKey returns the block identified by the given key row, if any.
func (t *TensorMap) BlockByKey(key []labels.LabelValue) (*block.TensorBlock, bool) {
	position, ok := t.keys.Position(key)
	if !ok {
		return nil, false
	}
	return t.blocks[position], true
}

// Blocks iterates over all blocks with their positions, in key order.
func (t *TensorMap) Blocks() iter.Seq2[int, *block.TensorBlock] {
	return func(yield func(int, *block.TensorBlock) bool) {
		for i, b := range t.blocks {
			if !yield(i, b) {
				return
			}
		}
	}
}

// ComponentsToProperties moves the component with the given names to the
// properties on every block of the map. All blocks are validated before
// any is modified: if one block can not perform the move, the whole map
// is left untouched.
func (t *TensorMap) ComponentsToProperties(dimensions []string) error {
	if len(dimensions) == 0 {
		return nil
	}

	for _, b := range t.blocks {
		if err := b.CheckComponentsToProperties(dimensions); err != nil {
			return err
		}
	}
	for _, b := range t.blocks {
		if err := b.ComponentsToProperties(dimensions); err != nil {
			return err
		}
	}
	return nil
}
