// Package labels implements the immutable named-tuple index used to annotate
// every axis of a tensor block.
package labels

import (
	"fmt"
	"iter"
	"slices"
)

// LabelValue is a single value inside a label tuple. It is a fixed-width
// signed integer, wide enough to hold array indices and small categorical
// ids, with the natural total ordering of int32.
type LabelValue int32

// Labels is an immutable relation: a list of unique column names and a list
// of unique rows, each row one LabelValue per column, in insertion order.
//
// A Labels value is only ever read after construction, so a single instance
// is safely shared (by pointer) across many blocks; the properties of a
// block's values and of all its gradients are typically the same instance.
type Labels struct {
	names  []string
	values []LabelValue // row-major, count*size entries
	count  int

	// reverse index from packed row to position, for O(1) Position lookups
	positions map[string]int
}

// Single returns the trivial key used when no extra key dimension is needed:
// a single column named "_" with a single row [0].
func Single() *Labels {
	row := []LabelValue{0}
	return &Labels{
		names:     []string{"_"},
		values:    row,
		count:     1,
		positions: map[string]int{rowKey(row): 0},
	}
}

// Empty returns a Labels with the given column names and no rows.
func Empty(names []string) (*Labels, error) {
	builder, err := NewBuilder(names)
	if err != nil {
		return nil, err
	}
	return builder.Finish(), nil
}

// Range returns a single-column Labels with rows [0], [1], ... [end-1].
func Range(name string, end int) (*Labels, error) {
	builder, err := NewBuilder([]string{name})
	if err != nil {
		return nil, err
	}
	for i := range end {
		if err := builder.Add([]LabelValue{LabelValue(i)}); err != nil {
			return nil, err
		}
	}
	return builder.Finish(), nil
}

// Names returns a copy of the column names.
func (l *Labels) Names() []string {
	return slices.Clone(l.names)
}

// Size returns the number of columns in each row.
func (l *Labels) Size() int {
	return len(l.names)
}

// Count returns the number of rows.
func (l *Labels) Count() int {
	return l.count
}

// Row returns the i-th row, in insertion order. The returned slice is a view
// into the Labels storage and must not be modified. It panics if i is out of
// range, like a slice access.
func (l *Labels) Row(i int) []LabelValue {
	if i < 0 || i >= l.count {
		panic(fmt.Sprintf("labels: row index %d out of range with %d rows", i, l.count))
	}
	size := len(l.names)
	return l.values[i*size : (i+1)*size : (i+1)*size]
}

// Position returns the position of the given row and whether it is present.
func (l *Labels) Position(row []LabelValue) (int, bool) {
	if len(row) != len(l.names) {
		return 0, false
	}
	pos, ok := l.positions[rowKey(row)]
	return pos, ok
}

// Contains reports whether the given row is present.
func (l *Labels) Contains(row []LabelValue) bool {
	_, ok := l.Position(row)
	return ok
}

// All returns an iterator over (position, row) pairs in insertion order.
// The sequence is finite and restartable: ranging over it a second time
// yields the identical rows again. Row views must not be modified.
func (l *Labels) All() iter.Seq2[int, []LabelValue] {
	return func(yield func(int, []LabelValue) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(i, l.Row(i)) {
				return
			}
		}
	}
}

// Equal reports whether two Labels have the same names and the same rows in
// the same order.
func (l *Labels) Equal(other *Labels) bool {
	if l == nil || other == nil {
		return l == other
	}
	return slices.Equal(l.names, other.names) && slices.Equal(l.values, other.values)
}

// String renders the column names, mostly for error messages and debugging.
func (l *Labels) String() string {
	return "[" + joinNames(l.names) + "]"
}
