package labels

import (
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// Builder assembles a Labels row by row. Rows must all have the width of the
// name list and must be unique. Finish finalizes the builder into an
// immutable Labels; the builder can not be used afterwards.
type Builder struct {
	names     []string
	values    []LabelValue
	count     int
	positions map[string]int
	finished  bool
}

// NewBuilder creates a builder for labels with the given column names. Each
// name must be a valid identifier ([A-Za-z_][A-Za-z0-9_]*) and names must be
// unique.
func NewBuilder(names []string) (*Builder, error) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !isValidName(name) {
			return nil, invalidParamf("'%s' is not a valid label name", name)
		}
		if _, dup := seen[name]; dup {
			return nil, invalidParamf("labels names must be unique, got '%s' multiple times", name)
		}
		seen[name] = struct{}{}
	}
	return &Builder{
		names:     slices.Clone(names),
		positions: make(map[string]int),
	}, nil
}

// Add appends one row. The row must have exactly one value per column name
// and must not repeat a previously added row.
func (b *Builder) Add(row []LabelValue) error {
	if b.finished {
		return invalidParamf("can not add entries to a labels builder after Finish")
	}
	if len(row) != len(b.names) {
		return invalidParamf("wrong size for added label: got %d, but expected %d", len(row), len(b.names))
	}

	key := rowKey(row)
	if position, exists := b.positions[key]; exists {
		return invalidParamf(
			"can not have the same label entry multiple times: [%s] is already present at position %d",
			formatRow(row), position,
		)
	}

	b.positions[key] = b.count
	b.values = append(b.values, row...)
	b.count++
	return nil
}

// Finish consumes the builder and returns the immutable Labels. Any later
// Add on the same builder fails.
func (b *Builder) Finish() *Labels {
	labels := &Labels{
		names:     b.names,
		values:    b.values,
		count:     b.count,
		positions: b.positions,
	}
	b.finished = true
	b.names = nil
	b.values = nil
	b.positions = nil
	return labels
}

// isValidName reports whether name can be used as a label column name.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		if i == 0 && c >= '0' && c <= '9' {
			return false
		}
		alnum := c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !alnum {
			return false
		}
	}
	return true
}

// rowKey packs a row into a string usable as a map key. Rows are fixed-width
// int32 tuples, so the little-endian byte image is a unique key.
func rowKey(row []LabelValue) string {
	buf := make([]byte, 4*len(row))
	for i, v := range row {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return string(buf)
}

func formatRow(row []LabelValue) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ", ")
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
