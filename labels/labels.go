// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package labels

import (
	"github.com/atlas-ml/atlas/internal/labels"
)

// LabelValue is a single 32-bit integer cell of a labels row.
type LabelValue = labels.LabelValue

// Labels is an immutable relation of named columns and unique rows, used
// to describe one axis of a block.
type Labels = labels.Labels

// Builder accumulates named rows and finalizes them into a Labels
// instance.
type Builder = labels.Builder

// NewBuilder creates a builder for labels with the given column names.
// Names must be unique, non-empty, and valid identifiers.
//
// Example:
//
//	builder, err := labels.NewBuilder([]string{"structure", "atom"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	builder.Add([]labels.LabelValue{0, 0})
//	l := builder.Finish()
func NewBuilder(names []string) (*Builder, error) {
	return labels.NewBuilder(names)
}

// Single returns the trivial key labels: a single column named "_" with
// a single entry set to 0. This is the canonical key for collections
// holding exactly one block.
func Single() *Labels {
	return labels.Single()
}

// Empty returns labels with the given column names and no entries.
func Empty(names []string) (*Labels, error) {
	return labels.Empty(names)
}

// Range returns labels with a single column of the given name and
// entries 0, 1, ..., end-1.
//
// Example:
//
//	samples, err := labels.Range("sample", 10)
func Range(name string, end int) (*Labels, error) {
	return labels.Range(name, end)
}
