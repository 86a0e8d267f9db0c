// Copyright 2025 Atlas ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package atlas

import "errors"

// ErrInvalidParameter is the kind shared by every metadata validation failure
// in this module: shape/label mismatches, duplicate label entries, duplicate
// gradient parameters, reserved names, origin mismatches, and unknown
// dimensions in axis migration.
//
// Failures of this kind always carry a human-readable description of the
// offending axis, label, or name, and are matched with errors.Is:
//
//	block, err := block.New(data, samples, components, properties)
//	if errors.Is(err, atlas.ErrInvalidParameter) {
//	    // the data and labels disagree; err.Error() says where
//	}
//
// Failures originating in an array backend (unsupported reshape, failed
// clone, ...) are a separate kind: they carry the sentinel of the array
// package (array.ErrNotSupported, array.ErrBadShape, array.ErrBadAxis, or a
// backend-specific error) and are never reinterpreted as ErrInvalidParameter.
var ErrInvalidParameter = errors.New("invalid parameter")
