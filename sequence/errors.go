// SPDX-License-Identifier: MIT
// Package: regpoly/sequence
//
// errors.go — sentinel errors for the sequence package.

package sequence

import "errors"

var (
	// ErrInvalidMaxVertexCount indicates a maximum vertex count below 3.
	ErrInvalidMaxVertexCount = errors.New("sequence: max vertex count must be >= 3")

	// ErrEmptySequence indicates a query that needs at least one polygon.
	ErrEmptySequence = errors.New("sequence: empty sequence")

	// ErrZeroPerimeter indicates an efficiency ratio could not be formed
	// because a polygon's perimeter is zero (circumradius 0).
	ErrZeroPerimeter = errors.New("sequence: polygon perimeter is zero")
)
