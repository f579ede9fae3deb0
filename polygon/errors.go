// SPDX-License-Identifier: MIT
// Package: regpoly/polygon
//
// errors.go — sentinel errors for the polygon package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (method name, offending value) is attached with %w at the
//     call site, never baked into the sentinel text.
//   • No method panics on user input.

package polygon

import "errors"

var (
	// ErrInvalidVertexCount indicates a vertex count below minVertexCount,
	// passed either to New or to SetVertexCount.
	ErrInvalidVertexCount = errors.New("polygon: vertex count must be >= 3")

	// ErrNotComparable indicates an equality or ordering check against an
	// operand outside the comparable set (*Polygon, *Synced, non-nil).
	ErrNotComparable = errors.New("polygon: operand is not comparable")
)
