// SPDX-License-Identifier: MIT
// Package: regpoly/polygon
//
// compare.go — equality and ordering over the closed comparable set.
//
// Contract:
//   • The comparable set is exactly {*Polygon, *Synced}, non-nil.
//     Anything else fails with ErrNotComparable; nothing is coerced.
//   • Equal compares both primitives (n and R). Cached values and counters
//     are ignored.
//   • Compare/Greater/Less order by vertex count only, so Compare == 0 does
//     not imply Equal when the circumradii differ.

package polygon

import (
	"cmp"
	"fmt"
)

// primitives extracts (n, R) from a member of the comparable set.
func primitives(other any) (int, float64, error) {
	switch o := other.(type) {
	case *Polygon:
		if o == nil {
			return 0, 0, fmt.Errorf("nil *Polygon: %w", ErrNotComparable)
		}
		return o.n, o.r, nil
	case *Synced:
		if o == nil {
			return 0, 0, fmt.Errorf("nil *Synced: %w", ErrNotComparable)
		}
		n, r := o.primitives()
		return n, r, nil
	default:
		return 0, 0, fmt.Errorf("%T: %w", other, ErrNotComparable)
	}
}

func equalTo(n int, r float64, other any) (bool, error) {
	on, or, err := primitives(other)
	if err != nil {
		return false, err
	}

	return n == on && r == or, nil
}

func compareTo(n int, other any) (int, error) {
	on, _, err := primitives(other)
	if err != nil {
		return 0, err
	}

	return cmp.Compare(n, on), nil
}

// Equal reports whether other has the same vertex count and circumradius.
// Returns ErrNotComparable if other is not a non-nil *Polygon or *Synced.
func (p *Polygon) Equal(other any) (bool, error) {
	return equalTo(p.n, p.r, other)
}

// Compare orders p against other by vertex count: -1, 0 or +1.
// Returns ErrNotComparable if other is not a non-nil *Polygon or *Synced.
func (p *Polygon) Compare(other any) (int, error) {
	return compareTo(p.n, other)
}

// Greater reports whether p has more vertices than other.
func (p *Polygon) Greater(other any) (bool, error) {
	c, err := p.Compare(other)
	return c > 0, err
}

// Less reports whether p has fewer vertices than other.
func (p *Polygon) Less(other any) (bool, error) {
	c, err := p.Compare(other)
	return c < 0, err
}
