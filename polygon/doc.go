// SPDX-License-Identifier: MIT

// Package polygon models regular polygons and derives their geometry
// (interior angle, side length, apothem, area, perimeter) from two
// primitives: the vertex count n and the circumradius R.
//
// 🚀 What is a regular polygon here?
//
//	A convex polygon with n ≥ 3 equal sides inscribed in a circle of
//	radius R. Every derived quantity is a pure function of (n, R):
//	  • interior angle = (n−2)·180/n            (degrees)
//	  • side length    = 2R·sin(π/n)
//	  • apothem        = R·cos(π/n)
//	  • area           = n/2 · side · apothem
//	  • perimeter      = n · side
//
// ✨ Key features:
//   - lazy derivation: nothing is computed until it is read
//   - memoization: each property is computed at most once per generation
//     of (n, R); area and perimeter reuse the cached side length and apothem
//   - invalidation: SetVertexCount / SetCircumradius clear every cached
//     property in one step
//   - observability: Calls(prop) reports how many times a property was
//     ever computed; Cached(prop) reports whether it is currently populated
//   - comparison: Equal (n and R) and Compare (n only), rejecting unlike
//     operands with ErrNotComparable instead of guessing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/regpoly/polygon"
//
//	p, err := polygon.New(6, 2)
//	if err != nil {
//	  // errors.Is(err, polygon.ErrInvalidVertexCount)
//	}
//	fmt.Println(p.Area())      // computed
//	fmt.Println(p.Area())      // cached
//	p.SetCircumradius(4)       // invalidates all five properties
//
// Concurrency:
//
//	*Polygon is not safe for concurrent use: a first read populates the
//	cache, so reads mutate too. Use *Synced when one polygon is shared
//	between goroutines.
package polygon
