// SPDX-License-Identifier: MIT
// Package: regpoly/polygon
//
// polygon.go — the Polygon type: primitives, lazy derived properties,
// invalidation and computation counters.
//
// Contract:
//   • n ≥ minVertexCount at all times; a rejected mutation changes nothing.
//   • Every slot is either unset or equal to the pure function of the
//     current (n, R). Mutating either primitive resets all slots at once.
//   • A slot's counter grows by exactly one each time the slot is filled and
//     is never reset, so it counts computations over the polygon's lifetime.
//   • Area and Perimeter read SideLength/Apothem through their slots.

package polygon

import (
	"fmt"
	"math"
	"strconv"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodNew            = "New"
	methodSetVertexCount = "SetVertexCount"
	minVertexCount       = 3
	degreesHalfTurn      = 180.0
)

// Polygon is a regular polygon with n vertices inscribed in a circle of
// radius R. Derived properties are computed on first read and memoized.
//
// The zero value is not usable; construct with New.
type Polygon struct {
	n int
	r float64

	slots [numProperties]slot
	calls [numProperties]uint64
}

// New returns a polygon with n vertices and circumradius r.
// The circumradius is not validated. Returns ErrInvalidVertexCount if n < 3.
// Complexity: O(1).
func New(n int, r float64) (*Polygon, error) {
	if n < minVertexCount {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNew, n, minVertexCount, ErrInvalidVertexCount)
	}

	return &Polygon{n: n, r: r}, nil
}

// VertexCount returns n.
func (p *Polygon) VertexCount() int { return p.n }

// EdgeCount returns the number of edges, which for a regular polygon is n.
func (p *Polygon) EdgeCount() int { return p.n }

// Circumradius returns R.
func (p *Polygon) Circumradius() float64 { return p.r }

// SetVertexCount replaces n and invalidates every derived property.
// Returns ErrInvalidVertexCount and leaves the polygon untouched if n < 3.
func (p *Polygon) SetVertexCount(n int) error {
	if n < minVertexCount {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodSetVertexCount, n, minVertexCount, ErrInvalidVertexCount)
	}
	p.n = n
	p.invalidate()

	return nil
}

// SetCircumradius replaces R and invalidates every derived property.
func (p *Polygon) SetCircumradius(r float64) {
	p.r = r
	p.invalidate()
}

// invalidate drops all memoized values. Counters are kept.
func (p *Polygon) invalidate() {
	p.slots = [numProperties]slot{}
}

// derive returns the memoized value of prop, filling the slot with compute
// and bumping its counter on a miss.
func (p *Polygon) derive(prop Property, compute func() float64) float64 {
	s := &p.slots[prop]
	if s.set {
		return s.value
	}
	p.calls[prop]++
	s.value, s.set = compute(), true

	return s.value
}

// InteriorAngle returns (n−2)·180/n in degrees.
func (p *Polygon) InteriorAngle() float64 {
	return p.derive(PropInteriorAngle, func() float64 {
		n := float64(p.n)
		return (n - 2) * degreesHalfTurn / n
	})
}

// SideLength returns 2R·sin(π/n).
func (p *Polygon) SideLength() float64 {
	return p.derive(PropSideLength, func() float64 {
		return 2 * p.r * math.Sin(math.Pi/float64(p.n))
	})
}

// Apothem returns R·cos(π/n).
func (p *Polygon) Apothem() float64 {
	return p.derive(PropApothem, func() float64 {
		return p.r * math.Cos(math.Pi/float64(p.n))
	})
}

// Area returns n/2 · side · apothem.
func (p *Polygon) Area() float64 {
	return p.derive(PropArea, func() float64 {
		return float64(p.n) / 2 * p.SideLength() * p.Apothem()
	})
}

// Perimeter returns n · side.
func (p *Polygon) Perimeter() float64 {
	return p.derive(PropPerimeter, func() float64 {
		return float64(p.n) * p.SideLength()
	})
}

// Efficiency returns Area()/Perimeter(), which simplifies to Apothem()/2.
// It reads through the cache and has no slot of its own.
// A zero circumradius yields NaN.
func (p *Polygon) Efficiency() float64 {
	return p.Area() / p.Perimeter()
}

// Value returns the derived property prop, computing it if needed.
// Unknown properties yield NaN.
func (p *Polygon) Value(prop Property) float64 {
	switch prop {
	case PropInteriorAngle:
		return p.InteriorAngle()
	case PropSideLength:
		return p.SideLength()
	case PropApothem:
		return p.Apothem()
	case PropArea:
		return p.Area()
	case PropPerimeter:
		return p.Perimeter()
	default:
		return math.NaN()
	}
}

// Calls reports how many times prop has been computed since construction.
// Unknown properties report 0.
func (p *Polygon) Calls(prop Property) uint64 {
	if !prop.valid() {
		return 0
	}

	return p.calls[prop]
}

// Cached reports whether prop currently holds a memoized value.
func (p *Polygon) Cached(prop Property) bool {
	if !prop.valid() {
		return false
	}

	return p.slots[prop].set
}

// Snapshot reads every derived property (filling any unset slot) and
// returns them together with the primitives.
func (p *Polygon) Snapshot() Snapshot {
	return Snapshot{
		VertexCount:   p.n,
		Circumradius:  p.r,
		InteriorAngle: p.InteriorAngle(),
		SideLength:    p.SideLength(),
		Apothem:       p.Apothem(),
		Area:          p.Area(),
		Perimeter:     p.Perimeter(),
	}
}

// String renders the polygon as Polygon(n=<n>, R=<R>).
func (p *Polygon) String() string {
	return format(p.n, p.r)
}

func format(n int, r float64) string {
	return "Polygon(n=" + strconv.Itoa(n) + ", R=" + strconv.FormatFloat(r, 'g', -1, 64) + ")"
}
