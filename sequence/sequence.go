// SPDX-License-Identifier: MIT
// Package: regpoly/sequence
//
// sequence.go — Sequence construction, length and iteration.
//
// Contract:
//   • m ≥ firstVertexCount (else ErrInvalidMaxVertexCount); m and R never change.
//   • Len() == m − 2.
//   • Each pass (All or Cursor) starts at firstVertexCount and yields a new
//     polygon per step; no element is reused between passes.

package sequence

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/regpoly/polygon"
)

const (
	methodNew        = "New"
	firstVertexCount = 3
)

// Sequence is the ordered run of regular polygons with vertex counts
// 3..MaxVertexCount() and a common circumradius.
type Sequence struct {
	max int
	r   float64
}

// New returns the sequence of polygons with 3..maxVertexCount vertices and
// circumradius r. Returns ErrInvalidMaxVertexCount if maxVertexCount < 3.
// Complexity: O(1); no polygon is built here.
func New(maxVertexCount int, r float64) (*Sequence, error) {
	if maxVertexCount < firstVertexCount {
		return nil, fmt.Errorf("%s: m=%d < min=%d: %w", methodNew, maxVertexCount, firstVertexCount, ErrInvalidMaxVertexCount)
	}

	return &Sequence{max: maxVertexCount, r: r}, nil
}

// Len returns the number of polygons, MaxVertexCount() − 2.
func (s *Sequence) Len() int {
	if s.max < firstVertexCount {
		return 0
	}

	return s.max - firstVertexCount + 1
}

// MaxVertexCount returns m.
func (s *Sequence) MaxVertexCount() int { return s.max }

// Circumradius returns the shared R.
func (s *Sequence) Circumradius() float64 { return s.r }

// String renders the sequence as Polygons(m=<m>, R=<R>).
func (s *Sequence) String() string {
	return "Polygons(m=" + strconv.Itoa(s.max) + ", R=" + strconv.FormatFloat(s.r, 'g', -1, 64) + ")"
}

// All returns a fresh pass over the sequence in ascending vertex count.
// Stopping early (break) ends the pass; calling All again restarts at 3.
func (s *Sequence) All() iter.Seq[*polygon.Polygon] {
	return func(yield func(*polygon.Polygon) bool) {
		c := s.Cursor()
		for c.Next() {
			if !yield(c.Polygon()) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned before the first polygon.
func (s *Sequence) Cursor() *Cursor {
	return &Cursor{max: s.max, r: s.r, next: firstVertexCount}
}

// Cursor walks a Sequence one polygon at a time, in the style of
// bufio.Scanner: call Next until it returns false, read Polygon after each
// successful Next, then check Err.
type Cursor struct {
	max  int
	r    float64
	next int

	cur *polygon.Polygon
	err error
}

// Next builds the polygon for the next vertex count and reports whether one
// was available.
func (c *Cursor) Next() bool {
	if c.err != nil || c.next > c.max {
		c.cur = nil
		return false
	}
	p, err := polygon.New(c.next, c.r)
	if err != nil {
		c.cur, c.err = nil, err
		return false
	}
	c.cur = p
	c.next++

	return true
}

// Polygon returns the polygon produced by the last successful Next, or nil.
func (c *Cursor) Polygon() *polygon.Polygon {
	return c.cur
}

// Err returns the first error that stopped the cursor, if any.
func (c *Cursor) Err() error {
	return c.err
}
