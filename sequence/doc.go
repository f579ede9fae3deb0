// SPDX-License-Identifier: MIT

// Package sequence produces bounded, lazy runs of regular polygons that share
// one circumradius, and selects the most area-efficient member.
//
// A Sequence with maximum vertex count m and circumradius R stands for the
// polygons with 3, 4, …, m vertices, in that order. Nothing is stored: every
// pass builds fresh *polygon.Polygon values on demand, so a Sequence is
// immutable, restartable and safe to iterate from several goroutines.
//
// ⚙️ Usage:
//
//	seq, err := sequence.New(10, 1)
//	if err != nil {
//	  // errors.Is(err, sequence.ErrInvalidMaxVertexCount)
//	}
//	for p := range seq.All() {
//	  fmt.Println(p, p.Area())
//	}
//
//	best, err := seq.MaxEfficiency() // greatest area/perimeter, first wins ties
//
// For callers that prefer an explicit has-next/get-next loop:
//
//	c := seq.Cursor()
//	for c.Next() {
//	  p := c.Polygon()
//	}
//	if err := c.Err(); err != nil { ... }
package sequence
