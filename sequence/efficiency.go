// SPDX-License-Identifier: MIT
// Package: regpoly/sequence
//
// efficiency.go — arg-max selection by area/perimeter.
//
// Contract:
//   • One pass over All(); each polygon's ratio is read through its cache.
//   • A candidate replaces the incumbent only on a strictly greater ratio,
//     so among equal ratios the lowest vertex count wins.
//   • A zero perimeter stops the pass with ErrZeroPerimeter.

package sequence

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/regpoly/polygon"
)

const methodMaxEfficiency = "MaxEfficiency"

// MaxEfficiency returns the polygon with the greatest area/perimeter ratio.
// Returns ErrEmptySequence if Len() == 0 and ErrZeroPerimeter if any polygon
// has zero perimeter.
// Complexity: O(m) time, O(1) extra memory.
func (s *Sequence) MaxEfficiency() (*polygon.Polygon, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("%s: %s: %w", methodMaxEfficiency, s, ErrEmptySequence)
	}

	return maxEfficiency(s.All())
}

// maxEfficiency is the first-seen arg-max over an arbitrary pass.
func maxEfficiency(all iter.Seq[*polygon.Polygon]) (*polygon.Polygon, error) {
	var (
		best      *polygon.Polygon
		bestRatio float64
	)
	for p := range all {
		if p.Perimeter() == 0 {
			return nil, fmt.Errorf("%s: %s: %w", methodMaxEfficiency, p, ErrZeroPerimeter)
		}
		ratio := p.Efficiency()
		if best == nil || ratio > bestRatio {
			best, bestRatio = p, ratio
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%s: %w", methodMaxEfficiency, ErrEmptySequence)
	}

	return best, nil
}
