// Package regpoly is a small, pure-Go toolkit for regular polygon geometry
// with lazily derived, cached properties.
//
// 🚀 What is in regpoly?
//
//	• polygon/  — the Polygon type: vertex count n, circumradius R, and five
//	              derived properties computed on first read, memoized, and
//	              invalidated on every mutation; plus Synced for shared use
//	• sequence/ — bounded, restartable runs of polygons with 3..m vertices
//	              sharing one R, and the max area/perimeter selection
//	• cmd/regpoly — a CLI printing polygon, sequence and comparison reports
//
// ✨ Why regpoly?
//
//   - Nothing is computed until asked for, and nothing twice per generation
//   - Cache behavior is observable: per-property counters and presence flags
//   - Sentinel errors only, checked with errors.Is
//   - Library packages have no dependencies beyond the standard library
//
// Quick ASCII example:
//
//	      /\
//	     /  \        Polygon(n=3, R=1)
//	    /____\       interior angle 60°, side √3, apothem 0.5
//
//	go get github.com/katalvlaran/regpoly
package regpoly
