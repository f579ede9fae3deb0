// SPDX-License-Identifier: MIT
// Package: regpoly/polygon
//
// synced.go — Synced, a Polygon guarded by a mutex.
//
// A plain mutex is used rather than sync.RWMutex: the first read of a
// derived property fills its slot, so every getter is a potential write.

package polygon

import "sync"

// Synced wraps a Polygon so that one instance can be shared across
// goroutines. Every method holds the lock for its whole duration,
// which serializes cache population as well as mutation.
type Synced struct {
	mu sync.Mutex
	p  Polygon
}

// NewSynced returns a lock-guarded polygon with n vertices and circumradius r.
// Returns ErrInvalidVertexCount if n < 3.
func NewSynced(n int, r float64) (*Synced, error) {
	p, err := New(n, r)
	if err != nil {
		return nil, err
	}

	return &Synced{p: *p}, nil
}

func (s *Synced) primitives() (int, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.n, s.p.r
}

// VertexCount returns n.
func (s *Synced) VertexCount() int {
	n, _ := s.primitives()
	return n
}

// EdgeCount returns n.
func (s *Synced) EdgeCount() int {
	return s.VertexCount()
}

// Circumradius returns R.
func (s *Synced) Circumradius() float64 {
	_, r := s.primitives()
	return r
}

// SetVertexCount replaces n under the lock. See Polygon.SetVertexCount.
func (s *Synced) SetVertexCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.SetVertexCount(n)
}

// SetCircumradius replaces R under the lock.
func (s *Synced) SetCircumradius(r float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.SetCircumradius(r)
}

// Value returns the derived property prop under the lock.
func (s *Synced) Value(prop Property) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.Value(prop)
}

// InteriorAngle returns the interior angle in degrees.
func (s *Synced) InteriorAngle() float64 { return s.Value(PropInteriorAngle) }

// SideLength returns the edge length.
func (s *Synced) SideLength() float64 { return s.Value(PropSideLength) }

// Apothem returns the apothem.
func (s *Synced) Apothem() float64 { return s.Value(PropApothem) }

// Area returns the area.
func (s *Synced) Area() float64 { return s.Value(PropArea) }

// Perimeter returns the perimeter.
func (s *Synced) Perimeter() float64 { return s.Value(PropPerimeter) }

// Efficiency returns area/perimeter, both read in one critical section.
func (s *Synced) Efficiency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.Efficiency()
}

// Calls reports how many times prop has been computed.
func (s *Synced) Calls(prop Property) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.Calls(prop)
}

// Cached reports whether prop currently holds a memoized value.
func (s *Synced) Cached(prop Property) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.Cached(prop)
}

// Snapshot returns a consistent view of primitives and derived properties.
func (s *Synced) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.p.Snapshot()
}

// String renders the polygon as Polygon(n=<n>, R=<R>).
func (s *Synced) String() string {
	n, r := s.primitives()
	return format(n, r)
}

// Equal reports whether other has the same vertex count and circumradius.
// Own primitives are read before other is inspected, so comparing s with
// itself does not self-deadlock.
func (s *Synced) Equal(other any) (bool, error) {
	n, r := s.primitives()
	return equalTo(n, r, other)
}

// Compare orders s against other by vertex count.
func (s *Synced) Compare(other any) (int, error) {
	n, _ := s.primitives()
	return compareTo(n, other)
}

// Greater reports whether s has more vertices than other.
func (s *Synced) Greater(other any) (bool, error) {
	c, err := s.Compare(other)
	return c > 0, err
}

// Less reports whether s has fewer vertices than other.
func (s *Synced) Less(other any) (bool, error) {
	c, err := s.Compare(other)
	return c < 0, err
}
