package polygon_test

import (
	"testing"

	"github.com/katalvlaran/regpoly/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calls collects every counter in declaration order.
func calls(p *polygon.Polygon) [5]uint64 {
	var out [5]uint64
	for i, prop := range polygon.Properties {
		out[i] = p.Calls(prop)
	}
	return out
}

// TestCache_LazyFirstAccess walks the properties one at a time on a hexagon and
// checks that only the touched counters move.
func TestCache_LazyFirstAccess(t *testing.T) {
	p, err := polygon.New(6, 2)
	require.NoError(t, err)

	// order: angle, side, apothem, area, perimeter
	assert.Equal(t, [5]uint64{0, 0, 0, 0, 0}, calls(p), "nothing computed at construction")
	for _, prop := range polygon.Properties {
		assert.False(t, p.Cached(prop), "%s unset at construction", prop)
	}

	_ = p.InteriorAngle()
	assert.Equal(t, [5]uint64{1, 0, 0, 0, 0}, calls(p))

	_ = p.SideLength()
	assert.Equal(t, [5]uint64{1, 1, 0, 0, 0}, calls(p))

	_ = p.Apothem()
	assert.Equal(t, [5]uint64{1, 1, 1, 0, 0}, calls(p))

	_ = p.Area()
	assert.Equal(t, [5]uint64{1, 1, 1, 1, 0}, calls(p), "area reuses cached side and apothem")

	_ = p.Area()
	_ = p.Perimeter()
	assert.Equal(t, [5]uint64{1, 1, 1, 1, 1}, calls(p), "second area read is a hit")

	for _, prop := range polygon.Properties {
		assert.True(t, p.Cached(prop), "%s cached after read", prop)
	}
}

// TestCache_AreaPullsDependencies verifies that reading Area first fills the
// side length and apothem slots exactly once each.
func TestCache_AreaPullsDependencies(t *testing.T) {
	p, err := polygon.New(5, 1)
	require.NoError(t, err)

	_ = p.Area()
	_ = p.Perimeter()
	_ = p.SideLength()
	_ = p.Apothem()
	assert.Equal(t, [5]uint64{0, 1, 1, 1, 1}, calls(p))
	assert.False(t, p.Cached(polygon.PropInteriorAngle))
}

// TestCache_Idempotent confirms repeated reads return identical values without
// recomputation.
func TestCache_Idempotent(t *testing.T) {
	p, err := polygon.New(9, 4)
	require.NoError(t, err)

	for _, prop := range polygon.Properties {
		first := p.Value(prop)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, p.Value(prop), "%s stable across reads", prop)
		}
		assert.Equal(t, uint64(1), p.Calls(prop), "%s computed once", prop)
	}
}

// TestCache_SetCircumradiusInvalidates mirrors a full read, a radius change and
// a second full read.
func TestCache_SetCircumradiusInvalidates(t *testing.T) {
	p, err := polygon.New(6, 2)
	require.NoError(t, err)
	before := p.Snapshot()
	assert.Equal(t, [5]uint64{1, 1, 1, 1, 1}, calls(p))

	p.SetCircumradius(4)
	for _, prop := range polygon.Properties {
		assert.False(t, p.Cached(prop), "%s cleared by SetCircumradius", prop)
	}
	assert.Equal(t, [5]uint64{1, 1, 1, 1, 1}, calls(p), "counters survive invalidation")

	_ = p.SideLength()
	_ = p.Area()
	_ = p.Perimeter()
	_ = p.Apothem()
	_ = p.InteriorAngle()
	assert.Equal(t, [5]uint64{2, 2, 2, 2, 2}, calls(p))

	assert.Equal(t, before.InteriorAngle, p.InteriorAngle(), "angle depends on n only")
	assert.InDelta(t, 2*before.SideLength, p.SideLength(), tol, "side scales with R")
	assert.InDelta(t, 4*before.Area, p.Area(), tol, "area scales with R²")
}

// TestCache_SetVertexCountInvalidates checks that a valid n change recomputes
// with the new vertex count.
func TestCache_SetVertexCountInvalidates(t *testing.T) {
	p, err := polygon.New(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 60.0, p.InteriorAngle())

	require.NoError(t, p.SetVertexCount(4))
	assert.Equal(t, 4, p.VertexCount())
	assert.Equal(t, 4, p.EdgeCount())
	assert.Equal(t, 90.0, p.InteriorAngle())
	assert.Equal(t, uint64(2), p.Calls(polygon.PropInteriorAngle))
	assert.InDelta(t, 2.0, p.Area(), tol)
}

// TestCache_RejectedSetVertexCountKeepsState verifies the all-or-nothing rule:
// a rejected mutation neither changes n nor drops cached values.
func TestCache_RejectedSetVertexCountKeepsState(t *testing.T) {
	p, err := polygon.New(6, 2)
	require.NoError(t, err)
	area := p.Area()

	for _, n := range []int{2, 0, -3} {
		err := p.SetVertexCount(n)
		assert.ErrorIs(t, err, polygon.ErrInvalidVertexCount)
	}
	assert.Equal(t, 6, p.VertexCount())
	assert.True(t, p.Cached(polygon.PropArea), "cache untouched by rejected mutation")
	assert.Equal(t, area, p.Area())
	assert.Equal(t, uint64(1), p.Calls(polygon.PropArea))
}

// TestCache_CountersMonotonic drives many mutations and checks counters never
// decrease and grow by at most one per generation.
func TestCache_CountersMonotonic(t *testing.T) {
	p, err := polygon.New(3, 1)
	require.NoError(t, err)

	prev := calls(p)
	for gen := 1; gen <= 20; gen++ {
		if gen%2 == 0 {
			require.NoError(t, p.SetVertexCount(3+gen))
		} else {
			p.SetCircumradius(float64(gen))
		}
		_ = p.Snapshot()
		_ = p.Snapshot()
		cur := calls(p)
		for i := range cur {
			assert.Equal(t, prev[i]+1, cur[i], "gen %d: %s", gen, polygon.Properties[i])
		}
		prev = cur
	}
}

// TestCache_UnknownProperty reports zero calls and no cache for out-of-range ids.
func TestCache_UnknownProperty(t *testing.T) {
	p, err := polygon.New(4, 1)
	require.NoError(t, err)
	_ = p.Snapshot()

	assert.Equal(t, uint64(0), p.Calls(polygon.Property(99)))
	assert.False(t, p.Cached(polygon.Property(-1)))
}
