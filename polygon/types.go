// SPDX-License-Identifier: MIT
// Package: regpoly/polygon
//
// types.go — derived-property identifiers, cache slots and snapshots.

package polygon

// Property identifies one of the five derived quantities of a Polygon.
type Property int

const (
	// PropInteriorAngle is the interior angle in degrees.
	PropInteriorAngle Property = iota
	// PropSideLength is the length of one edge.
	PropSideLength
	// PropApothem is the distance from the center to the midpoint of an edge.
	PropApothem
	// PropArea is the enclosed area.
	PropArea
	// PropPerimeter is the total edge length.
	PropPerimeter

	numProperties
)

// Properties lists every derived Property in declaration order.
var Properties = [numProperties]Property{
	PropInteriorAngle,
	PropSideLength,
	PropApothem,
	PropArea,
	PropPerimeter,
}

var propertyNames = [numProperties]string{
	PropInteriorAngle: "interior_angle",
	PropSideLength:    "side_length",
	PropApothem:       "apothem",
	PropArea:          "area",
	PropPerimeter:     "perimeter",
}

// String returns the snake_case name of the property, or "unknown".
func (p Property) String() string {
	if !p.valid() {
		return "unknown"
	}

	return propertyNames[p]
}

func (p Property) valid() bool {
	return p >= 0 && p < numProperties
}

// slot holds one memoized value. The zero slot is unset.
type slot struct {
	value float64
	set   bool
}

// Snapshot is a plain-value view of a polygon: both primitives and all five
// derived properties. It carries no cache state and is safe to copy.
type Snapshot struct {
	VertexCount   int     `yaml:"vertex_count"`
	Circumradius  float64 `yaml:"circumradius"`
	InteriorAngle float64 `yaml:"interior_angle"`
	SideLength    float64 `yaml:"side_length"`
	Apothem       float64 `yaml:"apothem"`
	Area          float64 `yaml:"area"`
	Perimeter     float64 `yaml:"perimeter"`
}
