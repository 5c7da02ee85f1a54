// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"github.com/golang/geo/s1"
)

// GeometryType is an enumeration of the GML geometry shapes.
type GeometryType int32

const (
	// PointType denotes a single position.
	PointType GeometryType = iota

	// LineStringType denotes an ordered list of positions.
	LineStringType

	// PolygonType denotes an area bounded by an exterior ring.
	PolygonType

	// MultiPointType denotes a collection of points.
	MultiPointType

	// MultiLineStringType denotes a collection of line strings.
	MultiLineStringType

	// MultiCurveType denotes a collection of curves.
	MultiCurveType

	// MultiPolygonType denotes a collection of polygons.
	MultiPolygonType

	// MultiSurfaceType denotes a collection of surfaces.
	MultiSurfaceType

	// MultiGeometryType denotes a heterogeneous collection of geometries.
	MultiGeometryType
)

var geometryTypeNames = [...]string{
	PointType:           "Point",
	LineStringType:      "LineString",
	PolygonType:         "Polygon",
	MultiPointType:      "MultiPoint",
	MultiLineStringType: "MultiLineString",
	MultiCurveType:      "MultiCurve",
	MultiPolygonType:    "MultiPolygon",
	MultiSurfaceType:    "MultiSurface",
	MultiGeometryType:   "MultiGeometry",
}

func (t GeometryType) String() string {
	if t < 0 || int(t) >= len(geometryTypeNames) {
		return "GeometryType(?)"
	}

	return geometryTypeNames[t]
}

// IsMulti reports whether the type is one of the collection types.
func (t GeometryType) IsMulti() bool {
	return t >= MultiPointType && t <= MultiGeometryType
}

// Geometry is the closed union of geometry values produced by the decoder.
type Geometry interface {
	isGeometry() // prevents extensions

	Type() GeometryType

	Bounds() BoundingBox
}

// Point is a single position.
type Point struct {
	Coordinate Coordinate
}

var _ Geometry = Point{}

func (p Point) isGeometry() {}

func (p Point) Type() GeometryType {
	return PointType
}

func (p Point) Bounds() BoundingBox {
	return *boundsOf([]Coordinate{p.Coordinate})
}

// LineString is an ordered list of positions.
type LineString struct {
	Coordinates []Coordinate
}

var _ Geometry = LineString{}

func (l LineString) isGeometry() {}

func (l LineString) Type() GeometryType {
	return LineStringType
}

func (l LineString) Bounds() BoundingBox {
	return *boundsOf(l.Coordinates)
}

// Length returns the great circle length of the line string.
func (l LineString) Length() s1.Angle {
	var length s1.Angle

	for i := 1; i < len(l.Coordinates); i++ {
		length += l.Coordinates[i-1].LatLng().Distance(l.Coordinates[i].LatLng())
	}

	return length
}

// Polygon is an area bounded by a single closed exterior ring. Interior
// rings are not retained.
type Polygon struct {
	Exterior []Coordinate
}

var _ Geometry = Polygon{}

func (p Polygon) isGeometry() {}

func (p Polygon) Type() GeometryType {
	return PolygonType
}

func (p Polygon) Bounds() BoundingBox {
	return *boundsOf(p.Exterior)
}

// Multi is a collection geometry. The first member encountered is the
// Parent; every later member is appended to Children.
type Multi struct {
	Kind     GeometryType
	Parent   Geometry
	Children []Geometry
}

var _ Geometry = Multi{}

func (m Multi) isGeometry() {}

func (m Multi) Type() GeometryType {
	return m.Kind
}

// Members returns the parent followed by the children.
func (m Multi) Members() []Geometry {
	if m.Parent == nil {
		return nil
	}

	members := make([]Geometry, 0, len(m.Children)+1)
	members = append(members, m.Parent)

	return append(members, m.Children...)
}

func (m Multi) Bounds() BoundingBox {
	bbox := InitialBoundingBox()

	for _, g := range m.Members() {
		b := g.Bounds()
		bbox.ExpandWithBoundingBox(&b)
	}

	return *bbox
}

// Length returns the great circle length of a geometry: the length of a
// line string, the perimeter of a polygon's exterior ring, the sum over the
// members of a collection and zero for a point.
func Length(g Geometry) s1.Angle {
	switch g := g.(type) {
	case LineString:
		return g.Length()
	case Polygon:
		return LineString{Coordinates: g.Exterior}.Length()
	case Multi:
		var length s1.Angle
		for _, m := range g.Members() {
			length += Length(m)
		}

		return length
	default:
		return 0
	}
}

func boundsOf(coordinates []Coordinate) *BoundingBox {
	bbox := InitialBoundingBox()

	for _, c := range coordinates {
		bbox.ExpandWithLatLng(c.Lat, c.Lon)
	}

	return bbox
}
