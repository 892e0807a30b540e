/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

// Kind identifies one of the seven GeoJSON geometry kinds. Its value is the
// exact string the "type" member carries on the wire.
type Kind string

const (
	KindPoint              Kind = "Point"
	KindMultiPoint         Kind = "MultiPoint"
	KindLineString         Kind = "LineString"
	KindMultiLineString    Kind = "MultiLineString"
	KindPolygon            Kind = "Polygon"
	KindMultiPolygon       Kind = "MultiPolygon"
	KindGeometryCollection Kind = "GeometryCollection"
)

// Kinds lists every geometry kind. Tests range over it to verify that each
// switch over Value stays exhaustive when a kind is added.
var Kinds = []Kind{
	KindPoint,
	KindMultiPoint,
	KindLineString,
	KindMultiLineString,
	KindPolygon,
	KindMultiPolygon,
	KindGeometryCollection,
}

// Value is one of the seven GeoJSON geometry values. The interface is sealed:
// only the seven types in this file implement it, so a type switch over all
// of them is exhaustive.
type Value interface {
	Kind() Kind

	sealedValue()
}

// Point is a single position.
type Point Position

// MultiPoint is a list of positions.
type MultiPoint []Position

// LineString is a list of two or more positions forming a line.
type LineString []Position

// MultiLineString is a list of LineString coordinate lists.
type MultiLineString [][]Position

// Polygon is a list of linear rings. By RFC 7946 convention ring 0, when
// present, is the exterior boundary and every later ring is a hole. A
// polygon with no rings at all is valid.
type Polygon [][]Position

// MultiPolygon is a list of Polygon ring lists.
type MultiPolygon [][][]Position

// GeometryCollection is a list of complete geometries, which may themselves
// be collections.
type GeometryCollection []Geometry

func (Point) Kind() Kind              { return KindPoint }
func (MultiPoint) Kind() Kind         { return KindMultiPoint }
func (LineString) Kind() Kind         { return KindLineString }
func (MultiLineString) Kind() Kind    { return KindMultiLineString }
func (Polygon) Kind() Kind            { return KindPolygon }
func (MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection) Kind() Kind { return KindGeometryCollection }

func (Point) sealedValue()              {}
func (MultiPoint) sealedValue()         {}
func (LineString) sealedValue()         {}
func (MultiLineString) sealedValue()    {}
func (Polygon) sealedValue()            {}
func (MultiPolygon) sealedValue()       {}
func (GeometryCollection) sealedValue() {}

// Exterior returns the polygon's outer ring, or nil for a polygon with no
// rings.
func (p Polygon) Exterior() []Position {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Interiors returns the polygon's holes, if any.
func (p Polygon) Interiors() [][]Position {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}
