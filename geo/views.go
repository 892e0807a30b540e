/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

// The view types wrap a geojson value's nested position data in the
// traversal vocabulary of the go-geom types, without copying anything. A
// view aliases the value's memory: Coord(i) returns the i-th Position itself
// as a geom.Coord.

// CoordSequence is the traversal contract shared by the view types and the
// algebra's own coordinate containers, so an algorithm can be written once
// against either.
type CoordSequence interface {
	NumCoords() int
	Coord(i int) geom.Coord
}

var (
	_ CoordSequence = (*geom.LineString)(nil)
	_ CoordSequence = (*geom.LinearRing)(nil)
	_ CoordSequence = LineView(nil)
	_ CoordSequence = RingView(nil)
)

// PointView adapts a Point value.
type PointView geojson.Point

// Coord returns the point's position as a coordinate, sharing memory.
func (v PointView) Coord() geom.Coord { return geom.Coord(v) }

// LineView adapts a LineString or MultiPoint value.
type LineView []geojson.Position

func (v LineView) NumCoords() int         { return len(v) }
func (v LineView) Coord(i int) geom.Coord { return geom.Coord(v[i]) }

// RingView adapts one linear ring of a Polygon.
type RingView []geojson.Position

func (v RingView) NumCoords() int         { return len(v) }
func (v RingView) Coord(i int) geom.Coord { return geom.Coord(v[i]) }

// MultiLineView adapts a MultiLineString value.
type MultiLineView geojson.MultiLineString

func (v MultiLineView) NumLineStrings() int       { return len(v) }
func (v MultiLineView) LineString(i int) LineView { return LineView(v[i]) }

// PolyView adapts a Polygon value. Ring 0 is the exterior.
type PolyView geojson.Polygon

func (v PolyView) NumLinearRings() int       { return len(v) }
func (v PolyView) LinearRing(i int) RingView { return RingView(v[i]) }

// Exterior returns the outer ring view, nil for a ring-less polygon.
func (v PolyView) Exterior() RingView {
	if len(v) == 0 {
		return nil
	}
	return RingView(v[0])
}

// MultiPolyView adapts a MultiPolygon value.
type MultiPolyView geojson.MultiPolygon

func (v MultiPolyView) NumPolygons() int      { return len(v) }
func (v MultiPolyView) Polygon(i int) PolyView { return PolyView(v[i]) }
