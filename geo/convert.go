/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo converts between the geojson object model and the go-geom
// geometry algebra, and provides zero-copy views so go-geom style algorithms
// can traverse geojson values in place. It also carries the S2 cell covering
// and earth distance helpers built on top of that conversion.
package geo

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

// defaultLayout is used for geometries with no coordinates to take a layout
// from.
var defaultLayout = geom.XY

// MismatchError reports a conversion requested for one geometry kind against
// a value holding another.
type MismatchError struct {
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("geo: cannot convert %s to %s", e.Got, e.Want)
}

func mismatch(want geojson.Kind, v geojson.Value) *MismatchError {
	return &MismatchError{Want: string(want), Got: string(v.Kind())}
}

// AsPoint converts a Point value to the algebra's point.
func AsPoint(v geojson.Value) (*geom.Point, error) {
	p, ok := v.(geojson.Point)
	if !ok {
		return nil, mismatch(geojson.KindPoint, v)
	}
	layout, err := layout0(geojson.Position(p))
	if err != nil {
		return nil, err
	}
	return geom.NewPoint(layout).SetCoords(geom.Coord(p))
}

// AsMultiPoint converts a MultiPoint value.
func AsMultiPoint(v geojson.Value) (*geom.MultiPoint, error) {
	mp, ok := v.(geojson.MultiPoint)
	if !ok {
		return nil, mismatch(geojson.KindMultiPoint, v)
	}
	layout, err := layout1(mp)
	if err != nil {
		return nil, err
	}
	return geom.NewMultiPoint(layout).SetCoords(coords1(mp))
}

// AsLineString converts a LineString value.
func AsLineString(v geojson.Value) (*geom.LineString, error) {
	ls, ok := v.(geojson.LineString)
	if !ok {
		return nil, mismatch(geojson.KindLineString, v)
	}
	layout, err := layout1(ls)
	if err != nil {
		return nil, err
	}
	return geom.NewLineString(layout).SetCoords(coords1(ls))
}

// AsMultiLineString converts a MultiLineString value.
func AsMultiLineString(v geojson.Value) (*geom.MultiLineString, error) {
	mls, ok := v.(geojson.MultiLineString)
	if !ok {
		return nil, mismatch(geojson.KindMultiLineString, v)
	}
	layout, err := layout2(mls)
	if err != nil {
		return nil, err
	}
	return geom.NewMultiLineString(layout).SetCoords(coords2(mls))
}

// AsPolygon converts a Polygon value. Ring 0 of the coordinate array becomes
// the exterior ring and every later ring a hole; a polygon with no rings
// converts to a polygon with no rings.
func AsPolygon(v geojson.Value) (*geom.Polygon, error) {
	p, ok := v.(geojson.Polygon)
	if !ok {
		return nil, mismatch(geojson.KindPolygon, v)
	}
	layout, err := layout2(p)
	if err != nil {
		return nil, err
	}
	return geom.NewPolygon(layout).SetCoords(coords2(p))
}

// AsMultiPolygon converts a MultiPolygon value.
func AsMultiPolygon(v geojson.Value) (*geom.MultiPolygon, error) {
	mp, ok := v.(geojson.MultiPolygon)
	if !ok {
		return nil, mismatch(geojson.KindMultiPolygon, v)
	}
	layout, err := layout3(mp)
	if err != nil {
		return nil, err
	}
	return geom.NewMultiPolygon(layout).SetCoords(coords3(mp))
}

// AsGeometryCollection converts a GeometryCollection value, recursively. The
// first inner conversion failure propagates; members are never dropped.
func AsGeometryCollection(v geojson.Value) (*geom.GeometryCollection, error) {
	gc, ok := v.(geojson.GeometryCollection)
	if !ok {
		return nil, mismatch(geojson.KindGeometryCollection, v)
	}
	out := geom.NewGeometryCollection()
	for i := range gc {
		t, err := ToGeom(gc[i].Value)
		if err != nil {
			return nil, err
		}
		if err := out.Push(t); err != nil {
			return nil, errors.Wrap(err, "building geometry collection")
		}
	}
	return out, nil
}

// ToGeom converts any Value to the structurally equivalent go-geom geometry.
func ToGeom(v geojson.Value) (geom.T, error) {
	switch v.(type) {
	case geojson.Point:
		return AsPoint(v)
	case geojson.MultiPoint:
		return AsMultiPoint(v)
	case geojson.LineString:
		return AsLineString(v)
	case geojson.MultiLineString:
		return AsMultiLineString(v)
	case geojson.Polygon:
		return AsPolygon(v)
	case geojson.MultiPolygon:
		return AsMultiPolygon(v)
	case geojson.GeometryCollection:
		return AsGeometryCollection(v)
	default:
		return nil, errors.Errorf("geo: unhandled geometry kind %q", v.Kind())
	}
}

// FromGeom converts a go-geom geometry back to a Value. The conversion is
// total over the algebra's own geometry types; only a foreign geom.T
// implementation fails. A LinearRing converts to a LineString.
func FromGeom(g geom.T) (geojson.Value, error) {
	switch g := g.(type) {
	case *geom.Point:
		return geojson.Point(g.Coords()), nil
	case *geom.MultiPoint:
		return geojson.MultiPoint(positions1(g.Coords())), nil
	case *geom.LineString:
		return geojson.LineString(positions1(g.Coords())), nil
	case *geom.LinearRing:
		return geojson.LineString(positions1(g.Coords())), nil
	case *geom.MultiLineString:
		return geojson.MultiLineString(positions2(g.Coords())), nil
	case *geom.Polygon:
		return geojson.Polygon(positions2(g.Coords())), nil
	case *geom.MultiPolygon:
		return geojson.MultiPolygon(positions3(g.Coords())), nil
	case *geom.GeometryCollection:
		gc := make(geojson.GeometryCollection, 0, g.NumGeoms())
		for _, inner := range g.Geoms() {
			v, err := FromGeom(inner)
			if err != nil {
				return nil, err
			}
			gc = append(gc, *geojson.NewGeometry(v))
		}
		return gc, nil
	default:
		return nil, errors.Errorf("geo: unsupported geometry type %T", g)
	}
}

func layout0(c geojson.Position) (geom.Layout, error) {
	switch n := len(c); n {
	case 0, 1:
		return geom.NoLayout, errors.Errorf("geo: dimensionality too low (%d)", n)
	case 2:
		return geom.XY, nil
	case 3:
		return geom.XYZ, nil
	case 4:
		return geom.XYZM, nil
	default:
		return geom.Layout(n), nil
	}
}

func layout1(cs []geojson.Position) (geom.Layout, error) {
	if len(cs) == 0 {
		return defaultLayout, nil
	}
	return layout0(cs[0])
}

func layout2(cs [][]geojson.Position) (geom.Layout, error) {
	if len(cs) == 0 {
		return defaultLayout, nil
	}
	return layout1(cs[0])
}

func layout3(cs [][][]geojson.Position) (geom.Layout, error) {
	if len(cs) == 0 {
		return defaultLayout, nil
	}
	return layout2(cs[0])
}

// The coords/positions helpers convert slice spines only; the individual
// positions are reused as coords without copying ordinates.

func coords1(ps []geojson.Position) []geom.Coord {
	cs := make([]geom.Coord, len(ps))
	for i, p := range ps {
		cs[i] = geom.Coord(p)
	}
	return cs
}

func coords2(ps [][]geojson.Position) [][]geom.Coord {
	cs := make([][]geom.Coord, len(ps))
	for i, p := range ps {
		cs[i] = coords1(p)
	}
	return cs
}

func coords3(ps [][][]geojson.Position) [][][]geom.Coord {
	cs := make([][][]geom.Coord, len(ps))
	for i, p := range ps {
		cs[i] = coords2(p)
	}
	return cs
}

func positions1(cs []geom.Coord) []geojson.Position {
	ps := make([]geojson.Position, len(cs))
	for i, c := range cs {
		ps[i] = geojson.Position(c)
	}
	return ps
}

func positions2(cs [][]geom.Coord) [][]geojson.Position {
	ps := make([][]geojson.Position, len(cs))
	for i, c := range cs {
		ps[i] = positions1(c)
	}
	return ps
}

func positions3(cs [][][]geom.Coord) [][][]geojson.Position {
	ps := make([][][]geojson.Position, len(cs))
	for i, c := range cs {
		ps[i] = positions2(c)
	}
	return ps
}
