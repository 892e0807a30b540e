/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

// Float constrains the coordinate precision of the flat-coordinate helpers.
type Float interface {
	~float32 | ~float64
}

// Flat holds a geometry's coordinates in the algebra's flat layout at
// precision F: one contiguous ordinate slice, with Ends marking ring or line
// boundaries and Endss marking polygon boundaries, both as cumulative
// ordinate counts the way go-geom's flat constructors expect them.
type Flat[F Float] struct {
	Layout geom.Layout
	Coords []F
	Ends   []int
	Endss  [][]int
}

// FlatCoords flattens a Value at caller-chosen precision. Geometry
// collections have no flat form and are rejected.
func FlatCoords[F Float](v geojson.Value) (*Flat[F], error) {
	switch v := v.(type) {
	case geojson.Point:
		layout, err := layout0(geojson.Position(v))
		if err != nil {
			return nil, err
		}
		coords, err := flatten0[F](nil, geojson.Position(v), layout.Stride())
		if err != nil {
			return nil, err
		}
		return &Flat[F]{Layout: layout, Coords: coords}, nil
	case geojson.MultiPoint:
		return flat1[F]([]geojson.Position(v))
	case geojson.LineString:
		return flat1[F]([]geojson.Position(v))
	case geojson.MultiLineString:
		return flat2[F]([][]geojson.Position(v))
	case geojson.Polygon:
		return flat2[F]([][]geojson.Position(v))
	case geojson.MultiPolygon:
		layout, err := layout3(v)
		if err != nil {
			return nil, err
		}
		f := &Flat[F]{Layout: layout}
		for _, rings := range v {
			var ends []int
			for _, ring := range rings {
				for _, p := range ring {
					if f.Coords, err = flatten0(f.Coords, p, layout.Stride()); err != nil {
						return nil, err
					}
				}
				ends = append(ends, len(f.Coords))
			}
			f.Endss = append(f.Endss, ends)
		}
		return f, nil
	case geojson.GeometryCollection:
		return nil, errors.Errorf("geo: geometry collections have no flat form")
	default:
		return nil, errors.Errorf("geo: unhandled geometry kind %q", v.Kind())
	}
}

func flat1[F Float](ps []geojson.Position) (*Flat[F], error) {
	layout, err := layout1(ps)
	if err != nil {
		return nil, err
	}
	f := &Flat[F]{Layout: layout}
	for _, p := range ps {
		if f.Coords, err = flatten0(f.Coords, p, layout.Stride()); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func flat2[F Float](ps [][]geojson.Position) (*Flat[F], error) {
	layout, err := layout2(ps)
	if err != nil {
		return nil, err
	}
	f := &Flat[F]{Layout: layout}
	for _, line := range ps {
		for _, p := range line {
			if f.Coords, err = flatten0(f.Coords, p, layout.Stride()); err != nil {
				return nil, err
			}
		}
		f.Ends = append(f.Ends, len(f.Coords))
	}
	return f, nil
}

func flatten0[F Float](dst []F, p geojson.Position, stride int) ([]F, error) {
	if len(p) != stride {
		return nil, errors.Errorf("geo: position has %d ordinates, layout needs %d", len(p), stride)
	}
	for _, o := range p {
		dst = append(dst, F(o))
	}
	return dst, nil
}
