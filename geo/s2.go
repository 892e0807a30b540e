/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

const (
	// MinCellLevel is the smallest cell level (largest cell size) used by covering.
	MinCellLevel = 5 // Approx 250km x 380km
	// MaxCellLevel is the largest cell level (smallest cell size) used by covering.
	MaxCellLevel = 16 // Approx 120m x 180m
	// MaxCells is the maximum number of cells to use when covering regions.
	MaxCells = 18

	parentPrefix = "p/"
	coverPrefix  = "c/"
)

// IndexCells returns two cell unions for a geometry. The first is a list of
// parents, which are all the cells up to the min level that contain it. The
// second is the cover, the smallest possible cells required to cover the
// region. Keeping them separate makes it possible to later query only the
// parents or only the cover depending on whether a lookup is a within,
// contains or intersects question. Only Point and Polygon values can be
// covered.
func IndexCells(v geojson.Value) (parents, cover s2.CellUnion, err error) {
	switch v := v.(type) {
	case geojson.Point:
		g, err := AsPoint(v)
		if err != nil {
			return nil, nil, err
		}
		if g.Stride() != 2 {
			return nil, nil, errors.Errorf("geo: covering only available for 2D coordinates")
		}
		p, c := indexCellsForPoint(g, MinCellLevel, MaxCellLevel)
		return p, c, nil
	case geojson.Polygon:
		g, err := AsPolygon(v)
		if err != nil {
			return nil, nil, err
		}
		if g.Stride() != 2 {
			return nil, nil, errors.Errorf("geo: covering only available for 2D coordinates")
		}
		l, err := loopFromPolygon(g)
		if err != nil {
			return nil, nil, err
		}
		cover := coverLoop(l, MinCellLevel, MaxCellLevel, MaxCells)
		parents := parentCells(cover, MinCellLevel)
		return parents, cover, nil
	default:
		return nil, nil, errors.Errorf("geo: cannot cover geometry of kind %q", v.Kind())
	}
}

// IndexTokens returns the cell tokens for a geometry, parents prefixed with
// "p/" and cover cells with "c/".
func IndexTokens(v geojson.Value) ([]string, error) {
	parents, cover, err := IndexCells(v)
	if err != nil {
		return nil, err
	}
	toks := make([]string, 0, len(parents)+len(cover))
	for _, c := range parents {
		toks = append(toks, parentPrefix+c.ToToken())
	}
	for _, c := range cover {
		toks = append(toks, coverPrefix+c.ToToken())
	}
	return toks, nil
}

func pointFromCoord(r geom.Coord) s2.Point {
	// The geojson spec says that coordinates are specified as [long, lat].
	ll := s2.LatLngFromDegrees(r.Y(), r.X())
	return s2.PointFromLatLng(ll)
}

// loopFromPolygon converts a geom.Polygon to an s2.Loop. We use loops instead
// of s2.Polygon as the s2.Polygon implementation is incomplete: it does not
// support more than one loop, so the holes in the polygon are skipped and
// only the outer ring is used.
func loopFromPolygon(p *geom.Polygon) (*s2.Loop, error) {
	if p.NumLinearRings() == 0 {
		return nil, errors.Errorf("geo: can't convert polygon with no rings")
	}
	r := p.LinearRing(0)
	n := r.NumCoords()
	if n < 4 {
		return nil, errors.Errorf("geo: can't convert ring with less than 4 points")
	}
	// S2 specifies that the orientation of the polygons should be CCW.
	// However there is no restriction on the orientation in geojson. To get
	// the correct orientation we assume that the polygons are always less
	// than one hemisphere. If they are bigger, we flip the orientation.
	reverse := isClockwise(r)
	l := loopFromRing(r, reverse)

	// Since our clockwise check was approximate, we check the cap and
	// reverse if needed.
	if l.CapBound().Radius().Degrees() > 90 {
		l = loopFromRing(r, !reverse)
	}
	return l, nil
}

// isClockwise checks the winding of a ring with the shoelace formula. The
// algorithm is for planar polygons and doesn't work for spherical polygons
// that contain the poles or the antimeridian discontinuity; we use it as a
// fast approximation.
func isClockwise(r *geom.LinearRing) bool {
	var a float64
	n := r.NumCoords()
	for i := 0; i < n; i++ {
		p1 := r.Coord(i)
		p2 := r.Coord((i + 1) % n)
		a += (p2.X() - p1.X()) * (p1.Y() + p2.Y())
	}
	return a > 0
}

func loopFromRing(r *geom.LinearRing, reverse bool) *s2.Loop {
	// In geojson the last coordinate is repeated for a ring to form a closed
	// loop. For s2 the points aren't allowed to repeat and the loop is
	// assumed to be closed, so we skip the last point.
	n := r.NumCoords()
	pts := make([]s2.Point, n-1)
	for i := 0; i < n-1; i++ {
		var c geom.Coord
		if reverse {
			c = r.Coord(n - 1 - i)
		} else {
			c = r.Coord(i)
		}
		pts[i] = pointFromCoord(c)
	}
	return s2.LoopFromPoints(pts)
}

// indexCellsForPoint creates cells for a point from minLevel to maxLevel,
// both inclusive.
func indexCellsForPoint(p *geom.Point, minLevel, maxLevel int) (s2.CellUnion, s2.CellUnion) {
	ll := s2.LatLngFromDegrees(p.Y(), p.X())
	c := s2.CellIDFromLatLng(ll)
	cells := make([]s2.CellID, maxLevel-minLevel+1)
	for l := minLevel; l <= maxLevel; l++ {
		cells[l-minLevel] = c.Parent(l)
	}
	return cells, []s2.CellID{c.Parent(maxLevel)}
}

func parentCells(cu s2.CellUnion, minLevel int) s2.CellUnion {
	parents := make(map[s2.CellID]bool)
	for _, c := range cu {
		for l := c.Level(); l >= minLevel; l-- {
			parents[c.Parent(l)] = true
		}
	}
	cells := make([]s2.CellID, 0, len(parents))
	for k := range parents {
		cells = append(cells, k)
	}
	return cells
}

func coverLoop(l *s2.Loop, minLevel, maxLevel, maxCells int) s2.CellUnion {
	rc := &s2.RegionCoverer{
		MinLevel: minLevel,
		MaxLevel: maxLevel,
		LevelMod: 0,
		MaxCells: maxCells,
	}
	return rc.Covering(l)
}
