/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/geojson"
)

func TestIndexCellsPoint(t *testing.T) {
	parents, cover, err := IndexCells(geojson.Point{-122.082506, 37.4249518})
	require.NoError(t, err)

	// One parent per level from MinCellLevel to MaxCellLevel, inclusive.
	require.Len(t, parents, MaxCellLevel-MinCellLevel+1)
	for i, c := range parents {
		require.Equal(t, MinCellLevel+i, c.Level())
		require.True(t, c.Contains(cover[0]))
	}

	require.Len(t, cover, 1)
	require.Equal(t, MaxCellLevel, cover[0].Level())
}

func squareRing(clockwise bool) []geojson.Position {
	ccw := []geojson.Position{
		{-122.09, 37.42}, {-122.07, 37.42}, {-122.07, 37.44}, {-122.09, 37.44}, {-122.09, 37.42},
	}
	if !clockwise {
		return ccw
	}
	cw := make([]geojson.Position, len(ccw))
	for i := range ccw {
		cw[i] = ccw[len(ccw)-1-i]
	}
	return cw
}

func TestIndexCellsPolygon(t *testing.T) {
	parents, cover, err := IndexCells(geojson.Polygon{squareRing(false)})
	require.NoError(t, err)
	require.NotEmpty(t, cover)
	require.NotEmpty(t, parents)

	for _, c := range cover {
		require.GreaterOrEqual(t, c.Level(), MinCellLevel)
		require.LessOrEqual(t, c.Level(), MaxCellLevel)
	}

	// Every parent of a cover cell down to the min level is in the parents.
	parentSet := make(map[s2.CellID]bool)
	for _, c := range parents {
		parentSet[c] = true
	}
	for _, c := range cover {
		for l := c.Level(); l >= MinCellLevel; l-- {
			require.True(t, parentSet[c.Parent(l)])
		}
	}
}

func TestIndexCellsWindingInsensitive(t *testing.T) {
	// geojson imposes no ring orientation, so both windings must cover the
	// same region.
	_, ccw, err := IndexCells(geojson.Polygon{squareRing(false)})
	require.NoError(t, err)
	_, cw, err := IndexCells(geojson.Polygon{squareRing(true)})
	require.NoError(t, err)
	require.Equal(t, ccw, cw)
}

func TestIndexCellsErrors(t *testing.T) {
	_, _, err := IndexCells(geojson.LineString{{0, 0}, {1, 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot cover")

	_, _, err = IndexCells(geojson.Point{1, 2, 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "2D")

	_, _, err = IndexCells(geojson.Polygon{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no rings")

	_, _, err = IndexCells(geojson.Polygon{{{0, 0}, {1, 1}, {0, 0}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "4 points")
}

func TestIndexTokens(t *testing.T) {
	toks, err := IndexTokens(geojson.Point{-122.082506, 37.4249518})
	require.NoError(t, err)
	require.Len(t, toks, MaxCellLevel-MinCellLevel+2)

	var nParents, nCover int
	seen := make(map[string]bool)
	for _, tok := range toks {
		require.False(t, seen[tok])
		seen[tok] = true
		switch {
		case strings.HasPrefix(tok, "p/"):
			nParents++
		case strings.HasPrefix(tok, "c/"):
			nCover++
		default:
			t.Fatalf("token %q has no prefix", tok)
		}
	}
	require.Equal(t, MaxCellLevel-MinCellLevel+1, nParents)
	require.Equal(t, 1, nCover)
}

func TestEarthDistance(t *testing.T) {
	require.InDelta(t, 1000, float64(EarthDistance(EarthAngle(1000))), 1e-9)

	// A degree of latitude is about 111 km on the spherical model.
	a := s2.LatLngFromDegrees(0, 0)
	b := s2.LatLngFromDegrees(1, 0)
	d := EarthDistance(a.Distance(b))
	require.InDelta(t, 111195, float64(d), 10)
}

func TestLengthString(t *testing.T) {
	require.Equal(t, "500.000 m", Length(500).String())
	require.Equal(t, "2.500 km", Length(2500).String())
	require.Equal(t, "50.000 cm", Length(0.5).String())
}

func TestAreaString(t *testing.T) {
	require.Equal(t, "500.000 m^2", Area(500).String())
	require.Equal(t, "2.500 km^2", Area(2500000).String())
	require.Equal(t, "50.000 cm^2", Area(0.005).String())
}

func TestEarthArea(t *testing.T) {
	require.Equal(t, Area(EarthRadiusMeters*EarthRadiusMeters), EarthArea(1))

	// The whole sphere is 4*pi steradians.
	sphere := 4 * math.Pi * EarthRadiusMeters * EarthRadiusMeters
	require.InEpsilon(t, sphere, float64(EarthArea(4*math.Pi)), 1e-12)
}
