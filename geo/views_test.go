/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

// sequenceLength is written against CoordSequence so it runs over both a view
// and a real go-geom container.
func sequenceLength(s CoordSequence) float64 {
	var total float64
	for i := 1; i < s.NumCoords(); i++ {
		a, b := s.Coord(i-1), s.Coord(i)
		dx, dy := b.X()-a.X(), b.Y()-a.Y()
		total += dx*dx + dy*dy
	}
	return total
}

func TestViewsShareAlgorithms(t *testing.T) {
	ls := geojson.LineString{{0, 0}, {3, 4}}
	view := LineView(ls)

	g, err := AsLineString(ls)
	require.NoError(t, err)

	require.Equal(t, 25.0, sequenceLength(view))
	require.Equal(t, sequenceLength(g), sequenceLength(view))
}

func TestViewsAreZeroCopy(t *testing.T) {
	ls := geojson.LineString{{0, 0}, {1, 1}}
	view := LineView(ls)

	// The view sees mutations of the value...
	ls[0][0] = 7
	require.Equal(t, 7.0, view.Coord(0).X())

	// ...and mutations through the view reach the value.
	view.Coord(1)[1] = 9
	require.Equal(t, 9.0, ls[1].Y())
}

func TestPolyView(t *testing.T) {
	p := geojson.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 2}},
	}
	v := PolyView(p)
	require.Equal(t, 2, v.NumLinearRings())
	require.Equal(t, 4, v.Exterior().NumCoords())
	require.Equal(t, geom.Coord{2, 2}, v.LinearRing(1).Coord(0))

	require.Nil(t, PolyView(geojson.Polygon{}).Exterior())
}

func TestMultiViews(t *testing.T) {
	mls := geojson.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}, {4, 4}}}
	mv := MultiLineView(mls)
	require.Equal(t, 2, mv.NumLineStrings())
	require.Equal(t, 3, mv.LineString(1).NumCoords())

	mp := geojson.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}
	pv := MultiPolyView(mp)
	require.Equal(t, 1, pv.NumPolygons())
	require.Equal(t, geom.Coord{1, 1}, pv.Polygon(0).Exterior().Coord(2))
}

func TestPointView(t *testing.T) {
	p := geojson.Point{5, 6}
	require.Equal(t, geom.Coord{5, 6}, PointView(p).Coord())
}

func TestGeoFieldRoundTrip(t *testing.T) {
	type station struct {
		Name     string `json:"name"`
		Location Geo    `json:"location"`
	}
	in := station{
		Name:     "north",
		Location: Geo{geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{13.4, 52.5})},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"north","location":{"type":"Point","coordinates":[13.4,52.5]}}`, string(data))

	var out station
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, "north", out.Name)
	require.Equal(t, geom.Coord{13.4, 52.5}, out.Location.T.(*geom.Point).Coords())
	require.Equal(t, "<geodata>", out.Location.String())
}

func TestQuickCollection(t *testing.T) {
	doc, err := geojson.ParseString(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":null},
		{"type":"Feature","geometry":null,"properties":null},
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":null}
	]}`)
	require.NoError(t, err)

	gc, err := QuickCollection(doc)
	require.NoError(t, err)
	require.Equal(t, 2, gc.NumGeoms())

	// A bare geometry document collects to a singleton.
	doc, err = geojson.ParseString(`{"type":"Point","coordinates":[1,2]}`)
	require.NoError(t, err)
	gc, err = QuickCollection(doc)
	require.NoError(t, err)
	require.Equal(t, 1, gc.NumGeoms())
}
