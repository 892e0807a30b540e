/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

func TestAsPoint(t *testing.T) {
	p, err := AsPoint(geojson.Point{125.6, 10.1})
	require.NoError(t, err)
	require.Equal(t, geom.XY, p.Layout())
	require.Equal(t, geom.Coord{125.6, 10.1}, p.Coords())

	p, err = AsPoint(geojson.Point{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, p.Layout())

	p, err = AsPoint(geojson.Point{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, geom.XYZM, p.Layout())

	_, err = AsPoint(geojson.Point{1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "dimensionality")
}

func TestAsPolygonRingConvention(t *testing.T) {
	exterior := []geojson.Position{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := []geojson.Position{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}
	p, err := AsPolygon(geojson.Polygon{exterior, hole})
	require.NoError(t, err)
	require.Equal(t, 2, p.NumLinearRings())
	require.Equal(t, geom.Coord{0, 0}, p.LinearRing(0).Coord(0))
	require.Equal(t, geom.Coord{2, 2}, p.LinearRing(1).Coord(0))

	empty, err := AsPolygon(geojson.Polygon{})
	require.NoError(t, err)
	require.Equal(t, 0, empty.NumLinearRings())
}

func TestAsGeometryCollection(t *testing.T) {
	gc, err := AsGeometryCollection(geojson.GeometryCollection{
		*geojson.NewGeometry(geojson.Point{1, 2}),
		*geojson.NewGeometry(geojson.GeometryCollection{
			*geojson.NewGeometry(geojson.LineString{{0, 0}, {1, 1}}),
		}),
	})
	require.NoError(t, err)
	require.Equal(t, 2, gc.NumGeoms())
	require.IsType(t, &geom.Point{}, gc.Geom(0))
	require.IsType(t, &geom.GeometryCollection{}, gc.Geom(1))

	// An invalid member fails the whole conversion.
	_, err = AsGeometryCollection(geojson.GeometryCollection{
		*geojson.NewGeometry(geojson.Point{1}),
	})
	require.Error(t, err)
}

func TestMismatch(t *testing.T) {
	_, err := AsPoint(geojson.LineString{{0, 0}, {1, 1}})
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	require.Equal(t, "Point", me.Want)
	require.Equal(t, "LineString", me.Got)
	require.Contains(t, err.Error(), "cannot convert LineString to Point")

	_, err = AsPolygon(geojson.MultiPolygon{})
	require.ErrorAs(t, err, &me)
	require.Equal(t, "Polygon", me.Want)
	require.Equal(t, "MultiPolygon", me.Got)
}

func TestConversionSymmetry(t *testing.T) {
	values := []geojson.Value{
		geojson.Point{1, 2},
		geojson.MultiPoint{{1, 2}, {3, 4}},
		geojson.LineString{{0, 0}, {1, 1}, {2, 0}},
		geojson.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}},
		geojson.Polygon{{{0, 0}, {4, 0}, {4, 4}, {0, 0}}},
		geojson.MultiPolygon{{{{0, 0}, {4, 0}, {4, 4}, {0, 0}}}},
		geojson.GeometryCollection{*geojson.NewGeometry(geojson.Point{9, 9})},
	}
	for _, v := range values {
		t.Run(string(v.Kind()), func(t *testing.T) {
			g, err := ToGeom(v)
			require.NoError(t, err)
			back, err := FromGeom(g)
			require.NoError(t, err)
			require.Equal(t, v, back)
		})
	}
}

func TestFromGeomLinearRing(t *testing.T) {
	r := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	v, err := FromGeom(r)
	require.NoError(t, err)
	require.Equal(t, geojson.LineString{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, v)
}

type fakeGeom struct{ geom.T }

func TestFromGeomForeignType(t *testing.T) {
	_, err := FromGeom(fakeGeom{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported geometry type")
}

func TestConversionCopiesCoordinates(t *testing.T) {
	ls := geojson.LineString{{0, 0}, {1, 1}}
	g, err := AsLineString(ls)
	require.NoError(t, err)

	// go-geom repacks coordinates into its flat form, so mutations there do
	// not flow back; the geojson value is untouched by conversion.
	g.FlatCoords()[0] = 42
	require.Equal(t, 0.0, ls[0].X())
}

func TestFlatCoords(t *testing.T) {
	ls := geojson.LineString{{0, 1}, {2, 3}, {4, 5}}
	f64, err := FlatCoords[float64](ls)
	require.NoError(t, err)
	require.Equal(t, geom.XY, f64.Layout)
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, f64.Coords)
	require.Nil(t, f64.Ends)
	require.Nil(t, f64.Endss)

	f32, err := FlatCoords[float32](ls)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 1, 2, 3, 4, 5}, f32.Coords)

	p, err := FlatCoords[float64](geojson.Point{7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, geom.XYZ, p.Layout)
	require.Equal(t, []float64{7, 8, 9}, p.Coords)
}

func TestFlatCoordsEnds(t *testing.T) {
	poly := geojson.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
	}
	f, err := FlatCoords[float64](poly)
	require.NoError(t, err)
	require.Len(t, f.Coords, 16)
	require.Equal(t, []int{8, 16}, f.Ends)

	mp := geojson.MultiPolygon{
		{{{0, 0}, {4, 0}, {4, 4}, {0, 0}}},
		{{{9, 9}, {10, 9}, {10, 10}, {9, 9}}},
	}
	fm, err := FlatCoords[float64](mp)
	require.NoError(t, err)
	require.Equal(t, [][]int{{8}, {16}}, fm.Endss)

	// The flat slices really do feed go-geom's flat constructors.
	g := geom.NewPolygonFlat(f.Layout, f.Coords, f.Ends)
	require.Equal(t, 2, g.NumLinearRings())
}

func TestFlatCoordsErrors(t *testing.T) {
	_, err := FlatCoords[float64](geojson.GeometryCollection{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no flat form")

	// Mixed dimensionality cannot flatten.
	_, err = FlatCoords[float64](geojson.LineString{{0, 0}, {1, 1, 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ordinates")
}
