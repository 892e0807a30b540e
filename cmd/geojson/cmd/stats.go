/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/geojson"
	"github.com/hypermodeinc/geojson/chunker"
	"github.com/hypermodeinc/geojson/geo"
	"github.com/hypermodeinc/geojson/x"
)

// Stats is the sub-command invoked when running "geojson stats".
var Stats x.SubCommand

func init() {
	Stats.Cmd = &cobra.Command{
		Use:   "stats",
		Short: "Summarize the features of a GeoJSON file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runStats(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Stats.EnvPrefix = "GEOJSON_STATS"

	flag := Stats.Cmd.Flags()
	flag.StringP("file", "f", "", "GeoJSON file to summarize (- for stdin)")
	flag.IntP("limit", "l", 0, "Stop after this many features (0 means no limit)")
	x.Check(Stats.Cmd.MarkFlagRequired("file"))
}

func runStats() error {
	file := Stats.Conf.GetString("file")
	rd, cleanup, err := chunker.FileReader(file)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		total       int
		noGeometry  int
		kinds       = make(map[geojson.Kind]int)
		lineLength  geo.Length
		polyArea    geo.Area
		bbox        geojson.BBox
		bboxPresent = true
	)

	limit := Stats.GetIntP("limit", "l", 0)
	r := chunker.NewReader(rd)
	for limit == 0 || total < limit {
		f, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "feature %d", total)
		}
		total++
		bbox, bboxPresent = unionBBox(bbox, bboxPresent, total, f.BBox)
		if f.Geometry == nil {
			noGeometry++
			continue
		}
		kinds[f.Geometry.Value.Kind()]++
		if ls, ok := f.Geometry.Value.(geojson.LineString); ok {
			lineLength += lineStringLength(ls)
		}
		if p, ok := f.Geometry.Value.(geojson.Polygon); ok {
			polyArea += polygonArea(p)
		}
	}

	fmt.Printf("features:      %s\n", humanize.Comma(int64(total)))
	for _, k := range geojson.Kinds {
		if kinds[k] > 0 {
			fmt.Printf("  %-19s %s\n", string(k)+":", humanize.Comma(int64(kinds[k])))
		}
	}
	if noGeometry > 0 {
		fmt.Printf("  %-19s %s\n", "null geometry:", humanize.Comma(int64(noGeometry)))
	}
	if bboxPresent && len(bbox) > 0 {
		fmt.Printf("bbox union:    %v\n", []float64(bbox))
	} else {
		fmt.Println("bbox union:    none")
	}
	if lineLength > 0 {
		fmt.Printf("line length:   %s\n", lineLength)
	}
	if polyArea > 0 {
		fmt.Printf("polygon area:  %s\n", polyArea)
	}
	if file != "-" {
		if info, err := os.Stat(file); err == nil {
			fmt.Printf("input size:    %s\n", humanize.Bytes(uint64(info.Size())))
		}
	}
	return nil
}

// unionBBox folds one feature's bbox into the running union, with the same
// rule the collection constructor uses: every feature must carry a bbox of
// one shared even dimension, or the union is absent.
func unionBBox(acc geojson.BBox, present bool, seen int, b geojson.BBox) (geojson.BBox, bool) {
	if !present || len(b) == 0 || len(b)%2 != 0 {
		return nil, false
	}
	if seen == 1 {
		return append(geojson.BBox(nil), b...), true
	}
	if len(b) != len(acc) {
		return nil, false
	}
	k := len(b) / 2
	for i := 0; i < k; i++ {
		acc[i] = math.Min(acc[i], b[i])
		acc[k+i] = math.Max(acc[k+i], b[k+i])
	}
	return acc, true
}

// polygonArea computes the spherical area enclosed by a 2D polygon's
// exterior ring, ignoring holes. Either winding is accepted.
func polygonArea(p geojson.Polygon) geo.Area {
	view := geo.PolyView(p)
	if view.NumLinearRings() == 0 {
		return 0
	}
	ring := view.Exterior()
	if ring.NumCoords() < 4 {
		return 0
	}
	// s2 loops are open; drop the repeated closing vertex.
	pts := make([]s2.Point, 0, ring.NumCoords()-1)
	for i := 0; i < ring.NumCoords()-1; i++ {
		c := ring.Coord(i)
		if len(c) < 2 {
			return 0
		}
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(c.Y(), c.X())))
	}
	loop := s2.LoopFromPoints(pts)
	if loop.Area() > 2*math.Pi {
		loop.Invert()
	}
	return geo.EarthArea(loop.Area())
}

// lineStringLength sums the great-circle distance along a 2D line string.
func lineStringLength(ls geojson.LineString) geo.Length {
	view := geo.LineView(ls)
	var total geo.Length
	for i := 1; i < view.NumCoords(); i++ {
		a, b := view.Coord(i-1), view.Coord(i)
		if len(a) < 2 || len(b) < 2 {
			continue
		}
		lla := s2.LatLngFromDegrees(a.Y(), a.X())
		llb := s2.LatLngFromDegrees(b.Y(), b.X())
		total += geo.EarthDistance(lla.Distance(llb))
	}
	return total
}
