/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/geojson"
	"github.com/hypermodeinc/geojson/chunker"
	"github.com/hypermodeinc/geojson/x"
)

// Check is the sub-command invoked when running "geojson check".
var Check x.SubCommand

func init() {
	Check.Cmd = &cobra.Command{
		Use:   "check",
		Short: "Validate a GeoJSON file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCheck(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Check.EnvPrefix = "GEOJSON_CHECK"

	flag := Check.Cmd.Flags()
	flag.StringP("file", "f", "", "GeoJSON file to validate (- for stdin)")
	flag.BoolP("stream", "s", false,
		"Stream the features array instead of parsing the whole document")
	x.Check(Check.Cmd.MarkFlagRequired("file"))
}

func runCheck() error {
	file := Check.Conf.GetString("file")
	rd, cleanup, err := chunker.FileReader(file)
	if err != nil {
		return err
	}
	defer cleanup()

	if !Check.GetBoolP("stream", "s", false) {
		doc, err := geojson.ParseReader(rd)
		if err != nil {
			return err
		}
		fmt.Printf("OK: valid %s\n", docType(doc))
		return nil
	}

	r := chunker.NewReader(rd)
	n := 0
	for {
		if _, err := r.Next(); err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrapf(err, "feature %d", n)
		}
		n++
	}
	fmt.Printf("OK: %s features\n", humanize.Comma(int64(n)))
	return nil
}

func docType(doc geojson.GeoJSON) string {
	switch d := doc.(type) {
	case *geojson.Geometry:
		return string(d.Value.Kind())
	case *geojson.Feature:
		return "Feature"
	case *geojson.FeatureCollection:
		return "FeatureCollection"
	default:
		return "document"
	}
}
