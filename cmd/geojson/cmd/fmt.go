/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/geojson"
	"github.com/hypermodeinc/geojson/chunker"
	"github.com/hypermodeinc/geojson/x"
)

// Fmt is the sub-command invoked when running "geojson fmt".
var Fmt x.SubCommand

func init() {
	Fmt.Cmd = &cobra.Command{
		Use:   "fmt",
		Short: "Reparse and rewrite a GeoJSON file",
		Long: `
Reads a GeoJSON file and writes it back out, normalized. With --stream, the
features of a FeatureCollection are passed through one at a time instead of
materializing the document; foreign members of the enclosing collection are
not preserved on that path.
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runFmt(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
	Fmt.EnvPrefix = "GEOJSON_FMT"

	flag := Fmt.Cmd.Flags()
	flag.StringP("file", "f", "", "GeoJSON file to rewrite (- for stdin)")
	flag.StringP("out", "o", "-", "Output file (- for stdout)")
	flag.Bool("pretty", false, "Indent the output")
	flag.Bool("stream", false, "Pass features through one at a time")
	x.Check(Fmt.Cmd.MarkFlagRequired("file"))
}

func runFmt() error {
	rd, cleanup, err := chunker.FileReader(Fmt.Conf.GetString("file"))
	if err != nil {
		return err
	}
	defer cleanup()

	var out io.Writer = os.Stdout
	if dst := Fmt.GetStringP("out", "o", "-"); dst != "-" {
		f, err := os.Create(dst)
		if err != nil {
			return errors.Wrapf(err, "creating %s", dst)
		}
		defer func() { x.Checkf(f.Close(), "closing %s", dst) }()
		bw := bufio.NewWriter(f)
		defer func() { x.Checkf(bw.Flush(), "flushing %s", dst) }()
		out = bw
	}

	if Fmt.Conf.GetBool("stream") {
		return streamFmt(rd, out)
	}

	doc, err := geojson.ParseReader(rd)
	if err != nil {
		return err
	}
	var data []byte
	if Fmt.Conf.GetBool("pretty") {
		data, err = geojson.MarshalIndent(doc, "", "  ")
	} else {
		data, err = geojson.Marshal(doc)
	}
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "writing output")
	}
	_, err = io.WriteString(out, "\n")
	return errors.Wrap(err, "writing output")
}

func streamFmt(rd io.Reader, out io.Writer) error {
	r := chunker.NewReader(rd)
	w := chunker.NewWriter(out)
	n := 0
	for {
		f, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "feature %d", n)
		}
		if err := w.WriteFeature(f); err != nil {
			return err
		}
		n++
	}
	if err := w.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return errors.Wrap(err, "writing output")
}
