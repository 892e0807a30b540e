/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package chunker

import (
	"bufio"
	"compress/gzip"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FileReader returns an open reader on the given file. Gzip-compressed input
// is detected and decompressed automatically even without the gz extension.
// "-" means stdin. The caller is responsible for calling the returned
// cleanup function when done with the reader.
func FileReader(file string) (*bufio.Reader, func(), error) {
	var f *os.File
	var err error
	if file == "-" {
		f = os.Stdin
	} else {
		f, err = os.Open(file)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", file)
	}
	rd, cleanup, err := StreamReader(file, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return rd, cleanup, nil
}

// StreamReader returns a bufio.Reader given a ReadCloser. The file name is
// only used to check for a .gz extension.
func StreamReader(file string, f io.ReadCloser) (*bufio.Reader, func(), error) {
	cleanup := func() {
		if err := f.Close(); err != nil {
			glog.Warningf("Error closing %s: %v", file, err)
		}
	}

	if filepath.Ext(file) == ".gz" {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decompressing %s", file)
		}
		return bufio.NewReader(gzr), func() {
			if err := gzr.Close(); err != nil {
				glog.Warningf("Error closing gzip reader for %s: %v", file, err)
			}
			cleanup()
		}, nil
	}

	rd := bufio.NewReader(f)
	buf, _ := rd.Peek(512)
	if http.DetectContentType(buf) == "application/x-gzip" {
		gzr, err := gzip.NewReader(rd)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decompressing %s", file)
		}
		return bufio.NewReader(gzr), func() {
			if err := gzr.Close(); err != nil {
				glog.Warningf("Error closing gzip reader for %s: %v", file, err)
			}
			cleanup()
		}, nil
	}
	return rd, cleanup, nil
}
