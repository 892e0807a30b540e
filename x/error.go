/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

// This file contains some functions for error handling. These are useful for
// simple checks logged on one machine. Some common use cases are:
// (1) You receive an error from an external lib, and would like to check/log
//     fatal. For this, use x.Check, x.Checkf. These check for err != nil, which
//     is more common in Go.
// (2) You receive an error from an external lib, and would like to pass it on
//     with some stack trace information. In this case, use errors.Wrapf.
// (3) You want to generate a new error with stack trace info. Use errors.Errorf.

import (
	"log"

	"github.com/pkg/errors"
)

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		err = errors.Wrap(err, "")
		log.Fatalf("%+v", err)
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		err = errors.Wrapf(err, format, args...)
		log.Fatalf("%+v", err)
	}
}
