/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import "fmt"

// MalformedError reports input the underlying JSON parser rejected. The
// parser's diagnostic is carried unchanged and available via Unwrap.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return "geojson: malformed JSON: " + e.Err.Error()
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// MemberError reports a member whose value is well-formed JSON of the wrong
// shape, e.g. an "id" holding an object or a "geometry" holding a string.
type MemberError struct {
	Member   string
	Expected string
	Got      string
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("geojson: member %q: expected %s, got %s", e.Member, e.Expected, e.Got)
}

// UnknownTypeError reports a missing "type" member or a "type" string that
// names none of the nine GeoJSON object types.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	if e.Type == "" {
		return `geojson: missing "type" member`
	}
	return fmt.Sprintf("geojson: unknown type %q", e.Type)
}

// MismatchedTypeError reports a document holding one GeoJSON type where the
// caller required another, e.g. a Geometry where a Feature was expected.
type MismatchedTypeError struct {
	Expected string
	Actual   string
}

func (e *MismatchedTypeError) Error() string {
	return fmt.Sprintf("geojson: expected %s, got %s", e.Expected, e.Actual)
}
