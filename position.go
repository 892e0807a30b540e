/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"encoding/json"
	"strconv"
)

// A Position is a single coordinate: x and y ordinates plus an optional z
// and an optional fourth dimension. RFC 7946 requires at least two ordinates;
// parsing enforces that, and the accessors for the optional ordinates panic
// when asked for a dimension the position does not carry, the same way slice
// indexing would.
type Position []float64

// X returns the first ordinate (longitude for geographic coordinates).
func (p Position) X() float64 { return p[0] }

// Y returns the second ordinate (latitude for geographic coordinates).
func (p Position) Y() float64 { return p[1] }

// Z returns the third ordinate. It panics if p is two-dimensional.
func (p Position) Z() float64 { return p[2] }

// M returns the fourth ordinate. It panics if p has fewer than four.
func (p Position) M() float64 { return p[3] }

func (p *Position) UnmarshalJSON(data []byte) error {
	var ords []float64
	if err := json.Unmarshal(data, &ords); err != nil {
		return &MemberError{Member: "coordinates", Expected: "array of numbers", Got: jsonShape(data)}
	}
	if len(ords) < 2 {
		return &MemberError{
			Member:   "coordinates",
			Expected: "at least two ordinates",
			Got:      "array of length " + strconv.Itoa(len(ords)),
		}
	}
	*p = ords
	return nil
}
