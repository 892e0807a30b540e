/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import "math"

// BBox is a bounding box: a flat array of 2d numbers, the per-dimension
// minima followed by the per-dimension maxima. It is optional everywhere it
// appears and is never validated against the geometry it accompanies. A nil
// or empty BBox means absent.
type BBox []float64

// unionBBoxes computes a collection bbox from per-feature bboxes. The result
// is present only when every feature carries a bbox and all of them share
// one even length 2k; it is then the per-dimension minima followed by the
// per-dimension maxima across all features. Any absent, odd-length or
// mismatched bbox makes the result absent.
func unionBBoxes(features []Feature) BBox {
	if len(features) == 0 {
		return nil
	}
	first := features[0].BBox
	if len(first) == 0 || len(first)%2 != 0 {
		return nil
	}
	k := len(first) / 2
	out := append(BBox(nil), first...)
	for _, f := range features[1:] {
		b := f.BBox
		if len(b) != 2*k {
			return nil
		}
		for i := 0; i < k; i++ {
			out[i] = math.Min(out[i], b[i])
			out[k+i] = math.Max(out[k+i], b[k+i])
		}
	}
	return out
}
