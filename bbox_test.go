/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func featureWithBBox(b BBox) Feature {
	return Feature{BBox: b}
}

func TestBBoxUnion(t *testing.T) {
	tests := []struct {
		name     string
		features []Feature
		want     BBox
	}{
		{
			name: "two 2d boxes",
			features: []Feature{
				featureWithBBox(BBox{0, 0, 2, 2}),
				featureWithBBox(BBox{-1, 1, 1, 5}),
			},
			want: BBox{-1, 0, 2, 5},
		},
		{
			name: "single feature",
			features: []Feature{
				featureWithBBox(BBox{3, 4, 5, 6}),
			},
			want: BBox{3, 4, 5, 6},
		},
		{
			name: "three 3d boxes",
			features: []Feature{
				featureWithBBox(BBox{0, 0, 0, 1, 1, 1}),
				featureWithBBox(BBox{-2, 0, 5, 0, 3, 9}),
				featureWithBBox(BBox{1, -1, 2, 2, 0, 3}),
			},
			want: BBox{-2, -1, 0, 2, 3, 9},
		},
		{
			name:     "no features",
			features: nil,
			want:     nil,
		},
		{
			name: "one feature without a bbox",
			features: []Feature{
				featureWithBBox(BBox{0, 0, 2, 2}),
				featureWithBBox(nil),
			},
			want: nil,
		},
		{
			name: "mismatched dimensions",
			features: []Feature{
				featureWithBBox(BBox{0, 0, 2, 2}),
				featureWithBBox(BBox{0, 0, 0, 2, 2, 2}),
			},
			want: nil,
		},
		{
			name: "odd length",
			features: []Feature{
				featureWithBBox(BBox{0, 0, 2}),
			},
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := NewFeatureCollection(tc.features...)
			require.Equal(t, tc.want, fc.BBox)
		})
	}
}

func TestCollectFeatures(t *testing.T) {
	in := []Feature{
		featureWithBBox(BBox{0, 0, 1, 1}),
		featureWithBBox(BBox{2, 2, 3, 3}),
	}
	fc := CollectFeatures(func(yield func(Feature) bool) {
		for _, f := range in {
			if !yield(f) {
				return
			}
		}
	})
	require.Equal(t, in, fc.Features)
	require.Equal(t, BBox{0, 0, 3, 3}, fc.BBox)
}

func TestBBoxNotValidated(t *testing.T) {
	// A bbox inconsistent with its geometry parses and round trips untouched.
	doc := `{"type":"Point","coordinates":[100,50],"bbox":[0,0,1,1]}`
	g, err := ParseString(doc)
	require.NoError(t, err)
	require.Equal(t, BBox{0, 0, 1, 1}, g.(*Geometry).BBox)

	out, err := Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, doc, string(out))
}
