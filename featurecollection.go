/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"bytes"
	"encoding/json"
	"iter"
)

// FeatureCollection is an ordered list of Features plus the optional bbox
// and any foreign members. Iteration order is document order and is
// preserved through a round trip.
type FeatureCollection struct {
	Features []Feature
	BBox     BBox
	Foreign  []Member
}

// NewFeatureCollection builds a collection from features. The collection
// bbox is the union of the feature bboxes when every feature carries one of
// the same even dimension, and absent otherwise.
func NewFeatureCollection(features ...Feature) *FeatureCollection {
	return &FeatureCollection{
		Features: features,
		BBox:     unionBBoxes(features),
	}
}

// CollectFeatures drains seq into a new FeatureCollection, with the same
// bbox rule as NewFeatureCollection.
func CollectFeatures(seq iter.Seq[Feature]) *FeatureCollection {
	var features []Feature
	for f := range seq {
		features = append(features, f)
	}
	return NewFeatureCollection(features...)
}

func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	members, err := objectMembers(data, "feature collection")
	if err != nil {
		return err
	}
	parsed, err := featureCollectionFromMembers(members)
	if err != nil {
		return err
	}
	*fc = *parsed
	return nil
}

func featureCollectionFromMembers(members []Member) (*FeatureCollection, error) {
	var fc FeatureCollection
	var seenType, seenFeatures bool
	for _, m := range members {
		switch m.Key {
		case "type":
			var typ string
			if err := json.Unmarshal(m.Value, &typ); err != nil {
				return nil, &MemberError{Member: "type", Expected: "string", Got: jsonShape(m.Value)}
			}
			if typ != "FeatureCollection" {
				return nil, &MismatchedTypeError{Expected: "FeatureCollection", Actual: typ}
			}
			seenType = true
		case "features":
			if jsonShape(m.Value) != "array" {
				return nil, &MemberError{Member: "features", Expected: "array", Got: jsonShape(m.Value)}
			}
			if err := json.Unmarshal(m.Value, &fc.Features); err != nil {
				return nil, passthrough(err, "features")
			}
			seenFeatures = true
		case "bbox":
			if err := json.Unmarshal(m.Value, (*[]float64)(&fc.BBox)); err != nil {
				return nil, &MemberError{Member: "bbox", Expected: "array of numbers", Got: jsonShape(m.Value)}
			}
		default:
			if !definedMembers[m.Key] {
				fc.Foreign = append(fc.Foreign, m)
			}
		}
	}
	if !seenType {
		return nil, &UnknownTypeError{}
	}
	if !seenFeatures {
		return nil, &MemberError{Member: "features", Expected: "array", Got: "nothing"}
	}
	return &fc, nil
}

func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"FeatureCollection"`)
	if fc.Features == nil {
		buf.WriteString(`,"features":[]`)
	} else if err := writeMember(&buf, "features", fc.Features); err != nil {
		return nil, err
	}
	if err := writeBBox(&buf, fc.BBox); err != nil {
		return nil, err
	}
	if err := writeForeign(&buf, fc.Foreign); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (fc *FeatureCollection) String() string {
	b, err := fc.MarshalJSON()
	if err != nil {
		return "<invalid feature collection: " + err.Error() + ">"
	}
	return string(b)
}
