/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"bytes"
	"encoding/json"
)

// ID is a Feature identifier: either a string or a JSON number, never both.
// The interface is sealed by StringID and NumberID.
type ID interface {
	sealedID()
}

// StringID is a string-valued feature identifier.
type StringID string

// NumberID is a number-valued feature identifier. The number is held in its
// textual JSON form, so values that do not fit a float64 survive a round
// trip unchanged.
type NumberID json.Number

func (StringID) sealedID() {}
func (NumberID) sealedID() {}

// Feature is a GeoJSON Feature: an optional geometry, an optional
// identifier, a free-form property map, an optional bbox and any foreign
// members.
//
// Geometry nil means "null geometry", which is valid. Properties nil means
// the member was null or absent, which is distinct from an empty map.
type Feature struct {
	Geometry   *Geometry
	ID         ID
	Properties map[string]interface{}
	BBox       BBox
	Foreign    []Member
}

// NewFeature returns a Feature holding g, which may be nil.
func NewFeature(g *Geometry) *Feature {
	return &Feature{Geometry: g}
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	members, err := objectMembers(data, "feature")
	if err != nil {
		return err
	}
	parsed, err := featureFromMembers(members)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

func featureFromMembers(members []Member) (*Feature, error) {
	var f Feature
	var seenType bool
	for _, m := range members {
		switch m.Key {
		case "type":
			var typ string
			if err := json.Unmarshal(m.Value, &typ); err != nil {
				return nil, &MemberError{Member: "type", Expected: "string", Got: jsonShape(m.Value)}
			}
			if typ != "Feature" {
				return nil, &MismatchedTypeError{Expected: "Feature", Actual: typ}
			}
			seenType = true
		case "geometry":
			if isNull(m.Value) {
				continue
			}
			var g Geometry
			if err := g.UnmarshalJSON(m.Value); err != nil {
				if _, ok := err.(*MemberError); ok && jsonShape(m.Value) != "object" {
					return nil, &MemberError{Member: "geometry", Expected: "object or null", Got: jsonShape(m.Value)}
				}
				return nil, err
			}
			f.Geometry = &g
		case "properties":
			if isNull(m.Value) {
				continue
			}
			if jsonShape(m.Value) != "object" {
				return nil, &MemberError{Member: "properties", Expected: "object or null", Got: jsonShape(m.Value)}
			}
			if err := json.Unmarshal(m.Value, &f.Properties); err != nil {
				return nil, &MalformedError{Err: err}
			}
		case "id":
			id, err := decodeID(m.Value)
			if err != nil {
				return nil, err
			}
			f.ID = id
		case "bbox":
			if err := json.Unmarshal(m.Value, (*[]float64)(&f.BBox)); err != nil {
				return nil, &MemberError{Member: "bbox", Expected: "array of numbers", Got: jsonShape(m.Value)}
			}
		default:
			if !definedMembers[m.Key] {
				f.Foreign = append(f.Foreign, m)
			}
		}
	}
	if !seenType {
		return nil, &UnknownTypeError{}
	}
	return &f, nil
}

func decodeID(raw json.RawMessage) (ID, error) {
	switch jsonShape(raw) {
	case "string":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, &MalformedError{Err: err}
		}
		return StringID(s), nil
	case "number":
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, &MalformedError{Err: err}
		}
		return NumberID(n), nil
	default:
		return nil, &MemberError{Member: "id", Expected: "string or number", Got: jsonShape(raw)}
	}
}

func (f *Feature) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"Feature"`)
	if f.Geometry != nil {
		if err := writeMember(&buf, "geometry", f.Geometry); err != nil {
			return nil, err
		}
	} else {
		buf.WriteString(`,"geometry":null`)
	}
	if f.Properties != nil {
		if err := writeMember(&buf, "properties", f.Properties); err != nil {
			return nil, err
		}
	} else {
		buf.WriteString(`,"properties":null`)
	}
	if err := writeBBox(&buf, f.BBox); err != nil {
		return nil, err
	}
	switch id := f.ID.(type) {
	case nil:
	case StringID:
		if err := writeMember(&buf, "id", string(id)); err != nil {
			return nil, err
		}
	case NumberID:
		if err := writeMember(&buf, "id", json.Number(id)); err != nil {
			return nil, err
		}
	}
	if err := writeForeign(&buf, f.Foreign); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *Feature) String() string {
	b, err := f.MarshalJSON()
	if err != nil {
		return "<invalid feature: " + err.Error() + ">"
	}
	return string(b)
}

// Property returns the named property and whether it is present.
func (f *Feature) Property(key string) (interface{}, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

// SetProperty sets a property, allocating the map for a feature that had
// none.
func (f *Feature) SetProperty(key string, value interface{}) {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{})
	}
	f.Properties[key] = value
}

// RemoveProperty deletes a property if present.
func (f *Feature) RemoveProperty(key string) {
	delete(f.Properties, key)
}

// PropertyString returns the named property when it holds a string.
func (f *Feature) PropertyString(key string) (string, bool) {
	s, ok := f.Properties[key].(string)
	return s, ok
}

// PropertyFloat64 returns the named property when it holds a number.
func (f *Feature) PropertyFloat64(key string) (float64, bool) {
	n, ok := f.Properties[key].(float64)
	return n, ok
}

// PropertyInt returns the named property when it holds an integral number.
func (f *Feature) PropertyInt(key string) (int, bool) {
	n, ok := f.Properties[key].(float64)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

// PropertyBool returns the named property when it holds a boolean.
func (f *Feature) PropertyBool(key string) (bool, bool) {
	b, ok := f.Properties[key].(bool)
	return b, ok
}
