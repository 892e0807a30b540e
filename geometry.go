/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Geometry is a GeoJSON Geometry object: one geometry value plus the
// optional bbox and any foreign members, both preserved verbatim through a
// parse/serialize round trip.
type Geometry struct {
	Value   Value
	BBox    BBox
	Foreign []Member
}

// NewGeometry returns a Geometry holding v.
func NewGeometry(v Value) *Geometry {
	return &Geometry{Value: v}
}

func (g *Geometry) UnmarshalJSON(data []byte) error {
	members, err := objectMembers(data, "geometry")
	if err != nil {
		return err
	}
	parsed, err := geometryFromMembers(members)
	if err != nil {
		return err
	}
	*g = *parsed
	return nil
}

func geometryFromMembers(members []Member) (*Geometry, error) {
	var g Geometry
	var typ string
	var seenType bool
	var coords, geoms json.RawMessage
	for _, m := range members {
		switch m.Key {
		case "type":
			if err := json.Unmarshal(m.Value, &typ); err != nil {
				return nil, &MemberError{Member: "type", Expected: "string", Got: jsonShape(m.Value)}
			}
			seenType = true
		case "coordinates":
			coords = m.Value
		case "geometries":
			geoms = m.Value
		case "bbox":
			if err := json.Unmarshal(m.Value, (*[]float64)(&g.BBox)); err != nil {
				return nil, &MemberError{Member: "bbox", Expected: "array of numbers", Got: jsonShape(m.Value)}
			}
		default:
			if !definedMembers[m.Key] {
				g.Foreign = append(g.Foreign, m)
			}
		}
	}
	if !seenType {
		return nil, &UnknownTypeError{}
	}
	v, err := decodeValue(typ, coords, geoms)
	if err != nil {
		return nil, err
	}
	g.Value = v
	return &g, nil
}

// decodeValue builds the Value for the given type string from the raw
// "coordinates" (or, for collections, "geometries") member.
func decodeValue(typ string, coords, geoms json.RawMessage) (Value, error) {
	switch Kind(typ) {
	case KindPoint:
		var p Point
		if err := unmarshalCoords(coords, (*Position)(&p)); err != nil {
			return nil, err
		}
		return p, nil
	case KindMultiPoint:
		var v MultiPoint
		if err := unmarshalCoords(coords, (*[]Position)(&v)); err != nil {
			return nil, err
		}
		return v, nil
	case KindLineString:
		var v LineString
		if err := unmarshalCoords(coords, (*[]Position)(&v)); err != nil {
			return nil, err
		}
		return v, nil
	case KindMultiLineString:
		var v MultiLineString
		if err := unmarshalCoords(coords, (*[][]Position)(&v)); err != nil {
			return nil, err
		}
		return v, nil
	case KindPolygon:
		var v Polygon
		if err := unmarshalCoords(coords, (*[][]Position)(&v)); err != nil {
			return nil, err
		}
		return v, nil
	case KindMultiPolygon:
		var v MultiPolygon
		if err := unmarshalCoords(coords, (*[][][]Position)(&v)); err != nil {
			return nil, err
		}
		return v, nil
	case KindGeometryCollection:
		if geoms == nil {
			return nil, &MemberError{Member: "geometries", Expected: "array", Got: "nothing"}
		}
		var gs []Geometry
		if err := json.Unmarshal(geoms, &gs); err != nil {
			return nil, passthrough(err, "geometries")
		}
		return GeometryCollection(gs), nil
	default:
		return nil, &UnknownTypeError{Type: typ}
	}
}

func unmarshalCoords(raw json.RawMessage, dst interface{}) error {
	if raw == nil {
		return &MemberError{Member: "coordinates", Expected: "array", Got: "nothing"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return passthrough(err, "coordinates")
	}
	return nil
}

// passthrough keeps this package's typed errors intact when they surface
// through encoding/json, and shapes everything else into a MemberError.
func passthrough(err error, member string) error {
	switch err.(type) {
	case *MemberError, *UnknownTypeError, *MismatchedTypeError, *MalformedError:
		return err
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &MalformedError{Err: err}
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return &MemberError{Member: member, Expected: "array", Got: typ.Value}
	}
	return &MalformedError{Err: err}
}

func (g *Geometry) MarshalJSON() ([]byte, error) {
	if g.Value == nil {
		return nil, errors.Errorf("geojson: geometry holds no value")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":"`)
	buf.WriteString(string(g.Value.Kind()))
	buf.WriteString(`"`)
	switch v := g.Value.(type) {
	case Point:
		if err := writeMember(&buf, "coordinates", Position(v)); err != nil {
			return nil, err
		}
	case MultiPoint:
		if err := writeMember(&buf, "coordinates", []Position(v)); err != nil {
			return nil, err
		}
	case LineString:
		if err := writeMember(&buf, "coordinates", []Position(v)); err != nil {
			return nil, err
		}
	case MultiLineString:
		if err := writeMember(&buf, "coordinates", [][]Position(v)); err != nil {
			return nil, err
		}
	case Polygon:
		if err := writeMember(&buf, "coordinates", [][]Position(v)); err != nil {
			return nil, err
		}
	case MultiPolygon:
		if err := writeMember(&buf, "coordinates", [][][]Position(v)); err != nil {
			return nil, err
		}
	case GeometryCollection:
		if err := writeMember(&buf, "geometries", []Geometry(v)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("geojson: unhandled geometry kind %q", g.Value.Kind())
	}
	if err := writeBBox(&buf, g.BBox); err != nil {
		return nil, err
	}
	if err := writeForeign(&buf, g.Foreign); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *Geometry) String() string {
	b, err := g.MarshalJSON()
	if err != nil {
		return "<invalid geometry: " + err.Error() + ">"
	}
	return string(b)
}

// writeMember appends `,"key":<json of v>` to buf.
func writeMember(buf *bytes.Buffer, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding member %q", key)
	}
	buf.WriteString(`,"`)
	buf.WriteString(key)
	buf.WriteString(`":`)
	buf.Write(b)
	return nil
}

func writeBBox(buf *bytes.Buffer, b BBox) error {
	if len(b) == 0 {
		return nil
	}
	return writeMember(buf, "bbox", []float64(b))
}

// writeForeign appends the foreign members in encounter order, each key once.
func writeForeign(buf *bytes.Buffer, members []Member) error {
	var seen map[string]bool
	for _, m := range members {
		if definedMembers[m.Key] || seen[m.Key] {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[m.Key] = true
		key, err := json.Marshal(m.Key)
		if err != nil {
			return errors.Wrapf(err, "encoding foreign member key %q", m.Key)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.Value)
	}
	return nil
}
