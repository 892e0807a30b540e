/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package chunker

import (
	"bytes"
	"encoding/json"

	"github.com/hypermodeinc/geojson"
)

// flattenRecord rewrites a Feature object into the flat namespace custom
// record types decode from: the geometry member, when present and
// object-shaped, stays a distinct member, and every key under properties is
// lifted to the top level. bbox, id and foreign members are not exposed to
// records. A "type" member, when present, must be the literal "Feature".
func flattenRecord(data []byte) ([]byte, error) {
	members, err := geojson.Members(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	write := func(key string, val json.RawMessage) error {
		if n > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		n++
		return nil
	}
	for _, m := range members {
		switch m.Key {
		case "type":
			var typ string
			if err := json.Unmarshal(m.Value, &typ); err != nil {
				return nil, &geojson.MemberError{Member: "type", Expected: "string", Got: rawShape(m.Value)}
			}
			if typ != "Feature" {
				return nil, &geojson.MismatchedTypeError{Expected: "Feature", Actual: typ}
			}
		case "geometry":
			if rawShape(m.Value) != "object" {
				continue
			}
			if err := write("geometry", m.Value); err != nil {
				return nil, err
			}
		case "properties":
			switch rawShape(m.Value) {
			case "null":
			case "object":
				props, err := geojson.Members(m.Value)
				if err != nil {
					return nil, err
				}
				for _, p := range props {
					if err := write(p.Key, p.Value); err != nil {
						return nil, err
					}
				}
			default:
				return nil, &geojson.MemberError{Member: "properties", Expected: "object or null", Got: rawShape(m.Value)}
			}
		default:
			// bbox, id and foreign members are not part of the record contract.
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// expandRecord is the inverse: the record's serialized object must contain a
// geometry member, which is detached, while all remaining members are
// repacked under properties.
func expandRecord(data []byte) ([]byte, error) {
	members, err := geojson.Members(data)
	if err != nil {
		return nil, err
	}
	var geometry json.RawMessage
	var props []geojson.Member
	for _, m := range members {
		if m.Key == "geometry" {
			geometry = m.Value
			continue
		}
		props = append(props, m)
	}
	if geometry == nil {
		return nil, &geojson.MemberError{Member: "geometry", Expected: "object", Got: "nothing"}
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":"Feature","geometry":`)
	buf.Write(geometry)
	buf.WriteString(`,"properties":{`)
	for i, p := range props {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(p.Value)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

// rawShape names the JSON type of a raw value, for error messages.
func rawShape(data []byte) string {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "boolean"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "nothing"
}
