/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geojson

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Member is a single object member. Members outside the RFC 7946 vocabulary
// ("foreign members") are carried through a parse/serialize round trip in
// encounter order, with their values byte-verbatim.
type Member struct {
	Key   string
	Value json.RawMessage
}

// definedMembers are the RFC 7946 member names. A key in this set is never
// classified as a foreign member, regardless of which object it appears on.
var definedMembers = map[string]bool{
	"type":        true,
	"geometry":    true,
	"properties":  true,
	"bbox":        true,
	"id":          true,
	"features":    true,
	"geometries":  true,
	"coordinates": true,
}

// IsDefinedMember reports whether key is part of the RFC 7946 vocabulary.
func IsDefinedMember(key string) bool {
	return definedMembers[key]
}

// Members decodes the members of a JSON object in encounter order, leaving
// each value as raw bytes. A non-object input is a MemberError; a tokenizer
// failure is a MalformedError.
func Members(data []byte) ([]Member, error) {
	return objectMembers(data, "value")
}

func objectMembers(data []byte, what string) ([]Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, &MalformedError{Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &MemberError{Member: what, Expected: "object", Got: jsonShape(data)}
	}
	var members []Member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &MalformedError{Err: err}
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &MalformedError{Err: errors.Errorf("object key is not a string: %v", tok)}
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &MalformedError{Err: err}
		}
		members = append(members, Member{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, &MalformedError{Err: err}
	}
	// Only whitespace may follow the closing brace.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, &MalformedError{Err: err}
		}
		return nil, &MalformedError{Err: errors.Errorf("trailing characters after value: %v", tok)}
	}
	return members, nil
}

// jsonShape names the JSON type of a raw value, for error messages.
func jsonShape(data []byte) string {
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

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
