/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geojson implements the GeoJSON text format of RFC 7946: a typed
// object model for geometries, features and feature collections, and a
// round-trip-faithful mapping between that model and JSON text. Foreign
// members and bounding boxes survive a parse/serialize round trip; the
// seven geometry kinds form a sealed sum type.
//
// Streaming access to large feature collections lives in the chunker
// package; conversion to the go-geom geometry algebra lives in the geo
// package.
package geojson

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// GeoJSON is a top-level document: a *Geometry, a *Feature or a
// *FeatureCollection. The interface is sealed.
type GeoJSON interface {
	json.Marshaler

	sealedGeoJSON()
}

func (*Geometry) sealedGeoJSON()          {}
func (*Feature) sealedGeoJSON()           {}
func (*FeatureCollection) sealedGeoJSON() {}

// Parse decodes a whole GeoJSON document. The "type" member selects which of
// the nine object shapes to decode into; the seven geometry type strings all
// produce a *Geometry.
func Parse(data []byte) (GeoJSON, error) {
	members, err := objectMembers(data, "document")
	if err != nil {
		return nil, err
	}
	var typ string
	var seenType bool
	for _, m := range members {
		if m.Key != "type" {
			continue
		}
		if err := json.Unmarshal(m.Value, &typ); err != nil {
			return nil, &MemberError{Member: "type", Expected: "string", Got: jsonShape(m.Value)}
		}
		seenType = true
		break
	}
	if !seenType {
		return nil, &UnknownTypeError{}
	}
	switch typ {
	case "Feature":
		return featureFromMembers(members)
	case "FeatureCollection":
		return featureCollectionFromMembers(members)
	default:
		return geometryFromMembers(members)
	}
}

// ParseString is Parse over a string.
func ParseString(s string) (GeoJSON, error) {
	return Parse([]byte(s))
}

// ParseReader drains r and parses the result. GeoJSON has no framing that
// would allow parsing a whole document incrementally; use chunker.Reader to
// stream the features of a large collection instead.
func ParseReader(r io.Reader) (GeoJSON, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}
	return Parse(data)
}

// Marshal serializes a document to compact JSON text.
func Marshal(g GeoJSON) ([]byte, error) {
	return json.Marshal(g)
}

// MarshalIndent serializes a document to indented JSON text.
func MarshalIndent(g GeoJSON, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(g, prefix, indent)
}
