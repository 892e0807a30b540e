/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/json"

	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geojson"
)

// Geo wraps a go-geom geometry so it can live directly in a JSON-tagged
// struct: it marshals to and from the GeoJSON geometry object form, routing
// through the conversion layer. It is the natural field type for the
// geometry member of a custom streamed record.
type Geo struct {
	geom.T
}

func (v Geo) MarshalJSON() ([]byte, error) {
	val, err := FromGeom(v.T)
	if err != nil {
		return nil, err
	}
	return json.Marshal(geojson.NewGeometry(val))
}

func (v *Geo) UnmarshalJSON(data []byte) error {
	var g geojson.Geometry
	if err := g.UnmarshalJSON(data); err != nil {
		return err
	}
	t, err := ToGeom(g.Value)
	if err != nil {
		return err
	}
	v.T = t
	return nil
}

func (v Geo) String() string {
	return "<geodata>"
}

// QuickCollection flattens a whole document into one geometry collection.
// Features with no geometry are skipped; a conversion failure anywhere
// propagates.
func QuickCollection(doc geojson.GeoJSON) (*geom.GeometryCollection, error) {
	out := geom.NewGeometryCollection()
	push := func(g *geojson.Geometry) error {
		t, err := ToGeom(g.Value)
		if err != nil {
			return err
		}
		return out.Push(t)
	}
	switch d := doc.(type) {
	case *geojson.Geometry:
		if err := push(d); err != nil {
			return nil, err
		}
	case *geojson.Feature:
		if d.Geometry != nil {
			if err := push(d.Geometry); err != nil {
				return nil, err
			}
		}
	case *geojson.FeatureCollection:
		for i := range d.Features {
			if d.Features[i].Geometry == nil {
				continue
			}
			if err := push(d.Features[i].Geometry); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
