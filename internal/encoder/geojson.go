// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encoder

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"m4o.io/gml/model"
)

const (
	recordSeparator = 0x1e
	lineFeed        = '\n'

	propertyTime  = "time"
	propertyColor = "color"
)

// featureDoc is the GeoJSON rendering of a feature. Non-spatial features
// carry a null geometry.
type featureDoc struct {
	Type       string             `json:"type"`
	ID         int64              `json:"id"`
	Geometry   *geojson.Geometry  `json:"geometry"`
	Properties geojson.Properties `json:"properties"`
}

// Marshaler renders one feature as a self contained record.
type Marshaler func(f model.Feature) ([]byte, error)

// NewMarshaler returns the Marshaler producing records of the format.
func NewMarshaler(f Format) (Marshaler, error) {
	switch f {
	case GEOJSONSEQ:
		return MarshalGeoJSONSeq, nil
	case PROTOBUF:
		return MarshalProtobuf, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// MarshalGeoJSON renders the feature as a GeoJSON Feature object.
func MarshalGeoJSON(f model.Feature) ([]byte, error) {
	doc := featureDoc{
		Type:       "Feature",
		ID:         int64(f.ID),
		Properties: properties(f),
	}

	if g := Orb(f.Geometry); g != nil {
		doc.Geometry = geojson.NewGeometry(g)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal feature %d: %w", f.ID, err)
	}

	return b, nil
}

// MarshalGeoJSONSeq renders the feature as one record of a GeoJSON text
// sequence: a record separator, the GeoJSON text and a line feed.
func MarshalGeoJSONSeq(f model.Feature) ([]byte, error) {
	b, err := MarshalGeoJSON(f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(b)+2)
	out = append(out, recordSeparator)
	out = append(out, b...)

	return append(out, lineFeed), nil
}

func properties(f model.Feature) geojson.Properties {
	props := geojson.Properties(f.Metadata.Map())

	if _, ok := props[propertyTime]; !ok && !f.Time.IsTimeless() {
		if f.Time.IsInstant() {
			props[propertyTime] = f.Time.Start().Format(time.RFC3339Nano)
		} else {
			props[propertyTime] = []string{
				f.Time.Start().Format(time.RFC3339Nano),
				f.Time.End().Format(time.RFC3339Nano),
			}
		}
	}

	if _, ok := props[propertyColor]; !ok {
		props[propertyColor] = model.FormatColor(f.Color)
	}

	return props
}

// Orb converts a geometry into its orb equivalent. Elevations are dropped.
// It returns nil for a nil geometry.
func Orb(g model.Geometry) orb.Geometry {
	switch g := g.(type) {
	case model.Point:
		return point(g.Coordinate)
	case model.LineString:
		return lineString(g.Coordinates)
	case model.Polygon:
		return orb.Polygon{orb.Ring(lineString(g.Exterior))}
	case model.Multi:
		return multi(g)
	default:
		return nil
	}
}

func point(c model.Coordinate) orb.Point {
	return orb.Point{float64(c.Lon), float64(c.Lat)}
}

func lineString(coordinates []model.Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(coordinates))
	for _, c := range coordinates {
		ls = append(ls, point(c))
	}

	return ls
}

// multi converts a collection into the matching orb collection type, or
// into an orb.Collection when its members are of mixed types.
func multi(m model.Multi) orb.Geometry {
	members := m.Members()

	var (
		points   orb.MultiPoint
		lines    orb.MultiLineString
		polygons orb.MultiPolygon
		all      orb.Collection
	)

	for _, member := range members {
		g := Orb(member)
		all = append(all, g)

		switch g := g.(type) {
		case orb.Point:
			points = append(points, g)
		case orb.LineString:
			lines = append(lines, g)
		case orb.Polygon:
			polygons = append(polygons, g)
		}
	}

	switch {
	case m.Kind == model.MultiGeometryType:
		return all
	case len(points) == len(members):
		return points
	case len(lines) == len(members):
		return lines
	case len(polygons) == len(members):
		return polygons
	default:
		return all
	}
}
