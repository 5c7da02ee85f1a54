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

package geometry

import (
	"strings"

	"m4o.io/gml/internal/event"
)

type constructor func(el event.StartElement, cfg Config) Handler

// constructors maps lower cased geometry tags to their handler. It is
// filled by init as the MultiGeometry entry refers back to Known.
var constructors map[string]constructor

func init() {
	constructors = map[string]constructor{
		"point":           newPoint,
		"linestring":      newLineString,
		"polygon":         newPolygon,
		"multipoint":      newMulti(multiPointLayout),
		"multilinestring": newMulti(multiLineStringLayout),
		"multicurve":      newMulti(multiCurveLayout),
		"multipolygon":    newMulti(multiPolygonLayout),
		"multisurface":    newMulti(multiSurfaceLayout),
		"multigeometry":   newMulti(multiGeometryLayout),
	}
}

// Known reports whether tag names a supported geometry, ignoring case.
func Known(tag string) bool {
	_, ok := constructors[strings.ToLower(tag)]

	return ok
}

// New creates the handler for the geometry opened by el. It returns false,
// after logging a warning, when the tag is not a supported geometry; the
// caller skips the element.
func New(el event.StartElement, cfg Config) (Handler, bool) {
	ctor, ok := constructors[strings.ToLower(el.Name)]
	if !ok {
		cfg.logger().Warn("unsupported geometry", "tag", el.Name)

		return nil, false
	}

	if cfg.depth > MaxNesting {
		cfg.logger().Warn("geometry nested too deeply", "tag", el.Name, "depth", cfg.depth)

		return nil, false
	}

	return ctor(el, cfg), true
}
