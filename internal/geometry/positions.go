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
	"fmt"
	"strconv"
	"strings"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

const (
	tagPos      = "pos"
	tagPosList  = "posList"
	tagExterior = "exterior"
	tagInterior = "interior"

	attrSrsDimension = "srsDimension"

	planar     = 2
	volumetric = 3
)

// dimension returns the srsDimension declared on el, or fallback when the
// attribute is absent or unsupported.
func dimension(el event.StartElement, fallback int) int {
	v, ok := el.Attr(attrSrsDimension)
	if !ok {
		return fallback
	}

	switch d, err := strconv.Atoi(strings.TrimSpace(v)); {
	case err != nil:
		return fallback
	case d == planar || d == volumetric:
		return d
	default:
		return fallback
	}
}

// coordinate parses the ordinates of one position. The slice holds two or
// three tokens; the third is an elevation.
func (c Config) coordinate(tokens []string) (model.Coordinate, error) {
	first, err := model.ParseDegrees(tokens[0])
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("bad ordinate %q: %w", tokens[0], err)
	}

	second, err := model.ParseDegrees(tokens[1])
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("bad ordinate %q: %w", tokens[1], err)
	}

	coord := model.NewCoordinate(first, second, c.LatitudeFirst)

	if len(tokens) == volumetric {
		e, err := model.ParseFinite(tokens[2])
		if err != nil {
			return model.Coordinate{}, fmt.Errorf("bad elevation %q: %w", tokens[2], err)
		}

		coord = coord.WithElevation(e)
	}

	return coord, nil
}

// ring accumulates the positions of a line string or polygon ring.
type ring struct {
	cfg         Config
	dim         int // declared on the geometry element
	current     int // declared on the position element being read
	coordinates []model.Coordinate
}

func newRing(cfg Config, el event.StartElement) ring {
	d := dimension(el, planar)

	return ring{cfg: cfg, dim: d, current: d}
}

// open records the dimension of a pos or posList element.
func (r *ring) open(el event.StartElement) {
	r.current = dimension(el, r.dim)
}

// appendPosList appends every complete position of a posList. A position
// with a malformed ordinate is dropped as a whole.
func (r *ring) appendPosList(text string) {
	tokens := strings.Fields(text)
	n := r.current

	for i := 0; i+n <= len(tokens); i += n {
		c, err := r.cfg.coordinate(tokens[i : i+n])
		if err != nil {
			r.cfg.logger().Warn("dropping malformed position", "index", i/n, "error", err)

			continue
		}

		r.coordinates = append(r.coordinates, c)
	}

	if rest := len(tokens) % n; rest != 0 {
		r.cfg.logger().Warn("ignoring incomplete trailing position", "ordinates", rest)
	}

	r.current = r.dim
}

// appendPos appends the single position of a pos element.
func (r *ring) appendPos(text string) {
	tokens := strings.Fields(text)
	n := r.current
	r.current = r.dim

	if len(tokens) != n {
		r.cfg.logger().Warn("dropping malformed position", "text", text, "ordinates", len(tokens))

		return
	}

	c, err := r.cfg.coordinate(tokens)
	if err != nil {
		r.cfg.logger().Warn("dropping malformed position", "error", err)

		return
	}

	r.coordinates = append(r.coordinates, c)
}

// closed returns the positions with the first one repeated at the end when
// the ring is not already closed.
func (r *ring) closed() []model.Coordinate {
	n := len(r.coordinates)
	if n == 0 || r.coordinates[0].Equal(r.coordinates[n-1]) {
		return r.coordinates
	}

	return append(r.coordinates, r.coordinates[0])
}
