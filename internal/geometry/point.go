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
	"m4o.io/gml/model"
)

type pointHandler struct {
	cfg     Config
	tag     string
	dim     int
	current int
	coord   model.Coordinate
}

func newPoint(el event.StartElement, cfg Config) Handler {
	d := dimension(el, planar)

	return &pointHandler{cfg: cfg, tag: el.Name, dim: d, current: d}
}

func (p *pointHandler) Tag() string {
	return p.tag
}

func (p *pointHandler) HandleOpeningTag(el event.StartElement) {
	if el.Name == tagPos {
		p.current = dimension(el, p.dim)
	}
}

// HandleClosingTag parses the most recent pos. A malformed position leaves
// the point at the origin.
func (p *pointHandler) HandleClosingTag(name, text string) {
	if name != tagPos {
		return
	}

	p.coord = model.Coordinate{}

	tokens := strings.Fields(text)
	if len(tokens) != p.current {
		p.cfg.logger().Warn("malformed point position", "text", text, "ordinates", len(tokens))

		return
	}

	c, err := p.cfg.coordinate(tokens)
	if err != nil {
		p.cfg.logger().Warn("malformed point position", "text", text, "error", err)

		return
	}

	p.coord = c
}

func (p *pointHandler) Geometry() model.Geometry {
	return model.Point{Coordinate: p.coord}
}
