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
	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

// polygonHandler keeps the exterior ring only. Positions of interior rings
// are read past and discarded.
type polygonHandler struct {
	cfg      Config
	tag      string
	exterior bool
	ring     ring
}

func newPolygon(el event.StartElement, cfg Config) Handler {
	return &polygonHandler{cfg: cfg, tag: el.Name, ring: newRing(cfg, el)}
}

func (p *polygonHandler) Tag() string {
	return p.tag
}

func (p *polygonHandler) HandleOpeningTag(el event.StartElement) {
	switch el.Name {
	case tagExterior:
		p.exterior = true
	case tagInterior:
		p.cfg.logger().Debug("dropping interior ring", "polygon", p.tag)
	case tagPosList, tagPos:
		if p.exterior {
			p.ring.open(el)
		}
	}
}

func (p *polygonHandler) HandleClosingTag(name, text string) {
	switch name {
	case tagExterior:
		p.exterior = false
	case tagPosList:
		if p.exterior {
			p.ring.appendPosList(text)
		}
	case tagPos:
		if p.exterior {
			p.ring.appendPos(text)
		}
	}
}

func (p *polygonHandler) Geometry() model.Geometry {
	return model.Polygon{Exterior: p.ring.closed()}
}
