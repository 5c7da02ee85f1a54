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

type lineStringHandler struct {
	tag  string
	ring ring
}

func newLineString(el event.StartElement, cfg Config) Handler {
	return &lineStringHandler{tag: el.Name, ring: newRing(cfg, el)}
}

func (l *lineStringHandler) Tag() string {
	return l.tag
}

func (l *lineStringHandler) HandleOpeningTag(el event.StartElement) {
	if el.Name == tagPosList || el.Name == tagPos {
		l.ring.open(el)
	}
}

func (l *lineStringHandler) HandleClosingTag(name, text string) {
	switch name {
	case tagPosList:
		l.ring.appendPosList(text)
	case tagPos:
		l.ring.appendPos(text)
	}
}

func (l *lineStringHandler) Geometry() model.Geometry {
	return model.LineString{Coordinates: l.ring.coordinates}
}
