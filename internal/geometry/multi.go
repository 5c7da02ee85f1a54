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

// multiLayout describes one of the collection geometries: the wrappers that
// hold its members and the member geometries it accepts.
type multiLayout struct {
	kind    model.GeometryType
	member  string // wraps a single member, e.g. pointMember
	members string // wraps any number of members, e.g. pointMembers
	accepts func(tag string) bool
}

func only(name string) func(tag string) bool {
	return func(tag string) bool {
		return strings.EqualFold(tag, name)
	}
}

var (
	multiPointLayout = multiLayout{
		kind: model.MultiPointType, member: "pointMember", members: "pointMembers", accepts: only("Point"),
	}
	multiLineStringLayout = multiLayout{
		kind: model.MultiLineStringType, member: "lineStringMember", members: "lineStringMembers", accepts: only("LineString"),
	}
	multiCurveLayout = multiLayout{
		kind: model.MultiCurveType, member: "curveMember", members: "curveMembers", accepts: only("LineString"),
	}
	multiPolygonLayout = multiLayout{
		kind: model.MultiPolygonType, member: "polygonMember", members: "polygonMembers", accepts: only("Polygon"),
	}
	multiSurfaceLayout = multiLayout{
		kind: model.MultiSurfaceType, member: "surfaceMember", members: "surfaceMembers", accepts: only("Polygon"),
	}
	multiGeometryLayout = multiLayout{
		kind: model.MultiGeometryType, member: "geometryMember", members: "geometryMembers", accepts: Known,
	}
)

type multiState int

const (
	waiting multiState = iota
	seekGeometry
	collectGeometry
)

// multiHandler dispatches each member of a collection geometry to a child
// handler of its own. The first completed member becomes the parent of the
// collection, the rest its children.
type multiHandler struct {
	layout multiLayout
	cfg    Config
	tag    string
	state  multiState

	// multiMember is set while inside a members wrapper, which may hold
	// several geometries in a row.
	multiMember bool

	child      Handler
	childDepth int // open elements named like the child's own tag

	parent   model.Geometry
	children []model.Geometry
}

func newMulti(layout multiLayout) constructor {
	return func(el event.StartElement, cfg Config) Handler {
		return &multiHandler{layout: layout, cfg: cfg, tag: el.Name}
	}
}

func (m *multiHandler) Tag() string {
	return m.tag
}

func (m *multiHandler) HandleOpeningTag(el event.StartElement) {
	switch m.state {
	case waiting:
		switch el.Name {
		case m.layout.member:
			m.multiMember = false
			m.state = seekGeometry
		case m.layout.members:
			m.multiMember = true
			m.state = seekGeometry
		}

	case seekGeometry:
		if !m.layout.accepts(el.Name) {
			m.cfg.logger().Warn("unexpected member geometry", "collection", m.tag, "tag", el.Name)
			m.state = waiting

			return
		}

		child, ok := New(el, m.cfg.nested())
		if !ok {
			m.state = waiting

			return
		}

		m.child = child
		m.childDepth = 0
		m.state = collectGeometry

	case collectGeometry:
		if el.Name == m.child.Tag() {
			m.childDepth++
		}

		m.child.HandleOpeningTag(el)
	}
}

func (m *multiHandler) HandleClosingTag(name, text string) {
	switch m.state {
	case collectGeometry:
		if name == m.child.Tag() {
			if m.childDepth == 0 {
				m.finishChild()

				return
			}

			m.childDepth--
		}

		m.child.HandleClosingTag(name, text)

	case seekGeometry:
		if name == m.layout.member || name == m.layout.members {
			m.state = waiting
		}

	case waiting:
	}
}

func (m *multiHandler) finishChild() {
	g := m.child.Geometry()
	m.child = nil

	switch {
	case g == nil:
	case m.parent == nil:
		m.parent = g
	default:
		m.children = append(m.children, g)
	}

	if m.multiMember {
		m.state = seekGeometry
	} else {
		m.state = waiting
	}
}

func (m *multiHandler) Geometry() model.Geometry {
	if m.parent == nil {
		m.cfg.logger().Warn("collection without members", "collection", m.tag)

		return nil
	}

	return model.Multi{Kind: m.layout.kind, Parent: m.parent, Children: m.children}
}
