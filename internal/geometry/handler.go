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

// Package geometry turns the events of a single GML geometry element into
// a model.Geometry.
//
// A Handler is created by New for the opening tag of a geometry, receives
// every nested opening and closing tag, and is finally asked for its
// Geometry exactly once. Handlers are single use and not safe for
// concurrent use.
package geometry

import (
	"log/slog"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

// MaxNesting bounds how deeply multi geometries may contain each other.
const MaxNesting = 32

// Config is threaded from the factory into every handler it creates.
type Config struct {
	// LatitudeFirst is true when positions are encoded latitude before
	// longitude.
	LatitudeFirst bool

	// Logger receives warnings about recoverable data errors.
	Logger *slog.Logger

	depth int
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}

	return c.Logger
}

// nested returns the configuration for the members of a multi geometry.
func (c Config) nested() Config {
	c.depth++

	return c
}

// Handler consumes the events nested within one geometry element.
type Handler interface {
	// Tag is the local name of the element that opened the geometry.
	Tag() string

	// HandleOpeningTag receives every opening tag nested in the geometry.
	HandleOpeningTag(el event.StartElement)

	// HandleClosingTag receives every closing tag nested in the geometry,
	// along with the character data collected since the last opening tag.
	HandleClosingTag(name, text string)

	// Geometry finalizes the handler. It returns nil when nothing usable
	// was collected.
	Geometry() model.Geometry
}
