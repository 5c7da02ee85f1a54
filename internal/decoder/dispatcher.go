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

// Package decoder turns a stream of XML events into features.
//
// The Dispatcher is a state machine fed one event at a time. It finds the
// feature boundaries, routes geometry elements to a geometry handler, time
// primitives to a time handler and metadata columns through type coercion,
// and emits one model.Feature to its Consumer per closed feature. A document
// that turns out to be an exception report switches the Dispatcher into an
// error mode that collects the report and emits nothing.
package decoder

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/internal/exception"
	"m4o.io/gml/internal/geometry"
	"m4o.io/gml/internal/temporal"
	"m4o.io/gml/model"
)

const (
	attrID  = "id"
	attrFID = "fid"
)

// State is the position of the Dispatcher within the document.
type State int

const (
	SeekFeature State = iota
	SeekGeometry
	CollectGeometry
	CollectTime
	Error
)

var stateNames = [...]string{
	SeekFeature:     "SEEK_FEATURE",
	SeekGeometry:    "SEEK_GEOMETRY",
	CollectGeometry: "COLLECT_GEOMETRY",
	CollectTime:     "COLLECT_TIME",
	Error:           "ERROR",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Config holds the settings of a Dispatcher.
type Config struct {
	Schema model.Schema

	// LatitudeFirst overrides the axis order of the schema when set.
	LatitudeFirst *bool

	Logger *slog.Logger

	// DefaultColor is used as is; the zero value is transparent black.
	DefaultColor color.NRGBA
}

// Dispatcher implements event.Handler. It is single use and not safe for
// concurrent use.
type Dispatcher struct {
	cfg      Config
	geometry geometry.Config
	consumer Consumer

	state State
	text  bytes.Buffer
	leaf  string // name of the last opened element while it has no children

	feature *featureAccumulator

	shape        geometry.Handler
	shapeDepth   int  // open descendants named like the geometry element
	shapeDirect  bool // geometry found without a geometry column
	timeWrapper  string
	timeDepth    int // open descendants named like the time wrapper
	skip         string
	skipDepth    int // open descendants named like the skipped element
	exceptions   *exception.Handler
	featureCount int
}

var _ event.Handler = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher emitting features to consumer.
func NewDispatcher(consumer Consumer, cfg Config) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	latFirst := cfg.Schema.LatitudeFirst
	if cfg.LatitudeFirst != nil {
		latFirst = *cfg.LatitudeFirst
	}

	return &Dispatcher{
		cfg: cfg,
		geometry: geometry.Config{
			LatitudeFirst: latFirst,
			Logger:        cfg.Logger,
		},
		consumer: consumer,
	}
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// IsExceptionReport reports whether the document turned out to be an
// exception report.
func (d *Dispatcher) IsExceptionReport() bool {
	return d.state == Error
}

// Exceptions returns the entries of the exception report, if any.
func (d *Dispatcher) Exceptions() []model.Exception {
	if d.exceptions == nil {
		return nil
	}

	return d.exceptions.Exceptions()
}

// FeatureCount returns the number of features emitted so far.
func (d *Dispatcher) FeatureCount() int {
	return d.featureCount
}

func (d *Dispatcher) StartDocument() error {
	d.cfg.Logger.Debug("start of document")

	return nil
}

func (d *Dispatcher) Characters(text []byte) error {
	d.text.Write(text)

	return nil
}

func (d *Dispatcher) StartElement(el event.StartElement) error {
	d.text.Reset()
	d.leaf = el.Name

	switch d.state {
	case SeekFeature:
		if d.skip != "" {
			if el.Name == d.skip {
				d.skipDepth++
			}

			return nil
		}

		d.seekFeatureStart(el)

	case SeekGeometry:
		if h, ok := geometry.New(el, d.geometry); ok {
			d.collectGeometry(h, false)

			return nil
		}

		// the unknown element and everything below it are ignored
		d.state = SeekFeature
		d.skip = el.Name
		d.skipDepth = 0

	case CollectGeometry:
		if el.Name == d.shape.Tag() {
			d.shapeDepth++
		}

		d.shape.HandleOpeningTag(el)

	case CollectTime:
		if el.Name == d.timeWrapper {
			d.timeDepth++
		}

		d.feature.time.HandleOpeningTag(el)

	case Error:
		d.exceptions.HandleOpeningTag(el)
	}

	return nil
}

func (d *Dispatcher) seekFeatureStart(el event.StartElement) {
	schema := &d.cfg.Schema

	switch {
	case exception.IsReport(el.Name):
		d.cfg.Logger.Debug("document is an exception report", "tag", el.Name)

		d.state = Error
		d.feature = nil
		d.exceptions = exception.NewHandler()
		d.exceptions.HandleOpeningTag(el)

	case d.feature == nil:
		d.openFeature(el)

	case schema.GeometryColumn != "" && el.Name == schema.GeometryColumn:
		d.state = SeekGeometry

	case schema.IsTimeColumn(el.Name) || temporal.IsContainer(el.Name):
		d.state = CollectTime
		d.timeWrapper = el.Name
		d.timeDepth = 0
		d.feature.time.HandleOpeningTag(el)

	case schema.GeometryColumn == "" && geometry.Known(el.Name):
		if h, ok := geometry.New(el, d.geometry); ok {
			d.collectGeometry(h, true)
		}

	default:
		if el.Name == d.feature.boundary {
			d.feature.depth++
		}

		d.openFeature(el)
	}
}

// openFeature starts a new feature when el carries an identifier. An
// identified element nested within an open feature replaces it.
func (d *Dispatcher) openFeature(el event.StartElement) {
	value, ok := el.Attr(attrID)
	if !ok {
		value, ok = el.Attr(attrFID)
	}

	if !ok {
		return
	}

	if d.feature != nil {
		d.cfg.Logger.Debug("replacing open feature", "boundary", d.feature.boundary, "tag", el.Name)
	}

	d.feature = newFeatureAccumulator(el.Name, parseID(d.cfg.Logger, value), &d.cfg)
}

func (d *Dispatcher) collectGeometry(h geometry.Handler, direct bool) {
	d.shape = h
	d.shapeDepth = 0
	d.shapeDirect = direct
	d.state = CollectGeometry
}

func (d *Dispatcher) EndElement(name string) error {
	text := d.text.String()
	leaf := d.leaf == name

	d.text.Reset()
	d.leaf = ""

	switch d.state {
	case SeekFeature:
		if d.skip != "" {
			if name == d.skip {
				if d.skipDepth == 0 {
					d.skip = ""
				} else {
					d.skipDepth--
				}
			}

			return nil
		}

		return d.seekFeatureEnd(name, text, leaf)

	case SeekGeometry:
		if name == d.cfg.Schema.GeometryColumn {
			d.state = SeekFeature
		}

	case CollectGeometry:
		if name == d.shape.Tag() {
			if d.shapeDepth == 0 {
				d.endGeometry()

				return nil
			}

			d.shapeDepth--
		}

		d.shape.HandleClosingTag(name, text)

	case CollectTime:
		if name == d.timeWrapper {
			if d.timeDepth == 0 {
				d.feature.time.HandleClosingTag(name, text)
				d.state = SeekFeature

				return nil
			}

			d.timeDepth--
		}

		d.feature.time.HandleClosingTag(name, text)

	case Error:
		d.exceptions.HandleClosingTag(name, text)
	}

	return nil
}

func (d *Dispatcher) endGeometry() {
	if g := d.shape.Geometry(); g != nil && d.feature != nil {
		d.feature.geometry = g
	}

	d.shape = nil

	if d.shapeDirect {
		d.state = SeekFeature
	} else {
		d.state = SeekGeometry
	}
}

func (d *Dispatcher) seekFeatureEnd(name, text string, leaf bool) error {
	f := d.feature
	if f == nil {
		return nil
	}

	if name == f.boundary {
		if f.depth > 0 {
			f.depth--

			return nil
		}

		return d.emit()
	}

	if leaf {
		d.column(name, text)
	}

	return nil
}

// column records the text of a leaf element of the open feature.
func (d *Dispatcher) column(name, text string) {
	schema := &d.cfg.Schema
	f := d.feature

	switch {
	case schema.ColorColumn != "" && name == schema.ColorColumn:
		c, err := model.ParseColor(strings.TrimSpace(text))
		if err != nil {
			d.cfg.Logger.Warn("unable to parse color", "column", name, "text", text, "error", err)

			return
		}

		f.color = c

	case schema.EndTimeColumn != "" && name == schema.EndTimeColumn:
		f.endOfDay = text
		f.hasEnd = true

	default:
		if col, ok := schema.Column(name); ok {
			f.metadata.Set(name, coerce(d.cfg.Logger, col, text))
		} else if len(schema.Columns) == 0 && strings.TrimSpace(text) != "" {
			f.metadata.Set(name, strings.TrimSpace(text))
		}
	}
}

func (d *Dispatcher) emit() error {
	f := d.feature.feature()
	d.feature = nil

	if err := d.consumer.Consume(f); err != nil {
		return fmt.Errorf("unable to consume feature %d: %w", f.ID, err)
	}

	d.featureCount++

	return nil
}

func (d *Dispatcher) EndDocument() error {
	if d.feature != nil {
		d.cfg.Logger.Warn("document ended within a feature", "boundary", d.feature.boundary)
		d.feature = nil
	}

	if d.state == Error {
		d.cfg.Logger.Debug("end of exception report", "exceptions", len(d.Exceptions()))
	} else {
		d.cfg.Logger.Debug("end of document", "features", d.featureCount)
	}

	if err := d.consumer.Flush(); err != nil {
		return fmt.Errorf("unable to flush consumer: %w", err)
	}

	return nil
}
