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

package model

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownColumnType = errors.New("unknown column type")

// ColumnType is an enumeration of the scalar types a metadata column holds.
type ColumnType int32

const (
	// StringColumn keeps the element text as is.
	StringColumn ColumnType = iota

	// IntegerColumn coerces the element text to an int64.
	IntegerColumn

	// DoubleColumn coerces the element text to a float64.
	DoubleColumn
)

func (t ColumnType) String() string {
	switch t {
	case StringColumn:
		return "string"
	case IntegerColumn:
		return "integer"
	case DoubleColumn:
		return "double"
	default:
		return fmt.Sprintf("ColumnType(%d)", int32(t))
	}
}

// ParseColumnType converts a type name to a ColumnType.
func ParseColumnType(s string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text", "":
		return StringColumn, nil
	case "integer", "int", "long":
		return IntegerColumn, nil
	case "double", "float", "number":
		return DoubleColumn, nil
	default:
		return StringColumn, fmt.Errorf("%w: %q", ErrUnknownColumnType, s)
	}
}

func (t *ColumnType) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColumnType(value.Value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (t ColumnType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Column is a declared metadata column.
type Column struct {
	Name string     `yaml:"name"`
	Type ColumnType `yaml:"type"`
}

// DefaultTimeColumns are the elements treated as time wrappers when a
// schema does not name its own.
var DefaultTimeColumns = []string{"validTime", "phenomenonTime"}

// Schema describes the feature type of a response: its metadata columns,
// the element holding the geometry and the axis order of coordinates.
type Schema struct {
	Columns        []Column `yaml:"columns,omitempty"`
	GeometryColumn string   `yaml:"geometry,omitempty"`
	LatitudeFirst  bool     `yaml:"latitude_first,omitempty"`
	ColorColumn    string   `yaml:"color,omitempty"`
	EndTimeColumn  string   `yaml:"end_time,omitempty"`
	TimeColumns    []string `yaml:"time,omitempty"`
}

// Column returns the declared column with the given name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

// IsTimeColumn reports whether name is one of the time wrappers.
func (s *Schema) IsTimeColumn(name string) bool {
	columns := s.TimeColumns
	if len(columns) == 0 {
		columns = DefaultTimeColumns
	}

	for _, c := range columns {
		if c == name {
			return true
		}
	}

	return false
}
