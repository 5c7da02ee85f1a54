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

package gml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"m4o.io/gml/model"
)

// ReadSchema reads a YAML schema description.
func ReadSchema(r io.Reader) (model.Schema, error) {
	var s model.Schema

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return model.Schema{}, fmt.Errorf("unable to read schema: %w", err)
	}

	return s, nil
}

// LoadSchema reads the YAML schema description at path.
func LoadSchema(path string) (model.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Schema{}, fmt.Errorf("unable to open schema: %w", err)
	}
	defer f.Close()

	return ReadSchema(f)
}
