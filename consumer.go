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
	"m4o.io/gml/model"
)

// ConsumerFunc adapts a function to a Consumer whose Flush does nothing.
type ConsumerFunc func(f model.Feature) error

func (fn ConsumerFunc) Consume(f model.Feature) error {
	return fn(f)
}

func (fn ConsumerFunc) Flush() error {
	return nil
}

// Collector keeps every feature it consumes.
type Collector struct {
	Features []model.Feature
	Flushed  bool
}

var _ Consumer = (*Collector)(nil)

func (c *Collector) Consume(f model.Feature) error {
	c.Features = append(c.Features, f)

	return nil
}

func (c *Collector) Flush() error {
	c.Flushed = true

	return nil
}
