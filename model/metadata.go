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

// Metadata is an insertion ordered mapping of column name to a typed scalar:
// string, int64 or float64.
type Metadata struct {
	keys   []string
	values map[string]any
}

// Set stores a value, keeping the position of a key that is already present.
func (m *Metadata) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored for a key.
func (m Metadata) Get(key string) (any, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (m Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m Metadata) Len() int {
	return len(m.keys)
}

// Map returns a copy of the entries as a plain map.
func (m Metadata) Map() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k]
	}

	return out
}
