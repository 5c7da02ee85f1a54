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

// Package event defines the push based stream of XML events that drives the
// GML handlers.
package event

// Attr is an attribute of a start element. Name is the local name.
type Attr struct {
	Space string
	Name  string
	Value string
}

// StartElement is an opening tag. Name is the local name, without any
// namespace prefix; Space is the namespace the element belongs to.
type StartElement struct {
	Space string
	Name  string
	Attrs []Attr
}

// Start creates a StartElement from a local name and alternating attribute
// name/value pairs.
func Start(name string, attrs ...string) StartElement {
	el := StartElement{Name: name}

	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs = append(el.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}

	return el
}

// Attr returns the value of the first attribute with the given local name.
func (e StartElement) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Handler receives events in document order. Characters may be delivered
// in several chunks between two tags; the receiver concatenates them.
// Returning an error stops the stream.
type Handler interface {
	StartDocument() error
	StartElement(el StartElement) error
	Characters(text []byte) error
	EndElement(name string) error
	EndDocument() error
}
