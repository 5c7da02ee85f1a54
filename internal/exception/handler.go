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

// Package exception reads the exception reports a web feature service
// returns in place of feature data.
//
// Two dialects are understood. The OWS dialect
//
//	<ExceptionReport>
//	  <Exception exceptionCode="..." locator="...">
//	    <ExceptionText>...</ExceptionText>
//	  </Exception>
//	</ExceptionReport>
//
// and the older WMS/WFS 1.0 dialect
//
//	<ServiceExceptionReport>
//	  <ServiceException code="..." locator="...">...</ServiceException>
//	</ServiceExceptionReport>
package exception

import (
	"strings"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

const (
	TagExceptionReport        = "ExceptionReport"
	TagServiceExceptionReport = "ServiceExceptionReport"

	tagException        = "Exception"
	tagExceptionText    = "ExceptionText"
	tagServiceException = "ServiceException"

	attrExceptionCode = "exceptionCode"
	attrCode          = "code"
	attrLocator       = "locator"
)

// IsReport reports whether tag opens an exception report.
func IsReport(tag string) bool {
	return tag == TagExceptionReport || tag == TagServiceExceptionReport
}

type state int

const (
	waiting state = iota
	seekException
	seekExceptionText
	collectExceptionText
	collectException
)

// Handler collects the entries of one exception report in document order.
type Handler struct {
	state state

	code    string
	locator string
	texts   int // ExceptionText elements seen in the current Exception

	exceptions []model.Exception
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) HandleOpeningTag(el event.StartElement) {
	switch h.state {
	case waiting:
		if IsReport(el.Name) {
			h.state = seekException
		}

	case seekException:
		switch el.Name {
		case tagException:
			h.begin(el, attrExceptionCode)
			h.state = seekExceptionText
		case tagServiceException:
			h.begin(el, attrCode)
			h.state = collectException
		}

	case seekExceptionText:
		if el.Name == tagExceptionText {
			h.state = collectExceptionText
		}

	case collectExceptionText, collectException:
	}
}

func (h *Handler) begin(el event.StartElement, codeAttr string) {
	h.code, _ = el.Attr(codeAttr)
	h.locator, _ = el.Attr(attrLocator)
	h.texts = 0
}

func (h *Handler) HandleClosingTag(name, text string) {
	switch h.state {
	case collectExceptionText:
		if name == tagExceptionText {
			h.add(text)
			h.texts++
			h.state = seekExceptionText
		}

	case seekExceptionText:
		if name == tagException {
			if h.texts == 0 {
				h.add("")
			}

			h.state = seekException
		}

	case collectException:
		if name == tagServiceException {
			h.add(text)
			h.state = seekException
		}

	case seekException:
		if IsReport(name) {
			h.state = waiting
		}

	case waiting:
	}
}

func (h *Handler) add(text string) {
	h.exceptions = append(h.exceptions, model.Exception{
		Code:    h.code,
		Locator: h.locator,
		Text:    strings.TrimSpace(text),
	})
}

// Exceptions returns the entries collected so far.
func (h *Handler) Exceptions() []model.Exception {
	return h.exceptions
}
