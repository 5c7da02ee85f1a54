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

package exception_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/internal/exception"
	"m4o.io/gml/model"
)

func TestServiceExceptionReport(t *testing.T) {
	h := exception.NewHandler()
	h.HandleOpeningTag(event.Start("ServiceExceptionReport", "version", "1.2.0"))
	h.HandleOpeningTag(event.Start("ServiceException", "code", "1"))
	h.HandleClosingTag("ServiceException", "\n  bad request\n")
	h.HandleClosingTag("ServiceExceptionReport", "")

	assert.Equal(t, []model.Exception{{Code: "1", Text: "bad request"}}, h.Exceptions())
}

func TestServiceExceptionWithoutCode(t *testing.T) {
	h := exception.NewHandler()
	h.HandleOpeningTag(event.Start("ServiceExceptionReport"))
	h.HandleOpeningTag(event.Start("ServiceException"))
	h.HandleClosingTag("ServiceException", "layer not defined")
	h.HandleOpeningTag(event.Start("ServiceException", "code", "InvalidFormat", "locator", "format"))
	h.HandleClosingTag("ServiceException", "unknown format")
	h.HandleOpeningTag(event.Start("ServiceException", "code", ""))
	h.HandleClosingTag("ServiceException", "empty code")
	h.HandleClosingTag("ServiceExceptionReport", "")

	assert.Equal(t, []model.Exception{
		{Text: "layer not defined"},
		{Code: "InvalidFormat", Locator: "format", Text: "unknown format"},
		{Text: "empty code"},
	}, h.Exceptions())
	assert.Equal(t, "empty code", h.Exceptions()[2].String())
}

func TestExceptionReport(t *testing.T) {
	h := exception.NewHandler()
	h.HandleOpeningTag(event.Start("ExceptionReport", "version", "2.0.0"))
	h.HandleOpeningTag(event.Start("Exception", "exceptionCode", "InvalidParameterValue", "locator", "typeName"))
	h.HandleOpeningTag(event.Start("ExceptionText"))
	h.HandleClosingTag("ExceptionText", "Unknown feature type")
	h.HandleOpeningTag(event.Start("ExceptionText"))
	h.HandleClosingTag("ExceptionText", " try again ")
	h.HandleClosingTag("Exception", "")
	h.HandleOpeningTag(event.Start("Exception", "exceptionCode", "NoApplicableCode"))
	h.HandleClosingTag("Exception", "")
	h.HandleClosingTag("ExceptionReport", "")

	assert.Equal(t, []model.Exception{
		{Code: "InvalidParameterValue", Locator: "typeName", Text: "Unknown feature type"},
		{Code: "InvalidParameterValue", Locator: "typeName", Text: "try again"},
		{Code: "NoApplicableCode"},
	}, h.Exceptions())
}

func TestIgnoresUnrelatedElements(t *testing.T) {
	h := exception.NewHandler()
	h.HandleOpeningTag(event.Start("Exception", "exceptionCode", "X"))
	h.HandleClosingTag("Exception", "")

	assert.Empty(t, h.Exceptions())
	assert.True(t, exception.IsReport("ExceptionReport"))
	assert.False(t, exception.IsReport("FeatureCollection"))
}
