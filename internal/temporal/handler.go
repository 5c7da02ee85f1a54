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

// Package temporal collects the GML time primitives of a feature and
// resolves them into a model.TimeSpan.
package temporal

import (
	"log/slog"
	"strings"
	"time"

	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

const (
	TagTimeInstant = "TimeInstant"
	TagTimePeriod  = "TimePeriod"

	tagBeginPosition = "beginPosition"
	tagEndPosition   = "endPosition"
	tagTimePosition  = "timePosition"
	tagBegin         = "begin"
	tagEnd           = "end"

	// endOfDayLayout parses the HHmmss.ff fragments carrying the time of
	// day a feature expires.
	endOfDayLayout = "150405.999999999"
)

// layouts are tried in order when parsing a position.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// IsContainer reports whether tag is one of the GML time primitives.
func IsContainer(tag string) bool {
	return tag == TagTimeInstant || tag == TagTimePeriod
}

type bound int

const (
	unbound bound = iota
	beginBound
	endBound
)

// Handler accumulates the begin and end instants found in the time
// elements of one feature. The last value assigned to a bound wins.
type Handler struct {
	logger *slog.Logger
	within bound

	start    time.Time
	end      time.Time
	hasStart bool
	hasEnd   bool
}

// NewHandler creates an empty Handler. A nil logger selects slog.Default.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{logger: logger}
}

func (h *Handler) HandleOpeningTag(el event.StartElement) {
	switch el.Name {
	case tagBegin:
		h.within = beginBound
	case tagEnd:
		h.within = endBound
	}
}

func (h *Handler) HandleClosingTag(name, text string) {
	switch name {
	case tagBegin, tagEnd:
		h.within = unbound
	case tagBeginPosition:
		h.setStart(text)
	case tagEndPosition:
		h.setEnd(text)
	case tagTimePosition:
		if h.within == endBound {
			h.setEnd(text)
		} else {
			h.setStart(text)
		}
	}
}

func (h *Handler) setStart(text string) {
	if t, ok := h.parse(text); ok {
		h.start, h.hasStart = t, true
	}
}

func (h *Handler) setEnd(text string) {
	if t, ok := h.parse(text); ok {
		h.end, h.hasEnd = t, true
	}
}

func (h *Handler) parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	h.logger.Warn("unparsable time position", "text", text)

	return time.Time{}, false
}

// ResolveTimes returns the span of the collected instants. Bounds out of
// order are swapped, a lone bound becomes an instant and no bound at all
// gives model.Timeless.
func (h *Handler) ResolveTimes() model.TimeSpan {
	switch {
	case h.hasStart && h.hasEnd:
		return model.NewInterval(h.start, h.end)
	case h.hasStart:
		return model.NewInstant(h.start)
	case h.hasEnd:
		return model.NewInstant(h.end)
	default:
		return model.Timeless
	}
}

// ResolveTimeWithEndDay ends the span at the time of day given by fragment,
// on the calendar day of the collected start. The end rolls over to the
// following day when it would otherwise precede the start. Without a start,
// or with a malformed fragment, the result is that of ResolveTimes.
func (h *Handler) ResolveTimeWithEndDay(fragment string) model.TimeSpan {
	if !h.hasStart {
		return h.ResolveTimes()
	}

	fragment = strings.TrimSpace(fragment)

	tod, err := time.Parse(endOfDayLayout, fragment)
	if err != nil {
		h.logger.Warn("unparsable end of day", "text", fragment, "error", err)

		return h.ResolveTimes()
	}

	end := time.Date(h.start.Year(), h.start.Month(), h.start.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), tod.Nanosecond(), h.start.Location())

	if end.Before(h.start) {
		end = end.AddDate(0, 0, 1)
	}

	return model.NewInterval(h.start, end)
}
