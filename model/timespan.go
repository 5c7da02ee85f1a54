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
	"time"
)

// TimeSpan is the temporal validity of a feature: either a closed interval
// (possibly of zero width) or Timeless.
type TimeSpan struct {
	start   time.Time
	end     time.Time
	bounded bool
}

// Timeless is the span of a feature that carried no time information.
var Timeless = TimeSpan{}

// NewInterval creates a span between two instants. Out of order bounds are
// swapped so that Start never follows End.
func NewInterval(start, end time.Time) TimeSpan {
	if end.Before(start) {
		start, end = end, start
	}

	return TimeSpan{start: start, end: end, bounded: true}
}

// NewInstant creates a zero width span.
func NewInstant(t time.Time) TimeSpan {
	return TimeSpan{start: t, end: t, bounded: true}
}

// IsTimeless reports whether the span carries no time information.
func (s TimeSpan) IsTimeless() bool {
	return !s.bounded
}

// IsInstant reports whether the span has zero width.
func (s TimeSpan) IsInstant() bool {
	return s.bounded && s.start.Equal(s.end)
}

// Start returns the beginning of the span; the zero time when timeless.
func (s TimeSpan) Start() time.Time {
	return s.start
}

// End returns the end of the span; the zero time when timeless.
func (s TimeSpan) End() time.Time {
	return s.end
}

// Contains reports whether t lies within the span, bounds included.
func (s TimeSpan) Contains(t time.Time) bool {
	return s.bounded && !t.Before(s.start) && !t.After(s.end)
}

func (s TimeSpan) String() string {
	switch {
	case !s.bounded:
		return "timeless"
	case s.IsInstant():
		return s.start.UTC().Format(time.RFC3339Nano)
	default:
		return s.start.UTC().Format(time.RFC3339Nano) + "/" + s.end.UTC().Format(time.RFC3339Nano)
	}
}
