// Copyright 2017-26 the original author or authors.
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
	"math"
	"strconv"
	"strings"
)

var ErrNotFinite = errors.New("not a finite number")

// Degrees is the decimal degree representation of a longitude or latitude.
type Degrees float64

// Epsilon is a tolerance used when comparing Degrees.
type Epsilon float64

const (
	// E9 is the tolerance within which two positions are the same point.
	E9 Epsilon = 1e-9

	fullTurn Degrees = 360
)

func (d Degrees) String() string {
	return ftoa(float64(d))
}

func (d Degrees) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// EqualWithin reports whether two degrees differ by no more than eps.
func (d Degrees) EqualWithin(o Degrees, eps Epsilon) bool {
	return math.Abs(float64(d-o)) <= float64(eps)
}

// NormalizeLongitude maps a longitude greater than 180 degrees back into the
// western hemisphere by subtracting a full turn. Every other value, including
// -180 and 180, is returned untouched.
func NormalizeLongitude(lon Degrees) Degrees {
	if lon > MaxLon {
		return lon - fullTurn
	}

	return lon
}

// ParseDegrees converts a string to a Degrees instance. NaN and infinities
// are rejected.
func ParseDegrees(s string) (Degrees, error) {
	u, err := ParseFinite(s)
	if err != nil {
		return 0, err
	}

	return Degrees(u), nil
}

// ParseFinite parses a float64, rejecting NaN and infinities.
func ParseFinite(s string) (float64, error) {
	u, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(u) || math.IsInf(u, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}

	return u, nil
}

// ftoa formats a float with at most six fractional digits and no trailing
// zeros.
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if s == "-0" {
		return "0"
	}

	return s
}
