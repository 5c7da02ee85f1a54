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
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

// DefaultColor is the display color of features without a styling value.
var DefaultColor = color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}

// ParseColor parses a hex color of the form #RRGGBB or #RRGGBBAA; the
// leading '#' is optional.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}

	return c, nil
}

// FormatColor renders a color as #RRGGBBAA.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
