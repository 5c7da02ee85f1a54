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

package decoder

import (
	"log/slog"
	"strconv"
	"strings"

	"m4o.io/gml/model"
)

// coerce converts the text of a metadata column to the column's declared
// type. Text that does not parse is kept as the raw string.
func coerce(logger *slog.Logger, col model.Column, text string) any {
	switch col.Type {
	case model.IntegerColumn:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			logger.Warn("unable to coerce metadata", "column", col.Name, "type", col.Type, "text", text)

			return text
		}

		return v

	case model.DoubleColumn:
		v, err := model.ParseFinite(strings.TrimSpace(text))
		if err != nil {
			logger.Warn("unable to coerce metadata", "column", col.Name, "type", col.Type, "text", text)

			return text
		}

		return v

	default:
		return text
	}
}
