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

package query

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/gml"
	"m4o.io/gml/model"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParseBoundingBox(t *testing.T) {
	test_cases := []struct {
		name     string
		in       string
		expected model.BoundingBox
		fails    bool
	}{
		{"plain", "-74,40.7,-73.9,40.8", model.BoundingBox{Left: -74, Bottom: 40.7, Right: -73.9, Top: 40.8}, false},
		{"spaces", " -74 , 40.7 , -73.9 , 40.8 ", model.BoundingBox{Left: -74, Bottom: 40.7, Right: -73.9, Top: 40.8}, false},
		{"degenerate", "1,2,1,2", model.BoundingBox{Left: 1, Bottom: 2, Right: 1, Top: 2}, false},
		{"too few", "1,2,3", model.BoundingBox{}, true},
		{"not a number", "a,2,3,4", model.BoundingBox{}, true},
		{"inverted", "3,4,1,2", model.BoundingBox{}, true},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			bbox, err := parseBoundingBox(tc.in)
			if tc.fails {
				assert.ErrorIs(t, err, ErrInvalidBoundingBox)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, bbox)
		})
	}
}

func query(t *testing.T, bbox model.BoundingBox, nonSpatial bool) []float64 {
	t.Helper()

	f, err := os.Open("../../../testdata/roads.gml")
	require.NoError(t, err)

	defer f.Close()

	buf := new(bytes.Buffer)

	saved := out

	defer func() { out = saved }()

	out = buf

	require.NoError(t, runQuery(context.Background(), f, bbox, nonSpatial, gml.WithLogger(quiet)))

	var ids []float64

	for _, rec := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if rec == "" {
			continue
		}

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(rec, "\x1e")), &doc))

		ids = append(ids, doc["id"].(float64))
	}

	return ids
}

func TestRunQuery(t *testing.T) {
	midtown := model.BoundingBox{Left: -73.96, Bottom: 40.74, Right: -73.90, Top: 40.80}

	assert.Equal(t, []float64{2, 3}, query(t, midtown, false))
	assert.Equal(t, []float64{2, 3, 4}, query(t, midtown, true))
	assert.Empty(t, query(t, model.BoundingBox{Left: 0, Bottom: 0, Right: 1, Top: 1}, false))
}
