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

package gml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/gml/model"
)

func ids(features []model.Feature) []model.ID {
	out := make([]model.ID, 0, len(features))
	for _, f := range features {
		out = append(out, f.ID)
	}

	return out
}

func TestIndex(t *testing.T) {
	x := NewIndex()
	require.NoError(t, openRoads(t).Decode(x))

	assert.Equal(t, 3, x.Len())
	assert.Equal(t, []model.ID{4}, ids(x.NonSpatial()))

	bounds := x.Bounds()
	assert.Equal(t, model.BoundingBox{Top: 40.79, Left: -74, Bottom: 40.71, Right: -73.91}, bounds)

	test_cases := []struct {
		name     string
		bbox     model.BoundingBox
		expected []model.ID
	}{
		{"everything", model.BoundingBox{Top: 41, Left: -75, Bottom: 40, Right: -73}, []model.ID{1, 2, 3}},
		{"downtown", model.BoundingBox{Top: 40.725, Left: -74.01, Bottom: 40.70, Right: -73.985}, []model.ID{1}},
		{"toll booth", model.BoundingBox{Top: 40.75, Left: -73.91, Bottom: 40.75, Right: -73.91}, []model.ID{3}},
		{"beside the toll booth", model.BoundingBox{Top: 40.751, Left: -73.90995, Bottom: 40.749, Right: -73.9}, []model.ID{}},
		{"elsewhere", model.BoundingBox{Top: 10, Left: 10, Bottom: 0, Right: 20}, []model.ID{}},
		{"empty", *model.InitialBoundingBox(), []model.ID{}},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(x.Search(tc.bbox)))
		})
	}
}
