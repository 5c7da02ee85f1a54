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

package info

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/gml"
	"m4o.io/gml/model"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func summarize(t *testing.T, path string, opts ...gml.DecoderOption) *summary {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	schema, err := gml.LoadSchema("../../../testdata/roads.yaml")
	require.NoError(t, err)

	opts = append([]gml.DecoderOption{gml.WithSchema(schema), gml.WithLogger(quiet)}, opts...)

	s, err := runInfo(context.Background(), path, f, opts...)
	require.NoError(t, err)

	return s
}

func TestRunInfo(t *testing.T) {
	s := summarize(t, "../../../testdata/roads.gml")

	assert.Equal(t, "none", s.Compression)
	assert.Equal(t, int64(4), s.Features)
	assert.Equal(t, int64(1), s.NonSpatial)
	assert.Equal(t, int64(1), s.Timed)
	assert.Equal(t, map[string]int64{"MultiLineString": 1, "Point": 1, "Polygon": 1}, s.Geometries)
	assert.InDelta(t, 0.0602385, s.Length.Degrees(), 1e-6)
	require.NotNil(t, s.BoundingBox)
	assert.Equal(t, model.BoundingBox{Top: 40.79, Left: -74, Bottom: 40.71, Right: -73.91}, *s.BoundingBox)
	assert.Empty(t, s.Exceptions)
}

func TestRunInfoExceptionReport(t *testing.T) {
	s := summarize(t, "../../../testdata/exception.xml")

	assert.Zero(t, s.Features)
	assert.Nil(t, s.BoundingBox)
	assert.Equal(t, []model.Exception{{Code: "1", Text: "bad request"}}, s.Exceptions)
}

func TestRunInfoMalformed(t *testing.T) {
	_, err := runInfo(context.Background(), "broken", bytes.NewBufferString("<a><b></a>"), gml.WithLogger(quiet))
	assert.ErrorContains(t, err, "unable to summarize broken")
}

func TestRenderJSON(t *testing.T) {
	buf := new(bytes.Buffer)

	saved := out

	defer func() { out = saved }()

	out = buf

	require.NoError(t, renderJSON(summarize(t, "../../../testdata/roads.gml")))

	var s summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))

	assert.Equal(t, "../../../testdata/roads.gml", s.File)
	assert.Equal(t, int64(4), s.Features)
	assert.Equal(t, int64(1), s.Geometries["Polygon"])
	assert.InDelta(t, 0.0602385, s.Length.Degrees(), 1e-6)
	require.NotNil(t, s.BoundingBox)
	assert.Equal(t, model.BoundingBox{Top: 40.79, Left: -74, Bottom: 40.71, Right: -73.91}, *s.BoundingBox)
}

func TestRenderText(t *testing.T) {
	buf := new(bytes.Buffer)

	saved := out

	defer func() { out = saved }()

	out = buf

	renderTxt(&summary{
		File:        "roads.gml",
		Compression: "gzip",
		Features:    2729006,
		NonSpatial:  12833,
		Timed:       459055,
		Geometries:  map[string]int64{"Point": 2716173, "LineString": 1, "Polygon": 1},
		Length:      s1.Angle(0.01),
		BoundingBox: &model.BoundingBox{Top: 40.79, Left: -74, Bottom: 40.71, Right: -73.91},
	})

	assert.Equal(t, `File: roads.gml
Compression: gzip
Features: 2,729,006
NonSpatial: 12,833
Timed: 459,055
Geometries: LineString=1, Point=2,716,173, Polygon=1
Length: 0.5730° (63.71 km)
BoundingBox: [(40.79, -74) (40.71, -73.91)]
`, buf.String())

	buf.Reset()

	renderTxt(&summary{
		File:        "exception.xml",
		Compression: "none",
		Exceptions:  []model.Exception{{Code: "1", Text: "bad request"}},
	})

	assert.Equal(t, "File: exception.xml\nCompression: none\nException: 1: bad request\n", buf.String())
}
