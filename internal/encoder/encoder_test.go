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

package encoder_test

import (
	"bufio"
	"bytes"
	"errors"
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/destel/rill"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/orb"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	"m4o.io/gml/internal/encoder"
	"m4o.io/gml/model"
)

func station() model.Feature {
	var md model.Metadata
	md.Set("name", "Harbor")
	md.Set("lanes", int64(2))

	return model.Feature{
		ID:       7,
		Geometry: model.Point{Coordinate: model.Coordinate{Lat: 2.5, Lon: 1.5}},
		Time:     model.NewInstant(time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)),
		Metadata: md,
		Color:    color.NRGBA{R: 0xff, A: 0xff},
	}
}

func TestMarshalGeoJSON(t *testing.T) {
	b, err := encoder.MarshalGeoJSON(station())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "Feature",
		"id": 7,
		"geometry": {"type": "Point", "coordinates": [1.5, 2.5]},
		"properties": {"name": "Harbor", "lanes": 2, "time": "2021-06-01T12:00:00Z", "color": "#ff0000ff"}
	}`, string(b))
}

func TestMarshalGeoJSONWithoutGeometry(t *testing.T) {
	b, err := encoder.MarshalGeoJSON(model.Feature{ID: 3, Time: model.Timeless, Color: model.DefaultColor})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type": "Feature", "id": 3, "geometry": null, "properties": {"color": "#3366ccff"}}`, string(b))
}

func TestMarshalGeoJSONSeq(t *testing.T) {
	b, err := encoder.MarshalGeoJSONSeq(station())
	require.NoError(t, err)

	assert.Equal(t, byte(0x1e), b[0])
	assert.Equal(t, byte('\n'), b[len(b)-1])
}

func TestOrb(t *testing.T) {
	a := model.Coordinate{Lat: 1, Lon: 2}
	b := model.Coordinate{Lat: 3, Lon: 4}

	test_cases := []struct {
		name     string
		geometry model.Geometry
		expected orb.Geometry
	}{
		{"nil", nil, nil},
		{"point", model.Point{Coordinate: a}, orb.Point{2, 1}},
		{"line string", model.LineString{Coordinates: []model.Coordinate{a, b}}, orb.LineString{{2, 1}, {4, 3}}},
		{"polygon", model.Polygon{Exterior: []model.Coordinate{a, b, a}}, orb.Polygon{{{2, 1}, {4, 3}, {2, 1}}}},
		{
			"multi point",
			model.Multi{Kind: model.MultiPointType, Parent: model.Point{Coordinate: a}, Children: []model.Geometry{model.Point{Coordinate: b}}},
			orb.MultiPoint{{2, 1}, {4, 3}},
		},
		{
			"multi curve",
			model.Multi{Kind: model.MultiCurveType, Parent: model.LineString{Coordinates: []model.Coordinate{a, b}}},
			orb.MultiLineString{{{2, 1}, {4, 3}}},
		},
		{
			"multi geometry",
			model.Multi{Kind: model.MultiGeometryType, Parent: model.Point{Coordinate: a}},
			orb.Collection{orb.Point{2, 1}},
		},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, encoder.Orb(tc.geometry))
		})
	}
}

func TestMarshalProtobuf(t *testing.T) {
	b, err := encoder.MarshalProtobuf(station())
	require.NoError(t, err)

	s := &structpb.Struct{}
	require.NoError(t, protodelim.UnmarshalFrom(bufio.NewReader(bytes.NewReader(b)), s))

	m := s.AsMap()
	assert.Equal(t, "Feature", m["type"])
	assert.InDelta(t, 7.0, m["id"], 0)
	assert.Equal(t, "Harbor", m["properties"].(map[string]any)["name"])
}

func unpacked(t *testing.T, c encoder.Compression, b []byte) string {
	t.Helper()

	var (
		r   io.Reader
		err error
	)

	src := bytes.NewReader(b)

	switch c {
	case encoder.RAW:
		r = src
	case encoder.ZLIB:
		r, err = zlib.NewReader(src)
	case encoder.GZIP:
		r, err = gzip.NewReader(src)
	case encoder.ZSTD:
		r, err = zstd.NewReader(src)
	case encoder.LZ4:
		r = lz4.NewReader(src)
	case encoder.XZ:
		r, err = xz.NewReader(src)
	}

	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestPackers(t *testing.T) {
	const payload = "the quick brown fox jumps over the lazy dog"

	for _, c := range []encoder.Compression{encoder.RAW, encoder.ZLIB, encoder.GZIP, encoder.ZSTD, encoder.LZ4, encoder.XZ} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			p, err := encoder.NewPacker(&buf, c)
			require.NoError(t, err)

			_, err = io.WriteString(p, payload)
			require.NoError(t, err)
			require.NoError(t, p.Close())

			assert.Equal(t, int64(len(payload)), p.Written())
			assert.Equal(t, payload, unpacked(t, c, buf.Bytes()))
		})
	}
}

func TestParse(t *testing.T) {
	c, err := encoder.ParseCompression("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, encoder.ZSTD, c)

	c, err = encoder.ParseCompression("none")
	require.NoError(t, err)
	assert.Equal(t, encoder.RAW, c)

	_, err = encoder.ParseCompression("brotli")
	assert.ErrorIs(t, err, encoder.ErrUnknownCompression)

	f, err := encoder.ParseFormat("protobuf")
	require.NoError(t, err)
	assert.Equal(t, encoder.PROTOBUF, f)

	_, err = encoder.ParseFormat("kml")
	assert.ErrorIs(t, err, encoder.ErrUnknownFormat)
}

func TestPipeline(t *testing.T) {
	in := make(chan rill.Try[model.Feature])

	go func() {
		defer close(in)

		for i := range 20 {
			in <- rill.Wrap(model.Feature{ID: model.ID(i)}, nil)
		}
	}()

	var buf bytes.Buffer

	marshal := func(f model.Feature) ([]byte, error) {
		return []byte{byte(f.ID)}, nil
	}

	for status := range encoder.SaveEncoded(&buf, encoder.EncodeFeatures(in, marshal, 4)) {
		require.NoError(t, status.Error)
	}

	expected := make([]byte, 20)
	for i := range expected {
		expected[i] = byte(i)
	}

	assert.Equal(t, expected, buf.Bytes())
}

func TestPipelineError(t *testing.T) {
	errBad := errors.New("bad feature")
	in := make(chan rill.Try[model.Feature], 3)
	in <- rill.Wrap(model.Feature{ID: 1}, nil)
	in <- rill.Wrap(model.Feature{ID: 2}, nil)
	in <- rill.Wrap(model.Feature{ID: 3}, nil)
	close(in)

	marshal := func(f model.Feature) ([]byte, error) {
		if f.ID == 2 {
			return nil, errBad
		}

		return []byte{byte(f.ID)}, nil
	}

	var (
		buf  bytes.Buffer
		errs []error
	)

	for status := range encoder.SaveEncoded(&buf, encoder.EncodeFeatures(in, marshal, 1)) {
		if status.Error != nil {
			errs = append(errs, status.Error)
		}
	}

	assert.Equal(t, []error{errBad}, errs)
	assert.Equal(t, []byte{1}, buf.Bytes())
}
