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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	"m4o.io/gml/internal/encoder"
)

func encodeRoads(t *testing.T, w io.Writer, opts ...EncoderOption) *Encoder {
	t.Helper()

	e, err := NewEncoder(w, opts...)
	require.NoError(t, err)

	require.NoError(t, openRoads(t).Decode(e))

	return e
}

func TestEncodeGeoJSONSeq(t *testing.T) {
	var buf bytes.Buffer

	e := encodeRoads(t, &buf, WithNCpus(3))

	assert.Equal(t, int64(4), e.Count())
	assert.Equal(t, int64(buf.Len()), e.Written())

	records := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, records, 4)

	for i, rec := range records {
		require.True(t, strings.HasPrefix(rec, "\x1e"))

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(rec[1:]), &doc))
		assert.Equal(t, "Feature", doc["type"])
		assert.InDelta(t, float64(i+1), doc["id"], 0)
	}
}

func TestEncodeProtobufZstd(t *testing.T) {
	var buf bytes.Buffer

	encodeRoads(t, &buf, WithFormat(encoder.PROTOBUF), WithCompression(encoder.ZSTD))

	dec, err := zstd.NewReader(&buf)
	require.NoError(t, err)

	defer dec.Close()

	rdr := bufio.NewReader(dec)

	var names []any

	for {
		s := &structpb.Struct{}

		err := protodelim.UnmarshalFrom(rdr, s)
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		names = append(names, s.AsMap()["properties"].(map[string]any)["name"])
	}

	assert.Equal(t, []any{"Broadway", "Central Loop", "Toll Booth", "Planned Extension"}, names)
}

func TestEncoderClosed(t *testing.T) {
	e, err := NewEncoder(io.Discard)
	require.NoError(t, err)

	require.NoError(t, e.Close())
	require.NoError(t, e.Flush())

	var c Collector
	require.NoError(t, openRoads(t).Decode(&c))
	assert.ErrorIs(t, e.Consume(c.Features[0]), ErrEncoderClosed)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncoderWriteError(t *testing.T) {
	e, err := NewEncoder(failingWriter{})
	require.NoError(t, err)

	err = openRoads(t).Decode(e)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
}

func TestNewEncoderUnknownFormat(t *testing.T) {
	_, err := NewEncoder(io.Discard, WithFormat(encoder.Format(42)))
	assert.ErrorIs(t, err, encoder.ErrUnknownFormat)

	_, err = NewEncoder(io.Discard, WithCompression(encoder.Compression(42)))
	assert.ErrorIs(t, err, encoder.ErrUnknownCompression)
}
