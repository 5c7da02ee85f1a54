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

package convert

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/gml"
	"m4o.io/gml/internal/encoder"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func convertFile(t *testing.T, path string, encOpts ...gml.EncoderOption) (*bytes.Buffer, int64, error) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	schema, err := gml.LoadSchema("../../../testdata/roads.yaml")
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	decOpts := []gml.DecoderOption{gml.WithSchema(schema), gml.WithLogger(quiet)}

	count, _, err := runConvert(context.Background(), f, buf, decOpts, encOpts)

	return buf, count, err
}

func TestRunConvert(t *testing.T) {
	buf, count, err := convertFile(t, "../../../testdata/roads.gml", gml.WithCompression(encoder.GZIP))
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	r, err := gzip.NewReader(buf)
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	records := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, records, 4)
	assert.Contains(t, records[0], `"name":"Broadway"`)
	assert.Contains(t, records[3], `"geometry":null`)
}

func TestRunConvertExceptionReport(t *testing.T) {
	_, _, err := convertFile(t, "../../../testdata/exception.xml")
	assert.ErrorContains(t, err, "bad request")
}

func TestEncoderOptions(t *testing.T) {
	test_cases := []struct {
		name        string
		format      string
		compression string
		fails       bool
	}{
		{"defaults", "geojsonseq", "none", false},
		{"protobuf zstd", "protobuf", "zstd", false},
		{"mixed case", "ProtoBuf", "XZ", false},
		{"unknown format", "shapefile", "none", true},
		{"unknown compression", "geojsonseq", "rar", true},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().AddFlagSet(convertCmd.Flags())

			require.NoError(t, cmd.Flags().Set("format", tc.format))
			require.NoError(t, cmd.Flags().Set("compression", tc.compression))

			opts, err := encoderOptions(cmd)
			if tc.fails {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, opts, 3)
		})
	}
}
