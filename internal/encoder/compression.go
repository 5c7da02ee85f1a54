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

package encoder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCompression = errors.New("unknown compression")
	ErrUnknownFormat      = errors.New("unknown format")
)

// Compression is the algorithm used to pack the encoded output.
type Compression int

const (
	RAW Compression = iota
	ZLIB
	GZIP
	ZSTD
	LZ4
	XZ
)

var compressionNames = [...]string{
	RAW:  "raw",
	ZLIB: "zlib",
	GZIP: "gzip",
	ZSTD: "zstd",
	LZ4:  "lz4",
	XZ:   "xz",
}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}

	return compressionNames[c]
}

// ParseCompression returns the compression with the given name, ignoring
// case. "none" is accepted for RAW.
func ParseCompression(s string) (Compression, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "" {
		return RAW, nil
	}

	for c, name := range compressionNames {
		if name == s {
			return Compression(c), nil
		}
	}

	return RAW, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// Format is the record format of the encoded output.
type Format int

const (
	// GEOJSONSEQ writes GeoJSON text sequences (RFC 8142), one feature per
	// record.
	GEOJSONSEQ Format = iota

	// PROTOBUF writes varint length delimited google.protobuf.Struct
	// messages holding the GeoJSON representation of each feature.
	PROTOBUF
)

var formatNames = [...]string{
	GEOJSONSEQ: "geojsonseq",
	PROTOBUF:   "protobuf",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}

	return GEOJSONSEQ, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
