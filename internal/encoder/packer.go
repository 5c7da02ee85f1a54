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
	"fmt"
	"io"

	"m4o.io/gml/internal/encoder/packers"
)

// Packer is the interface that groups methods for packing encoded features
// on their way to the destination writer.
type Packer interface {
	// WriteCloser is used to write the encoded features. Be sure to call
	// the Close method to ensure that all the contents are packed; the
	// destination itself is not closed.
	io.WriteCloser

	// Written returns the number of bytes written before packing.
	Written() int64
}

// NewPacker creates the appropriate Packer for the compression.
func NewPacker(w io.Writer, c Compression) (Packer, error) {
	switch c {
	case RAW:
		return packers.NewRawPacker(w), nil
	case ZLIB:
		return packers.NewZlibPacker(w), nil
	case GZIP:
		return packers.NewGzipPacker(w), nil
	case ZSTD:
		p, err := packers.NewZstdPacker(w)
		if err != nil {
			return nil, fmt.Errorf("could not create %s packer: %w", c, err)
		}

		return p, nil
	case LZ4:
		return packers.NewLz4Packer(w), nil
	case XZ:
		p, err := packers.NewXzPacker(w)
		if err != nil {
			return nil, fmt.Errorf("could not create %s packer: %w", c, err)
		}

		return p, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}
