// Copyright 2025 the original author or authors.
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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var ErrUnknownCompression = errors.New("unknown compression")

// Compression identifies how an input stream is packed.
type Compression int

const (
	Uncompressed Compression = iota
	Gzip
	Zlib
	Zstd
	LZ4
	XZ
)

var compressionNames = [...]string{
	Uncompressed: "none",
	Gzip:         "gzip",
	Zlib:         "zlib",
	Zstd:         "zstd",
	LZ4:          "lz4",
	XZ:           "xz",
}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}

	return compressionNames[c]
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

const (
	magicLength  = 6
	zlibDeflate  = 0x08
	zlibCheckMod = 31
)

// Detect identifies the compression of the stream by its magic number
// without consuming any of it.
func Detect(rdr *bufio.Reader) Compression {
	head, _ := rdr.Peek(magicLength)

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	case bytes.HasPrefix(head, lz4Magic):
		return LZ4
	case bytes.HasPrefix(head, xzMagic):
		return XZ
	case len(head) >= 2 && head[0]&0x0f == zlibDeflate && (uint16(head[0])<<8|uint16(head[1]))%zlibCheckMod == 0:
		return Zlib
	default:
		return Uncompressed
	}
}

// Unpack wraps rdr so that reads return the uncompressed stream, whatever
// the compression Detect finds. Closing the result releases the
// decompressor but not rdr.
func Unpack(rdr io.Reader, size int) (io.ReadCloser, Compression, error) {
	br := bufio.NewReaderSize(rdr, size)
	c := Detect(br)

	var (
		unpacked io.ReadCloser
		err      error
	)

	switch c {
	case Uncompressed:
		unpacked = io.NopCloser(br)
	case Gzip:
		unpacked, err = gzip.NewReader(br)
	case Zlib:
		unpacked, err = zlib.NewReader(br)
	case Zstd:
		var d *zstd.Decoder

		d, err = zstd.NewReader(br)
		if err == nil {
			unpacked = d.IOReadCloser()
		}
	case LZ4:
		unpacked = io.NopCloser(lz4.NewReader(br))
	case XZ:
		var x *xz.Reader

		x, err = xz.NewReader(br)
		if err == nil {
			unpacked = io.NopCloser(x)
		}
	default:
		return nil, c, ErrUnknownCompression
	}

	if err != nil {
		return nil, c, fmt.Errorf("unable to unpack %s stream: %w", c, err)
	}

	return unpacked, c, nil
}
