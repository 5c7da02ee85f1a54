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

// Package packers holds the compressing writers used to pack encoded
// features.
package packers

import (
	"io"
)

// base counts the bytes written through a compressing writer.
type base struct {
	w       io.WriteCloser
	written int64
}

func newBasePacker(w io.WriteCloser) *base {
	return &base{w: w}
}

func (b *base) Write(p []byte) (int, error) {
	n, err := b.w.Write(p)
	b.written += int64(n)

	return n, err
}

// Close flushes the compressor. The underlying destination stays open.
func (b *base) Close() error {
	return b.w.Close()
}

// Written returns the number of uncompressed bytes written so far.
func (b *base) Written() int64 {
	return b.written
}
