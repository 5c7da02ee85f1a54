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
	"runtime"

	"m4o.io/gml/internal/encoder"
)

const (
	// DefaultCompression is the default compression of encoded output.
	DefaultCompression = encoder.RAW

	// DefaultFormat is the default record format of encoded output.
	DefaultFormat = encoder.GEOJSONSEQ
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// encoderOptions provides optional configuration parameters for Encoder construction.
type encoderOptions struct {
	compression encoder.Compression
	format      encoder.Format
	nCPU        uint16 // the number of CPUs to use for marshaling
}

// EncoderOption configures how we set up the encoder.
type EncoderOption func(*encoderOptions)

// WithCompression specifies the compression algorithm to use when writing
// the encoded features.  The default is no compression.
func WithCompression(compression encoder.Compression) EncoderOption {
	return func(o *encoderOptions) {
		o.compression = compression
	}
}

// WithFormat specifies the record format of the encoded features.  The
// default is a GeoJSON text sequence.
func WithFormat(format encoder.Format) EncoderOption {
	return func(o *encoderOptions) {
		o.format = format
	}
}

// WithNCpus lets you set the number of CPUs to use for marshaling.
func WithNCpus(n uint16) EncoderOption {
	return func(o *encoderOptions) {
		o.nCPU = n
	}
}

// defaultEncoderConfig provides a default configuration for encoders.
var defaultEncoderConfig = encoderOptions{
	compression: DefaultCompression,
	format:      DefaultFormat,
	nCPU:        DefaultNCpu(),
}
