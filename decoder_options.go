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
	"image/color"
	"log/slog"

	"m4o.io/gml/internal/decoder"
	"m4o.io/gml/model"
)

const (
	// DefaultReadBufferSize is the default size of the buffer the input is
	// read through.
	DefaultReadBufferSize = 64 * 1024
)

// decoderOptions provides optional configuration parameters for Decoder construction.
type decoderOptions struct {
	schema            model.Schema
	latitudeFirst     *bool // overrides the schema when set
	logger            *slog.Logger
	defaultColor      color.NRGBA
	detectCompression bool // unpack gzip, zlib, zstd, lz4 and xz input
	readBufferSize    int
}

// DecoderOption configures how we set up the decoder.
type DecoderOption func(*decoderOptions)

// WithSchema lets you describe the feature type of the response: its
// metadata columns, geometry column and axis order.
func WithSchema(s model.Schema) DecoderOption {
	return func(o *decoderOptions) {
		o.schema = s
	}
}

// WithLatitudeFirst lets you declare whether positions are encoded latitude
// before longitude. It takes precedence over the schema's latitude_first.
func WithLatitudeFirst(latFirst bool) DecoderOption {
	return func(o *decoderOptions) {
		o.latitudeFirst = &latFirst
	}
}

// WithLogger lets you set the logger that receives warnings about
// recoverable data errors.  The default is slog.Default().
func WithLogger(logger *slog.Logger) DecoderOption {
	return func(o *decoderOptions) {
		o.logger = logger
	}
}

// WithDefaultColor lets you set the color of features without a styling
// value.  The default is model.DefaultColor.
func WithDefaultColor(c color.NRGBA) DecoderOption {
	return func(o *decoderOptions) {
		o.defaultColor = c
	}
}

// WithCompressionDetection lets you turn the detection of compressed input
// on or off.  It is on by default.
func WithCompressionDetection(detect bool) DecoderOption {
	return func(o *decoderOptions) {
		o.detectCompression = detect
	}
}

// WithReadBufferSize lets you set the size of the input buffer.
func WithReadBufferSize(s int) DecoderOption {
	return func(o *decoderOptions) {
		o.readBufferSize = s
	}
}

// defaultDecoderConfig provides a default configuration for decoders.
var defaultDecoderConfig = decoderOptions{
	defaultColor:      model.DefaultColor,
	detectCompression: true,
	readBufferSize:    DefaultReadBufferSize,
}

func newDecoderOptions(opts []DecoderOption) decoderOptions {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

func (o decoderOptions) dispatcherConfig() decoder.Config {
	return decoder.Config{
		Schema:        o.schema,
		LatitudeFirst: o.latitudeFirst,
		Logger:        o.logger,
		DefaultColor:  o.defaultColor,
	}
}
