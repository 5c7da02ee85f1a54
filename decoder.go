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

// Package gml decodes GML 3.1.1 feature collections, as returned by web
// feature services, into a stream of features.
//
// The document is read in a single pass; each feature is handed to a
// Consumer as soon as its closing tag is read. Responses that are service
// exception reports produce no features; their entries are available from
// Decoder.Exceptions once decoding completes.
package gml

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync/atomic"

	"m4o.io/gml/internal/decoder"
	"m4o.io/gml/internal/event"
	"m4o.io/gml/model"
)

var ErrDecoderUsed = errors.New("decoder already used")

type (
	// Dispatcher is the push based feature state machine. Feed it events
	// to decode documents that are not read by a Decoder.
	Dispatcher = decoder.Dispatcher

	// StartElement is an opening tag pushed into a Dispatcher.
	StartElement = event.StartElement

	// Attr is an attribute of a StartElement.
	Attr = event.Attr

	// Consumer receives decoded features in document order.
	Consumer = decoder.Consumer
)

// NewDispatcher creates a Dispatcher, configured with options, that emits
// features to consumer.
func NewDispatcher(consumer Consumer, opts ...DecoderOption) *Dispatcher {
	cfg := newDecoderOptions(opts)

	return decoder.NewDispatcher(consumer, cfg.dispatcherConfig())
}

// Decoder reads and decodes a GML document from an input stream.
type Decoder struct {
	ctx         context.Context
	cfg         decoderOptions
	reader      io.ReadCloser
	compression decoder.Compression

	used       atomic.Bool
	dispatcher *Dispatcher
}

// NewDecoder returns a new decoder, configured with options, that reads
// from reader.  Compressed input is unpacked transparently.
func NewDecoder(ctx context.Context, reader io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderOptions(opts)

	d := &Decoder{ctx: ctx, cfg: cfg}

	if cfg.detectCompression {
		rdr, c, err := decoder.Unpack(reader, cfg.readBufferSize)
		if err != nil {
			slog.Error("unable to unpack input", "error", err)

			return nil, err
		}

		d.reader, d.compression = rdr, c
	} else {
		d.reader = io.NopCloser(bufio.NewReaderSize(reader, cfg.readBufferSize))
	}

	return d, nil
}

// Decode reads the whole document, handing every feature to consumer. It
// returns ErrDecoderUsed when called more than once.
func (d *Decoder) Decode(consumer Consumer) error {
	if !d.used.CompareAndSwap(false, true) {
		return ErrDecoderUsed
	}

	defer d.reader.Close()

	d.dispatcher = decoder.NewDispatcher(consumer, d.cfg.dispatcherConfig())

	if err := decoder.Drive(d.ctx, d.reader, d.dispatcher); err != nil {
		return fmt.Errorf("unable to decode document: %w", err)
	}

	return nil
}

var errStopped = errors.New("iteration stopped")

// All returns an iterator over the features of the document. A decoding
// error is yielded last, with a zero Feature.
func (d *Decoder) All() iter.Seq2[model.Feature, error] {
	return func(yield func(model.Feature, error) bool) {
		err := d.Decode(ConsumerFunc(func(f model.Feature) error {
			if !yield(f, nil) {
				return errStopped
			}

			return nil
		}))

		if err != nil && !errors.Is(err, errStopped) {
			yield(model.Feature{}, err)
		}
	}
}

// IsExceptionReport reports whether the document was a service exception
// report rather than feature data.
func (d *Decoder) IsExceptionReport() bool {
	return d.dispatcher != nil && d.dispatcher.IsExceptionReport()
}

// Exceptions returns the entries of the exception report, in document
// order. It is empty unless IsExceptionReport is true.
func (d *Decoder) Exceptions() []model.Exception {
	if d.dispatcher == nil {
		return nil
	}

	return d.dispatcher.Exceptions()
}

// FeatureCount returns the number of features decoded so far.
func (d *Decoder) FeatureCount() int {
	if d.dispatcher == nil {
		return 0
	}

	return d.dispatcher.FeatureCount()
}

// Compression returns the name of the compression detected on the input.
func (d *Decoder) Compression() string {
	return d.compression.String()
}
