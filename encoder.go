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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/destel/rill"

	"m4o.io/gml/internal/encoder"
	"m4o.io/gml/model"
)

var ErrEncoderClosed = errors.New("encoder closed")

// Encoder is a Consumer that marshals features in the background and
// writes them, packed, to a writer. Features are written in the order they
// are consumed. Flush waits for every feature to be written.
type Encoder struct {
	features chan rill.Try[model.Feature]
	packer   encoder.Packer

	mu    sync.Mutex
	err   error
	count int64

	close  sync.Once
	closed atomic.Bool
	done   chan struct{}
}

var _ Consumer = (*Encoder)(nil)

// NewEncoder returns a new encoder, configured with options, that writes to
// wrtr.
func NewEncoder(wrtr io.Writer, opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	marshal, err := encoder.NewMarshaler(cfg.format)
	if err != nil {
		return nil, err
	}

	packer, err := encoder.NewPacker(wrtr, cfg.compression)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		features: make(chan rill.Try[model.Feature]),
		packer:   packer,
		done:     make(chan struct{}),
	}

	encoded := encoder.EncodeFeatures(e.features, marshal, int(cfg.nCPU))
	statuses := encoder.SaveEncoded(packer, encoded)

	go e.consumeStatuses(statuses)

	return e, nil
}

// Consume queues a feature for encoding. It returns the first error the
// background pipeline ran into, if any.
func (e *Encoder) Consume(f model.Feature) error {
	if e.closed.Load() {
		return ErrEncoderClosed
	}

	if err := e.Err(); err != nil {
		return err
	}

	e.features <- rill.Wrap(f, nil)

	return nil
}

// Flush waits for the queued features to be written and flushes the
// packer. The Encoder accepts no features afterwards.
func (e *Encoder) Flush() error {
	e.close.Do(func() {
		e.closed.Store(true)
		close(e.features)
		<-e.done

		if err := e.packer.Close(); err != nil {
			e.fail(fmt.Errorf("unable to close packer: %w", err))
		}
	})

	return e.Err()
}

// Close is an alias of Flush.
func (e *Encoder) Close() error {
	return e.Flush()
}

// Err returns the first error encountered while encoding.
func (e *Encoder) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Count returns the number of features written.
func (e *Encoder) Count() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.count
}

// Written returns the number of bytes written before compression. Call it
// after Flush.
func (e *Encoder) Written() int64 {
	return e.packer.Written()
}

func (e *Encoder) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) consumeStatuses(statuses <-chan rill.Try[struct{}]) {
	defer close(e.done)

	for status := range statuses {
		if status.Error != nil {
			slog.Error("unable to encode feature", "error", status.Error)
			e.fail(status.Error)

			continue
		}

		e.mu.Lock()
		e.count++
		e.mu.Unlock()
	}
}
