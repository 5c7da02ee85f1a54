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
	"io"

	"github.com/destel/rill"

	"m4o.io/gml/model"
)

// EncodeFeatures marshals the features concurrently, keeping their order.
func EncodeFeatures(in <-chan rill.Try[model.Feature], m Marshaler, workers int) <-chan rill.Try[[]byte] {
	return rill.OrderedMap[model.Feature, []byte](in, max(workers, 1), m)
}

// SaveEncoded writes the encoded records to w in order. Once a write fails
// the remaining records are drained without being written.
func SaveEncoded(w io.Writer, ch <-chan rill.Try[[]byte]) <-chan rill.Try[struct{}] {
	out := make(chan rill.Try[struct{}])

	go func() {
		defer close(out)

		var failed bool

		for rec := range ch {
			if failed {
				continue
			}

			if rec.Error != nil {
				failed = true
				out <- rill.Wrap(struct{}{}, rec.Error)

				continue
			}

			_, err := w.Write(rec.Value)
			failed = err != nil
			out <- rill.Wrap(struct{}{}, err)
		}
	}()

	return out
}
