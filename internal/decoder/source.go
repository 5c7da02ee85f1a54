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

package decoder

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html/charset"

	"m4o.io/gml/internal/event"
)

const xmlns = "xmlns"

// Drive reads the XML document off of reader and pushes its events into
// handler until the document ends, the handler fails or ctx is done.
func Drive(ctx context.Context, reader io.Reader, handler event.Handler) error {
	dec := xml.NewDecoder(reader)
	dec.CharsetReader = charset.NewReaderLabel

	if err := handler.StartDocument(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			slog.Error("unable to read xml token", "error", err)

			return fmt.Errorf("unable to read xml token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = handler.StartElement(startElement(t))
		case xml.EndElement:
			err = handler.EndElement(t.Name.Local)
		case xml.CharData:
			err = handler.Characters(t)
		}

		if err != nil {
			return err
		}
	}

	return handler.EndDocument()
}

func startElement(t xml.StartElement) event.StartElement {
	el := event.StartElement{Space: t.Name.Space, Name: t.Name.Local}

	for _, a := range t.Attr {
		if a.Name.Space == xmlns || (a.Name.Space == "" && a.Name.Local == xmlns) {
			continue
		}

		el.Attrs = append(el.Attrs, event.Attr{Space: a.Name.Space, Name: a.Name.Local, Value: a.Value})
	}

	return el
}
