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

package gml_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"m4o.io/gml"
)

func Example() {
	in, err := os.Open("testdata/roads.gml")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	schema, err := gml.LoadSchema("testdata/roads.yaml")
	if err != nil {
		log.Fatal(err)
	}

	d, err := gml.NewDecoder(context.Background(), in, gml.WithSchema(schema))
	if err != nil {
		log.Fatal(err)
	}

	var spatial, other int

	for f, err := range d.All() {
		if err != nil {
			log.Fatal(err)
		}

		if f.IsSpatial() {
			spatial++
		} else {
			other++
		}
	}

	if d.IsExceptionReport() {
		log.Fatalf("service exception: %v", d.Exceptions())
	}

	fmt.Printf("Spatial: %d, Non-spatial: %d\n", spatial, other)
	// Output:
	// Spatial: 3, Non-spatial: 1
}
