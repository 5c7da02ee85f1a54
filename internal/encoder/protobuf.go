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
	"bytes"
	"fmt"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"m4o.io/gml/model"
)

// MarshalProtobuf renders the feature as a varint length delimited
// google.protobuf.Struct holding its GeoJSON representation.
func MarshalProtobuf(f model.Feature) ([]byte, error) {
	s, err := Struct(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := protodelim.MarshalTo(&buf, s); err != nil {
		return nil, fmt.Errorf("unable to marshal feature %d: %w", f.ID, err)
	}

	return buf.Bytes(), nil
}

// Struct returns the GeoJSON representation of the feature as a Struct.
func Struct(f model.Feature) (*structpb.Struct, error) {
	b, err := MarshalGeoJSON(f)
	if err != nil {
		return nil, err
	}

	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("unable to convert feature %d: %w", f.ID, err)
	}

	return s, nil
}
