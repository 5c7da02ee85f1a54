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

// Package model contains the shared model for GML feature decoders.
package model

import (
	"image/color"
)

// ID is the numeric identifier of a feature.
type ID int64

// Feature is one completed record of a feature collection. Geometry is nil
// for non-spatial features.
type Feature struct {
	ID       ID
	Geometry Geometry
	Time     TimeSpan
	Metadata Metadata
	Color    color.NRGBA
}

// IsSpatial reports whether the feature carries a geometry.
func (f Feature) IsSpatial() bool {
	return f.Geometry != nil
}
