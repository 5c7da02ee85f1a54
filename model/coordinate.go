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

package model

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Coordinate is a position on the earth's surface with an optional
// elevation. Lon is always normalized with NormalizeLongitude.
type Coordinate struct {
	Lat          Degrees
	Lon          Degrees
	Elevation    float64
	HasElevation bool
}

// NewCoordinate builds a Coordinate from the first two ordinates of an
// encoded position, honoring the axis order of the response.
func NewCoordinate(first, second Degrees, latFirst bool) Coordinate {
	if latFirst {
		return Coordinate{Lat: first, Lon: NormalizeLongitude(second)}
	}

	return Coordinate{Lat: second, Lon: NormalizeLongitude(first)}
}

// WithElevation returns a copy of the coordinate carrying an elevation.
func (c Coordinate) WithElevation(e float64) Coordinate {
	c.Elevation = e
	c.HasElevation = true

	return c
}

// Equal reports whether two coordinates are the same position, their
// latitudes and longitudes differing by no more than E9.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.Lat.EqualWithin(o.Lat, E9) &&
		c.Lon.EqualWithin(o.Lon, E9) &&
		c.HasElevation == o.HasElevation &&
		c.Elevation == o.Elevation
}

// LatLng returns the equivalent s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(float64(c.Lat), float64(c.Lon))
}

func (c Coordinate) String() string {
	if c.HasElevation {
		return fmt.Sprintf("(%s, %s, %s)", c.Lat, c.Lon, ftoa(c.Elevation))
	}

	return fmt.Sprintf("(%s, %s)", c.Lat, c.Lon)
}
