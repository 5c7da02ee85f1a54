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
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"m4o.io/gml/internal/temporal"
	"m4o.io/gml/model"
)

// featureAccumulator holds everything collected for the feature currently
// open. A new one is created at every feature boundary.
type featureAccumulator struct {
	boundary string // local name of the element that opened the feature
	depth    int    // open descendants named like the boundary

	id       model.ID
	geometry model.Geometry
	time     *temporal.Handler
	metadata model.Metadata

	color    color.NRGBA
	endOfDay string
	hasEnd   bool
}

func newFeatureAccumulator(boundary string, id model.ID, cfg *Config) *featureAccumulator {
	return &featureAccumulator{
		boundary: boundary,
		id:       id,
		time:     temporal.NewHandler(cfg.Logger),
		color:    cfg.DefaultColor,
	}
}

// feature assembles the collected state into a Feature.
func (a *featureAccumulator) feature() model.Feature {
	span := a.time.ResolveTimes()
	if a.hasEnd {
		span = a.time.ResolveTimeWithEndDay(a.endOfDay)
	}

	return model.Feature{
		ID:       a.id,
		Geometry: a.geometry,
		Time:     span,
		Metadata: a.metadata,
		Color:    a.color,
	}
}

// parseID extracts the numeric suffix of a feature identifier such as
// "roads.42". The whole value is used when it has no dot.
func parseID(logger *slog.Logger, value string) model.ID {
	suffix := value
	if i := strings.LastIndexByte(value, '.'); i >= 0 {
		suffix = value[i+1:]
	}

	id, err := strconv.ParseInt(strings.TrimSpace(suffix), 10, 64)
	if err != nil {
		logger.Warn("unparsable feature id", "id", value)

		return 0
	}

	return model.ID(id)
}
