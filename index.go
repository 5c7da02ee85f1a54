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
	"slices"

	"github.com/dhconnelly/rtreego"

	"m4o.io/gml/model"
)

const (
	indexDimensions = 2
	indexMinBranch  = 25
	indexMaxBranch  = 50

	// minExtent keeps point and axis aligned geometries from collapsing
	// into zero sized rectangles, which the R-tree rejects.
	minExtent = 0.0001
)

// Index is a Consumer that keeps the spatial features it consumes in an
// R-tree for bounding box queries. Non-spatial features are kept aside.
type Index struct {
	tree       *rtreego.Rtree
	nonSpatial []model.Feature
	seq        int
	bounds     *model.BoundingBox
}

var _ Consumer = (*Index)(nil)

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature model.Feature
	seq     int
	bounds  model.BoundingBox
	rect    rtreego.Rect
}

// within reports whether the feature lies in bbox. The R-tree rectangles
// are padded by minExtent, so its hits are checked against the exact bounds.
func (f *indexedFeature) within(bbox *model.BoundingBox) bool {
	if p, ok := f.feature.Geometry.(model.Point); ok {
		return bbox.Contains(p.Coordinate.Lat, p.Coordinate.Lon)
	}

	return bbox.Intersects(&f.bounds)
}

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return f.rect
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		tree:   rtreego.NewTree(indexDimensions, indexMinBranch, indexMaxBranch),
		bounds: model.InitialBoundingBox(),
	}
}

func (x *Index) Consume(f model.Feature) error {
	x.seq++

	if !f.IsSpatial() {
		x.nonSpatial = append(x.nonSpatial, f)

		return nil
	}

	bbox := f.Geometry.Bounds()
	if bbox.IsEmpty() {
		x.nonSpatial = append(x.nonSpatial, f)

		return nil
	}

	x.bounds.ExpandWithBoundingBox(&bbox)
	x.tree.Insert(&indexedFeature{feature: f, seq: x.seq, bounds: bbox, rect: rect(&bbox)})

	return nil
}

func (x *Index) Flush() error {
	return nil
}

// Len returns the number of spatial features in the index.
func (x *Index) Len() int {
	return x.tree.Size()
}

// NonSpatial returns the features that carried no geometry.
func (x *Index) NonSpatial() []model.Feature {
	return x.nonSpatial
}

// Bounds returns the box enclosing every indexed feature.
func (x *Index) Bounds() model.BoundingBox {
	return *x.bounds
}

// Search returns the features whose bounding boxes intersect bbox, in the
// order they were consumed.
func (x *Index) Search(bbox model.BoundingBox) []model.Feature {
	if bbox.IsEmpty() {
		return nil
	}

	hits := x.tree.SearchIntersect(rect(&bbox))

	found := make([]*indexedFeature, 0, len(hits))
	for _, s := range hits {
		if f := s.(*indexedFeature); f.within(&bbox) {
			found = append(found, f)
		}
	}

	slices.SortFunc(found, func(a, b *indexedFeature) int {
		return a.seq - b.seq
	})

	features := make([]model.Feature, 0, len(found))
	for _, f := range found {
		features = append(features, f.feature)
	}

	return features
}

func rect(bbox *model.BoundingBox) rtreego.Rect {
	point := rtreego.Point{float64(bbox.Left), float64(bbox.Bottom)}

	lonLength := max(float64(bbox.Right-bbox.Left), minExtent)
	latLength := max(float64(bbox.Top-bbox.Bottom), minExtent)

	r, _ := rtreego.NewRect(point, []float64{lonLength, latLength})

	return r
}
