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

package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"m4o.io/gml"
	"m4o.io/gml/cmd/gml/cli"
	"m4o.io/gml/internal/encoder"
	"m4o.io/gml/model"
)

var ErrInvalidBoundingBox = errors.New("invalid bounding box")

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(queryCmd)

	flags := queryCmd.Flags()
	flags.StringP("bbox", "b", "", "bounding box as minLon,minLat,maxLon,maxLat")
	flags.Bool("non-spatial", false, "also print features without a geometry")

	_ = queryCmd.MarkFlagRequired("bbox")
}

var queryCmd = &cobra.Command{
	Use:   "query --bbox minLon,minLat,maxLon,maxLat [<GML file>]",
	Short: "Print the features intersecting a bounding box",
	Long:  "Print, as a GeoJSON text sequence, the features of a GML feature collection that intersect a bounding box",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		s, err := flags.GetString("bbox")
		if err != nil {
			log.Fatal(err)
		}

		bbox, err := parseBoundingBox(s)
		if err != nil {
			log.Fatal(err)
		}

		nonSpatial, err := flags.GetBool("non-spatial")
		if err != nil {
			log.Fatal(err)
		}

		opts, err := cli.DecoderOptions()
		if err != nil {
			log.Fatal(err)
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		in, err := cli.OpenInput(name, false)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if err := runQuery(ctx, in, bbox, nonSpatial, opts...); err != nil {
			log.Fatal(err)
		}
	},
}

// parseBoundingBox parses "minLon,minLat,maxLon,maxLat".
func parseBoundingBox(s string) (model.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.BoundingBox{}, fmt.Errorf("%w: %q", ErrInvalidBoundingBox, s)
	}

	var v [4]model.Degrees

	for i, p := range parts {
		d, err := model.ParseDegrees(strings.TrimSpace(p))
		if err != nil {
			return model.BoundingBox{}, fmt.Errorf("%w: %q: %w", ErrInvalidBoundingBox, s, err)
		}

		v[i] = d
	}

	bbox := model.BoundingBox{Left: v[0], Bottom: v[1], Right: v[2], Top: v[3]}
	if bbox.IsEmpty() {
		return model.BoundingBox{}, fmt.Errorf("%w: %q", ErrInvalidBoundingBox, s)
	}

	return bbox, nil
}

func runQuery(ctx context.Context, in io.Reader, bbox model.BoundingBox, nonSpatial bool, opts ...gml.DecoderOption) error {
	d, err := gml.NewDecoder(ctx, in, opts...)
	if err != nil {
		return err
	}

	x := gml.NewIndex()
	if err := d.Decode(x); err != nil {
		return err
	}

	if d.IsExceptionReport() {
		return fmt.Errorf("service exception: %v", d.Exceptions())
	}

	features := x.Search(bbox)
	if nonSpatial {
		features = append(features, x.NonSpatial()...)
	}

	for _, f := range features {
		b, err := encoder.MarshalGeoJSONSeq(f)
		if err != nil {
			return err
		}

		if _, err := out.Write(b); err != nil {
			return err
		}
	}

	return nil
}
