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

package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/destel/rill"
	humanize "github.com/dustin/go-humanize"
	"github.com/golang/geo/s1"
	"github.com/spf13/cobra"

	"m4o.io/gml"
	"m4o.io/gml/cmd/gml/cli"
	"m4o.io/gml/model"
)

var out io.Writer = os.Stdout

// earthRadiusKm is the mean radius of the earth.
const earthRadiusKm = 6371.0088

type summary struct {
	File        string             `json:"file"`
	Compression string             `json:"compression"`
	Features    int64              `json:"features"`
	NonSpatial  int64              `json:"nonSpatial"`
	Timed       int64              `json:"timed"`
	Geometries  map[string]int64   `json:"geometries,omitempty"`
	Length      s1.Angle           `json:"length"` // radians
	BoundingBox *model.BoundingBox `json:"boundingBox,omitempty"`
	Exceptions  []model.Exception  `json:"exceptions,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.Uint16P("cpu", "c", gml.DefaultNCpu(), "number of files to scan concurrently")
}

var infoCmd = &cobra.Command{
	Use:   "info [<GML file>...]",
	Short: "Print a summary of GML feature collections",
	Long:  "Print the feature count, geometry types and extent of GML feature collections",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		opts, err := cli.DecoderOptions()
		if err != nil {
			log.Fatal(err)
		}

		if len(args) == 0 {
			args = []string{"-"}
		}

		// a progress bar only makes sense for a single file
		bar := len(args) == 1 && !jsonfmt

		files := rill.FromSlice(args, nil)

		summaries := rill.OrderedMap(files, int(max(ncpu, 1)), func(name string) (*summary, error) {
			in, err := cli.OpenInput(name, bar)
			if err != nil {
				return nil, err
			}
			defer in.Close()

			return runInfo(cmd.Context(), name, in, opts...)
		})

		err = rill.ForEach(summaries, 1, func(s *summary) error {
			if jsonfmt {
				return renderJSON(s)
			}

			renderTxt(s)

			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

func runInfo(ctx context.Context, name string, in io.Reader, opts ...gml.DecoderOption) (*summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := gml.NewDecoder(ctx, in, opts...)
	if err != nil {
		return nil, err
	}

	s := &summary{File: name, Geometries: map[string]int64{}}
	bbox := model.InitialBoundingBox()

	err = d.Decode(gml.ConsumerFunc(func(f model.Feature) error {
		s.Features++

		if !f.Time.IsTimeless() {
			s.Timed++
		}

		if !f.IsSpatial() {
			s.NonSpatial++

			return nil
		}

		s.Geometries[f.Geometry.Type().String()]++
		s.Length += model.Length(f.Geometry)

		b := f.Geometry.Bounds()
		bbox.ExpandWithBoundingBox(&b)

		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("unable to summarize %s: %w", name, err)
	}

	s.Compression = d.Compression()
	s.Exceptions = d.Exceptions()

	if !bbox.IsEmpty() {
		s.BoundingBox = bbox
	}

	return s, nil
}

func renderJSON(s *summary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(b))

	return nil
}

func renderTxt(s *summary) {
	fmt.Fprintf(out, "File: %s\n", s.File)
	fmt.Fprintf(out, "Compression: %s\n", s.Compression)

	if len(s.Exceptions) > 0 {
		for _, e := range s.Exceptions {
			fmt.Fprintf(out, "Exception: %s\n", e)
		}

		return
	}

	fmt.Fprintf(out, "Features: %s\n", humanize.Comma(s.Features))
	fmt.Fprintf(out, "NonSpatial: %s\n", humanize.Comma(s.NonSpatial))
	fmt.Fprintf(out, "Timed: %s\n", humanize.Comma(s.Timed))

	types := make([]string, 0, len(s.Geometries))
	for t := range s.Geometries {
		types = append(types, t)
	}

	slices.Sort(types)

	for i, t := range types {
		types[i] = fmt.Sprintf("%s=%s", t, humanize.Comma(s.Geometries[t]))
	}

	fmt.Fprintf(out, "Geometries: %s\n", strings.Join(types, ", "))
	fmt.Fprintf(out, "Length: %s° (%s km)\n",
		strconv.FormatFloat(s.Length.Degrees(), 'f', 4, 64),
		humanize.CommafWithDigits(s.Length.Radians()*earthRadiusKm, 2))

	if s.BoundingBox != nil {
		fmt.Fprintf(out, "BoundingBox: %s\n", s.BoundingBox)
	}
}
