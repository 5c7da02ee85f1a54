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

package convert

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/gml"
	"m4o.io/gml/cmd/gml/cli"
	"m4o.io/gml/internal/encoder"
)

var (
	out    io.Writer = os.Stdout
	report io.Writer = os.Stderr
)

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringP("format", "f", gml.DefaultFormat.String(), "output format (geojsonseq, protobuf)")
	flags.StringP("compression", "z", "none", "output compression (none, gzip, zlib, zstd, lz4, xz)")
	flags.StringP("output", "o", "", "output file (defaults to stdout)")
	flags.Uint16P("cpu", "c", gml.DefaultNCpu(), "number of CPUs to use for marshaling")
	flags.BoolP("progress", "p", false, "show a progress bar while reading")
}

var convertCmd = &cobra.Command{
	Use:   "convert [<GML file>]",
	Short: "Convert a GML feature collection to GeoJSON or protobuf records",
	Long:  "Convert a GML feature collection to a GeoJSON text sequence or to length delimited protobuf records",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		encOpts, err := encoderOptions(cmd)
		if err != nil {
			log.Fatal(err)
		}

		decOpts, err := cli.DecoderOptions()
		if err != nil {
			log.Fatal(err)
		}

		progress, err := flags.GetBool("progress")
		if err != nil {
			log.Fatal(err)
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		in, err := cli.OpenInput(name, progress)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()

		w := out

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()

			w = f
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		count, written, err := runConvert(ctx, in, w, decOpts, encOpts)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintf(report, "Features: %s (%s)\n", humanize.Comma(count), humanize.Bytes(uint64(written)))
	},
}

func encoderOptions(cmd *cobra.Command) ([]gml.EncoderOption, error) {
	flags := cmd.Flags()

	name, err := flags.GetString("format")
	if err != nil {
		return nil, err
	}

	format, err := encoder.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	name, err = flags.GetString("compression")
	if err != nil {
		return nil, err
	}

	compression, err := encoder.ParseCompression(name)
	if err != nil {
		return nil, err
	}

	ncpu, err := flags.GetUint16("cpu")
	if err != nil {
		return nil, err
	}

	return []gml.EncoderOption{
		gml.WithFormat(format),
		gml.WithCompression(compression),
		gml.WithNCpus(max(ncpu, 1)),
	}, nil
}

// runConvert decodes in and writes the encoded features to w. It returns
// the number of features and the number of bytes encoded before
// compression.
func runConvert(ctx context.Context, in io.Reader, w io.Writer, decOpts []gml.DecoderOption, encOpts []gml.EncoderOption) (int64, int64, error) {
	d, err := gml.NewDecoder(ctx, in, decOpts...)
	if err != nil {
		return 0, 0, err
	}

	e, err := gml.NewEncoder(w, encOpts...)
	if err != nil {
		return 0, 0, err
	}

	if err := d.Decode(e); err != nil {
		// release the pipeline; the decode error is the one worth reporting
		_ = e.Close()

		return 0, 0, err
	}

	if d.IsExceptionReport() {
		return 0, 0, fmt.Errorf("service exception: %v", d.Exceptions())
	}

	return e.Count(), e.Written(), nil
}
