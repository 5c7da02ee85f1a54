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

package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/gml"
)

var (
	schemaFile    *os.File
	latitudeFirst bool
	verbose       bool
)

// RootCmd is the command every subcommand registers with.
var RootCmd = &cobra.Command{
	Use:   "gml",
	Short: "Inspect and convert GML 3.1.1 feature collections",
	Long:  "Inspect and convert GML 3.1.1 feature collections, such as WFS GetFeature responses",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.VarP(NewReaderValue(nil, &schemaFile, "file"), "schema", "s", "YAML schema describing the feature columns")
	flags.BoolVarP(&latitudeFirst, "latitude-first", "l", false, "positions are written latitude first")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log structural events")
}

// DecoderOptions returns the decoder options selected by the persistent
// flags. The schema file, if any, is read and closed; later calls no
// longer see it.
func DecoderOptions() ([]gml.DecoderOption, error) {
	var opts []gml.DecoderOption

	// an unset flag leaves the axis order to the schema
	if RootCmd.PersistentFlags().Changed("latitude-first") {
		opts = append(opts, gml.WithLatitudeFirst(latitudeFirst))
	}

	if schemaFile == nil {
		return opts, nil
	}

	f := schemaFile
	schemaFile = nil

	defer f.Close()

	schema, err := gml.ReadSchema(f)
	if err != nil {
		return nil, err
	}

	return append(opts, gml.WithSchema(schema)), nil
}

// OpenInput opens the named file, or stdin when name is "-" or empty. A
// progress bar tracks the read when bar is set.
func OpenInput(name string, bar bool) (io.ReadCloser, error) {
	f := os.Stdin

	if name != "" && name != "-" {
		var err error

		f, err = os.Open(name)
		if err != nil {
			return nil, err
		}
	}

	if !bar {
		return f, nil
	}

	return WrapInputFile(f)
}
