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
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressBar reads through a ProgressBar. Closing it closes the delegate
// and clears the terminal line the bar was drawn on.
type progressBar struct {
	r   io.ReadCloser
	bar *pb.ProgressBar
}

// WrapInputFile returns a reader over f that reports the bytes read, relative
// to the size of f, on stderr. Stdin and other non-regular files are returned
// as they are.
func WrapInputFile(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		return f, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsRegular() {
		return f, nil
	}

	bar := pb.New64(fi.Size()).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = os.Stderr
	bar.Prefix(fi.Name() + " ")
	bar.Start()

	return progressBar{
		r:   bar.NewProxyReader(f),
		bar: bar,
	}, nil
}

func (p progressBar) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func (p progressBar) Close() error {
	p.bar.Output = nil
	p.bar.NotPrint = true

	p.bar.Finish()

	fmt.Fprintf(os.Stderr, "\033[2K\r")

	return p.r.Close()
}
