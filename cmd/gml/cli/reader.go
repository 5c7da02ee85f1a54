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
	"os"

	"github.com/spf13/pflag"
)

// fileValue is a pflag.Value that opens the named file for reading when set.
type fileValue struct {
	value    **os.File
	typename string
}

// NewReaderValue returns a flag value that stores the opened file in p.
func NewReaderValue(def *os.File, p **os.File, typename string) pflag.Value {
	v := &fileValue{
		value:    p,
		typename: typename,
	}
	*v.value = def

	return v
}

func (v *fileValue) Set(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	if fi.IsDir() {
		f.Close()
		return fmt.Errorf("%s is a directory", name)
	}

	*v.value = f

	return nil
}

func (v *fileValue) Type() string {
	return v.typename
}

func (v *fileValue) String() string {
	if *v.value == nil {
		return ""
	}

	return (*v.value).Name()
}
