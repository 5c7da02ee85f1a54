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

import "fmt"

// Exception is one entry of a server exception report. Code and Locator
// are optional: an empty string means the attribute was absent or empty,
// the two are not told apart.
type Exception struct {
	Code    string
	Locator string
	Text    string
}

func (e Exception) String() string {
	if e.Code == "" {
		return e.Text
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Text)
}
