// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
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

package classlint

import (
	"path"
	"strings"
)

// ClassFilter holds glob patterns matched against dotted class names, used
// to exclude classes from a scan. It implements flag.Value so it can be
// passed repeatedly on the command line.
type ClassFilter []string

func (f *ClassFilter) String() string {
	return strings.Join([]string(*f), ", ")
}

// Set appends a pattern; part of the flag.Value contract.
func (f *ClassFilter) Set(val string) error {
	*f = append(*f, val)
	return nil
}

// Matches reports whether the class name matches any of the patterns.
func (f ClassFilter) Matches(className string) bool {
	for _, pattern := range f {
		if matched, _ := path.Match(pattern, className); matched {
			return true
		}
	}
	return false
}
