// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"iter"
	"slices"
	"strings"
)

// TypeSet is an immutable, ordered set of fully qualified type names.
//
// A qualified name is the package path and the type name joined by a dot
// ("google.golang.org/grpc/status.Status"); predeclared types use their bare
// name ("error").
type TypeSet struct {
	names []string
	set   map[string]struct{}
}

// ParseTypeSet parses a list of qualified type names delimited by semicolons or commas.
// Surrounding blanks are trimmed, empty entries and duplicates are dropped.
func ParseTypeSet(list string) TypeSet {
	return NewTypeSet(strings.FieldsFunc(list, isDelimiter)...)
}

func isDelimiter(r rune) bool { return r == ';' || r == ',' }

// NewTypeSet creates a [TypeSet] from individual qualified type names.
func NewTypeSet(names ...string) TypeSet {
	var t TypeSet

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := t.set[name]; ok {
			continue
		}

		if t.set == nil {
			t.set = make(map[string]struct{}, len(names))
		}

		t.set[name] = struct{}{}
		t.names = append(t.names, name)
	}

	return t
}

// DefaultTypeSet returns the [TypeSet] of [DefaultCheckedTypes].
func DefaultTypeSet() TypeSet {
	return ParseTypeSet(DefaultCheckedTypes)
}

// Contains reports whether the qualified name is in the set.
func (t TypeSet) Contains(name string) bool {
	_, ok := t.set[name]

	return ok
}

// Len returns the number of names in the set.
func (t TypeSet) Len() int {
	return len(t.names)
}

// All yields the names in configuration order.
func (t TypeSet) All() iter.Seq[string] {
	return slices.Values(t.names)
}

// String serializes the set into the form accepted by [ParseTypeSet].
func (t TypeSet) String() string {
	return strings.Join(t.names, ";")
}
