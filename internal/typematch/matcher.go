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

// Package typematch decides whether a variable's declared type is one of the checked types.
package typematch

import (
	"go/types"

	"github.com/puzpuzpuz/xsync/v4"

	"fillmore-labs.com/unusedntd/internal/config"
)

// Matcher matches types against a [config.TypeSet] by qualified name.
//
// A Matcher is safe for concurrent use; an analyzer instance shares one
// across all package passes.
type Matcher struct {
	names config.TypeSet
	cache *xsync.Map[*types.TypeName, bool]
}

// New creates a [Matcher] for the given names.
func New(names config.TypeSet) *Matcher {
	return &Matcher{
		names: names,
		cache: xsync.NewMap[*types.TypeName, bool](),
	}
}

// Empty reports whether the matcher can't match anything.
func (m *Matcher) Empty() bool {
	return m == nil || m.names.Len() == 0
}

// Matches reports whether t is a named type listed in the configured set.
//
// Aliases are resolved and generic instantiations match their origin type.
// Pointers, slices and other composite types never match.
func (m *Matcher) Matches(t types.Type) bool {
	if m.Empty() {
		return false
	}

	tn := TypeName(t)
	if tn == nil {
		return false
	}

	if match, ok := m.cache.Load(tn); ok {
		return match
	}

	match := m.names.Contains(QualifiedName(tn))
	m.cache.Store(tn, match)

	return match
}

// TypeName returns the declaration of a named type, or nil.
func TypeName(t types.Type) *types.TypeName {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		return t.Origin().Obj()

	default:
		return nil
	}
}

// QualifiedName returns the package path and name of tn, joined by a dot.
// Predeclared types like error have no package and are returned by bare name.
func QualifiedName(tn *types.TypeName) string {
	pkg := tn.Pkg()
	if pkg == nil {
		return tn.Name()
	}

	return pkg.Path() + "." + tn.Name()
}
