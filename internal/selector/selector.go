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

// Package selector finds local variable declarations of checked types in a function body.
package selector

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/unusedntd/internal/astutil"
	"fillmore-labs.com/unusedntd/internal/config"
	"fillmore-labs.com/unusedntd/internal/typematch"
)

// Candidate is a local variable declaration of a checked type.
type Candidate struct {
	// Block is the statement list containing the declaring statement.
	Block inspector.Cursor

	// Stmt is the declaring *ast.DeclStmt or *ast.AssignStmt.
	Stmt inspector.Cursor

	// Ident is the declaring identifier.
	Ident *ast.Ident

	// Var is the declared variable.
	Var *types.Var
}

// Selector selects [Candidate] declarations.
type Selector struct {
	// Info provides definitions for declared identifiers.
	Info *types.Info

	// Matcher decides which types are checked.
	Matcher *typematch.Matcher

	// Behavior enables optional candidates.
	Behavior config.BitMask[config.Behavior]

	// Suppressed reports whether a declaration is marked as intentionally unused. Optional.
	Suppressed func(id *ast.Ident) bool
}

// Candidates yields all qualifying declarations in body in preorder.
//
// Only declarations directly in a statement list qualify. Declarations in
// if, for and switch init statements, range and type switch bindings and
// parameters are not candidates.
func (s Selector) Candidates(body inspector.Cursor) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if s.Matcher.Empty() {
			return
		}

		for c := range body.Preorder((*ast.DeclStmt)(nil), (*ast.AssignStmt)(nil)) {
			if !astutil.InStatementList(c) {
				continue
			}

			for id := range s.declared(c.Node()) {
				v, ok := s.matches(id)
				if !ok {
					continue
				}

				if !yield(Candidate{Block: c.Parent(), Stmt: c, Ident: id, Var: v}) {
					return
				}
			}
		}
	}
}

// declared yields the identifiers named by a declaring statement.
func (s Selector) declared(n ast.Node) iter.Seq[*ast.Ident] {
	destructuring := s.Behavior.Enabled(config.Destructuring)

	return func(yield func(*ast.Ident) bool) {
		switch n := n.(type) {
		case *ast.DeclStmt:
			decl, ok := n.Decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.VAR {
				return
			}

			for _, spec := range decl.Specs {
				spec, ok := spec.(*ast.ValueSpec)
				if !ok || (!destructuring && multiValued(len(spec.Names), len(spec.Values))) {
					continue
				}

				for id := range astutil.AllNames(spec) {
					if !yield(id) {
						return
					}
				}
			}

		case *ast.AssignStmt:
			if n.Tok != token.DEFINE || (!destructuring && multiValued(len(n.Lhs), len(n.Rhs))) {
				return
			}

			for id := range astutil.AllAssigned(n) {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// matches returns the variable defined by id when it has a checked type.
func (s Selector) matches(id *ast.Ident) (*types.Var, bool) {
	v, ok := s.Info.Defs[id].(*types.Var)
	if !ok {
		return nil, false // redeclaration or not a variable
	}

	if !s.Matcher.Matches(v.Type()) {
		return nil, false
	}

	if s.Suppressed != nil && s.Suppressed(id) {
		return nil, false
	}

	return v, true
}

// multiValued reports whether several names are bound from one multi-valued expression.
func multiValued(names, values int) bool {
	return names > 1 && values == 1
}
