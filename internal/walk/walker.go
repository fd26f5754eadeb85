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

// Package walk decides whether the values assigned to a local variable are read.
package walk

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/unusedntd/internal/astutil"
)

// Walk traverses block in source order and decides whether the variable
// declared by decl is read after every write.
//
// block is the statement list (block, case clause or select clause) containing
// the declaring statement. Reads and writes are recognized by name only.
// info, when not nil, tells field keys of struct literals apart from variables.
func Walk(info *types.Info, block inspector.Cursor, decl *ast.Ident) Verdict {
	w := walker{
		info:  info,
		name:  decl.Name,
		decl:  decl,
		block: block.Node(),
	}

	w.inspect(block)

	return w.state.verdict()
}

// walker is the visitor context of one walk.
type walker struct {
	info *types.Info

	// name is the tracked identifier.
	name string

	// decl is the declaring identifier, which is neither a read nor a write.
	decl *ast.Ident

	// block is the root statement list. Only redeclarations directly in it reuse the variable.
	block ast.Node

	state state
}

func (w *walker) inspect(c inspector.Cursor) {
	c.Inspect(nil, w.visit)
}

// visit applies the node specific rules before generic descent.
func (w *walker) visit(c inspector.Cursor) (descend bool) {
	if w.state.latched() {
		return false
	}

	n := c.Node()
	if n.End() <= w.decl.Pos() {
		return false // before the declaration
	}

	switch n := n.(type) {
	case *ast.AssignStmt:
		return w.assign(c, n)

	case *ast.RangeStmt:
		return w.rangeStmt(c, n)

	case *ast.IncDecStmt:
		if !w.tracked(n.X) {
			return true
		}

		w.state.write(n.X.Pos()) // like op=

		return false

	case *ast.Ident:
		if n.Name == w.name && isReference(c) && !w.fieldKey(c, n) {
			w.state.read()
		}

		return false

	default:
		return true
	}
}

// assign handles plain (=), operator (op=) and redeclaring (:=) assignments.
func (w *walker) assign(c inspector.Cursor, n *ast.AssignStmt) bool {
	i := w.trackedIndex(n.Lhs)
	if i < 0 {
		return true // not assigning the tracked variable
	}

	if n.Tok == token.DEFINE && !w.redeclares(c, n.Lhs[i]) {
		// The declaration itself or a new variable in a nested scope.
		w.inspectChildren(c, edge.AssignStmt_Rhs, len(n.Rhs))

		return false
	}

	if !w.state.write(n.Lhs[i].Pos()) {
		return false
	}

	w.inspectChildren(c, edge.AssignStmt_Rhs, len(n.Rhs))

	if n.Tok == token.DEFINE {
		return false // remaining left-hand operands are identifiers being defined
	}

	// Index and selector operands may read the variable.
	for j, lhs := range n.Lhs {
		if j == i || w.tracked(lhs) {
			continue
		}

		w.inspect(c.ChildAt(edge.AssignStmt_Lhs, j))
	}

	return false
}

// rangeStmt handles range loops assigning the tracked variable.
func (w *walker) rangeStmt(c inspector.Cursor, n *ast.RangeStmt) bool {
	switch n.Tok {
	case token.DEFINE:
		// Key and value are new variables scoped to the loop.
		w.inspect(c.ChildAt(edge.RangeStmt_X, -1))
		w.inspect(c.ChildAt(edge.RangeStmt_Body, -1))

		return false

	case token.ASSIGN:

	default:
		return true // for range x { ... }
	}

	key, value := w.tracked(n.Key), w.tracked(n.Value)
	if !key && !value {
		return true
	}

	w.inspect(c.ChildAt(edge.RangeStmt_X, -1))

	pos := n.Value.Pos()
	if key {
		pos = n.Key.Pos()
	}

	if !w.state.write(pos) {
		return false
	}

	if !key {
		w.inspect(c.ChildAt(edge.RangeStmt_Key, -1))
	}

	if !value && n.Value != nil {
		w.inspect(c.ChildAt(edge.RangeStmt_Value, -1))
	}

	w.inspect(c.ChildAt(edge.RangeStmt_Body, -1))

	return false
}

func (w *walker) inspectChildren(c inspector.Cursor, kind edge.Kind, count int) {
	for i := range count {
		w.inspect(c.ChildAt(kind, i))
	}
}

// redeclares reports whether id in a short variable declaration at c reuses the tracked variable.
//
// Only a statement directly in the walked block can reuse the variable,
// deeper statements declare a new variable shadowing it.
func (w *walker) redeclares(c inspector.Cursor, id ast.Expr) bool {
	return id != w.decl && c.Parent().Node() == w.block && astutil.InStatementList(c)
}

// trackedIndex returns the position of the first bare tracked identifier in exprs, or -1.
func (w *walker) trackedIndex(exprs []ast.Expr) int {
	for i, expr := range exprs {
		if w.tracked(expr) {
			return i
		}
	}

	return -1
}

// tracked reports whether expr is a bare, possibly parenthesized, reference to the tracked name.
func (w *walker) tracked(expr ast.Expr) bool {
	if expr == nil {
		return false
	}

	id, ok := ast.Unparen(expr).(*ast.Ident)

	return ok && id.Name == w.name
}

// fieldKey reports whether id at c names a field in a keyed struct literal.
// Without type information all keys count as reads, since map keys are.
func (w *walker) fieldKey(c inspector.Cursor, id *ast.Ident) bool {
	if kind, _ := c.ParentEdge(); kind != edge.KeyValueExpr_Key || w.info == nil {
		return false
	}

	v, ok := w.info.Uses[id].(*types.Var)

	return ok && v.IsField()
}

// isReference reports whether the identifier at c refers to a variable.
// Field selectors, names being declared and labels do not.
func isReference(c inspector.Cursor) bool {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.SelectorExpr_Sel,
		edge.Field_Names,
		edge.ValueSpec_Names,
		edge.TypeSpec_Name,
		edge.FuncDecl_Name,
		edge.ImportSpec_Name,
		edge.LabeledStmt_Label,
		edge.BranchStmt_Label:
		return false

	default:
		return true
	}
}
