// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/unusedntd/internal/astutil"
	"fillmore-labs.com/unusedntd/internal/config"
	"fillmore-labs.com/unusedntd/internal/report"
	"fillmore-labs.com/unusedntd/internal/selector"
	"fillmore-labs.com/unusedntd/internal/walk"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

var funcTypes = []ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}

// Run executes the unusedntd analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("unusedntd: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	matcher := r.Matcher()
	if matcher.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "UnusedNTD")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	sel := selector.Selector{
		Info:     p.TypesInfo,
		Matcher:  matcher,
		Behavior: r.Behavior,
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		// Skip excluded files
		if r.Exclude.Excluded(currentFile.Name()) {
			continue
		}

		sel.Suppressed = func(id *ast.Ident) bool { return currentFile.NoLintComment(id.Pos()) }

		// Loop over all function declarations and package level function literals in this file.
		// Nested function literals are part of the enclosing body.
		f.Inspect(funcTypes, func(c inspector.Cursor) bool {
			var body inspector.Cursor

			switch fun := c.Node().(type) {
			case *ast.FuncDecl:
				if fun.Body == nil {
					return false
				}

				// Skip functions with nolint comment
				if astutil.NoLintDoc(fun.Doc) {
					return false
				}

				body = c.ChildAt(edge.FuncDecl_Body, -1)

			case *ast.FuncLit:
				body = c.ChildAt(edge.FuncLit_Body, -1)

			default:
				return true
			}

			// Stage 1: Select declarations of checked types
			candidates := r.selectCandidates(ctx, sel, body)

			// Stage 2: Walk the enclosing block of every declaration
			unused := r.evaluate(ctx, p.TypesInfo, candidates)

			// Stage 3: Generate diagnostics
			report.ProcessDiagnostics(ctx, p, unused)

			return false
		})
	}

	return nil, nil
}

func (r *Options) selectCandidates(ctx context.Context, sel selector.Selector, body inspector.Cursor) []selector.Candidate {
	defer trace.StartRegion(ctx, "Select").End()

	return slices.Collect(sel.Candidates(body))
}

// evaluate computes the verdicts of all candidates and returns the unused ones in source order.
func (r *Options) evaluate(ctx context.Context, info *types.Info, candidates []selector.Candidate) []report.Unused {
	if len(candidates) == 0 {
		return nil
	}

	defer trace.StartRegion(ctx, "Walk").End()

	// Each walk writes only its own index.
	verdicts := make([]walk.Verdict, len(candidates))

	if r.Concurrency < 2 || len(candidates) < 2 {
		for i, c := range candidates {
			verdicts[i] = walk.Walk(info, c.Block, c.Ident)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.Concurrency)

		for i, c := range candidates {
			g.Go(func() error {
				verdicts[i] = walk.Walk(info, c.Block, c.Ident)

				return nil
			})
		}

		_ = g.Wait() // walks don't fail
	}

	var unused []report.Unused

	for i, v := range verdicts {
		if !v.Unused() {
			continue
		}

		unused = append(unused, report.Unused{Ident: candidates[i].Ident, Verdict: v})
	}

	return unused
}
