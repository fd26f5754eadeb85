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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/unusedntd/internal/astutil"
	"fillmore-labs.com/unusedntd/internal/walk"
)

// Unused is a declaration found to be potentially unused.
type Unused struct {
	// Ident is the declaring identifier.
	Ident *ast.Ident

	// Verdict is the result of the walk.
	Verdict walk.Verdict
}

// ProcessDiagnostics reports all unused declarations of a function in order.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, unused []Unused) {
	if len(unused) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, u := range unused {
		p.Report(Diagnostic(u))
	}
}

// Diagnostic constructs the diagnostic for an unused declaration.
func Diagnostic(u Unused) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      u.Ident.Pos(),
		End:      u.Ident.End(),
		Category: astutil.LinterName,
		Message:  fmt.Sprintf("'%s' is unlikely to be RAII and is potentially unused", u.Ident.Name),
	}

	if msg, ok := relatedMessage(u.Verdict.Reason); ok && u.Verdict.Write.IsValid() {
		diagnostic.Related = []analysis.RelatedInformation{{Pos: u.Verdict.Write, Message: msg}}
	}

	return diagnostic
}

func relatedMessage(reason walk.Reason) (string, bool) {
	switch reason {
	case walk.Overwritten:
		return "Overwritten here before being read", true

	case walk.LastWriteUnread:
		return "Last assigned here, never read afterwards", true

	default:
		return "", false
	}
}
