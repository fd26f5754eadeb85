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

package main

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"
	"slices"

	"golang.org/x/tools/go/analysis/checker"
)

// Finding is a reported diagnostic with resolved positions.
type Finding struct {
	Package string    `json:"package"`
	File    string    `json:"file"`
	Line    int       `json:"line"`
	Column  int       `json:"column"`
	Message string    `json:"message"`
	Related []Related `json:"related,omitempty"`
}

// Related is additional information attached to a [Finding].
type Related struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// collectFindings gathers the diagnostics of all root actions in source order.
// Packages analyzed twice, with and without tests, report only once.
func collectFindings(graph *checker.Graph) ([]Finding, error) {
	var (
		findings []Finding
		errs     []error
	)

	seen := make(map[string]struct{})

	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err))

			continue
		}

		fset := act.Package.Fset

		for _, d := range act.Diagnostics {
			pos := fset.Position(d.Pos)

			key := fmt.Sprintf("%s:%s", pos, d.Message)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}

			f := Finding{
				Package: act.Package.PkgPath,
				File:    pos.Filename,
				Line:    pos.Line,
				Column:  pos.Column,
				Message: d.Message,
			}

			for _, r := range d.Related {
				f.Related = append(f.Related, related(fset, r.Pos, r.Message))
			}

			findings = append(findings, f)
		}
	}

	slices.SortFunc(findings, compareFindings)

	return findings, errors.Join(errs...)
}

func related(fset *token.FileSet, p token.Pos, message string) Related {
	pos := fset.Position(p)

	return Related{File: pos.Filename, Line: pos.Line, Column: pos.Column, Message: message}
}

func compareFindings(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.File, b.File),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Message, b.Message),
	)
}

// writeText prints findings in the file:line:column: message format.
func writeText(w io.Writer, findings []Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", f.File, f.Line, f.Column, f.Message); err != nil {
			return err
		}

		for _, r := range f.Related {
			if _, err := fmt.Fprintf(w, "\t%s:%d:%d: %s\n", r.File, r.Line, r.Column, r.Message); err != nil {
				return err
			}
		}
	}

	return nil
}

type jOutput struct {
	Findings []Finding `json:"findings"`
	Version  string    `json:"version"`
}

// writeJSON prints findings as an indented JSON document.
func writeJSON(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(jOutput{Findings: findings, Version: version}); err != nil {
		return fmt.Errorf("marshaling json output: %w", err)
	}

	return nil
}
