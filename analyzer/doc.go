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

// Package analyzer implements the unusedntd static analysis pass.
//
// # Overview
//
// UnusedNTD detects local variables of checked types (by default error) whose
// value is discarded: a value assigned and then overwritten without being read,
// or assigned last and never read before the variable goes out of scope.
//
// The Go compiler rejects variables that are never used, but accepts a
// variable that is read once and later overwritten or reassigned without
// another read.
//
// # Example
//
//	func process(data []byte) error {
//	    err := validate(data) // 'err' is unlikely to be RAII and is potentially unused
//	    if err != nil {
//	        return err
//	    }
//	    err = store(data) // Last assigned here, never read afterwards
//	    return nil
//	}
//
// # Analysis
//
// Each declaration is checked with a single pass over its enclosing block in
// source order. Reads and writes are recognized by the variable's name, so
// branches and loops are not distinguished and writes through pointers are
// not seen.
//
// Declarations binding several names from one multi-valued expression
// (v, err := f()) are only checked with the -destructuring flag.
//
// # Suppression
//
// A //nolint:unusedntd comment on the declaration line, the function doc
// comment or the package clause doc comment suppresses diagnostics.
package analyzer
