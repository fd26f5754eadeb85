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

package walk

import "go/token"

// Reason describes why a variable is considered unused.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// Used indicates every value of the variable is read.
	Used Reason = iota // used

	// NeverRead indicates the variable is neither read nor assigned in its scope.
	NeverRead // never read

	// Overwritten indicates an assignment replaced a value that was never read.
	Overwritten // overwritten before read

	// LastWriteUnread indicates the last assigned value is not read before the end of the scope.
	LastWriteUnread // not read after last write
)

// Verdict is the outcome of walking the scope of one variable.
type Verdict struct {
	// Reason is [Used] for variables that are read after every write.
	Reason Reason

	// Write is the position of the offending assignment, or [token.NoPos].
	Write token.Pos
}

// Unused reports whether the variable is potentially unused.
func (v Verdict) Unused() bool {
	return v.Reason != Used
}
