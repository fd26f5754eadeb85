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

// state is the read/write bookkeeping of a single walk.
type state struct {
	// foundUsageSinceLastWrite is set by every read and cleared by every write.
	foundUsageSinceLastWrite bool

	// unusedAtSomeWrite latches once a write replaces an unread value.
	unusedAtSomeWrite bool

	// lastWrite is the position of the most recent write.
	lastWrite token.Pos
}

// read records a read of the variable.
func (s *state) read() {
	s.foundUsageSinceLastWrite = true
}

// write records an assignment to the variable at pos.
// It returns false when the previous value was never read, which latches the verdict.
func (s *state) write(pos token.Pos) bool {
	s.lastWrite = pos

	if !s.foundUsageSinceLastWrite {
		s.unusedAtSomeWrite = true

		return false
	}

	s.foundUsageSinceLastWrite = false

	return true
}

// latched reports whether the verdict is fixed.
func (s *state) latched() bool {
	return s.unusedAtSomeWrite
}

// verdict derives the result after the walk.
func (s *state) verdict() Verdict {
	switch {
	case s.unusedAtSomeWrite:
		return Verdict{Reason: Overwritten, Write: s.lastWrite}

	case s.foundUsageSinceLastWrite:
		return Verdict{Reason: Used}

	case s.lastWrite.IsValid():
		return Verdict{Reason: LastWriteUnread, Write: s.lastWrite}

	default:
		return Verdict{Reason: NeverRead}
	}
}
