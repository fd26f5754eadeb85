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

package status

// Status is a result type that must be checked.
type Status struct{ code int }

// OK reports whether the operation succeeded.
func (s Status) OK() bool { return s.code == 0 }

// Make returns a [Status].
func Make(code int) Status { return Status{code} }

// Result is a generic result type.
type Result[T any] struct {
	value T
	ok    bool
}

func check() bool {
	st := Make(0)

	return st.OK()
}

func overwritten() bool {
	st := Make(1) // want "'st' is unlikely to be RAII and is potentially unused"
	st = Make(2)

	return st.OK()
}

func lastWrite() {
	st := Make(1) // want "'st' is unlikely to be RAII and is potentially unused"
	if !st.OK() {
		return
	}

	st = Make(2)
}

func readWriteRead() bool {
	st := Make(1)
	if !st.OK() {
		return false
	}

	st = Make(2)

	return st.OK()
}

func field() bool {
	var s struct{ st Status }

	st := Make(1) // want "'st' is unlikely to be RAII and is potentially unused"
	s.st = st
	st = Make(2)

	return s.st.OK()
}

type Alias = Status

func alias() {
	var st Alias // want "'st' is unlikely to be RAII and is potentially unused"
	st = Make(1)
	_ = st
}

func generic() bool {
	r := Result[int]{} // want "'r' is unlikely to be RAII and is potentially unused"
	r = Result[int]{value: 1, ok: true}

	return r.ok && r.value > 0
}

func pointerNotChecked() {
	st := &Status{}
	st = &Status{code: 1}
	_ = st
}

func errorNotChecked() {
	err := error(nil)
	_ = err
	err = nil
}
