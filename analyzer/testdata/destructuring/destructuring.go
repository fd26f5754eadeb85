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

package destructuring

func f() error { return nil }

func g() (int, error) { return 0, nil }

func destructured() {
	n, err := g() // want "'err' is unlikely to be RAII and is potentially unused"
	err = f()
	_, _ = n, err
}

func destructuredVar() {
	var n, err = g() // want "'err' is unlikely to be RAII and is potentially unused"
	err = f()
	_, _ = n, err
}

func commaOk(m map[string]error) {
	err, ok := m["x"]
	_, _ = err, ok
}

func read() error {
	n, err := g()
	if err != nil {
		return err
	}

	_ = n

	return nil
}
