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

package a

import "fmt"

func f() error { return nil }

func g() (int, error) { return 0, nil }

func used() error {
	err := f()
	if err != nil {
		return err
	}

	return nil
}

func lastWrite() {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	if err != nil {
		return
	}

	err = f()
}

func overwritten() {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	err = f()
	fmt.Println(err)
}

func varDecl() {
	var err error // want "'err' is unlikely to be RAII and is potentially unused"
	err = f()
	_ = err
}

func readWriteRead() {
	err := f()
	fmt.Println(err)

	err = f()
	fmt.Println(err)
}

func selfReference() error {
	err := f()
	if err != nil {
		err = fmt.Errorf("wrapped: %w", err)
	}

	return err
}

func notChecked() {
	n := 1
	n = 2
	_ = n
}

func destructured() {
	n, err := g()
	err = f()
	_, _ = n, err
}

func shadowed() {
	err := f()
	fmt.Println(err)

	if true {
		err := f()
		fmt.Println(err)
	}
}

func nestedWrite(retry bool) {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	fmt.Println(err)

	if retry {
		err = f()
	}
}

func redeclared() {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	fmt.Println(err)

	n, err := g()
	fmt.Println(n)
}

func closure() func() error {
	err := f()

	return func() error { return err }
}

func pointer() {
	err := f()
	p := &err
	*p = f()
}

func rangeAssign(errs []error) {
	var err error // want "'err' is unlikely to be RAII and is potentially unused"
	for _, err = range errs {
		fmt.Println(err)
	}
}

func caseClause(x int) {
	switch x {
	case 1:
		err := f() // want "'err' is unlikely to be RAII and is potentially unused"
		fmt.Println(err)

		err = f()
	}
}

func ifInit() {
	if err := f(); err != nil {
		err = f()
	}
}

func suppressed() {
	err := f() //nolint:unusedntd
	err = f()
	_ = err
}

//nolint:unusedntd
func suppressedFunc() {
	err := f()
	err = f()
	_ = err
}

func funcLit() {
	_ = func() {
		err := f() // want "'err' is unlikely to be RAII and is potentially unused"
		err = f()
		_ = err
	}
}

var packageFuncLit = func() {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	err = f()
	_ = err
}

var nestedFuncLit = func() func() {
	return func() {
		err := f() // want "'err' is unlikely to be RAII and is potentially unused"
		err = f()
		_ = err
	}
}

type wrapped struct{ err error }

func structKey() wrapped {
	err := f() // want "'err' is unlikely to be RAII and is potentially unused"
	if err != nil {
		return wrapped{err: err}
	}

	err = f()

	return wrapped{err: nil}
}
