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

package analyzer

import (
	"slices"
	"strconv"

	"fillmore-labs.com/unusedntd/internal/config"
)

// typeSetValue is a [flag.Value] replacing a [config.TypeSet].
type typeSetValue struct {
	types *config.TypeSet
}

// Set implements [flag.Value].
func (t typeSetValue) Set(s string) error {
	*t.types = config.ParseTypeSet(s)

	return nil
}

// String implements [flag.Value].
func (t typeSetValue) String() string {
	if t.types == nil {
		return ""
	}

	return t.types.String()
}

// Get implements [flag.Getter].
func (t typeSetValue) Get() any {
	if t.types == nil {
		return []string(nil)
	}

	return slices.Collect(t.types.All())
}

// pathFilterValue is a repeatable [flag.Value] adding patterns to a [config.PathFilter].
type pathFilterValue struct {
	filter *config.PathFilter
}

// Set implements [flag.Value].
func (f pathFilterValue) Set(s string) error {
	return f.filter.Add(s)
}

// String implements [flag.Value].
func (f pathFilterValue) String() string {
	if f.filter == nil {
		return ""
	}

	return f.filter.String()
}

// Get implements [flag.Getter].
func (f pathFilterValue) Get() any {
	if f.filter == nil {
		return []string(nil)
	}

	return f.filter.Patterns()
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
