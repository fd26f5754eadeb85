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
	"sync"

	"fillmore-labs.com/unusedntd/internal/config"
	"fillmore-labs.com/unusedntd/internal/typematch"
)

// Options represent configuration options for the unusedntd analyzer.
type Options struct {
	// CheckedTypes are the qualified names of the analyzed types.
	CheckedTypes config.TypeSet

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Exclude lists file patterns not to analyze.
	Exclude config.PathFilter

	// Concurrency bounds the number of variables analyzed in parallel per function.
	// Values below 2 analyze sequentially.
	Concurrency int

	matcher func() *typematch.Matcher
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	r := &Options{
		CheckedTypes: config.DefaultTypeSet(),
		Behavior:     config.DefaultBehavior(),
		Concurrency:  1,
	}

	// Options are final once the first package is analyzed.
	r.matcher = sync.OnceValue(func() *typematch.Matcher { return typematch.New(r.CheckedTypes) })

	return r
}

// Matcher returns the type matcher shared by all passes.
func (r *Options) Matcher() *typematch.Matcher {
	if r.matcher == nil {
		return typematch.New(r.CheckedTypes)
	}

	return r.matcher()
}
