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

package gclplugin

import (
	unusedntd "fillmore-labs.com/unusedntd/analyzer"
	"fillmore-labs.com/unusedntd/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// CheckedTypes lists the qualified type names to check, separated by semicolons or commas.
	CheckedTypes *string `json:"checked-types,omitzero"`
	// Destructuring enables checks of declarations unpacking multiple values.
	Destructuring *bool `json:"destructuring,omitzero"`
	// Exclude lists glob patterns of files to skip.
	Exclude []string `json:"exclude,omitzero"`
	// Concurrency bounds the number of variables analyzed in parallel per function.
	Concurrency *int `json:"concurrency,omitzero"`
}

// Validate checks the settings for malformed values.
func (s Settings) Validate() error {
	var filter config.PathFilter
	for _, pattern := range s.Exclude {
		if err := filter.Add(pattern); err != nil {
			return err
		}
	}

	return nil
}

// Options converts [Settings] into a list of [unusedntd.Option] for the unusedntd analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []unusedntd.Option {
	var opts []unusedntd.Option

	opts = appendOption(opts, s.CheckedTypes, func(types string) unusedntd.Option { return unusedntd.WithCheckedTypes(types) })
	opts = appendOption(opts, s.Destructuring, unusedntd.WithDestructuring)
	opts = appendOption(opts, s.Concurrency, unusedntd.WithConcurrency)

	if len(s.Exclude) > 0 {
		opts = append(opts, unusedntd.WithExclude(s.Exclude...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [unusedntd.Option] list.
func appendOption[T any](opts []unusedntd.Option, value *T, constructor func(T) unusedntd.Option) []unusedntd.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
