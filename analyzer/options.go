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
	"log/slog"
	"slices"

	"fillmore-labs.com/unusedntd/internal/config"
	"fillmore-labs.com/unusedntd/internal/run"
)

// Option configures specific behavior of a [New] unusedntd analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithCheckedTypes is an [Option] to replace the checked types.
//
// Each entry is a qualified type name like "example.com/status.Status"
// or a list of names separated by semicolons or commas. Predeclared
// types use their bare name ("error"). No names disable the analyzer.
func WithCheckedTypes(names ...string) Option { return checkedTypesOption{names: names} }

type checkedTypesOption struct{ names []string }

func (o checkedTypesOption) apply(r *run.Options) {
	var all []string
	for _, name := range o.names {
		all = slices.AppendSeq(all, config.ParseTypeSet(name).All())
	}

	r.CheckedTypes = config.NewTypeSet(all...)
}

func (o checkedTypesOption) LogAttr() slog.Attr {
	return slog.Any("checked-types", o.names)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDestructuring is an [Option] to check declarations binding several names from one
// multi-valued expression, like v, err := f().
func WithDestructuring(destructuring bool) Option {
	return destructuringOption{destructuring: destructuring}
}

type destructuringOption struct{ destructuring bool }

func (o destructuringOption) apply(r *run.Options) {
	r.Behavior.Set(config.Destructuring, o.destructuring)
}

func (o destructuringOption) LogAttr() slog.Attr {
	return slog.Bool("destructuring", o.destructuring)
}

// WithExclude is an [Option] to skip files matching glob patterns.
// Malformed patterns are dropped.
func WithExclude(patterns ...string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *run.Options) {
	for _, pattern := range o.patterns {
		_ = r.Exclude.Add(pattern) // malformed patterns are dropped
	}
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}

// WithConcurrency is an [Option] to bound the number of variables analyzed in parallel per function.
func WithConcurrency(concurrency int) Option { return concurrencyOption{concurrency: concurrency} }

type concurrencyOption struct{ concurrency int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.concurrency
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.concurrency)
}
