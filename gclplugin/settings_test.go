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

package gclplugin_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	unusedntd "fillmore-labs.com/unusedntd/analyzer"
	. "fillmore-labs.com/unusedntd/gclplugin"
	"fillmore-labs.com/unusedntd/internal/config"
)

const allSettings = `{
	"checked-types": "error;example.com/status.Status",
	"destructuring": true,
	"exclude": ["**/mocks/**", "*_gen.go"],
	"concurrency": 4
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty_exclude", `{"exclude": []}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if err := s.Validate(); err != nil {
				t.Fatalf("Invalid settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), unusedntd.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsBadPattern(t *testing.T) {
	t.Parallel()

	s := Settings{Exclude: []string{"[a-"}}

	if err := s.Validate(); !errors.Is(err, config.ErrBadPattern) {
		t.Errorf("Validate() = %v, want %v", err, config.ErrBadPattern)
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"checked-types": "error", "destructuring": true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("BuildAnalyzers() failed: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "unusedntd" {
		t.Errorf("BuildAnalyzers() = %v, want unusedntd analyzer", analyzers)
	}

	if _, err := New(map[string]any{"exclude": []any{"[a-"}}); !errors.Is(err, config.ErrBadPattern) {
		t.Errorf("New() = %v, want %v", err, config.ErrBadPattern)
	}
}
