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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/unusedntd/analyzer"
	"fillmore-labs.com/unusedntd/internal/config"
)

const testdata = "../../analyzer/testdata"

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), defaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFileConfig(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
checked-types: "error;example.com/status.Status"
generated: true
exclude:
  - "**/mocks/**"
concurrency: 4
`)

	fc, err := loadFileConfig(path, true)
	require.NoError(t, err)

	require.NotNil(t, fc.CheckedTypes)
	assert.Equal(t, "error;example.com/status.Status", *fc.CheckedTypes)
	require.NotNil(t, fc.Generated)
	assert.True(t, *fc.Generated)
	assert.Nil(t, fc.Destructuring)
	assert.Equal(t, []string{"**/mocks/**"}, fc.Exclude)
	require.NotNil(t, fc.Concurrency)
	assert.Equal(t, 4, *fc.Concurrency)
}

func TestLoadFileConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown_field", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "max-lines: 5\n")

		_, err := loadFileConfig(path, true)
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "")

		fc, err := loadFileConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, FileConfig{}, fc)
	})

	t.Run("missing_default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), defaultConfigFile)

		_, err := loadFileConfig(path, false)
		require.NoError(t, err)
	})

	t.Run("missing_explicit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "other.yaml")

		_, err := loadFileConfig(path, true)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	checked, generated, concurrency := "example.com/status.Status", true, 3
	file := FileConfig{
		CheckedTypes: &checked,
		Generated:    &generated,
		Exclude:      []string{"*_gen.go"},
		Concurrency:  &concurrency,
	}

	tests := []struct {
		name    string
		cfg     Config
		changed []string
		want    map[string]string
	}{
		{
			name: "file",
			cfg:  Config{CheckedTypes: "error", Concurrency: 1},
			want: map[string]string{
				"checked-types": "example.com/status.Status",
				"generated":     "true",
				"concurrency":   "3",
				"exclude":       "*_gen.go",
			},
		},
		{
			name:    "flags",
			cfg:     Config{CheckedTypes: "error", Concurrency: 2, Exclude: []string{"**/mocks/**"}},
			changed: []string{"checked-types", "generated", "concurrency"},
			want: map[string]string{
				"checked-types": "error",
				"generated":     "false",
				"concurrency":   "2",
				"exclude":       "*_gen.go,**/mocks/**",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			changed := func(name string) bool { return slices.Contains(tt.changed, name) }

			opts, err := tt.cfg.options(file, changed)
			require.NoError(t, err)

			a := analyzer.New(opts)
			for name, want := range tt.want {
				f := a.Flags.Lookup(name)
				require.NotNil(t, f, name)
				assert.Equal(t, want, f.Value.String(), name)
			}
		})
	}
}

func TestOptionsBadPattern(t *testing.T) {
	t.Parallel()

	cfg := Config{Exclude: []string{"[a-"}}

	_, err := cfg.options(FileConfig{}, func(string) bool { return false })
	require.ErrorIs(t, err, config.ErrBadPattern)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	findings := []Finding{{
		File:    "a.go",
		Line:    3,
		Column:  2,
		Message: "'err' is unlikely to be RAII and is potentially unused",
		Related: []Related{{File: "a.go", Line: 4, Column: 2, Message: "Overwritten here before being read"}},
	}}

	var out bytes.Buffer
	require.NoError(t, writeText(&out, findings))

	const want = "a.go:3:2: 'err' is unlikely to be RAII and is potentially unused\n" +
		"\ta.go:4:2: Overwritten here before being read\n"
	assert.Equal(t, want, out.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, nil))

	var got jOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.NotNil(t, got.Findings)
	assert.Empty(t, got.Findings)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-C", testdata}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--exclude=excluded.go", "./exclude")

	var cErr *codedError
	require.True(t, errors.As(err, &cErr), "error %v", err)
	assert.Equal(t, exitUnusedFound, cErr.code)

	assert.Contains(t, out, "included.go:")
	assert.Contains(t, out, "'err' is unlikely to be RAII and is potentially unused")
	assert.Contains(t, out, "Overwritten here before being read")
	assert.NotContains(t, out, "excluded.go:")
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--json", "./exclude")

	var cErr *codedError
	require.True(t, errors.As(err, &cErr), "error %v", err)
	assert.Equal(t, exitUnusedFound, cErr.code)

	var got jOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Findings, 2)
	assert.Equal(t, "test/exclude", got.Findings[0].Package)
	assert.Equal(t, "excluded.go", filepath.Base(got.Findings[0].File))
	assert.Equal(t, "included.go", filepath.Base(got.Findings[1].File))
}

func TestRunClean(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--checked-types=", "./none")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunBadConfig(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "./none")

	var cErr *codedError
	require.True(t, errors.As(err, &cErr), "error %v", err)
	assert.Equal(t, exitError, cErr.code)
}
