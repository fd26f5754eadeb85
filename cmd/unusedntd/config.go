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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/unusedntd/analyzer"
	"fillmore-labs.com/unusedntd/internal/config"
)

const defaultConfigFile = ".unusedntd.yaml"

// FileConfig is the content of a YAML configuration file.
// Unset fields keep the command line defaults.
type FileConfig struct {
	CheckedTypes  *string  `yaml:"checked-types"`
	Generated     *bool    `yaml:"generated"`
	Destructuring *bool    `yaml:"destructuring"`
	Exclude       []string `yaml:"exclude"`
	Concurrency   *int     `yaml:"concurrency"`
	Tests         *bool    `yaml:"tests"`
}

// loadFileConfig reads the configuration file at path.
// A missing file is only an error when it was named explicitly.
func loadFileConfig(path string, explicit bool) (FileConfig, error) {
	var fc FileConfig

	if path == "" {
		return fc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}

		return fc, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parsing %s: %w", path, err)
	}

	return fc, nil
}

// options combines file configuration and command line flags.
// Flags given on the command line take precedence, exclude patterns are merged.
func (c *Config) options(file FileConfig, changed func(name string) bool) (analyzer.Options, error) {
	var opts analyzer.Options

	checkedTypes := c.CheckedTypes
	if file.CheckedTypes != nil && !changed("checked-types") {
		checkedTypes = *file.CheckedTypes
	}

	opts = append(opts, analyzer.WithCheckedTypes(checkedTypes))
	opts = append(opts, analyzer.WithGenerated(override(c.Generated, file.Generated, changed("generated"))))
	opts = append(opts, analyzer.WithDestructuring(override(c.Destructuring, file.Destructuring, changed("destructuring"))))
	opts = append(opts, analyzer.WithConcurrency(override(c.Concurrency, file.Concurrency, changed("concurrency"))))

	var filter config.PathFilter

	for _, pattern := range slices.Concat(file.Exclude, c.Exclude) {
		if err := filter.Add(pattern); err != nil {
			return nil, err
		}
	}

	if !filter.Empty() {
		opts = append(opts, analyzer.WithExclude(filter.Patterns()...))
	}

	return opts, nil
}

// override returns the file value unless the flag was set on the command line.
func override[T any](flag T, file *T, changed bool) T {
	if file == nil || changed {
		return flag
	}

	return *file
}
