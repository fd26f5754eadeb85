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

package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for malformed exclude patterns.
var ErrBadPattern = errors.New("bad exclude pattern")

// PathFilter excludes files by glob pattern.
//
// Patterns use doublestar syntax ("**/mocks/**", "*_gen.go"). A pattern
// without a slash matches the base name of the file, like .gitignore does.
// Other relative patterns match the trailing directories of the path.
type PathFilter struct {
	patterns []string
}

// Add validates and appends a pattern.
func (f *PathFilter) Add(pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	f.patterns = append(f.patterns, pattern)

	return nil
}

// Patterns returns a copy of the configured patterns.
func (f PathFilter) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// Empty reports whether no pattern is configured.
func (f PathFilter) Empty() bool {
	return len(f.patterns) == 0
}

// Excluded reports whether the file name matches any configured pattern.
func (f PathFilter) Excluded(filename string) bool {
	if len(f.patterns) == 0 || filename == "" {
		return false
	}

	name := filepath.ToSlash(filename)
	base := path.Base(name)

	for _, pattern := range f.patterns {
		var subject string

		switch {
		case !strings.Contains(pattern, "/"):
			subject = base

		case !strings.HasPrefix(pattern, "/"):
			// relative patterns match any trailing part of the path
			subject = strings.TrimPrefix(name, "/")
			if !strings.HasPrefix(pattern, "**/") {
				pattern = "**/" + pattern
			}

		default:
			subject = name
		}

		// Patterns are validated in Add, so errors can't occur here.
		if ok, _ := doublestar.Match(pattern, subject); ok {
			return true
		}
	}

	return false
}

// String returns the patterns separated by commas.
func (f PathFilter) String() string {
	return strings.Join(f.patterns, ",")
}
