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

package config

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// Destructuring specifies whether declarations binding several names from one
	// multi-valued expression (v, err := f()) are analyzed.
	Destructuring
)

// DefaultCheckedTypes is the qualified type name analyzed when nothing else is configured.
const DefaultCheckedTypes = "error"

// DefaultBehavior returns the behavior flags enabled by default.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask[Behavior]()
}
