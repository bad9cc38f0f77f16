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

package lint

// Level is the severity of a lint.
type Level uint8

//go:generate go tool stringer -type Level -linecomment
const (
	// Allow disables the lint.
	Allow Level = iota // allow

	// Warn reports findings that should be fixed.
	Warn // warn

	// Deny reports findings that must be fixed.
	Deny // deny
)

// Enabled reports whether diagnostics are emitted at this level.
func (l Level) Enabled() bool { return l != Allow }
