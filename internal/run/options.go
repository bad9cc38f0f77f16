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

package run

// DefaultDestructor is the destructor interface used when none is configured.
const DefaultDestructor = "io.Closer"

// Options represent configuration options for the emptydrop analyzer.
type Options struct {
	// Generated enables diagnostics in generated files.
	Generated bool

	// Destructor is the qualified name of the destructor interface, like "io.Closer".
	Destructor string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Generated:  false,
		Destructor: DefaultDestructor,
	}
}
