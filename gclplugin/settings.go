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

package gclplugin

import emptydrop "fillmore-labs.com/emptydrop/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Destructor is the qualified name of the destructor interface.
	Destructor *string `json:"destructor,omitzero"`
}

// Options converts [Settings] into a list of [emptydrop.Option] for the emptydrop analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []emptydrop.Option {
	var opts []emptydrop.Option

	opts = appendOption(opts, s.Destructor, emptydrop.WithDestructor)

	return opts
}

// appendOption appends a non-nil setting to a [emptydrop.Option] list.
func appendOption[T any](opts []emptydrop.Option, value *T, constructor func(T) emptydrop.Option) []emptydrop.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
