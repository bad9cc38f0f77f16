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

package a

// Dropper releases resources.
type Dropper interface{ Drop() }

type S struct{}

func (*S) Drop() {} // want "empty drop implementation"

type Value struct{ n int }

func (Value) Drop() {} // want "empty drop implementation"

// Only the outermost block is checked.
type Nested struct{}

func (Nested) Drop() {
	{
	}
}

type Compute struct{}

func (Compute) Drop() {
	_x := compute()
	_ = _x
}

func compute() int { return 0 }

type Returning struct{}

func (Returning) Drop() {
	return
}

// Other methods of the type form a separate implementation.
type WithOther struct{}

func (WithOther) Other() {}

func (WithOther) Drop() {} // want "empty drop implementation"

type Suppressed struct{}

// Drop is kept for API compatibility.
//
//nolint:emptydrop
func (*Suppressed) Drop() {}

type Trailing struct{}

func (Trailing) Drop() {} //nolint:emptydrop

type Generic[T any] struct{ v T }

func (*Generic[T]) Drop() {}

type Inherent struct{}

func (Inherent) Close() {}

func Drop() {}

type Target struct{}

type Alias = Target

func (*Alias) Drop() {} // want "empty drop implementation"
