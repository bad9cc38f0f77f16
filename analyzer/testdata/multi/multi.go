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

package multi

// Resource must be opened and dropped.
type Resource interface {
	Open()
	Drop()
}

type R struct{}

func (*R) Open() {}

func (*R) Drop() {}

// D implements only part of Resource.
type D struct{}

func (D) Drop() {}

// Methods declared through an alias belong to the aliased type.
type Split struct{ n int }

type SplitAlias = Split

func (*Split) Open() {}

func (s *SplitAlias) Drop() { s.n = 0 }
