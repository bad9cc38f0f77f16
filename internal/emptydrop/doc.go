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

// Package emptydrop detects destructor implementations that do nothing.
//
// # Example
//
// With "example.com/res.Dropper" as destructor:
//
//	type S struct{}
//
//	func (*S) Drop() {} // empty drop implementation (help: try removing this impl)
//
// An empty destructor only hurts readability; the type is better off
// without it.
//
// Only the body itself is examined: a body consisting of a single nested
// empty block is not reported.
package emptydrop
