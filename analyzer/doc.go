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

// Package analyzer implements the emptydrop static analysis pass.
//
// # Overview
//
// emptydrop detects implementations of a destructor interface whose method
// does nothing. Such an implementation only hurts readability and suggests
// cleanup where there is none.
//
// The destructor is configurable with the -destructor flag or
// [WithDestructor] and defaults to [io.Closer]. Since Close returns an error,
// a Closer is never empty and the default reports nothing: configure an
// interface whose method has no results. A type implements the
// destructor when the type or its pointer satisfies the interface; the
// methods named by the interface form the implementation.
//
// # Example
//
// With -destructor=example.com/res.Dropper:
//
//	type S struct{}
//
//	func (*S) Drop() {} // empty drop implementation (help: try removing this impl)
//
// Implementations consisting of more than one method, or with any statement
// in the body, are not reported. Only the outermost block is examined.
//
// # Suppression
//
// Diagnostics in generated files are suppressed unless -generated is set.
// A //nolint:emptydrop directive in a method's documentation or at the end
// of its first line suppresses its diagnostic; in the package documentation
// it excludes the whole file.
package analyzer
