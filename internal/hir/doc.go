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

// Package hir is the declaration tree the lint passes operate on.
//
// A [Crate] holds the top-level [Item]s of one compilation unit. Items,
// implementation members, statements and expressions are sealed interfaces
// with one concrete type per node kind, so passes match on the tree with
// type switches and type assertions. Every node embeds a [Span].
//
// The tree is built once by a front-end and is read-only afterwards; passes
// may inspect it concurrently.
package hir
