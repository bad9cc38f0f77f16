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

package hir

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// ErrInvalidDefID is returned when a definition path can't be parsed.
var ErrInvalidDefID = errors.New("invalid definition path")

// DefID identifies a definition by package path and name.
//
// The zero DefID is unresolved and never equal to a valid one.
type DefID struct {
	Pkg  string
	Name string
}

// ParseDefID parses a qualified name like "io.Closer" or "example.com/pkg.Type".
func ParseDefID(path string) (DefID, error) {
	dot := strings.LastIndexByte(path, '.')
	if dot <= 0 || dot < strings.LastIndexByte(path, '/') {
		return DefID{}, fmt.Errorf("%w %q: missing package qualifier", ErrInvalidDefID, path)
	}

	pkg, name := path[:dot], path[dot+1:]
	if !token.IsIdentifier(name) {
		return DefID{}, fmt.Errorf("%w %q: %q is not an identifier", ErrInvalidDefID, path, name)
	}

	if strings.HasSuffix(pkg, "/") {
		return DefID{}, fmt.Errorf("%w %q: empty package element", ErrInvalidDefID, path)
	}

	return DefID{Pkg: pkg, Name: name}, nil
}

// Valid reports whether the DefID has been resolved.
func (d DefID) Valid() bool { return d.Name != "" }

func (d DefID) String() string {
	if !d.Valid() {
		return "<unresolved>"
	}

	return d.Pkg + "." + d.Name
}
