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

package lower

import (
	"errors"
	"fmt"
	"go/types"

	"fillmore-labs.com/emptydrop/internal/hir"
)

// ErrNotInterface is returned when the destructor path does not name an interface.
var ErrNotInterface = errors.New("destructor is not an interface")

// Destructor is the destructor interface resolved in a package.
type Destructor struct {
	ID    hir.DefID
	Iface *types.Interface // nil when not reachable from the package
}

// FindInterface resolves id in pkg or its transitive imports.
//
// When the defining package is not imported, nothing in pkg can implement the
// interface and the result has a nil Iface.
func FindInterface(pkg *types.Package, id hir.DefID) (Destructor, error) {
	d := Destructor{ID: id}

	target := findPackage(pkg, id.Pkg)
	if target == nil {
		return d, nil
	}

	tn, ok := target.Scope().Lookup(id.Name).(*types.TypeName)
	if !ok {
		return d, fmt.Errorf("%w: %s not found", ErrNotInterface, id)
	}

	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return d, fmt.Errorf("%w: %s is %s", ErrNotInterface, id, tn.Type().Underlying())
	}

	d.Iface = iface

	return d, nil
}

func findPackage(pkg *types.Package, path string) *types.Package {
	if pkg == nil {
		return nil
	}

	seen := map[*types.Package]bool{pkg: true}
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.Path() == path {
			return p
		}

		for _, imp := range p.Imports() {
			if !seen[imp] {
				seen[imp] = true
				queue = append(queue, imp)
			}
		}
	}

	return nil
}

// implementedBy reports whether named or its pointer implements the destructor.
// Generic types are never matched.
func (d Destructor) implementedBy(named *types.Named) bool {
	if d.Iface == nil || named == nil || named.TypeParams().Len() > 0 || types.IsInterface(named) {
		return false
	}

	return types.Implements(named, d.Iface) || types.Implements(types.NewPointer(named), d.Iface)
}

// declares reports whether the destructor interface has a method called name.
func (d Destructor) declares(name string) bool {
	if d.Iface == nil {
		return false
	}

	for i := range d.Iface.NumMethods() {
		if d.Iface.Method(i).Name() == name {
			return true
		}
	}

	return false
}
