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

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/emptydrop/internal/astutil"
	"fillmore-labs.com/emptydrop/internal/emptydrop"
	"fillmore-labs.com/emptydrop/internal/hir"
	"fillmore-labs.com/emptydrop/internal/lint"
	"fillmore-labs.com/emptydrop/internal/lower"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the emptydrop analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("emptydrop: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	id, err := hir.ParseDefID(r.Destructor)
	if err != nil {
		return nil, fmt.Errorf("emptydrop: destructor: %w", err)
	}

	destructor, err := lower.FindInterface(p.Pkg, id)
	if err != nil {
		return nil, fmt.Errorf("emptydrop: package %s: %w", p.Pkg.Path(), err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "EmptyDrop")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	files := r.files(p, in)
	if len(files) == 0 {
		return nil, nil
	}

	// Stage 1: lower the package into implementation blocks
	crate := lower.Package(ctx, p.Fset, files, p.TypesInfo, destructor)

	// Stage 2: check every top-level item
	var diagnostics lint.Collector
	if err := lint.Run(ctx, crate, []lint.ItemPass{emptydrop.New(id)}, &diagnostics); err != nil {
		return nil, fmt.Errorf("emptydrop: %w", err)
	}

	// Stage 3: report in source order
	for _, d := range diagnostics.Diagnostics() {
		p.Report(analysis.Diagnostic{
			Pos:      d.Pos(),
			End:      d.End(),
			Category: d.Lint.Name,
			Message:  message(d),
		})
	}

	return nil, nil
}

// files returns the files of the package to be checked.
func (r *Options) files(p *analysis.Pass, in *inspector.Inspector) []*ast.File {
	var files []*ast.File

	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Generated {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		files = append(files, file)
	}

	return files
}

func message(d lint.Diagnostic) string {
	if d.Help == "" {
		return d.Message
	}

	return d.Message + " (help: " + d.Help + ")"
}
