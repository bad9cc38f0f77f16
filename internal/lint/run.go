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

package lint

import (
	"context"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/emptydrop/internal/hir"
)

// Run checks every item of the crate with every enabled pass, emitting into sink.
//
// Passes at level [Allow] are skipped, as are items allowing a pass' lint.
// Items are checked concurrently, so sink must be safe for concurrent use.
// Run returns the context's error when ctx is cancelled before all items are checked.
func Run(ctx context.Context, crate *hir.Crate, passes []ItemPass, sink Sink) error {
	defer trace.StartRegion(ctx, "Check").End()

	enabled := slices.DeleteFunc(slices.Clone(passes), func(p ItemPass) bool {
		return p == nil || !p.Lint().Level.Enabled()
	})

	if crate == nil || len(enabled) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, item := range crate.Items {
		if item == nil {
			continue
		}

		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			for _, p := range enabled {
				if item.Allowed(p.Lint().Name) {
					continue
				}

				p.CheckItem(item, sink)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
