// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides bounded fan-out helpers for CPU-bound jobs.
//
// FirstMatch runs a predicate over a list with a limited number of
// goroutines and reports the lowest index for which it held. It is used to
// spread trial decryptions over several cores without changing which
// candidate wins.
package workers

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// FirstMatch calls try for items with at most limit concurrent goroutines
// and returns the smallest index whose call returned true.
//
// Items past an index that already matched are not started. A limit below 1
// is treated as 1, which degenerates to an ordered sequential scan with early
// exit. If ctx is cancelled, scheduling stops and the best match among the
// calls that did run is returned.
func FirstMatch[T any](ctx context.Context, limit int, items []T, try func(ctx context.Context, i int, item T) bool) (int, bool) {
	if limit < 1 {
		limit = 1
	}

	notFound := int64(len(items))
	var best atomic.Int64
	best.Store(notFound)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		if int64(i) > best.Load() || gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if int64(i) > best.Load() {
				return nil
			}
			if try(gctx, i, item) {
				storeMin(&best, int64(i))
			}
			return nil
		})
	}

	_ = g.Wait()

	if idx := best.Load(); idx != notFound {
		return int(idx), true
	}
	return -1, false
}

func storeMin(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
