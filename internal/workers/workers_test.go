// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatch_Empty(t *testing.T) {
	idx, ok := FirstMatch(context.Background(), 4, []string{}, func(context.Context, int, string) bool {
		t.Fatal("try must not be called for an empty list")
		return true
	})

	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestFirstMatch_NoMatch(t *testing.T) {
	var calls atomic.Int32
	items := []int{1, 2, 3, 4, 5}

	idx, ok := FirstMatch(context.Background(), 2, items, func(context.Context, int, int) bool {
		calls.Add(1)
		return false
	})

	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, int32(len(items)), calls.Load(), "every item must be tried when nothing matches")
}

func TestFirstMatch_Sequential_StopsAtFirstMatch(t *testing.T) {
	var tried []int
	items := []string{"a", "b", "c", "d"}

	idx, ok := FirstMatch(context.Background(), 1, items, func(_ context.Context, i int, item string) bool {
		tried = append(tried, i)
		return item == "b" || item == "d"
	})

	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []int{0, 1}, tried)
}

func TestFirstMatch_LowestIndexWinsEvenIfLater(t *testing.T) {
	items := []int{0, 1, 2, 3}

	// index 0 matches slowly, index 2 matches immediately
	idx, ok := FirstMatch(context.Background(), 4, items, func(_ context.Context, i int, _ int) bool {
		switch i {
		case 0:
			time.Sleep(50 * time.Millisecond)
			return true
		case 2:
			return true
		default:
			return false
		}
	})

	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestFirstMatch_RespectsLimit(t *testing.T) {
	const limit = 3
	var running, peak atomic.Int32

	items := make([]int, 20)
	_, ok := FirstMatch(context.Background(), limit, items, func(context.Context, int, int) bool {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return false
	})

	assert.False(t, ok)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestFirstMatch_ZeroLimitActsSequential(t *testing.T) {
	idx, ok := FirstMatch(context.Background(), 0, []int{5, 6, 7}, func(_ context.Context, _ int, v int) bool {
		return v == 7
	})

	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestFirstMatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	idx, ok := FirstMatch(ctx, 2, []int{1, 2, 3}, func(context.Context, int, int) bool {
		calls.Add(1)
		return true
	})

	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Zero(t, calls.Load())
}
