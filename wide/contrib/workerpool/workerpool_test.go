// Copyright 2025 go-wide Authors
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

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.Workers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.Workers())
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name             string
		n, parts, align int
		want             []int
	}{
		{"even", 100, 4, 1, []int{0, 25, 50, 75, 100}},
		{"aligned", 100, 4, 8, []int{0, 32, 64, 96, 100}},
		{"fewer blocks than parts", 10, 4, 8, []int{0, 8, 10}},
		{"fewer items than parts", 3, 8, 1, []int{0, 1, 2, 3}},
		{"single part", 17, 1, 4, []int{0, 17}},
		{"empty", 0, 4, 8, []int{0}},
		{"zero parts", 5, 0, 0, []int{0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunks(tt.n, tt.parts, tt.align))
		})
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int, n)
	var mu sync.Mutex
	var ranges [][2]int
	pool.ParallelFor(n, 16, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})

	for i, r := range results {
		require.Equal(t, i*2, r, "results[%d]", i)
	}
	for _, r := range ranges {
		assert.Zero(t, r[0]%16, "range %v starts off a vector boundary", r)
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1003
	var seen [1003]atomic.Int32
	pool.ParallelForAtomic(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			seen[i].Add(1)
		}
	})
	for i := range seen {
		require.Equal(t, int32(1), seen[i].Load(), "index %d", i)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int32
	pool.ParallelFor(3, 1, func(start, end int) {
		count.Add(int32(end - start))
	})
	assert.Equal(t, int32(3), count.Load())
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	pool.ParallelFor(0, 1, func(start, end int) {
		t.Error("ParallelFor with n=0 should not call fn")
	})
	pool.ParallelForAtomic(0, 1, func(start, end int) {
		t.Error("ParallelForAtomic with n=0 should not call fn")
	})
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	assert.NotPanics(t, pool.Close)
}

func TestCloseWhileSubmitting(t *testing.T) {
	for range 100 {
		pool := New(4)
		var covered, batched atomic.Int64
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			pool.ParallelFor(1000, 8, func(start, end int) { covered.Add(int64(end - start)) })
		}()
		go func() {
			defer wg.Done()
			pool.ParallelForAtomic(1000, 16, func(start, end int) { batched.Add(int64(end - start)) })
		}()
		go func() {
			defer wg.Done()
			pool.Close()
		}()
		wg.Wait()
		require.Equal(t, int64(1000), covered.Load())
		require.Equal(t, int64(1000), batched.Load())
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()

	var calls int
	pool.ParallelFor(100, 1, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})
	assert.Equal(t, 1, calls)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), 8, func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = data[j]*0.5 + 1
			}
		})
	}
}
