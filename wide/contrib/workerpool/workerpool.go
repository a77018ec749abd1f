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

// Package workerpool runs slice kernels on a fixed set of goroutines.
//
// A Pool is created once and reused across many calls, so a kernel that
// runs thousands of times does not pay for goroutine startup each time:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelFor(len(xs), 8, func(start, end int) {
//	    algo.Transform(xs[start:end], ys[start:end], math.Sin[float32, wide.RegF32x8])
//	})
//
// Chunk boundaries can be aligned to a vector width so that only the last
// chunk ends in a partial vector.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-wide/go-wide/wide"
)

// Pool is a set of persistent workers.
type Pool struct {
	workers int
	jobs    chan job

	// mu is held for reading while jobs are queued and for writing by
	// Close, so no send can race with closing the channel.
	mu     sync.RWMutex
	closed bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of the given number of workers. workers <= 0 means
// GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		jobs:    make(chan job, workers*2),
	}
	for range workers {
		go p.work()
	}
	wide.Logger().Debug("workerpool started", "workers", workers)
	return p
}

func (p *Pool) work() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued work has finished. It is safe to
// call more than once. A closed pool still accepts work and runs it on the
// calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
	wide.Logger().Debug("workerpool closed", "workers", p.workers)
}

// submit queues one job per run and waits for all of them. It returns
// false without running anything when the pool is closed.
func (p *Pool) submit(runs []func()) bool {
	var wg sync.WaitGroup
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	wg.Add(len(runs))
	for _, run := range runs {
		p.jobs <- job{run: run, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// Chunks splits [0, n) into at most parts contiguous ranges whose
// boundaries are multiples of align, and returns the boundaries: range i
// is [b[i], b[i+1]). align <= 1 allows any boundary.
func Chunks(n, parts, align int) []int {
	if n <= 0 {
		return []int{0}
	}
	align = max(align, 1)
	blocks := (n + align - 1) / align
	parts = min(max(parts, 1), blocks)
	size := (blocks + parts - 1) / parts * align

	bounds := make([]int, 0, parts+1)
	for start := 0; start < n; start += size {
		bounds = append(bounds, start)
	}
	return append(bounds, n)
}

// ParallelFor calls fn on contiguous ranges covering [0, n), one per
// worker, and blocks until all have returned. Range boundaries are
// multiples of align.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	bounds := Chunks(n, p.workers, align)
	if len(bounds) == 2 {
		fn(0, n)
		return
	}

	runs := make([]func(), len(bounds)-1)
	for i := range runs {
		start, end := bounds[i], bounds[i+1]
		runs[i] = func() { fn(start, end) }
	}
	if !p.submit(runs) {
		fn(0, n)
	}
}

// ParallelForAtomic hands out ranges of batch indices to whichever worker
// is free, for work whose cost varies across the range. It blocks until
// [0, n) is covered.
func (p *Pool) ParallelForAtomic(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	workers := min(p.workers, (n+batch-1)/batch)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	grab := func() {
		for {
			start := int(next.Add(int64(batch))) - batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	}
	runs := make([]func(), workers)
	for i := range runs {
		runs[i] = grab
	}
	if !p.submit(runs) {
		fn(0, n)
	}
}
