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

// Package algo applies vector kernels to whole slices.
//
// Transform and Transform2 walk a slice one vector at a time and finish
// with a partial vector, so callers write only the per-vector kernel:
//
//	// y = x² + x over a slice, eight lanes at a time.
//	algo.Transform(xs, ys, func(x wide.F32x8) wide.F32x8 {
//	    return wide.MulAdd(x, x, x)
//	})
//
// ParallelTransform splits large slices across a workerpool.Pool, keeping
// every chunk but the last a whole number of vectors.
package algo

import (
	"sync"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

// Transform applies fn to src and writes the results to dst. It processes
// min(len(src), len(dst)) elements. The final partial vector is loaded with
// zero padding, and the padding lanes are not stored.
func Transform[T wide.Lanes, R wide.Register[T, R]](src, dst []T, fn func(wide.Vec[T, R]) wide.Vec[T, R]) {
	n := min(len(src), len(dst))
	lanes := wide.Zero[T, R]().NumLanes()
	i := 0
	for ; i+lanes <= n; i += lanes {
		wide.Store(fn(wide.Load[T, R](src[i:])), dst[i:])
	}
	if i < n {
		wide.StoreN(fn(wide.LoadN[T, R](src[i:n])), dst[i:n])
	}
}

// Transform2 applies fn lane by lane to a and b and writes the results to
// dst. It processes the length of the shortest of the three slices.
func Transform2[T wide.Lanes, R wide.Register[T, R]](a, b, dst []T, fn func(x, y wide.Vec[T, R]) wide.Vec[T, R]) {
	n := min(len(a), len(b), len(dst))
	lanes := wide.Zero[T, R]().NumLanes()
	i := 0
	for ; i+lanes <= n; i += lanes {
		wide.Store(fn(wide.Load[T, R](a[i:]), wide.Load[T, R](b[i:])), dst[i:])
	}
	if i < n {
		wide.StoreN(fn(wide.LoadN[T, R](a[i:n]), wide.LoadN[T, R](b[i:n])), dst[i:n])
	}
}

// defaultMinParallel is the element count below which ParallelTransform
// stays on the calling goroutine.
const defaultMinParallel = 1 << 14

var envMinParallel = sync.OnceValue(func() int {
	return wide.EnvInt("WIDE_PARALLEL_MIN", defaultMinParallel)
})

// Options tunes ParallelTransform.
type Options struct {
	// MinParallel is the smallest slice length that is split across the
	// pool. Zero means the WIDE_PARALLEL_MIN environment setting, or 16384
	// when that is unset.
	MinParallel int

	// Batch, when positive, hands the slice out in batches of about Batch
	// elements to whichever worker is free, instead of one equal chunk per
	// worker. Use it for kernels whose cost varies with the input. Batches
	// are rounded up to whole vectors.
	Batch int
}

func (o Options) minParallel() int {
	if o.MinParallel > 0 {
		return o.MinParallel
	}
	return envMinParallel()
}

// split runs fn over [0, n) on pool with vector-aligned range boundaries.
func (o Options) split(pool *workerpool.Pool, n, lanes int, fn func(start, end int)) {
	if o.Batch > 0 {
		batch := (o.Batch + lanes - 1) / lanes * lanes
		wide.Logger().Debug("parallel transform", "n", n, "lanes", lanes, "workers", pool.Workers(), "batch", batch)
		pool.ParallelForAtomic(n, batch, fn)
		return
	}
	wide.Logger().Debug("parallel transform", "n", n, "lanes", lanes, "workers", pool.Workers())
	pool.ParallelFor(n, lanes, fn)
}

// ParallelTransform is Transform with the slice split across pool. A nil
// pool, or a slice shorter than the MinParallel option, runs Transform
// directly.
func ParallelTransform[T wide.Lanes, R wide.Register[T, R]](pool *workerpool.Pool, src, dst []T, fn func(wide.Vec[T, R]) wide.Vec[T, R], opts Options) {
	n := min(len(src), len(dst))
	if pool == nil || n < opts.minParallel() {
		Transform(src[:n], dst[:n], fn)
		return
	}
	opts.split(pool, n, wide.Zero[T, R]().NumLanes(), func(start, end int) {
		Transform(src[start:end], dst[start:end], fn)
	})
}

// ParallelTransform2 is Transform2 with the slices split across pool.
func ParallelTransform2[T wide.Lanes, R wide.Register[T, R]](pool *workerpool.Pool, a, b, dst []T, fn func(x, y wide.Vec[T, R]) wide.Vec[T, R], opts Options) {
	n := min(len(a), len(b), len(dst))
	if pool == nil || n < opts.minParallel() {
		Transform2(a[:n], b[:n], dst[:n], fn)
		return
	}
	opts.split(pool, n, wide.Zero[T, R]().NumLanes(), func(start, end int) {
		Transform2(a[start:end], b[start:end], dst[start:end], fn)
	})
}
