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

package algo

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/workerpool"
)

func squarePlus(x wide.F32x8) wide.F32x8 { return wide.MulAdd(x, x, x) }

func iota32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) - 7
	}
	return out
}

func TestTransformTails(t *testing.T) {
	// Lengths around multiples of the eight-lane vector.
	for _, n := range []int{0, 1, 7, 8, 9, 16, 23, 100} {
		src := iota32(n)
		dst := make([]float32, n)
		Transform(src, dst, squarePlus)

		want := make([]float32, n)
		for i, x := range src {
			want[i] = x*x + x
		}
		if diff := cmp.Diff(want, dst); diff != "" {
			t.Errorf("n=%d (-want +got):\n%s", n, diff)
		}
	}
}

func TestTransformShortDst(t *testing.T) {
	src := iota32(20)
	dst := make([]float32, 13)
	guard := append(dst, 99)[:13]
	Transform(src, guard, squarePlus)
	assert.Equal(t, float32(99), guard[:14][13], "wrote past the end of dst")
	assert.Equal(t, src[12]*src[12]+src[12], guard[12])
}

func TestTransform2(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []int32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	dst := make([]int32, len(a))
	Transform2(a, b, dst, wide.Add[int32, wide.RegI32x4])
	assert.Equal(t, []int32{11, 22, 33, 44, 55, 66, 77, 88, 99, 110}, dst)
}

func TestParallelTransformMatchesSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := iota32(10_000)
	serial := make([]float32, len(src))
	parallel := make([]float32, len(src))
	Transform(src, serial, squarePlus)
	ParallelTransform(pool, src, parallel, squarePlus, Options{MinParallel: 64})
	require.Empty(t, cmp.Diff(serial, parallel))

	a, b := iota32(5000), iota32(5000)
	sum := make([]float32, 5000)
	ParallelTransform2(pool, a, b, sum, wide.Add[float32, wide.RegF32x8], Options{MinParallel: 64})
	for i := range sum {
		require.Equal(t, a[i]+b[i], sum[i], "index %d", i)
	}
}

func TestParallelTransformBatched(t *testing.T) {
	var buf bytes.Buffer
	wide.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer wide.SetLogger(nil)

	pool := workerpool.New(3)
	defer pool.Close()

	src := iota32(1003)
	serial := make([]float32, len(src))
	batched := make([]float32, len(src))
	Transform(src, serial, squarePlus)
	ParallelTransform(pool, src, batched, squarePlus, Options{MinParallel: 64, Batch: 50})
	require.Empty(t, cmp.Diff(serial, batched))
	// 50 rounds up to a whole number of 8-lane vectors.
	assert.Contains(t, buf.String(), "batch=56")

	a, b := iota32(777), iota32(777)
	sum := make([]float32, len(a))
	ParallelTransform2(pool, a, b, sum, wide.Add[float32, wide.RegF32x8], Options{MinParallel: 64, Batch: 1})
	for i := range sum {
		require.Equal(t, a[i]+b[i], sum[i], "index %d", i)
	}
}

func TestParallelTransformLogsChunking(t *testing.T) {
	var buf bytes.Buffer
	wide.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer wide.SetLogger(nil)

	pool := workerpool.New(2)
	defer pool.Close()

	src := iota32(100)
	dst := make([]float32, 100)
	ParallelTransform(pool, src, dst, squarePlus, Options{MinParallel: 1000})
	assert.NotContains(t, buf.String(), "parallel transform", "short slices stay serial")

	ParallelTransform(pool, src, dst, squarePlus, Options{MinParallel: 10})
	assert.Contains(t, buf.String(), "parallel transform")
	assert.Contains(t, buf.String(), "n=100")
}

func TestParallelTransformNilPool(t *testing.T) {
	src := iota32(50)
	dst := make([]float32, 50)
	ParallelTransform(nil, src, dst, squarePlus, Options{})
	assert.Equal(t, src[49]*src[49]+src[49], dst[49])
}

func TestMinParallelFromEnv(t *testing.T) {
	assert.Equal(t, 5, Options{MinParallel: 5}.minParallel())
	// The environment is read once per process; the default applies
	// unless the variable was set before the first use.
	assert.Positive(t, Options{}.minParallel())
}

func BenchmarkTransform(b *testing.B) {
	src := iota32(4096)
	dst := make([]float32, len(src))
	for b.Loop() {
		Transform(src, dst, squarePlus)
	}
}
