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

//go:build amd64 && goexperiment.simd && amd64.v3 && !noasm

package wide

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// canonicalNaN rewrites every NaN lane to one pattern. Hardware and the
// scalar helpers agree on which lanes are NaN but not always on payloads.
func canonicalNaN[T Lanes](results map[string][]uint64) map[string][]uint64 {
	if kindOf[T]() != kindFloat {
		return results
	}
	out := make(map[string][]uint64, len(results))
	for op, lanes := range results {
		fixed := make([]uint64, len(lanes))
		for i, b := range lanes {
			if op != "SignMask" && isNaNLane(fromBits[T](b)) && !isMaskPattern[T](b) {
				b = bitsOf(fromBits[T](laneMaskOf[T]() >> 1))
			}
			fixed[i] = b
		}
		out[op] = fixed
	}
	return out
}

func isMaskPattern[T Lanes](b uint64) bool {
	return b == laneMaskOf[T]()
}

func checkNative[T Lanes, A ArrayOf[T], N Register[T, N]](t *testing.T) {
	rng := rand.New(rand.NewPCG(3, uint64(sizeOf[T]())))
	var arr A
	n := len(arr)
	for range 256 {
		a, b, c := randomLanes[T](rng, n), randomLanes[T](rng, n), randomLanes[T](rng, n)
		want := canonicalNaN[T](registerResults[T, Array[T, A]](a, b, c))
		got := canonicalNaN[T](registerResults[T, N](a, b, c))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("native differs from Array (-want +got):\n%s\ninputs:\na=%v\nb=%v\nc=%v", diff, a, b, c)
		}
	}
}

func TestNativeMatchesArray(t *testing.T) {
	t.Run("F32x8Native", checkNative[float32, [8]float32, F32x8Native])
	t.Run("F64x4Native", checkNative[float64, [4]float64, F64x4Native])
	t.Run("I32x8Native", checkNative[int32, [8]int32, I32x8Native])
}
