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

package wide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := make([]float64, 8)
	for i := range src {
		src[i] = float64(i) * 1.25
	}
	v := F64x8Load(src)
	dst := make([]float64, 8)
	Store(v, dst)
	assert.Equal(t, src, dst)

	// Unaligned: start one element in.
	buf := make([]float64, 9)
	copy(buf[1:], src)
	assert.Equal(t, src, F64x8Load(buf[1:]).Lanes())
}

func TestAlignedRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		align int
	}{
		{"F32x4", Alignment[float32, RegF32x4]()},
		{"F32x8", Alignment[float32, RegF32x8]()},
		{"F32x16", Alignment[float32, RegF32x16]()},
	}
	wantAlign := []int{16, 32, 64}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, wantAlign[i], tt.align)
		})
	}

	buf := MakeAligned[float32](16, 64)
	require.True(t, IsAligned(buf, 64))
	require.Len(t, buf, 16)
	for i := range buf {
		buf[i] = float32(i)
	}
	v := F32x16LoadAligned(buf)
	out := MakeAligned[float32](16, 64)
	StoreAligned(Add(v, v), out)
	for i := range out {
		assert.Equal(t, float32(2*i), out[i])
	}
}

func TestAlignedPanics(t *testing.T) {
	buf := MakeAligned[int32](9, 32)
	assert.PanicsWithValue(t, "wide: aligned access needs a 32-byte aligned slice", func() {
		I32x8LoadAligned(buf[1:])
	})
	assert.Panics(t, func() {
		StoreAligned(I32x8Zero(), buf[1:])
	})
	assert.Panics(t, func() { MakeAligned[int32](4, 24) })
	assert.NotPanics(t, func() { I32x8LoadAligned(buf) })
}

func TestShortSlicePanics(t *testing.T) {
	assert.PanicsWithValue(t, "wide: slice of length 3 is shorter than 4 lanes", func() {
		F32x4Load([]float32{1, 2, 3})
	})
	assert.Panics(t, func() {
		F32x4Zero().Store(make([]float32, 2))
	})
}

func TestSetOrder(t *testing.T) {
	fromNew := New[int32, RegI32x4](1, 2, 3, 4)
	fromArray := I32x4FromArray([4]int32{1, 2, 3, 4})
	fromSet := SetHighToLow[int32, RegI32x4](1, 2, 3, 4)

	assert.Equal(t, fromArray.Lanes(), fromNew.Lanes())
	assert.Equal(t, []int32{4, 3, 2, 1}, fromSet.Lanes())
	assert.Equal(t, fromArray.Lanes(), SetHighToLow[int32, RegI32x4](4, 3, 2, 1).Lanes())

	partial := New[int32, RegI32x4](7)
	assert.Equal(t, []int32{7, 0, 0, 0}, partial.Lanes())

	assert.Panics(t, func() { New[int32, RegI32x4](1, 2, 3, 4, 5) })
	assert.Panics(t, func() { SetHighToLow[int32, RegI32x4](1, 2) })
}

func TestReverseLoadStore(t *testing.T) {
	src := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	v := LoadReverse[uint8, RegU8x16](src)
	assert.Equal(t, uint8(15), v.Lane(0))
	assert.Equal(t, uint8(0), v.Lane(15))

	dst := make([]uint8, 16)
	StoreReverse(v, dst)
	assert.Equal(t, src, dst)
}

func TestIota(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Iota[float64, RegF64x4]().Lanes())
	assert.Equal(t, []int16{0, 1, 2, 3, 4, 5, 6, 7}, Iota[int16, RegI16x8]().Lanes())
}

func TestPartialAccess(t *testing.T) {
	src := []float32{1, 2, 3}
	v := LoadN[float32, RegF32x8](src)
	assert.Equal(t, []float32{1, 2, 3, 0, 0, 0, 0, 0}, v.Lanes())

	dst := []float32{-1, -1, -1, -1, -1}
	StoreN(F32x8Splat(9), dst)
	assert.Equal(t, []float32{9, 9, 9, 9, 9}, dst)

	mask := MaskFromBits[float32, RegF32x8](0b10100101)
	full := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, []float32{1, 0, 3, 0, 0, 6, 0, 8}, MaskLoad(mask, full).Lanes())

	out := []float32{0, 0, 0, 0, 0, 0, 0, 0}
	BlendedStore(F32x8Splat(5), mask, out)
	assert.Equal(t, []float32{5, 0, 5, 0, 0, 5, 0, 5}, out)
}

func TestVecBytes(t *testing.T) {
	assert.Equal(t, 16, VecBytes[int8, RegI8x16]())
	assert.Equal(t, 32, VecBytes[uint64, RegU64x4]())
	assert.Equal(t, 64, VecBytes[float64, RegF64x8]())
}
