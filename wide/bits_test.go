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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReinterpretByteOrder(t *testing.T) {
	v := U32x4FromArray([4]uint32{0x04030201, 0x08070605, 0x0C0B0A09, 0x100F0E0D})
	b := Reinterpret[uint8, RegU8x16](v)
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, want, b.Lanes())

	back := Reinterpret[uint32, RegU32x4](b)
	assert.Equal(t, v.Lanes(), back.Lanes())

	wide := Reinterpret[uint64, RegU64x2](v)
	assert.Equal(t, []uint64{0x0807060504030201, 0x100F0E0D0C0B0A09}, wide.Lanes())
}

func TestReinterpretSizeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Reinterpret[uint8, RegU8x32](U32x4Zero())
	})
}

func TestFloatBitsRoundTrip(t *testing.T) {
	f := F32x4FromArray([4]float32{1, -2, float32(math.Inf(1)), 0.15625})
	bits := F32x4ToBits(f)
	assert.Equal(t, []uint32{0x3F800000, 0xC0000000, 0x7F800000, 0x3E200000}, bits.Lanes())
	assert.Equal(t, f.Lanes(), F32x4FromBits(bits).Lanes())
}

func TestFloatIntConversions(t *testing.T) {
	f := F32x8FromArray([8]float32{0.5, 1.5, -2.5, 2.6, -2.6, float32(math.NaN()), 3e9, -3e9})
	assert.Equal(t,
		[]int32{0, 2, -2, 3, -3, math.MinInt32, math.MinInt32, math.MinInt32},
		F32x8RoundInt(f).Lanes())
	assert.Equal(t,
		[]int32{0, 1, -2, 2, -2, math.MinInt32, math.MinInt32, math.MinInt32},
		F32x8TruncInt(f).Lanes())

	i := I64x2FromArray([2]int64{-7, 1 << 53})
	assert.Equal(t, []float64{-7, 1 << 53}, F64x2FromInt(i).Lanes())

	d := F64x4FromArray([4]float64{1e300, -0.5, 0.5, 1.5})
	assert.Equal(t, []int64{math.MinInt64, 0, 0, 2}, F64x4RoundInt(d).Lanes())
}

func TestBitLevelHelpers(t *testing.T) {
	one := F64x2Splat(1)
	// Adding 1 to the exponent field doubles the value.
	exp1 := SetBits[float64, RegF64x2](1 << 52)
	assert.Equal(t, []float64{2, 2}, AddBits(one, exp1).Lanes())
	assert.Equal(t, []float64{0.5, 0.5}, SubBits(one, exp1).Lanes())

	n := NearestInt(F32x4FromArray([4]float32{2.5, -1, 7.49, 100}))
	assert.Equal(t, []float32{2, -1, 7, 100}, IntToFloat(n).Lanes())

	tr := TruncInt(F32x4FromArray([4]float32{2.9, -1.9, 0.1, -0.1}))
	assert.Equal(t, []float32{2, -1, 0, 0}, IntToFloat(tr).Lanes())
}

func TestFMA32(t *testing.T) {
	tests := []struct {
		a, b, c float32
	}{
		{1 + 1.0/(1<<23), 1 - 1.0/(1<<23), -1},
		{3, 1.0 / 3, -1},
		{0.1, 10, -1},
		{math.MaxFloat32, 2, -math.MaxFloat32},
		{1e-30, 1e-30, 1e-45},
		{-0.0, 1, 0},
		{1.5, 1.5, 1.5},
	}
	for _, tt := range tests {
		// These cases round the same way through float64.
		want := float32(math.FMA(float64(tt.a), float64(tt.b), float64(tt.c)))
		got := fma32(tt.a, tt.b, tt.c)
		if got != want && !(math.IsNaN(float64(got)) && math.IsNaN(float64(want))) {
			t.Errorf("fma32(%g, %g, %g) = %g, want %g", tt.a, tt.b, tt.c, got, want)
		}
	}
}

func TestFMA32DoubleRoundingCase(t *testing.T) {
	// The exact result is 1 + 2^-24 + 2^-70, just above the float32 tie
	// between 1 and 1 + 2^-23. Rounding to float64 first lands on the tie
	// and the float32 rounding then goes down to 1.
	a := float32(1 + 1.0/(1<<23))
	b := float32(1 - 1.0/(1<<24))
	c := float32(1.0/(1<<47) + 1.0/(1<<70))
	want := float32(1 + 1.0/(1<<23))

	if got := fma32(a, b, c); got != want {
		t.Errorf("fma32: got %.10g, want %.10g", got, want)
	}
	if naive := float32(math.FMA(float64(a), float64(b), float64(c))); naive == want {
		t.Errorf("float64 FMA unexpectedly exact: %.10g", naive)
	}
	v := MulAdd(F32x8Splat(a), F32x8Splat(b), F32x8Splat(c))
	if got := v.Lane(0); got != want {
		t.Errorf("MulAdd: got %.10g, want %.10g", got, want)
	}
}
