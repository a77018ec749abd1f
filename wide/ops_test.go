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
)

func TestAddF32x4(t *testing.T) {
	a := F32x4FromArray([4]float32{1, 2, 3, 4})
	b := F32x4FromArray([4]float32{5, 6, 7, 8})
	got := F32x4ToArray(Add(a, b))
	want := [4]float32{6, 8, 10, 12}
	if got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
}

func TestLessThanMaskBits(t *testing.T) {
	a := F32x4FromArray([4]float32{1, 5, 3, 7})
	b := F32x4FromArray([4]float32{2, 4, 3, 8})
	m := LessThan(a, b)

	raw := Reinterpret[uint32, RegU32x4](MaskToVec(m))
	want := [4]uint32{0xFFFFFFFF, 0, 0, 0xFFFFFFFF}
	if got := U32x4ToArray(raw); got != want {
		t.Errorf("LessThan lanes: got %#x, want %#x", got, want)
	}
	if got := m.Bits(); got != 0b1001 {
		t.Errorf("Bits: got %04b, want 1001", got)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	v := F32x4FromArray([4]float32{0.5, 1.5, 3.5, 4.5})
	want := [4]float32{0, 2, 4, 4}
	if got := F32x4ToArray(Round(v)); got != want {
		t.Errorf("Round: got %v, want %v", got, want)
	}

	v = F32x4FromArray([4]float32{1.4, 2.5, 3.6, 4.49})
	want = [4]float32{1, 2, 4, 4}
	if got := F32x4ToArray(RoundToEven(v)); got != want {
		t.Errorf("RoundToEven: got %v, want %v", got, want)
	}
}

func TestBlendAlternating(t *testing.T) {
	a := F32x4FromArray([4]float32{1, 2, 3, 4})
	b := F32x4FromArray([4]float32{5, 6, 7, 8})
	m := MaskFromBits[float32, RegF32x4](0b0101)
	want := [4]float32{1, 6, 3, 8}
	if got := F32x4ToArray(Blend(m, a, b)); got != want {
		t.Errorf("Blend: got %v, want %v", got, want)
	}
}

func TestIntegerWraparound(t *testing.T) {
	a := I8x16Splat(127)
	b := I8x16Splat(1)
	if got := Add(a, b).Lane(3); got != -128 {
		t.Errorf("int8 127+1: got %d, want -128", got)
	}
	u := U16x8Splat(0)
	if got := Sub(u, U16x8Splat(1)).Lane(0); got != math.MaxUint16 {
		t.Errorf("uint16 0-1: got %d, want %d", got, math.MaxUint16)
	}
	m := Mul(I32x4Splat(math.MaxInt32), I32x4Splat(2))
	if got := m.Lane(0); got != -2 {
		t.Errorf("int32 MaxInt32*2: got %d, want -2", got)
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := F32x4FromArray([4]float32{nan, 1, 2, nan})
	b := F32x4FromArray([4]float32{1, nan, 3, nan})

	// The second operand wins whenever the comparison is false.
	mins := F32x4ToArray(Min(a, b))
	if mins[0] != 1 || !math.IsNaN(float64(mins[1])) || mins[2] != 2 || !math.IsNaN(float64(mins[3])) {
		t.Errorf("Min: got %v", mins)
	}
	maxs := F32x4ToArray(Max(a, b))
	if maxs[0] != 1 || !math.IsNaN(float64(maxs[1])) || maxs[2] != 3 {
		t.Errorf("Max: got %v", maxs)
	}
}

func TestClamp(t *testing.T) {
	v := F64x4FromArray([4]float64{-3, 0.5, 2, 10})
	got := F64x4ToArray(Clamp(v, F64x4Splat(0), F64x4Splat(1)))
	want := [4]float64{0, 0.5, 1, 1}
	if got != want {
		t.Errorf("Clamp: got %v, want %v", got, want)
	}
}

func TestMulAddVariants(t *testing.T) {
	a := F64x2FromArray([2]float64{2, 3})
	b := F64x2FromArray([2]float64{4, 5})
	c := F64x2FromArray([2]float64{1, 1})
	tests := []struct {
		name string
		got  F64x2
		want [2]float64
	}{
		{"MulAdd", MulAdd(a, b, c), [2]float64{9, 16}},
		{"MulSub", MulSub(a, b, c), [2]float64{7, 14}},
		{"MulNegAdd", MulNegAdd(a, b, c), [2]float64{-7, -14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F64x2ToArray(tt.got); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulAddSingleRounding(t *testing.T) {
	// a*b is 1 - 2^-46 exactly; a separate multiply rounds it to 1.
	x := float32(1 + 1.0/(1<<23))
	y := float32(1 - 1.0/(1<<23))
	a, b, c := F32x8Splat(x), F32x8Splat(y), F32x8Splat(-1)
	want := float32(-1.0 / (1 << 46))
	if got := MulAdd(a, b, c).Lane(5); got != want {
		t.Errorf("MulAdd: got %g, want %g", got, want)
	}
}

func TestSignOps(t *testing.T) {
	mag := F32x4FromArray([4]float32{1, -2, 3, -4})
	sign := F32x4FromArray([4]float32{-1, -1, 1, 1})
	if got, want := F32x4ToArray(CopySign(mag, sign)), [4]float32{-1, -2, 3, 4}; got != want {
		t.Errorf("CopySign: got %v, want %v", got, want)
	}
	if got, want := F32x4ToArray(FlipSigns(mag, sign)), [4]float32{-1, 2, 3, -4}; got != want {
		t.Errorf("FlipSigns: got %v, want %v", got, want)
	}
	if got, want := F32x4ToArray(Abs(mag)), [4]float32{1, 2, 3, 4}; got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
	negZero := Neg(F32x4Zero()).Lane(0)
	if !math.Signbit(float64(negZero)) {
		t.Errorf("Neg(0) should be -0, got %v", negZero)
	}
}

func TestRoundingFamily(t *testing.T) {
	v := F64x4FromArray([4]float64{-1.5, -0.5, 0.5, 2.7})
	tests := []struct {
		name string
		fn   func(F64x4) F64x4
		want [4]float64
	}{
		{"Floor", Floor[float64, RegF64x4], [4]float64{-2, -1, 0, 2}},
		{"Ceil", Ceil[float64, RegF64x4], [4]float64{-1, 0, 1, 3}},
		{"Trunc", Trunc[float64, RegF64x4], [4]float64{-1, 0, 0, 2}},
		{"Round", Round[float64, RegF64x4], [4]float64{-2, 0, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F64x4ToArray(tt.fn(v)); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	v := I16x8FromArray([8]int16{1, -1, -32768, 0x4000, 7, -8, 3, 0})
	tests := []struct {
		name string
		got  I16x8
		want [8]int16
	}{
		{"ShiftLeft1", ShiftLeft(v, 1), [8]int16{2, -2, 0, -32768, 14, -16, 6, 0}},
		{"ShiftRight1", ShiftRight(v, 1), [8]int16{0, -1, -16384, 0x2000, 3, -4, 1, 0}},
		{"ShiftRightLogical1", ShiftRightLogical(v, 1), [8]int16{0, 0x7FFF, 0x4000, 0x2000, 3, 0x7FFC, 1, 0}},
		{"ShiftLeft16", ShiftLeft(v, 16), [8]int16{}},
		{"ShiftRight20", ShiftRight(v, 20), [8]int16{0, -1, -1, 0, 0, -1, 0, 0}},
		{"ShiftRightLogical16", ShiftRightLogical(v, 16), [8]int16{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := I16x8ToArray(tt.got); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBitwise(t *testing.T) {
	a := U8x16Splat(0b1100)
	b := U8x16Splat(0b1010)
	tests := []struct {
		name string
		got  U8x16
		want uint8
	}{
		{"And", And(a, b), 0b1000},
		{"Or", Or(a, b), 0b1110},
		{"Xor", Xor(a, b), 0b0110},
		{"AndNot", AndNot(a, b), 0b0010},
		{"Not", Not(a), 0b11110011},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.got.NumLanes() {
				if got := tt.got.Lane(i); got != tt.want {
					t.Fatalf("lane %d: got %08b, want %08b", i, got, tt.want)
				}
			}
		})
	}
}

func TestIntegerSqrt(t *testing.T) {
	v := U32x4FromArray([4]uint32{0, 15, 16, math.MaxUint32})
	want := [4]uint32{0, 3, 4, 65535}
	if got := U32x4ToArray(Sqrt(v)); got != want {
		t.Errorf("Sqrt: got %v, want %v", got, want)
	}
	s := I64x2FromArray([2]int64{-4, 1 << 62})
	if got, want := I64x2ToArray(Sqrt(s)), [2]int64{0, 1 << 31}; got != want {
		t.Errorf("Sqrt: got %v, want %v", got, want)
	}
}

func TestReductions(t *testing.T) {
	v := I32x8FromArray([8]int32{3, -1, 4, 1, -5, 9, 2, 6})
	if got := ReduceSum(v); got != 19 {
		t.Errorf("ReduceSum: got %d, want 19", got)
	}
	if got := ReduceMin(v); got != -5 {
		t.Errorf("ReduceMin: got %d, want -5", got)
	}
	if got := ReduceMax(v); got != 9 {
		t.Errorf("ReduceMax: got %d, want 9", got)
	}
}

func TestLaneAccess(t *testing.T) {
	v := Iota[uint16, RegU16x16]()
	if got := GetLane(v, 11); got != 11 {
		t.Errorf("GetLane: got %d, want 11", got)
	}
	w := WithLane(v, 3, 100)
	if got := w.Lane(3); got != 100 {
		t.Errorf("WithLane: got %d, want 100", got)
	}
	if got := v.Lane(3); got != 3 {
		t.Errorf("WithLane modified its input: lane 3 = %d", got)
	}
	r := Reverse(v)
	if r.Lane(0) != 15 || r.Lane(15) != 0 {
		t.Errorf("Reverse: got %v", r)
	}

	defer func() {
		if recover() == nil {
			t.Error("Lane(16) on a 16-lane vector should panic")
		}
	}()
	v.Lane(16)
}

func TestString(t *testing.T) {
	v := I32x4FromArray([4]int32{1, -2, 3, -4})
	if got, want := v.String(), "[1 -2 3 -4]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	m := LessThan(v, I32x4Zero())
	if got, want := m.String(), "[false true false true]"; got != want {
		t.Errorf("Mask.String: got %q, want %q", got, want)
	}
}
