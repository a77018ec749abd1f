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

import "simd/archsimd"

// Hardware 256-bit registers. An operation runs as an AVX2 instruction when
// that instruction's result is identical to the scalar lane definition for
// every input. Otherwise it goes through the shared lane helpers on an
// Array copy of the register.

type (
	arrF32x8 = Array[float32, [8]float32]
	arrF64x4 = Array[float64, [4]float64]
	arrI32x8 = Array[int32, [8]int32]
)

var (
	f32x8SignBits = archsimd.BroadcastInt32x8(-0x80000000)
	f32x8AbsBits  = archsimd.BroadcastInt32x8(0x7FFFFFFF)
	i32x8Ones     = archsimd.BroadcastInt32x8(-1)
	i32x8Zero     = archsimd.BroadcastInt32x8(0)

	f64x4SignBits = archsimd.BroadcastInt64x4(-0x8000000000000000)
	f64x4AbsBits  = archsimd.BroadcastInt64x4(0x7FFFFFFFFFFFFFFF)
	i64x4Ones     = archsimd.BroadcastInt64x4(-1)
	i64x4Zero     = archsimd.BroadcastInt64x4(0)
)

// F32x8Native is an eight-lane float32 AVX register.
type F32x8Native struct {
	v archsimd.Float32x8
}

func (a F32x8Native) arr() arrF32x8 {
	var out arrF32x8
	a.v.StoreSlice(out.v[:])
	return out
}

func f32x8FromArr(a arrF32x8) F32x8Native {
	return F32x8Native{v: archsimd.LoadFloat32x8Slice(a.v[:])}
}

func f32x8FromMask(m archsimd.Mask32x8) F32x8Native {
	return F32x8Native{v: i32x8Ones.AsFloat32x8().Merge(i32x8Zero.AsFloat32x8(), m)}
}

func (a F32x8Native) bits() archsimd.Int32x8 { return a.v.AsInt32x8() }

func f32x8FromBits(b archsimd.Int32x8) F32x8Native { return F32x8Native{v: b.AsFloat32x8()} }

// signMask is true in lanes whose sign bit is set.
func (a F32x8Native) signMask() archsimd.Mask32x8 {
	return a.bits().And(f32x8SignBits).Equal(f32x8SignBits)
}

func (F32x8Native) NumLanes() int       { return 8 }
func (a F32x8Native) Lane(i int) float32 { return a.arr().Lane(i) }

func (a F32x8Native) WithLane(i int, x float32) F32x8Native {
	return f32x8FromArr(a.arr().WithLane(i, x))
}

func (F32x8Native) Splat(x float32) F32x8Native {
	return F32x8Native{v: archsimd.BroadcastFloat32x8(x)}
}

func (F32x8Native) LoadSlice(src []float32) F32x8Native {
	checkLen(len(src), 8)
	return F32x8Native{v: archsimd.LoadFloat32x8Slice(src)}
}

func (a F32x8Native) StoreSlice(dst []float32) {
	checkLen(len(dst), 8)
	a.v.StoreSlice(dst)
}

func (a F32x8Native) Add(b F32x8Native) F32x8Native { return F32x8Native{v: a.v.Add(b.v)} }
func (a F32x8Native) Sub(b F32x8Native) F32x8Native { return F32x8Native{v: a.v.Sub(b.v)} }
func (a F32x8Native) Mul(b F32x8Native) F32x8Native { return F32x8Native{v: a.v.Mul(b.v)} }
func (a F32x8Native) Div(b F32x8Native) F32x8Native { return F32x8Native{v: a.v.Div(b.v)} }

func (a F32x8Native) MulAdd(b, c F32x8Native) F32x8Native {
	return F32x8Native{v: a.v.MulAdd(b.v, c.v)}
}

// Min keeps a where a < b, which returns b for NaN operands like the
// scalar definition.
func (a F32x8Native) Min(b F32x8Native) F32x8Native {
	return F32x8Native{v: a.v.Merge(b.v, a.v.Less(b.v))}
}

func (a F32x8Native) Max(b F32x8Native) F32x8Native {
	return F32x8Native{v: a.v.Merge(b.v, a.v.Greater(b.v))}
}

func (a F32x8Native) Neg() F32x8Native  { return f32x8FromBits(a.bits().Xor(f32x8SignBits)) }
func (a F32x8Native) Abs() F32x8Native  { return f32x8FromBits(a.bits().And(f32x8AbsBits)) }
func (a F32x8Native) Sqrt() F32x8Native { return F32x8Native{v: a.v.Sqrt()} }

func (a F32x8Native) Round() F32x8Native { return F32x8Native{v: a.v.RoundToEven()} }
func (a F32x8Native) Floor() F32x8Native { return f32x8FromArr(a.arr().Floor()) }
func (a F32x8Native) Ceil() F32x8Native  { return f32x8FromArr(a.arr().Ceil()) }
func (a F32x8Native) Trunc() F32x8Native { return f32x8FromArr(a.arr().Trunc()) }

// ConvertToInt rounds first, so the conversion instruction only ever sees
// integral values. Out-of-range lanes become 0x80000000 either way.
func (a F32x8Native) ConvertToInt() F32x8Native {
	return f32x8FromBits(a.v.RoundToEven().ConvertToInt32())
}

func (a F32x8Native) ConvertFromInt() F32x8Native {
	return F32x8Native{v: a.bits().ConvertToFloat32()}
}

func (a F32x8Native) IntAdd(b F32x8Native) F32x8Native {
	return f32x8FromBits(a.bits().Add(b.bits()))
}

func (a F32x8Native) IntSub(b F32x8Native) F32x8Native {
	return f32x8FromBits(a.bits().Sub(b.bits()))
}

func (a F32x8Native) And(b F32x8Native) F32x8Native { return f32x8FromBits(a.bits().And(b.bits())) }
func (a F32x8Native) Or(b F32x8Native) F32x8Native  { return f32x8FromBits(a.bits().Or(b.bits())) }
func (a F32x8Native) Xor(b F32x8Native) F32x8Native { return f32x8FromBits(a.bits().Xor(b.bits())) }
func (a F32x8Native) Not() F32x8Native              { return f32x8FromBits(a.bits().Xor(i32x8Ones)) }

func (a F32x8Native) AndNot(b F32x8Native) F32x8Native {
	return f32x8FromBits(b.bits().And(a.bits().Xor(i32x8Ones)))
}

func (a F32x8Native) ShiftLeft(n uint) F32x8Native {
	return f32x8FromArr(a.arr().ShiftLeft(n))
}

func (a F32x8Native) ShiftRight(n uint) F32x8Native {
	return f32x8FromArr(a.arr().ShiftRight(n))
}

func (a F32x8Native) ShiftRightLogical(n uint) F32x8Native {
	return f32x8FromArr(a.arr().ShiftRightLogical(n))
}

func (a F32x8Native) Eq(b F32x8Native) F32x8Native { return f32x8FromMask(a.v.Equal(b.v)) }
func (a F32x8Native) Lt(b F32x8Native) F32x8Native { return f32x8FromMask(a.v.Less(b.v)) }
func (a F32x8Native) Le(b F32x8Native) F32x8Native { return f32x8FromMask(a.v.LessEqual(b.v)) }
func (a F32x8Native) Gt(b F32x8Native) F32x8Native { return f32x8FromMask(a.v.Greater(b.v)) }
func (a F32x8Native) Ge(b F32x8Native) F32x8Native { return f32x8FromMask(a.v.GreaterEqual(b.v)) }

// Ne is ordered: lanes holding a NaN compare false.
func (a F32x8Native) Ne(b F32x8Native) F32x8Native {
	return f32x8FromMask(a.v.Less(b.v).Or(a.v.Greater(b.v)))
}

func (a F32x8Native) IsNaN() F32x8Native {
	return F32x8Native{v: i32x8Zero.AsFloat32x8().Merge(i32x8Ones.AsFloat32x8(), a.v.Equal(a.v))}
}

func (a F32x8Native) Select(yes, no F32x8Native) F32x8Native {
	return F32x8Native{v: yes.v.Merge(no.v, a.signMask())}
}

func (a F32x8Native) SignMask() uint64 {
	return uint64(a.signMask().ToBits())
}

// F64x4Native is a four-lane float64 AVX register.
type F64x4Native struct {
	v archsimd.Float64x4
}

func (a F64x4Native) arr() arrF64x4 {
	var out arrF64x4
	a.v.StoreSlice(out.v[:])
	return out
}

func f64x4FromArr(a arrF64x4) F64x4Native {
	return F64x4Native{v: archsimd.LoadFloat64x4Slice(a.v[:])}
}

func f64x4FromMask(m archsimd.Mask64x4) F64x4Native {
	return F64x4Native{v: i64x4Ones.AsFloat64x4().Merge(i64x4Zero.AsFloat64x4(), m)}
}

func (a F64x4Native) bits() archsimd.Int64x4 { return a.v.AsInt64x4() }

func f64x4FromBits(b archsimd.Int64x4) F64x4Native { return F64x4Native{v: b.AsFloat64x4()} }

func (a F64x4Native) signMask() archsimd.Mask64x4 {
	return a.bits().And(f64x4SignBits).Equal(f64x4SignBits)
}

func (F64x4Native) NumLanes() int       { return 4 }
func (a F64x4Native) Lane(i int) float64 { return a.arr().Lane(i) }

func (a F64x4Native) WithLane(i int, x float64) F64x4Native {
	return f64x4FromArr(a.arr().WithLane(i, x))
}

func (F64x4Native) Splat(x float64) F64x4Native {
	return F64x4Native{v: archsimd.BroadcastFloat64x4(x)}
}

func (F64x4Native) LoadSlice(src []float64) F64x4Native {
	checkLen(len(src), 4)
	return F64x4Native{v: archsimd.LoadFloat64x4Slice(src)}
}

func (a F64x4Native) StoreSlice(dst []float64) {
	checkLen(len(dst), 4)
	a.v.StoreSlice(dst)
}

func (a F64x4Native) Add(b F64x4Native) F64x4Native { return F64x4Native{v: a.v.Add(b.v)} }
func (a F64x4Native) Sub(b F64x4Native) F64x4Native { return F64x4Native{v: a.v.Sub(b.v)} }
func (a F64x4Native) Mul(b F64x4Native) F64x4Native { return F64x4Native{v: a.v.Mul(b.v)} }
func (a F64x4Native) Div(b F64x4Native) F64x4Native { return F64x4Native{v: a.v.Div(b.v)} }

func (a F64x4Native) MulAdd(b, c F64x4Native) F64x4Native {
	return F64x4Native{v: a.v.MulAdd(b.v, c.v)}
}

func (a F64x4Native) Min(b F64x4Native) F64x4Native {
	return F64x4Native{v: a.v.Merge(b.v, a.v.Less(b.v))}
}

func (a F64x4Native) Max(b F64x4Native) F64x4Native {
	return F64x4Native{v: a.v.Merge(b.v, a.v.Greater(b.v))}
}

func (a F64x4Native) Neg() F64x4Native  { return f64x4FromBits(a.bits().Xor(f64x4SignBits)) }
func (a F64x4Native) Abs() F64x4Native  { return f64x4FromBits(a.bits().And(f64x4AbsBits)) }
func (a F64x4Native) Sqrt() F64x4Native { return F64x4Native{v: a.v.Sqrt()} }

func (a F64x4Native) Round() F64x4Native { return F64x4Native{v: a.v.RoundToEven()} }
func (a F64x4Native) Floor() F64x4Native { return f64x4FromArr(a.arr().Floor()) }
func (a F64x4Native) Ceil() F64x4Native  { return f64x4FromArr(a.arr().Ceil()) }
func (a F64x4Native) Trunc() F64x4Native { return f64x4FromArr(a.arr().Trunc()) }

// AVX2 has no float64 to int64 conversion.
func (a F64x4Native) ConvertToInt() F64x4Native   { return f64x4FromArr(a.arr().ConvertToInt()) }
func (a F64x4Native) ConvertFromInt() F64x4Native { return f64x4FromArr(a.arr().ConvertFromInt()) }

func (a F64x4Native) IntAdd(b F64x4Native) F64x4Native {
	return f64x4FromBits(a.bits().Add(b.bits()))
}

func (a F64x4Native) IntSub(b F64x4Native) F64x4Native {
	return f64x4FromBits(a.bits().Sub(b.bits()))
}

func (a F64x4Native) And(b F64x4Native) F64x4Native { return f64x4FromBits(a.bits().And(b.bits())) }
func (a F64x4Native) Or(b F64x4Native) F64x4Native  { return f64x4FromBits(a.bits().Or(b.bits())) }
func (a F64x4Native) Xor(b F64x4Native) F64x4Native { return f64x4FromBits(a.bits().Xor(b.bits())) }
func (a F64x4Native) Not() F64x4Native              { return f64x4FromBits(a.bits().Xor(i64x4Ones)) }

func (a F64x4Native) AndNot(b F64x4Native) F64x4Native {
	return f64x4FromBits(b.bits().And(a.bits().Xor(i64x4Ones)))
}

func (a F64x4Native) ShiftLeft(n uint) F64x4Native {
	return f64x4FromArr(a.arr().ShiftLeft(n))
}

func (a F64x4Native) ShiftRight(n uint) F64x4Native {
	return f64x4FromArr(a.arr().ShiftRight(n))
}

func (a F64x4Native) ShiftRightLogical(n uint) F64x4Native {
	return f64x4FromArr(a.arr().ShiftRightLogical(n))
}

func (a F64x4Native) Eq(b F64x4Native) F64x4Native { return f64x4FromMask(a.v.Equal(b.v)) }
func (a F64x4Native) Lt(b F64x4Native) F64x4Native { return f64x4FromMask(a.v.Less(b.v)) }
func (a F64x4Native) Le(b F64x4Native) F64x4Native { return f64x4FromMask(a.v.LessEqual(b.v)) }
func (a F64x4Native) Gt(b F64x4Native) F64x4Native { return f64x4FromMask(a.v.Greater(b.v)) }
func (a F64x4Native) Ge(b F64x4Native) F64x4Native { return f64x4FromMask(a.v.GreaterEqual(b.v)) }

func (a F64x4Native) Ne(b F64x4Native) F64x4Native {
	return f64x4FromMask(a.v.Less(b.v).Or(a.v.Greater(b.v)))
}

func (a F64x4Native) IsNaN() F64x4Native {
	return F64x4Native{v: i64x4Zero.AsFloat64x4().Merge(i64x4Ones.AsFloat64x4(), a.v.Equal(a.v))}
}

func (a F64x4Native) Select(yes, no F64x4Native) F64x4Native {
	return F64x4Native{v: yes.v.Merge(no.v, a.signMask())}
}

func (a F64x4Native) SignMask() uint64 {
	return uint64(a.signMask().ToBits())
}

// I32x8Native is an eight-lane int32 AVX register. Arithmetic without a
// lane-exact AVX2 form runs on the shared lane helpers.
type I32x8Native struct {
	v archsimd.Int32x8
}

func (a I32x8Native) arr() arrI32x8 {
	var out arrI32x8
	a.v.StoreSlice(out.v[:])
	return out
}

func i32x8FromArr(a arrI32x8) I32x8Native {
	return I32x8Native{v: archsimd.LoadInt32x8Slice(a.v[:])}
}

func i32x8FromMask(m archsimd.Mask32x8) I32x8Native {
	return I32x8Native{v: i32x8Ones.AsFloat32x8().Merge(i32x8Zero.AsFloat32x8(), m).AsInt32x8()}
}

func (a I32x8Native) signMask() archsimd.Mask32x8 {
	return a.v.And(f32x8SignBits).Equal(f32x8SignBits)
}

func (I32x8Native) NumLanes() int     { return 8 }
func (a I32x8Native) Lane(i int) int32 { return a.arr().Lane(i) }

func (a I32x8Native) WithLane(i int, x int32) I32x8Native {
	return i32x8FromArr(a.arr().WithLane(i, x))
}

func (I32x8Native) Splat(x int32) I32x8Native {
	return I32x8Native{v: archsimd.BroadcastInt32x8(x)}
}

func (I32x8Native) LoadSlice(src []int32) I32x8Native {
	checkLen(len(src), 8)
	return I32x8Native{v: archsimd.LoadInt32x8Slice(src)}
}

func (a I32x8Native) StoreSlice(dst []int32) {
	checkLen(len(dst), 8)
	a.v.StoreSlice(dst)
}

func (a I32x8Native) Add(b I32x8Native) I32x8Native    { return I32x8Native{v: a.v.Add(b.v)} }
func (a I32x8Native) Sub(b I32x8Native) I32x8Native    { return I32x8Native{v: a.v.Sub(b.v)} }
func (a I32x8Native) IntAdd(b I32x8Native) I32x8Native { return I32x8Native{v: a.v.Add(b.v)} }
func (a I32x8Native) IntSub(b I32x8Native) I32x8Native { return I32x8Native{v: a.v.Sub(b.v)} }

func (a I32x8Native) Mul(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Mul(b.arr())) }
func (a I32x8Native) Div(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Div(b.arr())) }
func (a I32x8Native) Min(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Min(b.arr())) }
func (a I32x8Native) Max(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Max(b.arr())) }

func (a I32x8Native) MulAdd(b, c I32x8Native) I32x8Native {
	return i32x8FromArr(a.arr().MulAdd(b.arr(), c.arr()))
}

func (a I32x8Native) Neg() I32x8Native  { return I32x8Native{v: i32x8Zero.Sub(a.v)} }
func (a I32x8Native) Abs() I32x8Native  { return i32x8FromArr(a.arr().Abs()) }
func (a I32x8Native) Sqrt() I32x8Native { return i32x8FromArr(a.arr().Sqrt()) }

func (a I32x8Native) Round() I32x8Native          { return a }
func (a I32x8Native) Floor() I32x8Native          { return a }
func (a I32x8Native) Ceil() I32x8Native           { return a }
func (a I32x8Native) Trunc() I32x8Native          { return a }
func (a I32x8Native) ConvertToInt() I32x8Native   { return a }
func (a I32x8Native) ConvertFromInt() I32x8Native { return a }

func (a I32x8Native) And(b I32x8Native) I32x8Native { return I32x8Native{v: a.v.And(b.v)} }
func (a I32x8Native) Or(b I32x8Native) I32x8Native  { return I32x8Native{v: a.v.Or(b.v)} }
func (a I32x8Native) Xor(b I32x8Native) I32x8Native { return I32x8Native{v: a.v.Xor(b.v)} }
func (a I32x8Native) Not() I32x8Native              { return I32x8Native{v: a.v.Xor(i32x8Ones)} }

func (a I32x8Native) AndNot(b I32x8Native) I32x8Native {
	return I32x8Native{v: b.v.And(a.v.Xor(i32x8Ones))}
}

func (a I32x8Native) ShiftLeft(n uint) I32x8Native {
	return i32x8FromArr(a.arr().ShiftLeft(n))
}

func (a I32x8Native) ShiftRight(n uint) I32x8Native {
	return i32x8FromArr(a.arr().ShiftRight(n))
}

func (a I32x8Native) ShiftRightLogical(n uint) I32x8Native {
	return i32x8FromArr(a.arr().ShiftRightLogical(n))
}

func (a I32x8Native) Eq(b I32x8Native) I32x8Native { return i32x8FromMask(a.v.Equal(b.v)) }

func (a I32x8Native) Ne(b I32x8Native) I32x8Native {
	return I32x8Native{v: a.Eq(b).v.Xor(i32x8Ones)}
}

func (a I32x8Native) Lt(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Lt(b.arr())) }
func (a I32x8Native) Le(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Le(b.arr())) }
func (a I32x8Native) Gt(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Gt(b.arr())) }
func (a I32x8Native) Ge(b I32x8Native) I32x8Native { return i32x8FromArr(a.arr().Ge(b.arr())) }

func (I32x8Native) IsNaN() I32x8Native { return I32x8Native{v: i32x8Zero} }

func (a I32x8Native) Select(yes, no I32x8Native) I32x8Native {
	v := yes.v.AsFloat32x8().Merge(no.v.AsFloat32x8(), a.signMask())
	return I32x8Native{v: v.AsInt32x8()}
}

func (a I32x8Native) SignMask() uint64 {
	return uint64(a.signMask().ToBits())
}
