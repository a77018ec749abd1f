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

// ArrayOf is the set of Go array types an Array can hold.
type ArrayOf[T Lanes] interface {
	~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Array is the scalar representation: a plain Go array processed one lane
// at a time. It is the base case of the composition and the only
// representation used by noasm builds.
type Array[T Lanes, A ArrayOf[T]] struct {
	v A
}

func (a Array[T, A]) unary(f func(T) T) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = f(a.v[i])
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) binary(b Array[T, A], f func(T, T) T) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = f(a.v[i], b.v[i])
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) shift(n uint, f func(T, uint) T) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = f(a.v[i], n)
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) NumLanes() int {
	return len(a.v)
}

func (a Array[T, A]) Lane(i int) T {
	return a.v[i]
}

func (a Array[T, A]) WithLane(i int, x T) Array[T, A] {
	a.v[i] = x
	return a
}

func (Array[T, A]) Splat(x T) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = x
	}
	return Array[T, A]{v: out}
}

func (Array[T, A]) LoadSlice(src []T) Array[T, A] {
	var out A
	checkLen(len(src), len(out))
	for i := 0; i < len(out); i++ {
		out[i] = src[i]
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) StoreSlice(dst []T) {
	checkLen(len(dst), len(a.v))
	for i := 0; i < len(a.v); i++ {
		dst[i] = a.v[i]
	}
}

func (a Array[T, A]) Add(b Array[T, A]) Array[T, A] { return a.binary(b, addLane[T]) }
func (a Array[T, A]) Sub(b Array[T, A]) Array[T, A] { return a.binary(b, subLane[T]) }
func (a Array[T, A]) Mul(b Array[T, A]) Array[T, A] { return a.binary(b, mulLane[T]) }
func (a Array[T, A]) Div(b Array[T, A]) Array[T, A] { return a.binary(b, divLane[T]) }
func (a Array[T, A]) Min(b Array[T, A]) Array[T, A] { return a.binary(b, minLane[T]) }
func (a Array[T, A]) Max(b Array[T, A]) Array[T, A] { return a.binary(b, maxLane[T]) }

func (a Array[T, A]) MulAdd(b, c Array[T, A]) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = fmaLane(a.v[i], b.v[i], c.v[i])
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) Neg() Array[T, A]            { return a.unary(negLane[T]) }
func (a Array[T, A]) Abs() Array[T, A]            { return a.unary(absLane[T]) }
func (a Array[T, A]) Sqrt() Array[T, A]           { return a.unary(sqrtLane[T]) }
func (a Array[T, A]) Round() Array[T, A]          { return a.unary(roundLane[T]) }
func (a Array[T, A]) Floor() Array[T, A]          { return a.unary(floorLane[T]) }
func (a Array[T, A]) Ceil() Array[T, A]           { return a.unary(ceilLane[T]) }
func (a Array[T, A]) Trunc() Array[T, A]          { return a.unary(truncLane[T]) }
func (a Array[T, A]) ConvertToInt() Array[T, A]   { return a.unary(toIntLane[T]) }
func (a Array[T, A]) ConvertFromInt() Array[T, A] { return a.unary(fromIntLane[T]) }

func (a Array[T, A]) IntAdd(b Array[T, A]) Array[T, A] { return a.binary(b, intAddLane[T]) }
func (a Array[T, A]) IntSub(b Array[T, A]) Array[T, A] { return a.binary(b, intSubLane[T]) }

func (a Array[T, A]) And(b Array[T, A]) Array[T, A]    { return a.binary(b, andLane[T]) }
func (a Array[T, A]) Or(b Array[T, A]) Array[T, A]     { return a.binary(b, orLane[T]) }
func (a Array[T, A]) Xor(b Array[T, A]) Array[T, A]    { return a.binary(b, xorLane[T]) }
func (a Array[T, A]) AndNot(b Array[T, A]) Array[T, A] { return a.binary(b, andNotLane[T]) }
func (a Array[T, A]) Not() Array[T, A]                 { return a.unary(notLane[T]) }

func (a Array[T, A]) ShiftLeft(n uint) Array[T, A]  { return a.shift(n, shlLane[T]) }
func (a Array[T, A]) ShiftRight(n uint) Array[T, A] { return a.shift(n, shrLane[T]) }
func (a Array[T, A]) ShiftRightLogical(n uint) Array[T, A] {
	return a.shift(n, shrLogicalLane[T])
}

func (a Array[T, A]) Eq(b Array[T, A]) Array[T, A] { return a.binary(b, eqLane[T]) }
func (a Array[T, A]) Ne(b Array[T, A]) Array[T, A] { return a.binary(b, neLane[T]) }
func (a Array[T, A]) Lt(b Array[T, A]) Array[T, A] { return a.binary(b, ltLane[T]) }
func (a Array[T, A]) Le(b Array[T, A]) Array[T, A] { return a.binary(b, leLane[T]) }
func (a Array[T, A]) Gt(b Array[T, A]) Array[T, A] { return a.binary(b, gtLane[T]) }
func (a Array[T, A]) Ge(b Array[T, A]) Array[T, A] { return a.binary(b, geLane[T]) }
func (a Array[T, A]) IsNaN() Array[T, A]           { return a.unary(nanLane[T]) }

func (a Array[T, A]) Select(yes, no Array[T, A]) Array[T, A] {
	var out A
	for i := 0; i < len(out); i++ {
		out[i] = selectLane(a.v[i], yes.v[i], no.v[i])
	}
	return Array[T, A]{v: out}
}

func (a Array[T, A]) SignMask() uint64 {
	var m uint64
	for i := 0; i < len(a.v); i++ {
		if signSet(a.v[i]) {
			m |= 1 << uint(i)
		}
	}
	return m
}
