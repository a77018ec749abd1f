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

import "fmt"

// Equal performs element-wise equality comparison.
func Equal[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Eq(b.r)}
}

// NotEqual performs element-wise inequality comparison. For float lanes
// the comparison is ordered: a NaN operand gives false.
func NotEqual[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Ne(b.r)}
}

// LessThan performs element-wise a < b.
func LessThan[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Lt(b.r)}
}

// LessEqual performs element-wise a <= b.
func LessEqual[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Le(b.r)}
}

// GreaterThan performs element-wise a > b.
func GreaterThan[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Gt(b.r)}
}

// GreaterEqual performs element-wise a >= b.
func GreaterEqual[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Ge(b.r)}
}

// IsNaN returns a mask of the lanes holding NaN.
func IsNaN[T Lanes, R Register[T, R]](v Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: v.r.IsNaN()}
}

// CmpNaN returns a mask of the lanes where a or b is NaN.
func CmpNaN[T Lanes, R Register[T, R]](a, b Vec[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.IsNaN().Or(b.r.IsNaN())}
}

// IsInf returns a mask of the lanes holding positive or negative infinity.
func IsInf[T Lanes, R Register[T, R]](v Vec[T, R]) Mask[T, R] {
	if kindOf[T]() != kindFloat {
		return Mask[T, R]{}
	}
	inf := infBits[T]()
	return Mask[T, R]{r: v.r.Abs().Eq(v.r.Splat(fromBits[T](inf)))}
}

// IsFinite returns a mask of the lanes that are neither NaN nor infinite.
// Integer lanes are always finite.
func IsFinite[T Lanes, R Register[T, R]](v Vec[T, R]) Mask[T, R] {
	var r R
	if kindOf[T]() != kindFloat {
		return Mask[T, R]{r: r.Splat(fromBits[T](laneMaskOf[T]()))}
	}
	// Finite exactly when the exponent field is not all ones.
	exp := r.Splat(fromBits[T](infBits[T]()))
	return Mask[T, R]{r: v.r.And(exp).Eq(exp).Not()}
}

// IsNegative returns a mask of the lanes whose sign bit is set. For float
// lanes this includes -0 and NaNs with the sign bit set.
func IsNegative[T Lanes, R Register[T, R]](v Vec[T, R]) Mask[T, R] {
	var r R
	return Mask[T, R]{r: v.r.Select(r.Splat(fromBits[T](laneMaskOf[T]())), r.Splat(0))}
}

func infBits[T Lanes]() uint64 {
	if sizeOf[T]() == 4 {
		return 0x7F800000
	}
	return 0x7FF0000000000000
}

// IfThenElse selects yes where mask is true and no elsewhere.
func IfThenElse[T Lanes, R Register[T, R]](mask Mask[T, R], yes, no Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: mask.r.Select(yes.r, no.r)}
}

// Blend is IfThenElse.
func Blend[T Lanes, R Register[T, R]](mask Mask[T, R], yes, no Vec[T, R]) Vec[T, R] {
	return IfThenElse(mask, yes, no)
}

// BitwiseSelect computes (mask & yes) | (^mask & no) on the raw bits. For
// a valid mask it agrees with IfThenElse.
func BitwiseSelect[T Lanes, R Register[T, R]](mask Mask[T, R], yes, no Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: mask.r.And(yes.r).Or(mask.r.AndNot(no.r))}
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes, R Register[T, R]](mask Mask[T, R], a Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: mask.r.And(a.r)}
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes, R Register[T, R]](mask Mask[T, R], b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: mask.r.AndNot(b.r)}
}

// MaskAnd returns the lanes true in both a and b.
func MaskAnd[T Lanes, R Register[T, R]](a, b Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.And(b.r)}
}

// MaskOr returns the lanes true in a or b.
func MaskOr[T Lanes, R Register[T, R]](a, b Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Or(b.r)}
}

// MaskXor returns the lanes true in exactly one of a and b.
func MaskXor[T Lanes, R Register[T, R]](a, b Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.Xor(b.r)}
}

// MaskAndNot returns the lanes true in b and false in a.
func MaskAndNot[T Lanes, R Register[T, R]](a, b Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{r: a.r.AndNot(b.r)}
}

// MaskNot inverts every lane of m.
func MaskNot[T Lanes, R Register[T, R]](m Mask[T, R]) Mask[T, R] {
	return Mask[T, R]{r: m.r.Not()}
}

// And returns the lanes true in both m and o.
func (m Mask[T, R]) And(o Mask[T, R]) Mask[T, R] { return MaskAnd(m, o) }

// Or returns the lanes true in m or o.
func (m Mask[T, R]) Or(o Mask[T, R]) Mask[T, R] { return MaskOr(m, o) }

// AndNot returns the lanes true in m and false in o.
func (m Mask[T, R]) AndNot(o Mask[T, R]) Mask[T, R] { return MaskAndNot(o, m) }

// Not inverts every lane of m.
func (m Mask[T, R]) Not() Mask[T, R] { return MaskNot(m) }

// MaskFromBits builds a mask with lane i true when bit i of bits is set.
func MaskFromBits[T Lanes, R Register[T, R]](bits uint64) Mask[T, R] {
	var r R
	ones := fromBits[T](laneMaskOf[T]())
	for i := range r.NumLanes() {
		if bits>>uint(i)&1 != 0 {
			r = r.WithLane(i, ones)
		}
	}
	return Mask[T, R]{r: r}
}

// FirstN returns a mask with lanes [0, n) true.
func FirstN[T Lanes, R Register[T, R]](n int) Mask[T, R] {
	if n <= 0 {
		return Mask[T, R]{}
	}
	return MaskFromBits[T, R](lowBits(n))
}

// MaskFromVec converts a vector whose lanes are all ones or all zeros into
// a Mask. It panics if any lane holds another bit pattern.
func MaskFromVec[T Lanes, R Register[T, R]](v Vec[T, R]) Mask[T, R] {
	full := laneMaskOf[T]()
	for i := range v.r.NumLanes() {
		if b := bitsOf(v.r.Lane(i)); b != 0 && b != full {
			panic(fmt.Sprintf("wide: lane %d has bit pattern %#x, not a mask", i, b))
		}
	}
	return Mask[T, R]{r: v.r}
}

// MaskToVec returns the mask lanes as a vector of all-ones or zero bit
// patterns.
func MaskToVec[T Lanes, R Register[T, R]](m Mask[T, R]) Vec[T, R] {
	return Vec[T, R]{r: m.r}
}
