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

// Add performs element-wise addition.
func Add[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Add(b.r)}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Sub(b.r)}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Mul(b.r)}
}

// Div performs element-wise division.
// Integer division by zero panics, as it does for Go scalars.
func Div[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Div(b.r)}
}

// MulAdd computes a*b + c with a single rounding per lane.
func MulAdd[T Lanes, R Register[T, R]](a, b, c Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.MulAdd(b.r, c.r)}
}

// MulSub computes a*b - c with a single rounding per lane.
func MulSub[T Lanes, R Register[T, R]](a, b, c Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.MulAdd(b.r, c.r.Neg())}
}

// MulNegAdd computes c - a*b with a single rounding per lane.
func MulNegAdd[T Lanes, R Register[T, R]](a, b, c Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Neg().MulAdd(b.r, c.r)}
}

// Neg negates each lane. Float lanes flip their sign bit, so Neg(0) is -0.
func Neg[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Neg()}
}

// Abs returns the absolute value of each lane. Signed integer lanes wrap:
// the minimum value stays negative.
func Abs[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Abs()}
}

// Min returns a where a < b and b otherwise. A NaN in either lane gives b.
func Min[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Min(b.r)}
}

// Max returns a where a > b and b otherwise. A NaN in either lane gives b.
func Max[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Max(b.r)}
}

// Clamp limits each lane of v to [lo, hi].
func Clamp[T Lanes, R Register[T, R]](v, lo, hi Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Max(lo.r).Min(hi.r)}
}

// Sqrt computes the square root of each lane. Integer lanes get the
// integer square root, and negative signed lanes give zero.
func Sqrt[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Sqrt()}
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Round()}
}

// Round is RoundToEven.
func Round[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Round()}
}

// Floor rounds each lane toward negative infinity.
func Floor[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Floor()}
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Ceil()}
}

// Trunc rounds each lane toward zero.
func Trunc[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Trunc()}
}

// And performs bitwise AND.
func And[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.And(b.r)}
}

// Or performs bitwise OR.
func Or[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Or(b.r)}
}

// Xor performs bitwise XOR.
func Xor[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.Xor(b.r)}
}

// Not performs bitwise NOT.
func Not[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Not()}
}

// AndNot computes (^a) & b.
func AndNot[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.AndNot(b.r)}
}

// ShiftLeft shifts each lane left by n bits. Counts at or above the lane
// width give zero.
func ShiftLeft[T Lanes, R Register[T, R]](v Vec[T, R], n uint) Vec[T, R] {
	return Vec[T, R]{r: v.r.ShiftLeft(n)}
}

// ShiftRight shifts each lane right by n bits: arithmetically for signed
// integer lanes, logically for unsigned and float lanes.
func ShiftRight[T Lanes, R Register[T, R]](v Vec[T, R], n uint) Vec[T, R] {
	return Vec[T, R]{r: v.r.ShiftRight(n)}
}

// ShiftRightLogical shifts the raw bits of each lane right by n, filling
// with zeros whatever the lane type.
func ShiftRightLogical[T Lanes, R Register[T, R]](v Vec[T, R], n uint) Vec[T, R] {
	return Vec[T, R]{r: v.r.ShiftRightLogical(n)}
}

// SignBit returns a vector with only the sign bit set in each lane.
// For floats this is -0.0, for signed integers the minimum value.
func SignBit[T Lanes, R Register[T, R]]() Vec[T, R] {
	return SetBits[T, R](signBitOf[T]())
}

// CopySign returns the magnitude of mag with the sign of sign.
func CopySign[T Lanes, R Register[T, R]](mag, sign Vec[T, R]) Vec[T, R] {
	s := SignBit[T, R]().r
	return Vec[T, R]{r: s.AndNot(mag.r).Or(s.And(sign.r))}
}

// FlipSigns negates the lanes of v where sign has its sign bit set.
func FlipSigns[T Lanes, R Register[T, R]](v, sign Vec[T, R]) Vec[T, R] {
	s := SignBit[T, R]().r
	return Vec[T, R]{r: v.r.Xor(sign.r.And(s))}
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Lanes, R Register[T, R]](v Vec[T, R]) T {
	var sum T
	for i := range v.r.NumLanes() {
		sum += v.r.Lane(i)
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes, R Register[T, R]](v Vec[T, R]) T {
	m := v.r.Lane(0)
	for i := 1; i < v.r.NumLanes(); i++ {
		m = minLane(v.r.Lane(i), m)
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes, R Register[T, R]](v Vec[T, R]) T {
	m := v.r.Lane(0)
	for i := 1; i < v.r.NumLanes(); i++ {
		m = maxLane(v.r.Lane(i), m)
	}
	return m
}

// GetLane returns lane i of v.
func GetLane[T Lanes, R Register[T, R]](v Vec[T, R], i int) T {
	checkLane(i, v.r.NumLanes())
	return v.r.Lane(i)
}

// WithLane returns v with lane i replaced by x.
func WithLane[T Lanes, R Register[T, R]](v Vec[T, R], i int, x T) Vec[T, R] {
	checkLane(i, v.r.NumLanes())
	return Vec[T, R]{r: v.r.WithLane(i, x)}
}

// Reverse returns v with its lanes in reverse order.
func Reverse[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	n := v.r.NumLanes()
	out := v.r
	for i := range n {
		out = out.WithLane(i, v.r.Lane(n-1-i))
	}
	return Vec[T, R]{r: out}
}
