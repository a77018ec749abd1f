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

package math

import (
	stdmath "math"

	"github.com/go-wide/go-wide/wide"
)

// reduceQuadrant returns q = round(|x|·2/π), the quadrant count qi as a
// lane integer and r = |x| - qi·π/2 in [-π/4, π/4]. π/2 is applied in
// three parts. Once |x|·2/π is no longer exact q can be off by a quadrant
// or two, so a second pass reduces r again and qi carries the correction
// as an integer.
func reduceQuadrant[T wide.Floats, R wide.Register[T, R]](xa wide.Vec[T, R]) (q, qi, r wide.Vec[T, R]) {
	twoOverPi := set[T, R](2 / stdmath.Pi)
	q = wide.Round(wide.Mul(xa, twoOverPi))
	r = subQuadrants(xa, q)
	fix := wide.Round(wide.Mul(r, twoOverPi))
	r = subQuadrants(r, fix)
	return q, wide.AddBits(wide.NearestInt(q), wide.NearestInt(fix)), r
}

func subQuadrants[T wide.Floats, R wide.Register[T, R]](x, q wide.Vec[T, R]) wide.Vec[T, R] {
	a, b, c := pick[T](piO2A_f32, piO2A_f64), pick[T](piO2B_f32, piO2B_f64), pick[T](piO2C_f32, piO2C_f64)
	r := wide.MulNegAdd(q, set[T, R](a), x)
	r = wide.MulNegAdd(q, set[T, R](b), r)
	return wide.MulNegAdd(q, set[T, R](c), r)
}

// trigOverflow reports finite lanes whose quadrant count is past the
// reduction limit.
func trigOverflow[T wide.Floats, R wide.Register[T, R]](xa, q wide.Vec[T, R]) wide.Mask[T, R] {
	limit := pick[T](float64(trigLimit_f32), float64(trigLimit_f64))
	return wide.GreaterThan(q, set[T, R](limit)).And(wide.IsFinite(xa))
}

// SinCos computes sin(x) and cos(x) together, sharing the range reduction.
//
// Algorithm:
//   - q = round(|x|·2/π) picks the quadrant and r = |x| - q·π/2 lies in
//     [-π/4, π/4]
//   - sin(r) = r + r³·S(r²) and cos(r) = 1 - r²/2 + r⁴·C(r²)
//   - odd q swaps the two; bit 1 of q and the sign of x fix the signs
//
// Special cases:
//   - SinCos(±0) = ±0, 1
//   - SinCos(±Inf) = NaN, NaN
//   - SinCos(NaN) = NaN, NaN
//   - |x| past the reduction limit gives 0, 1
func SinCos[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) (sin, cos wide.Vec[T, R]) {
	l := layoutOf[T]()
	one := set[T, R](1)
	xa := wide.Abs(x)
	q, qi, r := reduceQuadrant(xa)

	r2 := wide.Mul(r, r)
	s := wide.MulAdd(poly(r2, pick[T](sinP_f32, sinP_f64)), wide.Mul(r, r2), r)
	c := wide.MulAdd(poly(r2, pick[T](cosP_f32, cosP_f64)), wide.Mul(r2, r2),
		wide.MulNegAdd(set[T, R](0.5), r2, one))

	swap := wide.IsNegative(wide.ShiftLeft(qi, l.width-1))
	sin = wide.IfThenElse(swap, c, s)
	cos = wide.IfThenElse(swap, s, c)

	// sin is negative in quadrants 2 and 3 of |x|, and odd in x.
	sin = wide.FlipSigns(sin, wide.Xor(wide.ShiftLeft(qi, l.width-2), x))
	// cos is negative in quadrants 1 and 2.
	cosSign := wide.And(wide.AddBits(qi, wide.SetBits[T, R](1)), wide.SetBits[T, R](2))
	cos = wide.Xor(cos, wide.ShiftLeft(cosSign, l.width-2))

	if over := trigOverflow(xa, q); over.AnyTrue() {
		sin = wide.IfThenZeroElse(over, sin)
		cos = wide.IfThenElse(over, one, cos)
	}
	return sin, cos
}

// Sin computes sin(x). See SinCos for the algorithm and special cases.
func Sin[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	s, _ := SinCos(x)
	return s
}

// Cos computes cos(x). See SinCos for the algorithm and special cases.
func Cos[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	_, c := SinCos(x)
	return c
}

// Tan computes tan(x).
//
// Algorithm:
//   - reduce to r in [-π/4, π/4] as in SinCos
//   - tan(r) = r + r³·P(r²) (float32) or r + r³·P(r²)/Q(r²) (float64)
//   - odd quadrants use tan(r + π/2) = -1/tan(r)
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
//   - |x| past the reduction limit gives 0
func Tan[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	xa := wide.Abs(x)
	q, qi, r := reduceQuadrant(xa)

	r2 := wide.Mul(r, r)
	var p wide.Vec[T, R]
	if is32[T]() {
		p = poly(r2, tanP_f32)
	} else {
		p = wide.Div(poly(r2, tanP_f64), polyMonic(r2, tanQ_f64))
	}
	t := wide.MulAdd(p, wide.Mul(r, r2), r)

	// The reciprocal is only taken in odd quadrants, where r is not zero.
	invert := wide.IsNegative(wide.ShiftLeft(qi, l.width-1))
	t = wide.IfThenElse(invert, wide.Div(set[T, R](-1), t), t)
	t = wide.FlipSigns(t, x)

	if over := trigOverflow(xa, q); over.AnyTrue() {
		t = wide.IfThenZeroElse(over, t)
	}
	return t
}
