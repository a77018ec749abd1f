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

// asinParts evaluates both halves of the asin approximation for a = |x|.
// In the lanes of big, acosA holds acos(a); elsewhere asinA holds asin(a).
// Computing both and selecting keeps every lane on the same path.
func asinParts[T wide.Floats, R wide.Register[T, R]](a wide.Vec[T, R]) (acosA, asinA wide.Vec[T, R], big wide.Mask[T, R]) {
	one := set[T, R](1)
	if is32[T]() {
		// acos(a) = 2·asin(sqrt((1-a)/2)).
		big = wide.GreaterThan(a, set[T, R](asinBig_f32))
		h := wide.Mul(set[T, R](0.5), wide.Sub(one, a))
		z := wide.IfThenElse(big, h, wide.Mul(a, a))
		s := wide.IfThenElse(big, wide.Sqrt(h), a)
		p := wide.MulAdd(poly(z, asinP_f32), wide.Mul(z, s), s)
		return wide.Add(p, p), p, big
	}

	big = wide.GreaterEqual(a, set[T, R](asinBig_f64))
	z := wide.IfThenElse(big, wide.Sub(one, a), wide.Mul(a, a))
	rs := wide.Div(poly(z, asinR_f64), polyMonic(z, asinS_f64))
	pq := wide.Div(poly(z, asinP_f64), polyMonic(z, asinQ_f64))
	y := wide.Mul(z, wide.IfThenElse(big, rs, pq))
	s := wide.Sqrt(wide.Add(z, z))
	return wide.MulAdd(s, y, s), wide.MulAdd(a, y, a), big
}

// Asin computes the arcsine of x, in [-π/2, π/2].
//
// Algorithm:
//   - small |x|: asin(x) = x + x³·P(x²) (a rational function for float64)
//   - large |x|: asin(x) = π/2 - acos(|x|), with acos(|x|) from the
//     half-angle identity on 1-|x|
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(x) = NaN for |x| > 1
//   - Asin(NaN) = NaN
func Asin[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	acosA, asinA, big := asinParts(wide.Abs(x))
	z := wide.IfThenElse(big, wide.Sub(set[T, R](stdmath.Pi/2), acosA), asinA)
	return wide.FlipSigns(z, x)
}

// Acos computes the arccosine of x, in [0, π].
//
// Algorithm: shares Asin's approximation, using acos(x) = π/2 - asin(x)
// for small |x| and acos(x) = π - acos(-x) for large negative x.
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(x) = NaN for |x| > 1
//   - Acos(NaN) = NaN
func Acos[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	acosA, asinA, big := asinParts(wide.Abs(x))
	large := wide.IfThenElse(wide.IsNegative(x), wide.Sub(set[T, R](stdmath.Pi), acosA), acosA)
	small := wide.Sub(set[T, R](stdmath.Pi/2), wide.FlipSigns(asinA, x))
	return wide.IfThenElse(big, large, small)
}

// atanCore returns atan(|y|/|x|) in [0, π/2]. Both-infinite lanes are
// treated as |y| = |x| = 1.
func atanCore[T wide.Floats, R wide.Register[T, R]](y, x wide.Vec[T, R]) wide.Vec[T, R] {
	one := set[T, R](1)
	xa, ya := wide.Abs(x), wide.Abs(y)
	if both := wide.IsInf(x).And(wide.IsInf(y)); both.AnyTrue() {
		xa = wide.IfThenElse(both, one, xa)
		ya = wide.IfThenElse(both, one, ya)
	}

	// Work with the ratio in [0, 1] and fix up with π/2 - atan(1/t).
	swap := wide.GreaterThan(ya, xa)
	num := wide.IfThenElse(swap, xa, ya)
	den := wide.IfThenElse(swap, ya, xa)

	// Ratios above the split use atan(t) = π/4 + atan((t-1)/(t+1)).
	split := pick[T](atanSplit_f32, atanSplit_f64)
	upper := wide.GreaterEqual(num, wide.Mul(den, set[T, R](split)))
	z := wide.Div(
		wide.IfThenElse(upper, wide.Sub(num, den), num),
		wide.IfThenElse(upper, wide.Add(num, den), den))

	zz := wide.Mul(z, z)
	var p wide.Vec[T, R]
	if is32[T]() {
		p = poly(zz, atanP_f32)
	} else {
		p = wide.Div(poly(zz, atanP_f64), polyMonic(zz, atanQ_f64))
	}
	re := wide.MulAdd(p, wide.Mul(zz, z), z)
	re = wide.Add(re, wide.IfThenElseZero(upper, set[T, R](stdmath.Pi/4)))
	return wide.IfThenElse(swap, wide.Sub(set[T, R](stdmath.Pi/2), re), re)
}

// Atan computes the arctangent of x, in [-π/2, π/2].
//
// Algorithm: |x| > 1 uses atan(x) = π/2 - atan(1/x); ratios above a split
// point use π/4 + atan((t-1)/(t+1)). The remaining argument is at most
// tan(π/8) (float32) or 0.66 (float64) and goes through a minimax
// polynomial (float32) or rational function (float64) in z².
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return wide.FlipSigns(atanCore(x, set[T, R](1)), x)
}

// Atan2 computes the angle of the point (x, y), in [-π, π].
//
// Algorithm: atan(|y|/|x|) as in Atan, reflected to π - a for negative x
// and given the sign of y.
//
// Special cases (as in the standard library):
//   - Atan2(±0, x>=+0) = ±0
//   - Atan2(±0, x<=-0) = ±π
//   - Atan2(y>0, 0) = +π/2, Atan2(y<0, 0) = -π/2
//   - Atan2(±Inf, +Inf) = ±π/4, Atan2(±Inf, -Inf) = ±3π/4
//   - Atan2(y, +Inf) = ±0 and Atan2(y, -Inf) = ±π for finite y
//   - Atan2(±Inf, x) = ±π/2 for finite x
//   - Atan2(NaN, x) = Atan2(y, NaN) = NaN
func Atan2[T wide.Floats, R wide.Register[T, R]](y, x wide.Vec[T, R]) wide.Vec[T, R] {
	re := atanCore(y, x)
	// 0/0 gives NaN in the core; both zero means angle 0 before reflection.
	bothZero := wide.Equal(wide.Or(wide.Abs(x), wide.Abs(y)), wide.Zero[T, R]())
	re = wide.IfThenZeroElse(bothZero, re)
	re = wide.IfThenElse(wide.IsNegative(x), wide.Sub(set[T, R](stdmath.Pi), re), re)
	return wide.FlipSigns(re, y)
}
