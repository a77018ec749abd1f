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

// logExtended returns ln(x) = hi + lo for positive normal x, carrying
// about twice the lane precision. Pow needs this because y·ln(x) can be
// large and every bit lost in ln(x) is multiplied by y. The pair is
// normalized: |lo| is at most half an ulp of hi.
func logExtended[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) (hi, lo wide.Vec[T, R]) {
	ln2Hi, ln2Lo := pick[T](logLn2Hi_f32, logLn2Hi_f64), pick[T](logLn2Lo_f32, logLn2Lo_f64)
	half := set[T, R](0.5)

	f, e := splitMantissa(x)
	f2 := wide.Mul(f, f)
	tail := logTail(f, f2)

	// f - f²/2 as lg + lgErr. h = f²/2 is exact up to hErr, and
	// |f| >= h so the difference is a fast two-sum.
	h := wide.Mul(f2, half)
	hErr := wide.MulSub(wide.Mul(f, half), f, h)
	lg := wide.Sub(f, h)
	lgErr := wide.Sub(wide.Sub(f, lg), h)
	lgErr = wide.Add(wide.Sub(lgErr, hErr), tail)

	// e·ln2Hi is exact. Two-sum it with lg.
	e1 := wide.Mul(e, set[T, R](ln2Hi))
	hi = wide.Add(e1, lg)
	bb := wide.Sub(hi, e1)
	sErr := wide.Add(wide.Sub(e1, wide.Sub(hi, bb)), wide.Sub(lg, bb))
	lo = wide.MulAdd(e, set[T, R](ln2Lo), wide.Add(sErr, lgErr))

	// lo still holds the polynomial tail and e·ln2Lo. |hi| >= |lo|, so a
	// fast two-sum folds them into hi.
	s := wide.Add(hi, lo)
	lo = wide.Sub(lo, wide.Sub(s, hi))
	return s, lo
}

// Pow computes x^y.
//
// Algorithm:
//   - ln|x| as a double-length hi + lo pair, then y·ln|x| the same way
//     with a fused multiply for the product error
//   - e^(y·ln|x|) with the Exp reduction, the low part folded into the
//     reduced argument
//   - 2^n is added straight into the exponent field, so results near the
//     overflow threshold do not overflow early
//   - special cases are patched with masked selects after the main path
//
// Special cases (as in the standard library):
//   - Pow(x, ±0) = 1 for any x, and Pow(1, y) = 1 for any y
//   - Pow(x, y) = NaN if x or y is NaN
//   - Pow(±0, y) = ±Inf for y an odd integer < 0
//   - Pow(±0, y) = +Inf for other y < 0
//   - Pow(±0, y) = ±0 for y an odd integer > 0
//   - Pow(±0, y) = +0 for other y > 0
//   - Pow(-1, ±Inf) = 1
//   - Pow(x, +Inf) = +Inf for |x| > 1, and +0 for |x| < 1
//   - Pow(x, -Inf) = +0 for |x| > 1, and +Inf for |x| < 1
//   - Pow(+Inf, y) = +Inf for y > 0, and +0 for y < 0
//   - Pow(-Inf, y) = Pow(-0, -y)
//   - Pow(x, y) = NaN for finite x < 0 and finite non-integer y
//
// Subnormal x is treated as zero, and results below the smallest normal
// number are flushed to zero.
func Pow[T wide.Floats, R wide.Register[T, R]](x, y wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	one := set[T, R](1)
	zero := wide.Zero[T, R]()
	ln2Hi, ln2Lo := pick[T](expLn2Hi_f32, expLn2Hi_f64), pick[T](expLn2Lo_f32, expLn2Lo_f64)

	ax := wide.Abs(x)
	lnHi, lnLo := logExtended(ax)

	// y·ln|x| = p + pLo.
	p := wide.Mul(lnHi, y)
	pLo := wide.MulAdd(lnLo, y, wide.MulSub(lnHi, y, p))

	// pLo is below half an ulp of p, so n from p alone keeps r + pLo
	// within ln2/2. An infinite p must reach the overflow test as ±Inf,
	// which p + pLo would turn into NaN.
	n := wide.Round(wide.Mul(p, set[T, R](stdmath.Log2E)))
	r := wide.MulNegAdd(n, set[T, R](ln2Hi), p)
	r = wide.MulNegAdd(n, set[T, R](ln2Lo), r)
	z := expReduced(wide.Add(r, pLo))

	// z is in [√2/2, √2], so its exponent field tells where z·2^n lands.
	// Adding n to that field scales without an intermediate 2^n that could
	// overflow on its own.
	ej := wide.Add(n, biasedExponent(z))
	overflow := wide.GreaterEqual(ej, set[T, R](l.expMax)).Or(wide.GreaterThan(n, set[T, R](l.guard)))
	underflow := wide.LessEqual(ej, zero).Or(wide.LessThan(n, set[T, R](-l.guard)))
	n = wide.Clamp(n, set[T, R](-l.guard), set[T, R](l.guard))
	z = wide.AddBits(z, wide.ShiftLeft(wide.NearestInt(n), l.mantBits))
	z = wide.IfThenElse(overflow, inf[T, R](), z)
	z = wide.IfThenZeroElse(underflow, z)

	xTiny := wide.LessThan(ax, set[T, R](l.minNormal))
	xInf := wide.IsInf(x)
	yInf := wide.IsInf(y)
	xNeg := wide.IsNegative(x)
	nans := wide.CmpNaN(x, y)
	if xTiny.Or(xInf).Or(yInf).Or(xNeg).Or(nans).NoneTrue() {
		// pow(x, 0) and pow(1, y) already come out as exactly 1.
		return z
	}

	yNeg := wide.LessThan(y, zero)
	yInt := wide.Equal(wide.Round(y), y)
	z = wide.IfThenElse(xTiny, wide.IfThenElseZero(yNeg, inf[T, R]()), z)
	z = wide.IfThenElse(xInf, wide.IfThenElseZero(yNeg.Not(), inf[T, R]()), z)

	// y = ±Inf depends only on how |x| compares with 1.
	grows := wide.GreaterThan(ax, one).AndNot(yNeg).Or(wide.LessThan(ax, one).And(yNeg))
	infY := wide.IfThenElse(wide.Equal(ax, one), one, wide.IfThenElseZero(grows, inf[T, R]()))
	z = wide.IfThenElse(yInf, infY, z)

	// A negative base keeps the sign for odd integer exponents and has no
	// real power for finite non-integer ones.
	odd := xNeg.And(yInt).And(isOdd(y))
	z = wide.IfThenElse(odd, wide.Neg(z), z)
	noReal := xNeg.AndNot(xTiny).AndNot(xInf).AndNot(yInt)
	z = wide.IfThenElse(noReal, nan[T, R](), z)

	z = wide.IfThenElse(nans, wide.Add(x, y), z)
	return wide.IfThenElse(wide.Equal(y, zero).Or(wide.Equal(x, one)), one, z)
}

// Powf computes x^y for a scalar exponent y.
func Powf[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R], y T) wide.Vec[T, R] {
	return Pow(x, wide.Set[T, R](y))
}
