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

// logTail returns ln(1+f) - f + f²/2 for f in [√2/2-1, √2-1].
func logTail[T wide.Floats, R wide.Register[T, R]](f, f2 wide.Vec[T, R]) wide.Vec[T, R] {
	var p wide.Vec[T, R]
	if is32[T]() {
		p = poly(f, logP_f32)
	} else {
		p = wide.Div(poly(f, logP_f64), polyMonic(f, logQ_f64))
	}
	return wide.Mul(p, wide.Mul(f2, f))
}

// logParts splits x = (1+f)·2^e and returns e and ln(1+f).
func logParts[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) (e, lnm wide.Vec[T, R]) {
	f, e := splitMantissa(x)
	f2 := wide.Mul(f, f)
	lnm = wide.Add(logTail(f, f2), wide.MulNegAdd(set[T, R](0.5), f2, f))
	return e, lnm
}

// logSpecial patches the lanes of res where x is not a positive normal
// number or +Inf.
func logSpecial[T wide.Floats, R wide.Register[T, R]](x, res wide.Vec[T, R]) wide.Vec[T, R] {
	tiny := wide.LessThan(x, set[T, R](layoutOf[T]().minNormal))
	pass := wide.IsNaN(x).Or(wide.Equal(x, inf[T, R]()))
	if tiny.Or(pass).NoneTrue() {
		return res
	}
	res = wide.IfThenElse(tiny, nan[T, R](), res)
	res = wide.IfThenElse(tiny.And(wide.GreaterEqual(x, wide.Zero[T, R]())), wide.Neg(inf[T, R]()), res)
	return wide.IfThenElse(pass, x, res)
}

// Ln computes the natural logarithm of x.
//
// Algorithm:
//   - read x = (1+f)·2^e from the IEEE fields, with 1+f in [√2/2, √2)
//   - ln(1+f) = f - f²/2 + f³·P(f) (a rational function for float64)
//   - ln(x) = e·ln2Hi + (ln(1+f) + e·ln2Lo), with ln 2 split in two
//
// Special cases:
//   - Ln(+Inf) = +Inf
//   - Ln(±0) = -Inf, and subnormal x is treated as zero
//   - Ln(x < 0) = NaN, including -Inf
//   - Ln(NaN) = NaN
func Ln[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	hi, lo := pick[T](logLn2Hi_f32, logLn2Hi_f64), pick[T](logLn2Lo_f32, logLn2Lo_f64)
	f, e := splitMantissa(x)
	f2 := wide.Mul(f, f)
	res := wide.MulAdd(e, set[T, R](lo), logTail(f, f2))
	res = wide.Add(res, wide.MulNegAdd(set[T, R](0.5), f2, f))
	res = wide.MulAdd(e, set[T, R](hi), res)
	return logSpecial(x, res)
}

// Log is Ln.
func Log[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return Ln(x)
}

// Log2 computes the base-2 logarithm of x. Exact powers of two give exact
// results. Special cases are those of Ln.
func Log2[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	e, lnm := logParts(x)
	return logSpecial(x, wide.MulAdd(lnm, set[T, R](stdmath.Log2E), e))
}

// Log10 computes the base-10 logarithm of x. Special cases are those of
// Ln.
func Log10[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	e, lnm := logParts(x)
	res := wide.MulAdd(e, set[T, R](stdmath.Ln2/stdmath.Ln10), wide.Mul(lnm, set[T, R](1/stdmath.Ln10)))
	return logSpecial(x, res)
}
