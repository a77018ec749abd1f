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

// expReduced returns e^r for |r| <= ln(2)/2.
func expReduced[T wide.Floats, R wide.Register[T, R]](r wide.Vec[T, R]) wide.Vec[T, R] {
	p := poly(r, pick[T](expP_f32, expP_f64))
	return wide.Add(wide.MulAdd(p, wide.Mul(r, r), r), set[T, R](1))
}

// expSpecial replaces the lanes of z where |x| >= limit: overflow gives
// +Inf, underflow gives 0 and NaN stays NaN.
func expSpecial[T wide.Floats, R wide.Register[T, R]](x, z wide.Vec[T, R], limit float64) wide.Vec[T, R] {
	in := wide.LessThan(wide.Abs(x), set[T, R](limit))
	if in.AllTrue() {
		return z
	}
	out := wide.IfThenZeroElse(wide.IsNegative(x), inf[T, R]())
	z = wide.IfThenElse(in, z, out)
	return wide.IfThenElse(wide.IsNaN(x), x, z)
}

// Exp computes e^x.
//
// Algorithm:
//   - n = round(x·log2(e)) and r = x - n·ln2, with ln 2 in two parts
//   - e^r = 1 + r + r²·P(r), P the Taylor series to 1/7! (float32) or
//     1/13! (float64)
//   - 2^n is built directly in the exponent field
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - x >= 87.3 (float32) or 708.39 (float64) gives +Inf, and x below the
//     negated limit gives 0
func Exp[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	hi, lo := pick[T](expLn2Hi_f32, expLn2Hi_f64), pick[T](expLn2Lo_f32, expLn2Lo_f64)
	n := wide.Round(wide.Mul(x, set[T, R](stdmath.Log2E)))
	r := wide.MulNegAdd(n, set[T, R](hi), x)
	r = wide.MulNegAdd(n, set[T, R](lo), r)
	z := wide.Mul(expReduced(r), pow2n(n))
	return expSpecial(x, z, pick[T](expMax_f32, expMax_f64))
}

// Exp2 computes 2^x. Integer x in range gives an exact power of two.
// Special cases are those of Exp, with limits 126 (float32) and 1022
// (float64).
func Exp2[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	n := wide.Round(x)
	r := wide.Mul(wide.Sub(x, n), set[T, R](stdmath.Ln2))
	z := wide.Mul(expReduced(r), pow2n(n))
	return expSpecial(x, z, pick[T](float64(exp2Max_f32), float64(exp2Max_f64)))
}

// Exp10 computes 10^x. Special cases are those of Exp, with limits 37.9
// (float32) and 307.65 (float64).
func Exp10[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	hi := pick[T](expLog10_2Hi_f32, expLog10_2Hi_f64)
	lo := pick[T](expLog10_2Lo_f32, expLog10_2Lo_f64)
	n := wide.Round(wide.Mul(x, set[T, R](stdmath.Ln10/stdmath.Ln2)))
	r := wide.MulNegAdd(n, set[T, R](hi), x)
	r = wide.MulNegAdd(n, set[T, R](lo), r)
	r = wide.Mul(r, set[T, R](stdmath.Ln10))
	z := wide.Mul(expReduced(r), pow2n(n))
	return expSpecial(x, z, pick[T](exp10Max_f32, exp10Max_f64))
}
