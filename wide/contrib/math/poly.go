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

// layout describes the IEEE 754 fields of a lane type.
type layout struct {
	width     uint    // lane bits
	mantBits  uint    // explicit mantissa bits
	expMask   uint64  // exponent field, after shifting out the mantissa
	mantMask  uint64  // mantissa field
	half      uint64  // bit pattern of 0.5
	bias      float64 // exponent bias
	expMax    float64 // all-ones exponent field
	minNormal float64 // smallest positive normal number
	guard     float64 // exponent adjustments beyond this always over- or underflow
}

var (
	layout_f32 = layout{
		width:     32,
		mantBits:  23,
		expMask:   0xFF,
		mantMask:  0x007FFFFF,
		half:      0x3F000000,
		bias:      127,
		expMax:    255,
		minNormal: 0x1p-126,
		guard:     300,
	}
	layout_f64 = layout{
		width:     64,
		mantBits:  52,
		expMask:   0x7FF,
		mantMask:  0x000FFFFFFFFFFFFF,
		half:      0x3FE0000000000000,
		bias:      1023,
		expMax:    2047,
		minNormal: 0x1p-1022,
		guard:     3000,
	}
)

func is32[T wide.Floats]() bool {
	var z T
	_, ok := any(z).(float32)
	return ok
}

func layoutOf[T wide.Floats]() *layout {
	if is32[T]() {
		return &layout_f32
	}
	return &layout_f64
}

// pick returns f32 for float32 lanes and f64 otherwise.
func pick[T wide.Floats, V any](f32, f64 V) V {
	if is32[T]() {
		return f32
	}
	return f64
}

func set[T wide.Floats, R wide.Register[T, R]](c float64) wide.Vec[T, R] {
	return wide.Set[T, R](T(c))
}

func inf[T wide.Floats, R wide.Register[T, R]]() wide.Vec[T, R] {
	return set[T, R](stdmath.Inf(1))
}

func nan[T wide.Floats, R wide.Register[T, R]]() wide.Vec[T, R] {
	return set[T, R](stdmath.NaN())
}

// poly evaluates c[0] + c[1]·x + ... + c[n-1]·x^(n-1) with Horner's rule.
func poly[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R], c []float64) wide.Vec[T, R] {
	p := set[T, R](c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		p = wide.MulAdd(p, x, set[T, R](c[i]))
	}
	return p
}

// polyMonic evaluates x^n + c[n-1]·x^(n-1) + ... + c[0].
func polyMonic[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R], c []float64) wide.Vec[T, R] {
	p := wide.Add(x, set[T, R](c[len(c)-1]))
	for i := len(c) - 2; i >= 0; i-- {
		p = wide.MulAdd(p, x, set[T, R](c[i]))
	}
	return p
}

// exponent returns the unbiased binary exponent of each lane as a float:
// x = m·2^e with m in [1, 2) for normal x.
func exponent[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	return wide.Sub(biasedExponent(x), set[T, R](l.bias))
}

// biasedExponent returns the raw exponent field of each lane as a float.
func biasedExponent[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	e := wide.And(wide.ShiftRightLogical(x, l.mantBits), wide.SetBits[T, R](l.expMask))
	return wide.IntToFloat(e)
}

// fraction2 returns the mantissa of each lane scaled into [0.5, 1).
func fraction2[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	return wide.Or(wide.And(x, wide.SetBits[T, R](l.mantMask)), wide.SetBits[T, R](l.half))
}

// pow2n returns 2^n for integer-valued n in [-bias, bias+1]. Adding
// 2^mantBits + bias moves n into the low mantissa bits, and the shift
// carries it into the exponent field.
func pow2n[T wide.Floats, R wide.Register[T, R]](n wide.Vec[T, R]) wide.Vec[T, R] {
	l := layoutOf[T]()
	magic := set[T, R](stdmath.Ldexp(1, int(l.mantBits)) + l.bias)
	return wide.ShiftLeft(wide.Add(n, magic), l.mantBits)
}

// splitMantissa writes positive normal x as (1+f)·2^e with 1+f in
// [√2/2, √2). It returns f and e.
func splitMantissa[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) (f, e wide.Vec[T, R]) {
	one := set[T, R](1)
	m := fraction2(x)
	e = wide.Add(exponent(x), one)
	low := wide.LessThan(m, set[T, R](stdmath.Sqrt2/2))
	m = wide.IfThenElse(low, wide.Add(m, m), m)
	e = wide.IfThenElse(low, wide.Sub(e, one), e)
	return wide.Sub(m, one), e
}

// isOdd reports the lanes holding an odd integer. Lanes too large to hold
// an odd integer convert to the minimum integer pattern, which is even.
func isOdd[T wide.Floats, R wide.Register[T, R]](y wide.Vec[T, R]) wide.Mask[T, R] {
	l := layoutOf[T]()
	return wide.IsNegative(wide.ShiftLeft(wide.NearestInt(y), l.width-1))
}
