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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/go-wide/go-wide/wide"
)

var (
	posInf = stdmath.Inf(1)
	negInf = stdmath.Inf(-1)
	qNaN   = stdmath.NaN()
	negZ   = stdmath.Copysign(0, -1)
)

func TestUnarySpecialValues(t *testing.T) {
	inputs := []float64{0, negZ, 1, -1, 2, -2, 0.5, posInf, negInf, qNaN}
	tests := []struct {
		name string
		f64  func(wide.F64x4) wide.F64x4
		f32  func(wide.F32x8) wide.F32x8
		ref  func(float64) float64
	}{
		{"Sin", Sin[float64, wide.RegF64x4], Sin[float32, wide.RegF32x8], stdmath.Sin},
		{"Cos", Cos[float64, wide.RegF64x4], Cos[float32, wide.RegF32x8], stdmath.Cos},
		{"Tan", Tan[float64, wide.RegF64x4], Tan[float32, wide.RegF32x8], stdmath.Tan},
		{"Asin", Asin[float64, wide.RegF64x4], Asin[float32, wide.RegF32x8], stdmath.Asin},
		{"Acos", Acos[float64, wide.RegF64x4], Acos[float32, wide.RegF32x8], stdmath.Acos},
		{"Atan", Atan[float64, wide.RegF64x4], Atan[float32, wide.RegF32x8], stdmath.Atan},
		{"Ln", Ln[float64, wide.RegF64x4], Ln[float32, wide.RegF32x8], stdmath.Log},
		{"Log2", Log2[float64, wide.RegF64x4], Log2[float32, wide.RegF32x8], stdmath.Log2},
		{"Log10", Log10[float64, wide.RegF64x4], Log10[float32, wide.RegF32x8], stdmath.Log10},
		{"Exp", Exp[float64, wide.RegF64x4], Exp[float32, wide.RegF32x8], stdmath.Exp},
		{"Exp2", Exp2[float64, wide.RegF64x4], Exp2[float32, wide.RegF32x8], stdmath.Exp2},
		{"Exp10", Exp10[float64, wide.RegF64x4], Exp10[float32, wide.RegF32x8],
			func(x float64) float64 { return stdmath.Pow(10, x) }},
	}
	in32 := lo.Map(inputs, func(x float64, _ int) float32 { return float32(x) })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got64 := apply1(tt.f64, inputs)
			got32 := apply1(tt.f32, in32)
			for i, x := range inputs {
				want := tt.ref(x)
				if !within(got64[i], want, tol64) {
					t.Errorf("float64: %s(%v) = %v, want %v", tt.name, x, got64[i], want)
				}
				if !within(float64(got32[i]), want, tol32) {
					t.Errorf("float32: %s(%v) = %v, want %v", tt.name, x, got32[i], want)
				}
			}
		})
	}
}

func TestLimits(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Exp overflow", Exp(wide.F64x2Splat(710)).Lane(0), posInf},
		{"Exp underflow", Exp(wide.F64x2Splat(-710)).Lane(0), 0},
		{"Exp float32 overflow", float64(Exp(wide.F32x4Splat(89)).Lane(0)), posInf},
		{"Exp float32 underflow", float64(Exp(wide.F32x4Splat(-89)).Lane(0)), 0},
		{"Exp2 overflow", Exp2(wide.F64x2Splat(1030)).Lane(0), posInf},
		{"Exp10 underflow", Exp10(wide.F64x2Splat(-400)).Lane(0), 0},
		{"Ln subnormal", Ln(wide.F64x2Splat(0x1p-1060)).Lane(0), negInf},
		{"Ln float32 subnormal", float64(Ln(wide.F32x4Splat(0x1p-140)).Lane(0)), negInf},
		{"Sin past reduction limit", Sin(wide.F64x2Splat(1e30)).Lane(0), 0},
		{"Cos past reduction limit", Cos(wide.F64x2Splat(1e30)).Lane(0), 1},
		{"Tan past reduction limit", Tan(wide.F64x2Splat(-1e30)).Lane(0), 0},
		{"Sin float32 past reduction limit", float64(Sin(wide.F32x4Splat(1e20)).Lane(0)), 0},
		{"Cos float32 past reduction limit", float64(Cos(wide.F32x4Splat(-1e20)).Lane(0)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestAtan2SpecialValues(t *testing.T) {
	values := []float64{0, negZ, 1, -1, posInf, negInf, qNaN}
	var ys, xs []float64
	for _, y := range values {
		for _, x := range values {
			ys, xs = append(ys, y), append(xs, x)
		}
	}
	got := apply2(Atan2[float64, wide.RegF64x4], ys, xs)
	for i := range got {
		if want := stdmath.Atan2(ys[i], xs[i]); !within(got[i], want, tol64) {
			t.Errorf("Atan2(%v, %v) = %v, want %v", ys[i], xs[i], got[i], want)
		}
	}
	y32 := lo.Map(ys, func(v float64, _ int) float32 { return float32(v) })
	x32 := lo.Map(xs, func(v float64, _ int) float32 { return float32(v) })
	got32 := apply2(Atan2[float32, wide.RegF32x8], y32, x32)
	for i := range got32 {
		if want := stdmath.Atan2(ys[i], xs[i]); !within(float64(got32[i]), want, tol32) {
			t.Errorf("float32: Atan2(%v, %v) = %v, want %v", ys[i], xs[i], got32[i], want)
		}
	}
}

func TestPowSpecialValues(t *testing.T) {
	bases := []float64{0, negZ, 1, -1, 2, -2, 0.5, -0.5, posInf, negInf, qNaN}
	exps := []float64{0, negZ, 1, -1, 2, -2, 3, -3, 0.5, -0.5, posInf, negInf, qNaN}
	var xs, ys []float64
	for _, x := range bases {
		for _, y := range exps {
			xs, ys = append(xs, x), append(ys, y)
		}
	}
	got := apply2(Pow[float64, wide.RegF64x4], xs, ys)
	for i := range got {
		if want := stdmath.Pow(xs[i], ys[i]); !within(got[i], want, tol64) {
			t.Errorf("Pow(%v, %v) = %v, want %v", xs[i], ys[i], got[i], want)
		}
	}
	x32 := lo.Map(xs, func(v float64, _ int) float32 { return float32(v) })
	y32 := lo.Map(ys, func(v float64, _ int) float32 { return float32(v) })
	got32 := apply2(Pow[float32, wide.RegF32x8], x32, y32)
	for i := range got32 {
		if want := stdmath.Pow(xs[i], ys[i]); !within(float64(got32[i]), want, tol32) {
			t.Errorf("float32: Pow(%v, %v) = %v, want %v", xs[i], ys[i], got32[i], want)
		}
	}
}

func TestIdentities(t *testing.T) {
	t.Run("sin²+cos²", func(t *testing.T) {
		xs := append(linspace[float64](-1e6, 1e6, 4001), 1e30, -1e300)
		sin := make([]float64, len(xs))
		cos := make([]float64, len(xs))
		SinSlice64(xs, sin)
		CosSlice64(xs, cos)
		for i := range xs {
			if s := sin[i]*sin[i] + cos[i]*cos[i]; !within(s, 1, 1e-14) {
				t.Errorf("x=%v: sin²+cos² = %v", xs[i], s)
			}
		}
	})
	t.Run("sin²+cos²/float32", func(t *testing.T) {
		// Up to the reduction limit, 2^25 quadrants.
		mags := logspace[float32](1e-3, 5e7, 8001)
		xs := append(mags, lo.Map(mags, func(x float32, _ int) float32 { return -x })...)
		xs = append(xs, 7.005225e+06, 1e20, -1e38)
		sin := make([]float32, len(xs))
		cos := make([]float32, len(xs))
		SinSlice(xs, sin)
		CosSlice(xs, cos)
		for i := range xs {
			s, c := float64(sin[i]), float64(cos[i])
			if sum := s*s + c*c; !within(sum, 1, tol32) {
				t.Errorf("x=%v: sin²+cos² = %v", xs[i], sum)
			}
		}
	})
	t.Run("sin and cos of large float32", func(t *testing.T) {
		xs := logspace[float32](1e4, 1e7, 4001)
		got := apply1(Sin[float32, wide.RegF32x8], xs)
		for i, x := range xs {
			assert.InDelta(t, stdmath.Sin(float64(x)), float64(got[i]), 1e-6, "sin(%v)", x)
		}
		got = apply1(Cos[float32, wide.RegF32x8], xs)
		for i, x := range xs {
			assert.InDelta(t, stdmath.Cos(float64(x)), float64(got[i]), 1e-6, "cos(%v)", x)
		}
	})
	t.Run("ln(exp(x))", func(t *testing.T) {
		xs := linspace[float64](-700, 700, 2001)
		got := apply1(func(v wide.F64x4) wide.F64x4 { return Ln(Exp(v)) }, xs)
		for i, x := range xs {
			if !within(got[i], x, 1e-13) {
				t.Errorf("ln(exp(%v)) = %v", x, got[i])
			}
		}
	})
	t.Run("exp(ln(x))", func(t *testing.T) {
		xs := logspace[float32](1e-6, 1e6, 2001)
		got := apply1(func(v wide.F32x8) wide.F32x8 { return Exp(Ln(v)) }, xs)
		for i, x := range xs {
			if !within(float64(got[i]), float64(x), 5e-6) {
				t.Errorf("exp(ln(%v)) = %v", x, got[i])
			}
		}
	})
	t.Run("pow(x, 2)", func(t *testing.T) {
		xs := linspace[float64](-1000, 1000, 2001)
		got := apply1(func(v wide.F64x4) wide.F64x4 { return Powf(v, 2) }, xs)
		for i, x := range xs {
			if !within(got[i], x*x, tol64) {
				t.Errorf("pow(%v, 2) = %v", x, got[i])
			}
		}
	})
	t.Run("atan(tan(x))", func(t *testing.T) {
		xs := linspace[float64](-1.5, 1.5, 1001)
		got := apply1(func(v wide.F64x4) wide.F64x4 { return Atan(Tan(v)) }, xs)
		for i, x := range xs {
			if !within(got[i], x, tol64) {
				t.Errorf("atan(tan(%v)) = %v", x, got[i])
			}
		}
	})
}

// Every width runs the same lane arithmetic, so results agree bit for bit.
func TestWidthsAgree(t *testing.T) {
	xs := append(linspace[float32](-30, 30, 997), 0, negZ32(), 1e-40, 3e38, float32(posInf), float32(negInf))
	kernels := map[string]struct {
		x4  func(wide.F32x4) wide.F32x4
		x8  func(wide.F32x8) wide.F32x8
		x16 func(wide.F32x16) wide.F32x16
	}{
		"Sin":  {Sin[float32, wide.RegF32x4], Sin[float32, wide.RegF32x8], Sin[float32, wide.RegF32x16]},
		"Tan":  {Tan[float32, wide.RegF32x4], Tan[float32, wide.RegF32x8], Tan[float32, wide.RegF32x16]},
		"Atan": {Atan[float32, wide.RegF32x4], Atan[float32, wide.RegF32x8], Atan[float32, wide.RegF32x16]},
		"Exp":  {Exp[float32, wide.RegF32x4], Exp[float32, wide.RegF32x8], Exp[float32, wide.RegF32x16]},
		"Log2": {Log2[float32, wide.RegF32x4], Log2[float32, wide.RegF32x8], Log2[float32, wide.RegF32x16]},
	}
	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			a := apply1(k.x4, xs)
			b := apply1(k.x8, xs)
			c := apply1(k.x16, xs)
			for i := range xs {
				if !sameBits(a[i], b[i]) || !sameBits(a[i], c[i]) {
					t.Errorf("%s(%v): x4=%v x8=%v x16=%v", name, xs[i], a[i], b[i], c[i])
				}
			}
		})
	}
}

func negZ32() float32 { return float32(negZ) }

func sameBits(a, b float32) bool {
	if a != a && b != b {
		return true
	}
	return stdmath.Float32bits(a) == stdmath.Float32bits(b)
}

func BenchmarkSin(b *testing.B) {
	src := linspace[float32](-10, 10, 4096)
	dst := make([]float32, len(src))
	for b.Loop() {
		SinSlice(src, dst)
	}
}

func BenchmarkExp64(b *testing.B) {
	src := linspace[float64](-10, 10, 4096)
	dst := make([]float64, len(src))
	for b.Loop() {
		ExpSlice64(src, dst)
	}
}

func BenchmarkPow(b *testing.B) {
	x := linspace[float32](0.1, 10, 4096)
	y := linspace[float32](-3, 3, 4096)
	dst := make([]float32, len(x))
	for b.Loop() {
		PowSlice(x, y, dst)
	}
}
