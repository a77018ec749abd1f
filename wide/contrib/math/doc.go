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

// Package math provides vectorized transcendental functions built only from
// the lane operations of package wide.
//
// Every function is generic over the lane type (float32 or float64) and the
// representation, so one kernel serves every vector width and every
// dispatch tier:
//
//	x := wide.F32x8FromArray([8]float32{...})
//	s, c := math.SinCos(x)
//	y := math.Pow(x, wide.F32x8Splat(1.5))
//
// No function uses a hardware transcendental instruction. Results therefore
// agree across tiers up to the rounding of the operations they are built
// from, and always within the error bounds below.
//
// # Functions
//
// Trigonometric:
//   - Sin, Cos, SinCos, Tan
//   - Asin, Acos, Atan, Atan2
//
// Exponential and logarithmic:
//   - Exp, Exp2, Exp10
//   - Ln (also Log), Log2, Log10
//   - Pow, Powf
//
// Helpers:
//   - Recip, RecipSqrt, ToDegrees, ToRadians
//
// Slice kernels (SinSlice, ExpSlice, ...) apply a function to a whole slice
// using the natural-width vector of the build.
//
// # Accuracy
//
// Relative error against the correctly rounded result:
//   - float32: below 1e-6 (a few ULP) on the documented domains
//   - float64: below 1e-12, typically within 2 ULP
//
// Sin, Cos and Tan reduce their argument with a three-part π/2, applied a
// second time when the first quadrant estimate was off. Beyond the
// reduction limit (more than 2^25 quadrants for float32, 2^55 for float64)
// the reduced argument is meaningless, and the functions return sin 0,
// cos 1, tan 0.
//
// Subnormal inputs to Ln, Log2, Log10 and Pow are treated as zero. Exp and
// Pow flush results below the smallest normal number to zero.
//
// # Special values
//
// Special cases follow the C99 Annex F conventions used by package math of
// the standard library. They are resolved with masked selects, so every lane
// of a vector is handled correctly whatever mix of special and ordinary
// values it holds.
package math
