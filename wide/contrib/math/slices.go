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
	"github.com/go-wide/go-wide/wide"
	"github.com/go-wide/go-wide/wide/contrib/algo"
)

// Slice kernels run a function over min(len(src), len(dst)) elements using
// the natural-width vector of the build (wide.F32 and wide.F64).

// SinSlice writes sin(src[i]) to dst[i].
func SinSlice(src, dst []float32) { algo.Transform(src, dst, Sin[float32, wide.RegF32]) }

// SinSlice64 writes sin(src[i]) to dst[i].
func SinSlice64(src, dst []float64) { algo.Transform(src, dst, Sin[float64, wide.RegF64]) }

// CosSlice writes cos(src[i]) to dst[i].
func CosSlice(src, dst []float32) { algo.Transform(src, dst, Cos[float32, wide.RegF32]) }

// CosSlice64 writes cos(src[i]) to dst[i].
func CosSlice64(src, dst []float64) { algo.Transform(src, dst, Cos[float64, wide.RegF64]) }

// TanSlice writes tan(src[i]) to dst[i].
func TanSlice(src, dst []float32) { algo.Transform(src, dst, Tan[float32, wide.RegF32]) }

// TanSlice64 writes tan(src[i]) to dst[i].
func TanSlice64(src, dst []float64) { algo.Transform(src, dst, Tan[float64, wide.RegF64]) }

// AtanSlice writes atan(src[i]) to dst[i].
func AtanSlice(src, dst []float32) { algo.Transform(src, dst, Atan[float32, wide.RegF32]) }

// AtanSlice64 writes atan(src[i]) to dst[i].
func AtanSlice64(src, dst []float64) { algo.Transform(src, dst, Atan[float64, wide.RegF64]) }

// ExpSlice writes e^src[i] to dst[i].
func ExpSlice(src, dst []float32) { algo.Transform(src, dst, Exp[float32, wide.RegF32]) }

// ExpSlice64 writes e^src[i] to dst[i].
func ExpSlice64(src, dst []float64) { algo.Transform(src, dst, Exp[float64, wide.RegF64]) }

// LnSlice writes ln(src[i]) to dst[i].
func LnSlice(src, dst []float32) { algo.Transform(src, dst, Ln[float32, wide.RegF32]) }

// LnSlice64 writes ln(src[i]) to dst[i].
func LnSlice64(src, dst []float64) { algo.Transform(src, dst, Ln[float64, wide.RegF64]) }

// Log2Slice writes log2(src[i]) to dst[i].
func Log2Slice(src, dst []float32) { algo.Transform(src, dst, Log2[float32, wide.RegF32]) }

// Log2Slice64 writes log2(src[i]) to dst[i].
func Log2Slice64(src, dst []float64) { algo.Transform(src, dst, Log2[float64, wide.RegF64]) }

// Atan2Slice writes atan2(y[i], x[i]) to dst[i].
func Atan2Slice(y, x, dst []float32) { algo.Transform2(y, x, dst, Atan2[float32, wide.RegF32]) }

// Atan2Slice64 writes atan2(y[i], x[i]) to dst[i].
func Atan2Slice64(y, x, dst []float64) { algo.Transform2(y, x, dst, Atan2[float64, wide.RegF64]) }

// PowSlice writes x[i]^y[i] to dst[i].
func PowSlice(x, y, dst []float32) { algo.Transform2(x, y, dst, Pow[float32, wide.RegF32]) }

// PowSlice64 writes x[i]^y[i] to dst[i].
func PowSlice64(x, y, dst []float64) { algo.Transform2(x, y, dst, Pow[float64, wide.RegF64]) }
