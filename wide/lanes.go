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

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// Scalar lane semantics shared by every representation. A representation
// either calls these helpers lane by lane or uses an instruction whose
// result is identical for every input.

type laneKind uint8

const (
	kindUnsigned laneKind = iota
	kindSigned
	kindFloat
)

func kindOf[T Lanes]() laneKind {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return kindFloat
	case int8, int16, int32, int64:
		return kindSigned
	default:
		return kindUnsigned
	}
}

func sizeOf[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func widthOf[T Lanes]() uint {
	return uint(sizeOf[T]()) * 8
}

// laneMaskOf returns a word with the low lane-width bits set.
func laneMaskOf[T Lanes]() uint64 {
	w := widthOf[T]()
	if w == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<w - 1
}

func signBitOf[T Lanes]() uint64 {
	return uint64(1) << (widthOf[T]() - 1)
}

// bitsOf returns the bit pattern of x zero-extended to 64 bits.
func bitsOf[T Lanes](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	case int8:
		return uint64(uint8(v))
	case int16:
		return uint64(uint16(v))
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	}
	panic("wide: unsupported lane type")
}

// fromBits builds a lane from the low lane-width bits of u.
func fromBits[T Lanes](u uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(u))).(T)
	case float64:
		return any(math.Float64frombits(u)).(T)
	case int8:
		return any(int8(u)).(T)
	case int16:
		return any(int16(u)).(T)
	case int32:
		return any(int32(u)).(T)
	case int64:
		return any(int64(u)).(T)
	case uint8:
		return any(uint8(u)).(T)
	case uint16:
		return any(uint16(u)).(T)
	case uint32:
		return any(uint32(u)).(T)
	case uint64:
		return any(u).(T)
	}
	panic("wide: unsupported lane type")
}

func signExtend(u uint64, w uint) int64 {
	return int64(u<<(64-w)) >> (64 - w)
}

func addLane[T Lanes](a, b T) T { return a + b }
func subLane[T Lanes](a, b T) T { return a - b }
func mulLane[T Lanes](a, b T) T { return a * b }
func divLane[T Lanes](a, b T) T { return a / b }

func minLane[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxLane[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func negLane[T Lanes](a T) T {
	if kindOf[T]() == kindFloat {
		return fromBits[T](bitsOf(a) ^ signBitOf[T]())
	}
	return 0 - a
}

func absLane[T Lanes](a T) T {
	switch kindOf[T]() {
	case kindFloat:
		return fromBits[T](bitsOf(a) &^ signBitOf[T]())
	case kindSigned:
		if a < 0 {
			return 0 - a
		}
	}
	return a
}

// fmaLane computes a*b+c with a single rounding.
func fmaLane[T Lanes](a, b, c T) T {
	switch x := any(a).(type) {
	case float32:
		return any(fma32(x, any(b).(float32), any(c).(float32))).(T)
	case float64:
		return any(math.FMA(x, any(b).(float64), any(c).(float64))).(T)
	}
	return a*b + c
}

// fma32 returns the correctly rounded float32 value of a*b+c.
// The float64 product is exact. The sum is rounded to odd in float64,
// which leaves enough guard bits for the final float32 rounding.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	cd := float64(c)
	s := p + cd
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	err := (p - (s - bb)) + (cd - bb)
	if err != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), err))
	}
	return float32(s)
}

func sqrtLane[T Lanes](a T) T {
	switch x := any(a).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(x)))).(T)
	case float64:
		return any(math.Sqrt(x)).(T)
	}
	if kindOf[T]() == kindSigned && a < 0 {
		return 0
	}
	return fromBits[T](isqrt(bitsOf(a)))
}

func isqrt(u uint64) uint64 {
	r := uint64(math.Sqrt(float64(u)))
	for r > 0 && (r > math.MaxUint32 || r*r > u) {
		r--
	}
	for r+1 <= math.MaxUint32 && (r+1)*(r+1) <= u {
		r++
	}
	return r
}

func roundWith[T Lanes](a T, f func(float64) float64) T {
	switch x := any(a).(type) {
	case float32:
		return any(float32(f(float64(x)))).(T)
	case float64:
		return any(f(x)).(T)
	}
	return a
}

func roundLane[T Lanes](a T) T { return roundWith(a, math.RoundToEven) }
func floorLane[T Lanes](a T) T { return roundWith(a, math.Floor) }
func ceilLane[T Lanes](a T) T  { return roundWith(a, math.Ceil) }
func truncLane[T Lanes](a T) T { return roundWith(a, math.Trunc) }

// toIntLane rounds a float lane half to even and returns the result as a
// same-width signed integer bit pattern. NaN and out-of-range values give
// the minimum integer pattern. Integer lanes are returned unchanged.
func toIntLane[T Lanes](a T) T {
	switch x := any(a).(type) {
	case float32:
		r := math.RoundToEven(float64(x))
		i := int32(math.MinInt32)
		if r >= math.MinInt32 && r <= math.MaxInt32 {
			i = int32(r)
		}
		return fromBits[T](uint64(uint32(i)))
	case float64:
		r := math.RoundToEven(x)
		i := int64(math.MinInt64)
		if r >= -(1<<63) && r < 1<<63 {
			i = int64(r)
		}
		return fromBits[T](uint64(i))
	}
	return a
}

// fromIntLane reads the lane bits as a same-width signed integer and
// converts it to the lane's float type. Integer lanes are unchanged.
func fromIntLane[T Lanes](a T) T {
	switch kindOf[T]() {
	case kindFloat:
		i := signExtend(bitsOf(a), widthOf[T]())
		if sizeOf[T]() == 4 {
			return any(float32(int32(i))).(T)
		}
		return any(float64(i)).(T)
	}
	return a
}

func intAddLane[T Lanes](a, b T) T {
	return fromBits[T]((bitsOf(a) + bitsOf(b)) & laneMaskOf[T]())
}

func intSubLane[T Lanes](a, b T) T {
	return fromBits[T]((bitsOf(a) - bitsOf(b)) & laneMaskOf[T]())
}

func andLane[T Lanes](a, b T) T    { return fromBits[T](bitsOf(a) & bitsOf(b)) }
func orLane[T Lanes](a, b T) T     { return fromBits[T](bitsOf(a) | bitsOf(b)) }
func xorLane[T Lanes](a, b T) T    { return fromBits[T](bitsOf(a) ^ bitsOf(b)) }
func andNotLane[T Lanes](a, b T) T { return fromBits[T](^bitsOf(a) & bitsOf(b)) }
func notLane[T Lanes](a T) T       { return fromBits[T](^bitsOf(a)) }

func shlLane[T Lanes](a T, n uint) T {
	if n >= widthOf[T]() {
		return 0
	}
	return fromBits[T](bitsOf(a) << n)
}

// shrLane shifts signed lanes arithmetically and all other lanes
// logically on their raw bits.
func shrLane[T Lanes](a T, n uint) T {
	w := widthOf[T]()
	if kindOf[T]() != kindSigned {
		return shrLogicalLane(a, n)
	}
	if n >= w {
		n = w - 1
	}
	return fromBits[T](uint64(signExtend(bitsOf(a), w) >> n))
}

func shrLogicalLane[T Lanes](a T, n uint) T {
	if n >= widthOf[T]() {
		return 0
	}
	return fromBits[T](bitsOf(a) >> n)
}

func maskLane[T Lanes](b bool) T {
	if b {
		return fromBits[T](laneMaskOf[T]())
	}
	return fromBits[T](0)
}

func isNaNLane[T Lanes](a T) bool {
	return a != a
}

func eqLane[T Lanes](a, b T) T { return maskLane[T](a == b) }
func ltLane[T Lanes](a, b T) T { return maskLane[T](a < b) }
func leLane[T Lanes](a, b T) T { return maskLane[T](a <= b) }
func gtLane[T Lanes](a, b T) T { return maskLane[T](a > b) }
func geLane[T Lanes](a, b T) T { return maskLane[T](a >= b) }

// neLane is ordered not-equal: a NaN operand gives false.
func neLane[T Lanes](a, b T) T {
	return maskLane[T](a < b || a > b)
}

func nanLane[T Lanes](a T) T { return maskLane[T](isNaNLane(a)) }

func signSet[T Lanes](a T) bool {
	return bitsOf(a)&signBitOf[T]() != 0
}

func selectLane[T Lanes](m, yes, no T) T {
	if signSet(m) {
		return yes
	}
	return no
}

func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("wide: lane index %d out of range [0, %d)", i, n))
	}
}

func checkLen(have, need int) {
	if have < need {
		panic(fmt.Sprintf("wide: slice of length %d is shorter than %d lanes", have, need))
	}
}

func popCount(u uint64) int {
	return bits.OnesCount64(u)
}

func formatLanes[E any](lanes []E) string {
	return fmt.Sprint(lanes)
}
