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

import "fmt"

// ============================================================================
// Bit-level view of lanes. These treat each lane's bits as a same-width
// signed integer without changing the Vec type, which is how the float
// kernels in contrib/math manipulate exponents and signs.
// ============================================================================

// SetBits returns a vector with every lane holding the bit pattern u,
// truncated to the lane width.
func SetBits[T Lanes, R Register[T, R]](u uint64) Vec[T, R] {
	var r R
	return Vec[T, R]{r: r.Splat(fromBits[T](u))}
}

// NearestInt rounds float lanes half to even and returns the result as a
// same-width integer bit pattern in the same lanes. NaN and out-of-range
// lanes give the minimum integer pattern. Integer lanes are unchanged.
func NearestInt[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.ConvertToInt()}
}

// TruncInt is NearestInt after rounding toward zero.
func TruncInt[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.Trunc().ConvertToInt()}
}

// IntToFloat reads each lane's bits as a same-width signed integer and
// converts it to the lane's float type. Integer lanes are unchanged.
func IntToFloat[T Lanes, R Register[T, R]](v Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: v.r.ConvertFromInt()}
}

// AddBits adds the lane bit patterns as wrapping integers.
func AddBits[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.IntAdd(b.r)}
}

// SubBits subtracts the lane bit patterns as wrapping integers.
func SubBits[T Lanes, R Register[T, R]](a, b Vec[T, R]) Vec[T, R] {
	return Vec[T, R]{r: a.r.IntSub(b.r)}
}

// Reinterpret reinterprets the bytes of v as a vector of U lanes (bit
// cast, no value conversion). Lane bytes are little-endian, so lane 0 of
// the result starts at byte 0 of lane 0 of v. It panics if the two vector
// types have different byte widths.
func Reinterpret[U Lanes, RU Register[U, RU], T Lanes, R Register[T, R]](v Vec[T, R]) Vec[U, RU] {
	var out RU
	inSize, outSize := sizeOf[T](), sizeOf[U]()
	if v.r.NumLanes()*inSize != out.NumLanes()*outSize {
		panic(fmt.Sprintf("wide: cannot reinterpret %d-byte vector as %d-byte vector",
			v.r.NumLanes()*inSize, out.NumLanes()*outSize))
	}
	var acc uint64
	var have, lane int
	flush := func() {
		out = out.WithLane(lane, fromBits[U](acc))
		lane++
		acc, have = 0, 0
	}
	for i := range v.r.NumLanes() {
		b := bitsOf(v.r.Lane(i))
		for k := range inSize {
			acc |= (b >> (8 * uint(k)) & 0xFF) << (8 * uint(have))
			have++
			if have == outSize {
				flush()
			}
		}
	}
	return Vec[U, RU]{r: out}
}
