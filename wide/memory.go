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
	"unsafe"
)

// Zero returns a vector with all lanes set to zero.
func Zero[T Lanes, R Register[T, R]]() Vec[T, R] {
	return Vec[T, R]{}
}

// Set returns a vector with all lanes set to value.
func Set[T Lanes, R Register[T, R]](value T) Vec[T, R] {
	var r R
	return Vec[T, R]{r: r.Splat(value)}
}

// Load reads N lanes from src in lane order. There is no alignment
// requirement. It panics if src has fewer than N elements.
func Load[T Lanes, R Register[T, R]](src []T) Vec[T, R] {
	var r R
	return Vec[T, R]{r: r.LoadSlice(src)}
}

// Store writes the N lanes of v to dst in lane order.
// It panics if dst has fewer than N elements.
func Store[T Lanes, R Register[T, R]](v Vec[T, R], dst []T) {
	v.r.StoreSlice(dst)
}

// New builds a vector from its lanes, lane 0 first. Missing lanes are
// zero. It panics if more lanes are given than the vector holds.
func New[T Lanes, R Register[T, R]](lanes ...T) Vec[T, R] {
	var r R
	if len(lanes) > r.NumLanes() {
		panic(fmt.Sprintf("wide: %d values for a %d-lane vector", len(lanes), r.NumLanes()))
	}
	for i, x := range lanes {
		r = r.WithLane(i, x)
	}
	return Vec[T, R]{r: r}
}

// SetHighToLow builds a vector from its lanes given highest lane first,
// the argument order of the classic _mm_set_* intrinsics:
// SetHighToLow(e3, e2, e1, e0) puts e0 in lane 0. It is the reverse of
// New and of Load on the same values.
func SetHighToLow[T Lanes, R Register[T, R]](lanes ...T) Vec[T, R] {
	var r R
	n := r.NumLanes()
	if len(lanes) != n {
		panic(fmt.Sprintf("wide: SetHighToLow needs %d values, got %d", n, len(lanes)))
	}
	for i, x := range lanes {
		r = r.WithLane(n-1-i, x)
	}
	return Vec[T, R]{r: r}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes, R Register[T, R]]() Vec[T, R] {
	var r R
	for i := range r.NumLanes() {
		r = r.WithLane(i, T(i))
	}
	return Vec[T, R]{r: r}
}

// LoadReverse reads N lanes from src so that src[0] lands in lane N-1.
func LoadReverse[T Lanes, R Register[T, R]](src []T) Vec[T, R] {
	return Reverse(Load[T, R](src))
}

// StoreReverse writes the lanes of v to dst with lane N-1 at dst[0].
func StoreReverse[T Lanes, R Register[T, R]](v Vec[T, R], dst []T) {
	Store(Reverse(v), dst)
}

// VecBytes returns the byte width of vectors of representation R.
func VecBytes[T Lanes, R Register[T, R]]() int {
	var r R
	return r.NumLanes() * sizeOf[T]()
}

// Alignment returns the address alignment LoadAligned and StoreAligned
// require for vectors of representation R: the vector byte width, capped
// at 64.
func Alignment[T Lanes, R Register[T, R]]() int {
	return min(VecBytes[T, R](), 64)
}

// IsAligned reports whether &s[0] is aligned to align bytes.
// An empty slice is never aligned.
func IsAligned[T Lanes](s []T, align int) bool {
	if len(s) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(align) == 0
}

func checkAligned[T Lanes, R Register[T, R]](s []T) {
	align := Alignment[T, R]()
	if !IsAligned(s, align) {
		panic(fmt.Sprintf("wide: aligned access needs a %d-byte aligned slice", align))
	}
}

// LoadAligned is Load with an alignment precondition: &src[0] must be a
// multiple of Alignment. It panics otherwise.
func LoadAligned[T Lanes, R Register[T, R]](src []T) Vec[T, R] {
	checkAligned[T, R](src)
	return Load[T, R](src)
}

// StoreAligned is Store with an alignment precondition: &dst[0] must be a
// multiple of Alignment. It panics otherwise.
func StoreAligned[T Lanes, R Register[T, R]](v Vec[T, R], dst []T) {
	checkAligned[T, R](dst)
	Store(v, dst)
}

// MakeAligned returns a zeroed slice of n elements whose first element is
// aligned to align bytes. align must be a power of two.
func MakeAligned[T Lanes](n, align int) []T {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("wide: alignment %d is not a power of two", align))
	}
	size := sizeOf[T]()
	pad := (align + size - 1) / size
	buf := make([]T, n+pad)
	if n+pad == 0 {
		return buf
	}
	off := 0
	for !IsAligned(buf[off:], align) {
		off++
	}
	return buf[off : off+n : off+n]
}

// BlendedStore stores lanes of v to dst only where mask is true,
// preserving the existing values in dst elsewhere.
func BlendedStore[T Lanes, R Register[T, R]](v Vec[T, R], mask Mask[T, R], dst []T) {
	n := min(len(dst), v.r.NumLanes())
	bits := mask.r.SignMask()
	for i := range n {
		if bits>>uint(i)&1 != 0 {
			dst[i] = v.r.Lane(i)
		}
	}
}

// MaskLoad loads lanes from src only where mask is true; other lanes are
// zero. Lanes past len(src) are zero as well.
func MaskLoad[T Lanes, R Register[T, R]](mask Mask[T, R], src []T) Vec[T, R] {
	var r R
	bits := mask.r.SignMask()
	n := min(len(src), r.NumLanes())
	for i := range n {
		if bits>>uint(i)&1 != 0 {
			r = r.WithLane(i, src[i])
		}
	}
	return Vec[T, R]{r: r}
}

// LoadN loads the first min(len(src), N) lanes from src and zeroes the
// rest. It is the tail load used by slice kernels.
func LoadN[T Lanes, R Register[T, R]](src []T) Vec[T, R] {
	var r R
	n := min(len(src), r.NumLanes())
	for i := range n {
		r = r.WithLane(i, src[i])
	}
	return Vec[T, R]{r: r}
}

// StoreN writes the first min(len(dst), N) lanes of v to dst.
func StoreN[T Lanes, R Register[T, R]](v Vec[T, R], dst []T) {
	n := min(len(dst), v.r.NumLanes())
	for i := range n {
		dst[i] = v.r.Lane(i)
	}
}
