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

// Package wide provides fixed-width vector types that behave like scalars
// but compute every lane at once.
//
// A vector type such as F32x8 is a Vec over one of several physical
// representations, chosen at compile time by build tags:
//
//   - a native register (simd/archsimd on amd64 with GOEXPERIMENT=simd,
//     or the portable two-word V128 for 128-bit vectors),
//   - a Pair of two half-width registers, nested as deep as needed,
//   - an Array of lanes processed by a scalar loop (the noasm build).
//
// Every representation produces bit-identical results for the same inputs.
//
// Basic usage:
//
//	import "github.com/go-wide/go-wide/wide"
//
//	a := wide.F32x4FromArray([4]float32{1, 2, 3, 4})
//	b := wide.F32x4Splat(5)
//	sum := wide.Add(a, b)
//	mask := wide.LessThan(a, b)
//	out := wide.IfThenElse(mask, sum, b)
//	fmt.Println(wide.F32x4ToArray(out))
package wide

// Floats is a constraint for floating-point lane types.
//
// Lane constraints list exact types: each lane type has a fixed bit
// layout that the representations rely on.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Register is the capability set a physical vector representation
// provides. R is the implementing type itself, so every operation returns
// the same representation it was called on.
//
// All methods are pure. Lane i is the same logical lane in every
// implementation. Comparison methods return all-ones or all-zero lanes.
// Select reads only the sign bit of each receiver lane.
type Register[T Lanes, R any] interface {
	NumLanes() int
	Lane(i int) T
	WithLane(i int, v T) R
	Splat(v T) R
	LoadSlice(src []T) R
	StoreSlice(dst []T)

	Add(b R) R
	Sub(b R) R
	Mul(b R) R
	Div(b R) R
	MulAdd(b, c R) R
	Min(b R) R
	Max(b R) R
	Neg() R
	Abs() R
	Sqrt() R

	Round() R
	Floor() R
	Ceil() R
	Trunc() R
	ConvertToInt() R
	ConvertFromInt() R
	IntAdd(b R) R
	IntSub(b R) R

	And(b R) R
	Or(b R) R
	Xor(b R) R
	AndNot(b R) R
	Not() R
	ShiftLeft(n uint) R
	ShiftRight(n uint) R
	ShiftRightLogical(n uint) R

	Eq(b R) R
	Ne(b R) R
	Lt(b R) R
	Le(b R) R
	Gt(b R) R
	Ge(b R) R
	IsNaN() R

	Select(yes, no R) R
	SignMask() uint64
}

// Vec is an N-lane vector of T held in representation R.
//
// Vec is a plain value: copying it copies the lanes. The zero Vec has
// every lane set to zero.
type Vec[T Lanes, R Register[T, R]] struct {
	r R
}

// Mask is the result of a comparison on Vec[T, R]. Every lane is either
// all ones (true) or all zeros (false).
//
// Mask values come from comparisons, lane predicates, MaskFromBits, FirstN
// and the checked MaskFromVec. Arithmetic on a Mask is not possible
// without converting it back with MaskToVec.
type Mask[T Lanes, R Register[T, R]] struct {
	r R
}

// NumLanes returns the number of lanes in v.
func (v Vec[T, R]) NumLanes() int {
	return v.r.NumLanes()
}

// Lane returns lane i of v. It panics if i is out of range.
func (v Vec[T, R]) Lane(i int) T {
	checkLane(i, v.r.NumLanes())
	return v.r.Lane(i)
}

// Raw returns the representation value backing v.
func (v Vec[T, R]) Raw() R {
	return v.r
}

// Store writes the lanes of v to dst[0:N].
// This is the method form of the wide.Store function.
func (v Vec[T, R]) Store(dst []T) {
	Store(v, dst)
}

// Lanes returns the lanes of v as a new slice.
// This is primarily for tests and formatting.
func (v Vec[T, R]) Lanes() []T {
	out := make([]T, v.r.NumLanes())
	v.r.StoreSlice(out)
	return out
}

// String formats v as its lane slice.
func (v Vec[T, R]) String() string {
	return formatLanes(v.Lanes())
}

// FromRaw wraps a representation value as a Vec.
func FromRaw[T Lanes, R Register[T, R]](r R) Vec[T, R] {
	return Vec[T, R]{r: r}
}

// NumLanes returns the number of lanes in m.
func (m Mask[T, R]) NumLanes() int {
	return m.r.NumLanes()
}

// GetBit returns whether lane i is active.
func (m Mask[T, R]) GetBit(i int) bool {
	if i < 0 || i >= m.r.NumLanes() {
		return false
	}
	return m.r.SignMask()>>uint(i)&1 != 0
}

// Bits returns the lane mask packed into an integer: bit i is set when
// lane i is true.
func (m Mask[T, R]) Bits() uint64 {
	return m.r.SignMask()
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T, R]) AllTrue() bool {
	return m.r.SignMask() == lowBits(m.r.NumLanes())
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T, R]) AnyTrue() bool {
	return m.r.SignMask() != 0
}

// NoneTrue returns true if no lane in the mask is active.
func (m Mask[T, R]) NoneTrue() bool {
	return m.r.SignMask() == 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T, R]) CountTrue() int {
	return popCount(m.r.SignMask())
}

// String formats m as a slice of booleans.
func (m Mask[T, R]) String() string {
	n := m.r.NumLanes()
	bits := m.r.SignMask()
	out := make([]bool, n)
	for i := range n {
		out[i] = bits>>uint(i)&1 != 0
	}
	return formatLanes(out)
}

func lowBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}
