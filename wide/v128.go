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

// V128 is a portable 128-bit register held in two 64-bit words. Lane i
// occupies bits [i*w, (i+1)*w) counting through lo and then hi, where w is
// the lane width in bits.
//
// Bitwise operations, shifts, sign manipulation and integer add/sub run on
// whole words (SWAR). Other operations run lane by lane through the shared
// scalar helpers.
type V128[T Lanes] struct {
	lo, hi uint64
}

// repeatLane replicates the low lane-width bits of p across a word.
func repeatLane[T Lanes](p uint64) uint64 {
	w := widthOf[T]()
	p &= laneMaskOf[T]()
	var r uint64
	for s := uint(0); s < 64; s += w {
		r |= p << s
	}
	return r
}

// highBits has the top bit of every lane set.
func highBits[T Lanes]() uint64 {
	return repeatLane[T](signBitOf[T]())
}

func swarAdd(a, b, h uint64) uint64 {
	return ((a &^ h) + (b &^ h)) ^ ((a ^ b) & h)
}

func swarSub(a, b, h uint64) uint64 {
	return ((a | h) - (b &^ h)) ^ ((a ^ ^b) & h)
}

func (v V128[T]) words(f func(uint64) uint64) V128[T] {
	return V128[T]{lo: f(v.lo), hi: f(v.hi)}
}

func (v V128[T]) words2(b V128[T], f func(uint64, uint64) uint64) V128[T] {
	return V128[T]{lo: f(v.lo, b.lo), hi: f(v.hi, b.hi)}
}

func (v V128[T]) lanewise(b V128[T], f func(T, T) T) V128[T] {
	var out V128[T]
	for i := range v.NumLanes() {
		out = out.WithLane(i, f(v.Lane(i), b.Lane(i)))
	}
	return out
}

func (v V128[T]) lanewise1(f func(T) T) V128[T] {
	var out V128[T]
	for i := range v.NumLanes() {
		out = out.WithLane(i, f(v.Lane(i)))
	}
	return out
}

func (V128[T]) NumLanes() int {
	return 16 / sizeOf[T]()
}

func (v V128[T]) Lane(i int) T {
	w := widthOf[T]()
	per := int(64 / w)
	word := v.lo
	if i >= per {
		word = v.hi
		i -= per
	}
	return fromBits[T](word >> (uint(i) * w) & laneMaskOf[T]())
}

func (v V128[T]) WithLane(i int, x T) V128[T] {
	w := widthOf[T]()
	per := int(64 / w)
	word := &v.lo
	if i >= per {
		word = &v.hi
		i -= per
	}
	shift := uint(i) * w
	*word = *word&^(laneMaskOf[T]()<<shift) | bitsOf(x)<<shift
	return v
}

func (V128[T]) Splat(x T) V128[T] {
	r := repeatLane[T](bitsOf(x))
	return V128[T]{lo: r, hi: r}
}

func (v V128[T]) LoadSlice(src []T) V128[T] {
	n := v.NumLanes()
	checkLen(len(src), n)
	var out V128[T]
	for i := range n {
		out = out.WithLane(i, src[i])
	}
	return out
}

func (v V128[T]) StoreSlice(dst []T) {
	n := v.NumLanes()
	checkLen(len(dst), n)
	for i := range n {
		dst[i] = v.Lane(i)
	}
}

func (v V128[T]) Add(b V128[T]) V128[T] {
	if kindOf[T]() == kindFloat {
		return v.lanewise(b, addLane[T])
	}
	return v.IntAdd(b)
}

func (v V128[T]) Sub(b V128[T]) V128[T] {
	if kindOf[T]() == kindFloat {
		return v.lanewise(b, subLane[T])
	}
	return v.IntSub(b)
}

func (v V128[T]) Mul(b V128[T]) V128[T] { return v.lanewise(b, mulLane[T]) }
func (v V128[T]) Div(b V128[T]) V128[T] { return v.lanewise(b, divLane[T]) }
func (v V128[T]) Min(b V128[T]) V128[T] { return v.lanewise(b, minLane[T]) }
func (v V128[T]) Max(b V128[T]) V128[T] { return v.lanewise(b, maxLane[T]) }

func (v V128[T]) MulAdd(b, c V128[T]) V128[T] {
	var out V128[T]
	for i := range v.NumLanes() {
		out = out.WithLane(i, fmaLane(v.Lane(i), b.Lane(i), c.Lane(i)))
	}
	return out
}

func (v V128[T]) Neg() V128[T] {
	h := highBits[T]()
	if kindOf[T]() == kindFloat {
		return v.words(func(a uint64) uint64 { return a ^ h })
	}
	return v.words(func(a uint64) uint64 { return swarSub(0, a, h) })
}

func (v V128[T]) Abs() V128[T] {
	switch kindOf[T]() {
	case kindFloat:
		h := highBits[T]()
		return v.words(func(a uint64) uint64 { return a &^ h })
	case kindSigned:
		return v.lanewise1(absLane[T])
	}
	return v
}

func (v V128[T]) Sqrt() V128[T]           { return v.lanewise1(sqrtLane[T]) }
func (v V128[T]) Round() V128[T]          { return v.lanewise1(roundLane[T]) }
func (v V128[T]) Floor() V128[T]          { return v.lanewise1(floorLane[T]) }
func (v V128[T]) Ceil() V128[T]           { return v.lanewise1(ceilLane[T]) }
func (v V128[T]) Trunc() V128[T]          { return v.lanewise1(truncLane[T]) }
func (v V128[T]) ConvertToInt() V128[T]   { return v.lanewise1(toIntLane[T]) }
func (v V128[T]) ConvertFromInt() V128[T] { return v.lanewise1(fromIntLane[T]) }

func (v V128[T]) IntAdd(b V128[T]) V128[T] {
	h := highBits[T]()
	return v.words2(b, func(x, y uint64) uint64 { return swarAdd(x, y, h) })
}

func (v V128[T]) IntSub(b V128[T]) V128[T] {
	h := highBits[T]()
	return v.words2(b, func(x, y uint64) uint64 { return swarSub(x, y, h) })
}

func (v V128[T]) And(b V128[T]) V128[T] { return V128[T]{lo: v.lo & b.lo, hi: v.hi & b.hi} }
func (v V128[T]) Or(b V128[T]) V128[T]  { return V128[T]{lo: v.lo | b.lo, hi: v.hi | b.hi} }
func (v V128[T]) Xor(b V128[T]) V128[T] { return V128[T]{lo: v.lo ^ b.lo, hi: v.hi ^ b.hi} }
func (v V128[T]) Not() V128[T]          { return V128[T]{lo: ^v.lo, hi: ^v.hi} }

// AndNot returns ^v & b.
func (v V128[T]) AndNot(b V128[T]) V128[T] {
	return V128[T]{lo: ^v.lo & b.lo, hi: ^v.hi & b.hi}
}

func (v V128[T]) ShiftLeft(n uint) V128[T] {
	w := widthOf[T]()
	if n >= w {
		return V128[T]{}
	}
	keep := repeatLane[T](laneMaskOf[T]() << n)
	return v.words(func(a uint64) uint64 { return a << n & keep })
}

func (v V128[T]) ShiftRightLogical(n uint) V128[T] {
	w := widthOf[T]()
	if n >= w {
		return V128[T]{}
	}
	keep := repeatLane[T](laneMaskOf[T]() >> n)
	return v.words(func(a uint64) uint64 { return a >> n & keep })
}

func (v V128[T]) ShiftRight(n uint) V128[T] {
	if kindOf[T]() != kindSigned {
		return v.ShiftRightLogical(n)
	}
	w := widthOf[T]()
	if n >= w {
		n = w - 1
	}
	h := highBits[T]()
	keep := repeatLane[T](laneMaskOf[T]() >> n)
	// Sign fill for the vacated top n bits of each lane.
	fill := (laneMaskOf[T]() >> (w - n)) << (w - n)
	if n == 0 {
		fill = 0
	}
	return v.words(func(a uint64) uint64 {
		ones := (a & h) >> (w - 1)
		return a>>n&keep | ones*fill
	})
}

func (v V128[T]) Eq(b V128[T]) V128[T] { return v.lanewise(b, eqLane[T]) }
func (v V128[T]) Ne(b V128[T]) V128[T] { return v.lanewise(b, neLane[T]) }
func (v V128[T]) Lt(b V128[T]) V128[T] { return v.lanewise(b, ltLane[T]) }
func (v V128[T]) Le(b V128[T]) V128[T] { return v.lanewise(b, leLane[T]) }
func (v V128[T]) Gt(b V128[T]) V128[T] { return v.lanewise(b, gtLane[T]) }
func (v V128[T]) Ge(b V128[T]) V128[T] { return v.lanewise(b, geLane[T]) }

func (v V128[T]) IsNaN() V128[T] {
	if kindOf[T]() != kindFloat {
		return V128[T]{}
	}
	return v.lanewise1(nanLane[T])
}

// Select spreads the sign bit of each lane of v over the whole lane and
// blends yes and no with it.
func (v V128[T]) Select(yes, no V128[T]) V128[T] {
	h := highBits[T]()
	w := widthOf[T]()
	full := laneMaskOf[T]()
	spread := func(m uint64) uint64 { return ((m & h) >> (w - 1)) * full }
	lo, hi := spread(v.lo), spread(v.hi)
	return V128[T]{
		lo: lo&yes.lo | ^lo&no.lo,
		hi: hi&yes.hi | ^hi&no.hi,
	}
}

func (v V128[T]) SignMask() uint64 {
	w := widthOf[T]()
	per := int(64 / w)
	var m uint64
	for i := range per {
		shift := uint(i)*w + w - 1
		m |= (v.lo >> shift & 1) << uint(i)
		m |= (v.hi >> shift & 1) << uint(i+per)
	}
	return m
}
