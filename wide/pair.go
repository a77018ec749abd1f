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

// Pair composes an N-lane register from two N/2-lane halves. Lanes
// [0, N/2) live in lo and lanes [N/2, N) in hi. Every operation is applied
// to both halves independently, so a Pair behaves exactly like a single
// register of twice the width, at any nesting depth.
type Pair[T Lanes, H Register[T, H]] struct {
	lo, hi H
}

// Halves returns the low and high halves of p.
func (p Pair[T, H]) Halves() (lo, hi H) {
	return p.lo, p.hi
}

// Combine builds a Pair from its two halves.
func Combine[T Lanes, H Register[T, H]](lo, hi H) Pair[T, H] {
	return Pair[T, H]{lo: lo, hi: hi}
}

func (p Pair[T, H]) half() int {
	return p.lo.NumLanes()
}

func (p Pair[T, H]) NumLanes() int {
	return 2 * p.lo.NumLanes()
}

func (p Pair[T, H]) Lane(i int) T {
	if n := p.half(); i >= n {
		return p.hi.Lane(i - n)
	}
	return p.lo.Lane(i)
}

func (p Pair[T, H]) WithLane(i int, x T) Pair[T, H] {
	if n := p.half(); i >= n {
		p.hi = p.hi.WithLane(i-n, x)
	} else {
		p.lo = p.lo.WithLane(i, x)
	}
	return p
}

func (p Pair[T, H]) Splat(x T) Pair[T, H] {
	h := p.lo.Splat(x)
	return Pair[T, H]{lo: h, hi: h}
}

func (p Pair[T, H]) LoadSlice(src []T) Pair[T, H] {
	n := p.half()
	checkLen(len(src), 2*n)
	return Pair[T, H]{lo: p.lo.LoadSlice(src[:n]), hi: p.hi.LoadSlice(src[n : 2*n])}
}

func (p Pair[T, H]) StoreSlice(dst []T) {
	n := p.half()
	checkLen(len(dst), 2*n)
	p.lo.StoreSlice(dst[:n])
	p.hi.StoreSlice(dst[n : 2*n])
}

func (p Pair[T, H]) Add(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Add(b.lo), hi: p.hi.Add(b.hi)}
}

func (p Pair[T, H]) Sub(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Sub(b.lo), hi: p.hi.Sub(b.hi)}
}

func (p Pair[T, H]) Mul(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Mul(b.lo), hi: p.hi.Mul(b.hi)}
}

func (p Pair[T, H]) Div(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Div(b.lo), hi: p.hi.Div(b.hi)}
}

func (p Pair[T, H]) MulAdd(b, c Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.MulAdd(b.lo, c.lo), hi: p.hi.MulAdd(b.hi, c.hi)}
}

func (p Pair[T, H]) Min(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Min(b.lo), hi: p.hi.Min(b.hi)}
}

func (p Pair[T, H]) Max(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Max(b.lo), hi: p.hi.Max(b.hi)}
}

func (p Pair[T, H]) Neg() Pair[T, H]  { return Pair[T, H]{lo: p.lo.Neg(), hi: p.hi.Neg()} }
func (p Pair[T, H]) Abs() Pair[T, H]  { return Pair[T, H]{lo: p.lo.Abs(), hi: p.hi.Abs()} }
func (p Pair[T, H]) Sqrt() Pair[T, H] { return Pair[T, H]{lo: p.lo.Sqrt(), hi: p.hi.Sqrt()} }

func (p Pair[T, H]) Round() Pair[T, H] { return Pair[T, H]{lo: p.lo.Round(), hi: p.hi.Round()} }
func (p Pair[T, H]) Floor() Pair[T, H] { return Pair[T, H]{lo: p.lo.Floor(), hi: p.hi.Floor()} }
func (p Pair[T, H]) Ceil() Pair[T, H]  { return Pair[T, H]{lo: p.lo.Ceil(), hi: p.hi.Ceil()} }
func (p Pair[T, H]) Trunc() Pair[T, H] { return Pair[T, H]{lo: p.lo.Trunc(), hi: p.hi.Trunc()} }

func (p Pair[T, H]) ConvertToInt() Pair[T, H] {
	return Pair[T, H]{lo: p.lo.ConvertToInt(), hi: p.hi.ConvertToInt()}
}

func (p Pair[T, H]) ConvertFromInt() Pair[T, H] {
	return Pair[T, H]{lo: p.lo.ConvertFromInt(), hi: p.hi.ConvertFromInt()}
}

func (p Pair[T, H]) IntAdd(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.IntAdd(b.lo), hi: p.hi.IntAdd(b.hi)}
}

func (p Pair[T, H]) IntSub(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.IntSub(b.lo), hi: p.hi.IntSub(b.hi)}
}

func (p Pair[T, H]) And(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.And(b.lo), hi: p.hi.And(b.hi)}
}

func (p Pair[T, H]) Or(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Or(b.lo), hi: p.hi.Or(b.hi)}
}

func (p Pair[T, H]) Xor(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Xor(b.lo), hi: p.hi.Xor(b.hi)}
}

func (p Pair[T, H]) AndNot(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.AndNot(b.lo), hi: p.hi.AndNot(b.hi)}
}

func (p Pair[T, H]) Not() Pair[T, H] { return Pair[T, H]{lo: p.lo.Not(), hi: p.hi.Not()} }

func (p Pair[T, H]) ShiftLeft(n uint) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.ShiftLeft(n), hi: p.hi.ShiftLeft(n)}
}

func (p Pair[T, H]) ShiftRight(n uint) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.ShiftRight(n), hi: p.hi.ShiftRight(n)}
}

func (p Pair[T, H]) ShiftRightLogical(n uint) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.ShiftRightLogical(n), hi: p.hi.ShiftRightLogical(n)}
}

func (p Pair[T, H]) Eq(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Eq(b.lo), hi: p.hi.Eq(b.hi)}
}

func (p Pair[T, H]) Ne(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Ne(b.lo), hi: p.hi.Ne(b.hi)}
}

func (p Pair[T, H]) Lt(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Lt(b.lo), hi: p.hi.Lt(b.hi)}
}

func (p Pair[T, H]) Le(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Le(b.lo), hi: p.hi.Le(b.hi)}
}

func (p Pair[T, H]) Gt(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Gt(b.lo), hi: p.hi.Gt(b.hi)}
}

func (p Pair[T, H]) Ge(b Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Ge(b.lo), hi: p.hi.Ge(b.hi)}
}

func (p Pair[T, H]) IsNaN() Pair[T, H] { return Pair[T, H]{lo: p.lo.IsNaN(), hi: p.hi.IsNaN()} }

func (p Pair[T, H]) Select(yes, no Pair[T, H]) Pair[T, H] {
	return Pair[T, H]{lo: p.lo.Select(yes.lo, no.lo), hi: p.hi.Select(yes.hi, no.hi)}
}

// SignMask recombines the halves: lane i of hi is bit N/2+i.
func (p Pair[T, H]) SignMask() uint64 {
	return p.lo.SignMask() | p.hi.SignMask()<<uint(p.half())
}
