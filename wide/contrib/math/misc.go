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

// Recip computes 1/x with a full-precision division.
func Recip[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return wide.Div(set[T, R](1), x)
}

// RecipSqrt computes 1/sqrt(x). RecipSqrt(+0) = +Inf and RecipSqrt(x < 0)
// = NaN.
func RecipSqrt[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return wide.Div(set[T, R](1), wide.Sqrt(x))
}

// ToDegrees converts radians to degrees.
func ToDegrees[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return wide.Mul(x, set[T, R](180/stdmath.Pi))
}

// ToRadians converts degrees to radians.
func ToRadians[T wide.Floats, R wide.Register[T, R]](x wide.Vec[T, R]) wide.Vec[T, R] {
	return wide.Mul(x, set[T, R](stdmath.Pi/180))
}
