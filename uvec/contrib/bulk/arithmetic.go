// Copyright 2025 go-uvec Authors
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

package bulk

import (
	"fmt"

	"github.com/ajroetker/go-uvec/uvec"
)

// blockLanes is the number of lanes handled per uvec.Vec4 block.
const blockLanes = 4

// binaryTo computes dst[i] = lane(a[i], b[i]), using block for every full
// Vec4 and lane for the tail. dst may alias a or b.
func binaryTo[T uvec.Lane](dst, a, b []T, block func(x, y uvec.Vec4[T]) uvec.Vec4[T], lane func(x, y T) T) {
	n := min(len(dst), len(a), len(b))
	var i int
	for ; i+blockLanes <= n; i += blockLanes {
		block(uvec.LoadVec4(a, i), uvec.LoadVec4(b, i)).CopyTo(dst, i)
	}
	for ; i < n; i++ {
		dst[i] = lane(a[i], b[i])
	}
}

// unaryTo computes dst[i] = lane(s[i]) with the same blocking as binaryTo.
func unaryTo[T uvec.Lane](dst, s []T, block func(x uvec.Vec4[T]) uvec.Vec4[T], lane func(x T) T) {
	n := min(len(dst), len(s))
	var i int
	for ; i+blockLanes <= n; i += blockLanes {
		block(uvec.LoadVec4(s, i)).CopyTo(dst, i)
	}
	for ; i < n; i++ {
		dst[i] = lane(s[i])
	}
}

// Add performs in-place element-wise addition: dst[i] += s[i].
//
// Example:
//
//	dst := []uvec.UByte{250, 2, 3, 4}
//	s := []uvec.UByte{10, 6, 7, 8}
//	Add(dst, s) // dst is now {4, 8, 10, 12}
func Add[T uvec.Lane](dst, s []T) {
	AddTo(dst, dst, s)
}

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
func AddTo[T uvec.Lane](dst, a, b []T) {
	binaryTo(dst, a, b, uvec.Vec4[T].Add, uvec.Add[T])
}

// Sub performs in-place element-wise subtraction: dst[i] -= s[i].
func Sub[T uvec.Lane](dst, s []T) {
	SubTo(dst, dst, s)
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
func SubTo[T uvec.Lane](dst, a, b []T) {
	binaryTo(dst, a, b, uvec.Vec4[T].Sub, uvec.Sub[T])
}

// Mul performs in-place element-wise multiplication: dst[i] *= s[i].
func Mul[T uvec.Lane](dst, s []T) {
	MulTo(dst, dst, s)
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulTo[T uvec.Lane](dst, a, b []T) {
	binaryTo(dst, a, b, uvec.Vec4[T].Mul, uvec.Mul[T])
}

// Div performs in-place element-wise division: dst[i] /= s[i].
// A zero divisor fails with uvec.ErrDivideByZero before dst is modified.
func Div[T uvec.Lane](dst, s []T) error {
	return DivTo(dst, dst, s)
}

// DivTo performs element-wise division: dst[i] = a[i] / b[i].
// A zero divisor fails with uvec.ErrDivideByZero before dst is modified.
func DivTo[T uvec.Lane](dst, a, b []T) error {
	n := min(len(dst), len(a), len(b))
	for i, d := range b[:n] {
		if d == 0 {
			return fmt.Errorf("element %d: %w", i, uvec.ErrDivideByZero)
		}
	}
	binaryTo(dst, a, b,
		func(x, y uvec.Vec4[T]) uvec.Vec4[T] {
			q, _ := x.Div(y) // divisors checked above
			return q
		},
		func(x, y T) T { return x / y },
	)
	return nil
}

// AddScalar adds s to every element of dst.
func AddScalar[T uvec.Lane](dst []T, s T) {
	unaryTo(dst, dst,
		func(x uvec.Vec4[T]) uvec.Vec4[T] { return x.AddScalar(s) },
		func(x T) T { return x + s },
	)
}

// MulScalar multiplies every element of dst by s.
func MulScalar[T uvec.Lane](dst []T, s T) {
	unaryTo(dst, dst,
		func(x uvec.Vec4[T]) uvec.Vec4[T] { return x.MulScalar(s) },
		func(x T) T { return x * s },
	)
}

// MulAdd computes dst[i] += a[i] * factor, the slice form of AddMultiple.
func MulAdd[T uvec.Lane](dst, a []T, factor T) {
	binaryTo(dst, dst, a,
		func(x, y uvec.Vec4[T]) uvec.Vec4[T] {
			x.AddMultiple(y, factor)
			return x
		},
		func(x, y T) T { return x + y*factor },
	)
}

// MinTo computes dst[i] = min(a[i], b[i]).
func MinTo[T uvec.Lane](dst, a, b []T) {
	binaryTo(dst, a, b, uvec.Vec4[T].Min, uvec.Min[T])
}

// MaxTo computes dst[i] = max(a[i], b[i]).
func MaxTo[T uvec.Lane](dst, a, b []T) {
	binaryTo(dst, a, b, uvec.Vec4[T].Max, uvec.Max[T])
}

// Clz writes the leading zero count of each s[i] into dst[i].
func Clz[T uvec.Lane](dst, s []T) {
	unaryTo(dst, s, uvec.Vec4[T].Clz, uvec.Clz[T])
}

// PopCount writes the set bit count of each s[i] into dst[i].
func PopCount[T uvec.Lane](dst, s []T) {
	unaryTo(dst, s, uvec.Vec4[T].PopCount, uvec.PopCount[T])
}
