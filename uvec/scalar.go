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

package uvec

import "fmt"

// This file provides the generic scalar operations shared by every lane width.
// Native unsigned arithmetic already wraps modulo 2^W, so Add, Sub and Mul are
// plain operators; only construction and division need checks.

// New creates a lane of type T from a signed seed.
// Negative seeds fail with ErrNegativeValue. Seeds wider than T are
// truncated modulo 2^W, so New[UByte](257) is 1.
func New[T Lane](v int64) (T, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, v)
	}
	return T(uint64(v)), nil
}

// MustNew is like New but panics if the seed is negative.
// It is intended for constants and tests.
func MustNew[T Lane](v int64) T {
	x, err := New[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Truncate converts v to T modulo 2^W without validation.
func Truncate[T Lane](v uint64) T {
	return T(v)
}

// Add returns a + b modulo 2^W.
func Add[T Lane](a, b T) T {
	return a + b
}

// Sub returns a - b modulo 2^W.
// For example, for UByte: 0 - 1 = 255.
func Sub[T Lane](a, b T) T {
	return a - b
}

// Mul returns a * b modulo 2^W.
func Mul[T Lane](a, b T) T {
	return a * b
}

// Div returns a / b, or ErrDivideByZero if b is zero.
func Div[T Lane](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Min returns the smaller of a and b.
func Min[T Lane](a, b T) T {
	return min(a, b)
}

// Max returns the larger of a and b.
func Max[T Lane](a, b T) T {
	return max(a, b)
}
