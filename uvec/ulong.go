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

import "strconv"

// NewULong creates a ULong from v.
// Negative values fail with ErrNegativeValue. Every non-negative int64 fits,
// so no truncation happens; use Truncate to build values above 2^63-1.
func NewULong(v int64) (ULong, error) {
	return New[ULong](v)
}

// Value returns the unsigned value.
func (l ULong) Value() uint64 {
	return uint64(l)
}

// Add returns l + o modulo 2^64.
func (l ULong) Add(o ULong) ULong {
	return l + o
}

// Sub returns l - o modulo 2^64.
func (l ULong) Sub(o ULong) ULong {
	return l - o
}

// Mul returns l * o modulo 2^64.
func (l ULong) Mul(o ULong) ULong {
	return l * o
}

// Div returns l / o, or ErrDivideByZero if o is zero.
func (l ULong) Div(o ULong) (ULong, error) {
	return Div(l, o)
}

// AddAssign sets l to l + o modulo 2^64.
func (l *ULong) AddAssign(o ULong) {
	*l += o
}

// SubAssign sets l to l - o modulo 2^64.
func (l *ULong) SubAssign(o ULong) {
	*l -= o
}

// MulAssign sets l to l * o modulo 2^64.
func (l *ULong) MulAssign(o ULong) {
	*l *= o
}

// DivAssign sets l to l / o. If o is zero it returns ErrDivideByZero
// and leaves l unchanged.
func (l *ULong) DivAssign(o ULong) error {
	q, err := Div(*l, o)
	if err != nil {
		return err
	}
	*l = q
	return nil
}

// Set overwrites l with o.
func (l *ULong) Set(o ULong) {
	*l = o
}

func (l ULong) String() string {
	return strconv.FormatUint(uint64(l), 10)
}
