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

// NewUInt creates a UInt from v.
// Negative values fail with ErrNegativeValue; values above 2^32-1 are taken
// modulo 2^32.
func NewUInt(v int64) (UInt, error) {
	return New[UInt](v)
}

// Value returns the unsigned value widened to 64 bits.
func (u UInt) Value() uint64 {
	return uint64(u)
}

// Add returns u + o modulo 2^32.
func (u UInt) Add(o UInt) UInt {
	return u + o
}

// Sub returns u - o modulo 2^32.
func (u UInt) Sub(o UInt) UInt {
	return u - o
}

// Mul returns u * o modulo 2^32.
func (u UInt) Mul(o UInt) UInt {
	return u * o
}

// Div returns u / o, or ErrDivideByZero if o is zero.
func (u UInt) Div(o UInt) (UInt, error) {
	return Div(u, o)
}

// AddAssign sets u to u + o modulo 2^32.
func (u *UInt) AddAssign(o UInt) {
	*u += o
}

// SubAssign sets u to u - o modulo 2^32.
func (u *UInt) SubAssign(o UInt) {
	*u -= o
}

// MulAssign sets u to u * o modulo 2^32.
func (u *UInt) MulAssign(o UInt) {
	*u *= o
}

// DivAssign sets u to u / o. If o is zero it returns ErrDivideByZero
// and leaves u unchanged.
func (u *UInt) DivAssign(o UInt) error {
	q, err := Div(*u, o)
	if err != nil {
		return err
	}
	*u = q
	return nil
}

// Set overwrites u with o.
func (u *UInt) Set(o UInt) {
	*u = o
}

func (u UInt) String() string {
	return strconv.FormatUint(uint64(u), 10)
}
