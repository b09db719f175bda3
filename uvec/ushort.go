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

// NewUShort creates a UShort from v.
// Negative values fail with ErrNegativeValue; values above 65535 are taken
// modulo 65536.
func NewUShort(v int64) (UShort, error) {
	return New[UShort](v)
}

// Value returns the unsigned value widened to 64 bits.
func (s UShort) Value() uint64 {
	return uint64(s)
}

// Add returns s + o modulo 65536.
func (s UShort) Add(o UShort) UShort {
	return s + o
}

// Sub returns s - o modulo 65536.
func (s UShort) Sub(o UShort) UShort {
	return s - o
}

// Mul returns s * o modulo 65536.
func (s UShort) Mul(o UShort) UShort {
	return s * o
}

// Div returns s / o, or ErrDivideByZero if o is zero.
func (s UShort) Div(o UShort) (UShort, error) {
	return Div(s, o)
}

// AddAssign sets s to s + o modulo 65536.
func (s *UShort) AddAssign(o UShort) {
	*s += o
}

// SubAssign sets s to s - o modulo 65536.
func (s *UShort) SubAssign(o UShort) {
	*s -= o
}

// MulAssign sets s to s * o modulo 65536.
func (s *UShort) MulAssign(o UShort) {
	*s *= o
}

// DivAssign sets s to s / o. If o is zero it returns ErrDivideByZero
// and leaves s unchanged.
func (s *UShort) DivAssign(o UShort) error {
	q, err := Div(*s, o)
	if err != nil {
		return err
	}
	*s = q
	return nil
}

// Set overwrites s with o.
func (s *UShort) Set(o UShort) {
	*s = o
}

func (s UShort) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
