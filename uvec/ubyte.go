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

// NewUByte creates a UByte from v.
// Negative values fail with ErrNegativeValue; values above 255 are taken
// modulo 256.
func NewUByte(v int64) (UByte, error) {
	return New[UByte](v)
}

// Value returns the unsigned value widened to 64 bits.
func (b UByte) Value() uint64 {
	return uint64(b)
}

// Add returns b + o modulo 256.
func (b UByte) Add(o UByte) UByte {
	return b + o
}

// Sub returns b - o modulo 256.
func (b UByte) Sub(o UByte) UByte {
	return b - o
}

// Mul returns b * o modulo 256.
func (b UByte) Mul(o UByte) UByte {
	return b * o
}

// Div returns b / o, or ErrDivideByZero if o is zero.
func (b UByte) Div(o UByte) (UByte, error) {
	return Div(b, o)
}

// AddAssign sets b to b + o modulo 256.
func (b *UByte) AddAssign(o UByte) {
	*b += o
}

// SubAssign sets b to b - o modulo 256.
func (b *UByte) SubAssign(o UByte) {
	*b -= o
}

// MulAssign sets b to b * o modulo 256.
func (b *UByte) MulAssign(o UByte) {
	*b *= o
}

// DivAssign sets b to b / o. If o is zero it returns ErrDivideByZero
// and leaves b unchanged.
func (b *UByte) DivAssign(o UByte) error {
	q, err := Div(*b, o)
	if err != nil {
		return err
	}
	*b = q
	return nil
}

// Set overwrites b with o.
func (b *UByte) Set(o UByte) {
	*b = o
}

func (b UByte) String() string {
	return strconv.FormatUint(uint64(b), 10)
}
