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

import "math/bits"

// This file provides bit manipulation operations for single lanes.
// Widening to uint64 is lossless for every Lane type, so one code path
// serves all widths.

// Clz counts the leading zero bits of v within the width of T.
// Clz of zero is the full width, e.g. 8 for UByte.
// Only leading zeros count: Clz(UByte(0x11)) is 3, not the 6 zero bits.
func Clz[T Lane](v T) T {
	return T(bits.LeadingZeros64(uint64(v)) - (64 - Bits[T]()))
}

// PopCount counts the set bits of v.
func PopCount[T Lane](v T) T {
	return T(bits.OnesCount64(uint64(v)))
}

// TrailingZeroCount counts the trailing zero bits of v.
// TrailingZeroCount of zero is the full width of T.
func TrailingZeroCount[T Lane](v T) T {
	if v == 0 {
		return T(Bits[T]())
	}
	return T(bits.TrailingZeros64(uint64(v)))
}
