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

// Saturated operations clamp results to [0, MaxValue] instead of wrapping.
// The default lane arithmetic always wraps; these are opt-in.

// SaturatedAdd returns a + b clamped to MaxValue[T].
// For example, for UByte: 250 + 10 = 255 (not 4).
func SaturatedAdd[T Lane](a, b T) T {
	sum := a + b
	if sum < a {
		return MaxValue[T]()
	}
	return sum
}

// SaturatedSub returns a - b clamped to zero.
// For example, for UByte: 10 - 20 = 0 (not 246).
func SaturatedSub[T Lane](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// AbsDiff returns max(a, b) - min(a, b).
func AbsDiff[T Lane](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
