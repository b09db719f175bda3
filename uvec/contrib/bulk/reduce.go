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

import "github.com/ajroetker/go-uvec/uvec"

// Sum returns the wrapping sum of all elements. Returns 0 for an empty slice.
//
// Example:
//
//	Sum([]uvec.UByte{200, 100, 1}) // 45, i.e. 301 mod 256
func Sum[T uvec.Lane](s []T) T {
	var acc uvec.Vec4[T]
	var i int
	for ; i+blockLanes <= len(s); i += blockLanes {
		acc.AddAssign(uvec.LoadVec4(s, i))
	}
	result := acc.ElementSum()
	for ; i < len(s); i++ {
		result += s[i]
	}
	return result
}

// Dot returns the wrapping dot product of a and b over their common length.
// It equals VecN.Dot for vectors of the same lanes.
func Dot[T uvec.Lane](a, b []T) T {
	n := min(len(a), len(b))
	var acc uvec.Vec4[T]
	var i int
	for ; i+blockLanes <= n; i += blockLanes {
		acc.AddAssign(uvec.LoadVec4(a, i).Mul(uvec.LoadVec4(b, i)))
	}
	result := acc.ElementSum()
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}
