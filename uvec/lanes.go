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

import (
	"fmt"
	"strings"
)

// Lane helpers shared by the generated Vec2, Vec3 and Vec4 types.
// The vector methods pass v[:] so that one loop serves every arity; dst and
// src always have the same length there.

func getLane[T Lane](lanes []T, i int) (T, error) {
	if err := checkIndex(i, len(lanes)); err != nil {
		return 0, err
	}
	return lanes[i], nil
}

func setLane[T Lane](lanes []T, i int, value T) error {
	if err := checkIndex(i, len(lanes)); err != nil {
		return err
	}
	lanes[i] = value
	return nil
}

func addLane[T Lane](lanes []T, i int, value T) error {
	if err := checkIndex(i, len(lanes)); err != nil {
		return err
	}
	lanes[i] += value
	return nil
}

func addLanes[T Lane](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func addScalarLanes[T Lane](dst []T, s T) {
	for i := range dst {
		dst[i] += s
	}
}

func subLanes[T Lane](dst, src []T) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

func subScalarLanes[T Lane](dst []T, s T) {
	for i := range dst {
		dst[i] -= s
	}
}

func mulLanes[T Lane](dst, src []T) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

func mulScalarLanes[T Lane](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

// divLanes checks every divisor before writing, so dst is untouched on error.
func divLanes[T Lane](dst, src []T) error {
	for i, d := range src {
		if d == 0 {
			return fmt.Errorf("lane %d: %w", i, ErrDivideByZero)
		}
	}
	for i := range dst {
		dst[i] /= src[i]
	}
	return nil
}

func divScalarLanes[T Lane](dst []T, s T) error {
	if s == 0 {
		return ErrDivideByZero
	}
	for i := range dst {
		dst[i] /= s
	}
	return nil
}

// mulAddLanes computes dst += a * factor per lane.
func mulAddLanes[T Lane](dst, a []T, factor T) {
	for i := range dst {
		dst[i] += a[i] * factor
	}
}

// dotLanes accumulates in T, so the sum wraps modulo 2^W at every step.
func dotLanes[T Lane](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sumLanes[T Lane](lanes []T) T {
	var sum T
	for _, v := range lanes {
		sum += v
	}
	return sum
}

func minLanes[T Lane](dst, src []T) {
	for i := range dst {
		dst[i] = min(dst[i], src[i])
	}
}

func maxLanes[T Lane](dst, src []T) {
	for i := range dst {
		dst[i] = max(dst[i], src[i])
	}
}

func clzLanes[T Lane](lanes []T) {
	for i, v := range lanes {
		lanes[i] = Clz(v)
	}
}

func popCountLanes[T Lane](lanes []T) {
	for i, v := range lanes {
		lanes[i] = PopCount(v)
	}
}

func formatLanes[T Lane](lanes []T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range lanes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", uint64(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
