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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-uvec/uvec"
)

func TestSumExample(t *testing.T) {
	assert.Equal(t, uvec.UByte(45), Sum([]uvec.UByte{200, 100, 1}))
	assert.Equal(t, uvec.UByte(0), Sum([]uvec.UByte(nil)))
}

func testSumDot[T uvec.Lane](t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := randomLanes[T](rng, n)
			b := randomLanes[T](rng, n)

			var wantSum, wantDot T
			for i := range n {
				wantSum += a[i]
				wantDot += a[i] * b[i]
			}
			assert.Equal(t, wantSum, Sum(a))
			assert.Equal(t, wantDot, Dot(a, b))
		})
	}
}

func TestSumDot(t *testing.T) {
	t.Run("UByte", testSumDot[uvec.UByte])
	t.Run("UShort", testSumDot[uvec.UShort])
	t.Run("UInt", testSumDot[uvec.UInt])
	t.Run("ULong", testSumDot[uvec.ULong])
}

func TestDotMatchesVector(t *testing.T) {
	a := uvec.NewVec4[uvec.UInt](1, 2, 3, 0xffffffff)
	b := uvec.NewVec4[uvec.UInt](4, 5, 6, 2)
	assert.Equal(t, a.Dot(b), Dot(a[:], b[:]))
	assert.Equal(t, a.ElementSum(), Sum(a[:]))
}
