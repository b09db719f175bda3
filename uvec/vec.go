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

//go:generate go run ../cmd/uvecgen -output . -pkg uvec -arities 2,3,4

// Vec2, Vec3 and Vec4 live in vec*.gen.go. They are arrays, so lane i is
// simply v[i]; Get, SetAt and AddAt are the bounds-checked forms.

// Vector is the method set shared by every generated vector type.
// Bulk code uses it to stay agnostic of the arity.
type Vector[T Lane] interface {
	Len() int
	Get(i int) (T, error)
	CopyTo(dst []T, offset int)
	ElementSum() T
	String() string
}

var (
	_ Vector[UByte]  = Vec2[UByte]{}
	_ Vector[UShort] = Vec3[UShort]{}
	_ Vector[ULong]  = Vec4[ULong]{}
)

// Named vector types, one per width and arity.
type (
	UByte2 = Vec2[UByte]
	UByte3 = Vec3[UByte]
	UByte4 = Vec4[UByte]

	UShort2 = Vec2[UShort]
	UShort3 = Vec3[UShort]
	UShort4 = Vec4[UShort]

	UInt2 = Vec2[UInt]
	UInt3 = Vec3[UInt]
	UInt4 = Vec4[UInt]

	ULong2 = Vec2[ULong]
	ULong3 = Vec3[ULong]
	ULong4 = Vec4[ULong]
)

// Flatten copies the lanes of every vector in vs into one contiguous slice,
// in order. It is the slice form of CopyTo. T usually has to be given
// explicitly: Flatten[uvec.UInt](points).
func Flatten[T Lane, V Vector[T]](vs []V) []T {
	if len(vs) == 0 {
		return nil
	}
	n := vs[0].Len()
	out := make([]T, n*len(vs))
	for i, v := range vs {
		v.CopyTo(out, i*n)
	}
	return out
}
