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

package main

import "text/template"

// vecTemplate renders one VecN type. Lane loops live in package uvec
// (lanes.go); the generated methods only forward v[:] to them.
var vecTemplate = template.Must(template.New("vec").Parse(`// Code generated by uvecgen. DO NOT EDIT.

package {{.Pkg}}

// Vec{{.N}} is a vector of {{.Word}} unsigned lanes of type T.
//
// The zero value has every lane set to zero. Vec{{.N}} is a value type:
// assignment copies the lanes, so two vectors never share storage.
type Vec{{.N}}[T Lane] [{{.N}}]T

// NewVec{{.N}} returns the vector ({{.Params}}).
func NewVec{{.N}}[T Lane]({{.ParamDecl}}) Vec{{.N}}[T] {
	return Vec{{.N}}[T]{{printf "{%s}" .Params}}
}

// SplatVec{{.N}} returns a vector with every lane set to s.
func SplatVec{{.N}}[T Lane](s T) Vec{{.N}}[T] {
	var v Vec{{.N}}[T]
	for i := range v {
		v[i] = s
	}
	return v
}

// LoadVec{{.N}} reads {{.N}} consecutive lanes from src starting at offset.
// It panics if src holds fewer than offset+{{.N}} elements.
func LoadVec{{.N}}[T Lane](src []T, offset int) Vec{{.N}}[T] {
	_ = src[offset+{{.Last}}] // bounds check
	var v Vec{{.N}}[T]
	copy(v[:], src[offset:])
	return v
}
{{range .Lanes}}
// {{.Field}} returns lane {{.Index}}.
func (v Vec{{$.N}}[T]) {{.Field}}() T {
	return v[{{.Index}}]
}
{{end}}
// Len returns the number of lanes, always {{.N}}.
func (v Vec{{.N}}[T]) Len() int {
	return {{.N}}
}

// Get returns lane i, or an *IndexError if i is outside [0, {{.N}}).
func (v Vec{{.N}}[T]) Get(i int) (T, error) {
	return getLane(v[:], i)
}

// SetAt sets lane i to value. Out-of-range indices return an *IndexError
// and leave v unchanged.
func (v *Vec{{.N}}[T]) SetAt(i int, value T) error {
	return setLane(v[:], i, value)
}

// AddAt adds value to lane i, wrapping modulo 2^W. Out-of-range indices
// return an *IndexError and leave v unchanged.
func (v *Vec{{.N}}[T]) AddAt(i int, value T) error {
	return addLane(v[:], i, value)
}

// SetValues sets every lane at once.
func (v *Vec{{.N}}[T]) SetValues({{.ParamDecl}}) {
	*v = Vec{{.N}}[T]{{printf "{%s}" .Params}}
}

// Set overwrites v with o.
func (v *Vec{{.N}}[T]) Set(o Vec{{.N}}[T]) {
	*v = o
}

// CopyTo writes the lanes to dst[offset:offset+{{.N}}].
// It panics if dst holds fewer than offset+{{.N}} elements.
func (v Vec{{.N}}[T]) CopyTo(dst []T, offset int) {
	_ = dst[offset+{{.Last}}] // bounds check
	copy(dst[offset:], v[:])
}
{{range .Ops}}
// {{.Name}} returns v {{.Sym}} o lane by lane. Each lane wraps modulo 2^W.
func (v Vec{{$.N}}[T]) {{.Name}}(o Vec{{$.N}}[T]) Vec{{$.N}}[T] {
	{{.Helper}}Lanes(v[:], o[:])
	return v
}

// {{.Name}}Scalar returns v {{.Sym}} s applied to every lane.
func (v Vec{{$.N}}[T]) {{.Name}}Scalar(s T) Vec{{$.N}}[T] {
	{{.Helper}}ScalarLanes(v[:], s)
	return v
}

// {{.Name}}Assign sets v to v {{.Sym}} o.
func (v *Vec{{$.N}}[T]) {{.Name}}Assign(o Vec{{$.N}}[T]) {
	{{.Helper}}Lanes(v[:], o[:])
}

// {{.Name}}ScalarAssign sets v to v {{.Sym}} s.
func (v *Vec{{$.N}}[T]) {{.Name}}ScalarAssign(s T) {
	{{.Helper}}ScalarLanes(v[:], s)
}
{{end}}
// Div returns v / o lane by lane. A zero lane in o fails with
// ErrDivideByZero.
func (v Vec{{.N}}[T]) Div(o Vec{{.N}}[T]) (Vec{{.N}}[T], error) {
	if err := divLanes(v[:], o[:]); err != nil {
		return Vec{{.N}}[T]{}, err
	}
	return v, nil
}

// DivScalar returns v / s applied to every lane.
func (v Vec{{.N}}[T]) DivScalar(s T) (Vec{{.N}}[T], error) {
	if err := divScalarLanes(v[:], s); err != nil {
		return Vec{{.N}}[T]{}, err
	}
	return v, nil
}

// DivAssign sets v to v / o. On error v is left unchanged.
func (v *Vec{{.N}}[T]) DivAssign(o Vec{{.N}}[T]) error {
	return divLanes(v[:], o[:])
}

// DivScalarAssign sets v to v / s. On error v is left unchanged.
func (v *Vec{{.N}}[T]) DivScalarAssign(s T) error {
	return divScalarLanes(v[:], s)
}

// Dot returns the sum of the lane products. The accumulation happens in T,
// so it wraps modulo 2^W like any other lane arithmetic.
func (v Vec{{.N}}[T]) Dot(o Vec{{.N}}[T]) T {
	return dotLanes(v[:], o[:])
}

// AddMultiple sets v to v + a*factor lane by lane.
func (v *Vec{{.N}}[T]) AddMultiple(a Vec{{.N}}[T], factor T) {
	mulAddLanes(v[:], a[:], factor)
}

// ElementSum returns the wrapping sum of all lanes.
func (v Vec{{.N}}[T]) ElementSum() T {
	return sumLanes(v[:])
}

// Min returns the lane-wise minimum of v and o.
func (v Vec{{.N}}[T]) Min(o Vec{{.N}}[T]) Vec{{.N}}[T] {
	minLanes(v[:], o[:])
	return v
}

// Max returns the lane-wise maximum of v and o.
func (v Vec{{.N}}[T]) Max(o Vec{{.N}}[T]) Vec{{.N}}[T] {
	maxLanes(v[:], o[:])
	return v
}

// Clz returns the leading zero count of every lane.
func (v Vec{{.N}}[T]) Clz() Vec{{.N}}[T] {
	clzLanes(v[:])
	return v
}

// PopCount returns the set bit count of every lane.
func (v Vec{{.N}}[T]) PopCount() Vec{{.N}}[T] {
	popCountLanes(v[:])
	return v
}

func (v Vec{{.N}}[T]) String() string {
	return formatLanes(v[:])
}
`))
