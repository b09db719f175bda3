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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVecConstructors(t *testing.T) {
	if diff := cmp.Diff(UInt2{3, 4}, NewVec2[UInt](3, 4)); diff != "" {
		t.Errorf("NewVec2 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(UByte3{7, 7, 7}, SplatVec3[UByte](7)); diff != "" {
		t.Errorf("SplatVec3 mismatch (-want +got):\n%s", diff)
	}
	v := NewVec4[ULong](1, 2, 3, 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Errorf("accessors: got %v, want (1, 2, 3, 4)", v)
	}
	var zero UShort3
	if zero.ElementSum() != 0 {
		t.Errorf("zero value: got %v", zero)
	}
}

func TestVecLen(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"UByte2", UByte2{}.Len(), 2},
		{"UShort3", UShort3{}.Len(), 3},
		{"UInt4", UInt4{}.Len(), 4},
		{"ULong2", ULong2{}.Len(), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s.Len() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestVecGetSetAt(t *testing.T) {
	var v UShort4
	for i := range v.Len() {
		if err := v.SetAt(i, UShort(10*(i+1))); err != nil {
			t.Fatalf("SetAt(%d): %v", i, err)
		}
	}
	for i := range v.Len() {
		got, err := v.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if want := UShort(10 * (i + 1)); got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}

	if err := v.AddAt(3, 65535); err != nil {
		t.Fatalf("AddAt(3): %v", err)
	}
	if v.W() != 39 {
		t.Errorf("AddAt wraps: got %d, want 39", v.W())
	}
}

func TestVecIndexOutOfRange(t *testing.T) {
	v := NewVec4[UShort](1, 2, 3, 4)
	before := v

	for _, i := range []int{-1, 4, 100} {
		_, err := v.Get(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): got err %v, want ErrIndexOutOfRange", i, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != i || ie.Length != 4 {
			t.Errorf("Get(%d): got %#v, want IndexError{%d, 4}", i, err, i)
		}
		if err := v.SetAt(i, 9); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetAt(%d): got err %v, want ErrIndexOutOfRange", i, err)
		}
		if err := v.AddAt(i, 9); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("AddAt(%d): got err %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if diff := cmp.Diff(before, v); diff != "" {
		t.Errorf("failed accessors modified the vector (-want +got):\n%s", diff)
	}

	var v2 UByte2
	if _, err := v2.Get(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("UByte2.Get(2): got err %v, want ErrIndexOutOfRange", err)
	}
	var v3 ULong3
	if err := v3.SetAt(3, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("ULong3.SetAt(3): got err %v, want ErrIndexOutOfRange", err)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := UInt2{2, 3}
	b := UInt2{5, 7}

	tests := []struct {
		name string
		got  UInt2
		want UInt2
	}{
		{"Add", a.Add(b), UInt2{7, 10}},
		{"Sub", a.Sub(b), UInt2{0xFFFFFFFD, 0xFFFFFFFC}},
		{"Mul", a.Mul(b), UInt2{10, 21}},
		{"AddScalar", a.AddScalar(1), UInt2{3, 4}},
		{"SubScalar", a.SubScalar(3), UInt2{0xFFFFFFFF, 0}},
		{"MulScalar", a.MulScalar(4), UInt2{8, 12}},
		{"Min", a.Min(UInt2{1, 9}), UInt2{1, 3}},
		{"Max", a.Max(UInt2{1, 9}), UInt2{2, 9}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
	if diff := cmp.Diff(UInt2{2, 3}, a); diff != "" {
		t.Errorf("pure forms modified the receiver (-want +got):\n%s", diff)
	}
}

func TestVecLanesWrapIndependently(t *testing.T) {
	v := UByte4{255, 0, 128, 1}
	v.AddScalarAssign(1)
	if diff := cmp.Diff(UByte4{0, 1, 129, 2}, v); diff != "" {
		t.Errorf("AddScalarAssign mismatch (-want +got):\n%s", diff)
	}
	v.SubAssign(UByte4{1, 2, 0, 0})
	if diff := cmp.Diff(UByte4{255, 255, 129, 2}, v); diff != "" {
		t.Errorf("SubAssign mismatch (-want +got):\n%s", diff)
	}
	v.MulAssign(UByte4{2, 1, 2, 128})
	if diff := cmp.Diff(UByte4{254, 255, 2, 0}, v); diff != "" {
		t.Errorf("MulAssign mismatch (-want +got):\n%s", diff)
	}
	v.MulScalarAssign(3)
	if diff := cmp.Diff(UByte4{250, 253, 6, 0}, v); diff != "" {
		t.Errorf("MulScalarAssign mismatch (-want +got):\n%s", diff)
	}
	v.SubScalarAssign(6)
	if diff := cmp.Diff(UByte4{244, 247, 0, 250}, v); diff != "" {
		t.Errorf("SubScalarAssign mismatch (-want +got):\n%s", diff)
	}
	v.AddAssign(UByte4{12, 9, 1, 6})
	if diff := cmp.Diff(UByte4{0, 0, 1, 0}, v); diff != "" {
		t.Errorf("AddAssign mismatch (-want +got):\n%s", diff)
	}
}

func TestVecDiv(t *testing.T) {
	v := ULong3{10, 20, 30}
	q, err := v.Div(ULong3{2, 3, 4})
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if diff := cmp.Diff(ULong3{5, 6, 7}, q); diff != "" {
		t.Errorf("Div mismatch (-want +got):\n%s", diff)
	}

	q, err = v.DivScalar(10)
	if err != nil {
		t.Fatalf("DivScalar: %v", err)
	}
	if diff := cmp.Diff(ULong3{1, 2, 3}, q); diff != "" {
		t.Errorf("DivScalar mismatch (-want +got):\n%s", diff)
	}

	if err := v.DivAssign(ULong3{5, 5, 5}); err != nil {
		t.Fatalf("DivAssign: %v", err)
	}
	if err := v.DivScalarAssign(2); err != nil {
		t.Fatalf("DivScalarAssign: %v", err)
	}
	if diff := cmp.Diff(ULong3{1, 2, 3}, v); diff != "" {
		t.Errorf("DivAssign chain mismatch (-want +got):\n%s", diff)
	}
}

func TestVecDivByZero(t *testing.T) {
	v := UInt4{8, 8, 8, 8}
	before := v

	if _, err := v.Div(UInt4{1, 2, 0, 4}); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div: got err %v, want ErrDivideByZero", err)
	}
	if _, err := v.DivScalar(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivScalar: got err %v, want ErrDivideByZero", err)
	}
	if err := v.DivAssign(UInt4{1, 2, 4, 0}); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivAssign: got err %v, want ErrDivideByZero", err)
	}
	if err := v.DivScalarAssign(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivScalarAssign: got err %v, want ErrDivideByZero", err)
	}
	if diff := cmp.Diff(before, v); diff != "" {
		t.Errorf("failed divisions modified the vector (-want +got):\n%s", diff)
	}
}

func TestVecDot(t *testing.T) {
	a := NewVec2[UInt](3, 4)
	if got := a.Dot(a); got != 25 {
		t.Errorf("UInt2{3,4}.Dot(UInt2{3,4}) = %d, want 25", got)
	}

	// 255*255 = 65025 = 1 (mod 256) per lane, so the wrapped sum is 2.
	b := UByte2{255, 255}
	if got := b.Dot(b); got != 2 {
		t.Errorf("UByte2{255,255} dot itself = %d, want 2", got)
	}

	c := UShort3{256, 256, 1}
	if got := c.Dot(c); got != 1 {
		t.Errorf("UShort3{256,256,1} dot itself = %d, want 1", got)
	}
}

func TestVecElementSum(t *testing.T) {
	if got := (UByte3{200, 100, 1}).ElementSum(); got != 45 {
		t.Errorf("UByte3{200,100,1}.ElementSum() = %d, want 45", got)
	}
	if got := (UInt4{1, 2, 3, 4}).ElementSum(); got != 10 {
		t.Errorf("UInt4{1,2,3,4}.ElementSum() = %d, want 10", got)
	}
}

func TestVecAddMultiple(t *testing.T) {
	v := UShort2{1, 2}
	v.AddMultiple(UShort2{10, 20}, 3)
	if diff := cmp.Diff(UShort2{31, 62}, v); diff != "" {
		t.Errorf("AddMultiple mismatch (-want +got):\n%s", diff)
	}
}

func TestVecSetAndCopySemantics(t *testing.T) {
	a := UInt3{1, 2, 3}
	b := a
	if err := b.AddAt(0, 10); err != nil {
		t.Fatal(err)
	}
	if a.X() != 1 {
		t.Errorf("copy aliases source: a.X() = %d, want 1", a.X())
	}

	var c UInt3
	c.Set(a)
	c.SetValues(7, 8, 9)
	if diff := cmp.Diff(UInt3{1, 2, 3}, a); diff != "" {
		t.Errorf("Set aliases source (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(UInt3{7, 8, 9}, c); diff != "" {
		t.Errorf("SetValues mismatch (-want +got):\n%s", diff)
	}
}

func TestVecCopyToLoadRoundTrip(t *testing.T) {
	v := NewVec4[UByte](9, 8, 7, 6)
	dst := make([]UByte, 7)
	v.CopyTo(dst, 2)
	if diff := cmp.Diff([]UByte{0, 0, 9, 8, 7, 6, 0}, dst); diff != "" {
		t.Errorf("CopyTo mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v, LoadVec4(dst, 2)); diff != "" {
		t.Errorf("LoadVec4 round trip mismatch (-want +got):\n%s", diff)
	}

	w := NewVec3[ULong](1, 1<<40, 1<<63)
	buf := make([]ULong, 3)
	w.CopyTo(buf, 0)
	if diff := cmp.Diff(w, LoadVec3(buf, 0)); diff != "" {
		t.Errorf("LoadVec3 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestVecCopyToShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CopyTo into a short slice did not panic")
		}
	}()
	// cap > len must not let CopyTo write past len.
	dst := make([]UInt, 3, 8)
	UInt2{1, 2}.CopyTo(dst, 2)
}

func TestVecBitOps(t *testing.T) {
	v := UByte4{0, 1, 0x80, 0xFF}
	if diff := cmp.Diff(UByte4{8, 7, 0, 0}, v.Clz()); diff != "" {
		t.Errorf("Clz mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(UByte4{0, 1, 1, 8}, v.PopCount()); diff != "" {
		t.Errorf("PopCount mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(UInt2{31, 0}, (UInt2{1, 1 << 31}).Clz()); diff != "" {
		t.Errorf("UInt2 Clz mismatch (-want +got):\n%s", diff)
	}
}

func TestVecString(t *testing.T) {
	if got := (UShort3{1, 2, 65535}).String(); got != "(1, 2, 65535)" {
		t.Errorf("String() = %q, want %q", got, "(1, 2, 65535)")
	}
}

func TestFlatten(t *testing.T) {
	points := []UInt2{{1, 2}, {3, 4}, {5, 6}}
	if diff := cmp.Diff([]UInt{1, 2, 3, 4, 5, 6}, Flatten[UInt](points)); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
	if got := Flatten[UInt]([]UInt4(nil)); got != nil {
		t.Errorf("Flatten(nil) = %v, want nil", got)
	}
}
