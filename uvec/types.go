// Package uvec provides fixed-width unsigned lane types and small lane
// vectors over them.
//
// Every lane type wraps a native unsigned integer of the same width, so all
// arithmetic wraps modulo 2^W exactly like unsigned hardware registers.
// Vectors (Vec2, Vec3, Vec4) apply the scalar operations independently to
// each lane; there is no carry or borrow between lanes.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-uvec/uvec"
//
//	a := uvec.NewVec2[uvec.UInt](3, 4)
//	dot := a.Dot(a) // 25
//
//	b, err := uvec.NewUByte(255)
//	if err != nil {
//		return err
//	}
//	b.AddAssign(1) // wraps to 0
package uvec

import "unsafe"

// Lane is a constraint for the unsigned types that can be stored in vector lanes.
type Lane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// UByte is an 8-bit unsigned lane.
type UByte uint8

// UShort is a 16-bit unsigned lane.
type UShort uint16

// UInt is a 32-bit unsigned lane.
type UInt uint32

// ULong is a 64-bit unsigned lane.
type ULong uint64

// Bits returns the width of T in bits: 8, 16, 32 or 64.
func Bits[T Lane]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy)) * 8
}

// MaxValue returns the largest value representable by T, 2^W - 1.
func MaxValue[T Lane]() T {
	var zero T
	return ^zero
}
