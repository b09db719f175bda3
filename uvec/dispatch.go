package uvec

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel names the widest instruction set the host offers for
// lane-parallel work. Bulk kernels size their blocks from it.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int

	hasAVX2   bool
	hasAVX512 bool
	hasASIMD  bool
	hasSVE    bool
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes for the current level.
// For example: 16 for SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// HasAVX2 reports whether the host supports AVX2.
func HasAVX2() bool { return hasAVX2 }

// HasAVX512 reports whether the host supports AVX-512 F and BW.
func HasAVX512() bool { return hasAVX512 }

// HasASIMD reports whether the host supports ARM Advanced SIMD (NEON).
func HasASIMD() bool { return hasASIMD }

// HasSVE reports whether the host supports ARM SVE.
func HasSVE() bool { return hasSVE }

// NoSimdEnv checks if the UVEC_NO_SIMD environment variable is set.
// When set, the scalar level is reported regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("UVEC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many lanes of T fit in one register at the current level.
//
// For example, with AVX2 (32 bytes): UByte 32, UShort 16, UInt 8, ULong 4.
func MaxLanes[T Lane]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // 16-byte blocks even in scalar mode for consistency
}
