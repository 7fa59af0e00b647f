// Package numeric provides the small integer helpers that sit on hot decode
// paths: min/max, saturating add/sub, byte swaps and low-bits masks.
//
// The saturating operations are branch-free: the carry or borrow from
// math/bits is turned into an all-ones or all-zeros mask.
package numeric

import "math/bits"

// Unsigned is the set of unsigned integer widths handled here.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Min returns the smaller of x and y.
func Min[T Unsigned](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T Unsigned](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// SatAddU8 returns x+y, or 0xFF on overflow.
func SatAddU8(x, y uint8) uint8 {
	s := uint32(x) + uint32(y)
	return uint8(s | -(s >> 8))
}

// SatSubU8 returns x-y, or 0 on underflow.
func SatSubU8(x, y uint8) uint8 {
	d, borrow := bits.Sub32(uint32(x), uint32(y), 0)
	return uint8(d & (borrow - 1))
}

// SatAddU16 returns x+y, or 0xFFFF on overflow.
func SatAddU16(x, y uint16) uint16 {
	s := uint32(x) + uint32(y)
	return uint16(s | -(s >> 16))
}

// SatSubU16 returns x-y, or 0 on underflow.
func SatSubU16(x, y uint16) uint16 {
	d, borrow := bits.Sub32(uint32(x), uint32(y), 0)
	return uint16(d & (borrow - 1))
}

// SatAddU32 returns x+y, or 0xFFFFFFFF on overflow.
func SatAddU32(x, y uint32) uint32 {
	s, carry := bits.Add32(x, y, 0)
	return s | -carry
}

// SatSubU32 returns x-y, or 0 on underflow.
func SatSubU32(x, y uint32) uint32 {
	d, borrow := bits.Sub32(x, y, 0)
	return d & (borrow - 1)
}

// SatAddU64 returns x+y, or 0xFFFFFFFFFFFFFFFF on overflow.
func SatAddU64(x, y uint64) uint64 {
	s, carry := bits.Add64(x, y, 0)
	return s | -carry
}

// SatSubU64 returns x-y, or 0 on underflow.
func SatSubU64(x, y uint64) uint64 {
	d, borrow := bits.Sub64(x, y, 0)
	return d & (borrow - 1)
}

// ByteSwapU8 returns x; a single byte has no order to reverse.
func ByteSwapU8(x uint8) uint8 { return x }

// ByteSwapU16 reverses the byte order of x.
func ByteSwapU16(x uint16) uint16 { return bits.ReverseBytes16(x) }

// ByteSwapU32 reverses the byte order of x.
func ByteSwapU32(x uint32) uint32 { return bits.ReverseBytes32(x) }

// ByteSwapU64 reverses the byte order of x.
func ByteSwapU64(x uint64) uint64 { return bits.ReverseBytes64(x) }
