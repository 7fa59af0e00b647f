// Package blend provides the 16-bit alpha arithmetic used by the pixel
// swizzler: premultiplication, unpremultiplication and Porter-Duff
// compositing on premultiplied RGBA with channels in [0, 0xFFFF].
//
// The div65535 family avoids integer division with a shift-and-add form
// that is exact for every product of two 16-bit values.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div65535 divides x by 65535, truncating.
//
// Formula: ((x + 1) + ((x + 1) >> 16)) >> 16
//
// Exact for all x in [0, 0xFFFF*0xFFFF], which covers every product of two
// channel values.
func div65535(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 16)) >> 16
}

// mulDiv65535 returns a*b/0xFFFF, truncating.
func mulDiv65535(a, b uint16) uint16 {
	return uint16(div65535(uint32(a) * uint32(b)))
}

// inv65535 computes 0xFFFF - x (inverse alpha).
func inv65535(x uint16) uint16 {
	return 0xFFFF - x
}
