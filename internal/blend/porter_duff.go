package blend

import "github.com/gogpu/pixbase/numeric"

// Mode represents a Porter-Duff compositing operation on premultiplied
// pixels.
type Mode uint8

const (
	// ModeSrc replaces the destination with the source.
	ModeSrc Mode = iota
	// ModeSrcOver composites the source over the destination.
	ModeSrcOver
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSrc:
		return "src"
	case ModeSrcOver:
		return "src_over"
	default:
		return "unknown"
	}
}

// Func is the signature of a compositing operation. Both arguments and the
// result are premultiplied.
type Func func(src, dst Pixel) Pixel

// GetFunc returns the compositing function for mode, or nil for an unknown
// mode.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeSrc:
		return Src
	case ModeSrcOver:
		return SrcOver
	default:
		return nil
	}
}

// Src returns the source unchanged.
// Result: S
func Src(src, _ Pixel) Pixel {
	return src
}

// SrcOver composites src over dst.
// Result: S + D*(1-Sa), each product truncated and each sum saturated.
func SrcOver(src, dst Pixel) Pixel {
	if src.A == 0xFFFF {
		return src
	}
	ia := inv65535(src.A)
	return Pixel{
		R: numeric.SatAddU16(src.R, mulDiv65535(dst.R, ia)),
		G: numeric.SatAddU16(src.G, mulDiv65535(dst.G, ia)),
		B: numeric.SatAddU16(src.B, mulDiv65535(dst.B, ia)),
		A: numeric.SatAddU16(src.A, mulDiv65535(dst.A, ia)),
	}
}
