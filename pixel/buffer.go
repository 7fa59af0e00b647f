package pixel

import (
	"github.com/gogpu/pixbase/buffer"
)

// Buffer holds up to NumPlanesMax planes of pixel bytes. A packed format
// uses only Planes[0]. The number of planes in use must match the governing
// Format's NumPlanes.
type Buffer struct {
	Planes [NumPlanesMax]buffer.Table[byte]
}

// Plane returns plane p, or an empty table if p is out of range.
func (b *Buffer) Plane(p int) buffer.Table[byte] {
	if b == nil || p < 0 || p >= NumPlanesMax {
		return buffer.Table[byte]{}
	}
	return b.Planes[p]
}

// Blend is a Porter-Duff compositing operator.
type Blend uint8

const (
	// BlendSrc overwrites destination pixels with the source.
	BlendSrc Blend = iota
	// BlendSrcOver composites the source over the destination.
	BlendSrcOver
)

// String returns the operator name.
func (b Blend) String() string {
	switch b {
	case BlendSrc:
		return "src"
	case BlendSrcOver:
		return "src_over"
	default:
		return "unknown"
	}
}

// ParseBlend returns the Blend named s ("src" or "src_over").
func ParseBlend(s string) (Blend, bool) {
	switch s {
	case "src":
		return BlendSrc, true
	case "src_over":
		return BlendSrcOver, true
	default:
		return 0, false
	}
}
