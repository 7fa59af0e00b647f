package pixel

import (
	"fmt"

	"github.com/gogpu/pixbase/numeric"
)

// Subsampling encodes, per plane, how pixel coordinates (x, y) map to sample
// coordinates (i, j) in that plane:
//
//	i = (x + biasX) >> shiftX
//	j = (y + biasY) >> shiftY
//
// Each plane p has one byte e_p = biasX<<6 | shiftX<<4 | biasY<<2 | shiftY,
// and the Subsampling is e3<<24 | e2<<16 | e1<<8 | e0.
//
// Biases are zero for freshly decoded images. Taking a sub-image whose
// origin is not aligned to the subsampling grid makes them nonzero.
type Subsampling uint32

// Common subsampling presets for three-plane formats.
const (
	SubsamplingNone Subsampling = 0
	Subsampling444  Subsampling = 0x000000
	Subsampling440  Subsampling = 0x010100
	Subsampling422  Subsampling = 0x101000
	Subsampling420  Subsampling = 0x111100
	Subsampling411  Subsampling = 0x202000
	Subsampling410  Subsampling = 0x212100
)

// PlaneSampling is the decoded bias and shift pair for one plane.
type PlaneSampling struct {
	BiasX, ShiftX uint32
	BiasY, ShiftY uint32
}

func (ps PlaneSampling) byteValue() uint32 {
	return (ps.BiasX&3)<<6 | (ps.ShiftX&3)<<4 | (ps.BiasY&3)<<2 | ps.ShiftY&3
}

// MakeSubsampling packs up to four planes. Fields above 3 are masked.
func MakeSubsampling(planes ...PlaneSampling) Subsampling {
	var s uint32
	for p, ps := range planes {
		if p >= NumPlanesMax {
			break
		}
		s |= ps.byteValue() << (8 * uint(p))
	}
	return Subsampling(s)
}

func (s Subsampling) field(plane, offset uint32) uint32 {
	return uint32(s) >> ((plane&3)*8 + offset) & 3
}

// BiasX returns the x bias of plane (taken mod 4).
func (s Subsampling) BiasX(plane uint32) uint32 { return s.field(plane, 6) }

// ShiftX returns the x shift of plane (taken mod 4).
func (s Subsampling) ShiftX(plane uint32) uint32 { return s.field(plane, 4) }

// BiasY returns the y bias of plane (taken mod 4).
func (s Subsampling) BiasY(plane uint32) uint32 { return s.field(plane, 2) }

// ShiftY returns the y shift of plane (taken mod 4).
func (s Subsampling) ShiftY(plane uint32) uint32 { return s.field(plane, 0) }

// Plane returns the decoded fields of plane (taken mod 4).
func (s Subsampling) Plane(plane uint32) PlaneSampling {
	return PlaneSampling{
		BiasX:  s.BiasX(plane),
		ShiftX: s.ShiftX(plane),
		BiasY:  s.BiasY(plane),
		ShiftY: s.ShiftY(plane),
	}
}

// Map returns the sample coordinates in plane of pixel (x, y). The sums
// saturate instead of wrapping.
func (s Subsampling) Map(plane, x, y uint32) (i, j uint32) {
	ps := s.Plane(plane)
	return numeric.SatAddU32(x, ps.BiasX) >> ps.ShiftX, numeric.SatAddU32(y, ps.BiasY) >> ps.ShiftY
}

// String returns a preset name such as "4:2:0", or the hex value.
func (s Subsampling) String() string {
	switch s {
	case Subsampling444:
		return "4:4:4"
	case Subsampling440:
		return "4:4:0"
	case Subsampling422:
		return "4:2:2"
	case Subsampling420:
		return "4:2:0"
	case Subsampling411:
		return "4:1:1"
	case Subsampling410:
		return "4:1:0"
	default:
		return fmt.Sprintf("Subsampling(0x%08X)", uint32(s))
	}
}
