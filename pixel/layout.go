package pixel

import (
	"encoding/binary"

	"github.com/gogpu/pixbase/internal/blend"
	"github.com/gogpu/pixbase/numeric"
)

// layout is the resolved memory layout of a direct (non-indexed), single
// plane, integer Format.
type layout struct {
	format    Format
	model     ColorModel
	trans     Transparency
	bpp       int
	nch       int
	depth     [4]uint
	off       [4]uint // byte offset, or bit shift when packed
	packed    bool
	bigEndian bool
}

// newLayout resolves f, reporting false if the swizzler cannot read or
// write it.
func newLayout(f Format) (layout, bool) {
	if !f.IsValid() || f.IsIndexed() || f.IsFloat() || f.NumPlanes() != 1 {
		return layout{}, false
	}
	l := layout{
		format:    f,
		model:     f.ColorModel(),
		trans:     f.Transparency(),
		nch:       f.NumChannels(),
		bigEndian: f.IsBigEndian(),
	}
	if l.model > ColorRGB {
		return layout{}, false
	}

	bits := uint(0)
	aligned := true
	for i := 0; i < 4; i++ {
		d := uint(f.ChannelDepth(i))
		if i >= l.nch {
			if d != 0 {
				return layout{}, false
			}
			continue
		}
		if d == 0 || d > 16 {
			return layout{}, false
		}
		if d != 8 && d != 16 {
			aligned = false
		}
		l.depth[i] = d
		bits += d
	}

	if aligned {
		switch bits {
		case 8, 16, 24, 32, 48, 64:
		default:
			return layout{}, false
		}
		o := uint(0)
		for i := 0; i < l.nch; i++ {
			l.off[i] = o
			o += l.depth[i] / 8
		}
	} else {
		switch bits {
		case 8, 16, 32:
		default:
			return layout{}, false
		}
		l.packed = true
		s := uint(0)
		for i := 0; i < l.nch; i++ {
			l.off[i] = s
			s += l.depth[i]
		}
	}
	l.bpp = int(bits / 8)
	return l, true
}

// hasAlpha reports whether the layout stores a real alpha channel.
func (l *layout) hasAlpha() bool {
	return l.model == ColorAlpha || l.trans >= TransparencyNonpremul
}

// premul reports whether pixels loaded from, or stored to, this layout are
// in premultiplied form. Opaque layouts count as premultiplied: their stored
// color is the pixel composited over black.
func (l *layout) premul() bool {
	return l.model == ColorAlpha || l.trans != TransparencyNonpremul
}

// widen scales a d-bit sample to 16 bits by bit replication.
func widen(v uint32, d uint) uint16 {
	if d >= 16 {
		return uint16(v)
	}
	x := v << (16 - d)
	for n := d; n < 16; n *= 2 {
		x |= x >> n
	}
	return uint16(x)
}

// narrow scales a 16-bit sample to d bits by truncation.
func narrow(v uint16, d uint) uint32 {
	return uint32(v) >> (16 - d)
}

func (l *layout) word(b []byte) uint32 {
	switch l.bpp {
	case 1:
		return uint32(b[0])
	case 2:
		if l.bigEndian {
			return uint32(binary.BigEndian.Uint16(b))
		}
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		if l.bigEndian {
			return binary.BigEndian.Uint32(b)
		}
		return binary.LittleEndian.Uint32(b)
	}
}

func (l *layout) putWord(b []byte, w uint32) {
	switch l.bpp {
	case 1:
		b[0] = byte(w)
	case 2:
		if l.bigEndian {
			binary.BigEndian.PutUint16(b, uint16(w))
		} else {
			binary.LittleEndian.PutUint16(b, uint16(w))
		}
	default:
		if l.bigEndian {
			binary.BigEndian.PutUint32(b, w)
		} else {
			binary.LittleEndian.PutUint32(b, w)
		}
	}
}

// channels reads the samples of one pixel, widened to 16 bits, in memory
// order. b must hold at least bpp bytes.
func (l *layout) channels(b []byte) (c [4]uint16) {
	_ = b[l.bpp-1]
	if l.packed {
		w := l.word(b)
		for i := 0; i < l.nch; i++ {
			d := l.depth[i]
			c[i] = widen(w>>l.off[i]&numeric.LowBitsMaskU32[d], d)
		}
		return c
	}
	for i := 0; i < l.nch; i++ {
		o := l.off[i]
		switch {
		case l.depth[i] == 8:
			c[i] = uint16(b[o]) * 0x101
		case l.bigEndian:
			c[i] = binary.BigEndian.Uint16(b[o:])
		default:
			c[i] = binary.LittleEndian.Uint16(b[o:])
		}
	}
	return c
}

// putChannels narrows and writes the samples of one pixel.
func (l *layout) putChannels(b []byte, c [4]uint16) {
	_ = b[l.bpp-1]
	if l.packed {
		var w uint32
		for i := 0; i < l.nch; i++ {
			w |= narrow(c[i], l.depth[i]) << l.off[i]
		}
		l.putWord(b, w)
		return
	}
	for i := 0; i < l.nch; i++ {
		o := l.off[i]
		switch {
		case l.depth[i] == 8:
			b[o] = byte(c[i] >> 8)
		case l.bigEndian:
			binary.BigEndian.PutUint16(b[o:], c[i])
		default:
			binary.LittleEndian.PutUint16(b[o:], c[i])
		}
	}
}

// load reads one pixel as 16-bit RGBA. Alpha-only layouts read as
// premultiplied white.
func (l *layout) load(b []byte) blend.Pixel {
	c := l.channels(b)
	p := blend.Pixel{A: 0xFFFF}
	switch l.model {
	case ColorAlpha:
		return blend.Pixel{R: c[0], G: c[0], B: c[0], A: c[0]}
	case ColorGray:
		p.R, p.G, p.B = c[0], c[0], c[0]
		if l.hasAlpha() {
			p.A = c[1]
		}
	case ColorBGR:
		p.B, p.G, p.R = c[0], c[1], c[2]
		if l.hasAlpha() {
			p.A = c[3]
		}
	case ColorRGB:
		p.R, p.G, p.B = c[0], c[1], c[2]
		if l.hasAlpha() {
			p.A = c[3]
		}
	}
	return p
}

// store writes one pixel. p must already be in the layout's premultiplied
// or nonpremultiplied form. Padding channels are written as all ones.
func (l *layout) store(b []byte, p blend.Pixel) {
	var c [4]uint16
	extra := uint16(0xFFFF)
	if l.hasAlpha() {
		extra = p.A
	}
	switch l.model {
	case ColorAlpha:
		c[0] = p.A
	case ColorGray:
		c[0], c[1] = blend.Gray(p.R, p.G, p.B), extra
	case ColorBGR:
		c[0], c[1], c[2], c[3] = p.B, p.G, p.R, extra
	case ColorRGB:
		c[0], c[1], c[2], c[3] = p.R, p.G, p.B, extra
	}
	l.putChannels(b, c)
}
