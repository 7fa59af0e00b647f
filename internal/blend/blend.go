package blend

// Pixel is an RGBA color with 16 bits per channel. Whether the color
// channels are premultiplied by alpha depends on context; the functions in
// this package say which form they take.
type Pixel struct {
	R, G, B, A uint16
}

// Opaque reports whether p is fully opaque.
func (p Pixel) Opaque() bool {
	return p.A == 0xFFFF
}

// Premultiply converts a nonpremultiplied pixel to premultiplied form,
// truncating each channel to c*a/0xFFFF.
func Premultiply(p Pixel) Pixel {
	switch p.A {
	case 0xFFFF:
		return p
	case 0:
		return Pixel{}
	}
	return Pixel{
		R: mulDiv65535(p.R, p.A),
		G: mulDiv65535(p.G, p.A),
		B: mulDiv65535(p.B, p.A),
		A: p.A,
	}
}

// Unpremultiply converts a premultiplied pixel to nonpremultiplied form.
// Fully transparent pixels become transparent black. Channels that exceed
// alpha, which a well-formed premultiplied pixel never has, saturate.
func Unpremultiply(p Pixel) Pixel {
	switch p.A {
	case 0xFFFF:
		return p
	case 0:
		return Pixel{}
	}
	a := uint32(p.A)
	return Pixel{
		R: unpremul(p.R, a),
		G: unpremul(p.G, a),
		B: unpremul(p.B, a),
		A: p.A,
	}
}

func unpremul(c uint16, a uint32) uint16 {
	v := uint32(c) * 0xFFFF / a
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// Gray returns the luma of a color using the BT.601 weights in 16.16 fixed
// point. The weights sum to 1<<16, so gray inputs map to themselves.
func Gray(r, g, b uint16) uint16 {
	return uint16((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}
