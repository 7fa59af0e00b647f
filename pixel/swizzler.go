package pixel

import (
	"log/slog"

	"github.com/gogpu/pixbase"
	"github.com/gogpu/pixbase/buffer"
	"github.com/gogpu/pixbase/internal/blend"
)

// route is the conversion routine picked by Prepare.
type route uint8

const (
	routeGeneric route = iota
	routeCopy
	routeSwapRB
	routePaletteCopy
	routeIndexCopy
)

func (r route) String() string {
	switch r {
	case routeCopy:
		return "copy"
	case routeSwapRB:
		return "swap_rb"
	case routePaletteCopy:
		return "palette_copy"
	case routeIndexCopy:
		return "index_copy"
	default:
		return "generic"
	}
}

// SwizzlerOption configures a Swizzler.
type SwizzlerOption func(*Swizzler)

// WithGenericPath disables the specialized conversion routines so that every
// pixel goes through the generic converter. The output is identical; this
// exists to cross-check the fast paths.
func WithGenericPath() SwizzlerOption {
	return func(s *Swizzler) {
		s.genericOnly = true
	}
}

// WithLogger sets the logger for one Swizzler, overriding pixbase.Logger.
func WithLogger(l *slog.Logger) SwizzlerOption {
	return func(s *Swizzler) {
		s.log = l
	}
}

// Swizzler converts pixels from one Format to another, optionally
// compositing the source over the destination.
//
// A Swizzler must be prepared before use and prepared again whenever the
// formats, palettes or blend change. The zero value is an unprepared
// Swizzler. A Swizzler is not safe for concurrent use.
//
// Supported formats are single-plane integer A, Y, YA, BGR(X/A) and
// RGB(X/A) layouts with 1 to 16 bits per channel, either byte-aligned or
// packed into one 8, 16 or 32-bit word, plus their 8-bit indexed forms
// whose palette entries are 4 bytes. An indexed destination is only
// supported from the identical indexed source.
type Swizzler struct {
	dstFormat Format
	srcFormat Format
	blend     Blend

	dst layout
	src layout // palette entry layout when the source is indexed

	dstBPP int
	srcBPP int

	srcIndexed bool
	over       bool
	compose    blend.Func
	route      route
	prepared   bool

	srcPalette [PaletteLen]byte
	srcEntries [256]blend.Pixel

	genericOnly bool
	log         *slog.Logger
}

// NewSwizzler returns an unprepared Swizzler.
func NewSwizzler(opts ...SwizzlerOption) *Swizzler {
	s := &Swizzler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Swizzler) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return pixbase.Logger()
}

// IsPrepared reports whether the last Prepare call succeeded.
func (s *Swizzler) IsPrepared() bool {
	return s != nil && s.prepared
}

// Prepare validates a conversion from srcFormat to dstFormat under blend b
// and picks the routine that performs it. Palettes are required, and must
// be PaletteLen bytes, for indexed formats; they are ignored otherwise. The
// source palette is copied, so the caller may reuse its memory.
//
// On failure the Swizzler is left unprepared and the returned Status is
// ErrorUnsupportedOption, ErrorBadPaletteLength or ErrorBadArgument.
func (s *Swizzler) Prepare(dstFormat Format, dstPalette []byte, srcFormat Format, srcPalette []byte, b Blend) pixbase.Status {
	if s == nil {
		return pixbase.ErrorBadReceiver
	}
	s.prepared = false
	if st := s.prepare(dstFormat, dstPalette, srcFormat, srcPalette, b); !st.IsOK() {
		s.logger().Warn("pixel swizzler: prepare rejected",
			"dst", dstFormat, "src", srcFormat, "blend", b, "status", st)
		return st
	}
	s.prepared = true
	s.logger().Debug("pixel swizzler: prepared",
		"dst", dstFormat, "src", srcFormat, "blend", b, "route", s.route)
	return pixbase.StatusOK
}

func (s *Swizzler) prepare(dstFormat Format, dstPalette []byte, srcFormat Format, srcPalette []byte, b Blend) pixbase.Status {
	if b != BlendSrc && b != BlendSrcOver {
		return pixbase.ErrorBadArgument
	}

	src, ok := indexedOrDirect(srcFormat)
	if !ok {
		return pixbase.ErrorUnsupportedOption
	}
	if srcFormat.IsIndexed() && len(srcPalette) != PaletteLen {
		return pixbase.ErrorBadPaletteLength
	}

	var dst layout
	if dstFormat.IsIndexed() {
		// Indices cannot be composited, only copied.
		if dstFormat != srcFormat || b == BlendSrcOver {
			return pixbase.ErrorUnsupportedOption
		}
		if len(dstPalette) != PaletteLen {
			return pixbase.ErrorBadPaletteLength
		}
		dst = src
	} else if dst, ok = newLayout(dstFormat); !ok {
		return pixbase.ErrorUnsupportedOption
	}

	s.dstFormat, s.srcFormat, s.blend = dstFormat, srcFormat, b
	s.dst, s.src = dst, src
	s.srcIndexed = srcFormat.IsIndexed()
	s.dstBPP, s.srcBPP = dst.bpp, src.bpp
	if dstFormat.IsIndexed() {
		s.dstBPP = 1
	}
	if s.srcIndexed {
		s.srcBPP = 1
		copy(s.srcPalette[:], srcPalette)
		for i := range s.srcEntries {
			s.srcEntries[i] = src.load(s.srcPalette[4*i : 4*i+4])
		}
	}

	// An opaque source composites exactly like a copy.
	s.over = b == BlendSrcOver && src.hasAlpha()
	mode := blend.ModeSrc
	if s.over {
		mode = blend.ModeSrcOver
	}
	s.compose = blend.GetFunc(mode)
	s.route = s.pickRoute()
	return pixbase.StatusOK
}

// indexedOrDirect returns the layout of a direct format, or of the palette
// entries of an indexed one.
func indexedOrDirect(f Format) (layout, bool) {
	if !f.IsIndexed() {
		return newLayout(f)
	}
	if f.IndexDepth() != 8 || f.NumPlanes() != 1 || f.IsFloat() {
		return layout{}, false
	}
	l, ok := newLayout(f.PaletteFormat())
	if !ok || l.bpp != 4 {
		return layout{}, false
	}
	return l, true
}

func (s *Swizzler) pickRoute() route {
	if s.dstFormat.IsIndexed() {
		return routeIndexCopy
	}
	if s.genericOnly || s.over {
		return routeGeneric
	}
	// Padding channels are rewritten as all ones, so a byte copy only
	// matches the generic converter when there is no padding.
	if s.dst.trans == TransparencyOpaqueExtra {
		return routeGeneric
	}
	switch {
	case s.srcIndexed:
		if s.dstFormat == s.srcFormat.PaletteFormat() {
			return routePaletteCopy
		}
	case s.dstFormat == s.srcFormat:
		return routeCopy
	case swappableRB(&s.dst, &s.src):
		return routeSwapRB
	}
	return routeGeneric
}

// swappableRB reports whether a and b are the same 8-bit 3 or 4-byte
// layout with the red and blue channels exchanged.
func swappableRB(a, b *layout) bool {
	if a.packed || b.packed || a.bpp != b.bpp || a.trans != b.trans {
		return false
	}
	if a.bpp != 3 && a.bpp != 4 {
		return false
	}
	for i := 0; i < a.nch; i++ {
		if a.depth[i] != 8 || b.depth[i] != 8 {
			return false
		}
	}
	return (a.model == ColorBGR && b.model == ColorRGB) ||
		(a.model == ColorRGB && b.model == ColorBGR)
}

// Swizzle converts min(len(dst)/dstBPP, len(src)/srcBPP) whole pixels from
// src into dst and returns that count. Trailing partial pixels are left
// alone and no byte outside either slice is touched. When the destination
// is indexed and dstPalette is PaletteLen bytes long, the prepared source
// palette is copied into it. An unprepared Swizzler converts nothing.
func (s *Swizzler) Swizzle(dst, dstPalette, src []byte) int {
	if s == nil || !s.prepared {
		return 0
	}
	n := min(len(dst)/s.dstBPP, len(src)/s.srcBPP)
	if n <= 0 {
		return 0
	}
	dst = dst[:n*s.dstBPP]
	src = src[:n*s.srcBPP]

	switch s.route {
	case routeIndexCopy:
		copy(dst, src)
		if len(dstPalette) == PaletteLen {
			copy(dstPalette, s.srcPalette[:])
		}
	case routeCopy:
		copy(dst, src)
	case routeSwapRB:
		swapRB(dst, src, s.dstBPP)
	case routePaletteCopy:
		for i, idx := range src {
			copy(dst[4*i:4*i+4], s.srcPalette[4*int(idx):])
		}
	default:
		s.generic(dst, src, n)
	}
	return n
}

func swapRB(dst, src []byte, bpp int) {
	for i := 0; i+bpp <= len(dst); i += bpp {
		d, p := dst[i:i+bpp], src[i:i+bpp]
		d[0], d[1], d[2] = p[2], p[1], p[0]
		if bpp == 4 {
			d[3] = p[3]
		}
	}
}

func (s *Swizzler) loadSrc(src []byte, i int) blend.Pixel {
	if s.srcIndexed {
		return s.srcEntries[src[i]]
	}
	return s.src.load(src[i*s.srcBPP:])
}

func (s *Swizzler) generic(dst, src []byte, n int) {
	srcPremul, dstPremul := s.src.premul(), s.dst.premul()
	for i := 0; i < n; i++ {
		p := s.loadSrc(src, i)
		d := dst[i*s.dstBPP : (i+1)*s.dstBPP]
		if !s.over {
			s.dst.store(d, convert(p, srcPremul, dstPremul))
			continue
		}
		if !srcPremul {
			p = blend.Premultiply(p)
		}
		q := s.dst.load(d)
		if !dstPremul {
			q = blend.Premultiply(q)
		}
		r := s.compose(p, q)
		if !dstPremul {
			r = blend.Unpremultiply(r)
		}
		s.dst.store(d, r)
	}
}

func convert(p blend.Pixel, fromPremul, toPremul bool) blend.Pixel {
	switch {
	case fromPremul == toPremul:
		return p
	case toPremul:
		return blend.Premultiply(p)
	default:
		return blend.Unpremultiply(p)
	}
}

// SwizzleTable converts row by row, pairing row y of src with row y of dst
// for every row both tables have. Each row is clamped exactly like Swizzle.
// It returns the total number of pixels converted.
func (s *Swizzler) SwizzleTable(dst buffer.Table[byte], dstPalette []byte, src buffer.Table[byte]) int {
	if s == nil || !s.prepared {
		return 0
	}
	total := 0
	for y := 0; y < min(dst.Height, src.Height); y++ {
		total += s.Swizzle(dst.Row(y), dstPalette, src.Row(y))
	}
	return total
}
