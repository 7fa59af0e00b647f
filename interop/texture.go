package interop

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixbase/frame"
	"github.com/gogpu/pixbase/pixel"
)

// TextureFormat returns the GPU texture format whose texel layout matches f
// byte for byte, or TextureFormatUndefined and false when there is none.
// The X channel of RGBX and BGRX is uploaded as alpha, which is always
// 0xFF for frames written by a Swizzler. Y maps to R8Unorm, so shaders
// sample gray from the red channel. Alpha-only frames have no mapping and
// are uploaded as RGBA_PREMUL, keeping coverage in the alpha channel.
func TextureFormat(f pixel.Format) (gputypes.TextureFormat, bool) {
	switch f {
	case pixel.FormatRGBANonpremul, pixel.FormatRGBAPremul, pixel.FormatRGBX:
		return gputypes.TextureFormatRGBA8Unorm, true
	case pixel.FormatBGRANonpremul, pixel.FormatBGRAPremul, pixel.FormatBGRX:
		return gputypes.TextureFormatBGRA8Unorm, true
	case pixel.FormatY:
		return gputypes.TextureFormatR8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// UploadFormat returns the pixel format a frame of format f should be
// converted to before upload. Formats with a direct texture mapping are
// returned unchanged; everything else becomes RGBA_PREMUL.
func UploadFormat(f pixel.Format) pixel.Format {
	if _, ok := TextureFormat(f); ok {
		return f
	}
	return pixel.FormatRGBAPremul
}

// TexelData returns the first plane of b as tightly packed rows ready for a
// texture upload, converting through UploadFormat first when needed.
func TexelData(b *frame.ImageBuffer) ([]byte, gputypes.TextureFormat, error) {
	cfg := b.ImageConfig()
	if !cfg.IsValid() {
		return nil, gputypes.TextureFormatUndefined, fmt.Errorf("%w: %v", ErrUnsupportedFormat, cfg.PixelFormat())
	}
	src := cfg.PixelFormat()
	dst := UploadFormat(src)
	tf, _ := TextureFormat(dst)

	w, h := int(b.Width()), int(b.Height())
	stride := w * dst.BitsPerPixel() / 8
	out := make([]byte, stride*h)

	s := pixel.NewSwizzler()
	if st := s.Prepare(dst, nil, src, b.Palette(), pixel.BlendSrc); !st.IsOK() {
		return nil, gputypes.TextureFormatUndefined, fmt.Errorf("%w: %v: %w", ErrUnsupportedFormat, src, st)
	}
	s.SwizzleTable(table(out, stride, h, stride), nil, b.Plane(0))
	return out, tf, nil
}
