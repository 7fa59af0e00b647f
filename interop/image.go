package interop

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixbase/buffer"
	"github.com/gogpu/pixbase/frame"
	"github.com/gogpu/pixbase/pixel"
)

// Interop errors.
var (
	// ErrUnsupportedFormat is returned when a pixel format cannot be
	// converted.
	ErrUnsupportedFormat = errors.New("interop: unsupported pixel format")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("interop: empty image")
)

// NewImageBuffer allocates a densely packed, single-plane frame of the given
// format and size.
func NewImageBuffer(f pixel.Format, width, height int) (*frame.ImageBuffer, error) {
	if f.IsIndexed() || f.NumPlanes() != 1 || f.BitsPerPixel()%8 != 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if width < 0 || height < 0 || width > 1<<24 || height > 1<<24 {
		return nil, fmt.Errorf("interop: invalid size %dx%d", width, height)
	}
	bpp := f.BitsPerPixel() / 8
	stride := width * bpp
	cfg := frame.MakeImageConfig(f, pixel.SubsamplingNone, uint32(width), uint32(height), 0, false)
	if !cfg.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	tab, err := buffer.NewTable(make([]byte, stride*height), stride, height, stride)
	if err != nil {
		return nil, fmt.Errorf("interop: plane: %w", err)
	}
	var b frame.ImageBuffer
	if st := b.SetFromPixbuf(cfg, pixel.Buffer{Planes: [pixel.NumPlanesMax]buffer.Table[byte]{tab}}); !st.IsOK() {
		return nil, st.Err()
	}
	return &b, nil
}

// stdTarget picks the image.Image type, and its matching pixel format, that
// holds f without loss where possible.
func stdTarget(f pixel.Format, r image.Rectangle) (draw.Image, pixel.Format, buffer.Table[byte]) {
	switch {
	case f == pixel.FormatY:
		img := image.NewGray(r)
		return img, pixel.FormatY, table(img.Pix, r.Dx(), r.Dy(), img.Stride)
	case f == pixel.FormatY16BE:
		img := image.NewGray16(r)
		return img, pixel.FormatY16BE, table(img.Pix, 2*r.Dx(), r.Dy(), img.Stride)
	case f.IsIndexed() && f.PaletteFormat().Transparency() == pixel.TransparencyPremul,
		!f.IsIndexed() && f.Transparency() == pixel.TransparencyPremul:
		img := image.NewRGBA(r)
		return img, pixel.FormatRGBAPremul, table(img.Pix, 4*r.Dx(), r.Dy(), img.Stride)
	default:
		img := image.NewNRGBA(r)
		return img, pixel.FormatRGBANonpremul, table(img.Pix, 4*r.Dx(), r.Dy(), img.Stride)
	}
}

func table(pix []byte, width, height, stride int) buffer.Table[byte] {
	return buffer.Table[byte]{Data: pix, Width: width, Height: height, Stride: stride}
}

// ToImage converts the first plane of b into a newly allocated image.Image:
// *image.Gray or *image.Gray16 for gray formats, *image.RGBA for
// premultiplied formats and *image.NRGBA otherwise. Indexed frames are
// resolved through b's palette.
func ToImage(b *frame.ImageBuffer) (draw.Image, error) {
	cfg := b.ImageConfig()
	if !cfg.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, cfg.PixelFormat())
	}
	f := cfg.PixelFormat()
	r := image.Rect(0, 0, int(b.Width()), int(b.Height()))
	img, target, dst := stdTarget(f, r)

	s := pixel.NewSwizzler()
	if st := s.Prepare(target, nil, f, b.Palette(), pixel.BlendSrc); !st.IsOK() {
		return nil, fmt.Errorf("%w: %v: %w", ErrUnsupportedFormat, f, st)
	}
	s.SwizzleTable(dst, nil, b.Plane(0))
	return img, nil
}

// FromImage converts img into a new frame of format f. The image is first
// drawn into a nonpremultiplied RGBA buffer, then swizzled to f.
func FromImage(img image.Image, f pixel.Format) (*frame.ImageBuffer, error) {
	r := img.Bounds()
	if r.Empty() {
		return nil, ErrEmptyImage
	}
	out, err := NewImageBuffer(f, r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) {
		src = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Copy(src, image.Point{}, img, r, draw.Src, nil)
	}

	s := pixel.NewSwizzler()
	if st := s.Prepare(f, nil, pixel.FormatRGBANonpremul, nil, pixel.BlendSrc); !st.IsOK() {
		return nil, fmt.Errorf("%w: %v: %w", ErrUnsupportedFormat, f, st)
	}
	s.SwizzleTable(out.Plane(0), nil, table(src.Pix, 4*r.Dx(), r.Dy(), src.Stride))
	return out, nil
}

// Scale resamples b to width x height with the given interpolator, for
// example draw.ApproxBiLinear or draw.CatmullRom. The result keeps b's
// pixel format unless that format is indexed, in which case it is
// RGBA_NONPREMUL.
func Scale(b *frame.ImageBuffer, width, height int, interp draw.Interpolator) (*frame.ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	src, err := ToImage(b)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f := b.ImageConfig().PixelFormat()
	if f.IsIndexed() {
		f = pixel.FormatRGBANonpremul
	}
	return FromImage(dst, f)
}

// EncodePNG writes the first plane of b to w as a PNG.
func EncodePNG(w io.Writer, b *frame.ImageBuffer) error {
	img, err := ToImage(b)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("interop: encode PNG: %w", err)
	}
	return nil
}

// DecodePNG reads a PNG from r into a new frame of format f.
func DecodePNG(r io.Reader, f pixel.Format) (*frame.ImageBuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("interop: decode PNG: %w", err)
	}
	return FromImage(img, f)
}
