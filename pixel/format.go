// Package pixel describes pixel layouts and converts between them.
//
// A Format is a packed 32-bit descriptor of color model, transparency, byte
// order, sample type, plane count, per-channel bit depths and palette
// indexing. Channels are always listed in memory order, independent of host
// byte order: BGRA with 8 bits per channel means the bytes in memory are
// blue, green, red then alpha on every platform.
//
// The Swizzler converts pixel bytes from one Format to another, optionally
// compositing the source over the destination.
package pixel

import (
	"fmt"
	"strconv"
	"strings"
)

// Format encodes the layout of an image's pixel bytes. Its bits:
//   - bit        31 is reserved.
//   - bits 30 .. 28 encode the color model.
//   - bits 27 .. 26 are reserved.
//   - bits 25 .. 24 encode transparency.
//   - bit        23 means big-endian (as opposed to little-endian).
//   - bit        22 means floating point (as opposed to integer).
//   - bits 21 .. 20 are the number of planes, minus 1.
//   - bits 19 .. 16 encode the bit depth of a palette index. Zero means
//     direct, not indexed.
//   - bits 15 .. 0 encode the bit depths of channels 3, 2, 1 and 0, four
//     bits each.
//
// The zero Format is invalid. Fields are not independent: unused channel
// depths should be zero and the plane count should not exceed the channel
// count. Malformed values still decode to well-defined fields.
type Format uint32

// Common formats. This list is not exhaustive.
const (
	FormatInvalid Format = 0x00000000

	FormatA Format = 0x02000008

	FormatY           Format = 0x10000008
	FormatY16BE       Format = 0x1080000B
	FormatYANonpremul Format = 0x12000088
	FormatYAPremul    Format = 0x13000088

	FormatBGR565               Format = 0x20000565
	FormatBGR                  Format = 0x20000888
	FormatBGRX                 Format = 0x21008888
	FormatBGRXIndexed          Format = 0x21088888
	FormatBGRANonpremul        Format = 0x22008888
	FormatBGRANonpremulIndexed Format = 0x22088888
	FormatBGRANonpremul4x16LE  Format = 0x2200BBBB
	FormatBGRAPremul           Format = 0x23008888
	FormatBGRAPremulIndexed    Format = 0x23088888

	FormatRGB                  Format = 0x30000888
	FormatRGBX                 Format = 0x31008888
	FormatRGBXIndexed          Format = 0x31088888
	FormatRGBANonpremul        Format = 0x32008888
	FormatRGBANonpremulIndexed Format = 0x32088888
	FormatRGBAPremul           Format = 0x33008888

	FormatYUV           Format = 0x40200888
	FormatYUVK          Format = 0x41308888
	FormatYUVANonpremul Format = 0x42308888

	FormatCMY  Format = 0x50200888
	FormatCMYK Format = 0x51308888
)

// NumPlanesMax is the maximum number of planes in a Buffer.
const NumPlanesMax = 4

// PaletteLen is the length in bytes of every palette: 256 entries of 4 bytes.
const PaletteLen = 1024

// BitsPerChannel maps a 4-bit depth code to a bit depth.
var BitsPerChannel = [16]uint8{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x0A, 0x0C, 0x10, 0x18, 0x20, 0x30, 0x40,
}

// ColorModel selects the channels of a Format and their memory order.
type ColorModel uint8

const (
	// ColorAlpha is alpha only.
	ColorAlpha ColorModel = iota
	// ColorGray is Y or YA.
	ColorGray
	// ColorBGR is BGR, BGRX or BGRA.
	ColorBGR
	// ColorRGB is RGB, RGBX or RGBA.
	ColorRGB
	// ColorYUV is YUV, YUVK or YUVA.
	ColorYUV
	// ColorCMY is CMY or CMYK.
	ColorCMY
)

// String returns the color model name.
func (c ColorModel) String() string {
	switch c {
	case ColorAlpha:
		return "A"
	case ColorGray:
		return "Y"
	case ColorBGR:
		return "BGR"
	case ColorRGB:
		return "RGB"
	case ColorYUV:
		return "YUV"
	case ColorCMY:
		return "CMY"
	default:
		return fmt.Sprintf("ColorModel(%d)", uint8(c))
	}
}

// Transparency says whether a Format has a fourth channel and what it means.
type Transparency uint8

const (
	// TransparencyOpaque means fully opaque with no extra channel.
	TransparencyOpaque Transparency = iota
	// TransparencyOpaqueExtra means fully opaque with one extra channel
	// (X padding, or K for CMYK).
	TransparencyOpaqueExtra
	// TransparencyNonpremul means one alpha channel; the other channels are
	// not premultiplied.
	TransparencyNonpremul
	// TransparencyPremul means one alpha channel; the other channels are
	// premultiplied.
	TransparencyPremul
)

// String returns the transparency name.
func (t Transparency) String() string {
	switch t {
	case TransparencyOpaque:
		return "opaque"
	case TransparencyOpaqueExtra:
		return "opaque_extra"
	case TransparencyNonpremul:
		return "nonpremul"
	case TransparencyPremul:
		return "premul"
	default:
		return fmt.Sprintf("Transparency(%d)", uint8(t))
	}
}

// FormatFields is the decoded form of a Format. Depths are 4-bit codes;
// see BitsPerChannel.
type FormatFields struct {
	Color        ColorModel
	Transparency Transparency
	BigEndian    bool
	Float        bool
	// Planes is the number of planes, 1 to 4. Zero is treated as 1.
	Planes       int
	IndexCode    uint8
	ChannelCodes [4]uint8
}

// Format packs f into a Format. Out of range fields are masked.
func (f FormatFields) Format() Format {
	planes := f.Planes
	if planes < 1 {
		planes = 1
	}
	v := uint32(f.Color&0x07)<<28 |
		uint32(f.Transparency&0x03)<<24 |
		uint32((planes-1)&0x03)<<20 |
		uint32(f.IndexCode&0x0F)<<16
	if f.BigEndian {
		v |= 1 << 23
	}
	if f.Float {
		v |= 1 << 22
	}
	for i, c := range f.ChannelCodes {
		v |= uint32(c&0x0F) << (4 * i)
	}
	return Format(v)
}

// Fields decodes every field of f.
func (f Format) Fields() FormatFields {
	var ff FormatFields
	ff.Color = f.ColorModel()
	ff.Transparency = f.Transparency()
	ff.BigEndian = f.IsBigEndian()
	ff.Float = f.IsFloat()
	ff.Planes = int(f>>20&0x03) + 1
	ff.IndexCode = uint8(f >> 16 & 0x0F)
	for i := range ff.ChannelCodes {
		ff.ChannelCodes[i] = uint8(f >> (4 * i) & 0x0F)
	}
	return ff
}

// IsValid reports whether f is not the zero Format.
func (f Format) IsValid() bool {
	return f != 0
}

// IsIndexed reports whether f is palette-indexed.
func (f Format) IsIndexed() bool {
	return f>>16&0x0F != 0
}

// NumPlanes returns the number of planes, or 0 for the zero Format.
func (f Format) NumPlanes() int {
	if f == 0 {
		return 0
	}
	return int(f>>20&0x03) + 1
}

// ColorModel returns the color model field.
func (f Format) ColorModel() ColorModel {
	return ColorModel(f >> 28 & 0x07)
}

// Transparency returns the transparency field.
func (f Format) Transparency() Transparency {
	return Transparency(f >> 24 & 0x03)
}

// IsBigEndian reports whether multi-byte samples are stored MSB first.
func (f Format) IsBigEndian() bool {
	return f&(1<<23) != 0
}

// IsFloat reports whether samples are floating point.
func (f Format) IsFloat() bool {
	return f&(1<<22) != 0
}

// IndexDepth returns the bit depth of a palette index, or 0 if f is direct.
func (f Format) IndexDepth() int {
	return int(BitsPerChannel[f>>16&0x0F])
}

// ChannelDepth returns the bit depth of channel i (0 to 3) in memory order.
func (f Format) ChannelDepth(i int) int {
	if i < 0 || i > 3 {
		return 0
	}
	return int(BitsPerChannel[f>>(4*uint(i))&0x0F])
}

// NumChannels returns the number of channels implied by the color model and
// transparency fields.
func (f Format) NumChannels() int {
	if f == 0 {
		return 0
	}
	n := 3
	switch f.ColorModel() {
	case ColorAlpha:
		return 1
	case ColorGray:
		n = 1
	}
	if f.Transparency() != TransparencyOpaque {
		n++
	}
	return n
}

// BitsPerPixel returns the storage size of one pixel summed over all
// planes. For indexed formats it is the index depth.
func (f Format) BitsPerPixel() int {
	if f.IsIndexed() {
		return f.IndexDepth()
	}
	n := 0
	for i := 0; i < 4; i++ {
		n += f.ChannelDepth(i)
	}
	return n
}

// PaletteFormat returns the format of one palette entry of an indexed
// format: f with the index depth cleared.
func (f Format) PaletteFormat() Format {
	return f &^ 0x000F0000
}

var formatNames = map[Format]string{
	FormatA:                    "A",
	FormatY:                    "Y",
	FormatY16BE:                "Y_16BE",
	FormatYANonpremul:          "YA_NONPREMUL",
	FormatYAPremul:             "YA_PREMUL",
	FormatBGR565:               "BGR_565",
	FormatBGR:                  "BGR",
	FormatBGRX:                 "BGRX",
	FormatBGRXIndexed:          "BGRX_INDEXED",
	FormatBGRANonpremul:        "BGRA_NONPREMUL",
	FormatBGRANonpremulIndexed: "BGRA_NONPREMUL_INDEXED",
	FormatBGRANonpremul4x16LE:  "BGRA_NONPREMUL_4X16LE",
	FormatBGRAPremul:           "BGRA_PREMUL",
	FormatBGRAPremulIndexed:    "BGRA_PREMUL_INDEXED",
	FormatRGB:                  "RGB",
	FormatRGBX:                 "RGBX",
	FormatRGBXIndexed:          "RGBX_INDEXED",
	FormatRGBANonpremul:        "RGBA_NONPREMUL",
	FormatRGBANonpremulIndexed: "RGBA_NONPREMUL_INDEXED",
	FormatRGBAPremul:           "RGBA_PREMUL",
	FormatYUV:                  "YUV",
	FormatYUVK:                 "YUVK",
	FormatYUVANonpremul:        "YUVA_NONPREMUL",
	FormatCMY:                  "CMY",
	FormatCMYK:                 "CMYK",
}

// String returns the name of a common format, or its hex value.
func (f Format) String() string {
	if f == 0 {
		return "INVALID"
	}
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(0x%08X)", uint32(f))
}

// ParseFormat returns the Format whose String is s. Hex values in the
// form printed by String, or plain 0x-prefixed hex, are also accepted.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	hex := s
	if strings.HasPrefix(hex, "Format(") && strings.HasSuffix(hex, ")") {
		hex = hex[len("Format(") : len(hex)-1]
	}
	if digits, ok := strings.CutPrefix(hex, "0x"); ok {
		if v, err := strconv.ParseUint(digits, 16, 32); err == nil {
			return Format(v), nil
		}
	}
	return 0, fmt.Errorf("pixel: unknown format %q", s)
}
