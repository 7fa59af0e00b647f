package pixel

import (
	"math/rand/v2"
	"testing"
)

func TestFormatBGR565(t *testing.T) {
	f := Format(0x20000565)
	if f != FormatBGR565 {
		t.Fatalf("FormatBGR565 = %#x, want 0x20000565", uint32(FormatBGR565))
	}
	if got := f.NumPlanes(); got != 1 {
		t.Errorf("NumPlanes() = %d, want 1", got)
	}
	if f.IsIndexed() {
		t.Error("IsIndexed() = true, want false")
	}
	want := [4]int{5, 6, 5, 0}
	for i, w := range want {
		if got := f.ChannelDepth(i); got != w {
			t.Errorf("ChannelDepth(%d) = %d, want %d", i, got, w)
		}
	}
	if got := f.ColorModel(); got != ColorBGR {
		t.Errorf("ColorModel() = %v, want %v", got, ColorBGR)
	}
	if got := f.BitsPerPixel(); got != 16 {
		t.Errorf("BitsPerPixel() = %d, want 16", got)
	}
	if f.IsBigEndian() || f.IsFloat() {
		t.Error("BGR565 should be little-endian integer")
	}
}

func TestFormatAccessors(t *testing.T) {
	tests := []struct {
		f            Format
		valid        bool
		indexed      bool
		planes       int
		channels     int
		bpp          int
		color        ColorModel
		transparency Transparency
	}{
		{FormatInvalid, false, false, 0, 0, 0, ColorAlpha, TransparencyOpaque},
		{FormatA, true, false, 1, 1, 8, ColorAlpha, TransparencyNonpremul},
		{FormatY, true, false, 1, 1, 8, ColorGray, TransparencyOpaque},
		{FormatY16BE, true, false, 1, 1, 16, ColorGray, TransparencyOpaque},
		{FormatYANonpremul, true, false, 1, 2, 16, ColorGray, TransparencyNonpremul},
		{FormatBGR, true, false, 1, 3, 24, ColorBGR, TransparencyOpaque},
		{FormatBGRX, true, false, 1, 4, 32, ColorBGR, TransparencyOpaqueExtra},
		{FormatBGRANonpremulIndexed, true, true, 1, 4, 8, ColorBGR, TransparencyNonpremul},
		{FormatBGRANonpremul4x16LE, true, false, 1, 4, 64, ColorBGR, TransparencyNonpremul},
		{FormatRGBAPremul, true, false, 1, 4, 32, ColorRGB, TransparencyPremul},
		{FormatYUV, true, false, 3, 3, 24, ColorYUV, TransparencyOpaque},
		{FormatYUVK, true, false, 4, 4, 32, ColorYUV, TransparencyOpaqueExtra},
		{FormatCMYK, true, false, 4, 4, 32, ColorCMY, TransparencyOpaqueExtra},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.f.IsIndexed(); got != tt.indexed {
				t.Errorf("IsIndexed() = %v, want %v", got, tt.indexed)
			}
			if got := tt.f.NumPlanes(); got != tt.planes {
				t.Errorf("NumPlanes() = %d, want %d", got, tt.planes)
			}
			if got := tt.f.NumChannels(); got != tt.channels {
				t.Errorf("NumChannels() = %d, want %d", got, tt.channels)
			}
			if got := tt.f.BitsPerPixel(); got != tt.bpp {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.ColorModel(); got != tt.color {
				t.Errorf("ColorModel() = %v, want %v", got, tt.color)
			}
			if got := tt.f.Transparency(); got != tt.transparency {
				t.Errorf("Transparency() = %v, want %v", got, tt.transparency)
			}
		})
	}
}

func TestFormatY16BE(t *testing.T) {
	if !FormatY16BE.IsBigEndian() {
		t.Error("Y16BE IsBigEndian() = false")
	}
	if got := FormatY16BE.ChannelDepth(0); got != 16 {
		t.Errorf("ChannelDepth(0) = %d, want 16", got)
	}
}

func TestBitsPerChannel(t *testing.T) {
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 24, 32, 48, 64}
	for code, w := range want {
		if got := int(BitsPerChannel[code]); got != w {
			t.Errorf("BitsPerChannel[%d] = %d, want %d", code, got, w)
		}
	}
	if got := Format(0xF).ChannelDepth(0); got != 64 {
		t.Errorf("ChannelDepth(0) for code 15 = %d, want 64", got)
	}
	if got := FormatRGB.ChannelDepth(4); got != 0 {
		t.Errorf("ChannelDepth(4) = %d, want 0", got)
	}
}

func TestFormatFieldsRoundTrip(t *testing.T) {
	const known = 0x73FFFFFF
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 10000; i++ {
		f := Format(rng.Uint32())
		if got, want := f.Fields().Format(), f&known; got != want {
			t.Fatalf("Fields().Format() = %#x, want %#x", uint32(got), uint32(want))
		}
	}

	ff := FormatFields{
		Color:        ColorRGB,
		Transparency: TransparencyNonpremul,
		BigEndian:    true,
		ChannelCodes: [4]uint8{11, 11, 11, 11},
	}
	if got := ff.Format(); got != 0x3280BBBB {
		t.Errorf("Format() = %#x, want 0x3280BBBB", uint32(got))
	}
}

func TestFormatPaletteFormat(t *testing.T) {
	tests := []struct {
		in, want Format
	}{
		{FormatBGRANonpremulIndexed, FormatBGRANonpremul},
		{FormatBGRAPremulIndexed, FormatBGRAPremul},
		{FormatRGBXIndexed, FormatRGBX},
		{FormatRGB, FormatRGB},
	}
	for _, tt := range tests {
		if got := tt.in.PaletteFormat(); got != tt.want {
			t.Errorf("%v.PaletteFormat() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatInvalid, "INVALID"},
		{FormatBGR565, "BGR_565"},
		{FormatRGBAPremul, "RGBA_PREMUL"},
		{Format(0x3280BBBB), "Format(0x3280BBBB)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if tt.f == FormatInvalid {
			continue
		}
		if got, err := ParseFormat(tt.want); err != nil || got != tt.f {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.want, got, err, tt.f)
		}
	}
	if got, err := ParseFormat("0x20000565"); err != nil || got != FormatBGR565 {
		t.Errorf("ParseFormat(hex) = %v, %v", got, err)
	}
	if _, err := ParseFormat("PURPLE"); err == nil {
		t.Error("ParseFormat(PURPLE) should fail")
	}
}

func TestParseFormatHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"0x20000565", FormatBGR565, false},
		{"Format(0x73FFFFFF)", Format(0x73FFFFFF), false},
		{"0x12zz", 0, true},
		{"Format(0x12)zz", 0, true},
		{"Format(0x12", 0, true},
		{"0x", 0, true},
		{"0x100000000", 0, true},
		{"20000565", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v, want %v, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
			}
		})
	}
}
