package frame

import (
	"bytes"
	"testing"

	"github.com/gogpu/pixbase"
	"github.com/gogpu/pixbase/buffer"
	"github.com/gogpu/pixbase/geom"
	"github.com/gogpu/pixbase/pixel"
)

func newTestBuffer(t *testing.T, w, h uint32) *ImageBuffer {
	t.Helper()
	var b ImageBuffer
	cfg := MakeImageConfig(pixel.FormatBGRANonpremulIndexed, 0, w, h, 0, false)
	if st := b.SetFromSlice(cfg, make([]byte, w*h)); !st.IsOK() {
		t.Fatalf("SetFromSlice() = %v", st)
	}
	return &b
}

func TestImageBufferSetFromSlice(t *testing.T) {
	b := newTestBuffer(t, 4, 3)
	p := b.Plane(0)
	if p.Width != 4 || p.Height != 3 || p.Stride != 4 || len(p.Data) != 12 {
		t.Errorf("Plane(0) = %dx%d stride %d len %d", p.Width, p.Height, p.Stride, len(p.Data))
	}
	if !b.Plane(1).IsEmpty() || !b.Plane(-1).IsEmpty() || !b.Plane(pixel.NumPlanesMax).IsEmpty() {
		t.Error("unused planes should be empty")
	}
	if len(b.Palette()) != pixel.PaletteLen {
		t.Errorf("len(Palette()) = %d, want %d", len(b.Palette()), pixel.PaletteLen)
	}

	cfg := MakeImageConfig(pixel.FormatY, 0, 4, 3, 0, false)
	if st := b.SetFromSlice(cfg, make([]byte, 11)); st != pixbase.ErrorBadArgumentLengthTooShort {
		t.Errorf("SetFromSlice(short) = %v, want %v", st, pixbase.ErrorBadArgumentLengthTooShort)
	}
	if b.ImageConfig().IsValid() || !b.Plane(0).IsEmpty() {
		t.Error("failed SetFromSlice should leave the buffer reset")
	}

	var nilBuf *ImageBuffer
	if st := nilBuf.SetFromSlice(cfg, nil); st != pixbase.ErrorBadReceiver {
		t.Errorf("nil SetFromSlice() = %v, want %v", st, pixbase.ErrorBadReceiver)
	}
	if st := nilBuf.SetFromPixbuf(cfg, pixel.Buffer{}); st != pixbase.ErrorBadReceiver {
		t.Errorf("nil SetFromPixbuf() = %v, want %v", st, pixbase.ErrorBadReceiver)
	}
}

func TestImageBufferSetFromPixbuf(t *testing.T) {
	y, _ := buffer.NewTable(make([]byte, 16), 4, 4, 4)
	uv, _ := buffer.NewTable(make([]byte, 4), 2, 2, 2)
	cfg := MakeImageConfig(pixel.FormatYUV, pixel.Subsampling420, 4, 4, 0, true)

	var b ImageBuffer
	b.Update(geom.MakeRectIEU32(0, 0, 1, 1), 5, true, DisposalRestorePrevious, nil)
	pb := pixel.Buffer{Planes: [pixel.NumPlanesMax]buffer.Table[byte]{y, uv, uv}}
	if st := b.SetFromPixbuf(cfg, pb); !st.IsOK() {
		t.Fatalf("SetFromPixbuf() = %v", st)
	}
	if b.Duration() != 0 || b.Blend() || b.Disposal() != DisposalNone {
		t.Error("SetFromPixbuf() should reset frame metadata")
	}
	if b.Plane(2).Width != 2 || b.Plane(3).Width != 0 {
		t.Errorf("planes = %+v", b.pixbuf)
	}
	if b.Width() != 4 || b.Height() != 4 || b.Bounds() != cfg.Bounds() {
		t.Errorf("size = %dx%d", b.Width(), b.Height())
	}
}

func TestImageBufferUpdateClipsDirtyRect(t *testing.T) {
	b := newTestBuffer(t, 10, 20)
	tests := []struct {
		in, want geom.RectIEU32
	}{
		{geom.MakeRectIEU32(1, 2, 3, 4), geom.MakeRectIEU32(1, 2, 3, 4)},
		{geom.MakeRectIEU32(0, 0, 10, 20), geom.MakeRectIEU32(0, 0, 10, 20)},
		{geom.MakeRectIEU32(5, 5, 11, 100), geom.MakeRectIEU32(5, 5, 10, 20)},
		{geom.MakeRectIEU32(0, 0, 0xFFFFFFFF, 0xFFFFFFFF), geom.MakeRectIEU32(0, 0, 10, 20)},
		{geom.MakeRectIEU32(15, 25, 30, 30), geom.MakeRectIEU32(15, 25, 10, 20)},
	}
	for _, tt := range tests {
		b.Update(tt.in, 0, false, DisposalNone, nil)
		got := b.DirtyRect()
		if got != tt.want {
			t.Errorf("Update(%+v) DirtyRect() = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.MaxExclX > b.Width() || got.MaxExclY > b.Height() {
			t.Errorf("DirtyRect() %+v exceeds %dx%d", got, b.Width(), b.Height())
		}
	}
}

func TestImageBufferUpdatePalette(t *testing.T) {
	b := newTestBuffer(t, 2, 2)

	pal := bytes.Repeat([]byte{0xAB}, pixel.PaletteLen)
	b.Update(geom.RectIEU32{}, 7*FlicksPerMillisecond, true, DisposalRestoreBackground, pal)
	if !b.PaletteChanged() {
		t.Fatal("PaletteChanged() = false after a full palette")
	}
	if !bytes.Equal(b.Palette(), pal) {
		t.Error("Palette() does not match the supplied palette")
	}
	pal[0] = 0
	if b.Palette()[0] != 0xAB {
		t.Error("Palette() aliases the caller's slice")
	}
	if b.Duration() != 7*FlicksPerMillisecond || !b.Blend() || b.Disposal() != DisposalRestoreBackground {
		t.Errorf("metadata = %v, %v, %v", b.Duration(), b.Blend(), b.Disposal())
	}
	if b.PixelBlend() != pixel.BlendSrcOver {
		t.Errorf("PixelBlend() = %v, want %v", b.PixelBlend(), pixel.BlendSrcOver)
	}

	for _, n := range []int{0, 1, pixel.PaletteLen - 1, pixel.PaletteLen + 1} {
		b.Update(geom.RectIEU32{}, 0, false, DisposalNone, make([]byte, n))
		if b.PaletteChanged() {
			t.Errorf("PaletteChanged() = true for a %d-byte palette", n)
		}
		if b.Palette()[1] != 0xAB {
			t.Errorf("a %d-byte palette replaced the stored one", n)
		}
	}
	if b.PixelBlend() != pixel.BlendSrc {
		t.Errorf("PixelBlend() = %v, want %v", b.PixelBlend(), pixel.BlendSrc)
	}
}

func TestImageBufferLoopCount(t *testing.T) {
	b := newTestBuffer(t, 1, 1)
	b.SetLoopCount(4)
	if b.LoopCount() != 4 {
		t.Errorf("LoopCount() = %d, want 4", b.LoopCount())
	}
}

func TestImageBufferNil(t *testing.T) {
	var b *ImageBuffer
	b.Update(geom.MakeRectIEU32(0, 0, 1, 1), 1, true, DisposalRestorePrevious, make([]byte, pixel.PaletteLen))
	b.SetLoopCount(1)
	if b.ImageConfig() != nil || b.Palette() != nil || b.Width() != 0 || b.Height() != 0 ||
		b.LoopCount() != 0 || b.Duration() != 0 || b.Blend() || b.PaletteChanged() ||
		b.Disposal() != DisposalNone || !b.DirtyRect().IsEmpty() || !b.Bounds().IsEmpty() ||
		!b.Plane(0).IsEmpty() {
		t.Error("nil *ImageBuffer should report zero values")
	}
}

func TestDisposalString(t *testing.T) {
	tests := []struct {
		d    Disposal
		want string
	}{
		{DisposalNone, "none"},
		{DisposalRestoreBackground, "restore_background"},
		{DisposalRestorePrevious, "restore_previous"},
		{Disposal(9), "Disposal(9)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
