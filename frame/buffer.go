package frame

import (
	"fmt"

	"github.com/gogpu/pixbase"
	"github.com/gogpu/pixbase/buffer"
	"github.com/gogpu/pixbase/geom"
	"github.com/gogpu/pixbase/pixel"
)

// Disposal says how to dispose of an animation frame after displaying it.
type Disposal uint8

const (
	// DisposalNone draws the next frame on top of this one.
	DisposalNone Disposal = iota
	// DisposalRestoreBackground clears the frame's dirty rectangle to
	// transparent black before drawing the next frame.
	DisposalRestoreBackground
	// DisposalRestorePrevious undoes this frame, so that the next frame is
	// drawn on top of the previous one.
	DisposalRestorePrevious
)

// String returns the disposal name.
func (d Disposal) String() string {
	switch d {
	case DisposalNone:
		return "none"
	case DisposalRestoreBackground:
		return "restore_background"
	case DisposalRestorePrevious:
		return "restore_previous"
	default:
		return fmt.Sprintf("Disposal(%d)", uint8(d))
	}
}

// ImageBuffer is one decoded frame of an image. A decoder reuses the same
// ImageBuffer across frames, calling Update for each.
//
// The pixel planes are views over caller memory. The palette is owned by the
// ImageBuffer and always PaletteLen bytes long, whether or not the format is
// indexed.
type ImageBuffer struct {
	config         ImageConfig
	loopCount      uint32
	pixbuf         pixel.Buffer
	dirtyRect      geom.RectIEU32
	duration       Flicks
	blend          bool
	disposal       Disposal
	paletteChanged bool
	palette        [pixel.PaletteLen]byte
}

// SetFromPixbuf resets b to config with the given planes.
func (b *ImageBuffer) SetFromPixbuf(config ImageConfig, pixbuf pixel.Buffer) pixbase.Status {
	if b == nil {
		return pixbase.ErrorBadReceiver
	}
	*b = ImageBuffer{config: config, pixbuf: pixbuf}
	return pixbase.StatusOK
}

// SetFromSlice resets b to config with one densely packed plane over mem,
// at 1 byte per pixel. It fails with ErrorBadArgumentLengthTooShort if mem
// holds fewer than width*height bytes, leaving b reset and empty.
func (b *ImageBuffer) SetFromSlice(config ImageConfig, mem []byte) pixbase.Status {
	if b == nil {
		return pixbase.ErrorBadReceiver
	}
	*b = ImageBuffer{}
	w, h := config.Width(), config.Height()
	if uint64(w)*uint64(h) > uint64(len(mem)) {
		return pixbase.ErrorBadArgumentLengthTooShort
	}
	b.config = config
	b.pixbuf.Planes[0] = buffer.Table[byte]{
		Data:   mem,
		Width:  int(w),
		Height: int(h),
		Stride: int(w),
	}
	return pixbase.StatusOK
}

// Update records the next frame's metadata. The dirty rectangle's maximum
// bounds are clipped to the image size. The palette is copied only if it is
// exactly PaletteLen bytes long; any other length, including none, leaves
// the stored palette alone and PaletteChanged false.
func (b *ImageBuffer) Update(dirty geom.RectIEU32, duration Flicks, blend bool, disposal Disposal, palette []byte) {
	if b == nil {
		return
	}
	dirty.MaxExclX = min(dirty.MaxExclX, b.config.width)
	dirty.MaxExclY = min(dirty.MaxExclY, b.config.height)
	b.dirtyRect = dirty

	b.duration = duration
	b.blend = blend
	b.disposal = disposal
	b.paletteChanged = len(palette) == pixel.PaletteLen
	if b.paletteChanged {
		copy(b.palette[:], palette)
	} else if len(palette) != 0 {
		pixbase.Logger().Debug("frame: palette ignored", "len", len(palette))
	}
}

// ImageConfig returns the configuration of the image this frame belongs to.
func (b *ImageBuffer) ImageConfig() *ImageConfig {
	if b == nil {
		return nil
	}
	return &b.config
}

// Bounds returns the full image rectangle.
func (b *ImageBuffer) Bounds() geom.RectIEU32 {
	if b == nil {
		return geom.RectIEU32{}
	}
	return b.config.Bounds()
}

// Width returns the image width in pixels.
func (b *ImageBuffer) Width() uint32 {
	if b == nil {
		return 0
	}
	return b.config.width
}

// Height returns the image height in pixels.
func (b *ImageBuffer) Height() uint32 {
	if b == nil {
		return 0
	}
	return b.config.height
}

// LoopCount returns the 0-based count of the current animation loop.
func (b *ImageBuffer) LoopCount() uint32 {
	if b == nil {
		return 0
	}
	return b.loopCount
}

// SetLoopCount sets the 0-based count of the current animation loop.
func (b *ImageBuffer) SetLoopCount(n uint32) {
	if b != nil {
		b.loopCount = n
	}
}

// DirtyRect returns an upper bound for the part of this frame that differs
// from the previous one.
func (b *ImageBuffer) DirtyRect() geom.RectIEU32 {
	if b == nil {
		return geom.RectIEU32{}
	}
	return b.dirtyRect
}

// Duration returns how long to display this frame. Zero means a still image
// or forever.
func (b *ImageBuffer) Duration() Flicks {
	if b == nil {
		return 0
	}
	return b.duration
}

// Blend reports whether a transparent frame is composited over the previous
// one (Porter-Duff src over) rather than replacing it (src).
func (b *ImageBuffer) Blend() bool {
	return b != nil && b.blend
}

// PixelBlend returns Blend as the operator a pixel.Swizzler takes.
func (b *ImageBuffer) PixelBlend() pixel.Blend {
	if b.Blend() {
		return pixel.BlendSrcOver
	}
	return pixel.BlendSrc
}

// Disposal returns how to dispose of this frame after displaying it.
func (b *ImageBuffer) Disposal() Disposal {
	if b == nil {
		return DisposalNone
	}
	return b.disposal
}

// PaletteChanged reports whether the last Update replaced the palette.
func (b *ImageBuffer) PaletteChanged() bool {
	return b != nil && b.paletteChanged
}

// Palette returns the frame's palette. The slice aliases b and is always
// PaletteLen bytes long for a non-nil b.
func (b *ImageBuffer) Palette() []byte {
	if b == nil {
		return nil
	}
	return b.palette[:]
}

// Plane returns pixel plane p, or an empty table if p is out of range.
func (b *ImageBuffer) Plane(p int) buffer.Table[byte] {
	if b == nil {
		return buffer.Table[byte]{}
	}
	return b.pixbuf.Plane(p)
}
