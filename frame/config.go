package frame

import (
	"math"

	"github.com/gogpu/pixbase"
	"github.com/gogpu/pixbase/geom"
	"github.com/gogpu/pixbase/pixel"
)

// ImageConfig is the static shape of an image: pixel format, subsampling,
// dimensions, loop count and whether the first frame is opaque.
//
// The zero value is an invalid config. Methods on a nil *ImageConfig
// return zero values.
type ImageConfig struct {
	pixfmt             pixel.Format
	pixsub             pixel.Subsampling
	width              uint32
	height             uint32
	numLoops           uint32
	firstFrameIsOpaque bool
}

// MakeImageConfig returns an ImageConfig initialized with Set.
func MakeImageConfig(pixfmt pixel.Format, pixsub pixel.Subsampling, width, height, numLoops uint32, firstFrameIsOpaque bool) ImageConfig {
	var c ImageConfig
	c.Set(pixfmt, pixsub, width, height, numLoops, firstFrameIsOpaque)
	return c
}

// Set initializes c. If pixfmt is invalid, or width*height does not fit in
// an int, c is reset to the invalid zero value instead; check IsValid.
func (c *ImageConfig) Set(pixfmt pixel.Format, pixsub pixel.Subsampling, width, height, numLoops uint32, firstFrameIsOpaque bool) {
	if c == nil {
		return
	}
	if pixfmt.IsValid() {
		if wh := uint64(width) * uint64(height); wh <= math.MaxInt {
			*c = ImageConfig{
				pixfmt:             pixfmt,
				pixsub:             pixsub,
				width:              width,
				height:             height,
				numLoops:           numLoops,
				firstFrameIsOpaque: firstFrameIsOpaque,
			}
			return
		}
	}
	pixbase.Logger().Debug("frame: image config invalidated",
		"format", pixfmt, "width", width, "height", height)
	*c = ImageConfig{}
}

// Invalidate resets c to the invalid zero value.
func (c *ImageConfig) Invalidate() {
	if c != nil {
		*c = ImageConfig{}
	}
}

// IsValid reports whether c holds a valid pixel format.
func (c *ImageConfig) IsValid() bool {
	return c != nil && c.pixfmt.IsValid()
}

// PixelFormat returns the pixel format.
func (c *ImageConfig) PixelFormat() pixel.Format {
	if c == nil {
		return 0
	}
	return c.pixfmt
}

// PixelSubsampling returns the pixel subsampling.
func (c *ImageConfig) PixelSubsampling() pixel.Subsampling {
	if c == nil {
		return 0
	}
	return c.pixsub
}

// Bounds returns the rectangle (0, 0)-(width, height).
func (c *ImageConfig) Bounds() geom.RectIEU32 {
	if c == nil {
		return geom.RectIEU32{}
	}
	return geom.MakeRectIEU32(0, 0, c.width, c.height)
}

// Width returns the width in pixels.
func (c *ImageConfig) Width() uint32 {
	if c == nil {
		return 0
	}
	return c.width
}

// Height returns the height in pixels.
func (c *ImageConfig) Height() uint32 {
	if c == nil {
		return 0
	}
	return c.height
}

// NumLoops returns how many times an animation plays. Zero means forever.
func (c *ImageConfig) NumLoops() uint32 {
	if c == nil {
		return 0
	}
	return c.numLoops
}

// FirstFrameIsOpaque reports whether the first frame covers every pixel with
// an opaque value.
func (c *ImageConfig) FirstFrameIsOpaque() bool {
	return c != nil && c.firstFrameIsOpaque
}

// PixbufSize returns width*height: the size in bytes of one densely packed
// plane of a 1 byte per pixel format. Wider and planar formats are not
// sized here.
func (c *ImageConfig) PixbufSize() int {
	if c == nil {
		return 0
	}
	return int(uint64(c.width) * uint64(c.height))
}
