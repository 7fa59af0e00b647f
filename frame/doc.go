// Package frame models a decoded image: ImageConfig holds the static shape
// of an image stream and ImageBuffer holds one animation frame, with its
// pixels, dirty rectangle, timing, compositing and disposal.
//
// A decoder builds one ImageConfig from a stream header, then for each frame
// calls ImageBuffer.Update and writes samples into the buffer's planes. A
// consumer reads the accessors and, when its target pixel format differs,
// drives a pixel.Swizzler.
package frame
